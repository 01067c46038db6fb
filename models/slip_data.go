package models

type SlipData struct {
	Shop          *ShopProfile   // header block
	Record        *ServiceRecord // service details
	Contacts      string         // formatted shop phone numbers
	Date          string         // formatted slip date
	ServiceTypes  []string       // ServiceType split into labels
	EstimateWords string         // estimate amount in words, Non-Warranty only
}
