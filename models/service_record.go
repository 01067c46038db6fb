package models

import "time"

// Service status values. Forward progression New -> In Service -> Completed ->
// Informed to Customer -> Delivered to Customer is the expected flow, but no
// transition table is enforced: any status may be set from any other.
const (
	StatusNew       = "New"
	StatusInService = "In Service"
	StatusCompleted = "Completed"
	StatusInformed  = "Informed to Customer"
	StatusDelivered = "Delivered to Customer"
)

// ServiceStatuses lists the valid statuses in forward order.
var ServiceStatuses = []string{
	StatusNew,
	StatusInService,
	StatusCompleted,
	StatusInformed,
	StatusDelivered,
}

// Warranty classification. Exactly one field group is active per record:
// estimate_amount for Non-Warranty, warranty_invoice_number/warranty_date for
// Warranty. The inactive group is kept blank.
const (
	WarrantyClassWarranty    = "Warranty"
	WarrantyClassNonWarranty = "Non-Warranty"
)

// ServiceTypeOptions is the predefined service-description catalog. A record's
// ServiceType is a comma-joined subset of these labels in selection order.
var ServiceTypeOptions = []string{
	"Stitching",
	"Zip Repair/Replacement",
	"Runner Replacement",
	"Handle Repair/Replacement",
	"Strolly Wheel/Handle Repair",
	"Buckle Repair/Replacement",
	"Professional Cleaning",
	"Strap Adjustment/Replacement",
	"Lock Repair/Replacement",
	"Bags",
}

// db tags document the SQL column mapping; the repositories scan by position.
type ServiceRecord struct {
	ServiceID             string     `json:"serviceId" bson:"_id,omitempty" db:"service_id"`
	SlipNo                string     `json:"slipNo" bson:"slip_no" db:"slip_no"`
	Date                  string     `json:"date" bson:"date" db:"date"` // YYYY-MM-DD, empty when unknown
	CustomerName          string     `json:"customerName" bson:"customer_name" db:"customer_name"`
	Contact               string     `json:"contact" bson:"contact" db:"contact"`
	ProductName           string     `json:"productName" bson:"product_name" db:"product_name"`
	Brand                 string     `json:"brand" bson:"brand" db:"brand"`
	ColorAndSize          string     `json:"colorAndSize" bson:"color_and_size" db:"color_and_size"`
	ServiceType           string     `json:"serviceType" bson:"service_type" db:"service_type"`
	WarrantyStatus        string     `json:"warrantyStatus" bson:"warranty_status" db:"warranty_status"`
	EstimateAmount        string     `json:"estimateAmount" bson:"estimate_amount" db:"estimate_amount"`
	WarrantyInvoiceNumber string     `json:"warrantyInvoiceNumber" bson:"warranty_invoice_number" db:"warranty_invoice_number"`
	WarrantyDate          string     `json:"warrantyDate" bson:"warranty_date" db:"warranty_date"`
	ImageURL              string     `json:"imageUrl" bson:"image_url" db:"image_url"`
	ServiceStatus         string     `json:"serviceStatus" bson:"service_status" db:"service_status"`
	ServicemanName        string     `json:"servicemanName" bson:"serviceman_name" db:"serviceman_name"`
	ServicemanAmount      string     `json:"servicemanAmount" bson:"serviceman_amount" db:"serviceman_amount"`
	CustomerPaidAmount    string     `json:"customerPaidAmount" bson:"customer_paid_amount" db:"customer_paid_amount"`
	InvoiceNumber         string     `json:"invoiceNumber" bson:"invoice_number" db:"invoice_number"`
	SlipPdfURL            *string    `json:"slipPdfUrl,omitempty" bson:"slip_pdf_url,omitempty" db:"slip_pdf_url"`
	SlipPdfCreatedAt      *time.Time `json:"slipPdfCreatedAt,omitempty" bson:"slip_pdf_created_at,omitempty" db:"slip_pdf_created_at"`
	CreatedAt             time.Time  `json:"createdAt" bson:"created_at" db:"created_at"`
	UpdatedAt             *time.Time `json:"updatedAt,omitempty" bson:"updated_at,omitempty" db:"updated_at"`
}

// SearchValues returns the string form of every record attribute the free-text
// search runs over. A match on any one of them includes the record.
func (s *ServiceRecord) SearchValues() []string {
	return []string{
		s.ServiceID,
		s.SlipNo,
		s.Date,
		s.CustomerName,
		s.Contact,
		s.ProductName,
		s.Brand,
		s.ColorAndSize,
		s.ServiceType,
		s.WarrantyStatus,
		s.EstimateAmount,
		s.WarrantyInvoiceNumber,
		s.WarrantyDate,
		s.ImageURL,
		s.ServiceStatus,
		s.ServicemanName,
		s.ServicemanAmount,
		s.CustomerPaidAmount,
		s.InvoiceNumber,
	}
}

// ServicePayload is the write-side shape for both intake and update requests.
// Image bytes travel base64-encoded alongside the form fields; on update the
// image group is optional and ImageURLExisting carries the hosted URL to keep.
type ServicePayload struct {
	ServiceID             string `json:"serviceId,omitempty"`
	SlipNo                string `json:"slipNo"`
	Date                  string `json:"date"`
	CustomerName          string `json:"customerName"`
	Contact               string `json:"contact"`
	ProductName           string `json:"productName"`
	Brand                 string `json:"brand"`
	ColorAndSize          string `json:"colorAndSize"`
	ServiceType           string `json:"serviceType"`
	WarrantyStatus        string `json:"warrantyStatus"`
	EstimateAmount        string `json:"estimateAmount"`
	WarrantyInvoiceNumber string `json:"warrantyInvoiceNumber"`
	WarrantyDate          string `json:"warrantyDate"`
	ServiceStatus         string `json:"serviceStatus,omitempty"`
	ServicemanName        string `json:"servicemanName,omitempty"`
	ServicemanAmount      string `json:"servicemanAmount"`
	CustomerPaidAmount    string `json:"customerPaidAmount"`
	InvoiceNumber         string `json:"invoiceNumber"`
	Image                 string `json:"image,omitempty"` // base64
	ImageName             string `json:"imageName,omitempty"`
	ImageMimeType         string `json:"imageMimeType,omitempty"`
	ImageURLExisting      string `json:"imageUrl_existing,omitempty"`
}
