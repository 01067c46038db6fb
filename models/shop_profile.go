package models

import "time"

type PhoneEntry struct {
	Number string `json:"number" bson:"number" db:"number"`
	Label  string `json:"label" bson:"label" db:"label"`
}

// ShopProfile is the per-deployment header block printed on every slip.
type ShopProfile struct {
	ID         int64        `json:"id" bson:"_id,omitempty" db:"id"`
	ShopName   string       `json:"shop_name" bson:"shop_name" db:"shop_name"`
	Department string       `json:"department" bson:"department" db:"department"`
	Address    string       `json:"address" bson:"address" db:"address"`
	City       string       `json:"city" bson:"city" db:"city"`
	Pincode    string       `json:"pincode" bson:"pincode" db:"pincode"`
	Phones     []PhoneEntry `json:"phones" bson:"phones" db:"phones"`
	Email      string       `json:"email" bson:"email" db:"email"`
	GSTIN      string       `json:"gstin" bson:"gstin" db:"gstin"`
	Footnote   string       `json:"footnote" bson:"footnote" db:"footnote"`
	CreatedAt  time.Time    `json:"created_at" bson:"created_at" db:"created_at"`
}
