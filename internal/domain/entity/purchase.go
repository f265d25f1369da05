package entity

import (
	"time"
)

// Purchase is an incoming stock event tied to a supplier. Product identity
// is carried by name (the catalog key) and by code (the key the sales
// ledger resolves against).
type Purchase struct {
	ID              uint      `gorm:"primary_key" json:"id"`
	ProductName     string    `gorm:"size:255;not null;index" json:"product_name"`
	ProductCode     string    `gorm:"size:100;index" json:"product_code"`
	Quantity        int       `gorm:"default:0" json:"quantity"`
	PurchasePrice   float64   `gorm:"type:decimal(15,2);default:0" json:"purchase_price"`
	TotalPrice      float64   `gorm:"type:decimal(15,2);default:0" json:"total_price"`
	SupplierName    string    `gorm:"size:255" json:"supplier_name"`
	SupplierContact string    `gorm:"size:100" json:"supplier_contact"`
	PurchaseDate    time.Time `json:"purchase_date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for the Purchase model
func (Purchase) TableName() string {
	return "purchase"
}
