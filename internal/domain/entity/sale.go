package entity

import (
	"time"
)

// Sale is an outgoing stock event tied to a client. ProductID is the
// free-text product reference entered at the counter; ProductCode is what
// the reconciler resolves against the purchase ledger.
type Sale struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	ProductID   string    `gorm:"size:100;not null" json:"product_id"`
	ProductCode string    `gorm:"size:100;not null;index" json:"product_code"`
	Price       float64   `gorm:"type:decimal(15,2);default:0" json:"price"`
	Profit      float64   `gorm:"type:decimal(15,2);default:0" json:"profit"`
	Total       float64   `gorm:"type:decimal(15,2);default:0" json:"total"`
	ClientName  string    `gorm:"size:255" json:"client_name"`
	ClientCNIC  string    `gorm:"size:50" json:"client_cnic"`
	SaleDate    time.Time `json:"sale_date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}
