package entity

import (
	"time"
)

// SystemGeneratedDescription marks catalog rows created implicitly by the
// first purchase referencing an unknown product name.
const SystemGeneratedDescription = "Auto-created from purchase"

// Item is the canonical stock record per product name.
type Item struct {
	ID          uint      `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Quantity    int       `gorm:"default:0" json:"quantity"`
	Price       float64   `gorm:"type:decimal(15,2);default:0" json:"price"`
	Description string    `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TableName returns the table name for the Item model
func (Item) TableName() string {
	return "items"
}

// SystemGenerated reports whether the item was created by the reconciler
// rather than entered directly.
func (i *Item) SystemGenerated() bool {
	return i.Description == SystemGeneratedDescription
}
