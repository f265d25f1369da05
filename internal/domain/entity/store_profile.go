package entity

import (
	"time"
)

// StoreProfile holds the store details printed on receipt headers.
// The most recently saved row wins.
type StoreProfile struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	StoreName string    `gorm:"size:255;not null" json:"store_name"`
	Address   string    `gorm:"type:text" json:"address"`
	Email     string    `gorm:"size:255" json:"email"`
	Contact   string    `gorm:"size:100" json:"contact"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the StoreProfile model
func (StoreProfile) TableName() string {
	return "store_details"
}
