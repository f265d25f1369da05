package entity

import (
	"time"

	"github.com/storebook/storebook-api/internal/domain/enum"
)

// User represents a store employee who can sign in to the system
type User struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;uniqueIndex;not null" json:"name"`
	Father    string    `gorm:"size:255" json:"father"`
	CNIC      string    `gorm:"size:50" json:"cnic"`
	Password  string    `gorm:"size:255" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relationships
	Privilege *UserPrivilege `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"privilege,omitempty"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// UserPrivilege is the 1:1 capability record gating which engine
// operations its owner may invoke.
type UserPrivilege struct {
	ID              uint      `gorm:"primary_key" json:"id"`
	UserID          uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CanViewSales    bool      `gorm:"default:false" json:"can_view_sales"`
	CanEditSales    bool      `gorm:"default:false" json:"can_edit_sales"`
	CanViewPurchase bool      `gorm:"default:false" json:"can_view_purchase"`
	CanEditPurchase bool      `gorm:"default:false" json:"can_edit_purchase"`
	CanManageUsers  bool      `gorm:"default:false" json:"can_manage_users"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// TableName returns the table name for the UserPrivilege model
func (UserPrivilege) TableName() string {
	return "user_privileges"
}

// Capabilities converts the privilege flags into the typed token the
// engine checks at its entry points.
func (p *UserPrivilege) Capabilities() enum.Capabilities {
	caps := enum.Capabilities{}
	if p == nil {
		return caps
	}
	if p.CanViewSales {
		caps[enum.CapViewSales] = true
	}
	if p.CanEditSales {
		caps[enum.CapEditSales] = true
	}
	if p.CanViewPurchase {
		caps[enum.CapViewPurchase] = true
	}
	if p.CanEditPurchase {
		caps[enum.CapEditPurchase] = true
	}
	if p.CanManageUsers {
		caps[enum.CapManageUsers] = true
	}
	return caps
}
