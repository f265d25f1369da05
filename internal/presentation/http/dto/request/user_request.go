package request

// UserRequest represents the user create/update payload
type UserRequest struct {
	Name     string `json:"name" binding:"required"`
	Father   string `json:"father"`
	CNIC     string `json:"cnic"`
	Password string `json:"password"`
}

// PrivilegeRequest represents the capability flags payload
type PrivilegeRequest struct {
	CanViewSales    bool `json:"can_view_sales"`
	CanEditSales    bool `json:"can_edit_sales"`
	CanViewPurchase bool `json:"can_view_purchase"`
	CanEditPurchase bool `json:"can_edit_purchase"`
	CanManageUsers  bool `json:"can_manage_users"`
}

// StoreRequest represents the store details payload
type StoreRequest struct {
	StoreName string `json:"store_name" binding:"required"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
}
