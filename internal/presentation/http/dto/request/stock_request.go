package request

// ItemRequest represents an explicit catalog entry payload
type ItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// PurchaseRequest represents a purchase ledger entry payload
type PurchaseRequest struct {
	ProductName     string  `json:"product_name" binding:"required"`
	ProductCode     string  `json:"product_code"`
	Quantity        int     `json:"quantity" binding:"required"`
	PurchasePrice   float64 `json:"purchase_price"`
	SupplierName    string  `json:"supplier_name"`
	SupplierContact string  `json:"supplier_contact"`
	PurchaseDate    string  `json:"purchase_date"`
}

// SaleRequest represents a sales ledger entry payload
type SaleRequest struct {
	ProductID   string  `json:"product_id" binding:"required"`
	ProductCode string  `json:"product_code" binding:"required"`
	Price       float64 `json:"price"`
	Profit      float64 `json:"profit"`
	Total       float64 `json:"total"`
	ClientName  string  `json:"client_name"`
	ClientCNIC  string  `json:"client_cnic"`
	SaleDate    string  `json:"sale_date"`
}
