package repository

import (
	"context"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// PurchaseRepository defines the interface for purchase ledger data operations
type PurchaseRepository interface {
	Create(ctx context.Context, purchase *entity.Purchase) error
	GetByID(ctx context.Context, id uint) (*entity.Purchase, error)
	// GetLatestByCode returns the most recently recorded purchase carrying
	// the code, highest id winning ties, or nil when the code is unknown.
	GetLatestByCode(ctx context.Context, code string) (*entity.Purchase, error)
	Update(ctx context.Context, purchase *entity.Purchase) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *PurchaseFilterParams) ([]entity.Purchase, int64, error)
	// AtomicDecrementQuantity decrements the row's remaining quantity by
	// amount only while it stays >= 0. Returns false when the row was
	// already depleted; that is not an error.
	AtomicDecrementQuantity(ctx context.Context, id uint, amount int) (bool, error)
	// CountByProductName reports how many ledger rows reference a catalog
	// name, for referential delete checks.
	CountByProductName(ctx context.Context, name string) (int64, error)
	// CodesForProductName lists the distinct product codes the ledger has
	// recorded against a catalog name.
	CodesForProductName(ctx context.Context, name string) ([]string, error)
}

// PurchaseFilterParams contains filtering parameters for purchase queries.
// Search matches product_name, product_code, supplier_name and
// supplier_contact as a case-insensitive substring.
type PurchaseFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}
