package repository

import (
	"context"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// SaleRepository defines the interface for sales ledger data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uint) (*entity.Sale, error)
	Update(ctx context.Context, sale *entity.Sale) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *SaleFilterParams) ([]entity.Sale, int64, error)
	// CountByCodes reports how many sales reference any of the codes, for
	// referential delete checks.
	CountByCodes(ctx context.Context, codes []string) (int64, error)
}

// SaleFilterParams contains filtering parameters for sales queries.
// Search matches every column except id as a case-insensitive substring.
type SaleFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}
