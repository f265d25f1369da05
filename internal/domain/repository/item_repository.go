package repository

import (
	"context"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// ItemRepository defines the interface for catalog store data operations
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id uint) (*entity.Item, error)
	GetByName(ctx context.Context, name string) (*entity.Item, error)
	// UpsertByName finds an item by exact name and applies quantityDelta
	// (clamped so quantity never drops below zero), optionally overwriting
	// the unit price. Absent names create a new system-generated item with
	// quantity max(quantityDelta, 0).
	UpsertByName(ctx context.Context, name string, quantityDelta int, unitPrice *float64) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *ItemFilterParams) ([]entity.Item, int64, error)
}

// ItemFilterParams contains filtering parameters for catalog queries
type ItemFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}
