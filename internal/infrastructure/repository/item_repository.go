package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/storebook/storebook-api/internal/domain/entity"
	domainRepo "github.com/storebook/storebook-api/internal/domain/repository"
)

type itemRepository struct {
	db *gorm.DB
}

// NewItemRepository creates a new catalog store repository
func NewItemRepository(db *gorm.DB) domainRepo.ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) Create(ctx context.Context, item *entity.Item) error {
	return dbFrom(ctx, r.db).Create(item).Error
}

func (r *itemRepository) GetByID(ctx context.Context, id uint) (*entity.Item, error) {
	var item entity.Item
	err := dbFrom(ctx, r.db).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *itemRepository) GetByName(ctx context.Context, name string) (*entity.Item, error) {
	var item entity.Item
	err := dbFrom(ctx, r.db).First(&item, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

// UpsertByName applies a quantity delta to the item with the exact name,
// clamping at zero, or creates the row when the name is new. Meant to run
// inside the unit of work of the ledger mutation that caused the delta.
func (r *itemRepository) UpsertByName(ctx context.Context, name string, quantityDelta int, unitPrice *float64) (*entity.Item, error) {
	db := dbFrom(ctx, r.db)

	var item entity.Item
	err := db.First(&item, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		quantity := quantityDelta
		if quantity < 0 {
			quantity = 0
		}
		item = entity.Item{
			Name:        name,
			Quantity:    quantity,
			Description: entity.SystemGeneratedDescription,
		}
		if unitPrice != nil {
			item.Price = *unitPrice
		}
		if err := db.Create(&item).Error; err != nil {
			return nil, err
		}
		return &item, nil
	}
	if err != nil {
		return nil, err
	}

	next := item.Quantity + quantityDelta
	if next < 0 {
		next = 0
	}
	updates := map[string]interface{}{"quantity": next}
	if unitPrice != nil {
		updates["price"] = *unitPrice
	}
	if err := db.Model(&entity.Item{}).Where("id = ?", item.ID).Updates(updates).Error; err != nil {
		return nil, err
	}

	item.Quantity = next
	if unitPrice != nil {
		item.Price = *unitPrice
	}
	return &item, nil
}

func (r *itemRepository) Update(ctx context.Context, item *entity.Item) error {
	// Save would overwrite created_at; the insert timestamp is immutable.
	return dbFrom(ctx, r.db).Model(item).
		Select("name", "quantity", "price", "description").
		Updates(item).Error
}

func (r *itemRepository) Delete(ctx context.Context, id uint) error {
	return dbFrom(ctx, r.db).Delete(&entity.Item{}, "id = ?", id).Error
}

func (r *itemRepository) List(ctx context.Context, params *domainRepo.ItemFilterParams) ([]entity.Item, int64, error) {
	var items []entity.Item
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Item{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("id DESC").
		Find(&items).Error

	return items, total, err
}
