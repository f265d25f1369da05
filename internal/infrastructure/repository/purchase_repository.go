package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/storebook/storebook-api/internal/domain/entity"
	domainRepo "github.com/storebook/storebook-api/internal/domain/repository"
)

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase ledger repository
func NewPurchaseRepository(db *gorm.DB) domainRepo.PurchaseRepository {
	return &purchaseRepository{db: db}
}

func (r *purchaseRepository) Create(ctx context.Context, purchase *entity.Purchase) error {
	return dbFrom(ctx, r.db).Create(purchase).Error
}

func (r *purchaseRepository) GetByID(ctx context.Context, id uint) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := dbFrom(ctx, r.db).First(&purchase, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) GetLatestByCode(ctx context.Context, code string) (*entity.Purchase, error) {
	var purchase entity.Purchase
	err := dbFrom(ctx, r.db).
		Where("product_code = ?", code).
		Order("id DESC").
		First(&purchase).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &purchase, err
}

func (r *purchaseRepository) Update(ctx context.Context, purchase *entity.Purchase) error {
	return dbFrom(ctx, r.db).Model(purchase).
		Select("product_name", "product_code", "quantity", "purchase_price",
			"total_price", "supplier_name", "supplier_contact", "purchase_date").
		Updates(purchase).Error
}

func (r *purchaseRepository) Delete(ctx context.Context, id uint) error {
	return dbFrom(ctx, r.db).Delete(&entity.Purchase{}, "id = ?", id).Error
}

func (r *purchaseRepository) List(ctx context.Context, params *domainRepo.PurchaseFilterParams) ([]entity.Purchase, int64, error) {
	var purchases []entity.Purchase
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Purchase{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(product_name) LIKE LOWER(?) OR LOWER(product_code) LIKE LOWER(?) OR LOWER(supplier_name) LIKE LOWER(?) OR LOWER(supplier_contact) LIKE LOWER(?)",
			pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("id DESC").
		Find(&purchases).Error

	return purchases, total, err
}

// AtomicDecrementQuantity uses a guarded update so remaining quantity
// never goes negative: rows already at zero are left untouched.
func (r *purchaseRepository) AtomicDecrementQuantity(ctx context.Context, id uint, amount int) (bool, error) {
	result := dbFrom(ctx, r.db).Model(&entity.Purchase{}).
		Where("id = ? AND quantity >= ?", id, amount).
		Update("quantity", gorm.Expr("quantity - ?", amount))

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *purchaseRepository) CountByProductName(ctx context.Context, name string) (int64, error) {
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.Purchase{}).
		Where("product_name = ?", name).
		Count(&count).Error
	return count, err
}

func (r *purchaseRepository) CodesForProductName(ctx context.Context, name string) ([]string, error) {
	var codes []string
	err := dbFrom(ctx, r.db).Model(&entity.Purchase{}).
		Where("product_name = ? AND product_code <> ''", name).
		Distinct().
		Pluck("product_code", &codes).Error
	return codes, err
}
