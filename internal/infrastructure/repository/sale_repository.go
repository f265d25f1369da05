package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/storebook/storebook-api/internal/domain/entity"
	domainRepo "github.com/storebook/storebook-api/internal/domain/repository"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sales ledger repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return dbFrom(ctx, r.db).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uint) (*entity.Sale, error) {
	var sale entity.Sale
	err := dbFrom(ctx, r.db).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) Update(ctx context.Context, sale *entity.Sale) error {
	return dbFrom(ctx, r.db).Model(sale).
		Select("product_id", "product_code", "price", "profit", "total",
			"client_name", "client_cnic", "sale_date").
		Updates(sale).Error
}

func (r *saleRepository) Delete(ctx context.Context, id uint) error {
	return dbFrom(ctx, r.db).Delete(&entity.Sale{}, "id = ?", id).Error
}

func (r *saleRepository) List(ctx context.Context, params *domainRepo.SaleFilterParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.Sale{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(product_id) LIKE LOWER(?) OR LOWER(product_code) LIKE LOWER(?) OR LOWER(client_name) LIKE LOWER(?) OR LOWER(client_cnic) LIKE LOWER(?) OR CAST(price AS TEXT) LIKE ? OR CAST(profit AS TEXT) LIKE ? OR CAST(total AS TEXT) LIKE ?",
			pattern, pattern, pattern, pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("id DESC").
		Find(&sales).Error

	return sales, total, err
}

func (r *saleRepository) CountByCodes(ctx context.Context, codes []string) (int64, error) {
	if len(codes) == 0 {
		return 0, nil
	}
	var count int64
	err := dbFrom(ctx, r.db).Model(&entity.Sale{}).
		Where("product_code IN ?", codes).
		Count(&count).Error
	return count, err
}
