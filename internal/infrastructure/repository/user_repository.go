package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/storebook/storebook-api/internal/domain/entity"
	domainRepo "github.com/storebook/storebook-api/internal/domain/repository"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domainRepo.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	return dbFrom(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*entity.User, error) {
	var user entity.User
	err := dbFrom(ctx, r.db).Preload("Privilege").First(&user, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) GetByName(ctx context.Context, name string) (*entity.User, error) {
	var user entity.User
	err := dbFrom(ctx, r.db).Preload("Privilege").First(&user, "name = ?", name).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) error {
	return dbFrom(ctx, r.db).Model(user).
		Select("name", "father", "cnic", "password").
		Updates(user).Error
}

// Delete removes the user and its privilege record in one transaction.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return dbFrom(ctx, r.db).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.UserPrivilege{}, "user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.User{}, "id = ?", id).Error
	})
}

func (r *userRepository) List(ctx context.Context, params *domainRepo.UserFilterParams) ([]entity.User, int64, error) {
	var users []entity.User
	var total int64

	query := dbFrom(ctx, r.db).Model(&entity.User{})

	if params.Search != "" {
		pattern := "%" + params.Search + "%"
		query = query.Where(
			"LOWER(name) LIKE LOWER(?) OR LOWER(father) LIKE LOWER(?) OR cnic LIKE ?",
			pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Privilege").
		Order("id DESC").
		Find(&users).Error

	return users, total, err
}

func (r *userRepository) GetPrivilege(ctx context.Context, userID uint) (*entity.UserPrivilege, error) {
	var privilege entity.UserPrivilege
	err := dbFrom(ctx, r.db).First(&privilege, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &privilege, err
}

func (r *userRepository) SavePrivilege(ctx context.Context, privilege *entity.UserPrivilege) error {
	db := dbFrom(ctx, r.db)

	var existing entity.UserPrivilege
	err := db.First(&existing, "user_id = ?", privilege.UserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return db.Create(privilege).Error
	}
	if err != nil {
		return err
	}

	privilege.ID = existing.ID
	return db.Model(&existing).
		Select("can_view_sales", "can_edit_sales", "can_view_purchase",
			"can_edit_purchase", "can_manage_users").
		Updates(privilege).Error
}

type storeRepository struct {
	db *gorm.DB
}

// NewStoreRepository creates the repository for the store details record
func NewStoreRepository(db *gorm.DB) domainRepo.StoreRepository {
	return &storeRepository{db: db}
}

func (r *storeRepository) Save(ctx context.Context, profile *entity.StoreProfile) error {
	return dbFrom(ctx, r.db).Create(profile).Error
}

func (r *storeRepository) Latest(ctx context.Context) (*entity.StoreProfile, error) {
	var profile entity.StoreProfile
	err := dbFrom(ctx, r.db).Order("id DESC").First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &profile, err
}
