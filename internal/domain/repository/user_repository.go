package repository

import (
	"context"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// UserRepository defines the interface for user and privilege data operations
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uint) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	// Delete removes the user and cascade-deletes its privilege record.
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, params *UserFilterParams) ([]entity.User, int64, error)
	GetPrivilege(ctx context.Context, userID uint) (*entity.UserPrivilege, error)
	SavePrivilege(ctx context.Context, privilege *entity.UserPrivilege) error
}

// UserFilterParams contains filtering parameters for user queries
type UserFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
}

// StoreRepository defines the interface for the store details record
type StoreRepository interface {
	Save(ctx context.Context, profile *entity.StoreProfile) error
	// Latest returns the most recently saved store profile, or nil when
	// none has been configured yet.
	Latest(ctx context.Context) (*entity.StoreProfile, error)
}
