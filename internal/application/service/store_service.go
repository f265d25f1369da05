package service

import (
	"context"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/pkg/apperror"
)

// StoreService manages the store details printed on receipts
type StoreService struct {
	storeRepo repository.StoreRepository
}

// NewStoreService creates a new store service
func NewStoreService(storeRepo repository.StoreRepository) *StoreService {
	return &StoreService{storeRepo: storeRepo}
}

// StoreInput represents the store details form
type StoreInput struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address"`
	Email     string `json:"email"`
	Contact   string `json:"contact"`
}

// Save records a new store profile row. Readers always take the latest
// row, so saving never destroys history.
func (s *StoreService) Save(ctx context.Context, caps enum.Capabilities, input *StoreInput) (*entity.StoreProfile, error) {
	if err := requireManage(caps); err != nil {
		return nil, err
	}
	if input.StoreName == "" {
		return nil, apperror.NewValidationError([]apperror.FieldError{
			{Field: "store_name", Message: "Store name is required"},
		})
	}

	profile := &entity.StoreProfile{
		StoreName: input.StoreName,
		Address:   input.Address,
		Email:     input.Email,
		Contact:   input.Contact,
	}
	if err := s.storeRepo.Save(ctx, profile); err != nil {
		return nil, err
	}
	return profile, nil
}

// Current returns the most recently saved store profile
func (s *StoreService) Current(ctx context.Context) (*entity.StoreProfile, error) {
	profile, err := s.storeRepo.Latest(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Store profile")
	}
	return profile, nil
}
