package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/pkg/apperror"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// UserService handles employee accounts and their privilege records
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// UserInput represents data for creating or updating a user
type UserInput struct {
	Name     string
	Father   string
	CNIC     string
	Password string
}

// PrivilegeInput carries the capability flags granted to a user
type PrivilegeInput struct {
	CanViewSales    bool `json:"can_view_sales"`
	CanEditSales    bool `json:"can_edit_sales"`
	CanViewPurchase bool `json:"can_view_purchase"`
	CanEditPurchase bool `json:"can_edit_purchase"`
	CanManageUsers  bool `json:"can_manage_users"`
}

func validateUser(input *UserInput, requirePassword bool) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if requirePassword && len(input.Password) < 6 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "password", Message: "Password must be at least 6 characters"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Create registers a new employee with an empty privilege record
func (s *UserService) Create(ctx context.Context, caps enum.Capabilities, input *UserInput) (*entity.User, error) {
	if err := requireManage(caps); err != nil {
		return nil, err
	}
	if err := validateUser(input, true); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewAppError(409, "A user with this name already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperror.ErrInternalServer
	}

	user := &entity.User{
		Name:     input.Name,
		Father:   input.Father,
		CNIC:     input.CNIC,
		Password: string(hashed),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	if err := s.userRepo.SavePrivilege(ctx, &entity.UserPrivilege{UserID: user.ID}); err != nil {
		return nil, err
	}
	return s.userRepo.GetByID(ctx, user.ID)
}

// Update changes a user's details. A blank password leaves the stored
// hash untouched.
func (s *UserService) Update(ctx context.Context, caps enum.Capabilities, id uint, input *UserInput) (*entity.User, error) {
	if err := requireManage(caps); err != nil {
		return nil, err
	}
	if err := validateUser(input, false); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	user.Name = input.Name
	user.Father = input.Father
	user.CNIC = input.CNIC
	if input.Password != "" {
		if len(input.Password) < 6 {
			return nil, apperror.NewBadRequestError("Password must be at least 6 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, apperror.ErrInternalServer
		}
		user.Password = string(hashed)
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user together with its privilege record
func (s *UserService) Delete(ctx context.Context, caps enum.Capabilities, id uint) error {
	if err := requireManage(caps); err != nil {
		return err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}
	return s.userRepo.Delete(ctx, id)
}

// Get retrieves a user by ID
func (s *UserService) Get(ctx context.Context, caps enum.Capabilities, id uint) (*entity.User, error) {
	if err := requireManage(caps); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// List lists users with their privilege records
func (s *UserService) List(ctx context.Context, caps enum.Capabilities, params *repository.UserFilterParams) (*pagination.PaginatedResult[entity.User], error) {
	if err := requireManage(caps); err != nil {
		return nil, err
	}

	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(users, pag), nil
}

// SetPrivilege replaces the capability flags on a user's privilege record.
// Newly issued tokens pick up the change; existing access tokens keep
// their old capability set until they expire.
func (s *UserService) SetPrivilege(ctx context.Context, caps enum.Capabilities, userID uint, input *PrivilegeInput) (*entity.UserPrivilege, error) {
	if err := requireManage(caps); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	privilege := &entity.UserPrivilege{
		UserID:          userID,
		CanViewSales:    input.CanViewSales,
		CanEditSales:    input.CanEditSales,
		CanViewPurchase: input.CanViewPurchase,
		CanEditPurchase: input.CanEditPurchase,
		CanManageUsers:  input.CanManageUsers,
	}
	if err := s.userRepo.SavePrivilege(ctx, privilege); err != nil {
		return nil, err
	}
	return s.userRepo.GetPrivilege(ctx, userID)
}

// GetPrivilege retrieves a user's privilege record
func (s *UserService) GetPrivilege(ctx context.Context, caps enum.Capabilities, userID uint) (*entity.UserPrivilege, error) {
	if err := requireManage(caps); err != nil {
		return nil, err
	}

	privilege, err := s.userRepo.GetPrivilege(ctx, userID)
	if err != nil {
		return nil, err
	}
	if privilege == nil {
		return nil, apperror.NewNotFoundError("Privilege record")
	}
	return privilege, nil
}

func requireManage(caps enum.Capabilities) error {
	if !caps.Has(enum.CapManageUsers) {
		return apperror.NewForbiddenError("Missing privilege: " + string(enum.CapManageUsers))
	}
	return nil
}
