package service

import (
	"context"
	"time"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/internal/domain/stock"
	"github.com/storebook/storebook-api/pkg/apperror"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// PurchaseService handles purchase ledger operations
type PurchaseService struct {
	purchaseRepo repository.PurchaseRepository
	reconciler   *Reconciler
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(purchaseRepo repository.PurchaseRepository, reconciler *Reconciler) *PurchaseService {
	return &PurchaseService{
		purchaseRepo: purchaseRepo,
		reconciler:   reconciler,
	}
}

// PurchaseInput represents a purchase ledger entry to record or rewrite
type PurchaseInput struct {
	ProductName     string
	ProductCode     string
	Quantity        int
	PurchasePrice   float64
	SupplierName    string
	SupplierContact string
	PurchaseDate    *time.Time
}

func validatePurchase(input *PurchaseInput) error {
	var fieldErrors []apperror.FieldError
	if input.ProductName == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "product_name", Message: "Product name is required"})
	}
	if input.Quantity <= 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Quantity must be a positive number"})
	}
	if input.PurchasePrice < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "purchase_price", Message: "Purchase price must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// RecordResult carries the recorded entry and the catalog row it updated
type RecordResult struct {
	Purchase *entity.Purchase `json:"purchase"`
	Item     *entity.Item     `json:"item"`
}

// Record validates and persists a purchase and applies its stock increment
// to the catalog in one transaction.
func (s *PurchaseService) Record(ctx context.Context, caps enum.Capabilities, input *PurchaseInput) (*RecordResult, error) {
	if err := validatePurchase(input); err != nil {
		return nil, err
	}

	date := time.Now()
	if input.PurchaseDate != nil {
		date = *input.PurchaseDate
	}

	purchase := &entity.Purchase{
		ProductName:     input.ProductName,
		ProductCode:     input.ProductCode,
		Quantity:        input.Quantity,
		PurchasePrice:   input.PurchasePrice,
		TotalPrice:      stock.TotalPrice(input.Quantity, input.PurchasePrice),
		SupplierName:    input.SupplierName,
		SupplierContact: input.SupplierContact,
		PurchaseDate:    date,
	}

	item, err := s.reconciler.ApplyPurchase(ctx, caps, purchase)
	if err != nil {
		return nil, err
	}

	return &RecordResult{Purchase: purchase, Item: item}, nil
}

// Update rewrites a ledger row and recomputes its total. Stock follows the
// reconciler's mutation policy.
func (s *PurchaseService) Update(ctx context.Context, caps enum.Capabilities, id uint, input *PurchaseInput) (*entity.Purchase, error) {
	if err := validatePurchase(input); err != nil {
		return nil, err
	}

	prev, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}

	next := *prev
	next.ProductName = input.ProductName
	next.ProductCode = input.ProductCode
	next.Quantity = input.Quantity
	next.PurchasePrice = input.PurchasePrice
	next.TotalPrice = stock.TotalPrice(input.Quantity, input.PurchasePrice)
	next.SupplierName = input.SupplierName
	next.SupplierContact = input.SupplierContact
	if input.PurchaseDate != nil {
		next.PurchaseDate = *input.PurchaseDate
	}

	if _, err := s.reconciler.UpdatePurchase(ctx, caps, prev, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Delete removes a ledger row. Stock follows the reconciler's mutation
// policy.
func (s *PurchaseService) Delete(ctx context.Context, caps enum.Capabilities, id uint) error {
	prev, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prev == nil {
		return apperror.NewNotFoundError("Purchase")
	}
	return s.reconciler.DeletePurchase(ctx, caps, prev)
}

// Get retrieves a purchase by ID
func (s *PurchaseService) Get(ctx context.Context, caps enum.Capabilities, id uint) (*entity.Purchase, error) {
	if !caps.Has(enum.CapViewPurchase) {
		return nil, apperror.NewForbiddenError("Missing privilege: " + string(enum.CapViewPurchase))
	}
	purchase, err := s.purchaseRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if purchase == nil {
		return nil, apperror.NewNotFoundError("Purchase")
	}
	return purchase, nil
}

// List lists purchases, newest first, with case-insensitive substring
// search over product and supplier columns.
func (s *PurchaseService) List(ctx context.Context, caps enum.Capabilities, params *repository.PurchaseFilterParams) (*pagination.PaginatedResult[entity.Purchase], error) {
	if !caps.Has(enum.CapViewPurchase) {
		return nil, apperror.NewForbiddenError("Missing privilege: " + string(enum.CapViewPurchase))
	}

	purchases, total, err := s.purchaseRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(purchases, pag), nil
}
