package service

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/pkg/apperror"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// SaleService handles sales ledger operations
type SaleService struct {
	saleRepo   repository.SaleRepository
	storeRepo  repository.StoreRepository
	reconciler *Reconciler
	reports    *ReportService
	log        *logrus.Logger
}

// NewSaleService creates a new sale service
func NewSaleService(
	saleRepo repository.SaleRepository,
	storeRepo repository.StoreRepository,
	reconciler *Reconciler,
	reports *ReportService,
	log *logrus.Logger,
) *SaleService {
	return &SaleService{
		saleRepo:   saleRepo,
		storeRepo:  storeRepo,
		reconciler: reconciler,
		reports:    reports,
		log:        log,
	}
}

// SaleInput represents a sales ledger entry to record or rewrite
type SaleInput struct {
	ProductID   string
	ProductCode string
	Price       float64
	Profit      float64
	Total       float64
	ClientName  string
	ClientCNIC  string
	SaleDate    *time.Time
}

func validateSale(input *SaleInput) error {
	var fieldErrors []apperror.FieldError
	if input.ProductID == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "product_id", Message: "Product ID is required"})
	}
	if input.ProductCode == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "product_code", Message: "Product code is required"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if input.Total < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "total", Message: "Total must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// SaleResult carries the recorded sale and the catalog row it depleted.
// Item is nil when the product code did not resolve (soft-fail).
type SaleResult struct {
	Sale *entity.Sale `json:"sale"`
	Item *entity.Item `json:"item,omitempty"`
}

// Record validates and persists a sale and depletes one unit of stock when
// the product code resolves against the purchase ledger.
func (s *SaleService) Record(ctx context.Context, caps enum.Capabilities, input *SaleInput) (*SaleResult, error) {
	if err := validateSale(input); err != nil {
		return nil, err
	}

	date := time.Now()
	if input.SaleDate != nil {
		date = *input.SaleDate
	}

	sale := &entity.Sale{
		ProductID:   input.ProductID,
		ProductCode: input.ProductCode,
		Price:       input.Price,
		Profit:      input.Profit,
		Total:       input.Total,
		ClientName:  input.ClientName,
		ClientCNIC:  input.ClientCNIC,
		SaleDate:    date,
	}

	item, err := s.reconciler.ApplySale(ctx, caps, sale)
	if err != nil {
		return nil, err
	}

	return &SaleResult{Sale: sale, Item: item}, nil
}

// Update rewrites a sales row; prior stock depletion stays in place.
func (s *SaleService) Update(ctx context.Context, caps enum.Capabilities, id uint, input *SaleInput) (*entity.Sale, error) {
	if err := validateSale(input); err != nil {
		return nil, err
	}

	prev, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if prev == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}

	next := *prev
	next.ProductID = input.ProductID
	next.ProductCode = input.ProductCode
	next.Price = input.Price
	next.Profit = input.Profit
	next.Total = input.Total
	next.ClientName = input.ClientName
	next.ClientCNIC = input.ClientCNIC
	if input.SaleDate != nil {
		next.SaleDate = *input.SaleDate
	}

	if err := s.reconciler.UpdateSale(ctx, caps, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// Delete removes a sales row. Stock follows the reconciler's mutation
// policy.
func (s *SaleService) Delete(ctx context.Context, caps enum.Capabilities, id uint) error {
	prev, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if prev == nil {
		return apperror.NewNotFoundError("Sale")
	}
	return s.reconciler.DeleteSale(ctx, caps, prev)
}

// Get retrieves a sale by ID
func (s *SaleService) Get(ctx context.Context, caps enum.Capabilities, id uint) (*entity.Sale, error) {
	if !caps.Has(enum.CapViewSales) {
		return nil, apperror.NewForbiddenError("Missing privilege: " + string(enum.CapViewSales))
	}
	sale, err := s.saleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// List lists sales, newest first, with case-insensitive substring search
// over every column except id.
func (s *SaleService) List(ctx context.Context, caps enum.Capabilities, params *repository.SaleFilterParams) (*pagination.PaginatedResult[entity.Sale], error) {
	if !caps.Has(enum.CapViewSales) {
		return nil, apperror.NewForbiddenError("Missing privilege: " + string(enum.CapViewSales))
	}

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(sales, pag), nil
}

// Receipt renders the recent sales into a receipt artifact headed by the
// store profile and returns its file path. Failures surface as transport
// errors; nothing in the ledgers is affected.
func (s *SaleService) Receipt(ctx context.Context, caps enum.Capabilities) (string, error) {
	if !caps.Has(enum.CapViewSales) {
		return "", apperror.NewForbiddenError("Missing privilege: " + string(enum.CapViewSales))
	}

	profile, err := s.storeRepo.Latest(ctx)
	if err != nil {
		return "", err
	}

	params := &repository.SaleFilterParams{Pagination: pagination.DefaultPagination()}
	sales, _, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return "", err
	}

	path, err := s.reports.SalesReceipt(profile, sales)
	if err != nil {
		s.log.WithError(err).Error("receipt generation failed")
		return "", apperror.NewTransportError("Failed to generate receipt: " + err.Error())
	}
	return path, nil
}
