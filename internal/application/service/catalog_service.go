package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/pkg/apperror"
	"github.com/storebook/storebook-api/pkg/email"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// CatalogService handles direct catalog store operations: explicit item
// entry, edits and deletes, plus the report-and-notify side effects that
// follow a save.
type CatalogService struct {
	itemRepo     repository.ItemRepository
	purchaseRepo repository.PurchaseRepository
	saleRepo     repository.SaleRepository
	reports      *ReportService
	emailService *email.EmailService
	notifyTo     string
	log          *logrus.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	itemRepo repository.ItemRepository,
	purchaseRepo repository.PurchaseRepository,
	saleRepo repository.SaleRepository,
	reports *ReportService,
	emailService *email.EmailService,
	notifyTo string,
	log *logrus.Logger,
) *CatalogService {
	return &CatalogService{
		itemRepo:     itemRepo,
		purchaseRepo: purchaseRepo,
		saleRepo:     saleRepo,
		reports:      reports,
		emailService: emailService,
		notifyTo:     notifyTo,
		log:          log,
	}
}

// ItemInput represents an explicit catalog entry
type ItemInput struct {
	Name        string
	Quantity    int
	Price       float64
	Description string
}

func validateItem(input *ItemInput) error {
	var fieldErrors []apperror.FieldError
	if input.Name == "" {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "name", Message: "Name is required"})
	}
	if input.Quantity < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "quantity", Message: "Quantity must not be negative"})
	}
	if input.Price < 0 {
		fieldErrors = append(fieldErrors, apperror.FieldError{Field: "price", Message: "Price must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return apperror.NewValidationError(fieldErrors)
	}
	return nil
}

// Create validates and inserts a new item, then generates its report and
// mails it as post-commit best-effort side effects.
func (s *CatalogService) Create(ctx context.Context, caps enum.Capabilities, input *ItemInput) (*entity.Item, error) {
	if err := s.requireEdit(caps); err != nil {
		return nil, err
	}
	if err := validateItem(input); err != nil {
		return nil, err
	}

	existing, err := s.itemRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewAppError(409, "An item with this name already exists")
	}

	item := &entity.Item{
		Name:        input.Name,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Description: input.Description,
	}
	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	s.notify(item)
	return item, nil
}

// Update validates and rewrites an item. The creation timestamp is kept.
func (s *CatalogService) Update(ctx context.Context, caps enum.Capabilities, id uint, input *ItemInput) (*entity.Item, error) {
	if err := s.requireEdit(caps); err != nil {
		return nil, err
	}
	if err := validateItem(input); err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}

	item.Name = input.Name
	item.Quantity = input.Quantity
	item.Price = input.Price
	item.Description = input.Description
	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	s.notify(item)
	return item, nil
}

// Delete removes an item unless ledger rows still reference it, either
// purchases by its name or sales by a code those purchases recorded.
func (s *CatalogService) Delete(ctx context.Context, caps enum.Capabilities, id uint) error {
	if err := s.requireEdit(caps); err != nil {
		return err
	}

	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Item")
	}

	codes, err := s.purchaseRepo.CodesForProductName(ctx, item.Name)
	if err != nil {
		return err
	}
	saleCount, err := s.saleRepo.CountByCodes(ctx, codes)
	if err != nil {
		return err
	}
	if saleCount > 0 {
		return apperror.NewReferentialError("Item is referenced by sales ledger entries")
	}

	purchaseCount, err := s.purchaseRepo.CountByProductName(ctx, item.Name)
	if err != nil {
		return err
	}
	if purchaseCount > 0 {
		return apperror.NewReferentialError("Item is referenced by purchase ledger entries")
	}

	return s.itemRepo.Delete(ctx, id)
}

// Get retrieves an item by ID
func (s *CatalogService) Get(ctx context.Context, id uint) (*entity.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Item")
	}
	return item, nil
}

// List lists items, newest first
func (s *CatalogService) List(ctx context.Context, params *repository.ItemFilterParams) (*pagination.PaginatedResult[entity.Item], error) {
	items, total, err := s.itemRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(items, pag), nil
}

// requireEdit gates catalog mutations behind the purchase-edit privilege:
// stock-in owns the catalog.
func (s *CatalogService) requireEdit(caps enum.Capabilities) error {
	if !caps.Has(enum.CapEditPurchase) {
		return apperror.NewForbiddenError("Missing privilege: " + string(enum.CapEditPurchase))
	}
	return nil
}

// notify generates the item report and mails it. Both are best-effort:
// failures are logged and never unwind the committed catalog write.
func (s *CatalogService) notify(item *entity.Item) {
	if s.reports == nil {
		return
	}
	path, err := s.reports.ItemReport(item)
	if err != nil {
		s.log.WithError(err).WithField("item_id", item.ID).Error("item report generation failed")
		return
	}
	if s.emailService == nil || s.notifyTo == "" {
		return
	}
	if err := s.emailService.Send(s.notifyTo, "Item saved: "+item.Name, "The attached report was generated for the saved item.", path); err != nil {
		s.log.WithError(err).WithField("item_id", item.ID).Error("item report delivery failed")
	}
}
