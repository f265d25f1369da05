package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storebook/storebook-api/internal/application/service"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/request"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/response"
)

// PurchaseHandler handles purchase ledger HTTP requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// List handles listing purchases
func (h *PurchaseHandler) List(c *gin.Context) {
	params := &repository.PurchaseFilterParams{
		Pagination: ParsePagination(c),
		Search:     c.Query("search"),
	}

	result, err := h.purchaseService.List(c.Request.Context(), GetCapabilities(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Purchases retrieved successfully", result)
}

// Get handles retrieving a single purchase
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	purchase, err := h.purchaseService.Get(c.Request.Context(), GetCapabilities(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase retrieved successfully", purchase)
}

// Create handles recording a purchase
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.purchaseService.Record(c.Request.Context(), GetCapabilities(c), purchaseInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Purchase recorded successfully", result)
}

// Update handles editing a purchase
func (h *PurchaseHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	var req request.PurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	purchase, err := h.purchaseService.Update(c.Request.Context(), GetCapabilities(c), id, purchaseInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase updated successfully", purchase)
}

// Delete handles removing a purchase
func (h *PurchaseHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid purchase ID")
		return
	}

	if err := h.purchaseService.Delete(c.Request.Context(), GetCapabilities(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Purchase deleted successfully", nil)
}

func purchaseInput(req *request.PurchaseRequest) *service.PurchaseInput {
	input := &service.PurchaseInput{
		ProductName:     req.ProductName,
		ProductCode:     req.ProductCode,
		Quantity:        req.Quantity,
		PurchasePrice:   req.PurchasePrice,
		SupplierName:    req.SupplierName,
		SupplierContact: req.SupplierContact,
	}
	if req.PurchaseDate != "" {
		if date, err := time.Parse("2006-01-02", req.PurchaseDate); err == nil {
			input.PurchaseDate = &date
		}
	}
	return input
}
