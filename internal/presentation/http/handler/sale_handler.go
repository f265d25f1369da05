package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/storebook/storebook-api/internal/application/service"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/request"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/response"
)

// SaleHandler handles sales ledger HTTP requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales
func (h *SaleHandler) List(c *gin.Context) {
	params := &repository.SaleFilterParams{
		Pagination: ParsePagination(c),
		Search:     c.Query("search"),
	}

	result, err := h.saleService.List(c.Request.Context(), GetCapabilities(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved successfully", result)
}

// Get handles retrieving a single sale
func (h *SaleHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.Get(c.Request.Context(), GetCapabilities(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale retrieved successfully", sale)
}

// Create handles recording a sale
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.saleService.Record(c.Request.Context(), GetCapabilities(c), saleInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sale recorded successfully", result)
}

// Update handles editing a sale
func (h *SaleHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	var req request.SaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	sale, err := h.saleService.Update(c.Request.Context(), GetCapabilities(c), id, saleInput(&req))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale updated successfully", sale)
}

// Delete handles removing a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	if err := h.saleService.Delete(c.Request.Context(), GetCapabilities(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sale deleted successfully", nil)
}

// Receipt generates a receipt spreadsheet and streams it back
func (h *SaleHandler) Receipt(c *gin.Context) {
	path, err := h.saleService.Receipt(c.Request.Context(), GetCapabilities(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.FileAttachment(path, "receipt.xlsx")
}

func saleInput(req *request.SaleRequest) *service.SaleInput {
	input := &service.SaleInput{
		ProductID:   req.ProductID,
		ProductCode: req.ProductCode,
		Price:       req.Price,
		Profit:      req.Profit,
		Total:       req.Total,
		ClientName:  req.ClientName,
		ClientCNIC:  req.ClientCNIC,
	}
	if req.SaleDate != "" {
		if date, err := time.Parse("2006-01-02", req.SaleDate); err == nil {
			input.SaleDate = &date
		}
	}
	return input
}
