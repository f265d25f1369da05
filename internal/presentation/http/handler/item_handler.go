package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storebook/storebook-api/internal/application/service"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/request"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/response"
)

// ItemHandler handles catalog HTTP requests
type ItemHandler struct {
	catalogService *service.CatalogService
}

// NewItemHandler creates a new item handler
func NewItemHandler(catalogService *service.CatalogService) *ItemHandler {
	return &ItemHandler{catalogService: catalogService}
}

// List handles listing catalog items
func (h *ItemHandler) List(c *gin.Context) {
	params := &repository.ItemFilterParams{
		Pagination: ParsePagination(c),
		Search:     c.Query("search"),
	}

	result, err := h.catalogService.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Items retrieved successfully", result)
}

// Get handles retrieving a single item
func (h *ItemHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.catalogService.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item retrieved successfully", item)
}

// Create handles an explicit catalog entry
func (h *ItemHandler) Create(c *gin.Context) {
	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.Create(c.Request.Context(), GetCapabilities(c), &service.ItemInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Item created successfully", item)
}

// Update handles editing an item
func (h *ItemHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.ItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.catalogService.Update(c.Request.Context(), GetCapabilities(c), id, &service.ItemInput{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Price:       req.Price,
		Description: req.Description,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item updated successfully", item)
}

// Delete handles removing an item
func (h *ItemHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.catalogService.Delete(c.Request.Context(), GetCapabilities(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item deleted successfully", nil)
}
