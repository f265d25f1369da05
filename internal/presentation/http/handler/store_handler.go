package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storebook/storebook-api/internal/application/service"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/request"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/response"
)

// StoreHandler handles store details HTTP requests
type StoreHandler struct {
	storeService *service.StoreService
}

// NewStoreHandler creates a new store handler
func NewStoreHandler(storeService *service.StoreService) *StoreHandler {
	return &StoreHandler{storeService: storeService}
}

// Get returns the current store profile
func (h *StoreHandler) Get(c *gin.Context) {
	profile, err := h.storeService.Current(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Store profile retrieved successfully", profile)
}

// Save records new store details
func (h *StoreHandler) Save(c *gin.Context) {
	var req request.StoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.storeService.Save(c.Request.Context(), GetCapabilities(c), &service.StoreInput{
		StoreName: req.StoreName,
		Address:   req.Address,
		Email:     req.Email,
		Contact:   req.Contact,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Store profile saved successfully", profile)
}
