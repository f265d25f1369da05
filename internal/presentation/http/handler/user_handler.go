package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/storebook/storebook-api/internal/application/service"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/request"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/response"
)

// UserHandler handles user management HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// List handles listing users
func (h *UserHandler) List(c *gin.Context) {
	params := &repository.UserFilterParams{
		Pagination: ParsePagination(c),
		Search:     c.Query("search"),
	}

	result, err := h.userService.List(c.Request.Context(), GetCapabilities(c), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Users retrieved successfully", result)
}

// Get handles retrieving a single user
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userService.Get(c.Request.Context(), GetCapabilities(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User retrieved successfully", user)
}

// Create handles registering a user
func (h *UserHandler) Create(c *gin.Context) {
	var req request.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Create(c.Request.Context(), GetCapabilities(c), &service.UserInput{
		Name:     req.Name,
		Father:   req.Father,
		CNIC:     req.CNIC,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "User created successfully", user)
}

// Update handles editing a user
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.UserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	user, err := h.userService.Update(c.Request.Context(), GetCapabilities(c), id, &service.UserInput{
		Name:     req.Name,
		Father:   req.Father,
		CNIC:     req.CNIC,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User updated successfully", user)
}

// Delete handles removing a user
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userService.Delete(c.Request.Context(), GetCapabilities(c), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "User deleted successfully", nil)
}

// GetPrivilege retrieves a user's privilege record
func (h *UserHandler) GetPrivilege(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	privilege, err := h.userService.GetPrivilege(c.Request.Context(), GetCapabilities(c), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Privilege retrieved successfully", privilege)
}

// SetPrivilege replaces a user's privilege record
func (h *UserHandler) SetPrivilege(c *gin.Context) {
	id, ok := ParseIDParam(c)
	if !ok {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.PrivilegeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	privilege, err := h.userService.SetPrivilege(c.Request.Context(), GetCapabilities(c), id, &service.PrivilegeInput{
		CanViewSales:    req.CanViewSales,
		CanEditSales:    req.CanEditSales,
		CanViewPurchase: req.CanViewPurchase,
		CanEditPurchase: req.CanEditPurchase,
		CanManageUsers:  req.CanManageUsers,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Privilege updated successfully", privilege)
}
