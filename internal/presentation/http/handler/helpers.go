package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/pkg/pagination"
)

// GetUserID extracts the user ID from the Gin context
func GetUserID(c *gin.Context) uint {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		return 0
	}
	userID, ok := userIDVal.(uint)
	if !ok {
		return 0
	}
	return userID
}

// GetCapabilities extracts the capability token from the Gin context
func GetCapabilities(c *gin.Context) enum.Capabilities {
	capsVal, exists := c.Get("capabilities")
	if !exists {
		return enum.Capabilities{}
	}
	caps, ok := capsVal.(enum.Capabilities)
	if !ok {
		return enum.Capabilities{}
	}
	return caps
}

// ParseIDParam parses the :id path parameter
func ParseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// ParsePagination reads page and per_page query parameters
func ParsePagination(c *gin.Context) *pagination.PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{Page: page, PerPage: perPage}
	params.Validate()
	return params
}
