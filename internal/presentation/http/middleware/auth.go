package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/presentation/http/dto/response"
	"github.com/storebook/storebook-api/pkg/utils"
)

// AuthMiddleware creates a JWT authentication middleware
func AuthMiddleware(jwtManager *utils.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "Authorization header is required")
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			response.Unauthorized(c, "Invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := jwtManager.ValidateAccessToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("capabilities", enum.FromNames(claims.Capabilities))

		c.Next()
	}
}

// RequireCapability creates a middleware that rejects callers whose token
// does not grant the given capability. Services re-check at their entry
// points, so this is the fast path, not the authority.
func RequireCapability(cap enum.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		capsVal, exists := c.Get("capabilities")
		if !exists {
			response.Forbidden(c, "Access denied")
			c.Abort()
			return
		}

		caps, ok := capsVal.(enum.Capabilities)
		if !ok || !caps.Has(cap) {
			response.Forbidden(c, "You do not have permission to perform this action")
			c.Abort()
			return
		}

		c.Next()
	}
}
