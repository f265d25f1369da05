package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storebook/storebook-api/internal/config"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/presentation/http/handler"
	"github.com/storebook/storebook-api/internal/presentation/http/middleware"
	"github.com/storebook/storebook-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth     *handler.AuthHandler
	Item     *handler.ItemHandler
	Purchase *handler.PurchaseHandler
	Sale     *handler.SaleHandler
	User     *handler.UserHandler
	Store    *handler.StoreHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager *utils.JWTManager
	Cfg        *config.Config
	Log        *logrus.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Log))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		auth := v1.Group("/auth")
		{
			auth.POST("/login", h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Profile routes
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Catalog items. Reads are open to any authenticated user; writes go
	// through the same capability the purchase ledger uses.
	items := protected.Group("/items")
	{
		items.GET("", h.Item.List)
		items.GET("/:id", h.Item.Get)
		items.POST("", middleware.RequireCapability(enum.CapEditPurchase), h.Item.Create)
		items.PUT("/:id", middleware.RequireCapability(enum.CapEditPurchase), h.Item.Update)
		items.DELETE("/:id", middleware.RequireCapability(enum.CapEditPurchase), h.Item.Delete)
	}

	// Purchase ledger
	purchases := protected.Group("/purchases")
	{
		purchases.GET("", middleware.RequireCapability(enum.CapViewPurchase), h.Purchase.List)
		purchases.GET("/:id", middleware.RequireCapability(enum.CapViewPurchase), h.Purchase.Get)
		purchases.POST("", middleware.RequireCapability(enum.CapEditPurchase), h.Purchase.Create)
		purchases.PUT("/:id", middleware.RequireCapability(enum.CapEditPurchase), h.Purchase.Update)
		purchases.DELETE("/:id", middleware.RequireCapability(enum.CapEditPurchase), h.Purchase.Delete)
	}

	// Sales ledger
	sales := protected.Group("/sales")
	{
		sales.GET("", middleware.RequireCapability(enum.CapViewSales), h.Sale.List)
		sales.GET("/:id", middleware.RequireCapability(enum.CapViewSales), h.Sale.Get)
		sales.GET("/receipt", middleware.RequireCapability(enum.CapViewSales), h.Sale.Receipt)
		sales.POST("", middleware.RequireCapability(enum.CapEditSales), h.Sale.Create)
		sales.PUT("/:id", middleware.RequireCapability(enum.CapEditSales), h.Sale.Update)
		sales.DELETE("/:id", middleware.RequireCapability(enum.CapEditSales), h.Sale.Delete)
	}

	// User management
	users := protected.Group("/users")
	users.Use(middleware.RequireCapability(enum.CapManageUsers))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.POST("", h.User.Create)
		users.PUT("/:id", h.User.Update)
		users.DELETE("/:id", h.User.Delete)
		users.GET("/:id/privilege", h.User.GetPrivilege)
		users.PUT("/:id/privilege", h.User.SetPrivilege)
	}

	// Store details
	store := protected.Group("/store")
	{
		store.GET("", h.Store.Get)
		store.PUT("", middleware.RequireCapability(enum.CapManageUsers), h.Store.Save)
	}
}
