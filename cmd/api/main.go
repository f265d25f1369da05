package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/storebook/storebook-api/internal/application/service"
	"github.com/storebook/storebook-api/internal/config"
	"github.com/storebook/storebook-api/internal/infrastructure/database"
	"github.com/storebook/storebook-api/internal/infrastructure/repository"
	"github.com/storebook/storebook-api/internal/presentation/http/handler"
	"github.com/storebook/storebook-api/internal/presentation/http/routes"
	"github.com/storebook/storebook-api/pkg/email"
	"github.com/storebook/storebook-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Structured logger
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if cfg.App.Debug {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewSQLiteDB(&cfg.Database)
	if err != nil {
		log.WithError(err).Fatal("Failed to open database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.WithError(err).Warn("Failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	storeRepo := repository.NewStoreRepository(db)
	itemRepo := repository.NewItemRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	txManager := repository.NewTxManager(db)

	// Initialize supporting services
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
	})
	reportService := service.NewReportService(cfg.Reports.Dir)

	// Initialize the reconciliation engine and application services
	reconciler := service.NewReconciler(txManager, itemRepo, purchaseRepo, saleRepo, cfg.Stock.ReverseOnMutate, log)
	authService := service.NewAuthService(userRepo, jwtManager)
	userService := service.NewUserService(userRepo)
	storeService := service.NewStoreService(storeRepo)
	catalogService := service.NewCatalogService(itemRepo, purchaseRepo, saleRepo, reportService, emailService, cfg.SMTP.DefaultTo, log)
	purchaseService := service.NewPurchaseService(purchaseRepo, reconciler)
	saleService := service.NewSaleService(saleRepo, storeRepo, reconciler, reportService, log)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Item:     handler.NewItemHandler(catalogService),
		Purchase: handler.NewPurchaseHandler(purchaseService),
		Sale:     handler.NewSaleHandler(saleService),
		User:     handler.NewUserHandler(userService),
		Store:    handler.NewStoreHandler(storeService),
	}

	// Setup router
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager: jwtManager,
		Cfg:        cfg,
		Log:        log,
	})

	// Start server
	log.WithField("port", cfg.App.Port).Info("Starting server")
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
