package database

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/storebook/storebook-api/internal/config"
	"github.com/storebook/storebook-api/internal/domain/entity"
)

// NewSQLiteDB opens the file-backed store. The whole system shares this
// single handle; every logical mutation runs as one scoped transaction on
// it rather than reopening the file per call.
func NewSQLiteDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	gormLogger := logger.Default
	if !cfg.LogMode {
		gormLogger = gormLogger.LogMode(logger.Silent)
	}

	db, err := gorm.Open(sqlite.Open(cfg.Path), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// SQLite allows one writer; a second concurrent opener gets busy-retry
	// instead of corruption.
	sqlDB.SetMaxOpenConns(1)

	_, _ = sqlDB.Exec("PRAGMA journal_mode = WAL;")
	_, _ = sqlDB.Exec("PRAGMA synchronous = NORMAL;")
	_, _ = sqlDB.Exec("PRAGMA busy_timeout = 5000;")
	_, _ = sqlDB.Exec("PRAGMA foreign_keys = ON;")

	log.Println("Successfully opened SQLite store at", cfg.Path)
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.UserPrivilege{},
		&entity.StoreProfile{},
		&entity.Item{},
		&entity.Purchase{},
		&entity.Sale{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the first administrator when configured via
// environment variables and none exists yet.
func SeedDefaultData(db *gorm.DB) error {
	adminName := viper.GetString("ADMIN_NAME")
	adminPassword := viper.GetString("ADMIN_PASSWORD")

	if adminName == "" || adminPassword == "" {
		return nil
	}

	var existing entity.User
	if err := db.Where("name = ?", adminName).First(&existing).Error; err == nil {
		log.Printf("Admin user already exists: %s", adminName)
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := entity.User{
		Name:     adminName,
		Password: string(hashedPassword),
		Privilege: &entity.UserPrivilege{
			CanViewSales:    true,
			CanEditSales:    true,
			CanViewPurchase: true,
			CanEditPurchase: true,
			CanManageUsers:  true,
		},
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Admin user created: %s", adminName)
	return nil
}
