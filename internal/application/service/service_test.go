package service

import (
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/storebook/storebook-api/internal/config"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/internal/infrastructure/database"
	infraRepo "github.com/storebook/storebook-api/internal/infrastructure/repository"
	"github.com/storebook/storebook-api/pkg/utils"
)

// testEnv wires the real repositories against a throwaway SQLite file so
// the engine is exercised end to end, transactions included.
type testEnv struct {
	db        *gorm.DB
	tx        repository.TxManager
	items     repository.ItemRepository
	purchases repository.PurchaseRepository
	sales     repository.SaleRepository
	users     repository.UserRepository
	stores    repository.StoreRepository
	log       *logrus.Logger
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := database.NewSQLiteDB(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "test.db"),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}

	log := logrus.New()
	log.SetOutput(io.Discard)

	return &testEnv{
		db:        db,
		tx:        infraRepo.NewTxManager(db),
		items:     infraRepo.NewItemRepository(db),
		purchases: infraRepo.NewPurchaseRepository(db),
		sales:     infraRepo.NewSaleRepository(db),
		users:     infraRepo.NewUserRepository(db),
		stores:    infraRepo.NewStoreRepository(db),
		log:       log,
	}
}

func (e *testEnv) reconciler(reverseOnMutate bool) *Reconciler {
	return NewReconciler(e.tx, e.items, e.purchases, e.sales, reverseOnMutate, e.log)
}

func newTestAuthService(e *testEnv) *AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(e.users, jwtManager)
}

func allCaps() enum.Capabilities {
	return enum.AllCapabilities()
}

func noCaps() enum.Capabilities {
	return enum.Capabilities{}
}
