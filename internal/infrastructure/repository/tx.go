package repository

import (
	"context"

	"gorm.io/gorm"

	domainRepo "github.com/storebook/storebook-api/internal/domain/repository"
)

type ctxKey string

// txKey is the context key carrying the transaction of the current unit of
// work. Repositories pick it up so every statement of a logical mutation
// commits or rolls back together.
const txKey ctxKey = "tx"

type txManager struct {
	db *gorm.DB
}

// NewTxManager creates the unit-of-work manager backing the reconciler's
// transactional boundary.
func NewTxManager(db *gorm.DB) domainRepo.TxManager {
	return &txManager{db: db}
}

func (m *txManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(WithTx(ctx, tx))
	})
}

// WithTx stores a transaction in the context for nested repository calls.
func WithTx(ctx context.Context, tx *gorm.DB) context.Context {
	return context.WithValue(ctx, txKey, tx)
}

// dbFrom resolves the handle for a repository call: the transaction of the
// enclosing unit of work when one is open, the shared handle otherwise.
func dbFrom(ctx context.Context, fallback *gorm.DB) *gorm.DB {
	if tx, ok := ctx.Value(txKey).(*gorm.DB); ok {
		return tx
	}
	return fallback.WithContext(ctx)
}
