package repository

import "context"

// TxManager scopes a logical mutation to one unit of work: every
// repository call made through the callback's context shares a single
// transaction that commits when fn returns nil and rolls back otherwise.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
