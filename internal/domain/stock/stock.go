// Package stock holds the pure reconciliation primitives: the non-negative
// quantity state machine and the product-identity resolution across the
// ledgers. Everything here is side-effect free so the rules can be tested
// without a database.
package stock

import (
	"github.com/shopspring/decimal"

	"github.com/storebook/storebook-api/internal/domain/entity"
)

// Quantity is the on-hand figure for one product. Valid values are >= 0;
// transitions clamp rather than underflow.
type Quantity int

// Apply adds delta to the quantity, flooring the result at zero.
func (q Quantity) Apply(delta int) Quantity {
	next := int(q) + delta
	if next < 0 {
		return 0
	}
	return Quantity(next)
}

// SaleUnits is how much stock a single recorded sale depletes.
const SaleUnits = 1

// TotalPrice computes quantity x unit price with decimal arithmetic,
// rounded to two places.
func TotalPrice(quantity int, unitPrice float64) float64 {
	total := decimal.NewFromInt(int64(quantity)).Mul(decimal.NewFromFloat(unitPrice))
	f, _ := total.Round(2).Float64()
	return f
}

// ResolveByCode picks the purchase row a sale's product code depletes: the
// most recently recorded row with that code, highest id winning ties.
// Returns nil if no row matches; callers treat that as a soft-fail.
func ResolveByCode(purchases []entity.Purchase, code string) *entity.Purchase {
	if code == "" {
		return nil
	}
	var latest *entity.Purchase
	for i := range purchases {
		p := &purchases[i]
		if p.ProductCode != code {
			continue
		}
		if latest == nil || p.ID > latest.ID {
			latest = p
		}
	}
	return latest
}

// ResolveName maps a sale's product code to the catalog name it depletes,
// via the latest purchase carrying that code. The bool is false when the
// code is unknown to the purchase ledger.
func ResolveName(purchases []entity.Purchase, code string) (string, bool) {
	p := ResolveByCode(purchases, code)
	if p == nil {
		return "", false
	}
	return p.ProductName, true
}
