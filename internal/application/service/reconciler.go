package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/internal/domain/enum"
	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/internal/domain/stock"
	"github.com/storebook/storebook-api/pkg/apperror"
)

// Reconciler is the single transactional boundary for every mutation that
// touches a ledger and the catalog together: the ledger row and the stock
// delta commit or roll back as one unit.
type Reconciler struct {
	tx        repository.TxManager
	items     repository.ItemRepository
	purchases repository.PurchaseRepository
	sales     repository.SaleRepository

	// reverseOnMutate switches update/delete from the historical
	// append-only behavior (stock untouched) to the corrected mode that
	// reverses the delta a row had applied.
	reverseOnMutate bool

	log *logrus.Logger
}

// NewReconciler creates the reconciliation engine
func NewReconciler(
	tx repository.TxManager,
	items repository.ItemRepository,
	purchases repository.PurchaseRepository,
	sales repository.SaleRepository,
	reverseOnMutate bool,
	log *logrus.Logger,
) *Reconciler {
	return &Reconciler{
		tx:              tx,
		items:           items,
		purchases:       purchases,
		sales:           sales,
		reverseOnMutate: reverseOnMutate,
		log:             log,
	}
}

func (r *Reconciler) require(caps enum.Capabilities, cap enum.Capability) error {
	if !caps.Has(cap) {
		return apperror.NewForbiddenError("Missing privilege: " + string(cap))
	}
	return nil
}

// ApplyPurchase persists the purchase and applies its stock increment to
// the catalog, creating the item when the product name is new. Returns the
// updated catalog row.
func (r *Reconciler) ApplyPurchase(ctx context.Context, caps enum.Capabilities, purchase *entity.Purchase) (*entity.Item, error) {
	if err := r.require(caps, enum.CapEditPurchase); err != nil {
		return nil, err
	}

	var item *entity.Item
	err := r.tx.Do(ctx, func(ctx context.Context) error {
		if err := r.purchases.Create(ctx, purchase); err != nil {
			return err
		}
		price := purchase.PurchasePrice
		updated, err := r.items.UpsertByName(ctx, purchase.ProductName, purchase.Quantity, &price)
		if err != nil {
			return err
		}
		item = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdatePurchase rewrites the ledger row. In the default mode the stock
// delta the row originally applied stays in place; in corrected mode the
// catalog absorbs the quantity difference.
func (r *Reconciler) UpdatePurchase(ctx context.Context, caps enum.Capabilities, prev, next *entity.Purchase) (*entity.Item, error) {
	if err := r.require(caps, enum.CapEditPurchase); err != nil {
		return nil, err
	}

	var item *entity.Item
	err := r.tx.Do(ctx, func(ctx context.Context) error {
		if err := r.purchases.Update(ctx, next); err != nil {
			return err
		}
		if !r.reverseOnMutate {
			return nil
		}
		delta := next.Quantity - prev.Quantity
		price := next.PurchasePrice
		updated, err := r.items.UpsertByName(ctx, next.ProductName, delta, &price)
		if err != nil {
			return err
		}
		item = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// DeletePurchase removes the ledger row. The stock increment it applied is
// kept in the default mode and subtracted in corrected mode.
func (r *Reconciler) DeletePurchase(ctx context.Context, caps enum.Capabilities, prev *entity.Purchase) error {
	if err := r.require(caps, enum.CapEditPurchase); err != nil {
		return err
	}

	return r.tx.Do(ctx, func(ctx context.Context) error {
		if err := r.purchases.Delete(ctx, prev.ID); err != nil {
			return err
		}
		if !r.reverseOnMutate {
			return nil
		}
		existing, err := r.items.GetByName(ctx, prev.ProductName)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		_, err = r.items.UpsertByName(ctx, prev.ProductName, -prev.Quantity, nil)
		return err
	})
}

// ApplySale persists the sale and depletes one unit from the purchase row
// its product code resolves to, and from the catalog item that purchase
// names. An unresolvable code records the sale and leaves stock untouched:
// a soft-fail, not an error. Returns the updated catalog row, or nil when
// nothing was depleted.
func (r *Reconciler) ApplySale(ctx context.Context, caps enum.Capabilities, sale *entity.Sale) (*entity.Item, error) {
	if err := r.require(caps, enum.CapEditSales); err != nil {
		return nil, err
	}

	var item *entity.Item
	err := r.tx.Do(ctx, func(ctx context.Context) error {
		if err := r.sales.Create(ctx, sale); err != nil {
			return err
		}

		purchase, err := r.purchases.GetLatestByCode(ctx, sale.ProductCode)
		if err != nil {
			return err
		}
		if purchase == nil {
			r.log.WithFields(logrus.Fields{
				"sale_id":      sale.ID,
				"product_code": sale.ProductCode,
			}).Warn("sale recorded without stock depletion: product code unresolved")
			return nil
		}

		if _, err := r.purchases.AtomicDecrementQuantity(ctx, purchase.ID, stock.SaleUnits); err != nil {
			return err
		}

		existing, err := r.items.GetByName(ctx, purchase.ProductName)
		if err != nil {
			return err
		}
		if existing == nil {
			r.log.WithFields(logrus.Fields{
				"sale_id":      sale.ID,
				"product_name": purchase.ProductName,
			}).Warn("sale resolved to a purchase whose item is missing from the catalog")
			return nil
		}

		updated, err := r.items.UpsertByName(ctx, purchase.ProductName, -stock.SaleUnits, nil)
		if err != nil {
			return err
		}
		item = updated
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

// UpdateSale rewrites the sales row only. A sale depletes exactly one unit
// regardless of its price fields, so quantity is untouched in both modes.
func (r *Reconciler) UpdateSale(ctx context.Context, caps enum.Capabilities, sale *entity.Sale) error {
	if err := r.require(caps, enum.CapEditSales); err != nil {
		return err
	}
	return r.tx.Do(ctx, func(ctx context.Context) error {
		return r.sales.Update(ctx, sale)
	})
}

// DeleteSale removes the sales row. Default mode keeps the one-unit
// depletion; corrected mode restores it when the code still resolves.
func (r *Reconciler) DeleteSale(ctx context.Context, caps enum.Capabilities, prev *entity.Sale) error {
	if err := r.require(caps, enum.CapEditSales); err != nil {
		return err
	}

	return r.tx.Do(ctx, func(ctx context.Context) error {
		if err := r.sales.Delete(ctx, prev.ID); err != nil {
			return err
		}
		if !r.reverseOnMutate {
			return nil
		}

		purchase, err := r.purchases.GetLatestByCode(ctx, prev.ProductCode)
		if err != nil {
			return err
		}
		if purchase == nil {
			return nil
		}

		restored := *purchase
		restored.Quantity = purchase.Quantity + stock.SaleUnits
		if err := r.purchases.Update(ctx, &restored); err != nil {
			return err
		}

		existing, err := r.items.GetByName(ctx, purchase.ProductName)
		if err != nil {
			return err
		}
		if existing == nil {
			return nil
		}
		_, err = r.items.UpsertByName(ctx, purchase.ProductName, stock.SaleUnits, nil)
		return err
	})
}
