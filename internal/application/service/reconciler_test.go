package service

import (
	"context"
	"testing"

	"github.com/storebook/storebook-api/internal/domain/entity"
	"github.com/storebook/storebook-api/pkg/apperror"
)

func recordPurchase(t *testing.T, svc *PurchaseService, name, code string, quantity int, price float64) *RecordResult {
	t.Helper()
	result, err := svc.Record(context.Background(), allCaps(), &PurchaseInput{
		ProductName:   name,
		ProductCode:   code,
		Quantity:      quantity,
		PurchasePrice: price,
	})
	if err != nil {
		t.Fatalf("record purchase %s: %v", name, err)
	}
	return result
}

func recordSale(t *testing.T, svc *SaleService, productID, code string) *SaleResult {
	t.Helper()
	result, err := svc.Record(context.Background(), allCaps(), &SaleInput{
		ProductID:   productID,
		ProductCode: code,
		Price:       10,
		Total:       10,
	})
	if err != nil {
		t.Fatalf("record sale %s: %v", code, err)
	}
	return result
}

func TestPurchaseCreatesCatalogItem(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(false))

	result := recordPurchase(t, svc, "Widget", "W-1", 10, 2.5)

	if result.Item == nil {
		t.Fatal("expected a catalog item in the result")
	}
	if result.Item.Quantity != 10 {
		t.Errorf("item quantity = %d, want 10", result.Item.Quantity)
	}
	if result.Item.Price != 2.5 {
		t.Errorf("item price = %v, want 2.5", result.Item.Price)
	}
	if !result.Item.SystemGenerated() {
		t.Error("auto-created item should carry the system-generated description")
	}
	if result.Purchase.TotalPrice != 25 {
		t.Errorf("purchase total = %v, want 25", result.Purchase.TotalPrice)
	}
}

func TestPurchaseAccumulatesExistingItem(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(false))

	recordPurchase(t, svc, "Widget", "W-1", 10, 2.5)
	result := recordPurchase(t, svc, "Widget", "W-2", 5, 3.0)

	if result.Item.Quantity != 15 {
		t.Errorf("item quantity = %d, want 15", result.Item.Quantity)
	}
	// The latest purchase price wins.
	if result.Item.Price != 3.0 {
		t.Errorf("item price = %v, want 3.0", result.Item.Price)
	}

	item, err := env.items.GetByName(context.Background(), "Widget")
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if item == nil || item.Quantity != 15 {
		t.Fatalf("persisted item = %+v, want quantity 15", item)
	}
}

func TestSaleDepletesLatestPurchaseAndItem(t *testing.T) {
	env := newTestEnv(t)
	purchaseSvc := NewPurchaseService(env.purchases, env.reconciler(false))
	saleSvc := NewSaleService(env.sales, env.stores, env.reconciler(false), nil, env.log)

	first := recordPurchase(t, purchaseSvc, "Widget", "W-1", 10, 2.5)
	second := recordPurchase(t, purchaseSvc, "Widget", "W-1", 5, 3.0)

	result := recordSale(t, saleSvc, "Widget", "W-1")

	if result.Item == nil {
		t.Fatal("resolved sale should return the updated item")
	}
	if result.Item.Quantity != 14 {
		t.Errorf("item quantity = %d, want 14", result.Item.Quantity)
	}

	ctx := context.Background()
	latest, err := env.purchases.GetByID(ctx, second.Purchase.ID)
	if err != nil {
		t.Fatalf("get latest purchase: %v", err)
	}
	if latest.Quantity != 4 {
		t.Errorf("latest purchase quantity = %d, want 4 (one unit depleted)", latest.Quantity)
	}

	untouched, err := env.purchases.GetByID(ctx, first.Purchase.ID)
	if err != nil {
		t.Fatalf("get first purchase: %v", err)
	}
	if untouched.Quantity != 10 {
		t.Errorf("earlier purchase quantity = %d, want 10 (untouched)", untouched.Quantity)
	}
}

func TestSaleUnresolvedCodeSoftFails(t *testing.T) {
	env := newTestEnv(t)
	purchaseSvc := NewPurchaseService(env.purchases, env.reconciler(false))
	saleSvc := NewSaleService(env.sales, env.stores, env.reconciler(false), nil, env.log)

	recordPurchase(t, purchaseSvc, "Widget", "W-1", 10, 2.5)

	result, err := saleSvc.Record(context.Background(), allCaps(), &SaleInput{
		ProductID:   "Widget",
		ProductCode: "NO-SUCH-CODE",
		Price:       10,
	})
	if err != nil {
		t.Fatalf("unresolved code must not be an error: %v", err)
	}
	if result.Item != nil {
		t.Error("unresolved sale should not report a depleted item")
	}
	if result.Sale.ID == 0 {
		t.Error("the sale row should still be persisted")
	}

	item, _ := env.items.GetByName(context.Background(), "Widget")
	if item.Quantity != 10 {
		t.Errorf("item quantity = %d, want 10 (stock untouched)", item.Quantity)
	}
}

func TestSaleClampsQuantityAtZero(t *testing.T) {
	env := newTestEnv(t)
	purchaseSvc := NewPurchaseService(env.purchases, env.reconciler(false))
	saleSvc := NewSaleService(env.sales, env.stores, env.reconciler(false), nil, env.log)

	recordPurchase(t, purchaseSvc, "Widget", "W-1", 1, 2.5)

	recordSale(t, saleSvc, "Widget", "W-1")
	recordSale(t, saleSvc, "Widget", "W-1")

	ctx := context.Background()
	item, _ := env.items.GetByName(ctx, "Widget")
	if item.Quantity != 0 {
		t.Errorf("item quantity = %d, want 0 (clamped)", item.Quantity)
	}

	purchase, err := env.purchases.GetLatestByCode(ctx, "W-1")
	if err != nil {
		t.Fatalf("get purchase: %v", err)
	}
	if purchase.Quantity != 0 {
		t.Errorf("purchase quantity = %d, want 0 (clamped)", purchase.Quantity)
	}
}

func TestPurchaseMutationsKeepStockByDefault(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(false))
	ctx := context.Background()

	result := recordPurchase(t, svc, "Widget", "W-1", 10, 2.5)

	if _, err := svc.Update(ctx, allCaps(), result.Purchase.ID, &PurchaseInput{
		ProductName:   "Widget",
		ProductCode:   "W-1",
		Quantity:      3,
		PurchasePrice: 2.5,
	}); err != nil {
		t.Fatalf("update purchase: %v", err)
	}

	item, _ := env.items.GetByName(ctx, "Widget")
	if item.Quantity != 10 {
		t.Errorf("after update, item quantity = %d, want 10 (stock untouched)", item.Quantity)
	}

	if err := svc.Delete(ctx, allCaps(), result.Purchase.ID); err != nil {
		t.Fatalf("delete purchase: %v", err)
	}

	item, _ = env.items.GetByName(ctx, "Widget")
	if item.Quantity != 10 {
		t.Errorf("after delete, item quantity = %d, want 10 (stock untouched)", item.Quantity)
	}
}

func TestPurchaseMutationsReverseInCorrectedMode(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(true))
	ctx := context.Background()

	result := recordPurchase(t, svc, "Widget", "W-1", 10, 2.5)

	// 10 -> 3 applies a delta of -7.
	if _, err := svc.Update(ctx, allCaps(), result.Purchase.ID, &PurchaseInput{
		ProductName:   "Widget",
		ProductCode:   "W-1",
		Quantity:      3,
		PurchasePrice: 2.5,
	}); err != nil {
		t.Fatalf("update purchase: %v", err)
	}

	item, _ := env.items.GetByName(ctx, "Widget")
	if item.Quantity != 3 {
		t.Errorf("after corrected update, item quantity = %d, want 3", item.Quantity)
	}

	if err := svc.Delete(ctx, allCaps(), result.Purchase.ID); err != nil {
		t.Fatalf("delete purchase: %v", err)
	}

	item, _ = env.items.GetByName(ctx, "Widget")
	if item.Quantity != 0 {
		t.Errorf("after corrected delete, item quantity = %d, want 0", item.Quantity)
	}
}

func TestSaleDeleteRestoresStockInCorrectedMode(t *testing.T) {
	env := newTestEnv(t)
	purchaseSvc := NewPurchaseService(env.purchases, env.reconciler(true))
	saleSvc := NewSaleService(env.sales, env.stores, env.reconciler(true), nil, env.log)
	ctx := context.Background()

	recordPurchase(t, purchaseSvc, "Widget", "W-1", 10, 2.5)
	sale := recordSale(t, saleSvc, "Widget", "W-1")

	if err := saleSvc.Delete(ctx, allCaps(), sale.Sale.ID); err != nil {
		t.Fatalf("delete sale: %v", err)
	}

	item, _ := env.items.GetByName(ctx, "Widget")
	if item.Quantity != 10 {
		t.Errorf("item quantity = %d, want 10 (depletion restored)", item.Quantity)
	}

	purchase, _ := env.purchases.GetLatestByCode(ctx, "W-1")
	if purchase.Quantity != 10 {
		t.Errorf("purchase quantity = %d, want 10 (depletion restored)", purchase.Quantity)
	}
}

func TestSaleUpdateNeverTouchesStock(t *testing.T) {
	env := newTestEnv(t)
	purchaseSvc := NewPurchaseService(env.purchases, env.reconciler(true))
	saleSvc := NewSaleService(env.sales, env.stores, env.reconciler(true), nil, env.log)
	ctx := context.Background()

	recordPurchase(t, purchaseSvc, "Widget", "W-1", 10, 2.5)
	sale := recordSale(t, saleSvc, "Widget", "W-1")

	if _, err := saleSvc.Update(ctx, allCaps(), sale.Sale.ID, &SaleInput{
		ProductID:   "Widget",
		ProductCode: "W-1",
		Price:       99,
		Total:       99,
	}); err != nil {
		t.Fatalf("update sale: %v", err)
	}

	item, _ := env.items.GetByName(ctx, "Widget")
	if item.Quantity != 9 {
		t.Errorf("item quantity = %d, want 9 (update leaves depletion in place)", item.Quantity)
	}
}

func TestReconcilerRejectsMissingCapability(t *testing.T) {
	env := newTestEnv(t)
	rec := env.reconciler(false)
	ctx := context.Background()

	_, err := rec.ApplyPurchase(ctx, noCaps(), &entity.Purchase{ProductName: "Widget", Quantity: 1})
	if appErr := apperror.GetAppError(err); appErr.Code != 403 {
		t.Errorf("ApplyPurchase without capability: code = %d, want 403", appErr.Code)
	}

	_, err = rec.ApplySale(ctx, noCaps(), &entity.Sale{ProductID: "Widget", ProductCode: "W-1"})
	if appErr := apperror.GetAppError(err); appErr.Code != 403 {
		t.Errorf("ApplySale without capability: code = %d, want 403", appErr.Code)
	}

	// Nothing was persisted.
	var count int64
	env.db.Model(&entity.Purchase{}).Count(&count)
	if count != 0 {
		t.Errorf("purchase rows = %d, want 0", count)
	}
	env.db.Model(&entity.Sale{}).Count(&count)
	if count != 0 {
		t.Errorf("sale rows = %d, want 0", count)
	}
}
