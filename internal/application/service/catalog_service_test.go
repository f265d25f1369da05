package service

import (
	"context"
	"testing"

	"github.com/storebook/storebook-api/pkg/apperror"
)

func newCatalogService(env *testEnv) *CatalogService {
	return NewCatalogService(env.items, env.purchases, env.sales, nil, nil, "", env.log)
}

func TestCreateItemRejectsDuplicateName(t *testing.T) {
	env := newTestEnv(t)
	svc := newCatalogService(env)
	ctx := context.Background()

	if _, err := svc.Create(ctx, allCaps(), &ItemInput{Name: "Widget", Quantity: 5, Price: 2}); err != nil {
		t.Fatalf("create: %v", err)
	}

	_, err := svc.Create(ctx, allCaps(), &ItemInput{Name: "Widget", Quantity: 1, Price: 1})
	if appErr := apperror.GetAppError(err); appErr.Code != 409 {
		t.Errorf("duplicate name: code = %d, want 409", appErr.Code)
	}
}

func TestItemValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := newCatalogService(env)
	ctx := context.Background()

	tests := []struct {
		name  string
		input ItemInput
	}{
		{"missing name", ItemInput{Quantity: 1}},
		{"negative quantity", ItemInput{Name: "Widget", Quantity: -1}},
		{"negative price", ItemInput{Name: "Widget", Price: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, allCaps(), &tt.input)
			if appErr := apperror.GetAppError(err); appErr.Code != 422 {
				t.Errorf("code = %d, want 422", appErr.Code)
			}
		})
	}
}

func TestDeleteItemBlockedByPurchases(t *testing.T) {
	env := newTestEnv(t)
	svc := newCatalogService(env)
	purchaseSvc := NewPurchaseService(env.purchases, env.reconciler(false))
	ctx := context.Background()

	result := recordPurchase(t, purchaseSvc, "Widget", "W-1", 10, 2.5)

	err := svc.Delete(ctx, allCaps(), result.Item.ID)
	if !apperror.IsReferential(err) {
		t.Fatalf("delete with live purchase rows: %v, want referential conflict", err)
	}

	// Still present.
	if item, _ := env.items.GetByID(ctx, result.Item.ID); item == nil {
		t.Error("item must survive a blocked delete")
	}
}

func TestDeleteItemBlockedBySales(t *testing.T) {
	env := newTestEnv(t)
	svc := newCatalogService(env)
	purchaseSvc := NewPurchaseService(env.purchases, env.reconciler(false))
	saleSvc := NewSaleService(env.sales, env.stores, env.reconciler(false), nil, env.log)
	ctx := context.Background()

	result := recordPurchase(t, purchaseSvc, "Widget", "W-1", 10, 2.5)
	recordSale(t, saleSvc, "Widget", "W-1")

	err := svc.Delete(ctx, allCaps(), result.Item.ID)
	if !apperror.IsReferential(err) {
		t.Fatalf("delete with dependent sales: %v, want referential conflict", err)
	}
}

func TestDeleteItemSucceedsWhenUnreferenced(t *testing.T) {
	env := newTestEnv(t)
	svc := newCatalogService(env)
	ctx := context.Background()

	item, err := svc.Create(ctx, allCaps(), &ItemInput{Name: "Widget", Quantity: 5, Price: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Delete(ctx, allCaps(), item.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if got, _ := env.items.GetByID(ctx, item.ID); got != nil {
		t.Error("item should be gone")
	}
}

func TestUpdateItemRewritesFields(t *testing.T) {
	env := newTestEnv(t)
	svc := newCatalogService(env)
	ctx := context.Background()

	item, err := svc.Create(ctx, allCaps(), &ItemInput{Name: "Widget", Quantity: 5, Price: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(ctx, allCaps(), item.ID, &ItemInput{
		Name:        "Widget Mk2",
		Quantity:    0,
		Price:       3.5,
		Description: "revised",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Quantity != 0 {
		t.Errorf("quantity = %d, want 0 (zero must persist)", updated.Quantity)
	}

	persisted, _ := env.items.GetByID(ctx, item.ID)
	if persisted.Name != "Widget Mk2" || persisted.Quantity != 0 || persisted.Price != 3.5 {
		t.Errorf("persisted = %+v, want rewritten fields", persisted)
	}
}

func TestCatalogWritesRequireCapability(t *testing.T) {
	env := newTestEnv(t)
	svc := newCatalogService(env)
	ctx := context.Background()

	if _, err := svc.Create(ctx, noCaps(), &ItemInput{Name: "Widget"}); apperror.GetAppError(err).Code != 403 {
		t.Error("create without capability should be 403")
	}
	if err := svc.Delete(ctx, noCaps(), 1); apperror.GetAppError(err).Code != 403 {
		t.Error("delete without capability should be 403")
	}
}
