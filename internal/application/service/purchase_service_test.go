package service

import (
	"context"
	"testing"

	"github.com/storebook/storebook-api/internal/domain/repository"
	"github.com/storebook/storebook-api/pkg/apperror"
	"github.com/storebook/storebook-api/pkg/pagination"
)

func TestRecordPurchaseValidation(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(false))
	ctx := context.Background()

	tests := []struct {
		name  string
		input PurchaseInput
	}{
		{"missing name", PurchaseInput{Quantity: 1, PurchasePrice: 1}},
		{"zero quantity", PurchaseInput{ProductName: "Widget", Quantity: 0}},
		{"negative quantity", PurchaseInput{ProductName: "Widget", Quantity: -5}},
		{"negative price", PurchaseInput{ProductName: "Widget", Quantity: 1, PurchasePrice: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Record(ctx, allCaps(), &tt.input)
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if appErr := apperror.GetAppError(err); appErr.Code != 422 {
				t.Errorf("code = %d, want 422", appErr.Code)
			}
		})
	}

	// Validation failures must not write anything.
	params := &repository.PurchaseFilterParams{Pagination: pagination.DefaultPagination()}
	result, err := svc.List(ctx, allCaps(), params)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if result.Pagination.Total != 0 {
		t.Errorf("purchase rows = %d, want 0", result.Pagination.Total)
	}
}

func TestPurchaseSearchRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(false))
	ctx := context.Background()

	recordPurchase(t, svc, "Widget", "W-1", 10, 2.5)
	recordPurchase(t, svc, "Gadget", "G-1", 5, 4.0)

	result, err := svc.List(ctx, allCaps(), &repository.PurchaseFilterParams{
		Pagination: pagination.DefaultPagination(),
		Search:     "wiDG",
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("search matched %d rows, want 1", len(result.Items))
	}
	if result.Items[0].ProductName != "Widget" {
		t.Errorf("matched %q, want Widget", result.Items[0].ProductName)
	}
}

func TestUpdatePurchaseRecomputesTotal(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(false))
	ctx := context.Background()

	result := recordPurchase(t, svc, "Widget", "W-1", 10, 2.5)

	updated, err := svc.Update(ctx, allCaps(), result.Purchase.ID, &PurchaseInput{
		ProductName:   "Widget",
		ProductCode:   "W-1",
		Quantity:      4,
		PurchasePrice: 3.0,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.TotalPrice != 12 {
		t.Errorf("total = %v, want 12", updated.TotalPrice)
	}

	persisted, err := env.purchases.GetByID(ctx, result.Purchase.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if persisted.TotalPrice != 12 {
		t.Errorf("persisted total = %v, want 12", persisted.TotalPrice)
	}
}

func TestPurchaseNotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(false))
	ctx := context.Background()

	if _, err := svc.Get(ctx, allCaps(), 999); apperror.GetAppError(err).Code != 404 {
		t.Error("get of a missing purchase should be 404")
	}
	if err := svc.Delete(ctx, allCaps(), 999); apperror.GetAppError(err).Code != 404 {
		t.Error("delete of a missing purchase should be 404")
	}
}

func TestPurchaseViewRequiresCapability(t *testing.T) {
	env := newTestEnv(t)
	svc := NewPurchaseService(env.purchases, env.reconciler(false))
	ctx := context.Background()

	params := &repository.PurchaseFilterParams{Pagination: pagination.DefaultPagination()}
	if _, err := svc.List(ctx, noCaps(), params); apperror.GetAppError(err).Code != 403 {
		t.Error("list without view capability should be 403")
	}
	if _, err := svc.Get(ctx, noCaps(), 1); apperror.GetAppError(err).Code != 403 {
		t.Error("get without view capability should be 403")
	}
}
