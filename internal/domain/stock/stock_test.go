package stock

import (
	"testing"

	"github.com/storebook/storebook-api/internal/domain/entity"
)

func TestQuantityApply(t *testing.T) {
	tests := []struct {
		name  string
		start Quantity
		delta int
		want  Quantity
	}{
		{"increment", 10, 5, 15},
		{"decrement", 10, -1, 9},
		{"to zero", 1, -1, 0},
		{"clamp at zero", 0, -1, 0},
		{"clamp deep underflow", 3, -10, 0},
		{"zero delta", 7, 0, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.start.Apply(tt.delta); got != tt.want {
				t.Errorf("Apply(%d) on %d = %d, want %d", tt.delta, tt.start, got, tt.want)
			}
		})
	}
}

func TestQuantityApplySequence(t *testing.T) {
	// Two purchases then a sale: 0 +10 +5 -1 = 14.
	q := Quantity(0).Apply(10).Apply(5).Apply(-SaleUnits)
	if q != 14 {
		t.Fatalf("sequence = %d, want 14", q)
	}
}

func TestTotalPrice(t *testing.T) {
	tests := []struct {
		quantity  int
		unitPrice float64
		want      float64
	}{
		{10, 2.5, 25},
		{3, 0.1, 0.3},
		{7, 19.99, 139.93},
		{0, 5, 0},
	}

	for _, tt := range tests {
		if got := TotalPrice(tt.quantity, tt.unitPrice); got != tt.want {
			t.Errorf("TotalPrice(%d, %v) = %v, want %v", tt.quantity, tt.unitPrice, got, tt.want)
		}
	}
}

func TestResolveByCode(t *testing.T) {
	purchases := []entity.Purchase{
		{ID: 1, ProductName: "Widget", ProductCode: "W-1", Quantity: 10},
		{ID: 2, ProductName: "Gadget", ProductCode: "G-1", Quantity: 4},
		{ID: 3, ProductName: "Widget", ProductCode: "W-1", Quantity: 5},
	}

	got := ResolveByCode(purchases, "W-1")
	if got == nil {
		t.Fatal("expected a match for W-1")
	}
	if got.ID != 3 {
		t.Errorf("latest row for W-1 has id %d, want 3", got.ID)
	}

	if ResolveByCode(purchases, "missing") != nil {
		t.Error("unknown code should resolve to nil")
	}
	if ResolveByCode(purchases, "") != nil {
		t.Error("empty code should resolve to nil")
	}
}

func TestResolveName(t *testing.T) {
	purchases := []entity.Purchase{
		{ID: 1, ProductName: "Widget", ProductCode: "W-1"},
	}

	name, ok := ResolveName(purchases, "W-1")
	if !ok || name != "Widget" {
		t.Errorf("ResolveName = (%q, %v), want (Widget, true)", name, ok)
	}

	if _, ok := ResolveName(purchases, "X-9"); ok {
		t.Error("unknown code should not resolve to a name")
	}
}
