package service

import (
	"context"
	"errors"
	"testing"

	"crmbackend/models"
	"crmbackend/repository"
)

func setupPurchases(t *testing.T) (*repository.Memory, *PurchaseService) {
	t.Helper()
	mem := repository.NewMemory()
	mem.AddPurchase(models.Purchase{
		Number:        "CP-500",
		ProviderID:    "prov1",
		PurchaseDate:  "2025-04-02",
		Freight:       100,
		Customs:       50,
		ServiceStatus: "pending",
	})
	return mem, NewPurchaseService(mem.Purchases(), mem.PurchaseLines())
}

func purchaseOf(t *testing.T, mem *repository.Memory, number string) *models.Purchase {
	t.Helper()
	p, err := mem.Purchases().GetByNumber(context.Background(), number)
	if err != nil {
		t.Fatalf("get purchase: %v", err)
	}
	return p
}

func TestPurchaseLineCascadeRecomputesTotals(t *testing.T) {
	ctx := context.Background()
	mem, svc := setupPurchases(t)

	line := &models.PurchaseLine{PurchaseNumber: "CP-500", ProductID: "p1", Quantity: 10, UnitPrice: 20}
	if err := svc.CreateLine(ctx, line); err != nil {
		t.Fatalf("create line: %v", err)
	}
	if line.LineTotal != 200 {
		t.Fatalf("line total = %v, want 200", line.LineTotal)
	}
	p := purchaseOf(t, mem, "CP-500")
	if p.Subtotal != 200 || p.TotalFinal != 350 {
		t.Fatalf("totals = %v/%v, want 200/350", p.Subtotal, p.TotalFinal)
	}

	qty := 4.0
	price := 25.0
	if _, err := svc.UpdateLine(ctx, line.ID.Hex(), models.UpdatePurchaseLine{Quantity: &qty, UnitPrice: &price}); err != nil {
		t.Fatalf("update line: %v", err)
	}
	p = purchaseOf(t, mem, "CP-500")
	if p.Subtotal != 100 || p.TotalFinal != 250 {
		t.Fatalf("totals = %v/%v, want 100/250", p.Subtotal, p.TotalFinal)
	}

	if err := svc.DeleteLine(ctx, line.ID.Hex()); err != nil {
		t.Fatalf("delete line: %v", err)
	}
	p = purchaseOf(t, mem, "CP-500")
	if p.Subtotal != 0 || p.TotalFinal != 150 {
		t.Fatalf("totals = %v/%v, want 0/150 (freight+customs only)", p.Subtotal, p.TotalFinal)
	}
}

func TestClosedPurchaseRejectsLineEdits(t *testing.T) {
	ctx := context.Background()
	mem, svc := setupPurchases(t)

	line := &models.PurchaseLine{PurchaseNumber: "CP-500", ProductID: "p1", Quantity: 2, UnitPrice: 10}
	if err := svc.CreateLine(ctx, line); err != nil {
		t.Fatalf("create line: %v", err)
	}

	mem.AddPurchase(models.Purchase{Number: "CP-500", ServiceStatus: "done", Freight: 100, Customs: 50})

	if err := svc.CreateLine(ctx, &models.PurchaseLine{PurchaseNumber: "CP-500", ProductID: "p2", Quantity: 1, UnitPrice: 5}); !errors.Is(err, ErrPurchaseClosed) {
		t.Fatalf("expected ErrPurchaseClosed on create, got %v", err)
	}
	qty := 9.0
	if _, err := svc.UpdateLine(ctx, line.ID.Hex(), models.UpdatePurchaseLine{Quantity: &qty}); !errors.Is(err, ErrPurchaseClosed) {
		t.Fatalf("expected ErrPurchaseClosed on update, got %v", err)
	}
	if err := svc.DeleteLine(ctx, line.ID.Hex()); !errors.Is(err, ErrPurchaseClosed) {
		t.Fatalf("expected ErrPurchaseClosed on delete, got %v", err)
	}
}

func TestDeletePurchaseRemovesLines(t *testing.T) {
	ctx := context.Background()
	mem, svc := setupPurchases(t)

	for i := 0; i < 3; i++ {
		if err := svc.CreateLine(ctx, &models.PurchaseLine{PurchaseNumber: "CP-500", ProductID: "p1", Quantity: 1, UnitPrice: 10}); err != nil {
			t.Fatalf("create line %d: %v", i, err)
		}
	}

	if err := svc.DeletePurchase(ctx, "CP-500"); err != nil {
		t.Fatalf("delete purchase: %v", err)
	}
	lines, err := mem.PurchaseLines().ListByPurchase(ctx, "CP-500")
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
	if _, err := mem.Purchases().GetByNumber(ctx, "CP-500"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected purchase gone, got %v", err)
	}
}
