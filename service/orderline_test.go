package service

import (
	"context"
	"errors"
	"testing"

	"crmbackend/models"
	"crmbackend/repository"
)

func setupOrders(t *testing.T) (*repository.Memory, *OrderService, string) {
	t.Helper()
	mem := repository.NewMemory()
	productID := mem.AddProduct(models.Product{Code: "P-001", Name: "Engine filter", Quantity: 10, UnitPrice: 5})
	mem.AddOrder(models.Order{Number: "OC-100", ClientID: "c1", SaleDate: "2025-03-10", ServiceStatus: "pending"})
	svc := NewOrderService(mem.Products(), mem.Orders(), mem.OrderLines())
	return mem, svc, productID
}

func stockOf(t *testing.T, mem *repository.Memory, id string) float64 {
	t.Helper()
	p, err := mem.Products().GetByID(context.Background(), id)
	if err != nil {
		t.Fatalf("get product: %v", err)
	}
	return p.Quantity
}

func totalOf(t *testing.T, mem *repository.Memory, number string) float64 {
	t.Helper()
	o, err := mem.Orders().GetByNumber(context.Background(), number)
	if err != nil {
		t.Fatalf("get order: %v", err)
	}
	return o.Total
}

func TestLineLifecycleAdjustsStockAndTotal(t *testing.T) {
	ctx := context.Background()
	mem, svc, productID := setupOrders(t)

	line := &models.OrderLine{OrderNumber: "OC-100", ProductID: productID, Quantity: 4, UnitPrice: 5}
	if err := svc.CreateLine(ctx, line); err != nil {
		t.Fatalf("create line: %v", err)
	}
	if got := stockOf(t, mem, productID); got != 6 {
		t.Fatalf("stock after create = %v, want 6", got)
	}
	if got := totalOf(t, mem, "OC-100"); got != 20 {
		t.Fatalf("total after create = %v, want 20", got)
	}

	qty := 6.0
	if _, err := svc.UpdateLine(ctx, line.ID.Hex(), models.UpdateOrderLine{Quantity: &qty}); err != nil {
		t.Fatalf("update line: %v", err)
	}
	if got := stockOf(t, mem, productID); got != 4 {
		t.Fatalf("stock after update = %v, want 4", got)
	}
	if got := totalOf(t, mem, "OC-100"); got != 30 {
		t.Fatalf("total after update = %v, want 30", got)
	}

	if err := svc.DeleteLine(ctx, line.ID.Hex()); err != nil {
		t.Fatalf("delete line: %v", err)
	}
	if got := stockOf(t, mem, productID); got != 10 {
		t.Fatalf("stock after delete = %v, want 10", got)
	}
	if got := totalOf(t, mem, "OC-100"); got != 0 {
		t.Fatalf("total after delete = %v, want 0", got)
	}
}

func TestCreateLineRejectsInsufficientStock(t *testing.T) {
	ctx := context.Background()
	mem, svc, productID := setupOrders(t)

	err := svc.CreateLine(ctx, &models.OrderLine{OrderNumber: "OC-100", ProductID: productID, Quantity: 11, UnitPrice: 5})
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Available != 10 || stockErr.Requested != 11 {
		t.Fatalf("error quantities = %v/%v, want 10/11", stockErr.Available, stockErr.Requested)
	}

	// nothing mutated
	if got := stockOf(t, mem, productID); got != 10 {
		t.Fatalf("stock = %v, want 10 untouched", got)
	}
	lines, err := mem.OrderLines().ListByOrder(ctx, "OC-100")
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected no lines, got %d", len(lines))
	}
}

func TestUpdateLineRechecksStockOnGrowth(t *testing.T) {
	ctx := context.Background()
	mem, svc, productID := setupOrders(t)

	line := &models.OrderLine{OrderNumber: "OC-100", ProductID: productID, Quantity: 4, UnitPrice: 5}
	if err := svc.CreateLine(ctx, line); err != nil {
		t.Fatalf("create line: %v", err)
	}

	// 6 remain in stock; growing the line by 16 must fail without mutation
	qty := 20.0
	_, err := svc.UpdateLine(ctx, line.ID.Hex(), models.UpdateOrderLine{Quantity: &qty})
	var stockErr *InsufficientStockError
	if !errors.As(err, &stockErr) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stockErr.Available != 6 || stockErr.Requested != 16 {
		t.Fatalf("error quantities = %v/%v, want 6/16", stockErr.Available, stockErr.Requested)
	}
	if got := stockOf(t, mem, productID); got != 6 {
		t.Fatalf("stock = %v, want 6 untouched", got)
	}
	if got := totalOf(t, mem, "OC-100"); got != 20 {
		t.Fatalf("total = %v, want 20 untouched", got)
	}
}

func TestShrinkingLineReturnsStock(t *testing.T) {
	ctx := context.Background()
	mem, svc, productID := setupOrders(t)

	line := &models.OrderLine{OrderNumber: "OC-100", ProductID: productID, Quantity: 8, UnitPrice: 5}
	if err := svc.CreateLine(ctx, line); err != nil {
		t.Fatalf("create line: %v", err)
	}

	qty := 3.0
	if _, err := svc.UpdateLine(ctx, line.ID.Hex(), models.UpdateOrderLine{Quantity: &qty}); err != nil {
		t.Fatalf("update line: %v", err)
	}
	if got := stockOf(t, mem, productID); got != 7 {
		t.Fatalf("stock = %v, want 7", got)
	}
	if got := totalOf(t, mem, "OC-100"); got != 15 {
		t.Fatalf("total = %v, want 15", got)
	}
}

func TestDeleteOrderRestoresStockOncePerLine(t *testing.T) {
	ctx := context.Background()
	mem, svc, productID := setupOrders(t)
	otherID := mem.AddProduct(models.Product{Code: "P-002", Name: "Brake pad", Quantity: 5, UnitPrice: 12})

	if err := svc.CreateLine(ctx, &models.OrderLine{OrderNumber: "OC-100", ProductID: productID, Quantity: 4, UnitPrice: 5}); err != nil {
		t.Fatalf("create line 1: %v", err)
	}
	if err := svc.CreateLine(ctx, &models.OrderLine{OrderNumber: "OC-100", ProductID: otherID, Quantity: 2, UnitPrice: 12}); err != nil {
		t.Fatalf("create line 2: %v", err)
	}

	if err := svc.DeleteOrder(ctx, "OC-100"); err != nil {
		t.Fatalf("delete order: %v", err)
	}

	if got := stockOf(t, mem, productID); got != 10 {
		t.Fatalf("stock of P-001 = %v, want 10", got)
	}
	if got := stockOf(t, mem, otherID); got != 5 {
		t.Fatalf("stock of P-002 = %v, want 5", got)
	}
	lines, err := mem.OrderLines().ListByOrder(ctx, "OC-100")
	if err != nil {
		t.Fatalf("list lines: %v", err)
	}
	if len(lines) != 0 {
		t.Fatalf("expected all lines deleted, got %d", len(lines))
	}
	if _, err := mem.Orders().GetByNumber(ctx, "OC-100"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected order gone, got %v", err)
	}
}

func TestCreateLineUnknownOrderOrProduct(t *testing.T) {
	ctx := context.Background()
	_, svc, productID := setupOrders(t)

	err := svc.CreateLine(ctx, &models.OrderLine{OrderNumber: "OC-999", ProductID: productID, Quantity: 1})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for unknown order, got %v", err)
	}

	err = svc.CreateLine(ctx, &models.OrderLine{OrderNumber: "OC-100", ProductID: "missing", Quantity: 1})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected not found for unknown product, got %v", err)
	}
}
