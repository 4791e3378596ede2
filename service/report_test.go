package service

import (
	"context"
	"testing"

	"crmbackend/models"
	"crmbackend/repository"
)

func seedReporting(t *testing.T) *repository.Memory {
	t.Helper()
	mem := repository.NewMemory()
	mem.AddOrder(models.Order{Number: "OC-1", ClientID: "c1", SaleDate: "2025-01-15", ServiceStatus: "done", Total: 100})
	mem.AddOrder(models.Order{Number: "OC-2", ClientID: "c2", SaleDate: "2025-01-20", ServiceStatus: "pending", Total: 50})
	mem.AddOrder(models.Order{Number: "OC-3", ClientID: "c1", SaleDate: "2025-02-01", ServiceStatus: "done", Total: 80})
	mem.AddPurchase(models.Purchase{Number: "CP-1", ProviderID: "pr1", PurchaseDate: "2025-01-10", ServiceStatus: "done", TotalFinal: 120})
	mem.AddPurchase(models.Purchase{Number: "CP-2", ProviderID: "pr2", PurchaseDate: "2025-02-05", ServiceStatus: "pending", TotalFinal: 40})
	return mem
}

func TestSalesReportFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedReporting(t).Reports())

	rows, err := svc.SalesReport(ctx, SalesFilter{From: "2025-01-01", To: "2025-01-31"})
	if err != nil {
		t.Fatalf("sales report: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 january orders, got %d", len(rows))
	}
	if rows[0].Number != "OC-1" || rows[1].Number != "OC-2" {
		t.Fatalf("rows out of date order: %+v", rows)
	}

	rows, err = svc.SalesReport(ctx, SalesFilter{ClientID: "c1", Status: "done"})
	if err != nil {
		t.Fatalf("sales report: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 done orders for c1, got %d", len(rows))
	}
}

func TestPurchasesReportFilters(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedReporting(t).Reports())

	rows, err := svc.PurchasesReport(ctx, PurchasesFilter{ProviderID: "pr2"})
	if err != nil {
		t.Fatalf("purchases report: %v", err)
	}
	if len(rows) != 1 || rows[0].Number != "CP-2" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
}

func TestProductSalesReportAggregatesByProduct(t *testing.T) {
	ctx := context.Background()
	mem := seedReporting(t)
	lines := mem.OrderLines()
	for _, line := range []models.OrderLine{
		{OrderNumber: "OC-1", ProductID: "p1", Quantity: 4, UnitPrice: 10},
		{OrderNumber: "OC-2", ProductID: "p2", Quantity: 2, UnitPrice: 30},
		{OrderNumber: "OC-3", ProductID: "p1", Quantity: 1, UnitPrice: 10},
	} {
		l := line
		if err := lines.Insert(ctx, &l); err != nil {
			t.Fatalf("seed line: %v", err)
		}
	}

	svc := NewReportService(mem.Reports())
	rows, err := svc.ProductSalesReport(ctx)
	if err != nil {
		t.Fatalf("product sales report: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 products, got %d", len(rows))
	}
	if rows[0].ProductID != "p2" || rows[0].Revenue != 60 {
		t.Fatalf("top product wrong: %+v", rows[0])
	}
	if rows[1].ProductID != "p1" || rows[1].Quantity != 5 || rows[1].Revenue != 50 {
		t.Fatalf("second product wrong: %+v", rows[1])
	}
}

func TestBalanceReportNetsByMonth(t *testing.T) {
	ctx := context.Background()
	svc := NewReportService(seedReporting(t).Reports())

	rows, err := svc.BalanceReport(ctx, "", "")
	if err != nil {
		t.Fatalf("balance report: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 periods, got %d", len(rows))
	}
	jan, feb := rows[0], rows[1]
	if jan.Period != "2025-01" || jan.Sales != 150 || jan.Purchases != 120 || jan.Balance != 30 {
		t.Fatalf("january row wrong: %+v", jan)
	}
	if feb.Period != "2025-02" || feb.Sales != 80 || feb.Purchases != 40 || feb.Balance != 40 {
		t.Fatalf("february row wrong: %+v", feb)
	}
}
