package service

import (
	"context"
	"sort"

	"crmbackend/repository"
	"crmbackend/utils"
)

// Reports load the collections wholesale and filter in memory, the way the
// reporting screens always have. Dates are ISO "2006-01-02" strings, so range
// checks are plain string comparisons.

type SalesFilter struct {
	From     string `form:"from"`
	To       string `form:"to"`
	ClientID string `form:"client_id"`
	Status   string `form:"status"`
}

type SalesRow struct {
	Number        string  `json:"number"`
	ClientID      string  `json:"client_id"`
	SaleDate      string  `json:"sale_date"`
	ServiceStatus string  `json:"service_status"`
	PaymentOption string  `json:"payment_option"`
	Total         float64 `json:"total"`
	Balance       float64 `json:"balance"`
}

type PurchasesFilter struct {
	From       string `form:"from"`
	To         string `form:"to"`
	ProviderID string `form:"provider_id"`
	Status     string `form:"status"`
}

type PurchaseRow struct {
	Number        string  `json:"number"`
	ProviderID    string  `json:"provider_id"`
	PurchaseDate  string  `json:"purchase_date"`
	ServiceStatus string  `json:"service_status"`
	Subtotal      float64 `json:"subtotal"`
	Freight       float64 `json:"freight"`
	Customs       float64 `json:"customs"`
	TotalFinal    float64 `json:"total_final"`
}

type BalanceRow struct {
	Period    string  `json:"period"` // "2006-01"
	Sales     float64 `json:"sales"`
	Purchases float64 `json:"purchases"`
	Balance   float64 `json:"balance"`
}

type ReportService struct {
	store repository.ReportStore
}

func NewReportService(store repository.ReportStore) *ReportService {
	return &ReportService{store: store}
}

func (s *ReportService) SalesReport(ctx context.Context, f SalesFilter) ([]SalesRow, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]SalesRow, 0, len(orders))
	for _, o := range orders {
		if f.From != "" && o.SaleDate < f.From {
			continue
		}
		if f.To != "" && o.SaleDate > f.To {
			continue
		}
		if f.ClientID != "" && o.ClientID != f.ClientID {
			continue
		}
		if f.Status != "" && o.ServiceStatus != f.Status {
			continue
		}
		rows = append(rows, SalesRow{
			Number:        o.Number,
			ClientID:      o.ClientID,
			SaleDate:      o.SaleDate,
			ServiceStatus: o.ServiceStatus,
			PaymentOption: o.PaymentOption,
			Total:         o.Total,
			Balance:       o.Balance,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].SaleDate < rows[j].SaleDate })
	return rows, nil
}

func (s *ReportService) PurchasesReport(ctx context.Context, f PurchasesFilter) ([]PurchaseRow, error) {
	purchases, err := s.store.AllPurchases(ctx)
	if err != nil {
		return nil, err
	}
	rows := make([]PurchaseRow, 0, len(purchases))
	for _, p := range purchases {
		if f.From != "" && p.PurchaseDate < f.From {
			continue
		}
		if f.To != "" && p.PurchaseDate > f.To {
			continue
		}
		if f.ProviderID != "" && p.ProviderID != f.ProviderID {
			continue
		}
		if f.Status != "" && p.ServiceStatus != f.Status {
			continue
		}
		rows = append(rows, PurchaseRow{
			Number:        p.Number,
			ProviderID:    p.ProviderID,
			PurchaseDate:  p.PurchaseDate,
			ServiceStatus: p.ServiceStatus,
			Subtotal:      p.Subtotal,
			Freight:       p.Freight,
			Customs:       p.Customs,
			TotalFinal:    p.TotalFinal,
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].PurchaseDate < rows[j].PurchaseDate })
	return rows, nil
}

// BalanceReport groups order totals and purchase final totals by month and
// nets them.
func (s *ReportService) BalanceReport(ctx context.Context, from, to string) ([]BalanceRow, error) {
	orders, err := s.store.AllOrders(ctx)
	if err != nil {
		return nil, err
	}
	purchases, err := s.store.AllPurchases(ctx)
	if err != nil {
		return nil, err
	}

	sales := make(map[string]float64)
	spent := make(map[string]float64)
	for _, o := range orders {
		if len(o.SaleDate) < 7 {
			continue
		}
		if from != "" && o.SaleDate < from {
			continue
		}
		if to != "" && o.SaleDate > to {
			continue
		}
		sales[o.SaleDate[:7]] += o.Total
	}
	for _, p := range purchases {
		if len(p.PurchaseDate) < 7 {
			continue
		}
		if from != "" && p.PurchaseDate < from {
			continue
		}
		if to != "" && p.PurchaseDate > to {
			continue
		}
		spent[p.PurchaseDate[:7]] += p.TotalFinal
	}

	periods := make(map[string]struct{})
	for k := range sales {
		periods[k] = struct{}{}
	}
	for k := range spent {
		periods[k] = struct{}{}
	}

	rows := make([]BalanceRow, 0, len(periods))
	for period := range periods {
		rows = append(rows, BalanceRow{
			Period:    period,
			Sales:     utils.RoundMoney(sales[period]),
			Purchases: utils.RoundMoney(spent[period]),
			Balance:   utils.RoundMoney(sales[period] - spent[period]),
		})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Period < rows[j].Period })
	return rows, nil
}

type ProductSalesRow struct {
	ProductID string  `json:"product_id"`
	Quantity  float64 `json:"quantity"`
	Revenue   float64 `json:"revenue"`
}

// ProductSalesReport aggregates order lines by product: units sold and the
// revenue they brought in. Sorted by revenue, highest first.
func (s *ReportService) ProductSalesReport(ctx context.Context) ([]ProductSalesRow, error) {
	lines, err := s.store.AllOrderLines(ctx)
	if err != nil {
		return nil, err
	}
	byProduct := make(map[string]*ProductSalesRow)
	for _, line := range lines {
		row, ok := byProduct[line.ProductID]
		if !ok {
			row = &ProductSalesRow{ProductID: line.ProductID}
			byProduct[line.ProductID] = row
		}
		row.Quantity += line.Quantity
		row.Revenue += line.Quantity * line.UnitPrice
	}
	rows := make([]ProductSalesRow, 0, len(byProduct))
	for _, row := range byProduct {
		row.Revenue = utils.RoundMoney(row.Revenue)
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Revenue > rows[j].Revenue })
	return rows, nil
}

func (s *ReportService) Dashboard(ctx context.Context) (map[string]int64, error) {
	return s.store.Counts(ctx)
}
