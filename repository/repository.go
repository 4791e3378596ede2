// Package repository wraps collection access behind small per-entity
// interfaces so the cascade logic in service can be exercised without a live
// database. The mongo implementations are the production path; the memory
// implementations back the tests.
package repository

import (
	"context"
	"errors"

	"crmbackend/models"
)

// ErrNotFound is returned when an entity does not exist.
var ErrNotFound = errors.New("not found")

type ProductStore interface {
	GetByID(ctx context.Context, id string) (*models.Product, error)
	// AdjustStock applies a signed delta to the product's quantity as a
	// single write. Callers are responsible for availability checks.
	AdjustStock(ctx context.Context, id string, delta float64) error
}

type OrderStore interface {
	GetByNumber(ctx context.Context, number string) (*models.Order, error)
	SetTotal(ctx context.Context, number string, total float64) error
	DeleteByNumber(ctx context.Context, number string) error
}

type OrderLineStore interface {
	Insert(ctx context.Context, line *models.OrderLine) error
	GetByID(ctx context.Context, id string) (*models.OrderLine, error)
	Update(ctx context.Context, line *models.OrderLine) error
	Delete(ctx context.Context, id string) error
	ListByOrder(ctx context.Context, orderNumber string) ([]models.OrderLine, error)
}

type PurchaseStore interface {
	GetByNumber(ctx context.Context, number string) (*models.Purchase, error)
	SetTotals(ctx context.Context, number string, subtotal, totalFinal float64) error
	DeleteByNumber(ctx context.Context, number string) error
}

type PurchaseLineStore interface {
	Insert(ctx context.Context, line *models.PurchaseLine) error
	GetByID(ctx context.Context, id string) (*models.PurchaseLine, error)
	Update(ctx context.Context, line *models.PurchaseLine) error
	Delete(ctx context.Context, id string) error
	ListByPurchase(ctx context.Context, purchaseNumber string) ([]models.PurchaseLine, error)
}

type EmployeeStore interface {
	// FindByDNI matches the 8-digit document across the field-name variants
	// the collection has accumulated.
	FindByDNI(ctx context.Context, dni string) (*models.Employee, error)
}

type PermissionStore interface {
	GetByWorkerType(ctx context.Context, workerType string) (*models.Permission, error)
}

type WorkerTypeStore interface {
	// GetDescription resolves a worker-type reference to its label, the value
	// the permission gate keys on.
	GetDescription(ctx context.Context, id string) (string, error)
}

type ReportStore interface {
	AllOrders(ctx context.Context) ([]models.Order, error)
	AllOrderLines(ctx context.Context) ([]models.OrderLine, error)
	AllPurchases(ctx context.Context) ([]models.Purchase, error)
	Counts(ctx context.Context) (map[string]int64, error)
}
