package repository

import (
	"context"
	"sync"

	"crmbackend/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Memory is a map-backed stand-in for the database, used by the service
// tests. One mutex guards everything; copies go in and out so tests cannot
// alias internal state.
type Memory struct {
	mu            sync.Mutex
	products      map[string]*models.Product
	orders        map[string]*models.Order // keyed by business number
	orderLines    map[string]*models.OrderLine
	purchases     map[string]*models.Purchase
	purchaseLines map[string]*models.PurchaseLine
	employees     map[string]*models.Employee
	permissions   map[string]*models.Permission
	workerTypes   map[string]string
}

func NewMemory() *Memory {
	return &Memory{
		products:      make(map[string]*models.Product),
		orders:        make(map[string]*models.Order),
		orderLines:    make(map[string]*models.OrderLine),
		purchases:     make(map[string]*models.Purchase),
		purchaseLines: make(map[string]*models.PurchaseLine),
		employees:     make(map[string]*models.Employee),
		permissions:   make(map[string]*models.Permission),
		workerTypes:   make(map[string]string),
	}
}

// Seed helpers, test-only by convention.

func (m *Memory) AddProduct(p models.Product) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.products[p.ID.Hex()] = &p
	return p.ID.Hex()
}

func (m *Memory) AddOrder(o models.Order) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	m.orders[o.Number] = &o
}

func (m *Memory) AddPurchase(p models.Purchase) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.purchases[p.Number] = &p
}

func (m *Memory) AddEmployee(e models.Employee) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	m.employees[e.DNI] = &e
}

func (m *Memory) AddPermission(p models.Permission) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	m.permissions[p.WorkerType] = &p
}

func (m *Memory) AddWorkerType(description string) string {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectID().Hex()
	m.workerTypes[id] = description
	return id
}

// Products implements ProductStore.
func (m *Memory) Products() *MemoryProducts { return &MemoryProducts{m} }

// Orders implements OrderStore.
func (m *Memory) Orders() *MemoryOrders { return &MemoryOrders{m} }

// OrderLines implements OrderLineStore.
func (m *Memory) OrderLines() *MemoryOrderLines { return &MemoryOrderLines{m} }

// Purchases implements PurchaseStore.
func (m *Memory) Purchases() *MemoryPurchases { return &MemoryPurchases{m} }

// PurchaseLines implements PurchaseLineStore.
func (m *Memory) PurchaseLines() *MemoryPurchaseLines { return &MemoryPurchaseLines{m} }

// Employees implements EmployeeStore.
func (m *Memory) Employees() *MemoryEmployees { return &MemoryEmployees{m} }

// Permissions implements PermissionStore.
func (m *Memory) Permissions() *MemoryPermissions { return &MemoryPermissions{m} }

// Reports implements ReportStore.
func (m *Memory) Reports() *MemoryReports { return &MemoryReports{m} }

type MemoryProducts struct{ m *Memory }

func (s *MemoryProducts) GetByID(ctx context.Context, id string) (*models.Product, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	p, ok := s.m.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryProducts) AdjustStock(ctx context.Context, id string, delta float64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	p, ok := s.m.products[id]
	if !ok {
		return ErrNotFound
	}
	p.Quantity += delta
	return nil
}

type MemoryOrders struct{ m *Memory }

func (s *MemoryOrders) GetByNumber(ctx context.Context, number string) (*models.Order, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	o, ok := s.m.orders[number]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (s *MemoryOrders) SetTotal(ctx context.Context, number string, total float64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	o, ok := s.m.orders[number]
	if !ok {
		return ErrNotFound
	}
	o.Total = total
	return nil
}

func (s *MemoryOrders) DeleteByNumber(ctx context.Context, number string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.orders[number]; !ok {
		return ErrNotFound
	}
	delete(s.m.orders, number)
	return nil
}

type MemoryOrderLines struct{ m *Memory }

func (s *MemoryOrderLines) Insert(ctx context.Context, line *models.OrderLine) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if line.ID.IsZero() {
		line.ID = primitive.NewObjectID()
	}
	cp := *line
	s.m.orderLines[line.ID.Hex()] = &cp
	return nil
}

func (s *MemoryOrderLines) GetByID(ctx context.Context, id string) (*models.OrderLine, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	l, ok := s.m.orderLines[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *MemoryOrderLines) Update(ctx context.Context, line *models.OrderLine) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	l, ok := s.m.orderLines[line.ID.Hex()]
	if !ok {
		return ErrNotFound
	}
	l.Quantity = line.Quantity
	l.UnitPrice = line.UnitPrice
	l.Notes = line.Notes
	return nil
}

func (s *MemoryOrderLines) Delete(ctx context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.orderLines[id]; !ok {
		return ErrNotFound
	}
	delete(s.m.orderLines, id)
	return nil
}

func (s *MemoryOrderLines) ListByOrder(ctx context.Context, orderNumber string) ([]models.OrderLine, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var lines []models.OrderLine
	for _, l := range s.m.orderLines {
		if l.OrderNumber == orderNumber {
			lines = append(lines, *l)
		}
	}
	return lines, nil
}

type MemoryPurchases struct{ m *Memory }

func (s *MemoryPurchases) GetByNumber(ctx context.Context, number string) (*models.Purchase, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	p, ok := s.m.purchases[number]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *MemoryPurchases) SetTotals(ctx context.Context, number string, subtotal, totalFinal float64) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	p, ok := s.m.purchases[number]
	if !ok {
		return ErrNotFound
	}
	p.Subtotal = subtotal
	p.TotalFinal = totalFinal
	return nil
}

func (s *MemoryPurchases) DeleteByNumber(ctx context.Context, number string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.purchases[number]; !ok {
		return ErrNotFound
	}
	delete(s.m.purchases, number)
	return nil
}

type MemoryPurchaseLines struct{ m *Memory }

func (s *MemoryPurchaseLines) Insert(ctx context.Context, line *models.PurchaseLine) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if line.ID.IsZero() {
		line.ID = primitive.NewObjectID()
	}
	cp := *line
	s.m.purchaseLines[line.ID.Hex()] = &cp
	return nil
}

func (s *MemoryPurchaseLines) GetByID(ctx context.Context, id string) (*models.PurchaseLine, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	l, ok := s.m.purchaseLines[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (s *MemoryPurchaseLines) Update(ctx context.Context, line *models.PurchaseLine) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	l, ok := s.m.purchaseLines[line.ID.Hex()]
	if !ok {
		return ErrNotFound
	}
	l.Quantity = line.Quantity
	l.UnitPrice = line.UnitPrice
	l.LineTotal = line.LineTotal
	return nil
}

func (s *MemoryPurchaseLines) Delete(ctx context.Context, id string) error {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	if _, ok := s.m.purchaseLines[id]; !ok {
		return ErrNotFound
	}
	delete(s.m.purchaseLines, id)
	return nil
}

func (s *MemoryPurchaseLines) ListByPurchase(ctx context.Context, purchaseNumber string) ([]models.PurchaseLine, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var lines []models.PurchaseLine
	for _, l := range s.m.purchaseLines {
		if l.PurchaseNumber == purchaseNumber {
			lines = append(lines, *l)
		}
	}
	return lines, nil
}

type MemoryEmployees struct{ m *Memory }

func (s *MemoryEmployees) FindByDNI(ctx context.Context, dni string) (*models.Employee, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	e, ok := s.m.employees[dni]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *e
	return &cp, nil
}

type MemoryPermissions struct{ m *Memory }

func (s *MemoryPermissions) GetByWorkerType(ctx context.Context, workerType string) (*models.Permission, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	p, ok := s.m.permissions[workerType]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

// WorkerTypes implements WorkerTypeStore.
func (m *Memory) WorkerTypes() *MemoryWorkerTypes { return &MemoryWorkerTypes{m} }

type MemoryWorkerTypes struct{ m *Memory }

func (s *MemoryWorkerTypes) GetDescription(ctx context.Context, id string) (string, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	desc, ok := s.m.workerTypes[id]
	if !ok {
		return "", ErrNotFound
	}
	return desc, nil
}

type MemoryReports struct{ m *Memory }

func (s *MemoryReports) AllOrders(ctx context.Context) ([]models.Order, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var orders []models.Order
	for _, o := range s.m.orders {
		orders = append(orders, *o)
	}
	return orders, nil
}

func (s *MemoryReports) AllOrderLines(ctx context.Context) ([]models.OrderLine, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var lines []models.OrderLine
	for _, l := range s.m.orderLines {
		lines = append(lines, *l)
	}
	return lines, nil
}

func (s *MemoryReports) AllPurchases(ctx context.Context) ([]models.Purchase, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	var purchases []models.Purchase
	for _, p := range s.m.purchases {
		purchases = append(purchases, *p)
	}
	return purchases, nil
}

func (s *MemoryReports) Counts(ctx context.Context) (map[string]int64, error) {
	s.m.mu.Lock()
	defer s.m.mu.Unlock()
	return map[string]int64{
		"products":  int64(len(s.m.products)),
		"orders":    int64(len(s.m.orders)),
		"purchases": int64(len(s.m.purchases)),
		"employees": int64(len(s.m.employees)),
	}, nil
}
