// Package service holds the workflows that touch more than one collection:
// order lines against product stock, purchase lines against parent totals,
// login, the permission gate and the reports. Writes inside a workflow are
// sequential single-document operations, never a transaction; a failure
// mid-sequence is returned to the caller with whatever partial state it left.
package service

import (
	"context"
	"errors"
	"fmt"

	"crmbackend/models"
	"crmbackend/repository"
	"crmbackend/utils"
)

var ErrInvalidInput = errors.New("invalid input")

// InsufficientStockError names the available and requested quantities so the
// front-end can show both.
type InsufficientStockError struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	Available   float64 `json:"available"`
	Requested   float64 `json:"requested"`
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: available %.2f, requested %.2f",
		e.ProductName, e.Available, e.Requested)
}

type OrderService struct {
	products repository.ProductStore
	orders   repository.OrderStore
	lines    repository.OrderLineStore
}

func NewOrderService(products repository.ProductStore, orders repository.OrderStore, lines repository.OrderLineStore) *OrderService {
	return &OrderService{products: products, orders: orders, lines: lines}
}

// CreateLine writes the line, decrements the product's stock and restores the
// parent order's stored total. The stock check happens before any write; an
// insufficient quantity mutates nothing.
func (s *OrderService) CreateLine(ctx context.Context, line *models.OrderLine) error {
	if line.OrderNumber == "" || line.ProductID == "" || line.Quantity <= 0 {
		return ErrInvalidInput
	}
	if _, err := s.orders.GetByNumber(ctx, line.OrderNumber); err != nil {
		return err
	}
	product, err := s.products.GetByID(ctx, line.ProductID)
	if err != nil {
		return err
	}
	if product.Quantity < line.Quantity {
		return &InsufficientStockError{
			ProductID:   line.ProductID,
			ProductName: product.Name,
			Available:   product.Quantity,
			Requested:   line.Quantity,
		}
	}
	if line.UnitPrice == 0 {
		line.UnitPrice = product.UnitPrice
	}

	if err := s.lines.Insert(ctx, line); err != nil {
		return err
	}
	if err := s.products.AdjustStock(ctx, line.ProductID, -line.Quantity); err != nil {
		return err
	}
	return s.recomputeTotal(ctx, line.OrderNumber)
}

// UpdateLine moves stock by the quantity delta: a growing line consumes more
// stock (after a re-check of what remains), a shrinking one gives it back.
func (s *OrderService) UpdateLine(ctx context.Context, id string, upd models.UpdateOrderLine) (*models.OrderLine, error) {
	line, err := s.lines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	newQty := line.Quantity
	if upd.Quantity != nil {
		newQty = *upd.Quantity
	}
	if newQty <= 0 {
		return nil, ErrInvalidInput
	}
	delta := newQty - line.Quantity

	if delta > 0 {
		product, err := s.products.GetByID(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if product.Quantity < delta {
			return nil, &InsufficientStockError{
				ProductID:   line.ProductID,
				ProductName: product.Name,
				Available:   product.Quantity,
				Requested:   delta,
			}
		}
	}

	line.Quantity = newQty
	if upd.UnitPrice != nil {
		line.UnitPrice = *upd.UnitPrice
	}
	if upd.Notes != "" {
		line.Notes = upd.Notes
	}

	if err := s.lines.Update(ctx, line); err != nil {
		return nil, err
	}
	if delta != 0 {
		if err := s.products.AdjustStock(ctx, line.ProductID, -delta); err != nil {
			return nil, err
		}
	}
	if err := s.recomputeTotal(ctx, line.OrderNumber); err != nil {
		return nil, err
	}
	return line, nil
}

// DeleteLine gives the full quantity back to stock, removes the line, and
// restores the parent total.
func (s *OrderService) DeleteLine(ctx context.Context, id string) error {
	line, err := s.lines.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
		return err
	}
	if err := s.lines.Delete(ctx, id); err != nil {
		return err
	}
	return s.recomputeTotal(ctx, line.OrderNumber)
}

// DeleteOrder removes the order and every line sharing its number, restoring
// each line's quantity to its product exactly once.
func (s *OrderService) DeleteOrder(ctx context.Context, number string) error {
	if _, err := s.orders.GetByNumber(ctx, number); err != nil {
		return err
	}
	lines, err := s.lines.ListByOrder(ctx, number)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := s.products.AdjustStock(ctx, line.ProductID, line.Quantity); err != nil {
			return err
		}
		if err := s.lines.Delete(ctx, line.ID.Hex()); err != nil {
			return err
		}
	}
	return s.orders.DeleteByNumber(ctx, number)
}

// LinesWithTotal returns the order's lines plus the sum they imply.
func (s *OrderService) LinesWithTotal(ctx context.Context, number string) ([]models.OrderLine, float64, error) {
	lines, err := s.lines.ListByOrder(ctx, number)
	if err != nil {
		return nil, 0, err
	}
	var total float64
	for _, line := range lines {
		total += line.Quantity * line.UnitPrice
	}
	return lines, utils.RoundMoney(total), nil
}

func (s *OrderService) recomputeTotal(ctx context.Context, number string) error {
	_, total, err := s.LinesWithTotal(ctx, number)
	if err != nil {
		return err
	}
	return s.orders.SetTotal(ctx, number, total)
}
