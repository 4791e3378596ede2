package service

import (
	"context"
	"errors"

	"crmbackend/models"
	"crmbackend/repository"
	"crmbackend/utils"
)

// ErrPurchaseClosed rejects line edits on a purchase whose service status is
// already "done".
var ErrPurchaseClosed = errors.New("purchase is closed")

type PurchaseService struct {
	purchases repository.PurchaseStore
	lines     repository.PurchaseLineStore
}

func NewPurchaseService(purchases repository.PurchaseStore, lines repository.PurchaseLineStore) *PurchaseService {
	return &PurchaseService{purchases: purchases, lines: lines}
}

func (s *PurchaseService) CreateLine(ctx context.Context, line *models.PurchaseLine) error {
	if line.PurchaseNumber == "" || line.ProductID == "" || line.Quantity <= 0 {
		return ErrInvalidInput
	}
	purchase, err := s.purchases.GetByNumber(ctx, line.PurchaseNumber)
	if err != nil {
		return err
	}
	if purchase.ServiceStatus == "done" {
		return ErrPurchaseClosed
	}
	line.LineTotal = utils.RoundMoney(line.Quantity * line.UnitPrice)

	if err := s.lines.Insert(ctx, line); err != nil {
		return err
	}
	return s.recomputeTotals(ctx, line.PurchaseNumber)
}

func (s *PurchaseService) UpdateLine(ctx context.Context, id string, upd models.UpdatePurchaseLine) (*models.PurchaseLine, error) {
	line, err := s.lines.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	purchase, err := s.purchases.GetByNumber(ctx, line.PurchaseNumber)
	if err != nil {
		return nil, err
	}
	if purchase.ServiceStatus == "done" {
		return nil, ErrPurchaseClosed
	}

	if upd.Quantity != nil {
		if *upd.Quantity <= 0 {
			return nil, ErrInvalidInput
		}
		line.Quantity = *upd.Quantity
	}
	if upd.UnitPrice != nil {
		line.UnitPrice = *upd.UnitPrice
	}
	line.LineTotal = utils.RoundMoney(line.Quantity * line.UnitPrice)

	if err := s.lines.Update(ctx, line); err != nil {
		return nil, err
	}
	if err := s.recomputeTotals(ctx, line.PurchaseNumber); err != nil {
		return nil, err
	}
	return line, nil
}

func (s *PurchaseService) DeleteLine(ctx context.Context, id string) error {
	line, err := s.lines.GetByID(ctx, id)
	if err != nil {
		return err
	}
	purchase, err := s.purchases.GetByNumber(ctx, line.PurchaseNumber)
	if err != nil {
		return err
	}
	if purchase.ServiceStatus == "done" {
		return ErrPurchaseClosed
	}
	if err := s.lines.Delete(ctx, id); err != nil {
		return err
	}
	return s.recomputeTotals(ctx, line.PurchaseNumber)
}

// Lines returns the lines belonging to a purchase, after confirming the
// parent exists.
func (s *PurchaseService) Lines(ctx context.Context, number string) ([]models.PurchaseLine, error) {
	if _, err := s.purchases.GetByNumber(ctx, number); err != nil {
		return nil, err
	}
	return s.lines.ListByPurchase(ctx, number)
}

// DeletePurchase removes the purchase and its lines. Unlike orders there is
// no stock restoration: purchased goods were never committed to stock here.
func (s *PurchaseService) DeletePurchase(ctx context.Context, number string) error {
	if _, err := s.purchases.GetByNumber(ctx, number); err != nil {
		return err
	}
	lines, err := s.lines.ListByPurchase(ctx, number)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if err := s.lines.Delete(ctx, line.ID.Hex()); err != nil {
			return err
		}
	}
	return s.purchases.DeleteByNumber(ctx, number)
}

// RecomputeTotals re-derives the subtotal from the surviving lines and writes
// subtotal and total_final back to the parent. Also called after freight or
// customs edits on the parent itself.
func (s *PurchaseService) RecomputeTotals(ctx context.Context, number string) error {
	return s.recomputeTotals(ctx, number)
}

func (s *PurchaseService) recomputeTotals(ctx context.Context, number string) error {
	lines, err := s.lines.ListByPurchase(ctx, number)
	if err != nil {
		return err
	}
	var subtotal float64
	for _, line := range lines {
		subtotal += line.Quantity * line.UnitPrice
	}
	subtotal = utils.RoundMoney(subtotal)

	purchase, err := s.purchases.GetByNumber(ctx, number)
	if err != nil {
		return err
	}
	totalFinal := utils.RoundMoney(subtotal + purchase.Freight + purchase.Customs)
	return s.purchases.SetTotals(ctx, number, subtotal, totalFinal)
}
