package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sapiens-sapiens/storefront/internal/core/domain"
)

// Checkout simulates placing an order: it reports the totals under a
// generated order id and clears the cart. An empty cart yields
// domain.ErrEmptyCart and leaves everything untouched; that notice is
// the only user-visible failure in the system.
func (s *Service) Checkout(
	ctx context.Context,
) (domain.OrderConfirmation, error) {
	const op = "Service.Checkout"

	s.mu.Lock()
	t := s.totalsLocked()
	if t.ItemCount == 0 {
		s.mu.Unlock()
		return domain.OrderConfirmation{},
			fmt.Errorf("%s: %w", op, domain.ErrEmptyCart)
	}

	conf := domain.OrderConfirmation{
		OrderID:   uuid.NewString(),
		Total:     t.Total,
		ItemCount: t.ItemCount,
		PlacedAt:  time.Now(),
	}

	err := s.replaceAllLocked(ctx, nil)
	s.mu.Unlock()

	if err != nil {
		return domain.OrderConfirmation{}, fmt.Errorf("%s: %w", op, err)
	}
	s.notify()
	return conf, nil
}
