package service

import (
	"context"
	"fmt"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
)

// CartLines returns the current lines in insertion order.
func (s *Service) CartLines() []domain.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]domain.CartLine, len(s.cart))
	copy(lines, s.cart)
	return lines
}

// Add merges qty into the existing line for productID or appends a
// new one. Adding an unknown product is a silent no-op. A quantity
// below 1 is coerced to 1.
func (s *Service) Add(ctx context.Context, productID string, qty int) error {
	const op = "Service.Add"

	if _, err := s.catalog.Lookup(productID); err != nil {
		return nil
	}
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	lines := make([]domain.CartLine, len(s.cart))
	copy(lines, s.cart)

	merged := false
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity += qty
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, domain.CartLine{ProductID: productID, Quantity: qty})
	}

	err := s.replaceAllLocked(ctx, lines)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify()
	return nil
}

// Remove deletes the line for productID; absent lines are a no-op.
func (s *Service) Remove(ctx context.Context, productID string) error {
	const op = "Service.Remove"

	s.mu.Lock()
	var lines []domain.CartLine
	for _, l := range s.cart {
		if l.ProductID != productID {
			lines = append(lines, l)
		}
	}
	err := s.replaceAllLocked(ctx, lines)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify()
	return nil
}

// SetQuantity sets the quantity of an existing line, clamped to a
// minimum of 1. Without an existing line it is a no-op: a product
// must be added before its quantity can be set.
func (s *Service) SetQuantity(
	ctx context.Context, productID string, qty int,
) error {
	const op = "Service.SetQuantity"

	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	found := false
	lines := make([]domain.CartLine, len(s.cart))
	copy(lines, s.cart)
	for i := range lines {
		if lines[i].ProductID == productID {
			lines[i].Quantity = qty
			found = true
			break
		}
	}
	if !found {
		s.mu.Unlock()
		return nil
	}

	err := s.replaceAllLocked(ctx, lines)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify()
	return nil
}

// Clear empties the cart.
func (s *Service) Clear(ctx context.Context) error {
	const op = "Service.Clear"

	s.mu.Lock()
	err := s.replaceAllLocked(ctx, nil)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify()
	return nil
}

// ReplaceAll is the canonical mutation primitive the other cart
// operations funnel through: it drops lines with unknown products or
// non-positive quantities, stores the rest and persists them.
func (s *Service) ReplaceAll(
	ctx context.Context, lines []domain.CartLine,
) error {
	const op = "Service.ReplaceAll"

	s.mu.Lock()
	err := s.replaceAllLocked(ctx, lines)
	s.mu.Unlock()

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	s.notify()
	return nil
}

func (s *Service) replaceAllLocked(
	ctx context.Context, lines []domain.CartLine,
) error {
	s.cart = s.sanitize(lines)
	return s.storage.ReplaceCart(ctx, s.cart)
}

// Totals derives the money amounts and the badge count from the cart.
// A line whose product lookup fails contributes nothing.
func (s *Service) Totals() domain.Totals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalsLocked()
}

func (s *Service) totalsLocked() domain.Totals {
	t := domain.Totals{Shipping: s.shipping}
	for _, l := range s.cart {
		t.ItemCount += l.Quantity
		p, err := s.catalog.Lookup(l.ProductID)
		if err != nil {
			continue
		}
		t.Subtotal += p.Price.Mul(l.Quantity)
	}
	t.Total = t.Subtotal + t.Shipping
	return t
}
