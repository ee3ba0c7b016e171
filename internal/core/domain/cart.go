package domain

import "time"

type (
	// CartLine pairs a catalog product with a positive quantity.
	// Lines with zero or negative quantity are never stored.
	CartLine struct {
		ProductID string
		Quantity  int
	}

	Totals struct {
		Subtotal  Money
		Shipping  Money
		Total     Money
		ItemCount int
	}

	OrderConfirmation struct {
		OrderID   string
		Total     Money
		ItemCount int
		PlacedAt  time.Time
	}
)
