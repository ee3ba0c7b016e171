package port

import (
	"context"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
)

// Driven ports.

type ProductCatalog interface {
	Lookup(id string) (domain.Product, error)
	All() []domain.Product
	Categories() []domain.Category
	HasCategory(key string) bool
}

type CartStorage interface {
	LoadCart(ctx context.Context) ([]domain.CartLine, error)
	ReplaceCart(ctx context.Context, lines []domain.CartLine) error
}

// Driving ports, pulled by the presentation layer.

type ProductBrowser interface {
	VisibleProducts() []domain.Product
	FilterState() domain.FilterState
	ShareString() string
	SetQuery(query string)
	SetCategory(category string)
}

type CartEditor interface {
	CartLines() []domain.CartLine
	Totals() domain.Totals
	Add(ctx context.Context, productID string, qty int) error
	Remove(ctx context.Context, productID string) error
	SetQuantity(ctx context.Context, productID string, qty int) error
	Clear(ctx context.Context) error
	ReplaceAll(ctx context.Context, lines []domain.CartLine) error
}

type CheckoutPlacer interface {
	Checkout(ctx context.Context) (domain.OrderConfirmation, error)
}

type ChangeNotifier interface {
	Subscribe(fn func())
}
