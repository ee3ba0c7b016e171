// Package service implements the storefront state model: visible
// product computation, cart mutations and their persistence, totals,
// and checkout. All state transitions are serialized; the presentation
// layer re-reads after each change notification.
package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/sapiens-sapiens/storefront/internal/core/port"
	"github.com/sapiens-sapiens/storefront/pkg/urlstate"
)

var _ port.ProductBrowser = (*Service)(nil)
var _ port.CartEditor = (*Service)(nil)
var _ port.CheckoutPlacer = (*Service)(nil)
var _ port.ChangeNotifier = (*Service)(nil)

const defaultDebounce = 120 * time.Millisecond

// Shipping is free, a policy constant rather than a computation.
const defaultShipping domain.Money = 0

type Service struct {
	catalog port.ProductCatalog
	storage port.CartStorage

	mu       sync.Mutex
	cart     []domain.CartLine
	filter   domain.FilterState
	visible  []domain.Product
	queryGen uint64

	listenerMu sync.Mutex
	listeners  []func()

	debounce time.Duration
	shipping domain.Money
}

type Opt func(*Service)

// DebounceOpt sets the delay coalescing rapid query changes.
// Zero applies queries synchronously.
func DebounceOpt(d time.Duration) Opt {
	return func(s *Service) { s.debounce = d }
}

func ShippingOpt(m domain.Money) Opt {
	return func(s *Service) { s.shipping = m }
}

// ShareStateOpt seeds the filter state from a shareable
// representation read once at startup.
func ShareStateOpt(raw string) Opt {
	return func(s *Service) {
		s.filter = urlstate.Decode(raw, s.catalog.HasCategory)
	}
}

// New builds the service and restores the persisted cart. A missing
// or unreadable cart degrades to an empty one, never to an error.
func New(
	ctx context.Context,
	catalog port.ProductCatalog,
	storage port.CartStorage,
	opts ...Opt,
) *Service {
	s := &Service{
		catalog:  catalog,
		storage:  storage,
		filter:   domain.DefaultFilterState(),
		debounce: defaultDebounce,
		shipping: defaultShipping,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.cart = s.restoreCart(ctx)
	s.visible = FilterProducts(catalog.All(), s.filter.Query, s.filter.Category)
	return s
}

func (s *Service) restoreCart(ctx context.Context) []domain.CartLine {
	const op = "Service.restoreCart"
	log := slog.With("op", op)

	stored, err := s.storage.LoadCart(ctx)
	if err != nil {
		log.Warn("failed to load persisted cart, starting empty", "err", err)
		return nil
	}
	lines := s.sanitize(stored)
	if len(lines) != len(stored) {
		log.Warn("dropped stale cart lines",
			"stored", len(stored), "kept", len(lines))
	}
	return lines
}

// sanitize keeps only lines with a known product and positive
// quantity, preserving order.
func (s *Service) sanitize(lines []domain.CartLine) []domain.CartLine {
	var out []domain.CartLine
	for _, l := range lines {
		if l.Quantity <= 0 {
			continue
		}
		if _, err := s.catalog.Lookup(l.ProductID); err != nil {
			continue
		}
		out = append(out, l)
	}
	return out
}

// Subscribe registers fn to run after every state-affecting
// transition. Listeners must re-read state through the pull
// interface; they are never handed state directly.
func (s *Service) Subscribe(fn func()) {
	s.listenerMu.Lock()
	defer s.listenerMu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Service) notify() {
	s.listenerMu.Lock()
	fns := make([]func(), len(s.listeners))
	copy(fns, s.listeners)
	s.listenerMu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// Close invalidates any pending debounced query application.
func (s *Service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queryGen++
}
