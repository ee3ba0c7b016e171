package httphandler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/sapiens-sapiens/storefront/internal/core/port"
)

// The only user-facing failure message in the system.
const emptyCartNotice = "Seu carrinho está vazio."

type CartHandler struct {
	cart     port.CartEditor
	checkout port.CheckoutPlacer
	catalog  port.ProductCatalog
}

func RegisterCart(
	mux *http.ServeMux,
	cart port.CartEditor,
	checkout port.CheckoutPlacer,
	catalog port.ProductCatalog,
) {
	h := CartHandler{cart, checkout, catalog}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("PUT /v1/cart/items/{id}", h.PutItem)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("DELETE /v1/cart", h.DeleteCart)
	mux.HandleFunc("POST /v1/checkout", h.PostCheckout)
}

// GetCart returns the cart lines joined with catalog data, plus the
// derived totals.
func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"

	lines := h.cart.CartLines()
	items := make([]CartItem, 0, len(lines))
	for _, l := range lines {
		p, err := h.catalog.Lookup(l.ProductID)
		if err != nil {
			continue
		}
		items = append(items, CartItem{
			ProductID: l.ProductID,
			Name:      p.Name,
			Quantity:  l.Quantity,
			UnitPrice: toPriceView(p.Price),
			LineTotal: toPriceView(p.Price.Mul(l.Quantity)),
		})
	}

	t := h.cart.Totals()
	writeJSON(w, op, CartView{
		Items: items,
		Totals: TotalsView{
			Subtotal:  toPriceView(t.Subtotal),
			Shipping:  toPriceView(t.Shipping),
			Total:     toPriceView(t.Total),
			ItemCount: t.ItemCount,
		},
	})
}

// PostItem adds a product to the cart. An unknown product id is a
// silent no-op at the core, so the response is 204 either way.
func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	if err := h.cart.Add(r.Context(), req.ProductID, req.Quantity); err != nil {
		http.Error(w, "failed to update cart", http.StatusInternalServerError)
		log.Error("failed to add item", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) PutItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PutItem"
	log := slog.With("op", op)

	var req SetQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	id := r.PathValue("id")
	if err := h.cart.SetQuantity(r.Context(), id, req.Quantity); err != nil {
		http.Error(w, "failed to update cart", http.StatusInternalServerError)
		log.Error("failed to set quantity", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteItem"
	log := slog.With("op", op)

	id := r.PathValue("id")
	if err := h.cart.Remove(r.Context(), id); err != nil {
		http.Error(w, "failed to update cart", http.StatusInternalServerError)
		log.Error("failed to remove item", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) DeleteCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.DeleteCart"
	log := slog.With("op", op)

	if err := h.cart.Clear(r.Context()); err != nil {
		http.Error(w, "failed to update cart", http.StatusInternalServerError)
		log.Error("failed to clear cart", "err", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h CartHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCheckout"
	log := slog.With("op", op)

	conf, err := h.checkout.Checkout(r.Context())
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			http.Error(w, emptyCartNotice, http.StatusConflict)
			return
		}
		http.Error(w, "failed to checkout", http.StatusInternalServerError)
		log.Error("failed to checkout", "err", err)
		return
	}

	writeJSON(w, op, OrderView{
		OrderID:   conf.OrderID,
		Total:     toPriceView(conf.Total),
		ItemCount: conf.ItemCount,
		PlacedAt:  conf.PlacedAt.Format(time.RFC3339),
	})
}
