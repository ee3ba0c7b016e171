// Package httphandler exposes the storefront core to the
// presentation layer: pull endpoints for the current state and
// imperative endpoints for user actions.
package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/sapiens-sapiens/storefront/internal/core/port"
)

type StorefrontHandler struct {
	browser port.ProductBrowser
	catalog port.ProductCatalog
}

func RegisterStorefront(
	mux *http.ServeMux,
	browser port.ProductBrowser,
	catalog port.ProductCatalog,
) {
	h := StorefrontHandler{browser, catalog}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/filter", h.GetFilter)
	mux.HandleFunc("PUT /v1/filter/query", h.PutQuery)
	mux.HandleFunc("PUT /v1/filter/category", h.PutCategory)
}

// GetProducts returns the currently visible product list.
func (h StorefrontHandler) GetProducts(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetProducts"

	ps := h.browser.VisibleProducts()
	view := make([]Product, 0, len(ps))
	for _, p := range ps {
		view = append(view, toProductView(p))
	}
	writeJSON(w, op, view)
}

func (h StorefrontHandler) GetCategories(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetCategories"

	cs := h.catalog.Categories()
	view := make([]Category, 0, len(cs))
	for _, c := range cs {
		view = append(view, Category{Key: c.Key, Label: c.Label})
	}
	writeJSON(w, op, view)
}

func (h StorefrontHandler) GetFilter(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.GetFilter"

	fs := h.browser.FilterState()
	writeJSON(w, op, FilterView{
		Query:    fs.Query,
		Category: fs.Category,
		Share:    h.browser.ShareString(),
	})
}

func (h StorefrontHandler) PutQuery(w http.ResponseWriter, r *http.Request) {
	const op = "StorefrontHandler.PutQuery"
	log := slog.With("op", op)

	var req SetQueryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	h.browser.SetQuery(req.Query)
	w.WriteHeader(http.StatusNoContent)
}

// PutCategory applies the category selection. An unrecognized key is
// accepted and simply matches no products.
func (h StorefrontHandler) PutCategory(
	w http.ResponseWriter, r *http.Request,
) {
	const op = "StorefrontHandler.PutCategory"
	log := slog.With("op", op)

	var req SetCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON data", http.StatusBadRequest)
		log.Warn("failed to parse JSON", "err", err)
		return
	}

	cat := req.Category
	if cat == "" {
		cat = domain.CategoryAll
	}
	h.browser.SetCategory(cat)
	w.WriteHeader(http.StatusNoContent)
}

func toProductView(p domain.Product) Product {
	return Product{
		ProductID:   p.ProductID,
		Name:        p.Name,
		Category:    p.Category,
		Description: p.Description,
		Price:       toPriceView(p.Price),
		Tags:        p.Tags,
	}
}

func toPriceView(m domain.Money) Price {
	return Price{Centavos: int64(m), Formatted: m.Format()}
}

func writeJSON(w http.ResponseWriter, op string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to write response body", "op", op, "err", err)
	}
}
