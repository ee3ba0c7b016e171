package httphandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sapiens-sapiens/storefront/internal/adapter/catalog"
	"github.com/sapiens-sapiens/storefront/internal/adapter/httphandler"
	"github.com/sapiens-sapiens/storefront/internal/core/domain"
	"github.com/sapiens-sapiens/storefront/internal/core/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memStorage struct {
	lines []domain.CartLine
}

func (m *memStorage) LoadCart(context.Context) ([]domain.CartLine, error) {
	return m.lines, nil
}

func (m *memStorage) ReplaceCart(
	_ context.Context, lines []domain.CartLine,
) error {
	m.lines = lines
	return nil
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cat := catalog.New()
	s := service.New(t.Context(), cat, &memStorage{}, service.DebounceOpt(0))
	t.Cleanup(s.Close)

	mux := http.NewServeMux()
	httphandler.RegisterStorefront(mux, s, cat)
	httphandler.RegisterCart(mux, s, s, cat)
	return httphandler.AllowJSON(mux)
}

func doJSON(
	t *testing.T, h http.Handler, method, target string, body any,
) *httptest.ResponseRecorder {
	t.Helper()

	var r *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = httptest.NewRequest(method, target, bytes.NewReader(b))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, target, nil)
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)
	return w
}

func TestProductsEndpoints(t *testing.T) {
	t.Run("ListsFullCatalogByDefault", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h, http.MethodGet, "/v1/products", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var ps []httphandler.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ps))
		assert.Len(t, ps, 20)
		assert.Equal(t, "esp32-devkit-v1", ps[0].ProductID)
		assert.Equal(t, "R$ 59,90", ps[0].Price.Formatted)
	})

	t.Run("Categories", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h, http.MethodGet, "/v1/categories", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var cs []httphandler.Category
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cs))
		require.NotEmpty(t, cs)
		assert.Equal(t, "all", cs[0].Key)
		assert.Equal(t, "Tudo", cs[0].Label)
		assert.Len(t, cs, 9)
	})

	t.Run("CategoryFilterAndShare", func(t *testing.T) {
		h := newTestHandler(t)

		w := doJSON(t, h, http.MethodPut, "/v1/filter/category",
			httphandler.SetCategoryRequest{Category: "sensores"})
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, h, http.MethodGet, "/v1/products", nil)
		var ps []httphandler.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ps))
		assert.Len(t, ps, 3)

		w = doJSON(t, h, http.MethodGet, "/v1/filter", nil)
		var fv httphandler.FilterView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fv))
		assert.Equal(t, "sensores", fv.Category)
		assert.Equal(t, "cat=sensores", fv.Share)
	})

	t.Run("QueryFilter", func(t *testing.T) {
		h := newTestHandler(t)

		w := doJSON(t, h, http.MethodPut, "/v1/filter/query",
			httphandler.SetQueryRequest{Query: "sensôr"})
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, h, http.MethodGet, "/v1/products", nil)
		var ps []httphandler.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ps))
		require.NotEmpty(t, ps)
		for _, p := range ps {
			assert.Equal(t, "sensores", p.Category)
		}
	})

	t.Run("RejectsNonJSONBody", func(t *testing.T) {
		h := newTestHandler(t)
		r := httptest.NewRequest(http.MethodPut, "/v1/filter/query",
			strings.NewReader("query=esp32"))
		r.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
	})
}

func TestCartEndpoints(t *testing.T) {
	addItem := func(t *testing.T, h http.Handler, id string, qty int) {
		t.Helper()
		w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
			httphandler.AddItemRequest{ProductID: id, Quantity: qty})
		require.Equal(t, http.StatusNoContent, w.Code)
	}

	getCart := func(t *testing.T, h http.Handler) httphandler.CartView {
		t.Helper()
		w := doJSON(t, h, http.MethodGet, "/v1/cart", nil)
		require.Equal(t, http.StatusOK, w.Code)
		var cv httphandler.CartView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cv))
		return cv
	}

	t.Run("AddAndRead", func(t *testing.T) {
		h := newTestHandler(t)
		addItem(t, h, "esp32-devkit-v1", 2)
		addItem(t, h, "ds18b20", 1)

		cv := getCart(t, h)
		require.Len(t, cv.Items, 2)
		assert.Equal(t, "ESP32 DevKit v1", cv.Items[0].Name)
		assert.Equal(t, int64(11980), cv.Items[0].LineTotal.Centavos)
		assert.Equal(t, int64(13970), cv.Totals.Total.Centavos)
		assert.Equal(t, "R$ 139,70", cv.Totals.Total.Formatted)
		assert.Equal(t, 3, cv.Totals.ItemCount)
	})

	t.Run("AddUnknownProductIsSilentNoOp", func(t *testing.T) {
		h := newTestHandler(t)
		addItem(t, h, "no-such-product", 1)
		assert.Empty(t, getCart(t, h).Items)
	})

	t.Run("SetQuantityClamps", func(t *testing.T) {
		h := newTestHandler(t)
		addItem(t, h, "ds18b20", 2)

		w := doJSON(t, h, http.MethodPut, "/v1/cart/items/ds18b20",
			httphandler.SetQuantityRequest{Quantity: -3})
		require.Equal(t, http.StatusNoContent, w.Code)

		cv := getCart(t, h)
		require.Len(t, cv.Items, 1)
		assert.Equal(t, 1, cv.Items[0].Quantity)
	})

	t.Run("RemoveAndClear", func(t *testing.T) {
		h := newTestHandler(t)
		addItem(t, h, "ds18b20", 1)
		addItem(t, h, "mpu-6050", 1)

		w := doJSON(t, h, http.MethodDelete, "/v1/cart/items/ds18b20", nil)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Len(t, getCart(t, h).Items, 1)

		w = doJSON(t, h, http.MethodDelete, "/v1/cart", nil)
		require.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, getCart(t, h).Items)
	})
}

func TestCheckoutEndpoint(t *testing.T) {
	t.Run("EmptyCart", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h, http.MethodPost, "/v1/checkout", nil)
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "vazio")

		// The cart stays empty and usable.
		w = doJSON(t, h, http.MethodGet, "/v1/cart", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("PlacesOrder", func(t *testing.T) {
		h := newTestHandler(t)
		w := doJSON(t, h, http.MethodPost, "/v1/cart/items",
			httphandler.AddItemRequest{ProductID: "esp32-devkit-v1", Quantity: 2})
		require.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, h, http.MethodPost, "/v1/checkout", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var ov httphandler.OrderView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ov))
		assert.NotEmpty(t, ov.OrderID)
		assert.Equal(t, int64(11980), ov.Total.Centavos)
		assert.Equal(t, 2, ov.ItemCount)

		w = doJSON(t, h, http.MethodGet, "/v1/cart", nil)
		var cv httphandler.CartView
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cv))
		assert.Empty(t, cv.Items)
	})
}
