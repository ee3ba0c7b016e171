package httphandler

type (
	Price struct {
		Centavos  int64  `json:"centavos"`
		Formatted string `json:"formatted"`
	}

	Product struct {
		ProductID   string   `json:"product_id"`
		Name        string   `json:"name"`
		Category    string   `json:"category"`
		Description string   `json:"description"`
		Price       Price    `json:"price"`
		Tags        []string `json:"tags"`
	}

	Category struct {
		Key   string `json:"key"`
		Label string `json:"label"`
	}
)

type FilterView struct {
	Query    string `json:"query"`
	Category string `json:"category"`
	Share    string `json:"share"`
}

type SetQueryRequest struct {
	Query string `json:"query"`
}

type SetCategoryRequest struct {
	Category string `json:"category"`
}

type (
	CartItem struct {
		ProductID string `json:"product_id"`
		Name      string `json:"name"`
		Quantity  int    `json:"quantity"`
		UnitPrice Price  `json:"unit_price"`
		LineTotal Price  `json:"line_total"`
	}

	TotalsView struct {
		Subtotal  Price `json:"subtotal"`
		Shipping  Price `json:"shipping"`
		Total     Price `json:"total"`
		ItemCount int   `json:"item_count"`
	}

	CartView struct {
		Items  []CartItem `json:"items"`
		Totals TotalsView `json:"totals"`
	}
)

type AddItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type SetQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type OrderView struct {
	OrderID   string `json:"order_id"`
	Total     Price  `json:"total"`
	ItemCount int    `json:"item_count"`
	PlacedAt  string `json:"placed_at"`
}
