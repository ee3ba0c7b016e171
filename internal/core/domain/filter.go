package domain

// FilterState holds the search text and category selection
// controlling which products are visible.
type FilterState struct {
	Query    string
	Category string
}

func DefaultFilterState() FilterState {
	return FilterState{Query: "", Category: CategoryAll}
}
