package domain

type (
	Product struct {
		ProductID   string
		Name        string
		Category    string
		Description string
		Price       Money
		Tags        []string
	}

	Category struct {
		Key   string
		Label string
	}
)

// CategoryAll is the synthetic wildcard category.
// No real product ever carries it.
const CategoryAll = "all"
