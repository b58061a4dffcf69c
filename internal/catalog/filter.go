package catalog

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Filter returns the products matching the free-text search term and
// category selector. A product is included iff the category is
// CategoryAll or equals the product's category (case-insensitive), and
// the term is empty or a case-insensitive substring of the product's
// name, description or category. Input ordering is preserved and the
// input slice is never modified; an empty result is a valid "no
// matches" answer.
func Filter(products []Product, searchTerm, category string) []Product {
	term := strings.ToLower(searchTerm)
	cat := strings.ToLower(category)

	out := make([]Product, 0, len(products))
	for _, p := range products {
		if cat != CategoryAll && !strings.EqualFold(p.Category, category) {
			continue
		}
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTerm(p Product, term string) bool {
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

// LineTotal computes price[size] × quantity rounded to 2 decimal
// places. Size defaults to full and quantity to 1 when unspecified.
func LineTotal(p Product, size Size, quantity int) decimal.Decimal {
	if size == "" {
		size = SizeFull
	}
	if quantity < 1 {
		quantity = 1
	}
	return p.Price.For(size).Mul(decimal.NewFromInt(int64(quantity))).Round(2)
}
