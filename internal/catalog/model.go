package catalog

import "github.com/shopspring/decimal"

// Size selects which portion price of a product applies.
type Size string

const (
	SizeHalf Size = "half"
	SizeFull Size = "full"
)

// Price holds per-portion pricing for a product.
type Price struct {
	Half decimal.Decimal `json:"half"`
	Full decimal.Decimal `json:"full"`
}

// For returns the price for the given size, defaulting to full.
func (p Price) For(size Size) decimal.Decimal {
	if size == SizeHalf {
		return p.Half
	}
	return p.Full
}

// Product is a catalog entry. Entries are static seed data and never
// mutated.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Rating      float64 `json:"rating"`
	Price       Price   `json:"price"`
	Category    string  `json:"category"`
}
