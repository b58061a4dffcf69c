package catalog

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testProducts() []Product {
	return []Product{
		{ID: 1, Name: "Margherita Pizza", Description: "Fresh tomatoes, mozzarella cheese, basil leaves", Category: "Pizza", Price: price("12.99", "18.99")},
		{ID: 3, Name: "Caesar Salad", Description: "Crisp romaine lettuce, parmesan, croutons, caesar dressing", Category: "Salad", Price: price("6.99", "11.99")},
	}
}

func TestFilter(t *testing.T) {
	products := testProducts()

	t.Run("Identity - empty term and all categories", func(t *testing.T) {
		got := Filter(products, "", CategoryAll)
		assert.Equal(t, products, got)
	})

	t.Run("Idempotent - repeated calls return equal output", func(t *testing.T) {
		first := Filter(products, "pizza", CategoryAll)
		second := Filter(products, "pizza", CategoryAll)
		assert.Equal(t, first, second)
	})

	t.Run("Search term matches name", func(t *testing.T) {
		got := Filter(products, "pizza", CategoryAll)

		assert.Len(t, got, 1)
		assert.Equal(t, "Margherita Pizza", got[0].Name)
	})

	t.Run("Search term matches description", func(t *testing.T) {
		got := Filter(products, "romaine", CategoryAll)

		assert.Len(t, got, 1)
		assert.Equal(t, "Caesar Salad", got[0].Name)
	})

	t.Run("Search is case-insensitive", func(t *testing.T) {
		got := Filter(products, "PIZZA", CategoryAll)
		assert.Len(t, got, 1)
	})

	t.Run("Category filter is case-insensitive", func(t *testing.T) {
		got := Filter(products, "", "salad")

		assert.Len(t, got, 1)
		assert.Equal(t, "Caesar Salad", got[0].Name)
	})

	t.Run("No matches yields empty result", func(t *testing.T) {
		got := Filter(products, "sushi", CategoryAll)

		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("Term and category must both match", func(t *testing.T) {
		got := Filter(products, "pizza", "salad")
		assert.Empty(t, got)
	})

	t.Run("Input ordering preserved", func(t *testing.T) {
		got := Filter(seedProducts, "", CategoryAll)

		assert.Len(t, got, len(seedProducts))
		for i := range got {
			assert.Equal(t, seedProducts[i].ID, got[i].ID)
		}
	})

	t.Run("Input slice not modified", func(t *testing.T) {
		before := testProducts()
		Filter(products, "pizza", CategoryAll)
		assert.Equal(t, before, products)
	})
}

func TestLineTotal(t *testing.T) {
	p := Product{Name: "Margherita Pizza", Price: price("12.99", "18.99")}

	t.Run("Full size times quantity", func(t *testing.T) {
		got := LineTotal(p, SizeFull, 2)
		assert.True(t, got.Equal(decimal.RequireFromString("37.98")), got.String())
	})

	t.Run("Half size", func(t *testing.T) {
		got := LineTotal(p, SizeHalf, 3)
		assert.True(t, got.Equal(decimal.RequireFromString("38.97")), got.String())
	})

	t.Run("Defaults - full size, quantity 1", func(t *testing.T) {
		got := LineTotal(p, "", 0)
		assert.True(t, got.Equal(decimal.RequireFromString("18.99")), got.String())
	})

	t.Run("Rounded to 2 decimal places", func(t *testing.T) {
		odd := Product{Price: Price{
			Half: decimal.RequireFromString("3.333"),
			Full: decimal.RequireFromString("6.666"),
		}}
		got := LineTotal(odd, SizeFull, 1)
		assert.Equal(t, "6.67", got.StringFixed(2))
	})
}

func TestSeedCatalog(t *testing.T) {
	t.Run("Twelve entries with distinct ids", func(t *testing.T) {
		seen := make(map[int]bool)
		for _, p := range seedProducts {
			assert.False(t, seen[p.ID], "duplicate id %d", p.ID)
			seen[p.ID] = true
		}
		assert.Len(t, seedProducts, 12)
	})

	t.Run("Every category is filterable", func(t *testing.T) {
		for _, p := range seedProducts {
			got := Filter(seedProducts, "", p.Category)
			assert.NotEmpty(t, got, "category %s", p.Category)
		}
	})
}
