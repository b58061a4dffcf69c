package store

import (
	"time"

	"github.com/shopspring/decimal"

	"gofood/internal/catalog"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// User is the session identity record. It is set wholesale on
// login/signup and cleared on logout; the store does not validate
// individual fields.
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CartLine is one cart entry. CartID identifies the line itself; the
// same product appears on two lines only when the size differs, because
// adds with an identical (ProductID, Size) pair merge by summing
// quantity.
type CartLine struct {
	CartID      string          `json:"cart_id"`
	ProductID   int             `json:"product_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Image       string          `json:"image"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Size        catalog.Size    `json:"size"`
	Quantity    int             `json:"quantity"`
	Category    string          `json:"category"`
}

// Order is an immutable snapshot of the cart at checkout time. Orders
// are append-only.
type Order struct {
	ID       string          `json:"id"`
	Items    []CartLine      `json:"items"`
	Total    decimal.Decimal `json:"total"`
	PlacedAt time.Time       `json:"placed_at"`
}

// AppState is the root application state held by the Store.
type AppState struct {
	User           *User
	Cart           []CartLine
	Orders         []Order
	SearchTerm     string
	FilterCategory string
	Theme          Theme
}
