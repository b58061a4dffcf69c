package store

// Action is one of the closed set of state transitions the Store
// accepts. The set is sealed by the unexported marker method so the
// reducer's type switch stays exhaustive.
type Action interface {
	isAction()
}

// SetUser replaces the session user wholesale. Cart and orders are
// untouched.
type SetUser struct {
	User *User
}

// Logout clears user, cart and orders and removes their durable
// entries. Theme is preserved.
type Logout struct{}

// AddToCart merges the line into an existing (ProductID, Size) line by
// summing quantity, or appends it as a new line.
type AddToCart struct {
	Line CartLine
}

// RemoveFromCart drops the line with the given cart id; unknown ids
// are a silent no-op.
type RemoveFromCart struct {
	CartID string
}

// UpdateCartItem sets the quantity on the line with the given cart id;
// unknown ids are a silent no-op.
type UpdateCartItem struct {
	CartID   string
	Quantity int
}

// ClearCart empties the cart unconditionally.
type ClearCart struct{}

// AddOrder appends the order to history and empties the cart in the
// same transition.
type AddOrder struct {
	Order Order
}

type SetSearchTerm struct {
	Term string
}

type SetFilterCategory struct {
	Category string
}

type SetTheme struct {
	Theme Theme
}

func (SetUser) isAction()           {}
func (Logout) isAction()            {}
func (AddToCart) isAction()         {}
func (RemoveFromCart) isAction()    {}
func (UpdateCartItem) isAction()    {}
func (ClearCart) isAction()         {}
func (AddOrder) isAction()          {}
func (SetSearchTerm) isAction()     {}
func (SetFilterCategory) isAction() {}
func (SetTheme) isAction()          {}
