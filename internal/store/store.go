package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"gofood/internal/catalog"
	"gofood/internal/metrics"
	"gofood/internal/storage"
)

// Durable storage keys, one JSON entry per key.
const (
	keyUser   = "user"
	keyCart   = "cart"
	keyOrders = "orders"
	keyTheme  = "theme"
)

const defaultCategory = catalog.CategoryAll

// Option configures a Store at construction.
type Option func(*Store)

// WithThemeApplier registers a callback invoked after every theme
// transition, mirroring the theme onto whatever presentation surface
// exists. Cosmetic only.
func WithThemeApplier(fn func(Theme)) Option {
	return func(s *Store) { s.applyTheme = fn }
}

func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(s *Store) { s.metrics = m }
}

// Store is the single authoritative holder of session, cart, order,
// search/filter and theme state. All writes go through Dispatch with a
// closed set of actions; derived values are recomputed on every read.
//
// Persistence is best-effort by contract: every transition of the
// user, cart, orders or theme slice writes that slice to durable
// storage, and a write failure is logged and swallowed — the in-memory
// transition always stands.
type Store struct {
	mu    sync.Mutex
	state AppState

	kv         storage.KV
	log        *zap.Logger
	metrics    *metrics.StoreMetrics
	applyTheme func(Theme)
}

// New constructs the process-wide store and hydrates it from durable
// storage. Missing or malformed entries fall back to empty defaults.
func New(kv storage.KV, log *zap.Logger, opts ...Option) *Store {
	s := &Store{
		kv:  kv,
		log: log,
		state: AppState{
			FilterCategory: defaultCategory,
			Theme:          ThemeLight,
		},
	}
	for _, o := range opts {
		o(s)
	}
	if s.metrics == nil {
		s.metrics = &metrics.StoreMetrics{}
	}

	s.hydrate()
	return s
}

func (s *Store) hydrate() {
	var u *User
	if ok := s.read(keyUser, &u); ok && u != nil {
		s.state.User = u
	}

	var cart []CartLine
	if ok := s.read(keyCart, &cart); ok {
		s.state.Cart = cart
	}

	var orders []Order
	if ok := s.read(keyOrders, &orders); ok {
		s.state.Orders = orders
	}

	var theme Theme
	if ok := s.read(keyTheme, &theme); ok && (theme == ThemeLight || theme == ThemeDark) {
		s.state.Theme = theme
	}
}

func (s *Store) read(key string, dest any) bool {
	ok, err := s.kv.Get(key, dest)
	if err != nil {
		s.log.Warn("hydration read failed, using default",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return ok
}

// Dispatch validates and applies a single action. The state transition
// and the persistence of the touched slice happen under one lock, so a
// reader never observes the cart cleared without the order recorded.
func (s *Store) Dispatch(a Action) error {
	if err := validate(a); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = reduce(s.state, a)
	s.metrics.Mutations.Inc()
	s.persist(a)
	return nil
}

func validate(a Action) error {
	switch a := a.(type) {
	case AddToCart:
		if a.Line.Quantity < 1 {
			return ErrInvalidQuantity
		}
		if a.Line.Size != catalog.SizeHalf && a.Line.Size != catalog.SizeFull {
			return ErrInvalidSize
		}
	case UpdateCartItem:
		if a.Quantity < 1 {
			return ErrInvalidQuantity
		}
	case SetTheme:
		if a.Theme != ThemeLight && a.Theme != ThemeDark {
			return ErrInvalidTheme
		}
	}
	return nil
}

// persist writes the slice the action touched. Runs under the lock.
func (s *Store) persist(a Action) {
	switch a.(type) {
	case SetUser:
		s.write(keyUser, s.state.User)

	case AddToCart, RemoveFromCart, UpdateCartItem, ClearCart:
		s.write(keyCart, s.state.Cart)

	case AddOrder:
		s.write(keyOrders, s.state.Orders)
		s.write(keyCart, s.state.Cart)

	case SetTheme:
		s.write(keyTheme, s.state.Theme)
		if s.applyTheme != nil {
			s.applyTheme(s.state.Theme)
		}

	case Logout:
		s.remove(keyUser)
		s.remove(keyCart)
		s.remove(keyOrders)
	}
}

func (s *Store) write(key string, v any) {
	if err := s.kv.Set(key, v); err != nil {
		s.metrics.PersistFailures.Inc()
		s.log.Warn("persist failed, in-memory state kept",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func (s *Store) remove(key string) {
	if err := s.kv.Delete(key); err != nil {
		s.metrics.PersistFailures.Inc()
		s.log.Warn("persist delete failed",
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

/* ---------- OPERATIONS ---------- */

// SetUser replaces the session user wholesale.
func (s *Store) SetUser(u *User) error {
	return s.Dispatch(SetUser{User: u})
}

// Logout clears user, cart and orders and deletes their durable
// entries; the theme preference survives.
func (s *Store) Logout() error {
	return s.Dispatch(Logout{})
}

// AddLine adds the line to the cart, merging with an existing
// (product, size) line or assigning a fresh cart id. Quantity must be
// at least 1 and the size must be a known portion size.
func (s *Store) AddLine(line CartLine) error {
	if line.CartID == "" {
		line.CartID = uuid.NewString()
	}
	return s.Dispatch(AddToCart{Line: line})
}

// RemoveLine drops the line with the given cart id; unknown ids are a
// no-op, not an error.
func (s *Store) RemoveLine(cartID string) error {
	return s.Dispatch(RemoveFromCart{CartID: cartID})
}

// UpdateLineQuantity sets the quantity on the line with the given cart
// id. Quantities below 1 are rejected.
func (s *Store) UpdateLineQuantity(cartID string, quantity int) error {
	return s.Dispatch(UpdateCartItem{CartID: cartID, Quantity: quantity})
}

func (s *Store) EmptyCart() error {
	return s.Dispatch(ClearCart{})
}

// RecordOrder appends the order to history and empties the cart in one
// transition.
func (s *Store) RecordOrder(o Order) error {
	return s.Dispatch(AddOrder{Order: o})
}

func (s *Store) SetSearchTerm(term string) error {
	return s.Dispatch(SetSearchTerm{Term: term})
}

func (s *Store) SetFilterCategory(category string) error {
	return s.Dispatch(SetFilterCategory{Category: category})
}

func (s *Store) SetTheme(theme Theme) error {
	return s.Dispatch(SetTheme{Theme: theme})
}

/* ---------- READS ---------- */

// User returns a copy of the session user, or nil when logged out.
func (s *Store) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state.User == nil {
		return nil
	}
	u := *s.state.User
	return &u
}

// Cart returns a copy of the cart lines in insertion order.
func (s *Store) Cart() []CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]CartLine, len(s.state.Cart))
	copy(out, s.state.Cart)
	return out
}

// Orders returns a copy of the order history, oldest first.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.state.Orders))
	copy(out, s.state.Orders)
	return out
}

func (s *Store) SearchTerm() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.SearchTerm
}

func (s *Store) FilterCategory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.FilterCategory
}

func (s *Store) Theme() Theme {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Theme
}

// CartItemsCount is the sum of line quantities, recomputed on every
// call.
func (s *Store) CartItemsCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, l := range s.state.Cart {
		total += l.Quantity
	}
	return total
}

// CartTotal is the sum of unit price times quantity over all lines,
// recomputed on every call.
func (s *Store) CartTotal() decimal.Decimal {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := decimal.Zero
	for _, l := range s.state.Cart {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}
