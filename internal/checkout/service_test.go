package checkout

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"gofood/internal/catalog"
	"gofood/internal/metrics"
	"gofood/internal/storage"
	"gofood/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.New(storage.NewMemory(), zap.NewNop())
}

func addPizza(t *testing.T, s *store.Store, quantity int) {
	t.Helper()
	err := s.AddLine(store.CartLine{
		ProductID: 1,
		Name:      "Margherita Pizza",
		UnitPrice: decimal.RequireFromString("18.99"),
		Size:      catalog.SizeFull,
		Quantity:  quantity,
	})
	assert.NoError(t, err)
}

func TestService_PlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		st := newTestStore(t)
		addPizza(t, st, 3)

		m := &metrics.StoreMetrics{}
		svc := NewService(st, 0, WithMetrics(m))

		order, err := svc.PlaceOrder(ctx)

		assert.NoError(t, err)
		assert.NotNil(t, order)
		assert.True(t, strings.HasPrefix(order.ID, "ORD-"), order.ID)
		assert.Len(t, order.Items, 1)
		assert.Equal(t, "56.97", order.Total.StringFixed(2))
		assert.False(t, order.PlacedAt.IsZero())

		// Atomic handoff: cart emptied, order recorded.
		assert.Empty(t, st.Cart())
		assert.Len(t, st.Orders(), 1)
		assert.Equal(t, order.ID, st.Orders()[0].ID)
		assert.Equal(t, uint64(1), m.OrdersPlaced.Load())
	})

	t.Run("Order snapshots the pre-checkout cart", func(t *testing.T) {
		st := newTestStore(t)
		addPizza(t, st, 2)
		want := st.Cart()

		svc := NewService(st, 0)
		order, err := svc.PlaceOrder(ctx)

		assert.NoError(t, err)
		assert.Equal(t, want, order.Items)
	})

	t.Run("Error - empty cart", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewService(st, 0)

		_, err := svc.PlaceOrder(ctx)

		assert.Equal(t, ErrCartEmpty, err)
		assert.Empty(t, st.Orders())
	})

	t.Run("Error - cancelled during processing records nothing", func(t *testing.T) {
		st := newTestStore(t)
		addPizza(t, st, 2)

		svc := NewService(st, 100*time.Millisecond)

		cancelCtx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := svc.PlaceOrder(cancelCtx)

		assert.ErrorIs(t, err, context.Canceled)
		assert.Len(t, st.Cart(), 1, "cart untouched")
		assert.Empty(t, st.Orders())
	})

	t.Run("Error - rapid attempts rate limited", func(t *testing.T) {
		st := newTestStore(t)
		svc := NewService(st, 0)

		// Burn the strict-tier burst with empty-cart attempts.
		for i := 0; i < burstStrict; i++ {
			_, err := svc.PlaceOrder(ctx)
			assert.Equal(t, ErrCartEmpty, err)
		}

		_, err := svc.PlaceOrder(ctx)
		assert.Equal(t, ErrTooManyAttempts, err)
	})
}

func TestGenerateOrderNumber(t *testing.T) {
	t.Run("Shape", func(t *testing.T) {
		n := GenerateOrderNumber()
		assert.Regexp(t, `^ORD-\d{8}-\d{6}-\d{3}-\d{4}$`, n)
	})

	t.Run("Distinct across seconds", func(t *testing.T) {
		first := GenerateOrderNumber()
		time.Sleep(1100 * time.Millisecond)
		second := GenerateOrderNumber()
		assert.NotEqual(t, first, second)
	})
}
