package checkout

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gofood/internal/logger"
	"gofood/internal/metrics"
	"gofood/internal/money"
	"gofood/internal/store"
)

// Checkout attempts get the strict tier: the delay already throttles
// the happy path, this guards against a stuck retry loop.
const (
	limitStrict = rate.Limit(2)
	burstStrict = 5
)

// Service turns the current cart into an order. The processing delay
// simulates the payment call and honors context cancellation: a
// cancelled checkout records nothing and leaves the cart untouched.
type Service interface {
	PlaceOrder(ctx context.Context) (*store.Order, error)
}

type service struct {
	store   *store.Store
	delay   time.Duration
	limiter *rate.Limiter
	metrics *metrics.StoreMetrics
}

type Option func(*service)

func WithMetrics(m *metrics.StoreMetrics) Option {
	return func(s *service) { s.metrics = m }
}

func NewService(st *store.Store, delay time.Duration, opts ...Option) Service {
	s := &service{
		store:   st,
		delay:   delay,
		limiter: rate.NewLimiter(limitStrict, burstStrict),
	}
	for _, o := range opts {
		o(s)
	}
	if s.metrics == nil {
		s.metrics = &metrics.StoreMetrics{}
	}
	return s
}

func (s *service) PlaceOrder(ctx context.Context) (*store.Order, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "service"),
		zap.String("method", "PlaceOrder"),
	)

	if !s.limiter.Allow() {
		log.Warn("checkout attempt rate limited")
		return nil, ErrTooManyAttempts
	}

	// 1. Snapshot the cart
	items := s.store.Cart()
	if len(items) == 0 {
		return nil, ErrCartEmpty
	}

	total := decimal.Zero
	for _, l := range items {
		total = total.Add(money.Mul(l.UnitPrice, l.Quantity))
	}

	timer := metrics.StartTimer()

	// 2. Simulated payment processing
	if err := s.process(ctx); err != nil {
		log.Warn("checkout abandoned during processing", zap.Error(err))
		return nil, err
	}

	// 3. Record the order; the store clears the cart in the same
	// transition.
	order := store.Order{
		ID:       GenerateOrderNumber(),
		Items:    items,
		Total:    money.Round(total),
		PlacedAt: time.Now(),
	}

	if err := s.store.RecordOrder(order); err != nil {
		return nil, err
	}

	s.metrics.OrdersPlaced.Inc()

	log.Info("order placed",
		zap.String("order_id", order.ID),
		zap.Int("item_count", len(items)),
		zap.String("total", money.Format(order.Total)),
		zap.Duration("duration", timer.Duration()),
	)

	return &order, nil
}

func (s *service) process(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
