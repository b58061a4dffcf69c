package metrics

import (
	"sync/atomic"
	"time"
)

type Counter struct {
	value uint64
}

func (c *Counter) Inc() {
	atomic.AddUint64(&c.value, 1)
}

func (c *Counter) Add(n uint64) {
	atomic.AddUint64(&c.value, n)
}

func (c *Counter) Load() uint64 {
	return atomic.LoadUint64(&c.value)
}

// StoreMetrics counts what the state container and the checkout flow
// actually did; read via Snapshot for logging or assertions.
type StoreMetrics struct {
	Mutations       Counter
	PersistFailures Counter
	OrdersPlaced    Counter
}

func (m *StoreMetrics) Snapshot() map[string]uint64 {
	return map[string]uint64{
		"mutations":        m.Mutations.Load(),
		"persist_failures": m.PersistFailures.Load(),
		"orders_placed":    m.OrdersPlaced.Load(),
	}
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}
