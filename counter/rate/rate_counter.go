package rate

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/tutils/lcgen/counter"
)

var _ counter.Counter = &rateCounter{}

// Clock returns the current time.
type Clock func() time.Time

// Option is option setter for rate counter
type Option func(*rateCounter)

// WithClock replaces time.Now
func WithClock(clock Clock) Option {
	return func(c *rateCounter) {
		c.now = clock
	}
}

type rateCounter struct {
	value      int64
	ratePerSec int64
	window     time.Duration
	now        Clock

	mut       sync.Mutex
	lastValue int64
	lastTime  time.Time
}

// NewRateCounter returns a Counter whose rate is recomputed at most once per window.
func NewRateCounter(window time.Duration, opts ...Option) counter.Counter {
	c := &rateCounter{
		window: window,
		now:    time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	c.lastTime = c.now()
	return c
}

// Value implements Counter.
func (c *rateCounter) Value() int64 {
	return atomic.LoadInt64(&c.value)
}

// RatePerSec implements Counter.
func (c *rateCounter) RatePerSec() int64 {
	c.roll()
	return atomic.LoadInt64(&c.ratePerSec)
}

// Add implements Counter.
func (c *rateCounter) Add(n int64) {
	atomic.AddInt64(&c.value, n)
	c.roll()
}

func (c *rateCounter) roll() {
	c.mut.Lock()
	defer c.mut.Unlock()

	now := c.now()
	elapsed := now.Sub(c.lastTime)
	if elapsed < c.window {
		return
	}

	value := c.Value()
	atomic.StoreInt64(&c.ratePerSec, int64(float64(value-c.lastValue)/elapsed.Seconds()))
	c.lastValue = value
	c.lastTime = now
}
