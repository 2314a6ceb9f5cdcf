package rate

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (f *fakeClock) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.now
}

func (f *fakeClock) advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
}

func TestRateCounter(t *testing.T) {
	clk := &fakeClock{now: time.Unix(1700000000, 0)}
	c := NewRateCounter(time.Second, WithClock(clk.Now))

	c.Add(500)
	assert.Equal(t, int64(500), c.Value())
	assert.Equal(t, int64(0), c.RatePerSec(), "window not elapsed yet")

	clk.advance(2 * time.Second)
	c.Add(1500)
	assert.Equal(t, int64(2000), c.Value())
	assert.Equal(t, int64(1000), c.RatePerSec())

	// idle windows decay the rate
	clk.advance(time.Second)
	assert.Equal(t, int64(0), c.RatePerSec())
}

func TestRateCounterConcurrentAdd(t *testing.T) {
	c := NewRateCounter(time.Hour)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				c.Add(1)
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, int64(8000), c.Value())
}
