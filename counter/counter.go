package counter

// Counter is a cumulative metric
type Counter interface {
	// Value is the running total.
	Value() int64
	// RatePerSec is the growth of Value over the last completed window.
	RatePerSec() int64

	Add(n int64)
}
