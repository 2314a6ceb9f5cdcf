package lcg

import "math/bits"

const (
	// PeriodNotFound is reported when no value repeats within the detection horizon.
	PeriodNotFound = -1

	// MaxHorizon caps the number of steps FindPeriod takes.
	MaxHorizon = 1000000
)

// Result is the outcome of one generation run.
type Result struct {
	Values []int64 `json:"values"`
	Period int     `json:"period"`
}

// PeriodFound reports whether a cycle was detected.
func (r Result) PeriodFound() bool {
	return r.Period != PeriodNotFound
}

// step returns (a*x + c) mod m. All operands are residues of m, so the
// product fits in 128 bits and the sum adds at most one carry.
func step(a, x, c, m uint64) uint64 {
	hi, lo := bits.Mul64(a, x)
	lo, carry := bits.Add64(lo, c, 0)
	return bits.Rem64(hi+carry, lo, m)
}

// Generator walks the recurrence x[i] = (a*x[i-1] + c) mod m one value at a time.
type Generator struct {
	a, c, m uint64
	seed    uint64
	x       uint64
}

// NewGenerator returns a Generator positioned at the seed of p.
func NewGenerator(p Params) *Generator {
	return &Generator{
		a:    uint64(p.multiplier),
		c:    uint64(p.increment),
		m:    uint64(p.modulus),
		seed: uint64(p.seed),
		x:    uint64(p.seed),
	}
}

// Next advances the state and returns the new value. The seed itself is never returned.
func (g *Generator) Next() int64 {
	g.x = step(g.a, g.x, g.c, g.m)
	return int64(g.x)
}

// Reset moves the generator back to its seed.
func (g *Generator) Reset() {
	g.x = g.seed
}

// Generate emits the count values following the seed and the period of the
// recurrence.
func Generate(p Params) Result {
	g := NewGenerator(p)
	values := make([]int64, p.count)
	for i := range values {
		values[i] = g.Next()
	}
	return Result{
		Values: values,
		Period: FindPeriod(p),
	}
}

// DetectionHorizon is the number of steps FindPeriod takes for p. A walk of
// modulus steps visits modulus+1 states, so a cycle is always found when the
// modulus does not exceed MaxHorizon.
func DetectionHorizon(p Params) int {
	if p.modulus < MaxHorizon {
		return int(p.modulus)
	}
	return MaxHorizon
}

// FindPeriod walks the recurrence again from the seed, independently of
// count, and returns the distance between the first repeated value and its
// earlier occurrence. Any transient tail before the cycle is excluded.
func FindPeriod(p Params) int {
	horizon := DetectionHorizon(p)
	seen := make(map[int64]int, min(horizon+1, 1<<16))

	g := NewGenerator(p)
	x := p.seed
	for i := 0; i <= horizon; i++ {
		if j, ok := seen[x]; ok {
			return i - j
		}
		seen[x] = i
		x = g.Next()
	}
	return PeriodNotFound
}
