package lcg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// MaxCount is the largest number of values a single run may emit.
const MaxCount = 90000

// validation error kinds
var (
	ErrInvalidModulus    = errors.New("invalid modulus")
	ErrInvalidMultiplier = errors.New("invalid multiplier")
	ErrInvalidIncrement  = errors.New("invalid increment")
	ErrInvalidSeed       = errors.New("invalid seed")
	ErrInvalidCount      = errors.New("invalid count")
)

// ValidationError reports the first field that failed validation
// together with the range it must lie in.
type ValidationError struct {
	Kind  error
	Field string
	Value string
	Min   int64
	Max   int64 // unused for modulus
}

func (e *ValidationError) Error() string {
	if e.Kind == ErrInvalidModulus {
		return fmt.Sprintf("%s: %q must be an integer greater than 0", e.Field, e.Value)
	}
	return fmt.Sprintf("%s: %q must be an integer in [%d, %d]", e.Field, e.Value, e.Min, e.Max)
}

// Unwrap lets errors.Is match the Kind sentinel.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// Raw holds parameters as the caller typed them.
type Raw struct {
	Modulus    string `json:"modulus"`
	Multiplier string `json:"multiplier"`
	Increment  string `json:"increment"`
	Seed       string `json:"seed"`
	Count      string `json:"count"`
}

// Params is a validated generator configuration. The zero value is not valid;
// obtain one from Validate, NewParams or a preset.
type Params struct {
	modulus    int64
	multiplier int64
	increment  int64
	seed       int64
	count      int
}

func (p Params) Modulus() int64    { return p.modulus }
func (p Params) Multiplier() int64 { return p.multiplier }
func (p Params) Increment() int64  { return p.increment }
func (p Params) Seed() int64       { return p.seed }
func (p Params) Count() int        { return p.count }

// Raw renders p back into its textual form.
func (p Params) Raw() Raw {
	return Raw{
		Modulus:    strconv.FormatInt(p.modulus, 10),
		Multiplier: strconv.FormatInt(p.multiplier, 10),
		Increment:  strconv.FormatInt(p.increment, 10),
		Seed:       strconv.FormatInt(p.seed, 10),
		Count:      strconv.Itoa(p.count),
	}
}

func (p Params) String() string {
	return fmt.Sprintf("m=%d a=%d c=%d x0=%d n=%d", p.modulus, p.multiplier, p.increment, p.seed, p.count)
}

// Validate parses raw and checks every field left to right, stopping at the
// first failure. The ranges of multiplier, increment and seed depend on the
// modulus, so it is checked first.
func Validate(raw Raw) (Params, error) {
	m, err := parseInt(raw.Modulus)
	if err != nil || m <= 0 {
		return Params{}, &ValidationError{Kind: ErrInvalidModulus, Field: "modulus", Value: raw.Modulus, Min: 1}
	}
	a, err := parseInt(raw.Multiplier)
	if err != nil || !inResidues(a, m) {
		return Params{}, residueError(ErrInvalidMultiplier, "multiplier", raw.Multiplier, m)
	}
	c, err := parseInt(raw.Increment)
	if err != nil || !inResidues(c, m) {
		return Params{}, residueError(ErrInvalidIncrement, "increment", raw.Increment, m)
	}
	x0, err := parseInt(raw.Seed)
	if err != nil || !inResidues(x0, m) {
		return Params{}, residueError(ErrInvalidSeed, "seed", raw.Seed, m)
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw.Count))
	if err != nil || n < 1 || n > MaxCount {
		return Params{}, countError(raw.Count)
	}

	return Params{modulus: m, multiplier: a, increment: c, seed: x0, count: n}, nil
}

// NewParams applies the checks of Validate to already typed values.
func NewParams(modulus, multiplier, increment, seed int64, count int) (Params, error) {
	return Validate(Params{
		modulus:    modulus,
		multiplier: multiplier,
		increment:  increment,
		seed:       seed,
		count:      count,
	}.Raw())
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}

func inResidues(v, m int64) bool {
	return v >= 0 && v < m
}

func residueError(kind error, field, value string, m int64) error {
	return &ValidationError{Kind: kind, Field: field, Value: value, Min: 0, Max: m - 1}
}

func countError(value string) error {
	return &ValidationError{Kind: ErrInvalidCount, Field: "count", Value: value, Min: 1, Max: MaxCount}
}
