package lcg_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutils/lcgen/lcg"
)

func raw(m, a, c, x0, n string) lcg.Raw {
	return lcg.Raw{Modulus: m, Multiplier: a, Increment: c, Seed: x0, Count: n}
}

func TestValidateAccepts(t *testing.T) {
	cases := []struct {
		name string
		in   lcg.Raw
	}{
		{"defaults", raw("1023", "32", "0", "2", "100")},
		{"multiplier zero", raw("10", "0", "1", "1", "5")},
		{"multiplier max", raw("10", "9", "1", "1", "5")},
		{"count one", raw("10", "3", "1", "1", "1")},
		{"count max", raw("10", "3", "1", "1", "90000")},
		{"modulus one", raw("1", "0", "0", "0", "3")},
		{"surrounding spaces", raw(" 7 ", "3\t", " 1", "0 ", " 2 ")},
		{"max int64", raw("9223372036854775807", "9223372036854775806", "9223372036854775806", "9223372036854775806", "90000")},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lcg.Validate(tc.in)
			require.NoError(t, err)
		})
	}
}

func TestValidateRejects(t *testing.T) {
	cases := []struct {
		name  string
		in    lcg.Raw
		kind  error
		field string
	}{
		{"modulus zero", raw("0", "0", "0", "0", "1"), lcg.ErrInvalidModulus, "modulus"},
		{"modulus negative", raw("-5", "0", "0", "0", "1"), lcg.ErrInvalidModulus, "modulus"},
		{"modulus text", raw("abc", "0", "0", "0", "1"), lcg.ErrInvalidModulus, "modulus"},
		{"modulus overflow", raw("9223372036854775808", "0", "0", "0", "1"), lcg.ErrInvalidModulus, "modulus"},
		{"multiplier equals modulus", raw("10", "10", "0", "0", "1"), lcg.ErrInvalidMultiplier, "multiplier"},
		{"multiplier negative", raw("10", "-1", "0", "0", "1"), lcg.ErrInvalidMultiplier, "multiplier"},
		{"multiplier empty", raw("10", "", "0", "0", "1"), lcg.ErrInvalidMultiplier, "multiplier"},
		{"increment equals modulus", raw("10", "1", "10", "0", "1"), lcg.ErrInvalidIncrement, "increment"},
		{"increment negative", raw("10", "1", "-1", "0", "1"), lcg.ErrInvalidIncrement, "increment"},
		{"seed equals modulus", raw("10", "1", "1", "10", "1"), lcg.ErrInvalidSeed, "seed"},
		{"seed fraction", raw("10", "1", "1", "1.5", "1"), lcg.ErrInvalidSeed, "seed"},
		{"count zero", raw("10", "1", "1", "1", "0"), lcg.ErrInvalidCount, "count"},
		{"count above max", raw("10", "1", "1", "1", "90001"), lcg.ErrInvalidCount, "count"},
		{"count negative", raw("10", "1", "1", "1", "-3"), lcg.ErrInvalidCount, "count"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lcg.Validate(tc.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.kind)

			var verr *lcg.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}

func TestValidateShortCircuits(t *testing.T) {
	// every field is bad, only the modulus is reported
	_, err := lcg.Validate(raw("0", "x", "x", "x", "x"))
	assert.ErrorIs(t, err, lcg.ErrInvalidModulus)
	assert.NotErrorIs(t, err, lcg.ErrInvalidMultiplier)

	// the multiplier range follows the modulus that was just parsed
	_, err = lcg.Validate(raw("5", "7", "-1", "x", "0"))
	assert.ErrorIs(t, err, lcg.ErrInvalidMultiplier)
}

func TestValidationErrorNamesRange(t *testing.T) {
	_, err := lcg.Validate(raw("1023", "1023", "0", "2", "100"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[0, 1022]")

	_, err = lcg.Validate(raw("1023", "32", "0", "2", "90001"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "[1, "+strconv.Itoa(lcg.MaxCount)+"]")
}

func TestNewParams(t *testing.T) {
	p, err := lcg.NewParams(1023, 32, 0, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(1023), p.Modulus())
	assert.Equal(t, int64(32), p.Multiplier())
	assert.Equal(t, int64(0), p.Increment())
	assert.Equal(t, int64(2), p.Seed())
	assert.Equal(t, 5, p.Count())
	assert.Equal(t, raw("1023", "32", "0", "2", "5"), p.Raw())

	_, err = lcg.NewParams(10, 1, 1, 11, 5)
	assert.ErrorIs(t, err, lcg.ErrInvalidSeed)
}

func TestPreset(t *testing.T) {
	p, err := lcg.Preset(lcg.PresetMinStd)
	require.NoError(t, err)
	assert.Equal(t, lcg.MinStd(), p)
	assert.Equal(t, int64(2147483647), p.Modulus())
	assert.Equal(t, int64(16807), p.Multiplier())

	d := lcg.Defaults()
	assert.Equal(t, raw("1023", "32", "0", "2", "100"), d.Raw())

	_, err = lcg.Preset("nope")
	assert.ErrorIs(t, err, lcg.ErrUnknownPreset)

	assert.Equal(t, []string{lcg.PresetDefault, lcg.PresetMinStd}, lcg.PresetNames())

	// presets satisfy the same checks as user input
	for _, name := range lcg.PresetNames() {
		p, _ := lcg.Preset(name)
		_, err := lcg.Validate(p.Raw())
		assert.NoError(t, err, name)
	}
}
