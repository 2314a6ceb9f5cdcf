package lcg

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownPreset is returned by Preset for names it does not know.
var ErrUnknownPreset = errors.New("unknown preset")

// preset names
const (
	PresetDefault = "default"
	PresetMinStd  = "minstd"
)

var presets = map[string]Params{
	// m = 2^10 - 1, a = 2^5
	PresetDefault: {modulus: 1023, multiplier: 32, increment: 0, seed: 2, count: 100},
	// Park-Miller minimal standard
	PresetMinStd: {modulus: 2147483647, multiplier: 16807, increment: 0, seed: 1, count: 100},
}

// Defaults returns the parameters a fresh session starts with.
func Defaults() Params {
	return presets[PresetDefault]
}

// MinStd returns the Park-Miller minimal standard generator.
func MinStd() Params {
	return presets[PresetMinStd]
}

// Preset looks up a named parameter set.
func Preset(name string) (Params, error) {
	p, ok := presets[name]
	if !ok {
		return Params{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p, nil
}

// PresetNames lists the known presets in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
