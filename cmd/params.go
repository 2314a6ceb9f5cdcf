package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tutils/lcgen/lcg"
)

var (
	presetName string
	rawFlags   lcg.Raw
)

// addParamFlags registers the generator parameter flags on c.
func addParamFlags(c *cobra.Command) {
	flags := c.Flags()
	flags.StringVarP(&rawFlags.Modulus, "modulus", "m", "", "modulus m > 0")
	flags.StringVarP(&rawFlags.Multiplier, "multiplier", "a", "", "multiplier a in [0, m-1]")
	flags.StringVarP(&rawFlags.Increment, "increment", "c", "", "increment c in [0, m-1]")
	flags.StringVarP(&rawFlags.Seed, "seed", "s", "", "seed x0 in [0, m-1]")
	flags.StringVarP(&rawFlags.Count, "count", "n", "", "number of values in [1, 90000]")
	flags.StringVarP(&presetName, "preset", "p", "", "start from a named preset: default, minstd")
}

// resolveParams layers, lowest first: built-in defaults, config file and
// environment, the preset, then explicitly set flags.
func resolveParams(c *cobra.Command) (lcg.Params, error) {
	raw := cfg.Params
	if presetName != "" {
		p, err := lcg.Preset(presetName)
		if err != nil {
			return lcg.Params{}, err
		}
		raw = p.Raw()
	}

	flags := c.Flags()
	override := func(name string, dst *string, v string) {
		if flags.Changed(name) {
			*dst = v
		}
	}
	override("modulus", &raw.Modulus, rawFlags.Modulus)
	override("multiplier", &raw.Multiplier, rawFlags.Multiplier)
	override("increment", &raw.Increment, rawFlags.Increment)
	override("seed", &raw.Seed, rawFlags.Seed)
	override("count", &raw.Count, rawFlags.Count)

	return lcg.Validate(raw)
}
