package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutils/lcgen/lcg"
)

// presetsCmd represents the presets command
var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List parameter presets",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range lcg.PresetNames() {
			p, err := lcg.Preset(name)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", name, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presetsCmd)
}
