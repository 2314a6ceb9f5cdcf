package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tutils/lcgen/lcg"
)

// periodCmd represents the period command
var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Print the period of a generator",
	Long: `Detect the cycle length of the recurrence without printing the sequence, For example:
  lcgen period --modulus=10 --multiplier=1 --increment=1 --seed=0`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveParams(cmd)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), periodLine(p, lcg.FindPeriod(p)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(periodCmd)
	addParamFlags(periodCmd)
}
