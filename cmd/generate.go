package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lcgen/config"
	"github.com/tutils/lcgen/lcg"
	"github.com/tutils/lcgen/report"
)

var (
	saveReport bool
	plainOut   bool
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a sequence and its period",
	Long: `Generate count values of x[i] = (a*x[i-1] + c) mod m, starting after the seed, For example:
  lcgen generate --modulus=1023 --multiplier=32 --increment=0 --seed=2 --count=5
  lcgen generate --preset=minstd --count=1000 --save --report-dir=~/lcg`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := resolveParams(cmd)
		if err != nil {
			return err
		}

		res := lcg.Generate(p)
		log.WithField("params", p.String()).WithField("period", res.Period).Debug("generated")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, p.String())
		fmt.Fprintln(out, periodLine(p, res.Period))

		width := 0
		if f, ok := out.(*os.File); ok && !plainOut {
			width = terminalWidth(f)
		}
		if err := renderValues(out, res.Values, width); err != nil {
			return err
		}

		if !saveReport {
			return nil
		}
		saver, err := report.NewSaver(viper.GetString(config.KeyReportDir), log)
		if err != nil {
			return err
		}
		path, err := saver.Save(report.New(p, res, time.Now()))
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "report saved: %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	addParamFlags(generateCmd)
	flags := generateCmd.Flags()
	flags.BoolVar(&saveReport, "save", false, "save a text report")
	flags.String("report-dir", "", "report directory (default is $HOME/Documents)")
	flags.BoolVar(&plainOut, "plain", false, "one value per line even on a terminal")
	viper.BindPFlag(config.KeyReportDir, flags.Lookup("report-dir"))
}
