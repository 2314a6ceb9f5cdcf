package cmd

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gitlab.com/distributed_lab/logan/v3"

	"github.com/tutils/lcgen/config"
)

var (
	cfgFile string

	// resolved in initConfig
	cfg config.Config
	log = logan.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lcgen",
	Short: "Linear congruential generator.",
	Long: `Linear congruential generator and cycle analyzer.
Generates x[i] = (a*x[i-1] + c) mod m from a seed and reports the period of the recurrence, For example:
  lcgen generate --modulus=1023 --multiplier=32 --increment=0 --seed=2 --count=100
  lcgen generate --preset=minstd --save
  lcgen serve --listen=0.0.0.0:8080`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfig()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lcgen.yaml)")
	flags.String("log-level", config.DefaultLogLevel, "log level: debug, info, warn, error")
	viper.BindPFlag(config.KeyLogLevel, flags.Lookup("log-level"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() error {
	used, err := config.Init(viper.GetViper(), cfgFile)
	if err != nil {
		return err
	}

	cfg = config.Load(viper.GetViper())
	entry, err := cfg.Log()
	if err != nil {
		return err
	}
	log = entry
	if used != "" {
		log.WithField("file", used).Debug("using config file")
	}
	return nil
}
