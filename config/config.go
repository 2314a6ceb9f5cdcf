package config

import (
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
	"gitlab.com/distributed_lab/logan/v3"
	"gitlab.com/distributed_lab/logan/v3/errors"

	"github.com/tutils/lcgen/lcg"
)

// config keys
const (
	KeyLogLevel     = "log.level"
	KeyReportDir    = "report.dir"
	KeyServeListen  = "serve.listen"
	KeyModulus      = "params.modulus"
	KeyMultiplier   = "params.multiplier"
	KeyIncrement    = "params.increment"
	KeySeed         = "params.seed"
	KeyCount        = "params.count"
	DefaultListen   = "0.0.0.0:8080"
	DefaultLogLevel = "info"
	envPrefix       = "LCGEN"
	configName      = ".lcgen"
)

// Config is the resolved application configuration.
type Config struct {
	LogLevel  string
	ReportDir string
	Listen    string
	// Params are the raw defaults for the generate flags.
	Params lcg.Raw
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	d := lcg.Defaults().Raw()
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyReportDir, "")
	v.SetDefault(KeyServeListen, DefaultListen)
	v.SetDefault(KeyModulus, d.Modulus)
	v.SetDefault(KeyMultiplier, d.Multiplier)
	v.SetDefault(KeyIncrement, d.Increment)
	v.SetDefault(KeySeed, d.Seed)
	v.SetDefault(KeyCount, d.Count)
}

// Init points v at cfgFile, or at $HOME/.lcgen.* when cfgFile is empty, and
// reads environment variables prefixed with LCGEN_. A missing config file is
// not an error.
func Init(v *viper.Viper, cfgFile string) (string, error) {
	SetDefaults(v)

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			return "", errors.Wrap(err, "failed to resolve home directory")
		}

		// Search config in home directory with name ".lcgen" (without extension).
		v.AddConfigPath(home)
		v.SetConfigName(configName)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv() // read in environment variables that match

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return "", nil
		}
		return "", errors.Wrap(err, "failed to read config", logan.F{"file": cfgFile})
	}
	return v.ConfigFileUsed(), nil
}

// Load extracts a Config from v.
func Load(v *viper.Viper) Config {
	return Config{
		LogLevel:  v.GetString(KeyLogLevel),
		ReportDir: v.GetString(KeyReportDir),
		Listen:    v.GetString(KeyServeListen),
		Params: lcg.Raw{
			Modulus:    v.GetString(KeyModulus),
			Multiplier: v.GetString(KeyMultiplier),
			Increment:  v.GetString(KeyIncrement),
			Seed:       v.GetString(KeySeed),
			Count:      v.GetString(KeyCount),
		},
	}
}

// Log builds the application logger at the configured level.
func (c Config) Log() (*logan.Entry, error) {
	lvl, err := logan.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse log level", logan.F{"level": c.LogLevel})
	}
	return logan.New().Level(lvl), nil
}
