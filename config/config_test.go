package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutils/lcgen/lcg"
)

func TestLoadDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	c := Load(v)

	assert.Equal(t, DefaultLogLevel, c.LogLevel)
	assert.Equal(t, DefaultListen, c.Listen)
	assert.Empty(t, c.ReportDir)
	assert.Equal(t, lcg.Defaults().Raw(), c.Params)
}

func TestInitFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lcgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: debug
report:
  dir: /tmp/lcg-reports
params:
  modulus: 2147483647
  multiplier: 16807
  seed: 1
`), 0o644))

	v := viper.New()
	used, err := Init(v, path)
	require.NoError(t, err)
	assert.Equal(t, path, used)

	c := Load(v)
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "/tmp/lcg-reports", c.ReportDir)
	assert.Equal(t, "2147483647", c.Params.Modulus)
	assert.Equal(t, "16807", c.Params.Multiplier)
	assert.Equal(t, "0", c.Params.Increment)
	assert.Equal(t, "1", c.Params.Seed)
	assert.Equal(t, "100", c.Params.Count)
}

func TestInitEnv(t *testing.T) {
	t.Setenv("LCGEN_PARAMS_COUNT", "42")
	t.Setenv("LCGEN_SERVE_LISTEN", "127.0.0.1:9000")

	v := viper.New()
	_, err := Init(v, filepath.Join(t.TempDir(), "missing.yaml"))
	// an explicitly named file must exist
	require.Error(t, err)

	c := Load(v)
	assert.Equal(t, "42", c.Params.Count)
	assert.Equal(t, "127.0.0.1:9000", c.Listen)
}

func TestLog(t *testing.T) {
	log, err := Config{LogLevel: "debug"}.Log()
	require.NoError(t, err)
	assert.NotNil(t, log)

	_, err = Config{LogLevel: "loud"}.Log()
	assert.Error(t, err)
}
