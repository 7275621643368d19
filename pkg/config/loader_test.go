package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/notifystream/pkg/config"
)

type streamConfig struct {
	BaseURL string        `env:"BASE_URL"`
	Delay   time.Duration `env:"DELAY" envDefault:"5s"`
	Cap     int           `env:"CAP" envDefault:"50"`
}

type requiredConfig struct {
	Value string `env:"CONFIG_TEST_REQUIRED,required"`
}

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("BASE_URL")
	os.Unsetenv("DELAY")
	os.Unsetenv("CAP")

	var cfg streamConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Delay)
	assert.Equal(t, 50, cfg.Cap)
}

func TestLoadWithPrefix(t *testing.T) {
	t.Setenv("CFGTEST_BASE_URL", "https://market.example")
	t.Setenv("CFGTEST_DELAY", "2s")

	var cfg streamConfig
	require.NoError(t, config.LoadWithPrefix(&cfg, "CFGTEST_"))
	assert.Equal(t, "https://market.example", cfg.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Delay)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.env")
	require.NoError(t, os.WriteFile(path, []byte("FILETEST_BASE_URL=https://from.file\nFILETEST_CAP=10\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("FILETEST_BASE_URL")
		os.Unsetenv("FILETEST_CAP")
	})

	var cfg streamConfig
	require.NoError(t, config.LoadWithPrefix(&cfg, "FILETEST_", path))
	assert.Equal(t, "https://from.file", cfg.BaseURL)
	assert.Equal(t, 10, cfg.Cap)
}

func TestLoad_MissingEnvFile(t *testing.T) {
	var cfg streamConfig
	err := config.Load(&cfg, filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CONFIG_TEST_REQUIRED")

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	err := config.Load[streamConfig](nil)
	assert.ErrorIs(t, err, config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	os.Unsetenv("CONFIG_TEST_REQUIRED")
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
