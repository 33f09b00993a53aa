package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsWithoutFile(t *testing.T) {
	home := t.TempDir()
	cfg, err := LoadConfig("", home)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(home), cfg)
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	home := t.TempDir()
	yml := `
log_level: debug
log_format: json
store:
  backend: badger
server:
  addr: 127.0.0.1:9999
  rate_limit: 0
  shutdown_timeout: 2s
`
	require.NoError(t, os.WriteFile(filepath.Join(home, ConfigFilename), []byte(yml), 0o600))

	cfg, err := LoadConfig("", home)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, BackendBadger, cfg.Store.Backend)
	assert.Equal(t, filepath.Join(home, "sessions.db"), cfg.Store.Path)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, 0.0, cfg.Server.RateLimit)
	assert.Equal(t, 40, cfg.Server.RateBurst)
	assert.Equal(t, 2*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadConfig_ExplicitPathMustExist(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), t.TempDir())
	assert.Error(t, err)
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("store:\n  backend: postgres\n"), 0o600))
	_, err := LoadConfig(path, home)
	assert.Error(t, err)

	require.NoError(t, os.WriteFile(path, []byte("server:\n  cookie_secret: nothex\n"), 0o600))
	_, err = LoadConfig(path, home)
	assert.Error(t, err)
}

func TestValidate_CookieSecret(t *testing.T) {
	cases := map[string]bool{
		"":                              true,
		strings.Repeat("ab", 16):        true,
		strings.Repeat("AB", 64):        true,
		"0x" + strings.Repeat("ab", 16): false,
		strings.Repeat("ab", 16) + "c":  false,
		strings.Repeat("ab", 65):        false,
		strings.Repeat("ab", 15):        false,
		strings.Repeat("zz", 16):        false,
	}
	for secret, ok := range cases {
		cfg := DefaultConfig("/h")
		cfg.Server.CookieSecret = secret
		err := cfg.Validate()
		if ok {
			assert.NoError(t, err, secret)
		} else {
			assert.Error(t, err, secret)
		}
	}
}

func TestValidate_TrustedProxies(t *testing.T) {
	cfg := DefaultConfig("/h")
	cfg.Server.TrustedProxies = []string{"10.0.0.1", "172.16.0.0/12"}
	assert.NoError(t, cfg.Validate())

	cfg.Server.TrustedProxies = []string{"proxy.local"}
	assert.Error(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	cfg := DefaultConfig("/h")
	env := map[string]string{
		"ROMANCALC_ADDR":       ":1234",
		"ROMANCALC_STORE":      "memory",
		"ROMANCALC_LOG_LEVEL":  "warn",
		"ROMANCALC_RATE_LIMIT": "2.5",
	}
	lookup := func(k string) (string, bool) { v, ok := env[k]; return v, ok }
	require.NoError(t, cfg.applyEnv(lookup))
	assert.Equal(t, ":1234", cfg.Server.Addr)
	assert.Equal(t, BackendMemory, cfg.Store.Backend)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 2.5, cfg.Server.RateLimit)

	env["ROMANCALC_RATE_LIMIT"] = "fast"
	assert.Error(t, cfg.applyEnv(lookup))
}

func TestNewWire_Backends(t *testing.T) {
	for _, backend := range []string{BackendFile, BackendMemory, BackendBadger} {
		t.Run(backend, func(t *testing.T) {
			home := t.TempDir()
			cfg := DefaultConfig(home)
			cfg.Store.Backend = backend
			cfg.Store.Path = filepath.Join(home, "db")

			w, err := NewWire(cfg, prometheus.NewRegistry(), nil)
			require.NoError(t, err)
			defer w.Close()
			assert.NotNil(t, w.Store)
			assert.NotNil(t, w.Calculator)
		})
	}
}

func TestNewWire_UnknownBackend(t *testing.T) {
	cfg := DefaultConfig(t.TempDir())
	cfg.Store.Backend = "postgres"
	_, err := NewWire(cfg, nil, nil)
	assert.Error(t, err)
}
