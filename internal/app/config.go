package app

import (
	"encoding/hex"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ConfigFilename is looked up in the home directory when no path is given.
const ConfigFilename = "config.yaml"

// Store backends.
const (
	BackendFile   = "file"
	BackendMemory = "memory"
	BackendBadger = "badger"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	Home      string       `yaml:"-" validate:"required"` // config directory, e.g. $HOME/.romancalc
	LogLevel  string       `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string       `yaml:"log_format" validate:"oneof=text json"`
	Store     StoreConfig  `yaml:"store"`
	Server    ServerConfig `yaml:"server"`
}

// StoreConfig selects where sessions live.
type StoreConfig struct {
	Backend string `yaml:"backend" validate:"oneof=file memory badger"`
	Path    string `yaml:"path"` // badger directory; defaults to <home>/sessions.db
}

// ServerConfig configures calcd.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	CookieSecret    string        `yaml:"cookie_secret" validate:"omitempty,hexkey"`
	RateLimit       float64       `yaml:"rate_limit" validate:"gte=0"` // requests per second per client; 0 disables
	RateBurst       int           `yaml:"rate_burst" validate:"gte=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"gte=0"`
	TrustedProxies  []string      `yaml:"trusted_proxies" validate:"omitempty,dive,cidr|ip"`
}

// DefaultConfig returns the configuration used when no file overrides it.
func DefaultConfig(home string) Config {
	return Config{
		Home:      home,
		LogLevel:  "info",
		LogFormat: "text",
		Store:     StoreConfig{Backend: BackendFile},
		Server: ServerConfig{
			Addr:            ":8080",
			RateLimit:       20,
			RateBurst:       40,
			ShutdownTimeout: 5 * time.Second,
		},
	}
}

// DefaultHome returns ~/.romancalc.
func DefaultHome() (string, error) {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "locate home directory")
	}
	return filepath.Join(dir, ".romancalc"), nil
}

// LoadConfig reads path over the defaults for home, then applies environment
// overrides and validates. An empty path means <home>/config.yaml, which may
// be absent; an explicit path must exist.
func LoadConfig(path, home string) (Config, error) {
	cfg := DefaultConfig(home)

	explicit := path != ""
	if !explicit {
		path = filepath.Join(home, ConfigFilename)
	}
	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, errors.Wrapf(err, "parse config %s", path)
		}
	case os.IsNotExist(err) && !explicit:
	default:
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	if cfg.Store.Backend == BackendBadger && cfg.Store.Path == "" {
		cfg.Store.Path = filepath.Join(cfg.Home, "sessions.db")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overrides fields from ROMANCALC_* variables.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("ROMANCALC_ADDR"); ok {
		c.Server.Addr = v
	}
	if v, ok := lookup("ROMANCALC_STORE"); ok {
		c.Store.Backend = v
	}
	if v, ok := lookup("ROMANCALC_LOG_LEVEL"); ok {
		c.LogLevel = v
	}
	if v, ok := lookup("ROMANCALC_COOKIE_SECRET"); ok {
		c.Server.CookieSecret = v
	}
	if v, ok := lookup("ROMANCALC_RATE_LIMIT"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return errors.Wrap(err, "ROMANCALC_RATE_LIMIT")
		}
		c.Server.RateLimit = f
	}
	return nil
}

// Cookie key bounds in bytes; the upper one is the BLAKE2b key limit.
const (
	minCookieKey = 16
	maxCookieKey = 64
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// hexkey: plain hex (no 0x, even length) decoding to a usable cookie key.
	_ = v.RegisterValidation("hexkey", func(fl validator.FieldLevel) bool {
		key, err := hex.DecodeString(fl.Field().String())
		return err == nil && len(key) >= minCookieKey && len(key) <= maxCookieKey
	})
	return v
}

// Validate checks field constraints.
func (c Config) Validate() error {
	return errors.Wrap(validate.Struct(c), "invalid config")
}
