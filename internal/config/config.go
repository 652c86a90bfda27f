package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Config is the kiosk configuration. The size limit is not configurable.
type Config struct {
	Station   string `toml:"station"`    // BAGCHECK_STATION (default "kiosk")
	LogLevel  string `toml:"log_level"`  // BAGCHECK_LOG_LEVEL (default "warn")
	LogFormat string `toml:"log_format"` // BAGCHECK_LOG_FORMAT (default "text")
	Hints     bool   `toml:"hints"`      // BAGCHECK_HINTS (default false)
	NoColor   bool   `toml:"no_color"`   // BAGCHECK_NO_COLOR (default false)
}

// envConfig holds raw environment overrides. Pointer fields stay nil when unset.
type envConfig struct {
	Station   string `env:"BAGCHECK_STATION"`
	LogLevel  string `env:"BAGCHECK_LOG_LEVEL"`
	LogFormat string `env:"BAGCHECK_LOG_FORMAT"`
	Hints     *bool  `env:"BAGCHECK_HINTS"`
	NoColor   *bool  `env:"BAGCHECK_NO_COLOR"`
}

// PathEnv names the variable that overrides the default config file path.
const PathEnv = "BAGCHECK_CONFIG"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Station:   "kiosk",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// DefaultPath returns $BAGCHECK_CONFIG, or kiosk.toml in the user config directory.
func DefaultPath() (string, error) {
	if p := os.Getenv(PathEnv); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "bagcheck", "kiosk.toml"), nil
}

// Load builds the configuration from defaults, then the TOML file at path,
// then BAGCHECK_* environment variables. An empty path means DefaultPath, and
// a missing default file is not an error. Load does not call Validate, so
// callers can apply their own overrides first.
func Load(path string) (*Config, error) {
	c := Default()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("locating config: %w", err)
		}
		path = p
		explicit = os.Getenv(PathEnv) != ""
	}

	if err := c.mergeFile(path); err != nil && (explicit || !errors.Is(err, fs.ErrNotExist)) {
		return nil, err
	}

	if err := c.mergeEnv(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) mergeFile(path string) error {
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("reading %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	return nil
}

func (c *Config) mergeEnv() error {
	var e envConfig
	if err := env.Parse(&e); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	if e.Station != "" {
		c.Station = e.Station
	}
	if e.LogLevel != "" {
		c.LogLevel = e.LogLevel
	}
	if e.LogFormat != "" {
		c.LogFormat = e.LogFormat
	}
	if e.Hints != nil {
		c.Hints = *e.Hints
	}
	if e.NoColor != nil {
		c.NoColor = *e.NoColor
	}
	return nil
}

// Validate checks the log settings.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("log_format: unknown format %q (want text or json)", c.LogFormat)
	}
	return nil
}

// Encode writes c as TOML.
func (c *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
