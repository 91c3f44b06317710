// Package config loads dashboard settings from defaults, an optional YAML
// file, LUXDASH_ environment variables and command-line flags, in that order
// of increasing precedence.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

const (
	EnvPrefix         = "LUXDASH_"
	DefaultConfigFile = "luxdash.yaml"
)

type Config struct {
	Server ServerConfig `koanf:"server"`
	Data   DataConfig   `koanf:"data"`
	Format FormatConfig `koanf:"format"`
	Log    LogConfig    `koanf:"log"`
}

type ServerConfig struct {
	Addr        string   `koanf:"addr"`
	CORSOrigins []string `koanf:"cors_origins"`
	RateLimit   float64  `koanf:"rate_limit"`
}

type DataConfig struct {
	Seed int64 `koanf:"seed"`
	// Anchor is YYYY-MM-DD; empty means today.
	Anchor string `koanf:"anchor"`
}

type FormatConfig struct {
	Locale         string `koanf:"locale"`
	CurrencySymbol string `koanf:"currency_symbol"`
	Precision      int    `koanf:"precision"`
}

type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"server.addr":            ":8080",
		"server.cors_origins":    []string{"*"},
		"server.rate_limit":      20.0,
		"data.seed":              42,
		"data.anchor":            "",
		"format.locale":          "en-US",
		"format.currency_symbol": "R$",
		"format.precision":       2,
		"log.level":              "info",
		"log.format":             "text",
	}
}

// flagKeys maps kebab-case flag names onto config keys.
var flagKeys = map[string]string{
	"addr":      "server.addr",
	"seed":      "data.seed",
	"anchor":    "data.anchor",
	"log-level": "log.level",
}

// Load reads configuration. cfgFile may be empty, in which case
// ./luxdash.yaml is used when present. Only flags the user changed override
// lower layers.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgFile == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			cfgFile = DefaultConfigFile
		}
	}
	if cfgFile != "" {
		if err := k.Load(file.Provider(cfgFile), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgFile, err)
		}
	}

	// LUXDASH_FORMAT__CURRENCY_SYMBOL -> format.currency_symbol
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Format.Precision < 0 || c.Format.Precision > 6 {
		return fmt.Errorf("format.precision must be between 0 and 6, got %d", c.Format.Precision)
	}
	if c.Server.RateLimit < 0 {
		return fmt.Errorf("server.rate_limit must not be negative, got %g", c.Server.RateLimit)
	}
	if _, err := c.AnchorDate(); err != nil {
		return err
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// AnchorDate returns the zero time when no anchor is configured.
func (c *Config) AnchorDate() (time.Time, error) {
	if c.Data.Anchor == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse("2006-01-02", c.Data.Anchor)
	if err != nil {
		return time.Time{}, fmt.Errorf("data.anchor: %w", err)
	}
	return t, nil
}

func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}
