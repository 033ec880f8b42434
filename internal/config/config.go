// Package config resolves command-line flags, environment variables and
// the optional config file into one validated Config.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/abhisek/opusquiz/internal/session"
)

// EnvPrefix is prepended to every environment variable, e.g. OPUSQUIZ_MODE.
const EnvPrefix = "OPUSQUIZ"

// Keys shared by flags, environment and config file.
const (
	KeyConfig    = "config"
	KeyCatalog   = "catalog"
	KeyGroup     = "group"
	KeyMode      = "mode"
	KeySeed      = "seed"
	KeyNoMedia   = "no-media"
	KeyLogLevel  = "log-level"
	KeyLogFormat = "log-format"
	KeyLogFile   = "log-file"
)

// Log holds logging settings.
type Log struct {
	Level  string
	Format string
	// File is the log destination; "-" means stderr, "" the default path.
	File string
}

// Config is the resolved runtime configuration.
type Config struct {
	// CatalogPath is a TOML catalog to use instead of the embedded one.
	CatalogPath string

	// Groups preselects catalog groups and skips the setup screen.
	Groups []string

	Mode session.Mode

	// Seed fixes the shuffle order; 0 picks a random seed.
	Seed uint64

	// NoMedia disables opening clips in the browser.
	NoMedia bool

	Log Log
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Mode: session.ModeWrite,
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// FromViper reads a Config out of v, applying defaults for unset keys.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Default()

	cfg.CatalogPath = strings.TrimSpace(v.GetString(KeyCatalog))
	for _, g := range v.GetStringSlice(KeyGroup) {
		if g = strings.TrimSpace(g); g != "" {
			cfg.Groups = append(cfg.Groups, g)
		}
	}
	if m := strings.TrimSpace(v.GetString(KeyMode)); m != "" {
		mode, err := session.ParseMode(strings.ToLower(m))
		if err != nil {
			return Config{}, err
		}
		cfg.Mode = mode
	}
	cfg.Seed = v.GetUint64(KeySeed)
	cfg.NoMedia = v.GetBool(KeyNoMedia)

	if lvl := strings.TrimSpace(v.GetString(KeyLogLevel)); lvl != "" {
		cfg.Log.Level = strings.ToLower(lvl)
	}
	if f := strings.TrimSpace(v.GetString(KeyLogFormat)); f != "" {
		cfg.Log.Format = strings.ToLower(f)
	}
	cfg.Log.File = strings.TrimSpace(v.GetString(KeyLogFile))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if _, err := session.ParseMode(string(c.Mode)); err != nil {
		return err
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log-level must be debug, info, warn or error, got %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.New("log-format must be text or json")
	}
	return nil
}
