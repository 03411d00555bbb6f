// Package config loads catwalk configuration from TOML files.
//
// Configuration is optional: every field has a working default, and the CLI
// runs without a config file at all. A file looks like:
//
//	site = "wiki.archlinux.org"
//
//	[languages]
//	order = ["English", "Česky", "Deutsch", "Español"]
//
//	[cache]
//	dir = "/var/cache/catwalk"
//	redis_addr = "localhost:6379"
//	ttl = "168h"
//
// The language order doubles as the locale ranking used by the tree diff;
// the first entry is the wiki's default language.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"catwalk/pkg/cache"
	"catwalk/pkg/errors"
	"catwalk/pkg/lang"
)

// Config is the root configuration document.
type Config struct {
	// Site names the wiki the snapshots come from (informational, appears
	// in report headers).
	Site string `toml:"site"`

	Languages Languages   `toml:"languages"`
	Cache     CacheConfig `toml:"cache"`
}

// Languages configures language detection and ranking.
type Languages struct {
	// Order is the language ranking; the first entry is the default
	// language. Empty means the built-in ordering.
	Order []string `toml:"order"`
}

// CacheConfig configures the cache backend selection.
type CacheConfig struct {
	// Dir is the file cache directory. Empty means the XDG default.
	Dir string `toml:"dir"`
	// RedisAddr selects the Redis backend when non-empty ("host:port").
	RedisAddr string `toml:"redis_addr"`
	// Disabled turns caching off entirely.
	Disabled bool `toml:"disabled"`
	// TTL is the entry time-to-live as a Go duration string ("168h").
	// Empty means cache.DefaultTTL.
	TTL string `toml:"ttl"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Languages: Languages{Order: lang.DefaultOrder},
	}
}

// Load reads and validates a TOML config file. Fields not present in the
// file keep their defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if _, err := os.Stat(path); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "config file %s", path)
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if len(c.Languages.Order) == 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "languages.order must not be empty")
	}
	for _, name := range c.Languages.Order {
		if err := errors.ValidateLanguageName(name); err != nil {
			return err
		}
	}
	if c.Cache.TTL != "" {
		if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cache.ttl %q", c.Cache.TTL)
		}
	}
	return nil
}

// Detector builds the language detector from the configured ordering.
func (c Config) Detector() (*lang.Detector, error) {
	d, err := lang.NewDetector(c.Languages.Order)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "languages.order")
	}
	return d, nil
}

// TTL returns the configured cache TTL, falling back to cache.DefaultTTL.
// Call Validate first; an unparsable value falls back silently here.
func (c Config) TTL() time.Duration {
	if c.Cache.TTL == "" {
		return cache.DefaultTTL
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return cache.DefaultTTL
	}
	return d
}

// String summarizes the effective configuration for --verbose logging.
func (c Config) String() string {
	backend := "file"
	switch {
	case c.Cache.Disabled:
		backend = "disabled"
	case c.Cache.RedisAddr != "":
		backend = "redis"
	}
	return fmt.Sprintf("site=%s languages=%d cache=%s ttl=%s",
		c.Site, len(c.Languages.Order), backend, c.TTL())
}
