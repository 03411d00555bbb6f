// Package cli implements the catwalk command-line interface.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"catwalk/pkg/buildinfo"
	"catwalk/pkg/cache"
	"catwalk/pkg/config"
	"catwalk/pkg/report"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for directories and display.
const appName = "catwalk"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "catwalk",
		Short:        "Catwalk inspects wiki category trees",
		Long:         `Catwalk builds category graphs from wiki snapshots and reports on them: subtree listings, side-by-side comparisons of language variants, and Graphviz exports.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (TOML)")

	// Register all subcommands
	root.AddCommand(c.buildCommand())
	root.AddCommand(c.treeCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.exportCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// loadConfig loads the --config file, or falls back to defaults when no file
// is given.
func (c *CLI) loadConfig() error {
	if c.configPath == "" {
		c.cfg = config.Default()
		return nil
	}
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", c.configPath, "effective", cfg.String())
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a report runner honoring the cache configuration.
func (c *CLI) newRunner(ctx context.Context, noCache bool) (*report.Runner, error) {
	backend, err := c.newCache(ctx, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if c.cfg.Site != "" {
		keyer = cache.NewScopedKeyer(nil, c.cfg.Site+":")
	}
	r := report.NewRunner(backend, keyer, c.Logger)
	r.TTL = c.cfg.TTL()
	return r, nil
}

// newCache selects the cache backend: null when disabled, Redis when an
// address is configured, the file cache otherwise.
func (c *CLI) newCache(ctx context.Context, noCache bool) (cache.Cache, error) {
	if noCache || c.cfg.Cache.Disabled {
		return cache.NewNullCache(), nil
	}
	if addr := c.cfg.Cache.RedisAddr; addr != "" {
		return cache.NewRedisCache(ctx, addr)
	}
	dir := c.cfg.Cache.Dir
	if dir == "" {
		var err error
		dir, err = cacheDir()
		if err != nil {
			return cache.NewNullCache(), nil
		}
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/catwalk/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// reportOptions assembles the report options shared by all report commands.
func (c *CLI) reportOptions(kind, snapshotPath string, roots []string) report.Options {
	return report.Options{
		SnapshotPath: snapshotPath,
		Kind:         kind,
		Roots:        roots,
		Languages:    c.cfg.Languages.Order,
		Logger:       c.Logger,
	}
}
