// Package cli implements the ontodot command-line interface.
//
// # Commands
//
//   - generate: Transform an ontology into a DOT document, optionally rendered
//   - config: Write or show the TOML configuration
//   - cache: Manage the rendered diagram cache
//   - serve: Run the HTTP API
//
// All commands support --verbose (-v) for debug-level logging, which also
// prints the effective configuration and the generated edge list.
package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/ontodot/pkg/buildinfo"
	"github.com/matzehuels/ontodot/pkg/cache"
	"github.com/matzehuels/ontodot/pkg/config"
	"github.com/matzehuels/ontodot/pkg/errors"
	"github.com/matzehuels/ontodot/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "ontodot"

	// configFileName is the configuration file looked up in the config directory.
	configFileName = "config.toml"

	// redisKeyPrefix scopes cache keys in a shared Redis.
	redisKeyPrefix = appName + ":"
)

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
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "ontodot draws ontologies as Graphviz diagrams",
		Long:         `ontodot turns an RDF/OWL ontology into a Graphviz DOT diagram: classes, individuals, literals and properties are styled by category, and object properties can be drawn as direct domain-to-range edges.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	// Register all subcommands
	root.AddCommand(c.generateCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// cacheFlags are the cache options shared by generate and serve.
type cacheFlags struct {
	noCache  bool   // disable the artifact cache
	redisURL string // use Redis instead of the file cache
}

func (f *cacheFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "disable the rendered diagram cache")
	cmd.Flags().StringVar(&f.redisURL, "redis", os.Getenv("ONTODOT_REDIS_URL"), "Redis URL for a shared cache (default $ONTODOT_REDIS_URL)")
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context, f cacheFlags) (*pipeline.Runner, error) {
	ch, keyer, err := newCache(ctx, f)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, keyer, c.Logger), nil
}

func newCache(ctx context.Context, f cacheFlags) (cache.Cache, cache.Keyer, error) {
	switch {
	case f.noCache:
		return cache.NewNullCache(), nil, nil
	case f.redisURL != "":
		rc, err := cache.NewRedisCache(ctx, f.redisURL)
		if err != nil {
			return nil, nil, err
		}
		return rc, cache.NewScopedKeyer(cache.NewDefaultKeyer(), redisKeyPrefix), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil, nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		return nil, nil, err
	}
	return fc, nil, nil
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/ontodot/).
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

// configDir returns the config directory using XDG standard (~/.config/ontodot/).
func configDir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// defaultConfigPath returns the configuration file used when -c is not given.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

// =============================================================================
// Options Helpers
// =============================================================================

// loadConfig reads path, or the default config file when path is empty.
// A missing default file yields the built-in defaults.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	def, err := defaultConfigPath()
	if err != nil {
		return config.Default(), nil
	}
	if _, err := os.Stat(def); err != nil {
		return config.Default(), nil
	}
	return config.Load(def)
}

// parsePrefixes parses repeated p=namespace flags.
func parsePrefixes(decls []string) (map[string]string, error) {
	if len(decls) == 0 {
		return nil, nil
	}
	out := make(map[string]string, len(decls))
	for _, decl := range decls {
		p, ns, ok := strings.Cut(decl, "=")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidConfig, "invalid --prefix %q (want prefix=namespace)", decl)
		}
		if err := errors.ValidatePrefix(p); err != nil {
			return nil, err
		}
		if err := errors.ValidateNamespace(ns); err != nil {
			return nil, err
		}
		out[p] = ns
	}
	return out, nil
}
