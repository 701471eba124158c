// Package cli implements the iconclip command-line interface.
//
// This package provides commands for copying styled icons to the
// clipboard, rendering them to files, browsing packs interactively, and
// serving the pipeline over HTTP. The CLI is built using cobra and
// supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - copy: Render an icon and place it on the clipboard
//   - render: Render an icon to a file
//   - list: List packs and icons
//   - browse: Interactive icon picker
//   - serve: Serve the rendering pipeline over HTTP
//   - cache: Manage the artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging.
package cli

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/iconclip/iconclip/pkg/buildinfo"
	"github.com/iconclip/iconclip/pkg/cache"
	"github.com/iconclip/iconclip/pkg/catalog"
	"github.com/iconclip/iconclip/pkg/errors"
	"github.com/iconclip/iconclip/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "iconclip"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config
}

// New creates a new CLI instance with a default logger.
// Configuration is loaded from the user config file; a missing or
// unreadable config falls back to defaults.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
		Config: LoadConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands
// registered. The persistent --verbose flag switches the shared logger
// to debug level before any subcommand runs.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "Iconclip renders styled icons straight to your clipboard",
		Long:         `Iconclip looks up icons from installed packs, restyles them (color, padding, rounded background), and delivers the result as SVG or PNG to the clipboard or a file.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.copyCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Collaborator Factories
// =============================================================================

// newCatalog loads the embedded packs plus any user packs directory.
func (c *CLI) newCatalog() (*catalog.Catalog, error) {
	cat, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}
	dir := c.Config.PacksDir
	if dir == "" {
		if cfgDir, err := configDir(); err == nil {
			dir = filepath.Join(cfgDir, "packs")
		}
	}
	if dir != "" {
		if _, err := os.Stat(dir); err == nil {
			// Built-in packs still work when user packs are broken.
			if err := cat.AddDir(dir); err != nil {
				printWarning("Skipping user packs in %s: %v", dir, err)
			}
		}
	}
	return cat, nil
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cat, err := c.newCatalog()
	if err != nil {
		return nil, err
	}
	cache, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cat, cache, nil, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cacheDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/iconclip/).
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

// configDir returns the config directory using XDG standard (~/.config/iconclip/).
func configDir() (string, error) {
	if cfgHome := os.Getenv("XDG_CONFIG_HOME"); cfgHome != "" {
		return filepath.Join(cfgHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName), nil
}

// =============================================================================
// Icon References
// =============================================================================

// parseRef splits an icon reference into pack and icon name.
// The full form is "pack/icon"; a bare "icon" uses defaultPack.
func parseRef(ref, defaultPack string) (pack, icon string, err error) {
	switch parts := strings.Split(ref, "/"); len(parts) {
	case 1:
		pack, icon = defaultPack, parts[0]
	case 2:
		pack, icon = parts[0], parts[1]
	default:
		return "", "", errors.New(errors.ErrCodeInvalidRef, "invalid icon reference %q (want pack/icon)", ref)
	}
	if err := errors.ValidatePackName(pack); err != nil {
		return "", "", err
	}
	if err := errors.ValidateIconName(icon); err != nil {
		return "", "", err
	}
	return pack, icon, nil
}
