// Package cli implements the svgprim command-line interface.
//
// The commands import the drawing primitives of an SVG file, then either
// list them (dump) or preview them as a PNG or PDF file (render).
// The CLI is built using cobra, reads its defaults from an optional TOML
// configuration file and logs via the charmbracelet/log library.
package cli

import (
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

const (
	// appName is the application name used for directories and display.
	appName = "svgprim"

	// configFile is the name of the configuration file in the config directory.
	configFile = "config.toml"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Config Config

	configPath string // from the --config flag
	verbose    bool   // from the --verbose flag
}

// New creates a new CLI instance with a default logger and configuration.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		Config: DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "svgprim extracts drawing primitives from SVG files",
		Long:         `svgprim reads an SVG file and classifies its content into lines, polygons, rectangles, ellipses and texts, with lengths in millimeters.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Set the log level before loading the configuration
			if c.verbose {
				c.SetLogLevel(LogDebug)
			}
			return c.loadConfig()
		},
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "configuration file (default $XDG_CONFIG_HOME/svgprim/config.toml)")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	// Register all subcommands
	root.AddCommand(c.dumpCommand())
	root.AddCommand(c.renderCommand())

	return root
}

// loadConfig reads the file given by --config, or the default
// configuration file if it exists.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		dir, err := configDir()
		if err != nil {
			return nil
		}
		path = filepath.Join(dir, configFile)
		if _, err := os.Stat(path); err != nil {
			c.Logger.Debug("no configuration file", "path", path)
			return nil
		}
	}
	cfg, err := LoadConfig(path, c.Logger)
	if err != nil {
		return err
	}
	c.Logger.Debug("loaded configuration", "path", path)
	c.Config = cfg
	return nil
}

// configDir returns the config directory using XDG standard (~/.config/svgprim/).
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
