package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the defaults of the command flags, as read from
// the configuration file. Flags given on the command line take precedence.
type Config struct {
	Import ImportConfig `toml:"import"`
	Render RenderConfig `toml:"render"`
}

type ImportConfig struct {
	// FillByDefault marks the shapes without fill attribute as filled.
	FillByDefault bool `toml:"fill_by_default"`
}

type RenderConfig struct {
	PixelsPerMM float64 `toml:"pixels_per_mm"` // PNG resolution
	MarginMM    float64 `toml:"margin_mm"`     // blank space around the elements
	FlipY       bool    `toml:"flip_y"`        // draw with an upward Y axis
}

const (
	defaultPixelsPerMM = 20
	defaultMarginMM    = 1
)

// DefaultConfig returns the configuration used when no file is found.
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			PixelsPerMM: defaultPixelsPerMM,
			MarginMM:    defaultMarginMM,
		},
	}
}

// LoadConfig reads the TOML file at path. Keys missing from the file keep
// their default value; unknown keys are logged and ignored.
func LoadConfig(path string, logger *log.Logger) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		logger.Warn("unknown configuration key", "key", key.String(), "path", path)
	}
	if cfg.Render.PixelsPerMM <= 0 {
		return cfg, fmt.Errorf("parsing config %s: pixels_per_mm must be positive, got %g", path, cfg.Render.PixelsPerMM)
	}
	return cfg, nil
}
