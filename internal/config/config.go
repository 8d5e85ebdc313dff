package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all trisolve configuration.
type Config struct {
	// Result rendering
	Output OutputConfig `yaml:"output"`

	// Job file processing
	Batch BatchConfig `yaml:"batch"`

	// SVG drawing area
	Drawing DrawingConfig `yaml:"drawing"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`
}

// OutputConfig configures how results are printed.
type OutputConfig struct {
	Format    string `yaml:"format"`    // text, json, yaml, markdown
	Precision int    `yaml:"precision"` // decimals for sides in text output
	Theme     string `yaml:"theme"`     // auto, dark, light
}

// BatchConfig configures the batch runner and watcher.
type BatchConfig struct {
	Concurrency int    `yaml:"concurrency"`
	Debounce    string `yaml:"debounce"`
}

// DrawingConfig configures the SVG canvas.
type DrawingConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Format:    "text",
			Precision: 2,
			Theme:     "auto",
		},
		Batch: BatchConfig{
			Concurrency: 4,
			Debounce:    "200ms",
		},
		Drawing: DrawingConfig{
			Width:   480,
			Height:  360,
			Padding: 24,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// DefaultConfigPath returns the path to .trisolve/config.yaml in the
// working directory.
func DefaultConfigPath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return filepath.Join(".trisolve", "config.yaml")
	}
	return filepath.Join(cwd, ".trisolve", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields the
// defaults; environment overrides apply either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides. Unparseable
// numbers are ignored.
func (c *Config) applyEnvOverrides() {
	if format := os.Getenv("TRISOLVE_FORMAT"); format != "" {
		c.Output.Format = format
	}
	if p := os.Getenv("TRISOLVE_PRECISION"); p != "" {
		if n, err := strconv.Atoi(p); err == nil {
			c.Output.Precision = n
		}
	}
	if n := os.Getenv("TRISOLVE_CONCURRENCY"); n != "" {
		if v, err := strconv.Atoi(n); err == nil {
			c.Batch.Concurrency = v
		}
	}
	if level := os.Getenv("TRISOLVE_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
}

// GetDebounce returns the watch debounce as a duration.
func (c *Config) GetDebounce() time.Duration {
	d, err := time.ParseDuration(c.Batch.Debounce)
	if err != nil || d < 0 {
		return 200 * time.Millisecond
	}
	return d
}

// ValidFormats lists the supported output formats.
var ValidFormats = []string{"text", "json", "yaml", "markdown"}

// ValidThemes lists the supported color themes.
var ValidThemes = []string{"auto", "dark", "light"}

// MaxPrecision bounds output.precision.
const MaxPrecision = 12

// Validate validates the configuration.
func (c *Config) Validate() error {
	if !slices.Contains(ValidFormats, c.Output.Format) {
		return fmt.Errorf("invalid output format: %s (valid: %v)", c.Output.Format, ValidFormats)
	}
	if c.Output.Precision < 0 || c.Output.Precision > MaxPrecision {
		return fmt.Errorf("output precision must be between 0 and %d, got %d", MaxPrecision, c.Output.Precision)
	}
	if !slices.Contains(ValidThemes, c.Output.Theme) {
		return fmt.Errorf("invalid theme: %s (valid: %v)", c.Output.Theme, ValidThemes)
	}

	if c.Batch.Concurrency < 1 {
		return fmt.Errorf("batch concurrency must be at least 1, got %d", c.Batch.Concurrency)
	}
	if d, err := time.ParseDuration(c.Batch.Debounce); err != nil || d < 0 {
		return fmt.Errorf("invalid batch debounce: %q", c.Batch.Debounce)
	}

	if c.Drawing.Padding < 0 {
		return fmt.Errorf("drawing padding must not be negative")
	}
	if c.Drawing.Width <= 2*c.Drawing.Padding || c.Drawing.Height <= 2*c.Drawing.Padding {
		return fmt.Errorf("drawing area %gx%g leaves no room inside padding %g",
			c.Drawing.Width, c.Drawing.Height, c.Drawing.Padding)
	}

	return c.Logging.Validate()
}
