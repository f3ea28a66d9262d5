package utils

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sheikhrachel/go-life/model"
)

// ErrInvalidConfig is returned by Validate
var ErrInvalidConfig = errors.New("invalid configuration")

// Renderer names accepted in Config.Renderer
const (
	RendererScreen = "screen"
	RendererText   = "text"
)

// Config holds the configuration for the game. Zero-valued board settings
// fall back to the chosen preset.
type Config struct {
	Width       int           `json:"width" yaml:"width"`
	Height      int           `json:"height" yaml:"height"`
	Boundary    string        `json:"boundary" yaml:"boundary"`
	FrameRate   time.Duration `json:"frame_rate" yaml:"frame_rate"`
	Preset      string        `json:"preset" yaml:"preset"`
	Pattern     string        `json:"pattern" yaml:"pattern"`
	CatalogFile string        `json:"catalog_file" yaml:"catalog_file"`

	MaxGenerations      int  `json:"max_generations" yaml:"max_generations"`
	StopOnStagnation    bool `json:"stop_on_stagnation" yaml:"stop_on_stagnation"`
	StagnationThreshold int  `json:"stagnation_threshold" yaml:"stagnation_threshold"`
	UseMemoryPool       bool `json:"use_memory_pool" yaml:"use_memory_pool"`

	Renderer string `json:"renderer" yaml:"renderer"`
	LiveChar string `json:"live_char" yaml:"live_char"`
	DeadChar string `json:"dead_char" yaml:"dead_char"`
	ShowAge  bool   `json:"show_age" yaml:"show_age"`

	LogLevel string `json:"log_level" yaml:"log_level"`
	LogFile  string `json:"log_file" yaml:"log_file"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Preset:              "glider",
		MaxGenerations:      0, // run until interrupted
		StagnationThreshold: 5,
		UseMemoryPool:       true,
		Renderer:            RendererScreen,
		ShowAge:             true,
		LogLevel:            "info",
	}
}

// LoadConfig loads configuration from a YAML (or JSON) file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ApplyEnvOverrides applies GOL_* environment variables to the config.
// Unparseable numeric values are ignored.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("GOL_WIDTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Width = n
		}
	}
	if v := os.Getenv("GOL_HEIGHT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Height = n
		}
	}
	if v := os.Getenv("GOL_BOUNDARY"); v != "" {
		c.Boundary = v
	}
	if v := os.Getenv("GOL_FRAME_RATE"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.FrameRate = d
		}
	}
	if v := os.Getenv("GOL_PRESET"); v != "" {
		c.Preset = v
	}
	if v := os.Getenv("GOL_MAX_GENERATIONS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxGenerations = n
		}
	}
	if v := os.Getenv("GOL_RENDERER"); v != "" {
		c.Renderer = v
	}
	if v := os.Getenv("GOL_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("GOL_LOG_FILE"); v != "" {
		c.LogFile = v
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.Width < 0 || c.Height < 0 {
		return errors.Wrapf(ErrInvalidConfig, "width and height must not be negative, got %dx%d", c.Width, c.Height)
	}
	if c.Boundary != "" {
		if _, err := model.ParseBoundary(c.Boundary); err != nil {
			return errors.Wrap(ErrInvalidConfig, err.Error())
		}
	}
	if c.FrameRate < 0 {
		return errors.Wrapf(ErrInvalidConfig, "frame_rate must not be negative, got %v", c.FrameRate)
	}
	if c.MaxGenerations < 0 {
		return errors.Wrapf(ErrInvalidConfig, "max_generations must not be negative, got %d", c.MaxGenerations)
	}
	if c.StopOnStagnation && c.StagnationThreshold < 1 {
		return errors.Wrapf(ErrInvalidConfig, "stagnation_threshold must be at least 1, got %d", c.StagnationThreshold)
	}
	if c.Renderer != RendererScreen && c.Renderer != RendererText {
		return errors.Wrapf(ErrInvalidConfig, "renderer must be %q or %q, got %q", RendererScreen, RendererText, c.Renderer)
	}

	switch c.LogLevel {
	case "", "info", "debug", "trace":
	default:
		return errors.Wrapf(ErrInvalidConfig, "log_level %q: use info for start and stop, debug for every tick or trace for every frame", c.LogLevel)
	}
	return nil
}
