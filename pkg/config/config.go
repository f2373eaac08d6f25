// pkg/config/config.go
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/opd-ai/go-vector/pkg/calculator"
	"github.com/opd-ai/go-vector/pkg/vector"
)

// Renderer names accepted by the Renderer field
const (
	RendererTerminal = "terminal"
	RendererEngo     = "engo"
	RendererNull     = "null"
)

// AppConfig contains configuration for the vector calculator
type AppConfig struct {
	Window           WindowConfig    `json:"window"`
	Renderer         string          `json:"renderer"`
	DefaultOperation string          `json:"defaultOperation"`
	InitialVectors   [2]VectorConfig `json:"initialVectors"`
}

// WindowConfig contains configuration for the desktop window
type WindowConfig struct {
	Title      string `json:"title"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Fullscreen bool   `json:"fullscreen"`
}

// VectorConfig holds the components of a session vector
type VectorConfig struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Vector converts the configuration into a vector value
func (c VectorConfig) Vector() vector.Vector {
	return vector.Vector{X: c.X, Y: c.Y}
}

// Operation returns the parsed default operation
func (c *AppConfig) Operation() (calculator.Operation, error) {
	return calculator.ParseOperation(c.DefaultOperation)
}

// Validate checks the configuration for values no front end can use
func (c *AppConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("invalid window size %dx%d", c.Window.Width, c.Window.Height)
	}

	switch c.Renderer {
	case RendererTerminal, RendererEngo, RendererNull:
	default:
		return fmt.Errorf("unknown renderer %q (must be %s, %s or %s)", c.Renderer, RendererTerminal, RendererEngo, RendererNull)
	}

	if _, err := c.Operation(); err != nil {
		return fmt.Errorf("invalid default operation: %w", err)
	}

	return nil
}

// LoadConfig loads a configuration from a file.
// Fields missing from the file keep their default values.
func LoadConfig(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves a configuration to a file
func SaveConfig(config *AppConfig, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default calculator configuration
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Window: WindowConfig{
			Title:  "Vector",
			Width:  500,
			Height: 300,
		},
		Renderer:         RendererTerminal,
		DefaultOperation: calculator.DefaultOperation().String(),
		InitialVectors: [2]VectorConfig{
			{X: 1, Y: 1},
			{X: 1, Y: 1},
		},
	}
}

// Environment variables read by ApplyEnv
const (
	EnvRenderer         = "VECTOR_RENDERER"
	EnvWindowTitle      = "VECTOR_WINDOW_TITLE"
	EnvWindowWidth      = "VECTOR_WINDOW_WIDTH"
	EnvWindowHeight     = "VECTOR_WINDOW_HEIGHT"
	EnvFullscreen       = "VECTOR_FULLSCREEN"
	EnvDefaultOperation = "VECTOR_DEFAULT_OPERATION"
)

// LoadConfigFromEnv returns the default configuration overlaid with VECTOR_* variables
func LoadConfigFromEnv() (*AppConfig, error) {
	config := DefaultConfig()
	if err := ApplyEnv(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ApplyEnv overrides config fields with any VECTOR_* variables that are set
func ApplyEnv(config *AppConfig) error {
	if v := os.Getenv(EnvRenderer); v != "" {
		config.Renderer = strings.ToLower(v)
	}
	if v := os.Getenv(EnvWindowTitle); v != "" {
		config.Window.Title = v
	}
	if v := os.Getenv(EnvDefaultOperation); v != "" {
		config.DefaultOperation = v
	}

	if err := envInt(EnvWindowWidth, &config.Window.Width); err != nil {
		return err
	}
	if err := envInt(EnvWindowHeight, &config.Window.Height); err != nil {
		return err
	}

	if v := os.Getenv(EnvFullscreen); v != "" {
		fullscreen, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvFullscreen, err)
		}
		config.Window.Fullscreen = fullscreen
	}

	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}
