package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/opd-ai/go-vector/pkg/calculator"
	"github.com/opd-ai/go-vector/pkg/vector"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Window.Title != "Vector" {
		t.Errorf("Expected title 'Vector', got '%s'", config.Window.Title)
	}
	if config.Window.Width != 500 || config.Window.Height != 300 {
		t.Errorf("Expected window 500x300, got %dx%d", config.Window.Width, config.Window.Height)
	}
	if config.Renderer != RendererTerminal {
		t.Errorf("Expected renderer '%s', got '%s'", RendererTerminal, config.Renderer)
	}

	op, err := config.Operation()
	if err != nil {
		t.Fatalf("Operation() failed: %v", err)
	}
	if op != calculator.Length {
		t.Errorf("Expected default operation %q, got %q", calculator.Length, op)
	}

	for i, v := range config.InitialVectors {
		if v.Vector() != (vector.Vector{X: 1, Y: 1}) {
			t.Errorf("Expected initial vector %d to be ( 1; 1), got %v", i, v.Vector())
		}
	}

	if err := config.Validate(); err != nil {
		t.Errorf("DefaultConfig() should be valid: %v", err)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	original := DefaultConfig()
	original.Window.Title = "Vectors"
	original.Renderer = RendererEngo
	original.DefaultOperation = string(calculator.AngleToXAxis)
	original.InitialVectors[1] = VectorConfig{X: -2.5, Y: 4}

	if err := SaveConfig(original, path); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if *loaded != *original {
		t.Errorf("loaded config %+v differs from saved %+v", loaded, original)
	}
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(`{"renderer": "null"}`), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Renderer != RendererNull {
		t.Errorf("Expected renderer 'null', got '%s'", config.Renderer)
	}
	if config.Window.Width != 500 || config.DefaultOperation != string(calculator.Length) {
		t.Errorf("defaults lost while loading partial file: %+v", config)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
			t.Errorf("expected read error, got %v", err)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}
		_, err := LoadConfig(path)
		if err == nil || !strings.Contains(err.Error(), "failed to parse config file") {
			t.Errorf("expected parse error, got %v", err)
		}
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		modify      func(*AppConfig)
		errContains string
	}{
		{
			name:        "zero width",
			modify:      func(c *AppConfig) { c.Window.Width = 0 },
			errContains: "invalid window size",
		},
		{
			name:        "unknown renderer",
			modify:      func(c *AppConfig) { c.Renderer = "opengl" },
			errContains: "unknown renderer",
		},
		{
			name:        "unknown operation",
			modify:      func(c *AppConfig) { c.DefaultOperation = "Dot product" },
			errContains: "invalid default operation",
		},
		{
			name:   "operation by index",
			modify: func(c *AppConfig) { c.DefaultOperation = "3" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.modify(config)

			err := config.Validate()
			if tt.errContains == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("Validate() error = %v, should contain %q", err, tt.errContains)
			}
		})
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("DefaultValues", func(t *testing.T) {
		for _, key := range []string{EnvRenderer, EnvWindowTitle, EnvWindowWidth, EnvWindowHeight, EnvFullscreen, EnvDefaultOperation} {
			t.Setenv(key, "")
		}

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}
		if *config != *DefaultConfig() {
			t.Errorf("Expected default config, got %+v", config)
		}
	})

	t.Run("EnvironmentOverrides", func(t *testing.T) {
		t.Setenv(EnvRenderer, "ENGO")
		t.Setenv(EnvWindowTitle, "Calc")
		t.Setenv(EnvWindowWidth, "800")
		t.Setenv(EnvWindowHeight, "600")
		t.Setenv(EnvFullscreen, "true")
		t.Setenv(EnvDefaultOperation, "5")

		config, err := LoadConfigFromEnv()
		if err != nil {
			t.Fatalf("LoadConfigFromEnv() failed: %v", err)
		}
		if config.Renderer != RendererEngo {
			t.Errorf("Expected renderer 'engo', got '%s'", config.Renderer)
		}
		if config.Window.Title != "Calc" || config.Window.Width != 800 || config.Window.Height != 600 || !config.Window.Fullscreen {
			t.Errorf("window overrides not applied: %+v", config.Window)
		}
		op, err := config.Operation()
		if err != nil || op != calculator.AngleToXAxis {
			t.Errorf("Expected operation %q, got %q (%v)", calculator.AngleToXAxis, op, err)
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		t.Setenv(EnvWindowWidth, "wide")
		if _, err := LoadConfigFromEnv(); err == nil {
			t.Error("expected error for non-numeric width")
		}

		t.Setenv(EnvWindowWidth, "")
		t.Setenv(EnvFullscreen, "maybe")
		if _, err := LoadConfigFromEnv(); err == nil {
			t.Error("expected error for invalid fullscreen flag")
		}
	})
}
