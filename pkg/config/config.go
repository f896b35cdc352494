// Configuration resolution: defaults, optional config file, environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultModel is used when no model is configured anywhere.
	DefaultModel = "grok-3"
	// DefaultBaseURL is the xAI API root.
	DefaultBaseURL = "https://api.x.ai/v1"
)

// Config holds the resolved runtime configuration. It is built once at
// startup and not mutated afterwards.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	Effort  string
	Render  bool
}

// fileValues is the shape of ~/.config/ask-grok/config.yaml.
type fileValues struct {
	Model   string `yaml:"model"`
	BaseURL string `yaml:"base_url"`
	Effort  string `yaml:"effort"`
	Render  bool   `yaml:"render"`
}

// Default returns the built-in configuration without side effects.
func Default() Config {
	return Config{
		BaseURL: DefaultBaseURL,
		Model:   DefaultModel,
	}
}

// Path returns the per-user config file location, or "" when the home
// directory cannot be determined.
func Path() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ask-grok", "config.yaml")
}

// Load resolves configuration with precedence environment > config file >
// defaults. A missing config file is not an error; a malformed one is.
func Load() (Config, error) {
	return loadFrom(Path())
}

func loadFrom(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			var fv fileValues
			if err := yaml.Unmarshal(b, &fv); err != nil {
				return cfg, fmt.Errorf("parse %s: %w", path, err)
			}
			if v := strings.TrimSpace(fv.Model); v != "" {
				cfg.Model = v
			}
			if v := strings.TrimSpace(fv.BaseURL); v != "" {
				cfg.BaseURL = v
			}
			if v := strings.TrimSpace(fv.Effort); v != "" {
				cfg.Effort = v
			}
			cfg.Render = fv.Render
		case errors.Is(err, fs.ErrNotExist):
			// optional file
		default:
			return cfg, fmt.Errorf("read %s: %w", path, err)
		}
	}

	if v := strings.TrimSpace(os.Getenv("XAI_API_KEY")); v != "" {
		cfg.APIKey = v
	}
	if v := strings.TrimSpace(os.Getenv("XAI_BASE_URL")); v != "" {
		cfg.BaseURL = v
	}
	if v := strings.TrimSpace(os.Getenv("XAI_MODEL")); v != "" {
		cfg.Model = v
	}
	return cfg, nil
}
