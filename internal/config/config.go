// Package config loads querylens settings from a JSON config file with
// environment-variable overrides. A missing config file is not an error;
// everything can come from the environment.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Config is the persisted configuration. All fields are optional.
type Config struct {
	// Provider selects the model backend: "anthropic" or "openai".
	// Empty means auto-detect from available API keys.
	Provider string `json:"provider,omitempty"`

	AnthropicAPIKey string `json:"anthropic_api_key,omitempty"`
	OpenAIAPIKey    string `json:"openai_api_key,omitempty"`

	// Model and BaseURL override the provider defaults.
	Model   string `json:"model,omitempty"`
	BaseURL string `json:"base_url,omitempty"`

	// MaxTokens caps completion length; TimeoutSeconds bounds each call.
	MaxTokens      int `json:"max_tokens,omitempty"`
	TimeoutSeconds int `json:"timeout_seconds,omitempty"`

	// FieldsFile points at the YAML metadata-fields registry.
	FieldsFile string `json:"fields_file,omitempty"`

	// Debug enables debug logging and log files.
	Debug bool `json:"debug,omitempty"`
}

// DefaultPath returns the workspace config path when present, otherwise the
// per-user path under the home directory.
func DefaultPath() string {
	local := filepath.Join(".querylens", "config.json")
	if _, err := os.Stat(local); err == nil {
		return local
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return local
	}
	return filepath.Join(home, ".querylens", "config.json")
}

// Load reads the config file at path (DefaultPath when empty) and applies
// environment overrides. A missing file yields an empty config.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		// Environment-only configuration.
	case err != nil:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

// applyEnv layers environment variables over file values. Environment wins.
func (c *Config) applyEnv() {
	if v := os.Getenv("ANTHROPIC_API_KEY"); v != "" {
		c.AnthropicAPIKey = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		c.OpenAIAPIKey = v
	}
	if v := os.Getenv("QUERYLENS_PROVIDER"); v != "" {
		c.Provider = v
	}
	if v := os.Getenv("QUERYLENS_MODEL"); v != "" {
		c.Model = v
	}
	if v := os.Getenv("QUERYLENS_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("QUERYLENS_FIELDS_FILE"); v != "" {
		c.FieldsFile = v
	}
	if v := os.Getenv("QUERYLENS_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Debug = b
		}
	}
}

// ActiveProvider resolves the provider and its API key. An explicit
// Provider setting wins; otherwise the first provider with a key is used,
// preferring Anthropic.
func (c *Config) ActiveProvider() (string, string, error) {
	switch c.Provider {
	case "anthropic":
		if c.AnthropicAPIKey == "" {
			return "", "", fmt.Errorf("provider anthropic selected but no API key configured")
		}
		return "anthropic", c.AnthropicAPIKey, nil
	case "openai":
		if c.OpenAIAPIKey == "" {
			return "", "", fmt.Errorf("provider openai selected but no API key configured")
		}
		return "openai", c.OpenAIAPIKey, nil
	case "":
		if c.AnthropicAPIKey != "" {
			return "anthropic", c.AnthropicAPIKey, nil
		}
		if c.OpenAIAPIKey != "" {
			return "openai", c.OpenAIAPIKey, nil
		}
		return "", "", fmt.Errorf("no API key configured; set ANTHROPIC_API_KEY or OPENAI_API_KEY")
	default:
		return "", "", fmt.Errorf("unknown provider %q", c.Provider)
	}
}

// Timeout returns the configured call timeout, zero when unset.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Save writes the config to path, creating parent directories.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
