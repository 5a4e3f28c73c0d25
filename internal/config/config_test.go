package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"ANTHROPIC_API_KEY", "OPENAI_API_KEY",
		"QUERYLENS_PROVIDER", "QUERYLENS_MODEL", "QUERYLENS_BASE_URL",
		"QUERYLENS_FIELDS_FILE", "QUERYLENS_DEBUG",
	} {
		// Empty values are ignored by the override pass, so this both
		// isolates the test and restores the caller's environment after.
		t.Setenv(k, "")
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"provider": "openai",
		"openai_api_key": "sk-file",
		"model": "gpt-4o",
		"timeout_seconds": 30,
		"debug": true
	}`), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "openai", cfg.Provider)
	assert.Equal(t, "sk-file", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o", cfg.Model)
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.True(t, cfg.Debug)
}

func TestLoadMissingFileIsEmpty(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestLoadMalformedFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"provider": "openai",
		"model": "gpt-4o",
		"anthropic_api_key": "file-key"
	}`), 0o600))

	t.Setenv("QUERYLENS_PROVIDER", "anthropic")
	t.Setenv("ANTHROPIC_API_KEY", "env-key")
	t.Setenv("QUERYLENS_DEBUG", "true")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "anthropic", cfg.Provider)
	assert.Equal(t, "env-key", cfg.AnthropicAPIKey)
	assert.Equal(t, "gpt-4o", cfg.Model, "file value survives when env is unset")
	assert.True(t, cfg.Debug)
}

func TestActiveProvider(t *testing.T) {
	tests := []struct {
		name     string
		cfg      Config
		wantProv string
		wantKey  string
		wantErr  bool
	}{
		{
			name:     "explicit anthropic",
			cfg:      Config{Provider: "anthropic", AnthropicAPIKey: "a", OpenAIAPIKey: "o"},
			wantProv: "anthropic", wantKey: "a",
		},
		{
			name:     "explicit openai",
			cfg:      Config{Provider: "openai", OpenAIAPIKey: "o"},
			wantProv: "openai", wantKey: "o",
		},
		{
			name:    "explicit without key",
			cfg:     Config{Provider: "anthropic"},
			wantErr: true,
		},
		{
			name:     "auto prefers anthropic",
			cfg:      Config{AnthropicAPIKey: "a", OpenAIAPIKey: "o"},
			wantProv: "anthropic", wantKey: "a",
		},
		{
			name:     "auto falls to openai",
			cfg:      Config{OpenAIAPIKey: "o"},
			wantProv: "openai", wantKey: "o",
		},
		{
			name:    "no keys at all",
			cfg:     Config{},
			wantErr: true,
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "mystery", AnthropicAPIKey: "a"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prov, key, err := tt.cfg.ActiveProvider()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantProv, prov)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "deep", "config.json")
	in := &Config{Provider: "anthropic", AnthropicAPIKey: "k", MaxTokens: 512}
	require.NoError(t, in.Save(path))

	out, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}
