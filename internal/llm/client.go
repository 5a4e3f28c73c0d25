// Package llm provides text-generation model clients. Providers share one
// small interface so the extraction layer stays provider-agnostic.
package llm

import (
	"context"
	"fmt"
	"time"
)

// Client is the interface the intent layer calls.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
	CompleteWithSystem(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Config holds common provider settings.
type Config struct {
	APIKey  string
	BaseURL string
	Model   string
	// MaxTokens caps the completion length. Intent extraction needs only a
	// small structured object, so this defaults low.
	MaxTokens int
	// Temperature is sent verbatim; zero means deterministic decoding.
	Temperature float64
	Timeout     time.Duration
}

// Provider identifies a model backend.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
)

// New builds a client for the named provider.
func New(provider Provider, cfg Config) (Client, error) {
	switch provider {
	case ProviderAnthropic:
		return NewAnthropicClient(cfg), nil
	case ProviderOpenAI:
		return NewOpenAIClient(cfg), nil
	default:
		return nil, fmt.Errorf("unknown provider %q", provider)
	}
}

const (
	defaultMaxTokens = 1000
	defaultTimeout   = 60 * time.Second
)
