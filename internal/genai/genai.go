// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package genai abstracts the generative AI providers behind a single
// Backend interface. The provider is resolved from the model identifier
// once, at configuration time; call sites never inspect the model name.
package genai

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/pdiddy/content-engine/pkg/types"
)

// Request is one generation call: a system prompt, a user prompt, and a
// response budget.
type Request struct {
	System    string
	User      string
	MaxTokens int
}

// Backend produces raw text for a generation request. Each provider
// (Anthropic, OpenAI, Gemini) implements this interface per the Strategy
// pattern; tests supply a mock.
type Backend interface {
	Name() string
	Generate(ctx context.Context, req Request) (string, error)
}

// Provider tags a generation backend.
type Provider string

const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGemini    Provider = "gemini"
)

// ResolveProvider maps a model identifier to its provider tag. This is
// the only place the model name is substring-matched; everything
// downstream dispatches on the tag.
func ResolveProvider(model string) Provider {
	switch {
	case strings.Contains(model, "gemini"):
		return ProviderGemini
	case strings.Contains(model, "gpt"):
		return ProviderOpenAI
	default:
		return ProviderAnthropic
	}
}

// NewBackend builds the backend for cfg.Model.
func NewBackend(cfg types.AIConfig, client *http.Client) (Backend, error) {
	if cfg.Model == "" {
		return nil, fmt.Errorf("no AI model configured")
	}
	if client == nil {
		client = http.DefaultClient
	}

	switch ResolveProvider(cfg.Model) {
	case ProviderGemini:
		return &GeminiBackend{Client: client, Model: cfg.Model, APIKey: cfg.APIKey}, nil
	case ProviderOpenAI:
		return &OpenAIBackend{Client: client, Model: cfg.Model, APIKey: cfg.APIKey}, nil
	default:
		return &AnthropicBackend{Client: client, Model: cfg.Model, APIKey: cfg.APIKey}, nil
	}
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// GenerateWithRetry calls the backend with exponential backoff on
// transient failures.
func GenerateWithRetry(ctx context.Context, b Backend, req Request, maxRetries int) (string, error) {
	if maxRetries <= 0 {
		maxRetries = 3
	}

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff):
			}
		}

		text, err := b.Generate(ctx, req)
		if err == nil {
			return text, nil
		}
		lastErr = err
	}
	return "", fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
