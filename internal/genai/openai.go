// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package genai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/content-engine/internal/httputil"
)

// openaiAPIBase is the OpenAI chat completions endpoint. Declared as a
// var so tests can substitute an httptest server.
var openaiAPIBase = "https://api.openai.com/v1/chat/completions"

// OpenAIBackend calls the OpenAI Chat Completions API.
type OpenAIBackend struct {
	Client *http.Client
	Model  string
	APIKey string
}

// Name returns the backend identifier.
func (b *OpenAIBackend) Name() string { return string(ProviderOpenAI) }

type openaiRequest struct {
	Model     string          `json:"model"`
	Messages  []openaiMessage `json:"messages"`
	MaxTokens int             `json:"max_tokens,omitempty"`
}

type openaiMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openaiResponse struct {
	Choices []struct {
		Message openaiMessage `json:"message"`
	} `json:"choices"`
}

// Generate sends one chat completion call and returns the first choice.
func (b *OpenAIBackend) Generate(ctx context.Context, req Request) (string, error) {
	body, err := json.Marshal(openaiRequest{
		Model: b.Model,
		Messages: []openaiMessage{
			{Role: "system", Content: req.System},
			{Role: "user", Content: req.User},
		},
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("encoding request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, openaiAPIBase, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+b.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := httputil.DoWithRetry(ctx, b.Client, httpReq, 0)
	if err != nil {
		return "", fmt.Errorf("OpenAI API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenAI API returned HTTP %d", resp.StatusCode)
	}

	var or openaiResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return "", fmt.Errorf("parsing OpenAI response: %w", err)
	}
	if len(or.Choices) == 0 {
		return "", fmt.Errorf("empty OpenAI response")
	}
	return or.Choices[0].Message.Content, nil
}
