// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package keywords expands a primary keyword into a semantic keyword map
// via the generation backend.
package keywords

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/pkg/types"
)

const systemPrompt = `You are an SEO entity and semantic keyword generator.
Generate semantic keywords for topical authority: primary variations,
LSI keywords, entities, question keywords, comparison keywords, and
commercial keywords. Return 30-50 keywords total as JSON only:
{"keywords": ["keyword1", "keyword2"]}`

// keywordResponse is the expected model payload.
type keywordResponse struct {
	Keywords []string `json:"keywords"`
}

// Enhance asks the backend for a semantic keyword map around keyword.
// Keyword enrichment is additive: any backend or parse failure logs a
// warning and yields an empty slice, never an error.
func Enhance(ctx context.Context, b genai.Backend, keyword, location string, cfg types.AIConfig, w io.Writer) []string {
	user := fmt.Sprintf("PRIMARY KEYWORD: %s\n", keyword)
	if location != "" {
		user += fmt.Sprintf("LOCATION: %s\n", location)
	}
	user += "Generate the semantic keyword map. Return ONLY valid JSON."

	raw, err := genai.GenerateWithRetry(ctx, b, genai.Request{
		System:    systemPrompt,
		User:      user,
		MaxTokens: 2000,
	}, cfg.MaxRetries)
	if err != nil {
		fmt.Fprintf(w, "warning: keyword enhancement failed: %v\n", err)
		return nil
	}

	var kr keywordResponse
	if err := genai.DecodeJSON(raw, &kr); err != nil {
		fmt.Fprintf(w, "warning: keyword response unparseable: %v\n", err)
		return nil
	}
	return kr.Keywords
}
