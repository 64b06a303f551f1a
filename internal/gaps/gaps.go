// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package gaps analyzes top competitor results for exploitable content
// gaps via the generation backend.
package gaps

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/pkg/types"
)

const systemPrompt = `You are a competitive intelligence analyst for content
gap analysis. Given the top competitor results for a keyword, identify
topics they miss, outdated data, shallow coverage, and missing examples.
Return JSON only:
{"gaps": [{"type": "missing_topic", "topic": "...", "opportunity": "...",
"priority": "high"}], "competitorKeywords": [], "missingKeywords": []}`

// competitorCount bounds how many SERP rows are analyzed.
const competitorCount = 3

// Analyze asks the backend for a gap analysis over the top SERP rows.
// Gap analysis is additive: any failure logs a warning and yields the
// zero value, never an error.
func Analyze(ctx context.Context, b genai.Backend, keyword string, serp []types.Candidate, cfg types.AIConfig, w io.Writer) types.GapAnalysis {
	if len(serp) > competitorCount {
		serp = serp[:competitorCount]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "TARGET KEYWORD: %s\n\nTOP COMPETITORS:\n", keyword)
	for i, c := range serp {
		snippet := c.Snippet
		if snippet == "" {
			snippet = "N/A"
		}
		fmt.Fprintf(&sb, "%d. %s\n   Snippet: %s\n", i+1, c.Title, snippet)
	}
	sb.WriteString("\nAnalyze and return JSON with gaps, competitor keywords, and missing keywords.")

	raw, err := genai.GenerateWithRetry(ctx, b, genai.Request{
		System:    systemPrompt,
		User:      sb.String(),
		MaxTokens: 4000,
	}, cfg.MaxRetries)
	if err != nil {
		fmt.Fprintf(w, "warning: gap analysis failed: %v\n", err)
		return types.GapAnalysis{}
	}

	var ga types.GapAnalysis
	if err := genai.DecodeJSON(raw, &ga); err != nil {
		fmt.Fprintf(w, "warning: gap analysis response unparseable: %v\n", err)
		return types.GapAnalysis{}
	}

	fmt.Fprintf(w, "found %d competitor gaps\n", len(ga.Gaps))
	return ga
}
