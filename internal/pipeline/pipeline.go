// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pipeline composes the content stages into the generate and
// refresh flows. Every enrichment stage (keywords, gaps, references,
// links) is additive: a failed stage degrades to an empty result and the
// flow continues, because enrichment is never a hard dependency for
// producing the base article.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/content-engine/internal/gaps"
	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/internal/htmlx"
	"github.com/pdiddy/content-engine/internal/images"
	"github.com/pdiddy/content-engine/internal/keywords"
	"github.com/pdiddy/content-engine/internal/links"
	"github.com/pdiddy/content-engine/internal/references"
	"github.com/pdiddy/content-engine/pkg/types"
)

// summaryLen bounds the plain-text sketch of existing content passed to
// the regeneration prompt.
const summaryLen = 1000

// Deps holds the collaborators a pipeline run needs. Tests supply mocks.
type Deps struct {
	Backend   genai.Backend
	Retriever references.Retriever
	Checker   references.LivenessChecker
	Config    types.PipelineConfig
}

// GenerateResult is the outcome of one generate flow.
type GenerateResult struct {
	Content          string
	SemanticKeywords []string
	GapAnalysis      types.GapAnalysis
	References       []types.Reference
	Links            []types.LinkSuggestion
}

// RefreshResult is the outcome of one refresh flow.
type RefreshResult struct {
	Content         string
	PreservedImages int
	References      []types.Reference
}

const generateSystemPrompt = `You are an expert long-form content writer.
Write a comprehensive, well-structured HTML article using <h2> sections
and <p> paragraphs. Weave in the provided semantic keywords naturally and
address the listed competitor gaps. Return HTML only.`

// Generate runs the full generation flow for keyword: semantic keywords,
// competitor gap analysis, article generation, reference discovery, and
// internal link suggestions.
func Generate(ctx context.Context, deps Deps, keyword string, serp []types.Candidate, pages []types.Page, w io.Writer) (*GenerateResult, error) {
	return generate(ctx, deps, keyword, serp, pages, "", w)
}

func generate(ctx context.Context, deps Deps, keyword string, serp []types.Candidate, pages []types.Page, existingHTML string, w io.Writer) (*GenerateResult, error) {
	result := &GenerateResult{}

	fmt.Fprintf(w, "Step 1/5: enhancing semantic keywords\n")
	result.SemanticKeywords = keywords.Enhance(ctx, deps.Backend, keyword, "", deps.Config.AI, w)

	fmt.Fprintf(w, "Step 2/5: analyzing competitors\n")
	result.GapAnalysis = gaps.Analyze(ctx, deps.Backend, keyword, serp, deps.Config.AI, w)

	allKeywords := append([]string{}, result.SemanticKeywords...)
	allKeywords = append(allKeywords, result.GapAnalysis.CompetitorKeywords...)
	allKeywords = append(allKeywords, result.GapAnalysis.MissingKeywords...)

	fmt.Fprintf(w, "Step 3/5: generating article\n")
	content, err := generateArticle(ctx, deps, keyword, allKeywords, result.GapAnalysis, existingHTML)
	if err != nil {
		return nil, fmt.Errorf("generating article: %w", err)
	}
	result.Content = content

	fmt.Fprintf(w, "Step 4/5: discovering references\n")
	result.References = references.Discover(ctx, keyword, deps.Retriever, deps.Checker, deps.Config.References, w)

	fmt.Fprintf(w, "Step 5/5: suggesting internal links\n")
	result.Links = links.Suggest(keyword, pages, deps.Config.Pages.MaxSuggestions)

	return result, nil
}

// Refresh regenerates an existing article while preserving its embedded
// media: fragments are extracted before regeneration and redistributed
// into the new prose afterwards.
func Refresh(ctx context.Context, deps Deps, keyword, existingContent string, serp []types.Candidate, pages []types.Page, w io.Writer) (*RefreshResult, error) {
	fmt.Fprintf(w, "Step 1/3: extracting existing media\n")
	fragments := images.Extract(existingContent)
	fmt.Fprintf(w, "preserving %d media fragments\n", len(fragments))

	fmt.Fprintf(w, "Step 2/3: regenerating article\n")
	gen, err := generate(ctx, deps, keyword, serp, pages, existingContent, w)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(w, "Step 3/3: redistributing media\n")
	content := images.Redistribute(gen.Content, fragments)

	return &RefreshResult{
		Content:         content,
		PreservedImages: len(fragments),
		References:      gen.References,
	}, nil
}

// generateArticle runs the article generation call. existingHTML, when
// non-empty, gives the model a plain-text sketch of the content being
// replaced.
func generateArticle(ctx context.Context, deps Deps, keyword string, semanticKeywords []string, ga types.GapAnalysis, existingHTML string) (string, error) {
	var sb strings.Builder
	fmt.Fprintf(&sb, "KEYWORD: %s\n", keyword)
	if len(semanticKeywords) > 0 {
		fmt.Fprintf(&sb, "SEMANTIC KEYWORDS: %s\n", strings.Join(semanticKeywords, ", "))
	}
	for _, g := range ga.Gaps {
		fmt.Fprintf(&sb, "GAP TO COVER: %s\n", g.Opportunity)
	}
	if existingHTML != "" {
		fmt.Fprintf(&sb, "EXISTING CONTENT SUMMARY: %s\n", htmlx.Summary(existingHTML, summaryLen))
	}

	raw, err := genai.GenerateWithRetry(ctx, deps.Backend, genai.Request{
		System:    generateSystemPrompt,
		User:      sb.String(),
		MaxTokens: deps.Config.AI.MaxTokens,
	}, deps.Config.AI.MaxRetries)
	if err != nil {
		return "", err
	}
	return genai.StripFences(raw), nil
}
