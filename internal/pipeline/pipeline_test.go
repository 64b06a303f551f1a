package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/pkg/types"
)

// stageBackend answers each pipeline stage from a canned response,
// dispatching on the system prompt. It records every request.
type stageBackend struct {
	keywordsResp string
	keywordsErr  error
	gapsResp     string
	gapsErr      error
	articleResp  string
	articleErr   error

	requests []genai.Request
}

func (m *stageBackend) Name() string { return "staged" }

func (m *stageBackend) Generate(_ context.Context, req genai.Request) (string, error) {
	m.requests = append(m.requests, req)
	switch {
	case strings.Contains(req.System, "keyword generator"):
		return m.keywordsResp, m.keywordsErr
	case strings.Contains(req.System, "intelligence analyst"):
		return m.gapsResp, m.gapsErr
	default:
		return m.articleResp, m.articleErr
	}
}

// articleRequest returns the recorded article-stage request.
func (m *stageBackend) articleRequest(t *testing.T) genai.Request {
	t.Helper()
	for _, req := range m.requests {
		if strings.Contains(req.System, "content writer") {
			return req
		}
	}
	t.Fatal("no article request recorded")
	return genai.Request{}
}

type stubRetriever struct {
	candidates []types.Candidate
}

func (s *stubRetriever) Retrieve(_ context.Context, _ string) ([]types.Candidate, error) {
	return s.candidates, nil
}

type stubChecker struct{}

func (stubChecker) IsLive(_ context.Context, _ string) (int, bool) { return 200, true }

func testDeps(backend genai.Backend) Deps {
	return Deps{
		Backend:   backend,
		Retriever: &stubRetriever{candidates: []types.Candidate{{Title: "Source", URL: "https://source.com/a"}}},
		Checker:   stubChecker{},
		Config: types.PipelineConfig{
			References: types.ReferenceConfig{SerperAPIKey: "k", SoftTarget: 10, HardCap: 12, MaxParallelChecks: 2},
			AI:         types.AIConfig{Model: "claude-sonnet-4-20250514", MaxRetries: 1, MaxTokens: 4000},
			Pages:      types.PagesConfig{MaxSuggestions: 5},
		},
	}
}

const articleHTML = "<h2>Overview</h2><p>First.</p><p>Second.</p><p>Third.</p><p>Fourth.</p>"

func healthyBackend() *stageBackend {
	return &stageBackend{
		keywordsResp: `{"keywords": ["earbuds review", "best earbuds"]}`,
		gapsResp:     `{"gaps": [{"type": "missing_topic", "topic": "battery", "opportunity": "cover battery care", "priority": "high"}], "competitorKeywords": ["earbuds deals"], "missingKeywords": ["earbuds lifespan"]}`,
		articleResp:  "```html\n" + articleHTML + "\n```",
	}
}

func TestGenerate(t *testing.T) {
	backend := healthyBackend()
	pages := []types.Page{{Slug: "wireless-earbuds-guide", Title: "Wireless Earbuds Guide"}}

	var buf bytes.Buffer
	result, err := Generate(context.Background(), testDeps(backend), "wireless earbuds", nil, pages, &buf)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Content != articleHTML {
		t.Errorf("content = %q (fences must be stripped)", result.Content)
	}
	if len(result.SemanticKeywords) != 2 {
		t.Errorf("semantic keywords = %v", result.SemanticKeywords)
	}
	if len(result.GapAnalysis.Gaps) != 1 {
		t.Errorf("gaps = %+v", result.GapAnalysis)
	}
	if len(result.References) != 1 || result.References[0].URL != "https://source.com/a" {
		t.Errorf("references = %+v", result.References)
	}
	if len(result.Links) != 1 || result.Links[0].TargetSlug != "wireless-earbuds-guide" {
		t.Errorf("links = %+v", result.Links)
	}

	if len(backend.requests) != 3 {
		t.Fatalf("backend calls = %d, want 3", len(backend.requests))
	}

	// The article prompt folds in semantic, competitor, and missing
	// keywords plus the gap opportunities.
	articleReq := backend.articleRequest(t)
	for _, want := range []string{"KEYWORD: wireless earbuds", "earbuds review", "earbuds deals", "earbuds lifespan", "GAP TO COVER: cover battery care"} {
		if !strings.Contains(articleReq.User, want) {
			t.Errorf("article prompt missing %q:\n%s", want, articleReq.User)
		}
	}
	if strings.Contains(articleReq.User, "EXISTING CONTENT SUMMARY") {
		t.Error("generate flow must not include an existing content summary")
	}

	for step := 1; step <= 5; step++ {
		if !strings.Contains(buf.String(), fmt.Sprintf("Step %d/5", step)) {
			t.Errorf("progress output missing step %d: %s", step, buf.String())
		}
	}
}

func TestGenerateDegradesWhenEnrichmentFails(t *testing.T) {
	// Keywords and gaps both fail; the article is still produced.
	backend := healthyBackend()
	backend.keywordsErr = fmt.Errorf("keywords down")
	backend.gapsErr = fmt.Errorf("gaps down")

	var buf bytes.Buffer
	result, err := Generate(context.Background(), testDeps(backend), "wireless earbuds", nil, nil, &buf)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if result.Content != articleHTML {
		t.Errorf("content = %q", result.Content)
	}
	if len(result.SemanticKeywords) != 0 || len(result.GapAnalysis.Gaps) != 0 {
		t.Errorf("enrichment should be empty: %+v", result)
	}
}

func TestGenerateArticleFailureIsFatal(t *testing.T) {
	backend := healthyBackend()
	backend.articleErr = fmt.Errorf("model unavailable")

	var buf bytes.Buffer
	if _, err := Generate(context.Background(), testDeps(backend), "wireless earbuds", nil, nil, &buf); err == nil {
		t.Fatal("expected error when article generation fails, got nil")
	}
}

func TestRefreshPreservesImages(t *testing.T) {
	existing := `<p>Old intro.</p><img src="https://cdn.example.com/hero.jpg" alt="hero"><p>Old body.</p>` +
		`<iframe src="https://www.youtube.com/embed/demo"></iframe>`

	backend := healthyBackend()

	var buf bytes.Buffer
	result, err := Refresh(context.Background(), testDeps(backend), "wireless earbuds", existing, nil, nil, &buf)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if result.PreservedImages != 2 {
		t.Errorf("preserved images = %d, want 2", result.PreservedImages)
	}
	if !strings.Contains(result.Content, `<img src="https://cdn.example.com/hero.jpg" alt="hero">`) {
		t.Error("image fragment not carried into refreshed content")
	}
	if !strings.Contains(result.Content, `<iframe src="https://www.youtube.com/embed/demo">`) {
		t.Error("iframe fragment not carried into refreshed content")
	}
	if !strings.Contains(result.Content, "<h2>Overview</h2>") {
		t.Error("refreshed content missing regenerated article")
	}
	if len(result.References) != 1 {
		t.Errorf("references = %+v", result.References)
	}

	// The regeneration prompt carries a plain-text sketch of the old
	// article.
	articleReq := backend.articleRequest(t)
	if !strings.Contains(articleReq.User, "EXISTING CONTENT SUMMARY") || !strings.Contains(articleReq.User, "Old intro.") {
		t.Errorf("refresh prompt missing existing content summary:\n%s", articleReq.User)
	}
}

func TestRefreshNoImages(t *testing.T) {
	backend := healthyBackend()

	var buf bytes.Buffer
	result, err := Refresh(context.Background(), testDeps(backend), "wireless earbuds", "<p>Plain old content.</p>", nil, nil, &buf)
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}

	if result.PreservedImages != 0 {
		t.Errorf("preserved images = %d, want 0", result.PreservedImages)
	}
	if result.Content != articleHTML {
		t.Errorf("content = %q, want the regenerated article unchanged", result.Content)
	}
}
