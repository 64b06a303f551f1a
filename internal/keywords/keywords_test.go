package keywords

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/pdiddy/content-engine/internal/genai"
	"github.com/pdiddy/content-engine/pkg/types"
)

// mockBackend returns a canned response and records the last request.
type mockBackend struct {
	response string
	err      error
	lastReq  genai.Request
}

func (m *mockBackend) Name() string { return "mock" }

func (m *mockBackend) Generate(_ context.Context, req genai.Request) (string, error) {
	m.lastReq = req
	return m.response, m.err
}

func TestEnhance(t *testing.T) {
	b := &mockBackend{response: "```json\n{\"keywords\": [\"best earbuds\", \"earbuds review\", \"earbuds vs headphones\"]}\n```"}

	var buf bytes.Buffer
	got := Enhance(context.Background(), b, "wireless earbuds", "Austin", types.AIConfig{MaxRetries: 1}, &buf)

	if len(got) != 3 {
		t.Fatalf("len(keywords) = %d, want 3", len(got))
	}
	if got[0] != "best earbuds" {
		t.Errorf("keywords[0] = %q", got[0])
	}
	if !strings.Contains(b.lastReq.User, "PRIMARY KEYWORD: wireless earbuds") {
		t.Errorf("user prompt missing keyword: %q", b.lastReq.User)
	}
	if !strings.Contains(b.lastReq.User, "LOCATION: Austin") {
		t.Errorf("user prompt missing location: %q", b.lastReq.User)
	}
}

func TestEnhanceNoLocation(t *testing.T) {
	b := &mockBackend{response: `{"keywords": ["a"]}`}

	var buf bytes.Buffer
	Enhance(context.Background(), b, "solar panels", "", types.AIConfig{MaxRetries: 1}, &buf)

	if strings.Contains(b.lastReq.User, "LOCATION") {
		t.Errorf("user prompt should omit location line: %q", b.lastReq.User)
	}
}

func TestEnhanceBackendFailure(t *testing.T) {
	b := &mockBackend{err: fmt.Errorf("rate limited")}

	var buf bytes.Buffer
	got := Enhance(context.Background(), b, "solar panels", "", types.AIConfig{MaxRetries: 1}, &buf)

	if got != nil {
		t.Errorf("keywords = %v, want nil on backend failure", got)
	}
	if !strings.Contains(buf.String(), "warning") {
		t.Errorf("expected warning, got: %s", buf.String())
	}
}

func TestEnhanceUnparseableResponse(t *testing.T) {
	b := &mockBackend{response: "sorry, I cannot help with that"}

	var buf bytes.Buffer
	got := Enhance(context.Background(), b, "solar panels", "", types.AIConfig{MaxRetries: 1}, &buf)

	if got != nil {
		t.Errorf("keywords = %v, want nil on unparseable response", got)
	}
	if !strings.Contains(buf.String(), "warning") {
		t.Errorf("expected warning, got: %s", buf.String())
	}
}
