// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Page is one entry in the site page inventory used for internal link
// suggestions.
type Page struct {
	// Slug is the URL slug of the page (unique within a site).
	Slug string `json:"slug" yaml:"slug"`

	// Title is the page title.
	Title string `json:"title" yaml:"title"`
}

// LinkSuggestion proposes one internal link to weave into generated prose.
type LinkSuggestion struct {
	// AnchorText is the visible link text (the target page title).
	AnchorText string `json:"anchor_text" yaml:"anchor_text"`

	// TargetSlug is the slug of the page being linked to.
	TargetSlug string `json:"target_slug" yaml:"target_slug"`

	// Context explains why this link was suggested.
	Context string `json:"context" yaml:"context"`

	// Placement names the article region the link belongs in.
	Placement string `json:"placement" yaml:"placement"`
}

// GapType classifies a competitor content gap.
type GapType string

const (
	GapMissingTopic    GapType = "missing_topic"
	GapOutdatedData    GapType = "outdated_data"
	GapShallowCoverage GapType = "shallow_coverage"
	GapMissingExamples GapType = "missing_examples"
)

// Gap is one exploitable weakness found in competitor coverage.
type Gap struct {
	Type        GapType `json:"type" yaml:"type"`
	Topic       string  `json:"topic" yaml:"topic"`
	Opportunity string  `json:"opportunity" yaml:"opportunity"`
	Priority    string  `json:"priority" yaml:"priority"`
}

// GapAnalysis is the full result of a competitor gap analysis pass.
// A failed analysis yields the zero value; the pipeline proceeds without it.
type GapAnalysis struct {
	Gaps               []Gap    `json:"gaps" yaml:"gaps"`
	CompetitorKeywords []string `json:"competitorKeywords" yaml:"competitor_keywords"`
	MissingKeywords    []string `json:"missingKeywords" yaml:"missing_keywords"`
}
