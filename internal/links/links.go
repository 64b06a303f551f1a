// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package links suggests internal links for an article from a site page
// inventory. Matching is lexical: pages sharing at least two substantial
// title words with the article are suggested first, and the remainder of
// the target count is padded with other pages.
package links

import (
	"fmt"
	"strings"

	"github.com/pdiddy/content-engine/pkg/types"
)

const defaultTargetCount = 10

// minWordLen filters out stopword-sized title words from overlap matching.
const minWordLen = 4

// Suggest returns up to targetCount link suggestions for an article
// titled title, drawn from pages. Overlap matches come first in
// inventory order, then padding fills.
func Suggest(title string, pages []types.Page, targetCount int) []types.LinkSuggestion {
	if targetCount <= 0 {
		targetCount = defaultTargetCount
	}

	titleWords := strings.Fields(strings.ToLower(title))

	var suggestions []types.LinkSuggestion
	used := make(map[string]bool)

	for _, page := range pages {
		if len(suggestions) >= targetCount {
			break
		}
		common := commonWords(titleWords, strings.Fields(strings.ToLower(page.Title)))
		if len(common) < 2 {
			continue
		}
		suggestions = append(suggestions, types.LinkSuggestion{
			AnchorText: page.Title,
			TargetSlug: page.Slug,
			Context:    fmt.Sprintf("Related to %s", strings.Join(common, ", ")),
			Placement:  "Body section",
		})
		used[page.Slug] = true
	}

	// Pad with remaining pages up to the target count.
	for _, page := range pages {
		if len(suggestions) >= targetCount {
			break
		}
		if used[page.Slug] {
			continue
		}
		suggestions = append(suggestions, types.LinkSuggestion{
			AnchorText: page.Title,
			TargetSlug: page.Slug,
			Context:    "Contextually relevant",
			Placement:  "Body section",
		})
		used[page.Slug] = true
	}

	return suggestions
}

// commonWords returns the words present in both lists that are long
// enough to be meaningful, in first-list order.
func commonWords(a, b []string) []string {
	inB := make(map[string]bool, len(b))
	for _, w := range b {
		inB[w] = true
	}

	var common []string
	for _, w := range a {
		if len(w) >= minWordLen && inB[w] {
			common = append(common, w)
			inB[w] = false
		}
	}
	return common
}
