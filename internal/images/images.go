// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package images preserves embedded media across a content refresh. It
// extracts image tags and video embeds from the old document verbatim
// and redistributes them into the regenerated document at evenly spaced
// paragraph boundaries.
package images

import (
	"regexp"
	"strings"
)

// Fragments are matched with regular expressions rather than a DOM
// parser: byte-identical preservation of the original markup (every
// attribute, every quote style) is the contract, and a parser would
// re-serialize the tags.
var (
	imgPattern    = regexp.MustCompile(`(?i)<img[^>]+src=["']([^"']+)["'][^>]*>`)
	iframePattern = regexp.MustCompile(`(?i)<iframe[^>]+src=["']([^"']+)["'][^>]*>`)
)

// Extract returns the media fragments of html: every <img> tag in
// document order, followed by every <iframe> whose src points at a
// YouTube host, also in document order. Order across the two tag types
// is by extraction pass, not document position. No reachability check is
// performed here.
func Extract(html string) []string {
	var fragments []string

	for _, m := range imgPattern.FindAllString(html, -1) {
		fragments = append(fragments, m)
	}

	for _, m := range iframePattern.FindAllStringSubmatch(html, -1) {
		src := m[1]
		if strings.Contains(src, "youtube.com") || strings.Contains(src, "youtu.be") {
			fragments = append(fragments, m[0])
		}
	}

	return fragments
}

// Redistribute splices fragments back into html at approximately even
// paragraph boundaries. The document is split on closing paragraph
// markers into N segments; the i-th of K fragments is inserted as a new
// segment at index floor(N/(K+1))*(i+1), wrapped in a figure element.
// With no fragments the document is returned unchanged.
//
// Redistribute is not idempotent: running it twice with the same
// fragment list inserts duplicates. Callers run it exactly once per
// refresh cycle.
func Redistribute(html string, fragments []string) string {
	if len(fragments) == 0 {
		return html
	}

	segments := strings.Split(html, "</p>")
	n := len(segments)

	for i, fragment := range fragments {
		pos := n / (len(fragments) + 1) * (i + 1)
		if pos >= len(segments) {
			continue
		}
		wrapped := `<figure class="wp-block-image">` + fragment + `</figure>`
		segments = append(segments[:pos], append([]string{wrapped}, segments[pos:]...)...)
	}

	return strings.Join(segments, "</p>")
}
