// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package htmlx extracts plain text from HTML documents for use as
// prompt context.
package htmlx

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Text returns the visible text of an HTML document with whitespace
// collapsed to single spaces.
func Text(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parsing HTML: %w", err)
	}
	doc.Find("script, style").Remove()
	return strings.Join(strings.Fields(doc.Text()), " "), nil
}

// Summary returns up to max runes of the document's visible text. It is
// used to give generation prompts a cheap sketch of existing content.
// An unparseable document summarizes to the empty string.
func Summary(html string, max int) string {
	text, err := Text(html)
	if err != nil {
		return ""
	}
	runes := []rune(text)
	if len(runes) <= max {
		return text
	}
	return string(runes[:max])
}
