// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the content-engine pipeline.
package types

// Candidate is an unvalidated search result returned by the SERP API for
// one strategy query. Candidates are ephemeral: they exist between
// retrieval and filtering and are never persisted.
type Candidate struct {
	// Title is the result title as returned by the search API.
	Title string `json:"title" yaml:"title"`

	// URL is the landing page link.
	URL string `json:"link" yaml:"url"`

	// Snippet is the short result description, when the API provides one.
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// ReferenceStatus records the liveness classification of a reference.
type ReferenceStatus string

const (
	StatusValid    ReferenceStatus = "valid"
	StatusInvalid  ReferenceStatus = "invalid"
	StatusChecking ReferenceStatus = "checking"
)

// Reference is a candidate that survived domain filtering, deduplication,
// and liveness validation. References are immutable once created; the
// waterfall appends them in discovery order.
type Reference struct {
	// Title is the page title from the originating search result.
	Title string `json:"title" yaml:"title"`

	// Author is the attributed author; the source domain is used as a
	// fallback when no author is known.
	Author string `json:"author" yaml:"author"`

	// URL is the validated landing page link.
	URL string `json:"url" yaml:"url"`

	// Source is the normalized host the reference was found on
	// (e.g. "nature.com").
	Source string `json:"source" yaml:"source"`

	// Year is the publication year attributed to the reference.
	Year int `json:"year" yaml:"year"`

	// Relevance is a caller-supplied description of why the reference
	// was included.
	Relevance string `json:"relevance" yaml:"relevance"`

	// Status is the liveness classification at discovery time.
	Status ReferenceStatus `json:"status,omitempty" yaml:"status,omitempty"`

	// StatusCode is the HTTP status returned by the liveness probe.
	StatusCode int `json:"status_code,omitempty" yaml:"status_code,omitempty"`
}
