// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package references

import (
	"net/url"
	"strings"
)

// blockedDomains lists host substrings that never qualify as references:
// social platforms, UGC and forum sites, e-commerce, review aggregators,
// and document-sharing sites. Matching is by containment, so
// "example.reddit.com" is blocked by the "reddit.com" entry.
var blockedDomains = []string{
	"reddit.com", "quora.com", "twitter.com", "facebook.com", "instagram.com", "tiktok.com",
	"youtube.com", "vimeo.com", "pinterest.com", "tumblr.com",
	"amazon.com", "ebay.com", "walmart.com", "etsy.com",
	"tripadvisor.com", "yelp.com",
	"researchgate.net", "academia.edu",
	"scribd.com", "slideshare.net", "issuu.com", "yumpu.com",
	"medium.com", "linkedin.com",
}

// normalizedHost extracts the host from rawURL with any leading "www."
// label removed. A URL that cannot be parsed or has no host reports
// ok=false; the waterfall drops such candidates without validating them.
func normalizedHost(rawURL string) (host string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return "", false
	}
	return strings.TrimPrefix(u.Hostname(), "www."), true
}

// blockedHost reports whether host matches any blocklist entry.
func blockedHost(host string) bool {
	for _, b := range blockedDomains {
		if strings.Contains(host, b) {
			return true
		}
	}
	return false
}
