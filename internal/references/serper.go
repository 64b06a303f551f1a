// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package references

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pdiddy/content-engine/pkg/types"
)

// serperAPIBase is the Serper search endpoint. Declared as a var so
// tests can substitute an httptest server.
var serperAPIBase = "https://google.serper.dev/search"

const defaultResultsPerQuery = 20

// SerperClient queries the Serper SERP API. One Retrieve call issues one
// POST request; failures are strategy-skip events in the waterfall, so
// no retry is attempted here.
type SerperClient struct {
	Client    *http.Client
	APIKey    string
	UserAgent string

	// Num is the page size requested per query (default 20).
	Num int
}

// serperRequest is the JSON body of a search call.
type serperRequest struct {
	Q   string `json:"q"`
	Num int    `json:"num"`
}

// serperResponse holds the subset of the response the waterfall consumes.
type serperResponse struct {
	Organic []types.Candidate `json:"organic"`
}

// Retrieve runs one query and returns the raw organic results.
func (c *SerperClient) Retrieve(ctx context.Context, query string) ([]types.Candidate, error) {
	num := c.Num
	if num <= 0 {
		num = defaultResultsPerQuery
	}

	body, err := json.Marshal(serperRequest{Q: query, Num: num})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, serperAPIBase, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("X-API-Key", c.APIKey)
	req.Header.Set("Content-Type", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("SERP API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("SERP API returned HTTP %d", resp.StatusCode)
	}

	var sr serperResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("parsing SERP response: %w", err)
	}
	return sr.Organic, nil
}
