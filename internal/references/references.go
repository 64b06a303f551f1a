// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package references discovers authoritative source links for an article.
// It runs a waterfall of progressively broader SERP queries, filters out
// low-authority domains, deduplicates across strategies, and validates the
// survivors concurrently with bounded ranged probes.
package references

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/pdiddy/content-engine/pkg/types"
)

const (
	defaultSoftTarget        = 10
	defaultHardCap           = 12
	defaultMaxParallelChecks = 8

	// defaultRelevance annotates accepted references; relevance scoring
	// itself is handled elsewhere in the pipeline.
	defaultRelevance = "Directly relevant authoritative source"
)

// Retriever fetches raw candidates for one strategy query.
type Retriever interface {
	Retrieve(ctx context.Context, query string) ([]types.Candidate, error)
}

// LivenessChecker classifies a candidate URL as live or dead.
type LivenessChecker interface {
	IsLive(ctx context.Context, rawURL string) (statusCode int, live bool)
}

// accumulator collects validated references under a mutex so that
// concurrent probe completions cannot race past the hard cap.
type accumulator struct {
	mu   sync.Mutex
	max  int
	refs []types.Reference
}

func (a *accumulator) add(r types.Reference) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.refs) >= a.max {
		return false
	}
	a.refs = append(a.refs, r)
	return true
}

func (a *accumulator) size() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.refs)
}

// survivor is a candidate that passed filtering, paired with its
// normalized host.
type survivor struct {
	cand types.Candidate
	host string
}

// Discover runs the reference waterfall for keyword and returns the
// accepted references in discovery order.
//
// Strategies execute sequentially; within one strategy's batch the
// surviving candidates are validated in parallel by a bounded worker
// pool. The soft target stops further strategies, the hard cap bounds
// the total, and a per-run seen set guarantees no URL is validated or
// returned twice. Discover never returns an error: a missing API key, a
// failed query, or a batch of dead links all degrade to a shorter (or
// empty) result, and cancellation of ctx returns whatever has
// accumulated so far.
func Discover(ctx context.Context, keyword string, retriever Retriever, checker LivenessChecker, cfg types.ReferenceConfig, w io.Writer) []types.Reference {
	if cfg.SerperAPIKey == "" {
		fmt.Fprintln(w, "no SERP API key configured, skipping references")
		return nil
	}

	softTarget := cfg.SoftTarget
	if softTarget <= 0 {
		softTarget = defaultSoftTarget
	}
	hardCap := cfg.HardCap
	if hardCap <= 0 {
		hardCap = defaultHardCap
	}

	acc := &accumulator{max: hardCap}
	seen := make(map[string]struct{})
	year := time.Now().Year()

	for _, strat := range Strategies(keyword, time.Now()) {
		if acc.size() >= softTarget {
			break
		}
		if ctx.Err() != nil {
			break
		}

		candidates, err := retriever.Retrieve(ctx, strat.Query)
		if err != nil {
			fmt.Fprintf(w, "warning: strategy %d query failed: %v\n", strat.Rank+1, err)
			continue
		}

		// Filter and mark seen before the fan-out so a URL returned by
		// two strategies enters validation at most once.
		var batch []survivor
		for _, c := range candidates {
			if c.URL == "" {
				continue
			}
			if _, dup := seen[c.URL]; dup {
				continue
			}
			host, ok := normalizedHost(c.URL)
			if !ok || blockedHost(host) {
				continue
			}
			seen[c.URL] = struct{}{}
			batch = append(batch, survivor{cand: c, host: host})
		}

		validateBatch(ctx, checker, batch, acc, cfg, year)
	}

	refs := acc.refs
	fmt.Fprintf(w, "found %d verified references\n", len(refs))
	return refs
}

// validateBatch probes one strategy's survivors in parallel and appends
// the live ones to acc, stopping dispatch once the cap is reached.
func validateBatch(ctx context.Context, checker LivenessChecker, batch []survivor, acc *accumulator, cfg types.ReferenceConfig, year int) {
	parallel := cfg.MaxParallelChecks
	if parallel <= 0 {
		parallel = defaultMaxParallelChecks
	}

	sem := make(chan struct{}, parallel)
	var wg sync.WaitGroup

	for _, s := range batch {
		if acc.size() >= acc.max {
			break
		}
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case sem <- struct{}{}:
		}

		wg.Add(1)
		go func(s survivor) {
			defer wg.Done()
			defer func() { <-sem }()

			status, live := checker.IsLive(ctx, s.cand.URL)
			if !live {
				return
			}
			acc.add(types.Reference{
				Title:      s.cand.Title,
				Author:     s.host, // domain fallback when no author is known
				URL:        s.cand.URL,
				Source:     s.host,
				Year:       year,
				Relevance:  defaultRelevance,
				Status:     types.StatusValid,
				StatusCode: status,
			})
		}(s)
	}

	wg.Wait()
}
