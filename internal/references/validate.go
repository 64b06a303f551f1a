// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package references

import (
	"context"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// browserUserAgent makes probes look like an ordinary browser; several
// authoritative hosts reject obviously programmatic user agents.
const browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

const defaultValidateTimeout = 6 * time.Second

// Validator probes candidate URLs with a ranged GET requesting only the
// first bytes of the body. A shared rate limiter keeps a parallel batch
// from hammering hosts.
type Validator struct {
	Client  *http.Client
	Limiter *rate.Limiter

	// Timeout bounds one probe (default 6s). One stalled host must not
	// hold a batch open.
	Timeout time.Duration

	// UserAgent overrides the browser-like default.
	UserAgent string
}

// NewValidator builds a Validator from the waterfall config.
func NewValidator(client *http.Client, probesPerSecond float64, timeout time.Duration) *Validator {
	var limiter *rate.Limiter
	if probesPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(probesPerSecond), 1)
	}
	return &Validator{Client: client, Limiter: limiter, Timeout: timeout}
}

// IsLive reports whether rawURL currently answers the ranged probe.
// Live means HTTP 200, or 206 from hosts that honor the Range header.
// Every other outcome, including transport errors and timeouts, counts
// as dead; probe failures are expected and never surface as errors.
func (v *Validator) IsLive(ctx context.Context, rawURL string) (int, bool) {
	if v.Limiter != nil {
		if err := v.Limiter.Wait(ctx); err != nil {
			return 0, false
		}
	}

	timeout := v.Timeout
	if timeout <= 0 {
		timeout = defaultValidateTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return 0, false
	}
	ua := v.UserAgent
	if ua == "" {
		ua = browserUserAgent
	}
	req.Header.Set("User-Agent", ua)
	req.Header.Set("Range", "bytes=0-512")

	resp, err := v.Client.Do(req)
	if err != nil {
		return 0, false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))

	live := resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusPartialContent
	return resp.StatusCode, live
}
