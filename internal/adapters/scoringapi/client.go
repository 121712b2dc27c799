// Package scoringapi is the HTTP client for the hosted idea-scoring service.
// The orchestrator treats it as best-effort: one attempt per validation,
// any failure falls back to the local scorer
package scoringapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"greenpath/internal/core/scoring"
	perr "greenpath/internal/platform/errors"
	"greenpath/internal/platform/logger"
)

const (
	defaultTimeout = 8 * time.Second
	defaultUA      = "greenpath-api"
)

// ScoreRequest is the wire payload sent to the remote scorer
type ScoreRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	TargetMarket    string `json:"target_market,omitempty"`
	InnovationLevel string `json:"innovation_level,omitempty"`
}

// Options configures the Client
type Options struct {
	BaseURL   string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

// Client is a single-attempt scoring client. No retries: the caller's
// fallback path is cheaper than waiting out a flaky upstream
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
	now  func() time.Time
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("scoringapi"),
		now:  time.Now,
	}
}

// Score posts the idea to the remote /validate endpoint and decodes the
// result. Every failure mode maps to Unavailable so the orchestrator can
// treat the remote path as a single kind of outage
func (c *Client) Score(ctx context.Context, req ScoreRequest) (scoring.Result, error) {
	var out scoring.Result

	if c.opts.BaseURL == "" {
		return out, perr.Unavailablef("remote scoring not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUnknown, "scoringapi encode request")
	}

	hreq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.opts.BaseURL+"/validate", bytes.NewReader(body))
	if err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUnknown, "scoringapi new request")
	}
	hreq.Header.Set("User-Agent", c.opts.UserAgent)
	hreq.Header.Set("Content-Type", "application/json")
	hreq.Header.Set("Accept", "application/json")
	if c.opts.APIKey != "" {
		hreq.Header.Set("Authorization", "Bearer "+c.opts.APIKey)
	}

	start := c.now()
	resp, err := c.http.Do(hreq)
	lat := c.now().Sub(start)
	if err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUnavailable, "scoringapi do failed")
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		_ = resp.Body.Close()
	}()

	c.log.Debug().
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Msg("scoringapi response")

	if resp.StatusCode != http.StatusOK {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return out, perr.Unavailablef("scoringapi status %d body %s", resp.StatusCode, string(tail))
	}

	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&out); err != nil {
		return out, perr.Wrapf(err, perr.ErrorCodeUnavailable, "scoringapi decode response")
	}
	if out.Score < 0 || out.Score > 100 ||
		out.Confidence < 0 || out.Confidence > 100 ||
		len(out.SDGAlignment) == 0 {
		return scoring.Result{}, perr.Unavailablef("scoringapi malformed result")
	}
	return out, nil
}
