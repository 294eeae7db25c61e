// Package api talks to the streamed directory API: the match list, stream
// resolution and team badges.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/abelbrown/kickoff/internal/logging"
	"github.com/abelbrown/kickoff/internal/match"
	"github.com/abelbrown/kickoff/internal/metrics"
)

const (
	DefaultBaseURL = "https://streamed.pk"
	DefaultSport   = "football"
	// DefaultBadge is shown for teams without a badge or whose badge fails
	// to load.
	DefaultBadge = "https://cdn-icons-png.flaticon.com/512/1165/1165187.png"

	defaultRateInterval = 250 * time.Millisecond
	userAgent           = "kickoff/1.0"
)

// HTTPDoer is the subset of *http.Client the client needs.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Config controls how the client reaches the API.
type Config struct {
	BaseURL    string
	Sport      string
	HTTPClient HTTPDoer
	// RateInterval spaces outbound requests; zero uses the default.
	RateInterval time.Duration
	Recorder     *metrics.Recorder
}

// Client fetches matches and streams and maps them to domain types.
type Client struct {
	baseURL  string
	sport    string
	http     HTTPDoer
	limiter  *rate.Limiter
	recorder *metrics.Recorder

	mu     sync.Mutex
	badges map[string]string
}

// NewClient constructs a client. Missing fields take defaults.
func NewClient(cfg Config) *Client {
	base := strings.TrimRight(cfg.BaseURL, "/")
	if base == "" {
		base = DefaultBaseURL
	}
	sport := cfg.Sport
	if sport == "" {
		sport = DefaultSport
	}
	doer := cfg.HTTPClient
	if doer == nil {
		doer = &http.Client{Timeout: 30 * time.Second}
	}
	interval := cfg.RateInterval
	if interval <= 0 {
		interval = defaultRateInterval
	}
	return &Client{
		baseURL:  base,
		sport:    sport,
		http:     doer,
		limiter:  rate.NewLimiter(rate.Every(interval), 2),
		recorder: cfg.Recorder,
		badges:   make(map[string]string),
	}
}

// FetchMatches retrieves the full match list for the configured sport.
func (c *Client) FetchMatches(ctx context.Context) ([]match.Match, error) {
	endpoint := fmt.Sprintf("%s/api/matches/%s", c.baseURL, url.PathEscape(c.sport))

	var payload []apiMatch
	start := time.Now()
	err := c.getJSON(ctx, "fetch matches", endpoint, &payload)
	c.recorder.RecordRequest(metrics.OpMatches, time.Since(start), err)
	if err != nil {
		return nil, err
	}

	matches := make([]match.Match, 0, len(payload))
	for _, a := range payload {
		matches = append(matches, a.toMatch())
	}
	logging.Info("Fetched matches", "sport", c.sport, "count", len(matches), "took", time.Since(start))
	return matches, nil
}

// ResolveStreams looks up the embeddable streams for a source. An empty
// slice with a nil error means the source resolved to nothing: any JSON
// answer that is not a non-empty array counts, whatever its status. Only
// failures to reach the API or to read a JSON body are errors.
func (c *Client) ResolveStreams(ctx context.Context, src match.Source) ([]match.Stream, error) {
	endpoint := fmt.Sprintf("%s/api/stream/%s/%s", c.baseURL, url.PathEscape(src.Name), url.PathEscape(src.ID))

	start := time.Now()
	status, body, err := c.fetch(ctx, "resolve stream", endpoint)
	if err == nil && !json.Valid(body) {
		err = &TransportError{Op: "resolve stream", URL: endpoint, StatusCode: status, Err: errors.New("decode: response is not JSON")}
	}
	c.recorder.RecordRequest(metrics.OpStreams, time.Since(start), err)
	if err != nil {
		c.recorder.RecordStreamOutcome("failed")
		return nil, err
	}

	var streams []match.Stream
	if uerr := json.Unmarshal(body, &streams); uerr != nil || len(streams) == 0 {
		logging.Debug("Source resolved to no streams", "source", src.Name, "id", src.ID, "status", status)
		c.recorder.RecordStreamOutcome("empty")
		return []match.Stream{}, nil
	}
	c.recorder.RecordStreamOutcome("playing")
	return streams, nil
}

// BadgeURL returns the image URL for a team badge, or DefaultBadge.
func (c *Client) BadgeURL(team *match.Team) string {
	if team == nil || team.Badge == "" {
		return DefaultBadge
	}
	return fmt.Sprintf("%s/api/images/badge/%s.webp", c.baseURL, url.PathEscape(team.Badge))
}

// ResolveBadge checks that the badge image loads and falls back to
// DefaultBadge on any error. Results are cached for the life of the client.
func (c *Client) ResolveBadge(ctx context.Context, team *match.Team) string {
	candidate := c.BadgeURL(team)
	if candidate == DefaultBadge {
		return DefaultBadge
	}

	c.mu.Lock()
	cached, ok := c.badges[candidate]
	c.mu.Unlock()
	if ok {
		return cached
	}

	resolved := candidate
	start := time.Now()
	err := c.checkImage(ctx, candidate)
	c.recorder.RecordRequest(metrics.OpBadges, time.Since(start), err)
	if err != nil {
		logging.Debug("Badge unavailable, using default", "url", candidate, "err", err)
		resolved = DefaultBadge
	}

	c.mu.Lock()
	c.badges[candidate] = resolved
	c.mu.Unlock()
	return resolved
}

func (c *Client) checkImage(ctx context.Context, endpoint string) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return &TransportError{Op: "load badge", URL: endpoint, Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, endpoint, nil)
	if err != nil {
		return &TransportError{Op: "load badge", URL: endpoint, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Op: "load badge", URL: endpoint, Err: err}
	}
	resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &TransportError{Op: "load badge", URL: endpoint, StatusCode: resp.StatusCode, Err: ErrStatus}
	}
	return nil
}

func (c *Client) getJSON(ctx context.Context, op, endpoint string, out any) error {
	status, body, err := c.fetch(ctx, op, endpoint)
	if err != nil {
		return err
	}

	if status != http.StatusOK {
		if len(body) > 512 {
			body = body[:512]
		}
		return &TransportError{
			Op:         op,
			URL:        endpoint,
			StatusCode: status,
			Err:        fmt.Errorf("%w: %s", ErrStatus, strings.TrimSpace(string(body))),
		}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return &TransportError{Op: op, URL: endpoint, Err: fmt.Errorf("decode: %w", err)}
	}
	return nil
}

// fetch performs a rate-limited GET and reads the whole body. Errors are
// transport failures; the status is left to the caller.
func (c *Client) fetch(ctx context.Context, op, endpoint string) (int, []byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return 0, nil, &TransportError{Op: op, URL: endpoint, Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return 0, nil, &TransportError{Op: op, URL: endpoint, Err: err}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, &TransportError{Op: op, URL: endpoint, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, &TransportError{Op: op, URL: endpoint, StatusCode: resp.StatusCode, Err: fmt.Errorf("read body: %w", err)}
	}
	return resp.StatusCode, body, nil
}
