// Package reddit implements the TokenSource and PostSource ports against the
// Reddit OAuth API.
package reddit

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/ericfisherdev/hotmeme/internal/domain/model"
	"github.com/ericfisherdev/hotmeme/internal/domain/port/driven"
)

const (
	defaultTokenURL   = "https://www.reddit.com/api/v1/access_token"
	defaultAPIBaseURL = "https://oauth.reddit.com"

	// maxResponseBytes caps how much of an upstream body is decoded.
	maxResponseBytes = 4 << 20
)

// Compile-time interface satisfaction checks.
var (
	_ driven.TokenSource = (*Client)(nil)
	_ driven.PostSource  = (*Client)(nil)
)

// Client talks to Reddit on behalf of all in-flight requests. It holds no
// per-request state, so a single instance is safe for concurrent use.
type Client struct {
	httpClient *http.Client
	tokenURL   string
	apiBaseURL string
	userAgent  string
	logger     *slog.Logger
}

// NewClient creates a Client for the production Reddit endpoints. timeout is
// the overall deadline applied to every outbound call.
func NewClient(userAgent string, timeout time.Duration, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		tokenURL:   defaultTokenURL,
		apiBaseURL: defaultAPIBaseURL,
		userAgent:  userAgent,
		logger:     logger,
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and
// endpoint URLs. This constructor is intended for testing, allowing injection
// of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, tokenURL, apiBaseURL, userAgent string, logger *slog.Logger) (*Client, error) {
	if _, err := url.Parse(tokenURL); err != nil {
		return nil, fmt.Errorf("parsing token URL: %w", err)
	}
	if _, err := url.Parse(apiBaseURL); err != nil {
		return nil, fmt.Errorf("parsing API base URL: %w", err)
	}

	return &Client{
		httpClient: httpClient,
		tokenURL:   tokenURL,
		apiBaseURL: apiBaseURL,
		userAgent:  userAgent,
		logger:     logger,
	}, nil
}

// do sends req with the client's User-Agent and decodes a successful JSON
// response into v. Transport failures wrap model.ErrNetwork; a non-2xx status
// or an undecodable body wraps model.ErrProtocol.
func (c *Client) do(req *http.Request, what string, v any) error {
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: requesting %s: %w", model.ErrNetwork, what, err)
	}
	defer resp.Body.Close()

	c.logger.Debug("reddit response",
		"what", what,
		"status", resp.StatusCode,
		"duration", time.Since(start).Round(time.Millisecond),
	)

	body := io.LimitReader(resp.Body, maxResponseBytes)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, body)
		return fmt.Errorf("%w: %s returned HTTP %d", model.ErrProtocol, what, resp.StatusCode)
	}

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding %s: %w", model.ErrProtocol, what, err)
	}

	return nil
}
