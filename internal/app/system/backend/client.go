// internal/app/system/backend/client.go
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// maxErrorBody caps how much of an error response is read for its message.
const maxErrorBody = 64 << 10

// Client talks JSON to the marketplace backend. It is safe for concurrent use.
type Client struct {
	base    *url.URL
	hc      *http.Client
	log     *zap.Logger
	metrics *Metrics
}

// New builds a Client for baseURL. timeout bounds each request end to end.
func New(baseURL string, timeout time.Duration, logger *zap.Logger) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil {
		return nil, fmt.Errorf("parse backend url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("backend url must be http or https, got %q", baseURL)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("backend url has no host: %q", baseURL)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		base: u,
		hc:   &http.Client{Timeout: timeout, Transport: http.DefaultTransport},
		log:  logger,
	}, nil
}

// WithMetrics attaches request metrics. Passing nil disables them.
func (c *Client) WithMetrics(m *Metrics) *Client {
	c.metrics = m
	return c
}

// httpClient returns a client that adds the caller's bearer token, if any.
func (c *Client) httpClient(ctx context.Context) *http.Client {
	tok := TokenFrom(ctx)
	if tok == "" {
		return c.hc
	}
	return &http.Client{
		Timeout: c.hc.Timeout,
		Transport: &oauth2.Transport{
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: tok, TokenType: "Bearer"}),
			Base:   c.hc.Transport,
		},
	}
}

// endpoint joins path onto the base URL. path arrives already escaped
// (callers run IDs through url.PathEscape), so it is kept as RawPath.
func (c *Client) endpoint(path string, q url.Values) (string, error) {
	u := *c.base
	raw := c.base.EscapedPath() + "/" + strings.TrimLeft(path, "/")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("bad path %q: %w", path, err)
	}
	u.Path, u.RawPath = decoded, raw
	if len(q) > 0 {
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}

// Do sends body (JSON-encoded when non-nil) and decodes a 2xx response into
// out (skipped when out is nil). Non-2xx responses become *APIError.
func (c *Client) Do(ctx context.Context, method, path string, q url.Values, body, out any) error {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s %s body: %w", method, path, err)
		}
		rdr = bytes.NewReader(buf)
	}

	resp, err := c.Forward(ctx, method, path, q, rdr, "application/json")
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return readAPIError(resp, path)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil && err != io.EOF {
		return fmt.Errorf("decode %s %s response: %w", method, path, err)
	}
	return nil
}

// Forward sends a raw request and returns the backend response unread.
// The caller closes the body.
func (c *Client) Forward(ctx context.Context, method, path string, q url.Values, body io.Reader, contentType string) (*http.Response, error) {
	target, err := c.endpoint(path, q)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return nil, fmt.Errorf("build %s %s: %w", method, path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil && contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	start := time.Now()
	resp, err := c.httpClient(ctx).Do(req)
	elapsed := time.Since(start)
	if err != nil {
		c.metrics.observe(path, method, 0, elapsed)
		c.log.Warn("backend request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Duration("elapsed", elapsed),
			zap.Error(err))
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	c.metrics.observe(path, method, resp.StatusCode, elapsed)
	c.log.Debug("backend request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed))
	return resp, nil
}

// Ping reports whether the backend answers HTTP at all. Any status counts.
func (c *Client) Ping(ctx context.Context) error {
	resp, err := c.Forward(ctx, http.MethodGet, "/", nil, nil, "")
	if err != nil {
		return err
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return resp.Body.Close()
}

func readAPIError(resp *http.Response, path string) *APIError {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		Status:  resp.StatusCode,
		Message: messageFromBody(raw),
		Path:    path,
	}
}

// messageFromBody pulls a human message out of a JSON error body. The
// backend uses "message" but some routes answer with "error".
func messageFromBody(raw []byte) string {
	var body struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return ""
	}
	for _, field := range []json.RawMessage{body.Message, body.Error} {
		if len(field) == 0 {
			continue
		}
		var s string
		if err := json.Unmarshal(field, &s); err == nil && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
		// A list of validation messages: join them.
		var list []string
		if err := json.Unmarshal(field, &list); err == nil && len(list) > 0 {
			return strings.Join(list, "; ")
		}
	}
	return ""
}

// PageQuery builds the page/limit query the list endpoints accept.
func PageQuery(page, limit int) url.Values {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return url.Values{
		"page":  {strconv.Itoa(page)},
		"limit": {strconv.Itoa(limit)},
	}
}
