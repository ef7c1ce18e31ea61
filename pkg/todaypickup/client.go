package todaypickup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

// DefaultTimeout bounds each outbound call when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// Client issues outbound calls against the TodayPickup admin API.
// Construct one per process with NewClient and release it with Close
// during shutdown; it is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger zerolog.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// Close releases idle upstream connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// Call describes a single outbound request. Path is appended to the
// client's base URL; callers are responsible for escaping any
// user-supplied path segments.
type Call struct {
	Method  string
	Path    string
	Query   map[string]string
	Headers map[string]string
	Body    any
}

// Result is the outcome of a successful (2xx) call. Data holds the body
// parsed as JSON; when the upstream body is not valid JSON, Data is nil
// and Text carries the raw body instead.
type Result struct {
	StatusCode int
	Data       any
	Text       string
}

// Payload returns the parsed body when available, the raw text otherwise.
func (r *Result) Payload() any {
	if r.Data != nil {
		return r.Data
	}
	return r.Text
}

// Forward issues exactly one HTTP request described by call. A non-2xx
// response fails with *StatusError, a transport failure with
// *UnavailableError; neither is retried here.
func (c *Client) Forward(ctx context.Context, call Call) (*Result, error) {
	switch call.Method {
	case http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete:
	default:
		return nil, fmt.Errorf("unsupported method %q", call.Method)
	}

	// Marshal request body if provided
	var body io.Reader
	if call.Body != nil {
		b, err := json.Marshal(call.Body)
		if err != nil {
			return nil, fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, call.Method, c.baseURL+call.Path, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	if len(call.Query) > 0 {
		q := url.Values{}
		for k, v := range call.Query {
			q.Set(k, v)
		}
		req.URL.RawQuery = q.Encode()
	}

	// Default JSON headers, overridden by whatever the call site supplies
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range call.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Str("method", call.Method).Str("url", req.URL.String()).Err(err).
			Msg("upstream call failed")
		return nil, &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &UnavailableError{Err: err}
	}

	c.logger.Debug().Str("method", call.Method).Str("url", req.URL.String()).
		Int("status", resp.StatusCode).Msg("upstream call")

	if resp.StatusCode/100 != 2 {
		return nil, &StatusError{
			StatusCode: resp.StatusCode,
			Body:       parseJSON(raw),
			Raw:        string(raw),
		}
	}

	result := &Result{StatusCode: resp.StatusCode, Data: parseJSON(raw)}
	if result.Data == nil {
		result.Text = string(raw)
	}
	return result, nil
}

// parseJSON returns the body decoded as JSON, or nil when it is not JSON.
func parseJSON(raw []byte) any {
	if len(raw) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}
