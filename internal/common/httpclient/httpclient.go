package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/tansive/hecate/internal/common/logtrace"
)

// Configurator provides the server location and the credentials to send.
// An empty username means the request is sent anonymously.
type Configurator interface {
	GetServerURL() string
	GetBasicAuth() (username, password string)
}

// RequestOptions contains options for making HTTP requests.
// Method and Path are required; QueryParams and Body are optional.
type RequestOptions struct {
	Method      string            // HTTP method (GET, POST, PUT, DELETE)
	Path        string            // API endpoint path relative to the server URL
	QueryParams map[string]string // Optional query parameters
	Body        []byte            // Optional JSON request body
}

// Response is a completed HTTP exchange.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// HTTPClient sends requests to the server described by its Configurator.
type HTTPClient struct {
	config     Configurator
	httpClient *http.Client
}

// ClientOptions contains options for configuring the HTTP client.
type ClientOptions struct {
	Timeout               time.Duration // zero leaves the transport default
	DisableCertValidation bool          // If true, skips TLS certificate validation
}

// NewClient creates a new HTTP client using the provided configuration.
func NewClient(config Configurator, opts ...ClientOptions) *HTTPClient {
	clientOpts := ClientOptions{}
	if len(opts) > 0 {
		clientOpts = opts[0]
	}
	return NewClientWithOptions(config, clientOpts)
}

// NewClientWithOptions creates a new HTTP client using the provided configuration and options.
func NewClientWithOptions(config Configurator, opts ClientOptions) *HTTPClient {
	httpClient := &http.Client{Timeout: opts.Timeout}

	if opts.DisableCertValidation {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{
				InsecureSkipVerify: true,
			},
		}
	}

	return &HTTPClient{
		config:     config,
		httpClient: httpClient,
	}
}

// BuildURL joins the server URL and the request path and encodes the query.
func BuildURL(serverURL string, opts RequestOptions) (*url.URL, error) {
	u, err := url.Parse(serverURL)
	if err != nil {
		return nil, fmt.Errorf("invalid server URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid server URL: %q", serverURL)
	}
	u.Path = path.Join("/", u.Path, opts.Path)

	if len(opts.QueryParams) > 0 {
		q := u.Query()
		for k, v := range opts.QueryParams {
			q.Set(k, v)
		}
		u.RawQuery = q.Encode()
	}
	return u, nil
}

// newRequest builds the request shared by HTTPClient and TestHTTPClient.
func newRequest(ctx context.Context, config Configurator, opts RequestOptions) (*http.Request, error) {
	u, err := BuildURL(config.GetServerURL(), opts)
	if err != nil {
		return nil, err
	}

	var body io.Reader
	if len(opts.Body) > 0 {
		body = bytes.NewReader(opts.Body)
	}
	req, err := http.NewRequestWithContext(ctx, opts.Method, u.String(), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := logtrace.RequestIdFromContext(ctx); id != "" {
		req.Header.Set("X-Request-Id", id)
	}
	if username, password := config.GetBasicAuth(); username != "" {
		req.SetBasicAuth(username, password)
	}
	return req, nil
}

// Do sends the request and reads the full response body. Non-2xx statuses are
// not errors at this layer.
func (c *HTTPClient) Do(ctx context.Context, opts RequestOptions) (*Response, error) {
	ctx = logtrace.WithRequestID(ctx)
	req, err := newRequest(ctx, c.config, opts)
	if err != nil {
		return nil, err
	}

	logger := log.With().
		Str("request_id", logtrace.RequestIdFromContext(ctx)).
		Str("method", req.Method).
		Str("url", req.URL.Redacted()).
		Logger()

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logger.Debug().Err(err).Dur("duration", time.Since(start)).Msg("request failed")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	logger.Debug().
		Int("status", resp.StatusCode).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("request complete")

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       body,
	}, nil
}
