package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/tansive/hecate/internal/common/logtrace"
)

// TestHTTPClient serves requests directly from an http.Handler.
// It uses httptest.NewRecorder to capture responses without making network calls.
type TestHTTPClient struct {
	config  Configurator
	handler http.Handler
}

// NewTestClient creates a client that routes every request to handler.
func NewTestClient(config Configurator, handler http.Handler) *TestHTTPClient {
	return &TestHTTPClient{
		config:  config,
		handler: handler,
	}
}

func (c *TestHTTPClient) Do(ctx context.Context, opts RequestOptions) (*Response, error) {
	ctx = logtrace.WithRequestID(ctx)
	req, err := newRequest(ctx, c.config, opts)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rr := httptest.NewRecorder()
	c.handler.ServeHTTP(rr, req)
	return &Response{
		StatusCode: rr.Code,
		Header:     rr.Header(),
		Body:       rr.Body.Bytes(),
	}, nil
}
