// Package httpclient provides the HTTP transport used to reach the map-data
// server. It builds JSON requests against a configured base URL, attaches
// basic auth credentials when present, and hands back the raw status and body
// without interpreting them.
package httpclient

import (
	"context"
)

// Transport performs a single HTTP request. Implementations return an error
// only when no response was obtained; any status code is a valid response.
type Transport interface {
	Do(ctx context.Context, opts RequestOptions) (*Response, error)
}

var _ Transport = &HTTPClient{}
var _ Transport = &TestHTTPClient{}
