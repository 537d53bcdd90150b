package accessor

import (
	"github.com/tansive/hecate/internal/authrules"
)

// Credentials are the basic auth pair sent with every request once resolved.
type Credentials struct {
	Username string
	Password string
}

// ConnectionContext is the caller-owned connection state shared by every
// call. The resolver writes Credentials after a successful prompt and the
// dispatcher reads them; it is not safe for concurrent use, so callers must
// serialize calls that share a context or resolve credentials up front.
type ConnectionContext struct {
	BaseURL     string
	Credentials *Credentials     // nil until resolved
	Rules       *authrules.Rules // nil when the server's rules are unknown
}

// GetServerURL implements httpclient.Configurator.
func (c *ConnectionContext) GetServerURL() string {
	return c.BaseURL
}

// GetBasicAuth implements httpclient.Configurator. It returns empty strings
// when no credentials are held, which makes the request anonymous.
func (c *ConnectionContext) GetBasicAuth() (string, string) {
	if c.Credentials == nil {
		return "", ""
	}
	return c.Credentials.Username, c.Credentials.Password
}

// HasCredentials reports whether a username has been resolved.
func (c *ConnectionContext) HasCredentials() bool {
	return c.Credentials != nil && c.Credentials.Username != ""
}
