// Package authrules reads the server's per-endpoint access policy and decides
// which credential fields a command has to ask for.
package authrules

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"

	"github.com/tansive/hecate/internal/common/httpclient"
	"github.com/tansive/hecate/internal/prompt"
)

// Public is the rule value that allows anonymous access.
const Public = "public"

// AuthPath is the server endpoint that publishes the rules document.
const AuthPath = "/api/auth"

// Field names collected when credentials are required.
const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// Rules is a read-only view over an auth rules document such as
// {"server": "public", "stats": {"get": "user"}}.
type Rules struct {
	raw []byte
}

// Parse wraps a raw rules document.
func Parse(raw []byte) (*Rules, error) {
	if !gjson.ValidBytes(raw) || !gjson.ParseBytes(raw).IsObject() {
		return nil, fmt.Errorf("auth rules must be a JSON object")
	}
	return &Rules{raw: append([]byte(nil), raw...)}, nil
}

// FromMap builds rules from a decoded document, typically the auth_rules
// section of the configuration file.
func FromMap(m map[string]any) (*Rules, error) {
	raw, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding auth rules: %w", err)
	}
	return Parse(raw)
}

// Fetch loads the rules document from the server. The request is anonymous
// unless the transport is configured with credentials.
func Fetch(ctx context.Context, t httpclient.Transport) (*Rules, error) {
	resp, err := t.Do(ctx, httpclient.RequestOptions{
		Method: http.MethodGet,
		Path:   AuthPath,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching auth rules: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetching auth rules: server returned %d: %s", resp.StatusCode, resp.Body)
	}
	return Parse(resp.Body)
}

// Rule returns the rule for a dotted key such as "stats.get", or "" when the
// key is not present.
func (r *Rules) Rule(key string) string {
	if r == nil {
		return ""
	}
	return gjson.GetBytes(r.raw, key).String()
}

// RequiresCredentials reports whether key is anything other than public.
// Missing keys require credentials.
func (r *Rules) RequiresCredentials(key string) bool {
	return r.Rule(key) != Public
}

// CredentialFields are the fields asked for when credentials are required.
func CredentialFields() []prompt.Field {
	return []prompt.Field{
		{Name: FieldUsername, Description: "Your Hecate username"},
		{Name: FieldPassword, Description: "Your Hecate password", Secret: true},
	}
}

// RequiredFields returns the fields to prompt for before calling the endpoint
// guarded by key. Nothing is required when the rules are unknown, when the
// rule is public, or when a username is already held.
func RequiredFields(haveCredentials bool, rules *Rules, key string) []prompt.Field {
	if haveCredentials || rules == nil || !rules.RequiresCredentials(key) {
		return nil
	}
	return CredentialFields()
}
