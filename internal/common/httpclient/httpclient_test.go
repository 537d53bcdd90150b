package httpclient

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testConfig struct {
	url      string
	username string
	password string
}

func (c *testConfig) GetServerURL() string { return c.url }

func (c *testConfig) GetBasicAuth() (string, string) { return c.username, c.password }

func TestBuildURL(t *testing.T) {
	tests := []struct {
		name      string
		server    string
		opts      RequestOptions
		expected  string
		expectErr bool
	}{
		{
			name:     "root server",
			server:   "http://localhost:8000",
			opts:     RequestOptions{Path: "/api"},
			expected: "http://localhost:8000/api",
		},
		{
			name:     "server with base path",
			server:   "https://example.com/hecate/",
			opts:     RequestOptions{Path: "/api/data/stats"},
			expected: "https://example.com/hecate/api/data/stats",
		},
		{
			name:     "query params",
			server:   "http://localhost:8000",
			opts:     RequestOptions{Path: "api", QueryParams: map[string]string{"a": "1"}},
			expected: "http://localhost:8000/api?a=1",
		},
		{
			name:      "missing scheme",
			server:    "localhost",
			opts:      RequestOptions{Path: "/api"},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := BuildURL(tt.server, tt.opts)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, u.String())
		})
	}
}

func TestDo(t *testing.T) {
	var gotUser, gotPass, gotAccept, gotRequestID string
	var gotAuth bool
	r := chi.NewRouter()
	r.Get("/api", func(w http.ResponseWriter, r *http.Request) {
		gotUser, gotPass, gotAuth = r.BasicAuth()
		gotAccept = r.Header.Get("Accept")
		gotRequestID = r.Header.Get("X-Request-Id")
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte(`{"b":1,"a":2}`))
	})
	srv := httptest.NewServer(r)
	defer srv.Close()

	t.Run("anonymous", func(t *testing.T) {
		client := NewClient(&testConfig{url: srv.URL})
		resp, err := client.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/api"})
		require.NoError(t, err)
		assert.Equal(t, http.StatusTeapot, resp.StatusCode)
		assert.Equal(t, `{"b":1,"a":2}`, string(resp.Body))
		assert.False(t, gotAuth)
		assert.Equal(t, "application/json", gotAccept)
		assert.NotEmpty(t, gotRequestID)
	})

	t.Run("basic auth", func(t *testing.T) {
		client := NewClient(&testConfig{url: srv.URL, username: "ingalls", password: "yeaheh"})
		_, err := client.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/api"})
		require.NoError(t, err)
		assert.True(t, gotAuth)
		assert.Equal(t, "ingalls", gotUser)
		assert.Equal(t, "yeaheh", gotPass)
	})

	t.Run("transport failure", func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		dead.Close()
		client := NewClient(&testConfig{url: dead.URL}, ClientOptions{Timeout: time.Second})
		resp, err := client.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/api"})
		assert.Error(t, err)
		assert.Nil(t, resp)
	})
}

func TestTestClient(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/data/stats", func(w http.ResponseWriter, r *http.Request) {
		user, _, _ := r.BasicAuth()
		w.Write([]byte(`{"user":"` + user + `"}`))
	})
	client := NewTestClient(&testConfig{url: "http://hecate.test", username: "u"}, r)

	resp, err := client.Do(context.Background(), RequestOptions{Method: http.MethodGet, Path: "/api/data/stats"})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"user":"u"}`, string(resp.Body))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = client.Do(ctx, RequestOptions{Method: http.MethodGet, Path: "/api/data/stats"})
	assert.ErrorIs(t, err, context.Canceled)
}
