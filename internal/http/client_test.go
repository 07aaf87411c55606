package http

import (
	"context"
	h "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Get(t *testing.T) {
	var got *h.Request
	server := httptest.NewServer(h.HandlerFunc(func(w h.ResponseWriter, r *h.Request) {
		got = r
		switch r.URL.Path {
		case "/django/api/account/vsc40075/":
			w.WriteHeader(h.StatusOK)
			w.Write([]byte(`{"vsc_id":"vsc40075"}`))
		default:
			w.WriteHeader(h.StatusNotFound)
			w.Write([]byte(`{"detail":"Not found."}`))
		}
	}))
	defer server.Close()

	tests := []struct {
		name       string
		baseURL    string
		path       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "ok",
			baseURL:    server.URL + "/django",
			path:       "api/account/vsc40075/",
			wantStatus: 200,
			wantBody:   `{"vsc_id":"vsc40075"}`,
		},
		{
			name:       "trailing slash on base url",
			baseURL:    server.URL + "/django/",
			path:       "api/account/vsc40075/",
			wantStatus: 200,
			wantBody:   `{"vsc_id":"vsc40075"}`,
		},
		{
			name:       "not found is not an error",
			baseURL:    server.URL + "/django",
			path:       "api/vo/gvo99999",
			wantStatus: 404,
			wantBody:   `{"detail":"Not found."}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewClient(tt.baseURL, " s3cr3t\n", WithVersion("1.2.3"), WithTimeout(5*time.Second))

			status, body, err := c.Get(context.Background(), tt.path)
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantBody, string(body))

			require.NotNil(t, got)
			assert.Equal(t, h.MethodGet, got.Method)
			assert.Equal(t, "Bearer s3cr3t", got.Header.Get("Authorization"))
			assert.Equal(t, "application/json", got.Header.Get("Content-Type"))
			assert.Equal(t, "accountpagectl/1.2.3", got.Header.Get("User-Agent"))
		})
	}
}

func TestClient_GetEscapedPath(t *testing.T) {
	var rawPath string
	server := httptest.NewServer(h.HandlerFunc(func(w h.ResponseWriter, r *h.Request) {
		rawPath = r.URL.EscapedPath()
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	_, _, err := NewClient(server.URL, "t").Get(context.Background(), "api/account/institute/k%20u%20l/id/a%2Fb")
	require.NoError(t, err)
	assert.Equal(t, "/api/account/institute/k%20u%20l/id/a%2Fb", rawPath)
}

func TestClient_GetCancelled(t *testing.T) {
	server := httptest.NewServer(h.HandlerFunc(func(w h.ResponseWriter, r *h.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	status, _, err := NewClient(server.URL, "t").Get(ctx, "api/vo/")
	assert.Error(t, err)
	assert.Equal(t, 0, status)
}

func TestClient_GetUnreachable(t *testing.T) {
	server := httptest.NewServer(h.HandlerFunc(func(w h.ResponseWriter, r *h.Request) {}))
	url := server.URL
	server.Close()

	_, _, err := NewClient(url, "t").Get(context.Background(), "api/vo/")
	assert.Error(t, err)
}
