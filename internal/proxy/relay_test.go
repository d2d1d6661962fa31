package proxy_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulse-ai/backend/internal/proxy"
)

type capturedRequest struct {
	method string
	path   string
	query  string
	header http.Header
	body   []byte
}

// newUpstream returns a mock upstream that records every request and answers
// with the given status and body.
func newUpstream(t *testing.T, status int, body string) (*httptest.Server, *[]capturedRequest) {
	t.Helper()
	var captured []capturedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		captured = append(captured, capturedRequest{
			method: r.Method,
			path:   r.URL.Path,
			query:  r.URL.RawQuery,
			header: r.Header.Clone(),
			body:   raw,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, &captured
}

func newRelay(t *testing.T, upstreamURL string) *proxy.Relay {
	t.Helper()
	relay, err := proxy.NewRelay(upstreamURL, "/proxy", nil)
	require.NoError(t, err)
	return relay
}

func TestRelay_PreflightAnsweredLocally(t *testing.T) {
	upstream, captured := newUpstream(t, http.StatusOK, "{}")
	relay := newRelay(t, upstream.URL)

	req := httptest.NewRequest(http.MethodOptions, "/proxy/v1/models", nil)
	rec := httptest.NewRecorder()
	relay.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, *captured, "preflight must never reach the upstream")
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	assert.Equal(t, "86400", rec.Header().Get("Access-Control-Max-Age"))
}

func TestRelay_ForwardsGetWithoutBody(t *testing.T) {
	upstream, captured := newUpstream(t, http.StatusOK, `{"data":[]}`)
	relay := newRelay(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/proxy/v1/models?limit=5", nil)
	req.Header.Set("Authorization", "Bearer secret")
	req.Header.Set("X-Custom-Internal", "should-not-pass")
	rec := httptest.NewRecorder()
	relay.ServeHTTP(rec, req)

	require.Len(t, *captured, 1)
	got := (*captured)[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/v1/models", got.path, "routing prefix is stripped")
	assert.Equal(t, "limit=5", got.query, "query string is preserved")
	assert.Empty(t, got.body, "GET carries no body")

	// Allow-listed headers pass, everything else is dropped.
	assert.Equal(t, "Bearer secret", got.header.Get("Authorization"))
	assert.Empty(t, got.header.Get("X-Custom-Internal"))

	// Browser identity headers are pinned.
	assert.Contains(t, got.header.Get("User-Agent"), "Mozilla/5.0")
	assert.NotEmpty(t, got.header.Get("Origin"))
	assert.NotEmpty(t, got.header.Get("Referer"))
}

func TestRelay_ForwardsPostBodyVerbatim(t *testing.T) {
	upstream, captured := newUpstream(t, http.StatusOK, `{"ok":true}`)
	relay := newRelay(t, upstream.URL)

	payload := `{"model":"google/gemma-3-27b","messages":[{"role":"user","content":"hi"}]}`
	req := httptest.NewRequest(http.MethodPost, "/proxy/v1/chat/completions", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	relay.ServeHTTP(rec, req)

	require.Len(t, *captured, 1)
	got := (*captured)[0]
	assert.Equal(t, payload, string(got.body), "body bytes are forwarded unmodified")
	assert.Equal(t, "application/json", got.header.Get("Content-Type"))
}

func TestRelay_RelaysStatusAndInjectsCORS(t *testing.T) {
	upstream, _ := newUpstream(t, http.StatusTeapot, `{"error":"teapot"}`)
	relay := newRelay(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/proxy/v1/models", nil)
	rec := httptest.NewRecorder()
	relay.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTeapot, rec.Code, "upstream status is reproduced exactly")
	assert.JSONEq(t, `{"error":"teapot"}`, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"),
		"CORS headers are injected even when the upstream omits them")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRelay_UpstreamFailureBecomesJSONError(t *testing.T) {
	upstream, _ := newUpstream(t, http.StatusOK, "{}")
	upstream.Close() // Simulate an unreachable upstream.
	relay := newRelay(t, upstream.URL)

	req := httptest.NewRequest(http.MethodGet, "/proxy/v1/models", nil)
	rec := httptest.NewRecorder()
	relay.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Failed to proxy request", payload["error"])
	assert.NotEmpty(t, payload["details"])
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
