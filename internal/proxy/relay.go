// Package proxy implements the stateless relay that forwards playground
// requests to the upstream inference API. It exists to work around CORS and
// IP-allowlist restrictions on the upstream host: browsers talk to the relay,
// the relay talks upstream with a browser-like identity, and every response
// leaves with permissive CORS headers.
package proxy

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// browserUserAgent is the fixed identity presented to the upstream, which
// rejects obviously non-browser clients.
const browserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// allowedHeaders is the only set of inbound headers forwarded upstream.
// Everything else, notably Host, Connection and platform-injected headers,
// is dropped.
var allowedHeaders = []string{
	"Content-Type",
	"Authorization",
	"X-Api-Key",
	"Accept",
	"Accept-Language",
}

// Relay forwards requests under a routing prefix to a fixed upstream origin.
// It holds no per-request state and is safe under concurrent use.
type Relay struct {
	upstream *url.URL
	prefix   string
	client   *http.Client
}

// NewRelay builds a Relay for the given upstream base URL. Requests arriving
// at `{prefix}/rest?query` are forwarded to `{upstream}/rest?query`.
func NewRelay(upstream, prefix string, client *http.Client) (*Relay, error) {
	parsed, err := url.Parse(upstream)
	if err != nil {
		return nil, err
	}
	if client == nil {
		client = &http.Client{}
	}
	return &Relay{
		upstream: parsed,
		prefix:   strings.TrimRight(prefix, "/"),
		client:   client,
	}, nil
}

func (rl *Relay) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// Preflight is answered locally; the upstream is never contacted.
	if r.Method == http.MethodOptions {
		writeCORS(w.Header())
		w.Header().Set("Access-Control-Max-Age", "86400")
		w.WriteHeader(http.StatusNoContent)
		return
	}

	target := rl.targetURL(r)
	slog.Debug("Proxying request", "method", r.Method, "target", target)

	outReq, err := http.NewRequestWithContext(r.Context(), r.Method, target, rl.outboundBody(r))
	if err != nil {
		rl.relayError(w, err)
		return
	}

	// Fresh header set: copy only the allow-list, then pin the browser
	// identity the upstream expects.
	for _, name := range allowedHeaders {
		if value := r.Header.Get(name); value != "" {
			outReq.Header.Set(name, value)
		}
	}
	origin := rl.upstream.Scheme + "://" + rl.upstream.Host
	outReq.Header.Set("User-Agent", browserUserAgent)
	outReq.Header.Set("Origin", origin)
	outReq.Header.Set("Referer", origin+"/")

	resp, err := rl.client.Do(outReq)
	if err != nil {
		rl.relayError(w, err)
		return
	}
	defer resp.Body.Close()

	for name, values := range resp.Header {
		// Hop-by-hop headers do not survive the relay.
		if name == "Connection" || name == "Transfer-Encoding" {
			continue
		}
		w.Header()[name] = values
	}
	writeCORS(w.Header())
	w.WriteHeader(resp.StatusCode)
	if _, err := io.Copy(w, resp.Body); err != nil {
		slog.Warn("Failed to relay upstream body, client might have disconnected", "error", err)
	}
}

// targetURL maps the inbound path onto the upstream origin, preserving the
// query string unchanged.
func (rl *Relay) targetURL(r *http.Request) string {
	path := strings.TrimPrefix(r.URL.Path, rl.prefix)
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	target := rl.upstream.Scheme + "://" + rl.upstream.Host + path
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	return target
}

// outboundBody returns the body to forward: none for GET/HEAD or empty
// bodies, the raw inbound stream otherwise.
func (rl *Relay) outboundBody(r *http.Request) io.Reader {
	if r.Method == http.MethodGet || r.Method == http.MethodHead {
		return nil
	}
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	return r.Body
}

// relayError converts an upstream connection failure into a local JSON error
// response instead of letting the handler panic or hang.
func (rl *Relay) relayError(w http.ResponseWriter, err error) {
	slog.Warn("Proxy request failed", "error", err)
	writeCORS(w.Header())
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusInternalServerError)
	payload := map[string]string{
		"error":   "Failed to proxy request",
		"details": err.Error(),
	}
	if encodeErr := json.NewEncoder(w).Encode(payload); encodeErr != nil {
		slog.Error("Failed to write proxy error response", "error", encodeErr)
	}
}

func writeCORS(h http.Header) {
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
	h.Set("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ", "))
}
