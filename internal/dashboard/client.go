package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jalrakshak/jalrakshak/internal/audio"
	"github.com/jalrakshak/jalrakshak/internal/httputil"
	"github.com/jalrakshak/jalrakshak/internal/risk"
	"github.com/jalrakshak/jalrakshak/internal/satellite"
)

// HTTPBackend talks to a running JalRakshak server.
type HTTPBackend struct {
	httpClient *http.Client
	baseURL    string
}

// NewHTTPBackend creates a backend for the server at baseURL.
func NewHTTPBackend(baseURL string) *HTTPBackend {
	return &HTTPBackend{
		httpClient: httputil.NewClient(),
		baseURL:    strings.TrimRight(baseURL, "/"),
	}
}

// WithHTTPClient replaces the underlying client.
func (b *HTTPBackend) WithHTTPClient(c *http.Client) *HTTPBackend {
	b.httpClient = c
	return b
}

// FloodRisk fetches the report for a location.
func (b *HTTPBackend) FloodRisk(ctx context.Context, state, district string) (risk.Record, error) {
	var rec risk.Record
	body := map[string]string{"state": state, "district": district}
	if err := b.postJSON(ctx, "/api/flood-risk", body, &rec); err != nil {
		return risk.Record{}, err
	}
	return rec, nil
}

// AnalyzeSatellite runs the mock SAR inference.
func (b *HTTPBackend) AnalyzeSatellite(ctx context.Context) (satellite.Result, error) {
	var res satellite.Result
	if err := b.postJSON(ctx, "/api/analyze-satellite", nil, &res); err != nil {
		return satellite.Result{}, err
	}
	return res, nil
}

// GenerateAudio fetches the alert clip.
func (b *HTTPBackend) GenerateAudio(ctx context.Context, alertText, lang string) ([]byte, error) {
	resp, err := b.post(ctx, "/api/generate-audio", audio.Request{AlertText: alertText, Lang: lang})
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read audio: %v", ErrNetwork, err)
	}
	return data, nil
}

func (b *HTTPBackend) postJSON(ctx context.Context, path string, body, out any) error {
	resp, err := b.post(ctx, path, body)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s: %v", ErrNetwork, path, err)
	}
	return nil
}

// post sends body as JSON, or an empty body when body is nil. Any
// non-200 response is a network failure.
func (b *HTTPBackend) post(ctx context.Context, path string, body any) (*http.Response, error) {
	var r io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		r = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.baseURL+path, r)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", httputil.UserAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNetwork, path, err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s: unexpected status: %d", ErrNetwork, path, resp.StatusCode)
	}
	return resp, nil
}
