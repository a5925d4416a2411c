package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/aalvaropc/seek/internal/domain"
)

// Remote runs checks against a `seek serve` instance instead of locally.
type Remote struct {
	base   *url.URL
	client *http.Client
	cfg    Config
}

// RemoteOption allows configuring a Remote.
type RemoteOption func(*Remote)

// WithClient sets a custom HTTP client.
func WithClient(client *http.Client) RemoteOption {
	return func(r *Remote) { r.client = client }
}

// WithConfig replaces the default transport settings.
func WithConfig(cfg Config) RemoteOption {
	return func(r *Remote) {
		r.cfg = cfg
		r.client = New(cfg)
	}
}

// NewRemote validates baseURL (scheme and host required).
func NewRemote(baseURL string, opts ...RemoteOption) (*Remote, error) {
	u, err := url.Parse(strings.TrimRight(strings.TrimSpace(baseURL), "/"))
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, domain.InvalidInput("httpclient.remote", "remote %q must be an http(s) URL", baseURL)
	}

	cfg := DefaultConfig()
	r := &Remote{base: u, client: New(cfg), cfg: cfg}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

type checkBody struct {
	Values  []int `json:"values"`
	Targets []int `json:"targets"`
}

// Execute posts to /check; it satisfies ports.TargetChecker.
func (r *Remote) Execute(ctx context.Context, values domain.Sequence, targets []int) ([]domain.SearchResult, error) {
	if values == nil {
		values = domain.Sequence{}
	}
	payload, err := json.Marshal(checkBody{Values: values, Targets: targets})
	if err != nil {
		return nil, &domain.OpError{Op: "httpclient.check", Kind: domain.KindInvalidInput, Err: err}
	}

	var out []domain.SearchResult
	if err := r.do(ctx, http.MethodPost, "/check", payload, &out); err != nil {
		return nil, err
	}
	if len(out) != len(targets) {
		return nil, &domain.OpError{
			Op:   "httpclient.check",
			Kind: domain.KindExecution,
			Err:  fmt.Errorf("got %d results for %d targets: %w", len(out), len(targets), domain.ErrExecution),
		}
	}
	return out, nil
}

// Health returns nil when GET /health answers 200.
func (r *Remote) Health(ctx context.Context) error {
	return r.do(ctx, http.MethodGet, "/health", nil, nil)
}

func (r *Remote) do(ctx context.Context, method, path string, body []byte, dst any) error {
	op := "httpclient." + strings.TrimPrefix(path, "/")

	var rd io.Reader
	if body != nil {
		rd = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, r.base.JoinPath(path).String(), rd)
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, r.cfg.MaxResponseBytes))
	if err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(op, resp.StatusCode, raw)
	}
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &domain.OpError{Op: op, Kind: domain.KindExecution, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

// statusError maps the server's {"error": ...} body onto a domain error.
func statusError(op string, status int, raw []byte) error {
	var body struct {
		Error string `json:"error"`
	}
	msg := strings.TrimSpace(string(raw))
	if json.Unmarshal(raw, &body) == nil && body.Error != "" {
		msg = body.Error
	}
	if msg == "" {
		msg = http.StatusText(status)
	}

	if status == http.StatusBadRequest {
		return &domain.OpError{Op: op, Kind: domain.KindInvalidInput, Err: fmt.Errorf("%s: %w", msg, domain.ErrInvalidInput)}
	}
	return &domain.OpError{
		Op:   op,
		Kind: domain.KindExecution,
		Err:  fmt.Errorf("status %d: %s: %w", status, msg, domain.ErrExecution),
	}
}
