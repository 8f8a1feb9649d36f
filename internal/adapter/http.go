package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-note-sync/internal/logger"
	"github.com/MKhiriev/go-note-sync/internal/utils"
	"github.com/MKhiriev/go-note-sync/models"
)

const (
	pushPath   = "/api/sync/push"
	pullPath   = "/api/sync/pull"
	healthPath = "/api/health"

	// HashHeader carries the hex HMAC-SHA256 of the request body.
	HashHeader = "HashSHA256"
)

// HTTPOptions configures [NewHTTPTransport].
type HTTPOptions struct {
	ServerURL string
	Timeout   time.Duration
	HashKey   string
	Token     string
}

// HTTPTransport implements [Transport] and [HealthChecker] over HTTP.
type HTTPTransport struct {
	client *utils.HTTPClient

	hashKey string
	token   string

	logger *logger.Logger
}

// NewHTTPTransport constructs an HTTP/REST implementation of [Transport].
// It normalises and validates opts.ServerURL and configures the resty client
// with the resolved base URL and request timeout.
//
// Returns [ErrInvalidBaseURL] (wrapped) if the URL is empty or cannot be
// parsed.
func NewHTTPTransport(opts HTTPOptions, logger *logger.Logger) (*HTTPTransport, error) {
	baseURL, err := normalizeBaseURL(opts.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBaseURL, err)
	}

	return &HTTPTransport{
		client:  utils.NewHTTPClient(baseURL, opts.Timeout),
		hashKey: opts.HashKey,
		token:   strings.TrimSpace(opts.Token),
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Push implements [Transport]. It POSTs the batch to POST /api/sync/push.
func (h *HTTPTransport) Push(ctx context.Context, req models.PushRequest) (models.PushResponse, error) {
	var out models.PushResponse
	if err := h.post(ctx, pushPath, req, &out); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*HTTPTransport.Push").
			Int("changes", len(req.Changes)).
			Msg("push request failed")
		return models.PushResponse{}, err
	}
	return out, nil
}

// Pull implements [Transport]. It POSTs the cursor to POST /api/sync/pull.
func (h *HTTPTransport) Pull(ctx context.Context, req models.PullRequest) (models.PullResponse, error) {
	var out models.PullResponse
	if err := h.post(ctx, pullPath, req, &out); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*HTTPTransport.Pull").
			Int64("since_sequence", req.SinceSequence).
			Msg("pull request failed")
		return models.PullResponse{}, err
	}
	return out, nil
}

// Health implements [HealthChecker] with GET /api/health.
func (h *HTTPTransport) Health(ctx context.Context) error {
	resp, err := h.request(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("%w: health request: %w", ErrServerUnavailable, err)
	}
	return mapHTTPError(resp)
}

func (h *HTTPTransport) post(ctx context.Context, path string, body, result any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	req := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	if h.hashKey != "" {
		req.SetHeader(HashHeader, utils.HashString(string(payload), h.hashKey))
	}

	resp, err := req.Post(path)
	if err != nil {
		return fmt.Errorf("%w: %s request: %w", ErrServerUnavailable, path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), result); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}
	return nil
}

func (h *HTTPTransport) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}

var (
	_ Transport     = (*HTTPTransport)(nil)
	_ HealthChecker = (*HTTPTransport)(nil)
)
