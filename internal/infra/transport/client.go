// Package transport implements the storefront API contracts over HTTP.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"storefront/config"
	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ClientParams holds dependencies for the HTTP client, injected by Fx
type ClientParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client `optional:"true"`
}

// Client sends one request per call to the configured base address.
type Client struct {
	baseURL     string
	signOutPath string
	httpClient  *http.Client
	logger      *slog.Logger
}

// NewClient creates a new storefront API client
func NewClient(params ClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: params.Config.API.Timeout,
		}
	}

	return &Client{
		baseURL:     strings.TrimRight(params.Config.API.BaseURL, "/"),
		signOutPath: params.Config.API.SignOutPath,
		httpClient:  httpClient,
		logger:      params.Logger,
	}
}

type call struct {
	method      string
	path        string
	query       url.Values
	accessToken string
	body        io.Reader
	contentType string
}

func jsonCall(method, path, accessToken string, payload any) (call, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return call{}, errors.WithStack(err)
	}

	return call{
		method:      method,
		path:        path,
		accessToken: accessToken,
		body:        bytes.NewReader(body),
		contentType: "application/json",
	}, nil
}

// do sends the request and decodes a 2xx body into out (skipped when out is nil).
// Non-2xx responses come back as *domainerrors.StoreError; network and decode
// failures are returned wrapped so the caller's fallback message applies.
func (c *Client) do(ctx context.Context, cl call, out any) error {
	endpoint := c.baseURL + cl.path
	if len(cl.query) > 0 {
		endpoint += "?" + cl.query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, cl.method, endpoint, cl.body)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if cl.contentType != "" {
		req.Header.Set("Content-Type", cl.contentType)
	}
	if cl.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+cl.accessToken)
	}

	requestID := deliverycontext.RequestID(ctx)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	req.Header.Set(deliverycontext.HeaderXRequestID, requestID)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("Storefront API request failed",
			slog.String("method", cl.method),
			slog.String("path", cl.path),
			slog.String("request_id", requestID),
			slog.Any("error", err),
		)

		return errors.Wrapf(err, "%s %s", cl.method, cl.path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s %s response", cl.method, cl.path)
	}

	c.logger.Debug("Storefront API request",
		slog.String("method", cl.method),
		slog.String("path", cl.path),
		slog.Int("status", resp.StatusCode),
		slog.Duration("duration", time.Since(start)),
		slog.String("request_id", requestID),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return domainerrors.FromResponse(resp.StatusCode, body)
	}

	if out == nil {
		return nil
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.Wrapf(err, "failed to decode %s %s response", cl.method, cl.path)
	}

	return nil
}

// decodeList accepts either a bare JSON array or a paginated envelope.
func decodeList[T any](raw json.RawMessage) ([]T, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '{' {
		var envelope struct {
			Results []T `json:"results"`
		}
		if err := json.Unmarshal(trimmed, &envelope); err != nil {
			return nil, errors.WithStack(err)
		}

		return envelope.Results, nil
	}

	var items []T
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, errors.WithStack(err)
	}

	return items, nil
}

func getList[T any](ctx context.Context, c *Client, cl call) ([]T, error) {
	var raw json.RawMessage
	if err := c.do(ctx, cl, &raw); err != nil {
		return nil, err
	}

	items, err := decodeList[T](raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to decode %s %s response", cl.method, cl.path)
	}

	return items, nil
}
