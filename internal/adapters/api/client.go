// Package api is the single HTTP entry point to the wagering backend.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bnema/chesswager-cli/internal/ports"
	"github.com/google/uuid"
)

const maxResponseBytes = 1 << 20

var ErrInvalidResponse = errors.New("invalid api response")

// TokenSource returns the current credential, or "" when anonymous.
type TokenSource func() string

// Error is a normalized non-2xx response.
type Error struct {
	Op        string
	Status    int
	Message   string
	RequestID string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

func (e *Error) Forbidden() bool {
	return e.Status == http.StatusForbidden
}

var (
	_ ports.AuthAPI         = (*Client)(nil)
	_ ports.NotificationAPI = (*Client)(nil)
	_ ports.BalanceAPI      = (*Client)(nil)
	_ ports.ChessLinkAPI    = (*Client)(nil)
	_ ports.BetAPI          = (*Client)(nil)
	_ ports.AdminAPI        = (*Client)(nil)
)

type Client struct {
	baseURL    string
	httpClient *http.Client
	token      TokenSource
}

func NewClient(baseURL string, httpClient *http.Client, token TokenSource) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if token == nil {
		token = func() string { return "" }
	}

	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: httpClient,
		token:      token,
	}
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

type validator interface {
	validate() error
}

// do sends body as JSON, decodes the response into out and validates it.
// Transport errors are returned untouched; everything else is normalized.
func (c *Client) do(ctx context.Context, op, method, path string, body any, out validator) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		reader = bytes.NewReader(payload)
	}

	request, err := http.NewRequestWithContext(ctx, method, joinURL(c.baseURL, path), reader)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", op, err)
	}

	requestID := uuid.NewString()
	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")
	request.Header.Set("X-Request-Id", requestID)
	if credential := strings.TrimSpace(c.token()); credential != "" {
		request.Header.Set("Authorization", "Bearer "+credential)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return err
	}
	defer func() { _ = response.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", op, err)
	}

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		return &Error{
			Op:        op,
			Status:    response.StatusCode,
			Message:   errorMessage(op, data),
			RequestID: requestID,
		}
	}

	if out == nil {
		if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && !json.Valid(trimmed) {
			return fmt.Errorf("%s: %w: body is not json", op, ErrInvalidResponse)
		}
		return nil
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return fmt.Errorf("%s: %w: empty body", op, ErrInvalidResponse)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidResponse, err)
	}
	if err := out.validate(); err != nil {
		return fmt.Errorf("%s: %w: %v", op, ErrInvalidResponse, err)
	}

	return nil
}

func errorMessage(op string, data []byte) string {
	fallback := op + " failed"

	var payload struct {
		Message json.RawMessage `json:"message"`
		Error   json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return fallback
	}

	for _, raw := range []json.RawMessage{payload.Message, payload.Error} {
		if message := rawMessageText(raw); message != "" {
			return message
		}
	}

	return fallback
}

// rawMessageText accepts a string or a list of strings.
func rawMessageText(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var single string
	if err := json.Unmarshal(raw, &single); err == nil {
		return strings.TrimSpace(single)
	}

	var many []string
	if err := json.Unmarshal(raw, &many); err == nil {
		parts := make([]string, 0, len(many))
		for _, part := range many {
			if trimmed := strings.TrimSpace(part); trimmed != "" {
				parts = append(parts, trimmed)
			}
		}
		return strings.Join(parts, "; ")
	}

	return ""
}

func joinURL(baseURL, path string) string {
	path = strings.TrimLeft(path, "/")
	for strings.Contains(path, "//") {
		path = strings.ReplaceAll(path, "//", "/")
	}

	return strings.TrimRight(baseURL, "/") + "/" + path
}
