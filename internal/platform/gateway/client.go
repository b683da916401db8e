// Package gateway is the single point of outbound HTTP calls to the
// hospital API. It attaches the bearer credential read from an injected
// accessor, unwraps the uniform response envelope, and normalizes
// transport and HTTP failures into APIError values.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// CredentialSource supplies the current bearer token, or "" when no session
// is established. The session store exposes a matching method; injecting it
// here keeps the credential out of any global client state.
type CredentialSource func() string

// envelope is the uniform wrapper every API response carries.
type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message,omitempty"`
	Success bool            `json:"success"`
}

// errorBody is the shape of an error response payload. The backend reports
// failures in either a detail or a message field.
type errorBody struct {
	Detail  string `json:"detail"`
	Message string `json:"message"`
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Client) { g.httpClient = c }
}

// Client issues JSON requests against a single base endpoint.
type Client struct {
	baseURL    string
	credential CredentialSource
	httpClient *http.Client
	logger     zerolog.Logger
}

// NewClient creates a gateway client for the given base URL. credential may
// not be nil; use a source returning "" for unauthenticated use.
func NewClient(baseURL string, credential CredentialSource, logger zerolog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		credential: credential,
		httpClient: http.DefaultClient,
		logger:     logger,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// GetJSON issues GET <base><path> and decodes the envelope data into out.
func (c *Client) GetJSON(ctx context.Context, path string, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// PostJSON issues POST with a JSON body and decodes the envelope data into
// out. out may be nil when the caller discards the payload.
func (c *Client) PostJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// PutJSON issues PUT with a JSON body and decodes the envelope data into out.
func (c *Client) PutJSON(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues DELETE. Success is signaled by the absence of an error.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if credential := c.credential(); credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("api request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &APIError{StatusCode: resp.StatusCode, err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil {
			apiErr.Detail = eb.Detail
			apiErr.Message = eb.Message
		}
		c.logger.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("api error response")
		return apiErr
	}

	if resp.StatusCode == http.StatusNoContent || len(raw) == 0 {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return &APIError{StatusCode: resp.StatusCode, err: fmt.Errorf("decode envelope: %w", err)}
	}
	if !env.Success {
		return &APIError{StatusCode: resp.StatusCode, Message: env.Message}
	}
	if out == nil {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return &APIError{StatusCode: resp.StatusCode, err: fmt.Errorf("decode data: %w", err)}
	}
	return nil
}
