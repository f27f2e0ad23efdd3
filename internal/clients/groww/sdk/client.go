// Package sdk provides the low-level Groww API client implementation.
package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://api.groww.in"

	// Groww allows roughly 10 requests per second per token; stay under it.
	requestsPerSecond = 8
	requestBurst      = 8
)

// Client represents the Groww API client. All requests carry the access token
// as a bearer credential and pass through a shared rate limiter.
type Client struct {
	accessToken string
	baseURL     string
	httpClient  *http.Client
	limiter     *rate.Limiter
	log         zerolog.Logger
}

// NewClient creates a new Groww API client for the given access token.
// The token is not validated here; the first request surfaces auth errors.
func NewClient(accessToken string, log zerolog.Logger) *Client {
	return &Client{
		accessToken: accessToken,
		baseURL:     defaultBaseURL,
		httpClient:  &http.Client{Timeout: 10 * time.Second},
		limiter:     rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
		log:         log.With().Str("component", "groww-sdk").Logger(),
	}
}

// envelope is the standard Groww API response wrapper.
type envelope struct {
	Status  string          `json:"status"`
	Payload json.RawMessage `json:"payload"`
	Error   *apiError       `json:"error"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// get performs an authenticated GET request and decodes the payload into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs an authenticated POST request with a JSON body and decodes the
// payload into out.
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	if c.accessToken == "" {
		return fmt.Errorf("access token is not set")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait: %w", err)
	}

	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	req.Header.Set("X-API-VERSION", "1.0")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyStr := string(raw)
		if len(bodyStr) > 500 {
			bodyStr = bodyStr[:500] + "..."
		}
		c.log.Error().
			Int("status_code", resp.StatusCode).
			Str("response_body", bodyStr).
			Str("url", c.baseURL+path).
			Msg("API returned non-200 status")
		return fmt.Errorf("API returned status %d: %s", resp.StatusCode, resp.Status)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	if env.Error != nil && env.Error.Message != "" {
		return fmt.Errorf("API error %s: %s", env.Error.Code, env.Error.Message)
	}

	if env.Status != "" && env.Status != "SUCCESS" {
		return fmt.Errorf("API returned status %q", env.Status)
	}

	if out == nil {
		return nil
	}

	// Some endpoints answer without the envelope; fall back to the raw body.
	payload := env.Payload
	if len(payload) == 0 {
		payload = raw
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return fmt.Errorf("failed to decode payload: %w", err)
	}
	return nil
}
