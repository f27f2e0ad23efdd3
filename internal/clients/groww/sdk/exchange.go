package sdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

// exchangeRequest is the body of the token exchange call. Exactly one of
// TOTP/Secret is populated per attempt.
type exchangeRequest struct {
	KeyType string `json:"key_type"`
	TOTP    string `json:"totp,omitempty"`
	Secret  string `json:"secret,omitempty"`
}

type exchangeResponse struct {
	Token string `json:"token"`
}

// ExchangeToken exchanges an API key plus a second factor for an access token.
// When totp is non-empty it is sent and secret is ignored; otherwise secret is
// sent. The API key authenticates the call itself.
func ExchangeToken(ctx context.Context, apiKey, totp, secret string, log zerolog.Logger) (string, error) {
	if apiKey == "" {
		return "", fmt.Errorf("api key is required")
	}

	reqBody := exchangeRequest{}
	switch {
	case totp != "":
		reqBody.KeyType = "totp"
		reqBody.TOTP = totp
	case secret != "":
		reqBody.KeyType = "approval"
		reqBody.Secret = secret
	default:
		return "", fmt.Errorf("either totp or secret is required")
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal exchange request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		exchangeURL+"/v1/token/api/access", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("exchange request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read exchange response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		bodyStr := string(raw)
		if len(bodyStr) > 500 {
			bodyStr = bodyStr[:500] + "..."
		}
		log.Error().
			Int("status_code", resp.StatusCode).
			Str("response_body", bodyStr).
			Msg("Token exchange returned non-200 status")
		return "", fmt.Errorf("token exchange returned status %d", resp.StatusCode)
	}

	var out exchangeResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("failed to parse exchange response: %w", err)
	}
	if out.Token == "" {
		return "", fmt.Errorf("token exchange returned an empty token")
	}
	return out.Token, nil
}

// exchangeURL is a package variable so tests can point the exchange at a stub.
var exchangeURL = defaultBaseURL
