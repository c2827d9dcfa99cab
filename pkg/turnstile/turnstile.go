// Package turnstile verifies Cloudflare Turnstile tokens against the
// siteverify API. The secret key stays server-side; clients only ever see
// the public site key.
package turnstile

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"viang-solution-backend/pkg/logger"
)

const defaultEndpoint = "https://challenges.cloudflare.com/turnstile/v0/siteverify"

// verifyTimeout bounds the upstream call so a slow siteverify endpoint
// cannot stall submissions; on timeout the token is treated as invalid.
const verifyTimeout = 5 * time.Second

// Verifier calls the Turnstile siteverify endpoint.
type Verifier struct {
	secret   string
	endpoint string
	client   *http.Client
}

// New creates a verifier with the server-held secret key. An empty secret
// disables verification entirely (every token is accepted) - intended for
// local development only.
func New(secret string) *Verifier {
	return &Verifier{
		secret:   secret,
		endpoint: defaultEndpoint,
		client:   &http.Client{Timeout: verifyTimeout},
	}
}

// Enabled reports whether server-side verification is active.
func (v *Verifier) Enabled() bool {
	return v.secret != ""
}

// siteverifyResponse mirrors the Cloudflare siteverify reply.
type siteverifyResponse struct {
	Success     bool     `json:"success"`
	ChallengeTS string   `json:"challenge_ts"`
	Hostname    string   `json:"hostname"`
	ErrorCodes  []string `json:"error-codes"`
}

// Verify resolves to true only when the upstream explicitly accepts the
// token. Empty tokens, transport errors, timeouts and malformed replies all
// resolve to false; the cause is logged for diagnostics.
func (v *Verifier) Verify(ctx context.Context, token string) bool {
	if !v.Enabled() {
		return true
	}
	if token == "" {
		return false
	}

	form := url.Values{
		"secret":   {v.secret},
		"response": {token},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		logger.Log.Error("turnstile: building verify request failed", "error", err)
		return false
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := v.client.Do(req)
	if err != nil {
		logger.Log.Error("turnstile: verify call failed", "error", err)
		return false
	}
	defer resp.Body.Close()

	var out siteverifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		logger.Log.Error("turnstile: decoding verify response failed", "error", err)
		return false
	}

	if !out.Success {
		logger.Log.Warn("turnstile: token rejected", "error_codes", out.ErrorCodes)
	}
	return out.Success
}
