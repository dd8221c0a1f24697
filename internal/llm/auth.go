// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// tokenExpirySlack renews the access token this long before its stated
// expiry so an in-flight generation never straddles the boundary.
const tokenExpirySlack = 30 * time.Second

// accessToken is a cached OAuth bearer token.
type accessToken struct {
	value     string
	expiresAt time.Time
}

func (t accessToken) valid(now time.Time) bool {
	return t.value != "" && now.Before(t.expiresAt.Add(-tokenExpirySlack))
}

// oauthResponse is the token-exchange response body. ExpiresAt is
// milliseconds since the Unix epoch.
type oauthResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresAt   int64  `json:"expires_at"`
}

// bearerToken returns a cached access token, performing the OAuth exchange
// when the cache is empty or near expiry. The credential itself resolves
// through the layered chain; its absence surfaces as ErrCredentialsMissing
// before any network traffic.
func (c *Client) bearerToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token.valid(time.Now()) {
		return c.token.value, nil
	}

	creds := resolveString("",
		fromValue(c.settings.Credentials),
		fromMap(c.settings.Secrets, "gigachat-credentials"),
		fromEnv("GIGACHAT_CREDENTIALS"),
	)
	if creds == "" {
		return "", ErrCredentialsMissing
	}

	scope := resolveString(defaultScope,
		fromMap(c.settings.Secrets, "gigachat-scope"),
		fromEnv("GIGACHAT_SCOPE"),
		fromValue(c.settings.Scope),
	)

	token, err := exchangeToken(ctx, c.httpClient, c.oauthURL(), creds, scope)
	if err != nil {
		return "", err
	}
	c.token = token

	log.Debug().Str("scope", scope).Time("expires_at", token.expiresAt).Msg("access token refreshed")
	return token.value, nil
}

// exchangeToken posts the base64 credential and scope to the OAuth endpoint
// and returns the resulting bearer token. One attempt, no retry.
func exchangeToken(ctx context.Context, client *http.Client, oauthURL, creds, scope string) (accessToken, error) {
	form := url.Values{"scope": {scope}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, oauthURL, strings.NewReader(form.Encode()))
	if err != nil {
		return accessToken{}, &TransportError{Err: fmt.Errorf("building oauth request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("RqUID", uuid.NewString())
	req.Header.Set("Authorization", "Basic "+creds)

	resp, err := client.Do(req)
	if err != nil {
		return accessToken{}, &TransportError{Err: fmt.Errorf("oauth exchange: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return accessToken{}, &TransportError{Err: fmt.Errorf("reading oauth response: %w", err)}
	}
	if resp.StatusCode != http.StatusOK {
		return accessToken{}, &TransportError{Err: fmt.Errorf("oauth status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	var parsed oauthResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return accessToken{}, &TransportError{Err: fmt.Errorf("decoding oauth response: %w", err)}
	}
	if parsed.AccessToken == "" {
		return accessToken{}, &TransportError{Err: fmt.Errorf("oauth response contains no access token")}
	}

	return accessToken{
		value:     parsed.AccessToken,
		expiresAt: time.UnixMilli(parsed.ExpiresAt),
	}, nil
}
