package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// expirySkew refreshes tokens slightly before they actually expire so a
// long-running ingestion pass never starts with a near-dead credential.
const expirySkew = 60 * time.Second

// ClientCredentialsTokenSource obtains bearer tokens through the OAuth2
// client-credentials grant and caches them until close to expiry. A failed
// refresh surfaces as an error so the run fails fast instead of proceeding
// with a stale token.
type ClientCredentialsTokenSource struct {
	httpClient   *http.Client
	tokenURL     string
	clientID     string
	clientSecret string
	scope        string

	mu        sync.Mutex
	token     string
	expiresAt time.Time
}

func NewClientCredentialsTokenSource(tokenURL, clientID, clientSecret, scope string) *ClientCredentialsTokenSource {
	return &ClientCredentialsTokenSource{
		httpClient:   &http.Client{Timeout: 15 * time.Second},
		tokenURL:     tokenURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		scope:        scope,
	}
}

func (s *ClientCredentialsTokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && time.Now().Before(s.expiresAt.Add(-expirySkew)) {
		return s.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {s.clientID},
		"client_secret": {s.clientSecret},
		"scope":         {s.scope},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token refresh request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read token response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d: %s", resp.StatusCode, body)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return "", fmt.Errorf("token endpoint returned no access token")
	}

	s.token = payload.AccessToken
	s.expiresAt = time.Now().Add(time.Duration(payload.ExpiresIn) * time.Second)

	log.WithField("expiresIn", payload.ExpiresIn).Debug("Access token refreshed")
	return s.token, nil
}
