package port

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"portmcp/internal/domain"
	"portmcp/internal/infra/telemetry"
)

// Credentials is the Port client-credential pair.
type Credentials struct {
	ClientID     string
	ClientSecret string
}

// tokenSource exchanges client credentials for a bearer token and
// caches it for domain.TokenLifetime. The mutex serializes refresh so
// concurrent callers on an expired cache trigger a single request.
type tokenSource struct {
	creds   Credentials
	baseURL string
	http    *http.Client
	now     func() time.Time
	logger  *zap.Logger
	metrics telemetry.Metrics

	mu     sync.Mutex
	token  string
	expiry time.Time
}

type accessTokenRequest struct {
	ClientID     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
}

type accessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Token returns the cached token while it is still within its validity
// window, refreshing it from the auth endpoint otherwise.
func (s *tokenSource) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && s.now().Before(s.expiry) {
		return s.token, nil
	}
	if s.creds.ClientID == "" || s.creds.ClientSecret == "" {
		return "", domain.E(domain.CodeConfiguration, "port.token",
			"PORT_CLIENT_ID and PORT_CLIENT_SECRET must be set", nil)
	}

	token, err := s.fetch(ctx)
	s.metrics.ObserveTokenRefresh(err)
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiry = s.now().Add(domain.TokenLifetime)
	s.logger.Debug("access token refreshed", zap.Time("expiry", s.expiry))
	return s.token, nil
}

func (s *tokenSource) fetch(ctx context.Context) (string, error) {
	payload, err := json.Marshal(accessTokenRequest{
		ClientID:     s.creds.ClientID,
		ClientSecret: s.creds.ClientSecret,
	})
	if err != nil {
		return "", domain.E(domain.CodeInternal, "port.token", "", err)
	}

	endpoint := s.baseURL + "/v1/auth/access_token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", domain.E(domain.CodeInternal, "port.token", "", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", domain.E(domain.CodeUnauthenticated, "port.token",
			"auth endpoint unreachable", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", domain.E(domain.CodeUnauthenticated, "port.token",
			fmt.Sprintf("auth endpoint rejected credentials: %s: %s", resp.Status, bytes.TrimSpace(body)), nil)
	}

	var decoded accessTokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", domain.E(domain.CodeUnauthenticated, "port.token",
			"malformed auth response", err)
	}
	if decoded.AccessToken == "" {
		return "", domain.E(domain.CodeUnauthenticated, "port.token",
			"auth response contained no access token", nil)
	}
	return decoded.AccessToken, nil
}
