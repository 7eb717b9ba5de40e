// Package port is the authenticated HTTP client for the Port
// software-catalog API. It owns token acquisition and translates
// upstream failures into the domain error taxonomy.
package port

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"portmcp/internal/domain"
	"portmcp/internal/infra/telemetry"
)

// Config configures the Port API client. Zero values fall back to
// production defaults; Now and HTTPClient exist for tests.
type Config struct {
	BaseURL     string
	Credentials Credentials
	HTTPClient  *http.Client
	Now         func() time.Time
}

// Client issues bearer-authenticated requests against the Port API.
type Client struct {
	baseURL string
	http    *http.Client
	tokens  *tokenSource
	logger  *zap.Logger
	metrics telemetry.Metrics
}

func NewClient(cfg Config, logger *zap.Logger, metrics telemetry.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = domain.DefaultAPIBaseURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: domain.DefaultHTTPTimeout}
	}
	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	logger = logger.Named("port")
	return &Client{
		baseURL: baseURL,
		http:    httpClient,
		logger:  logger,
		metrics: metrics,
		tokens: &tokenSource{
			creds:   cfg.Credentials,
			baseURL: baseURL,
			http:    httpClient,
			now:     now,
			logger:  logger,
			metrics: metrics,
		},
	}
}

// BaseURL reports the resolved upstream base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// do issues an authenticated request to baseURL + /v1 + path and
// returns the raw JSON body on a 2xx response.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (json.RawMessage, error) {
	op := "port." + method + " " + path

	token, err := c.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	endpoint := c.baseURL + "/v1" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, domain.E(domain.CodeInternal, op, "", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, domain.E(domain.CodeInternal, op, "", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Warn("upstream request failed", zap.String("endpoint", path), zap.Error(err))
		return nil, domain.E(domain.CodeTransport, op, "", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.ObserveRequest(path, resp.StatusCode, elapsed)
	if err != nil {
		return nil, domain.E(domain.CodeTransport, op, "reading response body", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.logger.Warn("upstream returned error status",
			zap.String("endpoint", path),
			zap.Int("status", resp.StatusCode),
			zap.Duration("elapsed", elapsed),
		)
		return nil, domain.E(domain.CodeUpstream, op,
			fmt.Sprintf("upstream status %d: %s", resp.StatusCode, truncate(raw, 2048)), nil)
	}

	c.logger.Debug("upstream request completed",
		zap.String("endpoint", path),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", elapsed),
	)
	return raw, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, path, query, nil)
}

// ListEntities fetches entities, scoped to a blueprint when given. The
// limit defaults to domain.DefaultEntityLimit and is capped at
// domain.MaxEntityLimit before the request goes out.
func (c *Client) ListEntities(ctx context.Context, blueprint, search string, limit int) ([]domain.Entity, error) {
	if limit <= 0 {
		limit = domain.DefaultEntityLimit
	}
	if limit > domain.MaxEntityLimit {
		limit = domain.MaxEntityLimit
	}

	query := url.Values{}
	query.Set("limit", strconv.Itoa(limit))
	if search != "" {
		query.Set("search", search)
	}

	path := "/entities"
	if blueprint != "" {
		path = "/blueprints/" + url.PathEscape(blueprint) + "/entities"
	}

	raw, err := c.get(ctx, path, query)
	if err != nil {
		return nil, err
	}
	return decodeEntityList(raw)
}

// GetEntity fetches a single entity by blueprint and identifier.
func (c *Client) GetEntity(ctx context.Context, blueprint, entity string) (domain.Entity, error) {
	path := "/blueprints/" + url.PathEscape(blueprint) + "/entities/" + url.PathEscape(entity)
	raw, err := c.get(ctx, path, nil)
	if err != nil {
		return domain.Entity{}, err
	}
	return decodeEntity(raw)
}

// SearchEntities runs a free-text search across the catalog, optionally
// scoped to a blueprint. Only the first page of matches is returned.
func (c *Client) SearchEntities(ctx context.Context, search, blueprint string) ([]domain.Entity, error) {
	query := url.Values{}
	query.Set("search", search)
	if blueprint != "" {
		query.Set("blueprint", blueprint)
	}
	raw, err := c.get(ctx, "/entities", query)
	if err != nil {
		return nil, err
	}
	return decodeEntityList(raw)
}

// ListBlueprints fetches blueprint definitions, filtered by search when
// given.
func (c *Client) ListBlueprints(ctx context.Context, search string) ([]domain.Blueprint, error) {
	var query url.Values
	if search != "" {
		query = url.Values{}
		query.Set("search", search)
	}
	raw, err := c.get(ctx, "/blueprints", query)
	if err != nil {
		return nil, err
	}
	return decodeBlueprintList(raw)
}

// ListActions fetches self-service actions, scoped to a blueprint when
// given.
func (c *Client) ListActions(ctx context.Context, blueprint string) ([]domain.Action, error) {
	path := "/actions"
	if blueprint != "" {
		path = "/blueprints/" + url.PathEscape(blueprint) + "/actions"
	}
	raw, err := c.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	return decodeActionList(raw)
}

// ScorecardResults fetches scorecard evaluation payloads. The result is
// passed through unparsed beyond its top-level shape. Entity scoping
// only applies when a scorecard is named.
func (c *Client) ScorecardResults(ctx context.Context, blueprint, scorecard, entity string) (json.RawMessage, error) {
	path := "/blueprints/" + url.PathEscape(blueprint) + "/scorecards"
	if scorecard != "" {
		path += "/" + url.PathEscape(scorecard)
		if entity != "" {
			path += "/entities/" + url.PathEscape(entity)
		}
	}
	return c.get(ctx, path, nil)
}

func truncate(raw []byte, limit int) string {
	body := strings.TrimSpace(string(raw))
	if len(body) > limit {
		return body[:limit] + "..."
	}
	return body
}
