package port

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"portmcp/internal/domain"
)

// fakeUpstream serves the auth endpoint plus whatever respond does for
// catalog paths, recording every request it sees.
type fakeUpstream struct {
	server  *httptest.Server
	respond http.HandlerFunc

	mu        sync.Mutex
	authCalls int
	paths     []string
	queries   []url.Values
	headers   []http.Header
}

func newFakeUpstream(t *testing.T, respond http.HandlerFunc) *fakeUpstream {
	t.Helper()
	u := &fakeUpstream{respond: respond}
	u.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/auth/access_token" {
			u.mu.Lock()
			u.authCalls++
			n := u.authCalls
			u.mu.Unlock()
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprintf(w, `{"accessToken":"token-%d"}`, n)
			return
		}
		u.mu.Lock()
		u.paths = append(u.paths, r.URL.Path)
		u.queries = append(u.queries, r.URL.Query())
		u.headers = append(u.headers, r.Header.Clone())
		u.mu.Unlock()
		if u.respond != nil {
			u.respond(w, r)
			return
		}
		fmt.Fprint(w, `{}`)
	}))
	t.Cleanup(u.server.Close)
	return u
}

func (u *fakeUpstream) authCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.authCalls
}

func (u *fakeUpstream) lastPath(t *testing.T) string {
	t.Helper()
	u.mu.Lock()
	defer u.mu.Unlock()
	require.NotEmpty(t, u.paths)
	return u.paths[len(u.paths)-1]
}

func (u *fakeUpstream) lastQuery(t *testing.T) url.Values {
	t.Helper()
	u.mu.Lock()
	defer u.mu.Unlock()
	require.NotEmpty(t, u.queries)
	return u.queries[len(u.queries)-1]
}

func (u *fakeUpstream) lastHeader(t *testing.T) http.Header {
	t.Helper()
	u.mu.Lock()
	defer u.mu.Unlock()
	require.NotEmpty(t, u.headers)
	return u.headers[len(u.headers)-1]
}

func testCredentials() Credentials {
	return Credentials{ClientID: "client-id", ClientSecret: "client-secret"}
}

func newTestClient(u *fakeUpstream, creds Credentials, now func() time.Time) *Client {
	return NewClient(Config{
		BaseURL:     u.server.URL,
		Credentials: creds,
		HTTPClient:  u.server.Client(),
		Now:         now,
	}, zap.NewNop(), nil)
}

func TestTokenReusedWithinValidityWindow(t *testing.T) {
	ctx := context.Background()
	upstream := newFakeUpstream(t, nil)

	base := time.Now()
	offset := time.Duration(0)
	client := newTestClient(upstream, testCredentials(), func() time.Time {
		return base.Add(offset)
	})

	first, err := client.tokens.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-1", first)

	second, err := client.tokens.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, 1, upstream.authCount())
}

func TestTokenExpiryBoundary(t *testing.T) {
	ctx := context.Background()
	upstream := newFakeUpstream(t, nil)

	base := time.Now()
	offset := time.Duration(0)
	client := newTestClient(upstream, testCredentials(), func() time.Time {
		return base.Add(offset)
	})

	_, err := client.tokens.Token(ctx)
	require.NoError(t, err)

	offset = domain.TokenLifetime - time.Second
	cached, err := client.tokens.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-1", cached)
	require.Equal(t, 1, upstream.authCount())

	offset = domain.TokenLifetime + time.Second
	refreshed, err := client.tokens.Token(ctx)
	require.NoError(t, err)
	require.Equal(t, "token-2", refreshed)
	require.Equal(t, 2, upstream.authCount())
}

func TestTokenMissingCredentials(t *testing.T) {
	ctx := context.Background()
	upstream := newFakeUpstream(t, nil)
	client := newTestClient(upstream, Credentials{}, nil)

	_, err := client.tokens.Token(ctx)
	require.Error(t, err)
	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, domain.CodeConfiguration, code)
	require.Contains(t, err.Error(), "PORT_CLIENT_ID")
	require.Equal(t, 0, upstream.authCount())
}

func TestTokenRejectedCredentials(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"message":"invalid credentials"}`, http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := NewClient(Config{
		BaseURL:     server.URL,
		Credentials: testCredentials(),
		HTTPClient:  server.Client(),
	}, zap.NewNop(), nil)

	_, err := client.tokens.Token(ctx)
	require.Error(t, err)
	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, domain.CodeUnauthenticated, code)
	require.Contains(t, err.Error(), "invalid credentials")
}

func TestTokenEndpointUnreachable(t *testing.T) {
	ctx := context.Background()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(Config{
		BaseURL:     server.URL,
		Credentials: testCredentials(),
	}, zap.NewNop(), nil)

	_, err := client.tokens.Token(ctx)
	require.Error(t, err)
	code, ok := domain.CodeFrom(err)
	require.True(t, ok)
	require.Equal(t, domain.CodeUnauthenticated, code)
}
