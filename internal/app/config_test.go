package app

import (
	"testing"

	"github.com/stretchr/testify/require"

	"portmcp/internal/domain"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT_CLIENT_ID", "")
	t.Setenv("PORT_CLIENT_SECRET", "")
	t.Setenv("PORT_API_URL", "")
	t.Setenv("PORT_LOG_LEVEL", "")
	t.Setenv("PORT_METRICS_ADDR", "")

	cfg := LoadConfig()
	require.Empty(t, cfg.ClientID)
	require.Empty(t, cfg.ClientSecret)
	require.Equal(t, domain.DefaultAPIBaseURL, cfg.BaseURL)
	require.Equal(t, domain.DefaultLogLevel, cfg.LogLevel)
	require.Empty(t, cfg.MetricsAddr)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("PORT_CLIENT_ID", "my-client")
	t.Setenv("PORT_CLIENT_SECRET", "my-secret")
	t.Setenv("PORT_API_URL", "https://api.example.test")
	t.Setenv("PORT_LOG_LEVEL", "debug")
	t.Setenv("PORT_METRICS_ADDR", "127.0.0.1:9091")

	cfg := LoadConfig()
	require.Equal(t, "my-client", cfg.ClientID)
	require.Equal(t, "my-secret", cfg.ClientSecret)
	require.Equal(t, "https://api.example.test", cfg.BaseURL)
	require.Equal(t, "debug", cfg.LogLevel)
	require.Equal(t, "127.0.0.1:9091", cfg.MetricsAddr)
}

func TestNewLoggerRejectsBadLevel(t *testing.T) {
	_, err := NewLogger("verbose")
	require.Error(t, err)

	logger, err := NewLogger("warn")
	require.NoError(t, err)
	require.NotNil(t, logger)
}
