// Package app wires configuration, logging, telemetry and the Port
// client into a running MCP server.
package app

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"portmcp/internal/buildinfo"
	"portmcp/internal/infra/port"
	"portmcp/internal/infra/telemetry"
	"portmcp/internal/infra/tools"
)

type App struct {
	logger *zap.Logger
}

func New(logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{logger: logger.Named("app")}
}

// Serve runs the MCP server over stdio until ctx is canceled or the
// transport closes.
func (a *App) Serve(ctx context.Context, cfg Config) error {
	var metrics telemetry.Metrics = telemetry.NewNoopMetrics()
	var registry *prometheus.Registry
	if cfg.MetricsAddr != "" {
		registry = prometheus.NewRegistry()
		metrics = telemetry.NewPrometheusMetrics(registry)
	}

	client := port.NewClient(port.Config{
		BaseURL: cfg.BaseURL,
		Credentials: port.Credentials{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
		},
	}, a.logger, metrics)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "portmcp",
		Version: buildinfo.Version,
	}, &mcp.ServerOptions{
		HasTools: true,
	})
	tools.Register(server, client, a.logger, metrics)

	if cfg.MetricsAddr != "" {
		go func() {
			err := telemetry.StartHTTPServer(ctx, telemetry.HTTPServerOptions{
				Addr:     cfg.MetricsAddr,
				Registry: registry,
			}, a.logger)
			if err != nil {
				a.logger.Error("metrics server error", zap.Error(err))
			}
		}()
	}

	a.logger.Info("serving Port catalog tools (stdio transport)",
		zap.String("api", client.BaseURL()),
		zap.String("version", buildinfo.Version),
	)
	return server.Run(ctx, &mcp.StdioTransport{})
}
