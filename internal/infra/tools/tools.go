// Package tools registers the six Port catalog tools on an MCP server.
// Every handler follows the same pipeline: fetch through the port
// client, render text, and report any failure in-band as an "Error ..."
// text block rather than a protocol fault.
package tools

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"portmcp/internal/infra/port"
	"portmcp/internal/infra/telemetry"
)

type Registry struct {
	client  *port.Client
	logger  *zap.Logger
	metrics telemetry.Metrics
}

// Register adds all catalog tools to the server.
func Register(server *mcp.Server, client *port.Client, logger *zap.Logger, metrics telemetry.Metrics) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = telemetry.NewNoopMetrics()
	}
	r := &Registry{
		client:  client,
		logger:  logger.Named("tools"),
		metrics: metrics,
	}

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_entities",
		Description: "List entities in the software catalog, optionally scoped to a blueprint",
		InputSchema: getEntitiesSchema(),
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, r.getEntities)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_entity",
		Description: "Fetch a single catalog entity by blueprint and identifier",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, r.getEntity)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_scorecard_results",
		Description: "Fetch scorecard evaluation results for a blueprint, optionally narrowed to one scorecard or entity",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, r.getScorecardResults)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_blueprints",
		Description: "List blueprint definitions in the software catalog",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, r.getBlueprints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_entities",
		Description: "Search catalog entities by free text, optionally filtered by exact property values",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, r.searchEntities)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_actions",
		Description: "List self-service actions, optionally scoped to a blueprint",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, r.getActions)

	return r
}

// run executes one tool call. Failures come back as a normal result
// whose text starts with "Error"; the MCP call itself never faults.
func (r *Registry) run(ctx context.Context, tool, doing string, fn func(context.Context) (string, error)) *mcp.CallToolResult {
	start := time.Now()
	log := r.logger.With(
		zap.String("tool", tool),
		zap.String("request_id", uuid.NewString()),
	)

	text, err := fn(ctx)
	elapsed := time.Since(start)
	if err != nil {
		r.metrics.ObserveToolCall(tool, "error", elapsed)
		log.Warn("tool call failed", zap.Error(err), zap.Duration("elapsed", elapsed))
		return &mcp.CallToolResult{
			IsError: true,
			Content: []mcp.Content{&mcp.TextContent{
				Text: fmt.Sprintf("Error %s: %s", doing, err),
			}},
		}
	}

	r.metrics.ObserveToolCall(tool, "ok", elapsed)
	log.Debug("tool call completed", zap.Duration("elapsed", elapsed))
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func (r *Registry) getEntities(ctx context.Context, _ *mcp.CallToolRequest, in getEntitiesInput) (*mcp.CallToolResult, any, error) {
	result := r.run(ctx, "get_entities", "fetching entities", func(ctx context.Context) (string, error) {
		entities, err := r.client.ListEntities(ctx, in.Blueprint, in.Search, in.Limit)
		if err != nil {
			return "", err
		}
		return formatEntityList(entities), nil
	})
	return result, nil, nil
}

func (r *Registry) getEntity(ctx context.Context, _ *mcp.CallToolRequest, in getEntityInput) (*mcp.CallToolResult, any, error) {
	result := r.run(ctx, "get_entity", "fetching entity", func(ctx context.Context) (string, error) {
		entity, err := r.client.GetEntity(ctx, in.Blueprint, in.Entity)
		if err != nil {
			return "", err
		}
		return formatEntity(entity), nil
	})
	return result, nil, nil
}

func (r *Registry) getScorecardResults(ctx context.Context, _ *mcp.CallToolRequest, in getScorecardResultsInput) (*mcp.CallToolResult, any, error) {
	result := r.run(ctx, "get_scorecard_results", "fetching scorecard results", func(ctx context.Context) (string, error) {
		raw, err := r.client.ScorecardResults(ctx, in.Blueprint, in.Scorecard, in.Entity)
		if err != nil {
			return "", err
		}
		return formatScorecardResults(in.Blueprint, raw), nil
	})
	return result, nil, nil
}

func (r *Registry) getBlueprints(ctx context.Context, _ *mcp.CallToolRequest, in getBlueprintsInput) (*mcp.CallToolResult, any, error) {
	result := r.run(ctx, "get_blueprints", "fetching blueprints", func(ctx context.Context) (string, error) {
		blueprints, err := r.client.ListBlueprints(ctx, in.Search)
		if err != nil {
			return "", err
		}
		return formatBlueprintList(blueprints), nil
	})
	return result, nil, nil
}

func (r *Registry) searchEntities(ctx context.Context, _ *mcp.CallToolRequest, in searchEntitiesInput) (*mcp.CallToolResult, any, error) {
	result := r.run(ctx, "search_entities", "searching entities", func(ctx context.Context) (string, error) {
		entities, err := r.client.SearchEntities(ctx, in.Query, in.Blueprint)
		if err != nil {
			return "", err
		}
		return formatEntityList(filterByProperties(entities, in.Properties)), nil
	})
	return result, nil, nil
}

func (r *Registry) getActions(ctx context.Context, _ *mcp.CallToolRequest, in getActionsInput) (*mcp.CallToolResult, any, error) {
	result := r.run(ctx, "get_actions", "fetching actions", func(ctx context.Context) (string, error) {
		actions, err := r.client.ListActions(ctx, in.Blueprint)
		if err != nil {
			return "", err
		}
		return formatActionList(actions), nil
	})
	return result, nil, nil
}
