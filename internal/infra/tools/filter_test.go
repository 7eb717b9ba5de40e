package tools

import (
	"testing"

	"github.com/stretchr/testify/require"

	"portmcp/internal/domain"
)

func TestFilterByPropertiesExactMatch(t *testing.T) {
	entities := []domain.Entity{
		{Identifier: "a", Properties: map[string]any{"env": "prod", "tier": float64(1)}},
		{Identifier: "b", Properties: map[string]any{"env": "staging", "tier": float64(1)}},
		{Identifier: "c", Properties: map[string]any{"env": "prod"}},
		{Identifier: "d", Properties: nil},
	}

	filtered := filterByProperties(entities, map[string]any{"env": "prod"})
	require.Len(t, filtered, 2)
	require.Equal(t, "a", filtered[0].Identifier)
	require.Equal(t, "c", filtered[1].Identifier)

	filtered = filterByProperties(entities, map[string]any{"env": "prod", "tier": float64(1)})
	require.Len(t, filtered, 1)
	require.Equal(t, "a", filtered[0].Identifier)
}

func TestFilterByPropertiesNoPartialMatch(t *testing.T) {
	entities := []domain.Entity{
		{Identifier: "a", Properties: map[string]any{"env": "production"}},
	}
	require.Empty(t, filterByProperties(entities, map[string]any{"env": "prod"}))
}

func TestFilterByPropertiesEmptyFilterReturnsAll(t *testing.T) {
	entities := []domain.Entity{
		{Identifier: "a"},
		{Identifier: "b"},
	}
	require.Equal(t, entities, filterByProperties(entities, nil))
	require.Equal(t, entities, filterByProperties(entities, map[string]any{}))
}

func TestFilterByPropertiesNestedValues(t *testing.T) {
	entities := []domain.Entity{
		{Identifier: "a", Properties: map[string]any{"labels": map[string]any{"team": "payments"}}},
		{Identifier: "b", Properties: map[string]any{"labels": map[string]any{"team": "infra"}}},
	}
	filtered := filterByProperties(entities, map[string]any{
		"labels": map[string]any{"team": "payments"},
	})
	require.Len(t, filtered, 1)
	require.Equal(t, "a", filtered[0].Identifier)
}
