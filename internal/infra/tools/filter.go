package tools

import (
	"reflect"

	"portmcp/internal/domain"
)

// filterByProperties keeps entities whose properties contain every key
// in want with an exactly equal value. No partial or fuzzy matching.
// The filter runs client-side over the single page the search endpoint
// returned; matches beyond that page are not fetched.
func filterByProperties(entities []domain.Entity, want map[string]any) []domain.Entity {
	if len(want) == 0 {
		return entities
	}
	var out []domain.Entity
	for _, entity := range entities {
		if matchesProperties(entity, want) {
			out = append(out, entity)
		}
	}
	return out
}

func matchesProperties(entity domain.Entity, want map[string]any) bool {
	for key, value := range want {
		got, ok := entity.Properties[key]
		if !ok || !reflect.DeepEqual(got, value) {
			return false
		}
	}
	return true
}
