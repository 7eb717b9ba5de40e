package tools

import (
	"encoding/json"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"

	"portmcp/internal/domain"
)

type getEntitiesInput struct {
	Blueprint string `json:"blueprint,omitempty" jsonschema:"Blueprint identifier to scope the listing"`
	Search    string `json:"search,omitempty" jsonschema:"Free-text filter applied upstream"`
	Limit     int    `json:"limit,omitempty" jsonschema:"Maximum number of entities to return; values above 500 are capped"`
}

type getEntityInput struct {
	Blueprint string `json:"blueprint" jsonschema:"Blueprint identifier"`
	Entity    string `json:"entity" jsonschema:"Entity identifier"`
}

type getScorecardResultsInput struct {
	Blueprint string `json:"blueprint" jsonschema:"Blueprint identifier"`
	Scorecard string `json:"scorecard,omitempty" jsonschema:"Scorecard identifier to narrow results"`
	Entity    string `json:"entity,omitempty" jsonschema:"Entity identifier; only applies together with scorecard"`
}

type getBlueprintsInput struct {
	Search string `json:"search,omitempty" jsonschema:"Free-text filter applied upstream"`
}

type searchEntitiesInput struct {
	Query      string         `json:"query" jsonschema:"Free-text search query"`
	Blueprint  string         `json:"blueprint,omitempty" jsonschema:"Blueprint identifier to scope the search"`
	Properties map[string]any `json:"properties,omitempty" jsonschema:"Property values entities must match exactly"`
}

type getActionsInput struct {
	Blueprint string `json:"blueprint,omitempty" jsonschema:"Blueprint identifier to scope the listing"`
}

// getEntitiesSchema advertises the limit default in the schema itself.
// The cap is deliberately not a schema maximum: oversized limits are
// clamped by the client, not rejected at the protocol boundary.
func getEntitiesSchema() *jsonschema.Schema {
	schema, err := jsonschema.For[getEntitiesInput](nil)
	if err != nil {
		panic(fmt.Sprintf("tools: deriving get_entities schema: %v", err))
	}
	limit := schema.Properties["limit"]
	limit.Default = json.RawMessage(fmt.Sprintf("%d", domain.DefaultEntityLimit))
	return schema
}
