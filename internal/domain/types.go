// Package domain holds the Port catalog payload types and the error
// taxonomy shared across the adapter. All catalog types are read-only
// snapshots of upstream state; nothing here outlives a single request.
package domain

// Entity is a catalog record, an instance of a blueprint.
type Entity struct {
	Identifier string         `json:"identifier"`
	Title      string         `json:"title"`
	Blueprint  string         `json:"blueprint"`
	Properties map[string]any `json:"properties"`
	Relations  map[string]any `json:"relations"`
}

// Blueprint is an upstream schema definition describing an entity type.
type Blueprint struct {
	Identifier  string          `json:"identifier"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Schema      BlueprintSchema `json:"schema"`
}

// BlueprintSchema is the property schema attached to a blueprint.
type BlueprintSchema struct {
	Properties map[string]any `json:"properties"`
	Required   []string       `json:"required"`
}

// Action is a self-service operation definable against a blueprint.
type Action struct {
	Identifier  string `json:"identifier"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Blueprint   string `json:"blueprint"`
	Trigger     any    `json:"trigger"`
}
