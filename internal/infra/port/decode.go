package port

import (
	"encoding/json"

	"portmcp/internal/domain"
)

// The Port API wraps collections in an envelope ({"entities": [...]})
// but some deployments return the list directly. Decoders accept both.

type entityEnvelope struct {
	Entity *domain.Entity `json:"entity"`
}

type entitiesEnvelope struct {
	Entities []domain.Entity `json:"entities"`
}

type blueprintsEnvelope struct {
	Blueprints []domain.Blueprint `json:"blueprints"`
}

type actionsEnvelope struct {
	Actions []domain.Action `json:"actions"`
}

func decodeEntityList(raw json.RawMessage) ([]domain.Entity, error) {
	var env entitiesEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Entities != nil {
		return env.Entities, nil
	}
	var list []domain.Entity
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	return nil, domain.E(domain.CodeUpstream, "port.decode",
		"unrecognized entity list payload", nil)
}

func decodeEntity(raw json.RawMessage) (domain.Entity, error) {
	var env entityEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Entity != nil {
		return *env.Entity, nil
	}
	var entity domain.Entity
	if err := json.Unmarshal(raw, &entity); err != nil {
		return domain.Entity{}, domain.E(domain.CodeUpstream, "port.decode",
			"unrecognized entity payload", err)
	}
	return entity, nil
}

func decodeBlueprintList(raw json.RawMessage) ([]domain.Blueprint, error) {
	var env blueprintsEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Blueprints != nil {
		return env.Blueprints, nil
	}
	var list []domain.Blueprint
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	return nil, domain.E(domain.CodeUpstream, "port.decode",
		"unrecognized blueprint list payload", nil)
}

func decodeActionList(raw json.RawMessage) ([]domain.Action, error) {
	var env actionsEnvelope
	if err := json.Unmarshal(raw, &env); err == nil && env.Actions != nil {
		return env.Actions, nil
	}
	var list []domain.Action
	if err := json.Unmarshal(raw, &list); err == nil {
		return list, nil
	}
	return nil, domain.E(domain.CodeUpstream, "port.decode",
		"unrecognized action list payload", nil)
}
