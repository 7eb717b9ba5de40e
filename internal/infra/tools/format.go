package tools

import (
	"encoding/json"
	"fmt"
	"strings"

	"portmcp/internal/domain"
)

// Formatting is textual and lossy on purpose: results are rendered as
// bullet summaries with nested objects pretty-printed inline.

func formatEntityList(entities []domain.Entity) string {
	if len(entities) == 0 {
		return "No entities found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s:\n", len(entities), plural(len(entities), "entity", "entities"))
	for _, entity := range entities {
		fmt.Fprintf(&b, "- %s: %s", entity.Identifier, titleOr(entity.Title, entity.Identifier))
		if entity.Blueprint != "" {
			fmt.Fprintf(&b, " (blueprint: %s)", entity.Blueprint)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatEntity(entity domain.Entity) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Entity: %s\n", entity.Identifier)
	fmt.Fprintf(&b, "Title: %s\n", titleOr(entity.Title, entity.Identifier))
	if entity.Blueprint != "" {
		fmt.Fprintf(&b, "Blueprint: %s\n", entity.Blueprint)
	}
	fmt.Fprintf(&b, "Properties:\n%s\n", prettyMap(entity.Properties))
	fmt.Fprintf(&b, "Relations:\n%s", prettyMap(entity.Relations))
	return b.String()
}

func formatBlueprintList(blueprints []domain.Blueprint) string {
	if len(blueprints) == 0 {
		return "No blueprints found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s:\n", len(blueprints), plural(len(blueprints), "blueprint", "blueprints"))
	for _, bp := range blueprints {
		fmt.Fprintf(&b, "- %s: %s", bp.Identifier, titleOr(bp.Title, bp.Identifier))
		if bp.Description != "" {
			fmt.Fprintf(&b, " - %s", bp.Description)
		}
		b.WriteString("\n")
		if len(bp.Schema.Properties) > 0 {
			fmt.Fprintf(&b, "  Properties:\n%s\n", indent(prettyJSON(bp.Schema.Properties), "  "))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatActionList(actions []domain.Action) string {
	if len(actions) == 0 {
		return "No actions found."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Found %d %s:\n", len(actions), plural(len(actions), "action", "actions"))
	for _, action := range actions {
		fmt.Fprintf(&b, "- %s: %s", action.Identifier, titleOr(action.Title, action.Identifier))
		if action.Blueprint != "" {
			fmt.Fprintf(&b, " (blueprint: %s)", action.Blueprint)
		}
		if action.Description != "" {
			fmt.Fprintf(&b, " - %s", action.Description)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func formatScorecardResults(blueprint string, raw json.RawMessage) string {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return fmt.Sprintf("Scorecard results for blueprint %s:\n%s", blueprint, strings.TrimSpace(string(raw)))
	}
	return fmt.Sprintf("Scorecard results for blueprint %s:\n%s", blueprint, prettyJSON(decoded))
}

func prettyMap(m map[string]any) string {
	if len(m) == 0 {
		return "{}"
	}
	return prettyJSON(m)
}

func prettyJSON(v any) string {
	if v == nil {
		return "{}"
	}
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(out)
}

func indent(text, prefix string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

func titleOr(title, fallback string) string {
	if title != "" {
		return title
	}
	return fallback
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return singular
	}
	return pluralForm
}
