package advisor

import (
	"encoding/json"
	"errors"
	"strings"

	"storefront/internal/domain"
)

// parseAdvicePayload decodes a model response. A response that is not a JSON
// object is an error; each key is decoded on its own so a malformed key is
// reported as absent while the other survives.
func parseAdvicePayload(raw string) (*Advice, error) {
	cleaned := extractJSONFragment(raw)
	if cleaned == "" {
		return nil, errors.New("empty payload")
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &doc); err != nil {
		return nil, err
	}
	advice := &Advice{}
	if msg, ok := doc["recommendations"]; ok {
		var recs []string
		if err := json.Unmarshal(msg, &recs); err == nil {
			advice.Recommendations = cleanStrings(recs)
		}
	}
	if msg, ok := doc["mealPlan"]; ok {
		var plan domain.MealPlan
		if err := json.Unmarshal(msg, &plan); err == nil && validMealPlan(plan) {
			advice.MealPlan = &plan
		}
	}
	return advice, nil
}

func validMealPlan(p domain.MealPlan) bool {
	return p.Breakfast != nil && p.Lunch != nil && p.Dinner != nil && p.Snacks != nil
}

func cleanStrings(in []string) []string {
	var out []string
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

func extractJSONFragment(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return ""
	}
	text = trimCodeFence(text)
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start >= 0 && end >= start {
		text = text[start : end+1]
	}
	return strings.TrimSpace(text)
}

func trimCodeFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```JSON")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.LastIndex(trimmed, "```"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return strings.TrimSpace(trimmed)
}
