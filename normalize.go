package briefly

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DefaultRecipeTitle is used when a reply has no usable recipe title.
const DefaultRecipeTitle = "Untitled recipe"

// ParseResult parses a structuring reply for the variant. The reply must be
// a single JSON object; anything else returns ESTRUCTURE and no result.
func ParseResult(variant Variant, raw string) (*Result, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &fields); err != nil || fields == nil {
		return nil, Errorf(ESTRUCTURE, "invalid JSON in structuring reply")
	}

	result := &Result{Variant: variant}
	switch variant {
	case VariantRecipe:
		result.Recipe = NormalizeRecipe(fields)
	case VariantSummary:
		result.Summary = NormalizeSummary(fields)
	}
	return result, nil
}

// NormalizeRecipe coerces a decoded reply into a Recipe. Each field falls
// back to its default when missing or of the wrong type.
func NormalizeRecipe(fields map[string]any) *Recipe {
	return &Recipe{
		Title:       requiredString(fields, DefaultRecipeTitle, "title"),
		Servings:    optionalString(fields, "servings"),
		TotalTime:   optionalString(fields, "totalTime", "total_time"),
		Ingredients: stringList(fields, "ingredients"),
		Steps:       stringList(fields, "steps"),
		IsRecipe:    flag(fields, "isRecipe", "is_recipe"),
	}
}

// NormalizeSummary coerces a decoded reply into a Summary. Political topics
// are dropped unless the article is political.
func NormalizeSummary(fields map[string]any) *Summary {
	s := &Summary{
		Summary:         optionalString(fields, "summary"),
		Keywords:        stringList(fields, "keywords"),
		Tone:            tone(fields, "tone"),
		IsPolitical:     flag(fields, "isPolitical", "is_political"),
		PoliticalTopics: stringList(fields, "politicalTopics", "political_topics"),
	}
	if !s.IsPolitical {
		s.PoliticalTopics = []string{}
	}
	return s
}

// lookup returns the first present key.
func lookup(fields map[string]any, keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := fields[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// requiredString returns the trimmed string value, or fallback when it is
// missing, blank or not a string.
func requiredString(fields map[string]any, fallback string, keys ...string) string {
	if s := optionalString(fields, keys...); s != "" {
		return s
	}
	return fallback
}

// optionalString returns the trimmed string value or "". Numbers are
// formatted, since "servings": 4 is a common reply.
func optionalString(fields map[string]any, keys ...string) string {
	v, ok := lookup(fields, keys...)
	if !ok {
		return ""
	}
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}

// stringList returns the string elements of an array value. Non-string and
// blank elements are dropped. The result is never nil.
func stringList(fields map[string]any, keys ...string) []string {
	out := []string{}
	v, ok := lookup(fields, keys...)
	if !ok {
		return out
	}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// flag is true only for a JSON true.
func flag(fields map[string]any, keys ...string) bool {
	v, ok := lookup(fields, keys...)
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func tone(fields map[string]any, keys ...string) Tone {
	t := Tone(strings.ToLower(optionalString(fields, keys...)))
	for _, known := range Tones {
		if t == known {
			return t
		}
	}
	return ToneNeutral
}
