package briefly

import "context"

// Recipe is the structured form of a cooking recipe.
type Recipe struct {
	Title       string   `json:"title"`
	Servings    string   `json:"servings,omitempty"`
	TotalTime   string   `json:"totalTime,omitempty"`
	Ingredients []string `json:"ingredients"`
	Steps       []string `json:"steps"`
	IsRecipe    bool     `json:"isRecipe"`
}

// Tone describes the overall attitude of an article.
type Tone string

// Supported tones.
const (
	ToneNeutral      Tone = "neutral"
	ToneOptimistic   Tone = "optimistic"
	TonePessimistic  Tone = "pessimistic"
	ToneCritical     Tone = "critical"
	ToneEnthusiastic Tone = "enthusiastic"
	ToneUrgent       Tone = "urgent"
)

// Tones lists every supported tone.
var Tones = []Tone{ToneNeutral, ToneOptimistic, TonePessimistic, ToneCritical, ToneEnthusiastic, ToneUrgent}

// Summary is the structured form of a narrative article.
type Summary struct {
	Summary         string   `json:"summary"`
	Keywords        []string `json:"keywords"`
	Tone            Tone     `json:"tone"`
	IsPolitical     bool     `json:"isPolitical"`
	PoliticalTopics []string `json:"politicalTopics"`
}

// Result is the output of the structuring service for one variant. Exactly
// one of Recipe or Summary is set, matching Variant.
type Result struct {
	Variant Variant
	Recipe  *Recipe
	Summary *Summary
}

// Accepted reports whether the structuring service judged the text to
// belong to the variant's domain.
func (r *Result) Accepted() bool {
	switch r.Variant {
	case VariantRecipe:
		return r.Recipe != nil && r.Recipe.IsRecipe
	case VariantSummary:
		return r.Summary != nil && r.Summary.Summary != ""
	}
	return false
}

// Structurer converts free text into a typed result using an external
// completion service.
type Structurer interface {
	// Structure issues a single completion request for the variant and
	// returns the normalized result. A reply that is not a JSON object
	// returns ESTRUCTURE.
	Structure(ctx context.Context, text string, variant Variant) (*Result, error)
}
