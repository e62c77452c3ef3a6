package briefly

// Variant selects the output schema a pipeline is configured for.
type Variant string

// Supported variants.
const (
	VariantRecipe  Variant = "recipe"
	VariantSummary Variant = "summary"
)

// Variants lists every supported variant.
var Variants = []Variant{VariantRecipe, VariantSummary}

// Validate returns EINVALID for an unknown variant.
func (v Variant) Validate() error {
	switch v {
	case VariantRecipe, VariantSummary:
		return nil
	}
	return Errorf(EINVALID, "unknown variant %q", string(v))
}

// FocusOptions returns how text is narrowed before it is structured.
func (v Variant) FocusOptions() FocusOptions {
	switch v {
	case VariantRecipe:
		return FocusOptions{
			Markers:  []string{"ingredients", "ingredient"},
			Lead:     500,
			MaxChars: DefaultMaxChars,
		}
	default:
		return FocusOptions{MaxChars: DefaultMaxChars}
	}
}

// RejectionCode is the caller-facing code used when the structuring service
// judged the text to be outside the variant's domain.
func (v Variant) RejectionCode() string {
	if v == VariantRecipe {
		return CodeNotARecipe
	}
	return CodeContentRejected
}
