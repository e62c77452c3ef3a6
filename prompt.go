package briefly

import (
	"fmt"
	"strings"
)

// SystemInstruction is sent with every structuring request.
const SystemInstruction = "You are a precise assistant that returns strict JSON."

const recipeInstructions = `You extract cooking recipes from web pages.

Given the page text below, return a JSON object with:
- "isRecipe": true only if the text contains a cooking recipe with ingredients and preparation steps
- "title": the recipe name
- "servings": how many servings the recipe makes, as a string, or "" if not stated
- "totalTime": the total preparation and cooking time, as a string, or "" if not stated
- "ingredients": an array of strings, one ingredient per item with its quantity
- "steps": an array of strings, one preparation step per item, in order

Rules:
- Ignore comments, stories, advertisements and navigation text.
- If the text is not a recipe, set "isRecipe" to false and return empty arrays.
- The JSON must be valid and strictly parseable.`

const summaryInstructions = `You analyze online articles.

Given the article text below, return a JSON object with:
- "summary": a concise summary (3-5 sentences)
- "keywords": 5-7 key nouns or noun phrases as an array of strings
- "tone": one of %s
- "isPolitical": true only if politics, government or public policy are central to the article
- "politicalTopics": an array (0-5 items) of political or policy topics, empty if the article is not political

Rules:
- The JSON must be valid and strictly parseable.`

// BuildPrompt builds the user prompt for the variant, containing the
// schema description followed by the text.
func BuildPrompt(variant Variant, text string) string {
	var sb strings.Builder
	switch variant {
	case VariantRecipe:
		sb.WriteString(recipeInstructions)
		sb.WriteString("\n\nPage text:\n")
	default:
		tones := make([]string, len(Tones))
		for i, t := range Tones {
			tones[i] = fmt.Sprintf("%q", string(t))
		}
		fmt.Fprintf(&sb, summaryInstructions, strings.Join(tones, ", "))
		sb.WriteString("\n\nArticle text:\n")
	}
	sb.WriteString(`"""` + "\n")
	sb.WriteString(text)
	sb.WriteString("\n" + `"""`)
	return sb.String()
}
