// Package gemini implements briefly.Structurer using Google Gemini.
package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/briefly"
	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Generator is the subset of the genai client used by Structurer.
// *genai.Models satisfies it.
type Generator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Ensure Structurer implements briefly.Structurer at compile time.
var _ briefly.Structurer = (*Structurer)(nil)

// Structurer implements briefly.Structurer using Google Gemini.
type Structurer struct {
	models Generator
	model  string
}

// NewStructurer creates a new Structurer. An empty model selects
// DefaultModel.
func NewStructurer(models Generator, model string) *Structurer {
	if model == "" {
		model = DefaultModel
	}
	return &Structurer{models: models, model: model}
}

// Structure sends one generation request and parses the JSON reply.
func (s *Structurer) Structure(ctx context.Context, text string, variant briefly.Variant) (*briefly.Result, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, briefly.Errorf(briefly.EINVALID, "text required")
	}

	result, err := s.models.GenerateContent(ctx, s.model,
		[]*genai.Content{{
			Role:  genai.RoleUser,
			Parts: []*genai.Part{{Text: briefly.BuildPrompt(variant, text)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, briefly.Errorf(briefly.ESTRUCTURE, "gemini returned nil result")
	}

	return briefly.ParseResult(variant, result.Text())
}

// BuildConfig returns the GenerateContentConfig for structuring requests.
// Replies are constrained to JSON.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: briefly.SystemInstruction}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}
