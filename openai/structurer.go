// Package openai implements briefly.Structurer against any OpenAI-compatible
// chat completion endpoint.
package openai

import (
	"context"
	"strings"

	"github.com/fwojciec/briefly"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Client is the subset of *openai.Client used by Structurer.
type Client interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// NewClient creates an OpenAI client. An empty baseURL uses the public API.
func NewClient(apiKey, baseURL string) *openai.Client {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = strings.TrimRight(baseURL, "/")
	}
	return openai.NewClientWithConfig(cfg)
}

// Ensure Structurer implements briefly.Structurer at compile time.
var _ briefly.Structurer = (*Structurer)(nil)

// Structurer implements briefly.Structurer using chat completions in JSON
// mode.
type Structurer struct {
	client Client
	model  string
}

// NewStructurer creates a new Structurer. An empty model selects
// DefaultModel.
func NewStructurer(client Client, model string) *Structurer {
	if model == "" {
		model = DefaultModel
	}
	return &Structurer{client: client, model: model}
}

// Structure sends one chat completion request and parses the JSON reply.
func (s *Structurer) Structure(ctx context.Context, text string, variant briefly.Variant) (*briefly.Result, error) {
	if err := variant.Validate(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, briefly.Errorf(briefly.EINVALID, "text required")
	}

	resp, err := s.client.CreateChatCompletion(ctx, BuildRequest(s.model, variant, text))
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, briefly.Errorf(briefly.ESTRUCTURE, "completion returned no choices")
	}

	return briefly.ParseResult(variant, resp.Choices[0].Message.Content)
}

// BuildRequest returns the chat completion request for a structuring call.
func BuildRequest(model string, variant briefly.Variant, text string) openai.ChatCompletionRequest {
	return openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: briefly.SystemInstruction},
			{Role: openai.ChatMessageRoleUser, Content: briefly.BuildPrompt(variant, text)},
		},
		Temperature: 0.2,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
}
