package openai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/briefly"
	brieflyopenai "github.com/fwojciec/briefly/openai"
	openai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// capturingClient records the last request and replies with content.
type capturingClient struct {
	lastReq openai.ChatCompletionRequest
	content string
	noReply bool
	err     error
}

func (c *capturingClient) CreateChatCompletion(_ context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	c.lastReq = req
	if c.err != nil {
		return openai.ChatCompletionResponse{}, c.err
	}
	if c.noReply {
		return openai.ChatCompletionResponse{}, nil
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{{
			Message: openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: c.content},
		}},
	}, nil
}

func TestStructurer_Structure(t *testing.T) {
	t.Parallel()

	t.Run("parses recipe reply", func(t *testing.T) {
		t.Parallel()

		client := &capturingClient{content: `{"title": "Pancakes", "servings": "4", "ingredients": ["2 eggs"], "steps": ["Fry."], "isRecipe": true}`}
		s := brieflyopenai.NewStructurer(client, "")

		result, err := s.Structure(context.Background(), "Whisk two eggs and fry.", briefly.VariantRecipe)

		require.NoError(t, err)
		require.NotNil(t, result.Recipe)
		assert.Equal(t, "Pancakes", result.Recipe.Title)
		assert.Equal(t, "4", result.Recipe.Servings)
		assert.True(t, result.Accepted())
	})

	t.Run("requests JSON mode with system instruction", func(t *testing.T) {
		t.Parallel()

		client := &capturingClient{content: `{"summary": "Short."}`}
		s := brieflyopenai.NewStructurer(client, "test-model")

		_, err := s.Structure(context.Background(), "The council met on Tuesday.", briefly.VariantSummary)

		require.NoError(t, err)
		assert.Equal(t, "test-model", client.lastReq.Model)
		require.NotNil(t, client.lastReq.ResponseFormat)
		assert.Equal(t, openai.ChatCompletionResponseFormatTypeJSONObject, client.lastReq.ResponseFormat.Type)
		require.Len(t, client.lastReq.Messages, 2)
		assert.Equal(t, openai.ChatMessageRoleSystem, client.lastReq.Messages[0].Role)
		assert.Equal(t, briefly.SystemInstruction, client.lastReq.Messages[0].Content)
		assert.Contains(t, client.lastReq.Messages[1].Content, "The council met on Tuesday.")
	})

	t.Run("defaults model", func(t *testing.T) {
		t.Parallel()

		client := &capturingClient{content: `{"isRecipe": false}`}
		s := brieflyopenai.NewStructurer(client, "")

		_, err := s.Structure(context.Background(), "Just a story.", briefly.VariantRecipe)

		require.NoError(t, err)
		assert.Equal(t, brieflyopenai.DefaultModel, client.lastReq.Model)
	})

	t.Run("returns ESTRUCTURE for invalid JSON", func(t *testing.T) {
		t.Parallel()

		client := &capturingClient{content: "```json\n{}\n```"}
		s := brieflyopenai.NewStructurer(client, "")

		result, err := s.Structure(context.Background(), "Whisk two eggs.", briefly.VariantRecipe)

		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, briefly.ESTRUCTURE, briefly.ErrorCode(err))
	})

	t.Run("returns ESTRUCTURE when no choices", func(t *testing.T) {
		t.Parallel()

		client := &capturingClient{noReply: true}
		s := brieflyopenai.NewStructurer(client, "")

		_, err := s.Structure(context.Background(), "Whisk two eggs.", briefly.VariantRecipe)

		require.Error(t, err)
		assert.Equal(t, briefly.ESTRUCTURE, briefly.ErrorCode(err))
	})

	t.Run("propagates client error", func(t *testing.T) {
		t.Parallel()

		client := &capturingClient{err: errors.New("rate limited")}
		s := brieflyopenai.NewStructurer(client, "")

		_, err := s.Structure(context.Background(), "Whisk two eggs.", briefly.VariantRecipe)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "rate limited")
	})

	t.Run("rejects empty text without calling client", func(t *testing.T) {
		t.Parallel()

		client := &capturingClient{}
		s := brieflyopenai.NewStructurer(client, "")

		_, err := s.Structure(context.Background(), "", briefly.VariantRecipe)

		require.Error(t, err)
		assert.Equal(t, briefly.EINVALID, briefly.ErrorCode(err))
		assert.Empty(t, client.lastReq.Model)
	})
}

func TestNewClient_UsesBaseURL(t *testing.T) {
	t.Parallel()

	assert.NotNil(t, brieflyopenai.NewClient("key", "http://localhost:11434/v1/"))
}
