package main_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fwojciec/briefly"
	main "github.com/fwojciec/briefly/cmd/briefly"
	"github.com/fwojciec/briefly/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const recipePage = `<!DOCTYPE html>
<html>
<head><title>Grandma's Pancakes</title></head>
<body>
<nav><a href="/">Home</a></nav>
<article>
<h1>Grandma's Pancakes</h1>
<p>These pancakes are fluffy, light and ready in twenty minutes. The batter rests while the pan heats, which gives the flour time to hydrate and the bubbles time to form.</p>
<h2>Ingredients</h2>
<ul><li>2 eggs</li><li>1 cup milk</li><li>1 cup flour</li><li>1 tablespoon sugar</li><li>a pinch of salt</li></ul>
<h2>Method</h2>
<p>Whisk the eggs with the milk, then fold in the flour, sugar and salt. Do not overmix; a few lumps are fine and keep the pancakes tender.</p>
<p>Cook on a buttered pan over medium heat until bubbles appear, flip once, and serve warm with maple syrup or fresh berries.</p>
</article>
</body>
</html>`

func recipeStructurer(calls *[]string) *mock.Structurer {
	return &mock.Structurer{
		StructureFn: func(ctx context.Context, text string, v briefly.Variant) (*briefly.Result, error) {
			*calls = append(*calls, text)
			return &briefly.Result{Variant: v, Recipe: &briefly.Recipe{
				Title:       "Pancakes",
				Servings:    "4",
				Ingredients: []string{"2 eggs", "1 cup milk"},
				Steps:       []string{"Whisk.", "Fry."},
				IsRecipe:    true,
			}}, nil
		},
	}
}

func newTestMain(t *testing.T) *main.Main {
	t.Helper()
	m := main.NewMain()
	m.DBPath = filepath.Join(t.TempDir(), "briefly.db")
	return m
}

func TestMain_Run_URLThenHistory(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(recipePage))
	}))
	defer server.Close()

	var calls []string
	m := newTestMain(t)
	m.Structurer = recipeStructurer(&calls)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"url", server.URL + "/pancakes"}, nil, stdout, stderr)

	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "Pancakes")
	assert.Contains(t, stdout.String(), "- 2 eggs")
	assert.Contains(t, stdout.String(), "2. Fry.")
	require.Len(t, calls, 1)
	assert.Contains(t, calls[0], "2 eggs")

	stdout.Reset()
	err = m.Run(context.Background(), []string{"history"}, nil, stdout, stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Pancakes")
	assert.Contains(t, stdout.String(), server.URL+"/pancakes")
}

func TestMain_Run_URLForbidden(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	var calls []string
	m := newTestMain(t)
	m.Structurer = recipeStructurer(&calls)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"url", server.URL}, nil, stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "FETCH_FORBIDDEN: ")
	assert.Contains(t, stderr.String(), "briefly text")
	assert.Empty(t, calls)
}

func TestMain_Run_TextFromStdin(t *testing.T) {
	t.Parallel()

	var calls []string
	m := newTestMain(t)
	m.Structurer = recipeStructurer(&calls)

	stdin := strings.NewReader("Ingredients: 2 eggs, 1 cup milk, 1 cup flour. Whisk together and fry in butter until golden.")
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"--json", "text", "--title", "Sunday Pancakes"}, stdin, stdout, stderr)

	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), `"title": "Sunday Pancakes"`)
	assert.Contains(t, stdout.String(), `"url": "manual-input"`)
	assert.NotContains(t, stdout.String(), `"Text"`)
}

func TestMain_Run_TextTooShort(t *testing.T) {
	t.Parallel()

	var calls []string
	m := newTestMain(t)
	m.Structurer = recipeStructurer(&calls)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"--json", "text"}, strings.NewReader(strings.Repeat("a", 40)), stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, stdout.String(), `"errorCode": "VALIDATION_FAILED"`)
	assert.Empty(t, calls)
}

func TestMain_Run_ExtractSkipsStructuring(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(recipePage))
	}))
	defer server.Close()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"--provider", "gemini", "--gemini-api-key=", "extract", server.URL}, nil, stdout, stderr)

	require.NoError(t, err, stderr.String())
	assert.Contains(t, stdout.String(), "1 cup flour")
}

func TestMain_Run_MissingAPIKey(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := m.Run(context.Background(), []string{"--provider", "gemini", "--gemini-api-key=", "text"}, strings.NewReader("x"), stdout, stderr)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY not set")
	assert.Contains(t, stderr.String(), "Hint:")
}

func TestMain_Run_InvalidVariant(t *testing.T) {
	t.Parallel()

	m := newTestMain(t)

	err := m.Run(context.Background(), []string{"--variant", "poem", "history"}, nil, &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
}
