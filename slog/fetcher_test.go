package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/briefly"
	"github.com/fwojciec/briefly/mock"
	brieflyslog "github.com/fwojciec/briefly/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs fetch with status, bytes and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*briefly.FetchResult, error) {
				return &briefly.FetchResult{URL: url, StatusCode: 200, Body: "<html>content</html>"}, nil
			},
		}

		fetcher := brieflyslog.NewLoggingFetcher(inner, logger)
		result, err := fetcher.Fetch(context.Background(), "https://example.com/recipe")

		require.NoError(t, err)
		assert.Equal(t, "<html>content</html>", result.Body)
		output := buf.String()
		assert.Contains(t, output, "msg=fetch")
		assert.Contains(t, output, "url=https://example.com/recipe")
		assert.Contains(t, output, "status=200")
		assert.Contains(t, output, "bytes=20")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (*briefly.FetchResult, error) {
				return nil, errors.New("network error")
			},
		}

		fetcher := brieflyslog.NewLoggingFetcher(inner, logger)
		_, err := fetcher.Fetch(context.Background(), "https://example.com/recipe")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "status=0")
		assert.Contains(t, output, "err=\"network error\"")
	})
}
