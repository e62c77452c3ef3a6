// Package slog provides logging decorators for briefly services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/briefly"
)

// Ensure LoggingFetcher implements briefly.Fetcher.
var _ briefly.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   briefly.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next briefly.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (result *briefly.FetchResult, err error) {
	defer func(begin time.Time) {
		var status, size int
		if result != nil {
			status, size = result.StatusCode, len(result.Body)
		}
		f.logger.Info("fetch",
			"url", url,
			"status", status,
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}
