package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/briefly"
)

// Ensure LoggingStructurer implements briefly.Structurer.
var _ briefly.Structurer = (*LoggingStructurer)(nil)

// LoggingStructurer wraps a Structurer with debug logging.
type LoggingStructurer struct {
	next   briefly.Structurer
	logger *slog.Logger
}

// NewLoggingStructurer creates a new LoggingStructurer.
func NewLoggingStructurer(next briefly.Structurer, logger *slog.Logger) *LoggingStructurer {
	return &LoggingStructurer{next: next, logger: logger}
}

// Structure delegates to the wrapped structurer and logs the operation.
func (s *LoggingStructurer) Structure(ctx context.Context, text string, variant briefly.Variant) (result *briefly.Result, err error) {
	defer func(begin time.Time) {
		accepted := result != nil && result.Accepted()
		s.logger.Info("structure",
			"variant", string(variant),
			"chars", len([]rune(text)),
			"accepted", accepted,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Structure(ctx, text, variant)
}
