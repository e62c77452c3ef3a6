package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/briefly"
)

// Ensure LoggingStrategy implements briefly.Strategy.
var _ briefly.Strategy = (*LoggingStrategy)(nil)

// LoggingStrategy wraps an extraction Strategy with debug logging, so each
// attempt of a Chain is visible.
type LoggingStrategy struct {
	next   briefly.Strategy
	logger *slog.Logger
}

// NewLoggingStrategy creates a new LoggingStrategy.
func NewLoggingStrategy(next briefly.Strategy, logger *slog.Logger) *LoggingStrategy {
	return &LoggingStrategy{next: next, logger: logger}
}

// Name returns the wrapped strategy's name.
func (s *LoggingStrategy) Name() string {
	return s.next.Name()
}

// Extract delegates to the wrapped strategy and logs the operation.
func (s *LoggingStrategy) Extract(html string, pageURL string) (doc *briefly.ExtractedDocument, err error) {
	defer func(begin time.Time) {
		var chars, words int
		if doc != nil {
			chars, words = len([]rune(doc.Content)), doc.WordCount()
		}
		s.logger.Info("extract",
			"strategy", s.next.Name(),
			"url", pageURL,
			"chars", chars,
			"words", words,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Extract(html, pageURL)
}

// WrapStrategies wraps each strategy with a LoggingStrategy.
func WrapStrategies(strategies []briefly.Strategy, logger *slog.Logger) []briefly.Strategy {
	wrapped := make([]briefly.Strategy, len(strategies))
	for i, s := range strategies {
		wrapped[i] = NewLoggingStrategy(s, logger)
	}
	return wrapped
}
