package mock

import (
	"context"

	"github.com/fwojciec/briefly"
)

var _ briefly.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of briefly.Strategy.
type Strategy struct {
	NameFn    func() string
	ExtractFn func(html, pageURL string) (*briefly.ExtractedDocument, error)
}

func (s *Strategy) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}

func (s *Strategy) Extract(html, pageURL string) (*briefly.ExtractedDocument, error) {
	return s.ExtractFn(html, pageURL)
}

var _ briefly.ExtractionWriter = (*ExtractionWriter)(nil)

// ExtractionWriter is a mock implementation of briefly.ExtractionWriter.
type ExtractionWriter struct {
	WriteExtractionFn func(ctx context.Context, url string, doc *briefly.ExtractedDocument) error
}

func (w *ExtractionWriter) WriteExtraction(ctx context.Context, url string, doc *briefly.ExtractedDocument) error {
	return w.WriteExtractionFn(ctx, url, doc)
}
