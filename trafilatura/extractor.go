// Package trafilatura provides an alternative primary extraction strategy
// built on go-trafilatura.
package trafilatura

import (
	"net/url"
	"strings"

	"github.com/fwojciec/briefly"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements briefly.Strategy at compile time.
var _ briefly.Strategy = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the strategy's identifier.
func (e *Extractor) Name() string {
	return "trafilatura"
}

// Extract processes raw HTML and returns the main content as text.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*briefly.ExtractedDocument, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, briefly.Errorf(briefly.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if pageURL != "" {
		if u, err := url.Parse(pageURL); err == nil {
			opts.OriginalURL = u
		}
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	content := briefly.NormalizeText(result.ContentText)
	if content == "" {
		return nil, nil
	}

	title := strings.TrimSpace(result.Metadata.Title)
	if title == "" {
		title = briefly.DefaultTitle
	}

	return &briefly.ExtractedDocument{
		Title:    title,
		Content:  content,
		Strategy: e.Name(),
	}, nil
}
