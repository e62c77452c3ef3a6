// Package readability provides the primary extraction strategy, built on
// go-readability's port of Mozilla Readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/briefly"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements briefly.Strategy at compile time.
var _ briefly.Strategy = (*Extractor)(nil)

// Extractor wraps go-readability to isolate the main content of a page.
type Extractor struct {
	// Converter, if set, renders the article HTML instead of using
	// readability's flattened text. This keeps list items on their own
	// lines.
	Converter briefly.Converter
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Name returns the strategy's identifier.
func (e *Extractor) Name() string {
	return "readability"
}

// Extract scores the page and returns the text of its main content region.
// Returns nil when readability finds no content.
func (e *Extractor) Extract(rawHTML string, pageURL string) (*briefly.ExtractedDocument, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, briefly.Errorf(briefly.EINVALID, "empty HTML input")
	}

	var u *url.URL
	if pageURL != "" {
		if parsed, err := url.Parse(pageURL); err == nil {
			u = parsed
		}
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), u)
	if err != nil {
		return nil, err
	}

	content := briefly.NormalizeText(article.TextContent)
	if e.Converter != nil && article.Content != "" {
		if md, err := e.Converter.Convert(article.Content); err == nil && strings.TrimSpace(md) != "" {
			content = briefly.NormalizeText(md)
		}
	}
	if content == "" {
		return nil, nil
	}

	title := strings.TrimSpace(article.Title)
	if title == "" {
		title = briefly.DefaultTitle
	}

	return &briefly.ExtractedDocument{
		Title:    title,
		Content:  content,
		Strategy: e.Name(),
	}, nil
}
