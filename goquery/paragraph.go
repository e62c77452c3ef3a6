package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/briefly"
)

// Ensure ParagraphExtractor implements briefly.Strategy at compile time.
var _ briefly.Strategy = (*ParagraphExtractor)(nil)

// ParagraphExtractor is the last resort: it concatenates every <p> on the
// page in document order.
type ParagraphExtractor struct{}

// NewParagraphExtractor creates a new ParagraphExtractor.
func NewParagraphExtractor() *ParagraphExtractor {
	return &ParagraphExtractor{}
}

// Name returns the strategy's identifier.
func (p *ParagraphExtractor) Name() string {
	return "paragraphs"
}

// Extract returns the text of all paragraphs separated by blank lines.
func (p *ParagraphExtractor) Extract(rawHTML string, pageURL string) (*briefly.ExtractedDocument, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if text := Text(sel); text != "" {
			paragraphs = append(paragraphs, text)
		}
	})
	if len(paragraphs) == 0 {
		return nil, nil
	}

	return &briefly.ExtractedDocument{
		Title:    pageTitle(doc),
		Content:  strings.Join(paragraphs, "\n\n"),
		Strategy: p.Name(),
	}, nil
}
