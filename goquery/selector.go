package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/briefly"
)

// DefaultContentSelectors are tried in order. They match the article and
// recipe containers used by common blog themes and recipe plugins.
var DefaultContentSelectors = []string{
	"article",
	"main",
	`[class*="recipe"]`,
	`[id*="recipe"]`,
	".content",
	".entry-content",
	".post",
	".post-content",
	".recipe-card",
	".wprm-recipe-container",
	".tasty-recipes",
	".instructions",
	".ingredients",
}

// Ensure SelectorExtractor implements briefly.Strategy at compile time.
var _ briefly.Strategy = (*SelectorExtractor)(nil)

// SelectorExtractor collects the text of every element matching a list of
// content selectors.
type SelectorExtractor struct {
	Selectors []string
}

// NewSelectorExtractor creates a SelectorExtractor using
// DefaultContentSelectors.
func NewSelectorExtractor() *SelectorExtractor {
	return &SelectorExtractor{Selectors: DefaultContentSelectors}
}

// Name returns the strategy's identifier.
func (s *SelectorExtractor) Name() string {
	return "selectors"
}

// Extract returns the text of all matching elements in selector order,
// joined by blank lines. Identical blocks are kept once.
func (s *SelectorExtractor) Extract(rawHTML string, pageURL string) (*briefly.ExtractedDocument, error) {
	doc, err := parse(rawHTML)
	if err != nil {
		return nil, err
	}

	var blocks []string
	for _, selector := range s.Selectors {
		doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
			blocks = append(blocks, Text(sel))
		})
	}

	content := joinBlocks(blocks)
	if content == "" {
		return nil, nil
	}

	return &briefly.ExtractedDocument{
		Title:    pageTitle(doc),
		Content:  content,
		Strategy: s.Name(),
	}, nil
}
