package briefly

import "unicode/utf8"

// Strategy extracts readable text from an HTML page.
type Strategy interface {
	// Name returns the strategy's identifier.
	Name() string

	// Extract returns the page's readable text. A strategy that finds
	// nothing returns a nil document and a nil error.
	Extract(html string, pageURL string) (*ExtractedDocument, error)
}

// Extraction thresholds used when a Chain leaves them unset.
const (
	DefaultMinChars = 250
	DefaultMinWords = 20
)

// Chain tries strategies in order and returns the first document that is
// long enough. When every result is short, the latest one with enough words
// wins, so a fallback replaces a thin primary result. Strategy errors count
// as "no result" so a broken parser in one strategy never prevents the next
// from running.
type Chain struct {
	Strategies []Strategy

	// MinChars is the content length, in characters, at which a result is
	// accepted without consulting later strategies.
	MinChars int

	// MinWords is the minimum word count of the final result.
	MinWords int
}

// NewChain returns a Chain with default thresholds.
func NewChain(strategies ...Strategy) *Chain {
	return &Chain{
		Strategies: strategies,
		MinChars:   DefaultMinChars,
		MinWords:   DefaultMinWords,
	}
}

// Extract runs the strategies against html. Returns EEXTRACT if no
// strategy produced enough text.
func (c *Chain) Extract(html string, pageURL string) (*ExtractedDocument, error) {
	minChars := c.MinChars
	if minChars <= 0 {
		minChars = DefaultMinChars
	}
	minWords := c.MinWords
	if minWords <= 0 {
		minWords = DefaultMinWords
	}

	var candidate *ExtractedDocument
	for _, s := range c.Strategies {
		doc, err := s.Extract(html, pageURL)
		if err != nil || doc == nil || doc.Content == "" {
			continue
		}
		if doc.Strategy == "" {
			doc.Strategy = s.Name()
		}
		if utf8.RuneCountInString(doc.Content) >= minChars {
			return doc, nil
		}
		if candidate == nil || doc.WordCount() >= minWords || candidate.WordCount() < minWords {
			candidate = doc
		}
	}

	if candidate == nil || candidate.WordCount() < minWords {
		return nil, Errorf(EEXTRACT, "Couldn't reliably extract readable text from this page. Some sites are heavily scripted or use unusual layouts.")
	}
	return candidate, nil
}
