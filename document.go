package briefly

import (
	"context"
	"strings"
)

// ExtractedDocument is the readable text of a page.
type ExtractedDocument struct {
	Title string `json:"title"`

	// Content is plain text, never HTML. Paragraphs are separated by a
	// blank line.
	Content string `json:"content"`

	// Strategy names the extraction strategy that produced the document.
	Strategy string `json:"strategy"`
}

// WordCount returns the number of whitespace-separated words in the content.
func (d *ExtractedDocument) WordCount() int {
	return len(strings.Fields(d.Content))
}

// DefaultTitle is used when a page has no usable title.
const DefaultTitle = "Untitled page"

// ExtractionWriter keeps a copy of extracted text for inspection.
type ExtractionWriter interface {
	WriteExtraction(ctx context.Context, url string, doc *ExtractedDocument) error
}

// NormalizeText trims every line, collapses runs of spaces and tabs, and
// reduces runs of blank lines to a single paragraph break.
func NormalizeText(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.FieldsFunc(line, func(r rune) bool {
			return r == ' ' || r == '\t' || r == '\u00a0'
		}), " ")
		if line == "" {
			blank = len(out) > 0
			continue
		}
		if blank {
			out = append(out, "")
			blank = false
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
