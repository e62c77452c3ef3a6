package briefly

// Converter renders extracted HTML as readable text.
type Converter interface {
	// Convert transforms an HTML fragment into Markdown text. The result
	// keeps headings, list items and paragraph breaks but contains no tags.
	Convert(html string) (string, error)
}
