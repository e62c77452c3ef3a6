package briefly

import "unicode"

// DefaultMaxChars bounds the text sent to the structuring service when no
// marker is found.
const DefaultMaxChars = 24000

// FocusOptions configures Focus.
type FocusOptions struct {
	// Markers are matched case-insensitively. The earliest match of any
	// marker wins.
	Markers []string

	// Lead is the number of characters kept before the marker.
	Lead int

	// MaxChars caps the text when no marker is found. Zero disables the cap.
	MaxChars int
}

// Focus narrows text to its most relevant region. When a marker is found
// everything from Lead characters before it to the end of the text is kept,
// uncapped. Otherwise text longer than MaxChars is cut to its last MaxChars
// characters.
func Focus(text string, opts FocusOptions) string {
	runes := []rune(text)

	if idx := indexMarker(runes, opts.Markers); idx >= 0 {
		start := idx - opts.Lead
		if start < 0 {
			start = 0
		}
		return string(runes[start:])
	}

	if opts.MaxChars > 0 && len(runes) > opts.MaxChars {
		return string(runes[len(runes)-opts.MaxChars:])
	}
	return text
}

// indexMarker returns the rune offset of the earliest marker in runes, or -1.
func indexMarker(runes []rune, markers []string) int {
	if len(markers) == 0 {
		return -1
	}

	lower := make([]rune, len(runes))
	for i, r := range runes {
		lower[i] = unicode.ToLower(r)
	}

	best := -1
	for _, m := range markers {
		needle := []rune(m)
		for i, r := range needle {
			needle[i] = unicode.ToLower(r)
		}
		if pos := indexRunes(lower, needle); pos >= 0 && (best == -1 || pos < best) {
			best = pos
		}
	}
	return best
}

func indexRunes(haystack, needle []rune) int {
	if len(needle) == 0 {
		return -1
	}
outer:
	for i := 0; i+len(needle) <= len(haystack); i++ {
		for j, r := range needle {
			if haystack[i+j] != r {
				continue outer
			}
		}
		return i
	}
	return -1
}
