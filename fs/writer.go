// Package fs writes extracted text to disk for inspection.
package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fwojciec/briefly"
)

const banner = "================ EXTRACTED CONTENT ================"

// FormatExtraction formats an extracted document with a header naming its
// source, title and strategy.
func FormatExtraction(url string, doc *briefly.ExtractedDocument) string {
	var b strings.Builder
	b.WriteString("URL: ")
	b.WriteString(url)
	b.WriteString("\nTITLE: ")
	b.WriteString(doc.Title)
	b.WriteString("\nSTRATEGY: ")
	b.WriteString(doc.Strategy)
	b.WriteString("\n\n")
	b.WriteString(banner)
	b.WriteString("\n\n")
	b.WriteString(doc.Content)
	b.WriteString("\n\n")
	b.WriteString(strings.Repeat("=", len(banner)))
	b.WriteString("\n")
	return b.String()
}

// Ensure DebugWriter implements briefly.ExtractionWriter at compile time.
var _ briefly.ExtractionWriter = (*DebugWriter)(nil)

// DebugWriter writes each extraction to its own file in a directory.
type DebugWriter struct {
	dir string

	// Now returns the time used to name files.
	Now func() time.Time
}

// NewDebugWriter creates a new DebugWriter that writes to dir.
func NewDebugWriter(dir string) *DebugWriter {
	return &DebugWriter{dir: dir, Now: time.Now}
}

// WriteExtraction writes doc to extracted_<unixnano>.txt. The file is
// written to a temporary name first and renamed into place.
func (w *DebugWriter) WriteExtraction(ctx context.Context, url string, doc *briefly.ExtractedDocument) error {
	if doc == nil {
		return briefly.Errorf(briefly.EINVALID, "document required")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return err
	}

	name := fmt.Sprintf("extracted_%d.txt", w.Now().UnixNano())
	tmp, err := os.CreateTemp(w.dir, name+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.WriteString(FormatExtraction(url, doc)); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), filepath.Join(w.dir, name))
}
