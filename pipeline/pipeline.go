// Package pipeline turns a URL or pasted text into a stored record.
// It coordinates fetching, extraction, focusing, structuring and storage.
package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/briefly"
)

// MinTextChars is the minimum length of pasted text, after trimming.
const MinTextChars = 50

// DefaultHistoryLimit is used when History is called with a limit <= 0.
const DefaultHistoryLimit = 20

// Pipeline runs one variant end to end. It holds no mutable state and is
// safe for concurrent use.
type Pipeline struct {
	Fetcher    briefly.Fetcher
	Extractor  *briefly.Chain
	Structurer briefly.Structurer
	Records    briefly.RecordService
	Variant    briefly.Variant

	// Debug, if set, receives a copy of every extraction. Write failures
	// are logged and do not fail the run.
	Debug briefly.ExtractionWriter

	// Logger defaults to discarding output.
	Logger *slog.Logger
}

// Extraction is the text of a fetched page before and after focusing.
type Extraction struct {
	URL      string
	Document *briefly.ExtractedDocument
	Focused  string
}

// Extract fetches rawURL and returns its focused text without structuring
// it.
func (p *Pipeline) Extract(ctx context.Context, rawURL string) (*Extraction, error) {
	rawURL = strings.TrimSpace(rawURL)
	if rawURL == "" {
		return nil, briefly.Errorf(briefly.EINVALID, "URL is required.")
	}
	if err := p.Variant.Validate(); err != nil {
		return nil, err
	}

	res, err := p.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := p.Extractor.Extract(res.Body, res.URL)
	if err != nil {
		return nil, err
	}

	if p.Debug != nil {
		if err := p.Debug.WriteExtraction(ctx, rawURL, doc); err != nil {
			p.logger().Warn("debug write failed", "url", rawURL, "err", err)
		}
	}

	return &Extraction{
		URL:      rawURL,
		Document: doc,
		Focused:  briefly.Focus(doc.Content, p.Variant.FocusOptions()),
	}, nil
}

// FromURL fetches rawURL, structures its content and stores the result.
// Returns a *briefly.RejectedError, without storing anything, when the text
// does not belong to the variant's domain.
func (p *Pipeline) FromURL(ctx context.Context, rawURL string) (*briefly.Record, error) {
	ext, err := p.Extract(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	result, err := p.structure(ctx, ext.Focused, pageRejection)
	if err != nil {
		return nil, err
	}

	record := assemble(result, ext.URL, "", ext.Document.Title, ext.Focused)
	if err := p.Records.CreateRecord(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// FromText structures pasted text and stores the result. A non-blank title
// overrides the structured title. An empty sourceURL is stored as
// briefly.ManualInputURL.
func (p *Pipeline) FromText(ctx context.Context, text, title, sourceURL string) (*briefly.Record, error) {
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinTextChars {
		return nil, briefly.Errorf(briefly.EINVALID, "Please provide at least a few sentences of text.")
	}
	if err := p.Variant.Validate(); err != nil {
		return nil, err
	}

	focused := briefly.Focus(text, p.Variant.FocusOptions())

	result, err := p.structure(ctx, focused, pastedRejection)
	if err != nil {
		return nil, err
	}

	sourceURL = strings.TrimSpace(sourceURL)
	if sourceURL == "" {
		sourceURL = briefly.ManualInputURL
	}

	record := assemble(result, sourceURL, strings.TrimSpace(title), "", focused)
	if err := p.Records.CreateRecord(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

// History returns the most recent records, newest first.
func (p *Pipeline) History(ctx context.Context, limit int) ([]*briefly.Record, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return p.Records.FindRecords(ctx, briefly.RecordFilter{Limit: limit})
}

func (p *Pipeline) structure(ctx context.Context, text string, rejection map[briefly.Variant]string) (*briefly.Result, error) {
	result, err := p.Structurer.Structure(ctx, text, p.Variant)
	if err != nil {
		return nil, err
	}
	if !result.Accepted() {
		return nil, &briefly.RejectedError{Variant: p.Variant, Message: rejection[p.Variant]}
	}
	return result, nil
}

func (p *Pipeline) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.Logger
}

var pageRejection = map[briefly.Variant]string{
	briefly.VariantRecipe:  "This page doesn't look like a cooking recipe. Try another link.",
	briefly.VariantSummary: "This page doesn't look like an article that can be summarized. Try another link.",
}

var pastedRejection = map[briefly.Variant]string{
	briefly.VariantRecipe:  "The text you pasted doesn't look like a cooking recipe. Make sure you include ingredients and steps.",
	briefly.VariantSummary: "The text you pasted doesn't look like an article that can be summarized.",
}

// assemble builds the record for an accepted result. title is the pasted
// title override; docTitle is the extracted page title.
func assemble(result *briefly.Result, url, title, docTitle, text string) *briefly.Record {
	record := &briefly.Record{
		Variant: result.Variant,
		URL:     url,
		Text:    text,
	}

	switch result.Variant {
	case briefly.VariantRecipe:
		if title != "" {
			result.Recipe.Title = title
		}
		record.Title = result.Recipe.Title
		record.Recipe = result.Recipe
	case briefly.VariantSummary:
		switch {
		case title != "":
			record.Title = title
		case strings.TrimSpace(docTitle) != "":
			record.Title = strings.TrimSpace(docTitle)
		default:
			record.Title = briefly.DefaultTitle
		}
		record.Summary = result.Summary
	}
	return record
}
