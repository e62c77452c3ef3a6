package main

import (
	"fmt"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	ext, err := deps.Pipeline.Extract(deps.Ctx, c.URL)
	if err != nil {
		return report(deps, err)
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, map[string]any{
			"url":      ext.URL,
			"title":    ext.Document.Title,
			"strategy": ext.Document.Strategy,
			"words":    ext.Document.WordCount(),
			"content":  ext.Focused,
		})
	}

	fmt.Fprintf(deps.Stderr, "%s (%s, %d words)\n", ext.Document.Title, ext.Document.Strategy, ext.Document.WordCount())
	fmt.Fprintln(deps.Stdout, ext.Focused)
	return nil
}
