package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/briefly"
)

// writeRecord prints a record in human-readable form.
func writeRecord(w io.Writer, r *briefly.Record) {
	fmt.Fprintln(w, r.Title)
	fmt.Fprintf(w, "%s  (%s, %s)\n", r.URL, r.Variant, r.ID)

	switch {
	case r.Recipe != nil:
		writeRecipe(w, r.Recipe)
	case r.Summary != nil:
		writeSummary(w, r.Summary)
	}
}

func writeRecipe(w io.Writer, recipe *briefly.Recipe) {
	if recipe.Servings != "" {
		fmt.Fprintf(w, "Servings: %s\n", recipe.Servings)
	}
	if recipe.TotalTime != "" {
		fmt.Fprintf(w, "Total time: %s\n", recipe.TotalTime)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Ingredients:")
	for _, ing := range recipe.Ingredients {
		fmt.Fprintf(w, "- %s\n", ing)
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Steps:")
	for i, step := range recipe.Steps {
		fmt.Fprintf(w, "%d. %s\n", i+1, step)
	}
}

func writeSummary(w io.Writer, s *briefly.Summary) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Summary)
	fmt.Fprintln(w)
	if len(s.Keywords) > 0 {
		fmt.Fprintf(w, "Keywords: %s\n", strings.Join(s.Keywords, ", "))
	}
	fmt.Fprintf(w, "Tone: %s\n", s.Tone)
	if s.IsPolitical {
		fmt.Fprintf(w, "Political: yes (%s)\n", strings.Join(s.PoliticalTopics, ", "))
	} else {
		fmt.Fprintln(w, "Political: no")
	}
}

// writeHistoryLine prints one record as a single history line.
func writeHistoryLine(w io.Writer, r *briefly.Record) {
	fmt.Fprintf(w, "%s  %-7s  %s  %s\n",
		r.CreatedAt.Local().Format("2006-01-02 15:04"), r.Variant, r.Title, r.URL)
}
