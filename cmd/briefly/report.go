package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/briefly"
)

// reportedError marks an error that has already been written for the user.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// report writes the caller-facing form of err and returns it wrapped as a
// reportedError. In JSON mode the failure object goes to stdout. The cause
// of an unclassified failure is only logged.
func report(deps *Dependencies, err error) error {
	f := briefly.Classify(err)
	if f.Code == briefly.CodeUnknown && deps.Logger != nil {
		deps.Logger.Error("command failed", "err", err)
	}
	if deps.JSON {
		_ = writeJSON(deps.Stdout, f)
	} else {
		fmt.Fprintf(deps.Stderr, "%s: %s\n", f.Code, f.Message)
		if f.Recoverable {
			fmt.Fprintln(deps.Stderr, "Hint: Copy the page text and run 'briefly text --file page.txt' instead")
		}
	}
	return &reportedError{err: err}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
