package main

import (
	"io"
	"os"

	"github.com/fwojciec/briefly"
)

// Run executes the text command.
func (c *TextCmd) Run(deps *Dependencies) error {
	text, err := c.read(deps.Stdin)
	if err != nil {
		return report(deps, briefly.Errorf(briefly.EINVALID, "Could not read %s: %v", c.File, err))
	}

	record, err := deps.Pipeline.FromText(deps.Ctx, text, c.Title, c.URL)
	if err != nil {
		return report(deps, err)
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, record)
	}
	writeRecord(deps.Stdout, record)
	return nil
}

func (c *TextCmd) read(stdin io.Reader) (string, error) {
	if c.File == "" || c.File == "-" {
		b, err := io.ReadAll(stdin)
		return string(b), err
	}
	b, err := os.ReadFile(c.File)
	return string(b), err
}
