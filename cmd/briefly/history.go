package main

import (
	"fmt"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	records, err := deps.Pipeline.History(deps.Ctx, c.Limit)
	if err != nil {
		return report(deps, err)
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, records)
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records yet. Use 'briefly url' or 'briefly text' to create one.")
		return nil
	}

	for _, r := range records {
		writeHistoryLine(deps.Stdout, r)
	}
	return nil
}
