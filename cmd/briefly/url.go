package main

// Run executes the url command.
func (c *URLCmd) Run(deps *Dependencies) error {
	record, err := deps.Pipeline.FromURL(deps.Ctx, c.URL)
	if err != nil {
		return report(deps, err)
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, record)
	}
	writeRecord(deps.Stdout, record)
	return nil
}
