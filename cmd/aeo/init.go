package main

import (
	"fmt"

	"github.com/aeojs/aeo"
	aeoyaml "github.com/aeojs/aeo/yaml"
)

// Run executes the init command.
func (c *InitCmd) Run(deps *Dependencies) error {
	if err := aeoyaml.WriteConfigTemplate(deps.ConfigPath); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
		return err
	}
	fmt.Fprintf(deps.Stdout, "Created %s\n", relPath(deps.Root, deps.ConfigPath))
	fmt.Fprintln(deps.Stdout, "Edit it, then run 'aeo generate'.")
	return nil
}
