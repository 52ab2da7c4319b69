package main

import (
	"fmt"

	"github.com/aeojs/aeo"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the sites command.
func (c *SitesCmd) Run(deps *Dependencies) error {
	sites, err := deps.Sites.FindSites(deps.Ctx, aeo.SiteFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
		return err
	}

	if len(sites) == 0 {
		fmt.Fprintln(deps.Stdout, "No sites found. Use 'aeo crawl <url>' to add one.")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"ID", "URL", "Title", "Updated"})
	for _, s := range sites {
		t.AppendRow(table.Row{s.ID, s.URL, s.Title, s.UpdatedAt.Local().Format("2006-01-02 15:04")})
	}
	t.Render()
	return nil
}
