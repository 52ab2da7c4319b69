package main

import (
	"fmt"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/generate"
	aeoyaml "github.com/aeojs/aeo/yaml"
	"github.com/jedib0t/go-pretty/v6/table"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	proj, err := loadProject(deps)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", aeo.ErrorMessage(err))
		return err
	}
	cfg, err := proj.resolve(deps.Root)
	if err != nil {
		return err
	}

	if c.YAML {
		data, err := aeoyaml.MarshalResolved(cfg)
		if err != nil {
			return err
		}
		_, err = deps.Stdout.Write(data)
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(deps.Stdout)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Setting", "Value"})
	t.AppendRows([]table.Row{
		{"Framework", proj.Info.Framework},
		{"Content dir", relPath(deps.Root, cfg.ContentDir)},
		{"Pages dir", relPath(deps.Root, cfg.PagesDir)},
		{"Build dir", relPath(deps.Root, cfg.BuildDir)},
		{"Output dir", relPath(deps.Root, cfg.OutDir)},
		{"Title", cfg.Title},
		{"URL", cfg.URL},
		{"Widget", onOff(cfg.Widget.Enabled)},
	})
	t.AppendSeparator()
	for _, g := range []struct {
		name    string
		enabled bool
	}{
		{generate.RobotsFile, cfg.Generators.RobotsTxt},
		{generate.LLMsFile, cfg.Generators.LLMsTxt},
		{generate.LLMsFullFile, cfg.Generators.LLMsFullTxt},
		{"*.md", cfg.Generators.RawMarkdown},
		{generate.ManifestFile, cfg.Generators.Manifest},
		{generate.SitemapFile, cfg.Generators.Sitemap},
		{generate.AIIndexFile, cfg.Generators.AIIndex},
	} {
		t.AppendRow(table.Row{g.name, onOff(g.enabled)})
	}
	t.Render()

	if proj.HasConfig {
		fmt.Fprintf(deps.Stdout, "Config file: %s\n", relPath(deps.Root, deps.ConfigPath))
	} else {
		fmt.Fprintln(deps.Stdout, "Config file: not found (using defaults)")
	}
	if cfg.URL == aeo.DefaultURL {
		fmt.Fprintf(deps.Stdout, "Warning: URL is %s. Set url in the config file or pass --url to generate.\n", aeo.DefaultURL)
	}
	return nil
}

func onOff(enabled bool) string {
	if enabled {
		return "enabled"
	}
	return "disabled"
}
