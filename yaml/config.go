// Package yaml reads and writes aeo.yaml configuration files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/aeojs/aeo"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the configuration file name looked up in the
// project root.
const DefaultConfigFile = "aeo.yaml"

// LoadConfig reads and validates the configuration file at path. Unknown
// keys are rejected. Returns ENOTFOUND if the file does not exist.
func LoadConfig(path string) (*aeo.Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, aeo.Errorf(aeo.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return nil, err
	}
	return ParseConfig(data)
}

// ParseConfig decodes and validates configuration data. Empty data yields
// an empty configuration.
func ParseConfig(data []byte) (*aeo.Config, error) {
	var cfg aeo.Config

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, aeo.Errorf(aeo.EINVALID, "invalid config: %v", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// WriteConfigTemplate writes a commented starter configuration to path.
// An existing file is never overwritten.
func WriteConfigTemplate(path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return aeo.Errorf(aeo.EINVALID, "%s already exists; remove it first to reinitialize", path)
	} else if err != nil {
		return err
	}
	if _, err := f.WriteString(configTemplate); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

const configTemplate = `# aeo configuration
title: My Site
url: https://example.com
description: A site optimized for AI discovery

# Directories default to the detected framework's layout.
# contentDir: content
# outDir: dist
# buildDir: dist
# pagesDir: pages

# Toggle individual generators.
generators:
  robotsTxt: true
  llmsTxt: true
  llmsFullTxt: true
  rawMarkdown: true
  manifest: true
  sitemap: true
  aiIndex: true

robots:
  allow:
    - /
  disallow:
    - /admin
  crawlDelay: 0

widget:
  enabled: true
  position: bottom-right
  humanLabel: Human
  aiLabel: AI
  showBadge: true
  theme:
    background: "rgba(18, 18, 24, 0.9)"
    text: "#C0C0C5"
    accent: "#E8E8EA"
    badge: "#4ADE80"

# Pages that discovery cannot find.
# pages:
#   - pathname: /pricing
#     title: Pricing
#     description: Plans and prices
`

// MarshalResolved renders a resolved configuration as YAML, for display.
func MarshalResolved(cfg *aeo.ResolvedConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(resolvedView(cfg)); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// resolvedView maps a resolved configuration onto the file layout.
func resolvedView(cfg *aeo.ResolvedConfig) *aeo.Config {
	return &aeo.Config{
		Title:       cfg.Title,
		Description: cfg.Description,
		URL:         cfg.URL,
		ContentDir:  cfg.ContentDir,
		OutDir:      cfg.OutDir,
		BuildDir:    cfg.BuildDir,
		PagesDir:    cfg.PagesDir,
		Generators: aeo.GeneratorsConfig{
			RobotsTxt:   aeo.Bool(cfg.Generators.RobotsTxt),
			LLMsTxt:     aeo.Bool(cfg.Generators.LLMsTxt),
			LLMsFullTxt: aeo.Bool(cfg.Generators.LLMsFullTxt),
			RawMarkdown: aeo.Bool(cfg.Generators.RawMarkdown),
			Manifest:    aeo.Bool(cfg.Generators.Manifest),
			Sitemap:     aeo.Bool(cfg.Generators.Sitemap),
			AIIndex:     aeo.Bool(cfg.Generators.AIIndex),
		},
		Robots: cfg.Robots,
		Widget: aeo.WidgetConfig{
			Enabled:    aeo.Bool(cfg.Widget.Enabled),
			Position:   cfg.Widget.Position,
			Theme:      cfg.Widget.Theme,
			HumanLabel: cfg.Widget.HumanLabel,
			AILabel:    cfg.Widget.AILabel,
			ShowBadge:  aeo.Bool(cfg.Widget.ShowBadge),
		},
		Pages: cfg.Pages,
	}
}
