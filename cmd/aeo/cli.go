package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/generate"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Clock  generate.Clock

	// Project root and configuration file path.
	Root       string
	ConfigPath string

	Sites        aeo.SiteService
	Pages        aeo.PageService
	Crawler      aeo.SiteCrawler
	Fetcher      aeo.Fetcher
	TokenCounter aeo.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Root    string `short:"C" default:"." type:"path" help:"Project root directory"`
	Config  string `type:"path" help:"Config file (default: <root>/aeo.yaml)"`
	DB      string `default:"${db_path}" env:"AEO_DB" type:"path" help:"SQLite database for crawled sites"`
	Chrome  string `env:"AEO_CHROME" help:"Chrome or Chromium binary used for rendering"`
	Verbose bool   `short:"v" help:"Enable debug logging"`

	Generate GenerateCmd `cmd:"" help:"Generate AEO files for the project"`
	Extract  ExtractCmd  `cmd:"" help:"Print the Markdown extracted from an HTML file or URL"`
	Crawl    CrawlCmd    `cmd:"" help:"Crawl a live site and store its pages"`
	Sites    SitesCmd    `cmd:"" help:"List crawled sites"`
	Init     InitCmd     `cmd:"" help:"Write a starter aeo.yaml"`
	Check    CheckCmd    `cmd:"" help:"Show the resolved configuration"`
	Version  VersionCmd  `cmd:"" help:"Print the version"`
}

// GenerateCmd is the "generate" subcommand.
type GenerateCmd struct {
	Out         string `short:"o" help:"Output directory (default: framework output directory)"`
	URL         string `help:"Site URL"`
	Title       string `help:"Site title"`
	Description string `help:"Site description"`
	NoWidget    bool   `name:"no-widget" help:"Do not inject the widget into built pages"`
	Site        string `help:"Include pages of a crawled site, by URL"`
	CountTokens bool   `name:"count-tokens" help:"Report the token count of llms-full.txt"`
	Concurrency int    `short:"c" default:"8" help:"Concurrent page extraction limit"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Source   string        `arg:"" help:"HTML file path or URL"`
	DOM      bool          `name:"dom" help:"Use the DOM walker instead of the static extractor"`
	Render   bool          `help:"Render URLs in a headless browser first"`
	Strategy string        `default:"regexp" enum:"regexp,trafilatura,readability" help:"Static extraction strategy (regexp, trafilatura, readability)"`
	Timeout  time.Duration `short:"t" default:"10s" help:"Fetch timeout"`
}

// CrawlCmd is the "crawl" subcommand.
type CrawlCmd struct {
	URL         string        `arg:"" help:"Site URL"`
	Preview     bool          `short:"p" help:"Show URLs without fetching pages"`
	Force       bool          `short:"f" help:"Delete stored pages of the site first"`
	Filter      []string      `short:"F" name:"filter" help:"Only crawl URLs matching regex (repeatable)"`
	Exclude     []string      `short:"x" help:"Skip URLs matching regex (repeatable)"`
	Static      bool          `help:"Fetch raw HTML without a headless browser"`
	Concurrency int           `short:"c" default:"5" help:"Concurrent fetch limit"`
	MaxPages    int           `default:"1000" help:"Maximum number of pages"`
	RateLimit   float64       `default:"1" help:"Requests per second per domain"`
	Timeout     time.Duration `short:"t" default:"10s" help:"Fetch timeout per page"`
}

// SitesCmd is the "sites" subcommand.
type SitesCmd struct{}

// InitCmd is the "init" subcommand.
type InitCmd struct{}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	YAML bool `name:"yaml" help:"Print the resolved configuration as YAML"`
}

// VersionCmd is the "version" subcommand.
type VersionCmd struct{}

// Run executes the version command.
func (c *VersionCmd) Run(deps *Dependencies) error {
	_, err := io.WriteString(deps.Stdout, "aeo "+aeo.Version+"\n")
	return err
}
