package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/aeojs/aeo"
	"github.com/aeojs/aeo/crawl"
	"github.com/aeojs/aeo/gemini"
	"github.com/aeojs/aeo/generate"
	"github.com/aeojs/aeo/goquery"
	aeohttp "github.com/aeojs/aeo/http"
	aeoregexp "github.com/aeojs/aeo/regexp"
	"github.com/aeojs/aeo/rod"
	aeoslog "github.com/aeojs/aeo/slog"
	"github.com/aeojs/aeo/sqlite"
	aeoyaml "github.com/aeojs/aeo/yaml"
	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Variables from a local .env file fill in unset environment variables.
	_ = godotenv.Load()

	m := NewMain()

	err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	_ = m.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Default database path, used unless --db or AEO_DB is set.
	DBPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Clock stamps generated artifacts. Defaults to the wall clock.
	Clock generate.Clock

	// Services for end-to-end testing. When set they replace the live
	// fetcher and the Gemini tokenizer.
	Fetcher      aeo.Fetcher
	TokenCounter aeo.TokenCounter

	browser *rod.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	var errs []error
	if m.browser != nil {
		errs = append(errs, m.browser.Close())
		m.browser = nil
	}
	if m.DB != nil {
		errs = append(errs, m.DB.Close())
		m.DB = nil
	}
	return errors.Join(errs...)
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("aeo"),
		kong.Description("Generate Answer Engine Optimization files for a web site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{"db_path": m.DBPath},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'aeo --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:        ctx,
		Stdout:     stdout,
		Stderr:     stderr,
		Logger:     newLogger(stderr, cli.Verbose),
		Clock:      m.Clock,
		Root:       cli.Root,
		ConfigPath: cli.Config,
	}
	if deps.ConfigPath == "" {
		deps.ConfigPath = filepath.Join(cli.Root, aeoyaml.DefaultConfigFile)
	}

	// Wire command-specific dependencies based on command
	switch cmd := strings.Fields(kongCtx.Command())[0]; {
	case cmd == "crawl":
		if err := m.openDB(deps, cli.DB); err != nil {
			return err
		}
		fetcher, err := m.openFetcher(ctx, deps, cli.Crawl.URL, fetchOptions{
			Static:  cli.Crawl.Static,
			Timeout: cli.Crawl.Timeout,
			Chrome:  cli.Chrome,
		})
		if err != nil {
			return err
		}
		filter, err := aeo.NewURLFilter(cli.Crawl.Filter, cli.Crawl.Exclude)
		if err != nil {
			return err
		}
		limiter := crawl.NewDomainLimiter(cli.Crawl.RateLimit)
		deps.Logger.Debug("crawl rate limit", "site", cli.Crawl.URL, "interval", limiter.Interval())
		deps.Crawler = &crawl.Crawler{
			Sitemaps:    aeoslog.NewLoggingSitemapService(aeohttp.NewSitemapService(nil), deps.Logger),
			Fetcher:     fetcher,
			Links:       goquery.NewLinkExtractor(),
			Extractor:   aeoslog.NewLoggingDocumentExtractor(goquery.NewDocumentExtractor(), deps.Logger),
			RateLimiter: limiter,
			Filter:      filter,
			Logger:      deps.Logger,
			Meta:        aeoregexp.ReadMeta,
			Concurrency: cli.Crawl.Concurrency,
			MaxPages:    cli.Crawl.MaxPages,
		}

	case cmd == "sites":
		if err := m.openDB(deps, cli.DB); err != nil {
			return err
		}

	case cmd == "generate":
		if cli.Generate.Site != "" {
			if err := m.openDB(deps, cli.DB); err != nil {
				return err
			}
		}
		if cli.Generate.CountTokens {
			counter, err := m.tokenCounter()
			if err != nil {
				return err
			}
			deps.TokenCounter = counter
		}

	case cmd == "extract" && isURL(cli.Extract.Source):
		fetcher, err := m.openFetcher(ctx, deps, cli.Extract.Source, fetchOptions{
			Static:  !cli.Extract.Render,
			Timeout: cli.Extract.Timeout,
			Chrome:  cli.Chrome,
		})
		if err != nil {
			return err
		}
		deps.Fetcher = fetcher
	}

	return kongCtx.Run(deps)
}

// openDB opens the SQLite database and wires the storage services.
func (m *Main) openDB(deps *Dependencies, path string) error {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
	}

	m.DB = sqlite.NewDB(path)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Set AEO_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", path, err)
	}

	deps.Sites = sqlite.NewSiteService(m.DB)
	deps.Pages = sqlite.NewPageService(m.DB)
	return nil
}

// fetchOptions configures fetching of live pages.
type fetchOptions struct {
	Static  bool
	Timeout time.Duration
	Chrome  string
}

// openFetcher returns the fetcher for live pages. Unless opts.Static is set,
// a headless browser is started and used when probeURL renders client-side.
func (m *Main) openFetcher(ctx context.Context, deps *Dependencies, probeURL string, opts fetchOptions) (aeo.Fetcher, error) {
	if m.Fetcher != nil {
		return m.Fetcher, nil
	}

	httpFetcher := aeohttp.NewFetcher(aeohttp.WithTimeout(opts.Timeout))
	if opts.Static {
		return aeoslog.NewLoggingFetcher(httpFetcher, deps.Logger), nil
	}

	var managerOpts []rod.ManagerOption
	if opts.Chrome != "" {
		managerOpts = append(managerOpts, rod.WithBrowserBin(opts.Chrome))
	}
	browser, err := rod.NewFetcher(
		rod.WithFetchTimeout(opts.Timeout),
		rod.WithManagerOptions(managerOpts...),
	)
	if err != nil {
		fmt.Fprintln(deps.Stderr, "Hint: Chrome or Chromium must be installed, or pass --static")
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	m.browser = browser

	fetcher := crawl.SelectFetcher(ctx, probeURL, httpFetcher, browser, aeoregexp.NewExtractor())
	return aeoslog.NewLoggingFetcher(fetcher, deps.Logger), nil
}

func (m *Main) tokenCounter() (aeo.TokenCounter, error) {
	if m.TokenCounter != nil {
		return m.TokenCounter, nil
	}
	counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create token counter: %w", err)
	}
	return counter, nil
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "aeo.db"
	}
	return filepath.Join(home, ".aeo", "aeo.db")
}

func isURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}
