package aeo

// Default site settings applied by ResolveConfig.
const (
	DefaultTitle = "My Site"
	DefaultURL   = "https://example.com"
)

// Widget positions.
const (
	PositionBottomRight = "bottom-right"
	PositionBottomLeft  = "bottom-left"
	PositionTopRight    = "top-right"
	PositionTopLeft     = "top-left"
)

// Config is the user-supplied configuration. Zero values mean "use the
// default"; boolean toggles are pointers so that an explicit false can be
// told apart from an omitted value.
type Config struct {
	Title       string           `yaml:"title,omitempty"`
	Description string           `yaml:"description,omitempty"`
	URL         string           `yaml:"url,omitempty"`
	ContentDir  string           `yaml:"contentDir,omitempty"`
	OutDir      string           `yaml:"outDir,omitempty"`
	BuildDir    string           `yaml:"buildDir,omitempty"`
	PagesDir    string           `yaml:"pagesDir,omitempty"`
	Generators  GeneratorsConfig `yaml:"generators,omitempty"`
	Robots      RobotsConfig     `yaml:"robots,omitempty"`
	Widget      WidgetConfig     `yaml:"widget,omitempty"`
	Pages       []*Page          `yaml:"pages,omitempty"`
}

// GeneratorsConfig toggles individual artifact generators.
type GeneratorsConfig struct {
	RobotsTxt   *bool `yaml:"robotsTxt,omitempty"`
	LLMsTxt     *bool `yaml:"llmsTxt,omitempty"`
	LLMsFullTxt *bool `yaml:"llmsFullTxt,omitempty"`
	RawMarkdown *bool `yaml:"rawMarkdown,omitempty"`
	Manifest    *bool `yaml:"manifest,omitempty"`
	Sitemap     *bool `yaml:"sitemap,omitempty"`
	AIIndex     *bool `yaml:"aiIndex,omitempty"`
}

// RobotsConfig customizes robots.txt.
type RobotsConfig struct {
	Allow      []string `yaml:"allow,omitempty"`
	Disallow   []string `yaml:"disallow,omitempty"`
	CrawlDelay int      `yaml:"crawlDelay,omitempty"`
}

// WidgetConfig configures the human/AI view toggle widget.
type WidgetConfig struct {
	Enabled    *bool       `yaml:"enabled,omitempty"`
	Position   string      `yaml:"position,omitempty"`
	Theme      WidgetTheme `yaml:"theme,omitempty"`
	HumanLabel string      `yaml:"humanLabel,omitempty"`
	AILabel    string      `yaml:"aiLabel,omitempty"`
	ShowBadge  *bool       `yaml:"showBadge,omitempty"`
}

// WidgetTheme holds the widget colors as CSS color values.
type WidgetTheme struct {
	Background string `yaml:"background,omitempty" json:"background"`
	Text       string `yaml:"text,omitempty" json:"text"`
	Accent     string `yaml:"accent,omitempty" json:"accent"`
	Badge      string `yaml:"badge,omitempty" json:"badge"`
}

// ResolvedConfig is a Config with every default applied.
type ResolvedConfig struct {
	Title       string
	Description string
	URL         string
	ContentDir  string
	OutDir      string
	BuildDir    string
	PagesDir    string
	Generators  Generators
	Robots      RobotsConfig
	Widget      Widget
	Pages       []*Page
}

// Generators reports which artifacts are produced.
type Generators struct {
	RobotsTxt   bool
	LLMsTxt     bool
	LLMsFullTxt bool
	RawMarkdown bool
	Manifest    bool
	Sitemap     bool
	AIIndex     bool
}

// Widget is the resolved widget configuration, serialized into the page
// script that boots the widget.
type Widget struct {
	Enabled    bool        `json:"enabled"`
	Position   string      `json:"position"`
	Theme      WidgetTheme `json:"theme"`
	HumanLabel string      `json:"humanLabel"`
	AILabel    string      `json:"aiLabel"`
	ShowBadge  bool        `json:"showBadge"`
}

// Validate returns an error if the configuration contains invalid fields.
func (c *Config) Validate() error {
	switch c.Widget.Position {
	case "", PositionBottomRight, PositionBottomLeft, PositionTopRight, PositionTopLeft:
	default:
		return Errorf(EINVALID, "invalid widget position %q", c.Widget.Position)
	}
	if c.Robots.CrawlDelay < 0 {
		return Errorf(EINVALID, "robots crawl delay must not be negative")
	}
	for _, p := range c.Pages {
		if err := p.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// ResolveConfig applies defaults to cfg. Directories not set explicitly come
// from the detected framework. The build directory defaults to the output
// directory, since pre-rendered HTML lives where artifacts are written.
func ResolveConfig(cfg *Config, info FrameworkInfo) *ResolvedConfig {
	if cfg == nil {
		cfg = &Config{}
	}

	r := &ResolvedConfig{
		Title:       or(cfg.Title, DefaultTitle),
		Description: cfg.Description,
		URL:         or(cfg.URL, DefaultURL),
		ContentDir:  or(cfg.ContentDir, info.ContentDir),
		OutDir:      or(cfg.OutDir, info.OutDir),
		PagesDir:    cfg.PagesDir,
		Robots:      cfg.Robots,
		Pages:       cfg.Pages,
		Generators: Generators{
			RobotsTxt:   enabled(cfg.Generators.RobotsTxt),
			LLMsTxt:     enabled(cfg.Generators.LLMsTxt),
			LLMsFullTxt: enabled(cfg.Generators.LLMsFullTxt),
			RawMarkdown: enabled(cfg.Generators.RawMarkdown),
			Manifest:    enabled(cfg.Generators.Manifest),
			Sitemap:     enabled(cfg.Generators.Sitemap),
			AIIndex:     enabled(cfg.Generators.AIIndex),
		},
		Widget: Widget{
			Enabled:  enabled(cfg.Widget.Enabled),
			Position: or(cfg.Widget.Position, PositionBottomRight),
			Theme: WidgetTheme{
				Background: or(cfg.Widget.Theme.Background, "rgba(18, 18, 24, 0.9)"),
				Text:       or(cfg.Widget.Theme.Text, "#C0C0C5"),
				Accent:     or(cfg.Widget.Theme.Accent, "#E8E8EA"),
				Badge:      or(cfg.Widget.Theme.Badge, "#4ADE80"),
			},
			HumanLabel: or(cfg.Widget.HumanLabel, "Human"),
			AILabel:    or(cfg.Widget.AILabel, "AI"),
			ShowBadge:  enabled(cfg.Widget.ShowBadge),
		},
	}
	r.BuildDir = or(cfg.BuildDir, r.OutDir)
	if len(r.Robots.Allow) == 0 {
		r.Robots.Allow = []string{"/"}
	}
	return r
}

// Bool returns a pointer to b, for building Config values.
func Bool(b bool) *bool {
	return &b
}

func or(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

func enabled(b *bool) bool {
	return b == nil || *b
}
