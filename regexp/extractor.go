// Package regexp implements static HTML to Markdown extraction as an ordered
// pipeline of named regular-expression rewrites. It does not build a parse
// tree: nested elements of the same tag are not handled by the strip steps,
// and truncation is not word-aware.
package regexp

import (
	"regexp"
	"strings"

	"github.com/aeojs/aeo"
)

// Ensure Extractor implements aeo.Extractor at compile time.
var _ aeo.Extractor = (*Extractor)(nil)

// Step is one named rewrite of the extraction pipeline.
type Step struct {
	Name  string
	Apply func(string) string
}

// Extractor converts rendered HTML into Markdown by running a fixed sequence
// of steps. It holds no mutable state and is safe for concurrent use.
type Extractor struct {
	titleReserved bool
	contentRoots  []string
	rootRes       []*regexp.Regexp
	maxLength     int
	steps         []Step
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTitleReserved maps <h1> to "##" instead of "#", reserving the top
// heading level for a page title supplied separately.
func WithTitleReserved() Option {
	return func(e *Extractor) {
		e.titleReserved = true
	}
}

// WithContentRoot adds an element (e.g., "app-root") whose inner HTML is
// used as the content when the page has no <main>. Roots are tried in the
// order they are added.
func WithContentRoot(tag string) Option {
	return func(e *Extractor) {
		e.contentRoots = append(e.contentRoots, strings.ToLower(tag))
	}
}

// WithMaxLength sets the maximum number of characters returned.
// The default is aeo.MaxContentLength.
func WithMaxLength(n int) Option {
	return func(e *Extractor) {
		e.maxLength = n
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{maxLength: aeo.MaxContentLength}
	for _, opt := range opts {
		opt(e)
	}
	for _, tag := range e.contentRoots {
		q := regexp.QuoteMeta(tag)
		e.rootRes = append(e.rootRes, regexp.MustCompile(`(?is)<`+q+`[^>]*>(.*)</`+q+`>`))
	}
	e.steps = e.buildSteps()
	return e
}

// Extract runs every step over html and returns the resulting Markdown.
func (e *Extractor) Extract(html string) string {
	text := html
	for _, step := range e.steps {
		text = step.Apply(text)
	}
	return text
}

// Steps returns the names of the pipeline steps in execution order.
func (e *Extractor) Steps() []string {
	names := make([]string, len(e.steps))
	for i, s := range e.steps {
		names[i] = s.Name
	}
	return names
}

func (e *Extractor) buildSteps() []Step {
	minLevel := 1
	if e.titleReserved {
		minLevel = 2
	}
	return []Step{
		{"strip-blocks", stripBlocks},
		{"isolate-content", e.isolateContent},
		{"flatten-block-links", flattenBlockLinks},
		{"convert-headings", e.convertHeadings},
		{"convert-inline", convertInline},
		{"strip-tags", stripTags},
		{"decode-entities", aeo.DecodeEntities},
		{"strip-emoji", aeo.StripEmoji},
		{"normalize-whitespace", normalizeWhitespace(minLevel)},
		{"truncate", func(s string) string {
			return aeo.Truncate(strings.TrimSpace(s), e.maxLength)
		}},
	}
}

var blockRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)<script.*?</script>`),
	regexp.MustCompile(`(?is)<style.*?</style>`),
	regexp.MustCompile(`(?is)<svg.*?</svg>`),
}

// stripBlocks removes script, style and svg elements with their contents.
func stripBlocks(s string) string {
	for _, re := range blockRes {
		s = re.ReplaceAllString(s, "")
	}
	return s
}

var (
	mainRe    = regexp.MustCompile(`(?is)<main[^>]*>(.*)</main>`)
	chromeRes = []*regexp.Regexp{
		regexp.MustCompile(`(?is)<nav.*?</nav>`),
		regexp.MustCompile(`(?is)<header.*?</header>`),
		regexp.MustCompile(`(?is)<footer.*?</footer>`),
	}
)

// isolateContent keeps everything between the first <main> and the last
// </main>. Without a <main>, it narrows to the first configured content
// root found and drops navigation, header and footer regions.
func (e *Extractor) isolateContent(s string) string {
	if m := mainRe.FindStringSubmatch(s); m != nil {
		return m[1]
	}
	for _, re := range e.rootRes {
		if m := re.FindStringSubmatch(s); m != nil {
			s = m[1]
			break
		}
	}
	for _, re := range chromeRes {
		s = re.ReplaceAllString(s, "")
	}
	return s
}

var (
	anchorRe     = regexp.MustCompile(`(?is)<a[^>]+href=["']([^"']*)["'][^>]*>(.*?)</a>`)
	blockInnerRe = regexp.MustCompile(`(?i)<(?:h[1-6]|div|p|section)[^>]*>`)
	anyTagRe     = regexp.MustCompile(`<[^>]+>`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// maxBlockLinkText caps the text of a link that wraps block content.
const maxBlockLinkText = 120

// flattenBlockLinks turns anchors wrapping block-level markup (cards,
// teasers) into a single Markdown link on its own line.
func flattenBlockLinks(s string) string {
	return replaceSubmatchFunc(anchorRe, s, func(m []string) string {
		href, inner := m[1], m[2]
		if !blockInnerRe.MatchString(inner) {
			return "[" + inner + "](" + href + ")"
		}
		text := anyTagRe.ReplaceAllString(inner, " ")
		text = strings.TrimSpace(spaceRe.ReplaceAllString(text, " "))
		text = strings.TrimSpace(aeo.Truncate(text, maxBlockLinkText))
		return "\n[" + text + "](" + href + ")\n"
	})
}

var headingRes = func() [6]*regexp.Regexp {
	var res [6]*regexp.Regexp
	for i := range res {
		n := string(rune('1' + i))
		res[i] = regexp.MustCompile(`(?is)<h` + n + `[^>]*>(.*?)</h` + n + `>`)
	}
	return res
}()

// convertHeadings rewrites h1-h6 into ATX headings surrounded by blank lines.
func (e *Extractor) convertHeadings(s string) string {
	for i, re := range headingRes {
		level := i + 1
		if e.titleReserved && level == 1 {
			level = 2
		}
		s = re.ReplaceAllString(s, "\n\n"+strings.Repeat("#", level)+" $1\n\n")
	}
	return s
}

var inlineRules = []struct {
	re   *regexp.Regexp
	repl string
}{
	{anchorRe, "[$2]($1)"},
	{regexp.MustCompile(`(?is)<(?:strong|b)[^>]*>(.*?)</(?:strong|b)>`), "**$1**"},
	{regexp.MustCompile(`(?is)<(?:em|i)[^>]*>(.*?)</(?:em|i)>`), "*$1*"},
	{regexp.MustCompile(`(?is)<li[^>]*>(.*?)</li>`), "\n- $1"},
	{regexp.MustCompile(`(?is)<blockquote[^>]*>(.*?)</blockquote>`), "\n\n> $1\n\n"},
	{regexp.MustCompile(`(?i)<hr[^>]*/?>`), "\n\n---\n\n"},
	{regexp.MustCompile(`(?i)<br[^>]*/?>`), "\n"},
	{regexp.MustCompile(`(?i)</p>`), "\n\n"},
	{regexp.MustCompile(`(?i)<p[^>]*>`), ""},
	{regexp.MustCompile(`(?i)</?(?:div|section|article|header|main|aside|figure|figcaption|table|thead|tbody|tr|td|th|ul|ol|dl|dt|dd)[^>]*>`), "\n"},
}

// convertInline rewrites links, emphasis, list items, quotes, rules, line
// breaks, paragraphs and block containers.
func convertInline(s string) string {
	for _, r := range inlineRules {
		s = r.re.ReplaceAllString(s, r.repl)
	}
	return s
}

// stripTags removes every remaining tag.
func stripTags(s string) string {
	return anyTagRe.ReplaceAllString(s, "")
}

var (
	linkOpenRe  = regexp.MustCompile(`\[\s+`)
	linkCloseRe = regexp.MustCompile(`\s+\]`)
	blankRunRe  = regexp.MustCompile(`\n{3,}`)
)

// normalizeWhitespace collapses whitespace, tidies link text, joins heading
// markers separated from their text by line breaks and drops headings left
// without text. minLevel is the smallest heading level the pipeline emits.
func normalizeWhitespace(minLevel int) func(string) string {
	marker := `#{` + string(rune('0'+minLevel)) + `,6}`
	splitHeadingRe := regexp.MustCompile(`(?m)^(` + marker + `)[ \t]*\n+\s*`)
	emptyHeadingRe := regexp.MustCompile(`(?m)^` + marker + `[ \t]*$`)

	return func(s string) string {
		s = aeo.CollapseWhitespace(s)
		s = linkOpenRe.ReplaceAllString(s, "[")
		s = linkCloseRe.ReplaceAllString(s, "]")
		s = splitHeadingRe.ReplaceAllString(s, "$1 ")
		s = emptyHeadingRe.ReplaceAllString(s, "")
		return blankRunRe.ReplaceAllString(s, "\n\n")
	}
}

// replaceSubmatchFunc is like ReplaceAllStringFunc but hands repl the
// submatches of each match.
func replaceSubmatchFunc(re *regexp.Regexp, s string, repl func([]string) string) string {
	var b strings.Builder
	last := 0
	for _, loc := range re.FindAllStringSubmatchIndex(s, -1) {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = s[loc[2*i]:loc[2*i+1]]
			}
		}
		b.WriteString(s[last:loc[0]])
		b.WriteString(repl(groups))
		last = loc[1]
	}
	b.WriteString(s[last:])
	return b.String()
}
