package goquery

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/aeojs/aeo"
	"golang.org/x/net/html"
)

// Ensure DocumentExtractor implements aeo.DocumentExtractor at compile time.
var _ aeo.DocumentExtractor = (*DocumentExtractor)(nil)

// contentSelectors locate the main content area, tried in order.
var contentSelectors = []string{
	"main",
	`[role="main"]`,
	"article",
	".content",
	".main-content",
	"#content",
	"#main-content",
	".container",
	".wrapper",
}

var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"svg":      true,
	"canvas":   true,
	"video":    true,
	"audio":    true,
}

// importantKeywords keep a nav or footer when its text mentions them.
var importantKeywords = []string{"documentation", "docs", "api", "guide", "tutorial", "reference"}

var (
	spaceRe    = regexp.MustCompile(`\s+`)
	blankRunRe = regexp.MustCompile(`\n{3,}`)
	hiddenRe   = regexp.MustCompile(`(?i)(?:^|;)\s*(?:display\s*:\s*none|visibility\s*:\s*hidden)\s*(?:!important)?\s*(?:;|$)`)
)

// DocumentExtractor renders an element tree as Markdown by walking it node by
// node. It works on any HTML but gives the best results on DOM snapshots of
// rendered pages, where client-side content is present.
type DocumentExtractor struct{}

// NewDocumentExtractor creates a new DocumentExtractor.
func NewDocumentExtractor() *DocumentExtractor {
	return &DocumentExtractor{}
}

// ExtractDocument walks the main content area of rawHTML and returns it as
// Markdown, preceded by the page title and meta description. Links and
// images are resolved against pageURL when it is a valid absolute URL.
func (e *DocumentExtractor) ExtractDocument(rawHTML string, pageURL string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return ""
	}

	w := &walker{visited: make(map[*html.Node]struct{})}
	if base, err := url.Parse(pageURL); err == nil && base.IsAbs() {
		w.base = base
	}

	if title := textOf(doc.Find("title").First()); title != "" {
		w.push("# "+title, "")
	}
	if desc, ok := doc.Find(`meta[name="description"]`).First().Attr("content"); ok && desc != "" {
		w.push("> "+desc, "")
	}

	root := doc.Find("body").First()
	for _, sel := range contentSelectors {
		if s := doc.Find(sel).First(); s.Length() > 0 {
			root = s
			break
		}
	}
	for _, n := range root.Nodes {
		w.walk(n)
	}

	return w.markdown()
}

// walker accumulates Markdown lines. visited guarantees each node is handled
// once even when a tag-specific rule and a child walk both reach it.
type walker struct {
	lines   []string
	visited map[*html.Node]struct{}
	base    *url.URL
}

func (w *walker) push(lines ...string) {
	w.lines = append(w.lines, lines...)
}

func (w *walker) last() string {
	if len(w.lines) == 0 {
		return ""
	}
	return w.lines[len(w.lines)-1]
}

// appendInline appends s to the current line.
func (w *walker) appendInline(s string) {
	if len(w.lines) == 0 {
		w.lines = append(w.lines, s)
		return
	}
	w.lines[len(w.lines)-1] += s
}

// markdown joins the lines, collapsing whitespace outside code fences and
// keeping at most one blank line between blocks.
func (w *walker) markdown() string {
	out := make([]string, 0, len(w.lines))
	inFence := false
	for _, line := range w.lines {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			out = append(out, line)
			continue
		}
		if !inFence {
			line = strings.TrimSpace(spaceRe.ReplaceAllString(line, " "))
		}
		out = append(out, line)
	}
	text := blankRunRe.ReplaceAllString(strings.Join(out, "\n"), "\n\n")
	return strings.TrimSpace(text)
}

func (w *walker) walk(n *html.Node) {
	if _, ok := w.visited[n]; ok {
		return
	}
	w.visited[n] = struct{}{}

	switch n.Type {
	case html.TextNode:
		text := strings.TrimSpace(n.Data)
		if text == "" {
			return
		}
		if w.last() == "" {
			w.push(text)
		} else {
			w.appendInline(" " + text)
		}
		return
	case html.ElementNode:
	default:
		w.children(n)
		return
	}

	tag := n.Data
	if skipTags[tag] || isHidden(n) {
		return
	}
	sel := goquery.NewDocumentFromNode(n).Selection
	if isChrome(n, sel) && !hasImportantContent(sel) {
		return
	}

	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(tag[1:])
		w.push("", strings.Repeat("#", level)+" "+textOf(sel), "")
	case "p":
		if text := textOf(sel); text != "" {
			w.push("", text, "")
		}
	case "blockquote":
		w.blockquote(sel)
	case "pre":
		w.pre(sel)
	case "code":
		if n.Parent != nil && n.Parent.Type == html.ElementNode && n.Parent.Data == "pre" {
			return
		}
		if text := textOf(sel); text != "" && !strings.Contains(w.last(), text) {
			w.appendInline(" `" + text + "` ")
		}
	case "ul", "ol":
		w.list(sel, tag == "ol")
		w.push("")
	case "a":
		w.anchor(n, sel)
	case "img":
		src, _ := sel.Attr("src")
		alt, _ := sel.Attr("alt")
		if src != "" && alt != "" {
			w.push("", "!["+alt+"]("+w.resolve(src)+")", "")
		}
	case "table":
		w.table(sel)
		w.push("")
	case "strong", "b":
		if text := textOf(sel); text != "" {
			w.appendInline(" **" + text + "** ")
		}
	case "em", "i":
		if text := textOf(sel); text != "" {
			w.appendInline(" *" + text + "* ")
		}
	case "hr":
		w.push("", "---", "")
	default:
		w.children(n)
	}
}

func (w *walker) children(n *html.Node) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c)
	}
}

func (w *walker) blockquote(sel *goquery.Selection) {
	var quoted []string
	for _, line := range strings.Split(sel.Text(), "\n") {
		if line = strings.TrimSpace(spaceRe.ReplaceAllString(line, " ")); line != "" {
			quoted = append(quoted, "> "+line)
		}
	}
	if len(quoted) == 0 {
		return
	}
	w.push("")
	w.push(quoted...)
	w.push("")
}

func (w *walker) pre(sel *goquery.Selection) {
	code := sel.Find("code").First()
	if code.Length() == 0 {
		w.push("", "```", strings.TrimSpace(sel.Text()), "```", "")
		return
	}
	lang := language(code)
	if lang == "" {
		lang = language(code.Closest("pre"))
	}
	w.push("", "```"+lang, strings.TrimSpace(code.Text()), "```", "")
}

func (w *walker) list(sel *goquery.Selection, ordered bool) {
	sel.ChildrenFiltered("li").Each(func(i int, item *goquery.Selection) {
		prefix := "- "
		if ordered {
			prefix = strconv.Itoa(i+1) + ". "
		}
		if text := textOf(item); text != "" {
			w.push(prefix + text)
		}
		w.visited[item.Nodes[0]] = struct{}{}
	})
}

func (w *walker) anchor(n *html.Node, sel *goquery.Selection) {
	href, _ := sel.Attr("href")
	text := textOf(sel)
	if text == "" || href == "" || strings.HasPrefix(strings.ToLower(strings.TrimSpace(href)), "javascript:") {
		w.children(n)
		return
	}
	link := "[" + text + "](" + w.resolve(href) + ")"
	if !strings.Contains(w.last(), link) {
		w.appendInline(" " + link + " ")
	}
}

func (w *walker) table(sel *goquery.Selection) {
	rows := sel.Find("tr")
	if rows.Length() == 0 {
		return
	}

	var headers []string
	rows.First().Find("th, td").Each(func(_ int, cell *goquery.Selection) {
		headers = append(headers, textOf(cell))
	})
	if len(headers) == 0 {
		return
	}

	w.push("", "| "+strings.Join(headers, " | ")+" |")
	w.push("|" + strings.Repeat(" --- |", len(headers)))

	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, textOf(cell))
		})
		if len(cells) > 0 {
			w.push("| " + strings.Join(cells, " | ") + " |")
		}
	})
}

func (w *walker) resolve(ref string) string {
	if w.base == nil {
		return ref
	}
	u, err := url.Parse(strings.TrimSpace(ref))
	if err != nil {
		return ref
	}
	return w.base.ResolveReference(u).String()
}

// textOf returns the whitespace-collapsed text content of a selection.
func textOf(sel *goquery.Selection) string {
	return strings.TrimSpace(spaceRe.ReplaceAllString(sel.Text(), " "))
}

// language reads a language-* or lang-* class.
func language(sel *goquery.Selection) string {
	class, _ := sel.Attr("class")
	for _, c := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok {
			return lang
		}
		if lang, ok := strings.CutPrefix(c, "lang-"); ok {
			return lang
		}
	}
	return ""
}

func isHidden(n *html.Node) bool {
	for _, a := range n.Attr {
		switch a.Key {
		case "hidden", aeo.HiddenAttr:
			return true
		case "style":
			if hiddenRe.MatchString(a.Val) {
				return true
			}
		}
	}
	return false
}

// isChrome reports whether n is navigation or footer.
func isChrome(n *html.Node, sel *goquery.Selection) bool {
	return n.Data == "nav" || n.Data == "footer" || sel.HasClass("nav") || sel.HasClass("footer")
}

func hasImportantContent(sel *goquery.Selection) bool {
	text := strings.ToLower(sel.Text())
	for _, k := range importantKeywords {
		if strings.Contains(text, k) {
			return true
		}
	}
	return false
}
