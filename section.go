package aeo

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Section represents a heading in a markdown document.
type Section struct {
	Level  int    `json:"level"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

var (
	sectionHeadingRe = regexp.MustCompile(`(?m)^(#{1,6})[ \t]+(.+)$`)
	codeFenceRe      = regexp.MustCompile("(?s)```.*?```")
)

// ExtractSections returns the H1-H6 headings of markdown with URL-safe
// anchors. Headings inside fenced code blocks are ignored. Repeated anchors
// get numeric suffixes ("intro", "intro-1", ...).
func ExtractSections(markdown string) []Section {
	matches := sectionHeadingRe.FindAllStringSubmatch(codeFenceRe.ReplaceAllString(markdown, ""), -1)
	if len(matches) == 0 {
		return nil
	}

	sections := make([]Section, 0, len(matches))
	seen := make(map[string]int)
	for _, m := range matches {
		title := strings.TrimSpace(m[2])
		anchor := headingAnchor(title)
		if n := seen[anchor]; n > 0 {
			seen[anchor]++
			anchor += "-" + strconv.Itoa(n)
		} else {
			seen[anchor] = 1
		}
		sections = append(sections, Section{Level: len(m[1]), Title: title, Anchor: anchor})
	}
	return sections
}

// headingAnchor lowercases title, keeps letters and digits, and joins words
// separated by spaces or hyphens with single hyphens.
func headingAnchor(title string) string {
	words := strings.Fields(strings.Map(func(r rune) rune {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			return unicode.ToLower(r)
		case unicode.IsSpace(r) || r == '-':
			return ' '
		default:
			return -1
		}
	}, title))
	return strings.Join(words, "-")
}

var (
	h1Re          = regexp.MustCompile(`(?m)^#[ \t]+(.+)$`)
	h2Re          = regexp.MustCompile(`(?m)^##[ \t]+(.+)$`)
	headingHashRe = regexp.MustCompile(`(?m)^(#{1,6})[ \t]`)
)

// ExtractTitle returns the text of the first H1 in markdown, falling back to
// the first H2 and then to the first 100 characters of the first line.
func ExtractTitle(markdown string) string {
	if m := h1Re.FindStringSubmatch(markdown); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := h2Re.FindStringSubmatch(markdown); m != nil {
		return strings.TrimSpace(m[1])
	}
	first, _, _ := strings.Cut(markdown, "\n")
	return Truncate(first, 100)
}

// BumpHeadings demotes every heading in markdown by levels, capped at H6.
func BumpHeadings(markdown string, levels int) string {
	return headingHashRe.ReplaceAllStringFunc(markdown, func(m string) string {
		n := min(len(strings.TrimSpace(m))+levels, 6)
		return strings.Repeat("#", max(n, 1)) + " "
	})
}
