package aeo

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// MaxContentLength is the maximum number of characters kept from a single
// extracted page.
const MaxContentLength = 8000

var (
	spaceRunRe   = regexp.MustCompile(`[\s\p{Zs}]+`)
	blankLinesRe = regexp.MustCompile(`\n{3,}`)
)

// entities lists the HTML entities decoded by DecodeEntities, in the order
// they are applied. Order matters: "&amp;lt;" decodes to "<".
var entities = []struct{ from, to string }{
	{"&amp;", "&"},
	{"&lt;", "<"},
	{"&gt;", ">"},
	{"&quot;", `"`},
	{"&#39;", "'"},
	{"&nbsp;", " "},
	{"&copy;", "(c)"},
}

// DecodeEntities decodes the small set of HTML entities that survive tag
// stripping in practice. Other entities are left untouched.
func DecodeEntities(s string) string {
	for _, e := range entities {
		s = strings.ReplaceAll(s, e.from, e.to)
	}
	return s
}

// StripEmoji removes emoji, dingbats, variation selectors, zero-width joiners
// and the combining keycap from s.
func StripEmoji(s string) string {
	return strings.Map(func(r rune) rune {
		if isEmoji(r) {
			return -1
		}
		return r
	}, s)
}

func isEmoji(r rune) bool {
	switch {
	case r >= 0x1F1E0 && r <= 0x1FAFF:
		return true
	case r >= 0x2600 && r <= 0x27BF:
		return true
	case r >= 0xFE00 && r <= 0xFE0F:
		return true
	case r == 0x200D, r == 0x20E3:
		return true
	}
	return false
}

// CollapseWhitespace collapses whitespace runs within each line to a single
// space, trims every line and allows at most one blank line between blocks.
func CollapseWhitespace(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(spaceRunRe.ReplaceAllString(line, " "))
	}
	return blankLinesRe.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
}

// Truncate returns at most n characters of s. It cuts on character
// boundaries, not word boundaries.
func Truncate(s string, n int) string {
	if n < 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
