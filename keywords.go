package aeo

import (
	"regexp"
	"sort"
	"strings"
)

// DefaultKeywordCount is the number of keywords kept per page.
const DefaultKeywordCount = 10

var nonWordRe = regexp.MustCompile(`[^a-z0-9\s]`)

// ExtractKeywords returns the topN most frequent words of text that are
// longer than three characters. Words are lowercased ASCII alphanumerics;
// ties keep first-occurrence order. A topN of zero or less uses
// DefaultKeywordCount.
func ExtractKeywords(text string, topN int) []string {
	if topN <= 0 {
		topN = DefaultKeywordCount
	}

	cleaned := nonWordRe.ReplaceAllString(strings.ToLower(text), " ")

	counts := make(map[string]int)
	var order []string
	for _, word := range strings.Fields(cleaned) {
		if len(word) <= 3 {
			continue
		}
		if counts[word] == 0 {
			order = append(order, word)
		}
		counts[word]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topN {
		order = order[:topN]
	}
	return order
}
