package heuristics

import (
	"regexp"
	"strings"
)

// itemsIncludedPattern recognizes titles shaped like
// "<A> and <B> Set of N" or "<A>, <B> and <C> Set".
var itemsIncludedPattern = regexp.MustCompile(`(?i)^(.+?)\s+set(?:\s+of\s+(\d+))?\b`)

// itemSynonyms normalizes marketplace-equivalent product names before
// de-duplication ("TV Console" and "TV Stand" are the same item).
var itemSynonyms = []keywordEntry{
	{"television stand", "TV Stand"},
	{"television console", "TV Stand"},
	{"tv console", "TV Stand"},
	{"tv stand", "TV Stand"},
	{"cocktail table", "Coffee Table"},
	{"center table", "Coffee Table"},
	{"centre table", "Coffee Table"},
	{"coffee table", "Coffee Table"},
	{"night stand", "Nightstand"},
	{"nightstand", "Nightstand"},
	{"side table", "End Table"},
	{"end table", "End Table"},
}

// extractItemsIncluded derives the item list of a furniture set from
// the title. Returns nil, not an empty slice, when the title has no
// set structure; callers omit the attribute in that case.
func extractItemsIncluded(src *Source, param string) interface{} {
	m := itemsIncludedPattern.FindStringSubmatch(src.Title())
	if m == nil {
		if param != "" {
			return []string{param}
		}
		return nil
	}

	head := m[1]
	parts := regexp.MustCompile(`(?i)\s*(?:,|\band\b|&)\s*`).Split(head, -1)

	seen := map[string]bool{}
	items := []string{}
	for _, p := range parts {
		name := normalizeItemName(p)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		items = append(items, name)
	}
	if len(items) == 0 {
		return nil
	}
	return items
}

func normalizeItemName(raw string) string {
	name := strings.TrimSpace(strings.ToLower(raw))
	if name == "" {
		return ""
	}
	for _, syn := range itemSynonyms {
		if strings.Contains(name, syn.keyword) {
			return syn.value
		}
	}
	// Drop tokens that are only numbers or filler
	if regexp.MustCompile(`^\d+$`).MatchString(name) {
		return ""
	}
	return titleCase(name)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
