package search

import "strings"

// selectMatch picks the first item whose name equals the query
// case-insensitively, or falls back to the first item. The client is
// assumed to return results in its own relevance order, so the fallback
// preserves that ranking. The boolean reports whether the pick was an
// exact match, for logging only.
func selectMatch(items []Item, query string) (Item, bool) {
	if item, ok := findExact(items, query); ok {
		return item, true
	}

	return items[0], false
}

func findExact(items []Item, query string) (Item, bool) {
	for _, item := range items {
		if item.Name != "" && strings.EqualFold(item.Name, query) {
			return item, true
		}
	}

	return Item{}, false
}

func findSubstring(items []Item, query string) (Item, bool) {
	q := strings.ToLower(query)
	for _, item := range items {
		if item.Name != "" && strings.Contains(strings.ToLower(item.Name), q) {
			return item, true
		}
	}

	return Item{}, false
}
