// Package filter implements keyword matching of items.
package filter

import (
	"sort"
	"strings"

	"github.com/umputun/secwatch/pkg/domain"
)

// Matches returns true if keywords is empty or any keyword occurs,
// case-insensitive, in the item title or description
func Matches(item domain.Item, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	text := strings.ToLower(item.Title + " " + item.Description)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// NormalizeKeywords lower-cases, trims and de-duplicates keywords, result is sorted
func NormalizeKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	res := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		res = append(res, kw)
	}
	sort.Strings(res)
	return res
}
