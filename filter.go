package noticeboard

import "strings"

// Filter returns the notices whose title or content contains keyword.
//
// Matching is a case-sensitive substring test with no unicode normalization.
// An empty keyword returns notices unchanged. The relative order of the
// input is preserved and the input slice is never modified.
func Filter(notices []Notice, keyword string) []Notice {
	if keyword == "" {
		return notices
	}

	filtered := make([]Notice, 0, len(notices))
	for _, n := range notices {
		if strings.Contains(n.Title, keyword) || strings.Contains(n.Content, keyword) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}
