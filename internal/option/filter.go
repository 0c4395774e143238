package option

import "strings"

// Filter returns the options whose label or description contains query,
// compared case-insensitively. An empty or whitespace-only query returns
// the input unchanged; any other query matches as given, surrounding
// whitespace included. Matching is independent per option; there is no
// ranking or fuzzy scoring, and the input order is preserved.
func Filter(options []Option, query string) []Option {
	if strings.TrimSpace(query) == "" {
		return options
	}

	needle := strings.ToLower(query)
	matched := make([]Option, 0, len(options))
	for _, opt := range options {
		if strings.Contains(strings.ToLower(opt.Label), needle) ||
			strings.Contains(strings.ToLower(opt.Description), needle) {
			matched = append(matched, opt)
		}
	}
	return matched
}
