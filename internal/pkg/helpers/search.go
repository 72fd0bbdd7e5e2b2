package helpers

import "strings"

// FilterBySearch returns the items whose searchable fields contain the query
// as a case-insensitive substring. The fields callback yields the searchable
// text of one item. An empty (or all-whitespace) query returns the input
// slice unchanged, preserving its order, so callers can treat the filter as
// the identity when no search is active.
func FilterBySearch[T any](items []T, query string, fields func(T) []string) []T {
	query = strings.TrimSpace(query)
	if query == "" {
		return items
	}

	needle := strings.ToLower(query)
	filtered := make([]T, 0, len(items))
	for _, item := range items {
		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), needle) {
				filtered = append(filtered, item)
				break
			}
		}
	}
	return filtered
}
