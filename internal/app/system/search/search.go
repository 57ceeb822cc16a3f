// internal/app/system/search/search.go
package search

import (
	"strings"

	"github.com/dalemusser/waffle/pantry/text"
)

// Matches reports whether every whitespace-separated term of query occurs
// in at least one of fields, ignoring case. An empty query
// matches everything.
func Matches(query string, fields ...string) bool {
	terms := strings.Fields(text.Fold(query))
	if len(terms) == 0 {
		return true
	}
	folded := make([]string, len(fields))
	for i, f := range fields {
		folded[i] = text.Fold(f)
	}
	for _, t := range terms {
		found := false
		for _, f := range folded {
			if strings.Contains(f, t) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter keeps the rows whose fields match query.
func Filter[T any](rows []T, query string, fields func(T) []string) []T {
	if strings.TrimSpace(query) == "" {
		return rows
	}
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if Matches(query, fields(r)...) {
			out = append(out, r)
		}
	}
	return out
}

// Where keeps the rows for which keep returns true.
func Where[T any](rows []T, keep func(T) bool) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

// EqualsAnyFold reports whether s equals any of vals, case-insensitively.
func EqualsAnyFold(s string, vals ...string) bool {
	s = strings.TrimSpace(s)
	for _, v := range vals {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}
