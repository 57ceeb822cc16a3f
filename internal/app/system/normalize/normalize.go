// Package normalize trims and canonicalizes raw form and query values.
package normalize

import "strings"

// Email lowercases and trims an email address.
func Email(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Name trims a person or item name and collapses inner runs of whitespace.
func Name(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Status lowercases and trims a status value.
func Status(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// QueryParam trims a free-text query value, preserving case.
func QueryParam(s string) string {
	return strings.TrimSpace(s)
}

// Filter canonicalizes a list filter value; empty becomes "all".
func Filter(s string, allowed ...string) string {
	v := strings.ToLower(strings.TrimSpace(s))
	if v == "" {
		return "all"
	}
	for _, a := range allowed {
		if strings.EqualFold(v, a) {
			return a
		}
	}
	return "all"
}
