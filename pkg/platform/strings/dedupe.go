// Package strings provides string manipulation utilities.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and blank entries from values after
// trimming whitespace. Order of first appearance is preserved.
func DedupeAndTrim(values []string) []string {
	return dedupe(values, func(s string) string { return s })
}

// DedupeAndTrimUpper is DedupeAndTrim with each element upper-cased, for
// case-insensitive codes such as order form types.
func DedupeAndTrimUpper(values []string) []string {
	return dedupe(values, strings.ToUpper)
}

func dedupe(values []string, fold func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))
	for _, v := range values {
		key := fold(strings.TrimSpace(v))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		result = append(result, key)
	}
	return result
}
