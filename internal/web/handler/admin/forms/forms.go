// Package forms holds helpers shared by the admin panel form handlers.
package forms

import "strings"

// SplitLines turns a textarea value into a list, one entry per line.
// Blank lines and surrounding whitespace are dropped.
func SplitLines(value string) []string {
	return split(value, "\n")
}

// SplitComma turns a comma separated input into a list.
func SplitComma(value string) []string {
	return split(value, ",")
}

// JoinLines renders a list back into textarea form, one entry per line.
func JoinLines(items []string) string {
	return strings.Join(items, "\n")
}

// JoinComma renders a list back into comma separated form.
func JoinComma(items []string) string {
	return strings.Join(items, ", ")
}

func split(value, sep string) []string {
	parts := strings.Split(value, sep)
	items := make([]string, 0, len(parts))

	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	return items
}
