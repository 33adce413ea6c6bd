// Package choices turns freeform text into the ordered list of options a pick
// draws from.
package choices

import "strings"

// Separator is used by Join and is the canonical separator for choices.
const Separator = ", "

// Parse splits raw text into choices. Newlines count as commas; every segment
// is trimmed and empty segments are dropped. Order and duplicates are kept.
// Any input is valid; the result may be empty but is never nil.
func Parse(text string) []string {
	text = strings.ReplaceAll(text, "\n", ",")

	parts := strings.Split(text, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Join renders choices back into text that Parse maps to the same list.
func Join(list []string) string {
	return strings.Join(list, Separator)
}
