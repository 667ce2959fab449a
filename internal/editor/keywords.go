package editor

import "strings"

// CommitKeywords folds raw keyword input into an existing list. Input is
// split on commas and newlines, so a single typed entry and a comma-delimited
// paste go through the same path. Tokens are trimmed; empty tokens and
// exact-match duplicates (case sensitive) are dropped silently.
func CommitKeywords(existing []string, raw string) []string {
	out := make([]string, len(existing))
	copy(out, existing)

	seen := make(map[string]bool, len(out))
	for _, kw := range out {
		seen[kw] = true
	}

	for _, token := range splitKeywords(raw) {
		kw := strings.TrimSpace(token)
		if kw == "" || seen[kw] {
			continue
		}
		seen[kw] = true
		out = append(out, kw)
	}
	return out
}

// RemoveKeyword removes the keyword at the given index. Out-of-range indexes
// leave the list unchanged.
func RemoveKeyword(existing []string, index int) []string {
	if index < 0 || index >= len(existing) {
		return existing
	}
	out := make([]string, 0, len(existing)-1)
	out = append(out, existing[:index]...)
	return append(out, existing[index+1:]...)
}

func splitKeywords(raw string) []string {
	return strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})
}
