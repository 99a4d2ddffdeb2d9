package normalization

import "strings"

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// TrimInputString keeps the caller's casing; used for names and free text
// where lowercasing would mangle user content.
func TrimInputString(input string) string {
	return strings.TrimSpace(input)
}
