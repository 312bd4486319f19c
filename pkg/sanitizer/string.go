package sanitizer

import "strings"

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// SingleLine removes carriage returns and line feeds, collapsing the value
// onto one line. Applied to fields that end up in mail headers so a crafted
// submission cannot inject additional headers.
func SingleLine(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.TrimSpace(s)
}
