package pipeline

import "strings"

// NormalizeNewlines converts CRLF and lone CR line endings to LF.
// Chroma and goldmark both treat a bare CR as part of the line, which shows
// up as doubled or merged lines in print.
func NormalizeNewlines(s string) string {
	if !strings.Contains(s, "\r") {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
