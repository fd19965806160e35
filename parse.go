package delimit

import "strings"

// Parse splits raw text into trimmed, unwrapped values. Runs of the
// structural delimiters (comma, semicolon, pipe, newline) act as a single
// split point, so repeated or mixed delimiters never produce empty values.
// Carriage returns count as newlines so CRLF input behaves like LF input.
// Order of the surviving values matches their order in text.
func Parse(text string) []string {
	fragments := strings.FieldsFunc(text, isStructuralDelim)
	out := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		frag = strings.TrimSpace(frag)
		frag = strings.TrimSpace(stripWrap(frag))
		if frag == "" {
			continue
		}
		out = append(out, frag)
	}
	return out
}

func isStructuralDelim(r rune) bool {
	switch r {
	case ',', ';', '|', '\n', '\r':
		return true
	}
	return false
}

// stripWrap removes exactly one symmetric wrapping layer: double quotes,
// single quotes, or parentheses. Mismatched ends are left untouched, and
// the strip never recurses, so nested wrapping keeps its inner layers.
func stripWrap(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	switch {
	case first == '"' && last == '"',
		first == '\'' && last == '\'',
		first == '(' && last == ')':
		return s[1 : len(s)-1]
	}
	return s
}
