package delimit

import "strings"

// Separator resolves the delimiter to its literal separator string. For
// [Custom] the custom string is used verbatim, even when it is empty or
// contains structural delimiter characters.
func (d Delimiter) Separator(custom string) string {
	switch d {
	case Comma:
		return ","
	case Semicolon:
		return ";"
	case Newline:
		return "\n"
	case CommaNewline:
		return ",\n"
	case Pipe:
		return "|"
	case Custom:
		return custom
	}
	return ","
}

// Join concatenates values with the resolved separator between each
// adjacent pair. Zero values yield an empty string; one value is returned
// unchanged. Values are not escaped or quoted against the separator.
func Join(values []string, d Delimiter, custom string) string {
	return strings.Join(values, d.Separator(custom))
}
