package delimit

import (
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for programmatic error handling.
var (
	ErrUnknownWrapper   = errors.New("unknown wrapper")
	ErrUnknownDelimiter = errors.New("unknown delimiter")
	ErrUnknownCase      = errors.New("unknown case mode")
)

// Wrapper selects the character pair placed around each formatted value.
type Wrapper string

const (
	WrapSingle Wrapper = "single" // 'value'
	WrapDouble Wrapper = "double" // "value"
	WrapParen  Wrapper = "paren"  // (value)
	WrapNone   Wrapper = "none"
)

// Delimiter selects the separator placed between formatted values.
type Delimiter string

const (
	Comma        Delimiter = "comma"
	Semicolon    Delimiter = "semicolon"
	Newline      Delimiter = "newline"
	CommaNewline Delimiter = "comma-newline"
	Pipe         Delimiter = "pipe"
	Custom       Delimiter = "custom"
)

// CaseMode selects the case conversion applied to each value.
type CaseMode string

const (
	CaseNone  CaseMode = "none"
	CaseUpper CaseMode = "upper"
	CaseLower CaseMode = "lower"
)

var (
	wrappers  = []Wrapper{WrapSingle, WrapDouble, WrapParen, WrapNone}
	delims    = []Delimiter{Comma, Semicolon, Newline, CommaNewline, Pipe, Custom}
	caseModes = []CaseMode{CaseNone, CaseUpper, CaseLower}
)

// String returns the wrapper name.
func (w Wrapper) String() string { return string(w) }

// String returns the delimiter name.
func (d Delimiter) String() string { return string(d) }

// String returns the case mode name.
func (c CaseMode) String() string { return string(c) }

// Wrappers returns all supported wrapper names.
func Wrappers() []Wrapper {
	out := make([]Wrapper, len(wrappers))
	copy(out, wrappers)
	return out
}

// Delimiters returns all supported delimiter names.
func Delimiters() []Delimiter {
	out := make([]Delimiter, len(delims))
	copy(out, delims)
	return out
}

// CaseModes returns all supported case mode names.
func CaseModes() []CaseMode {
	out := make([]CaseMode, len(caseModes))
	copy(out, caseModes)
	return out
}

// ParseWrapper parses a wrapper string. Recognizes the canonical names plus
// common aliases such as "single-quote" and the literal wrap character.
func ParseWrapper(s string) (Wrapper, error) {
	switch s {
	case "single", "single-quote", "singlequote", "'":
		return WrapSingle, nil
	case "double", "double-quote", "doublequote", `"`:
		return WrapDouble, nil
	case "paren", "parens", "parenthesis", "parentheses", "(", "()":
		return WrapParen, nil
	case "none", "":
		return WrapNone, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWrapper, s)
}

// ParseDelimiter parses a delimiter string. Recognizes the canonical names
// plus the literal separator characters. Any other value is an error; use
// [Custom] with [Options.CustomDelimiter] for arbitrary separators.
func ParseDelimiter(s string) (Delimiter, error) {
	switch s {
	case "comma", ",":
		return Comma, nil
	case "semicolon", ";":
		return Semicolon, nil
	case "newline", "nl", "\n":
		return Newline, nil
	case "comma-newline", "comma-then-newline", ",\n":
		return CommaNewline, nil
	case "pipe", "|":
		return Pipe, nil
	case "custom":
		return Custom, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDelimiter, s)
}

// ParseCaseMode parses a case mode string.
func ParseCaseMode(s string) (CaseMode, error) {
	switch s {
	case "none", "":
		return CaseNone, nil
	case "upper", "uppercase":
		return CaseUpper, nil
	case "lower", "lowercase":
		return CaseLower, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCase, s)
}

// Options configures [Transform] and [Join]. The zero value means no
// wrapping, comma-joined, no case conversion, no trim, no dedupe; most
// callers want [DefaultOptions] instead.
type Options struct {
	Wrapper         Wrapper
	Delimiter       Delimiter
	CustomDelimiter string // used only when Delimiter == Custom
	Case            CaseMode
	Dedupe          bool
	Trim            bool
}

// DefaultOptions returns the default formatting options: single-quote
// wrapping, comma delimiter, no case conversion, dedupe and trim enabled.
func DefaultOptions() Options {
	return Options{
		Wrapper:   WrapSingle,
		Delimiter: Comma,
		Case:      CaseNone,
		Dedupe:    true,
		Trim:      true,
	}
}

// Format runs the full pipeline: parse raw text, transform the values, and
// join them into a single output string. It never fails; pathological input
// yields an empty string. The output carries no trailing newline.
func Format(text string, opts Options) string {
	return Join(Transform(Parse(text), opts), opts.Delimiter, opts.CustomDelimiter)
}

// Write formats text and writes the result to w.
func Write(w io.Writer, text string, opts Options) error {
	_, err := io.WriteString(w, Format(text, opts))
	return err
}
