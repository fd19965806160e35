package delimit

import "strings"

// Transform applies trim, case conversion, deduplication, and wrapping to
// values, in that order, returning a new slice. Dedupe compares values
// after trim and case conversion but before wrapping, so case-folded
// duplicates collapse to the first occurrence. The input slice is never
// modified.
func Transform(values []string, opts Options) []string {
	out := make([]string, len(values))
	copy(out, values)

	if opts.Trim {
		for i := range out {
			out[i] = strings.TrimSpace(out[i])
		}
	}

	switch opts.Case {
	case CaseUpper:
		for i := range out {
			out[i] = foldASCII(out[i], true)
		}
	case CaseLower:
		for i := range out {
			out[i] = foldASCII(out[i], false)
		}
	}

	if opts.Dedupe {
		out = dedupe(out)
	}

	if prefix, suffix := opts.Wrapper.affixes(); prefix != "" {
		for i := range out {
			out[i] = prefix + out[i] + suffix
		}
	}
	return out
}

// foldASCII converts letter case for ASCII letters only. Digits, symbols,
// and non-ASCII runes pass through so the conversion is locale-independent.
func foldASCII(s string, upper bool) string {
	return strings.Map(func(r rune) rune {
		if upper && r >= 'a' && r <= 'z' {
			return r - ('a' - 'A')
		}
		if !upper && r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// dedupe removes later duplicates by exact string equality, keeping the
// first occurrence and its position.
func dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

func (w Wrapper) affixes() (prefix, suffix string) {
	switch w {
	case WrapSingle:
		return "'", "'"
	case WrapDouble:
		return `"`, `"`
	case WrapParen:
		return "(", ")"
	}
	return "", ""
}
