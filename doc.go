// Package delimit normalizes free-form delimited text into a consistently
// delimited and wrapped output string.
//
// The package is a three-stage pure pipeline: [Parse] splits raw text into
// candidate values, [Transform] trims, case-folds, dedupes, and wraps them,
// and [Join] concatenates the result with a chosen separator. [Format] runs
// all three stages in sequence and is the entry point most callers want:
//
//	out := delimit.Format("a,, b;B |c", delimit.DefaultOptions())
//	// out == "'a','b','B','c'"
//
// # Parsing
//
// [Parse] splits on any run of comma, semicolon, pipe, or newline, so mixed
// and repeated delimiters collapse into a single split point and never
// produce empty values. Each fragment is whitespace-trimmed and, when it is
// symmetrically wrapped in double quotes, single quotes, or parentheses,
// exactly one wrapping layer is stripped before trimming again. Fragments
// that end up empty are dropped. Parse never fails: any input, including an
// empty string or pure delimiter noise, yields a (possibly empty) slice.
//
// # Transforming
//
// [Transform] applies its stages in a fixed order: trim, case conversion,
// deduplication, wrapping. The order matters: dedupe runs after case
// conversion so "Foo" and "foo" collapse under [CaseLower], and before
// wrapping so wrap characters cannot hide duplicates. Case conversion folds
// ASCII letters only; digits, symbols, and non-ASCII runes pass through
// untouched regardless of locale.
//
// Wrapping places the wrapper characters around each value verbatim. A
// value that already contains the wrapper character is not escaped; that is
// a documented limitation, not a defect.
//
// # Joining
//
// [Join] resolves a [Delimiter] to its literal separator (see
// [Delimiter.Separator]) and joins the values with it. Zero values yield an
// empty string and a single value is returned unchanged; the output never
// carries a leading or trailing separator. Output sinks own any trailing
// newline.
//
// # Option Resolution
//
// Use [ParseWrapper], [ParseDelimiter], and [ParseCaseMode] to convert
// user-facing flag or request strings into enum values. They accept common
// aliases ("single-quote", ",", "nl", ...) and return sentinel errors for
// anything unrecognized:
//
//   - [ErrUnknownWrapper]
//   - [ErrUnknownDelimiter]
//   - [ErrUnknownCase]
//
// The pipeline itself assumes already-resolved options and has no failure
// modes of its own.
package delimit
