package delimit_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/listforge/delimit"
)

// --- Parse ---

func TestParse(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"empty":                {input: "", want: []string{}},
		"single value":         {input: "a", want: []string{"a"}},
		"comma separated":      {input: "a,b,c", want: []string{"a", "b", "c"}},
		"mixed delimiters":     {input: "a;b|c\nd", want: []string{"a", "b", "c", "d"}},
		"delimiter runs":       {input: "a,,;;\n\nb", want: []string{"a", "b"}},
		"pure delimiters":      {input: ",;|\n,;", want: []string{}},
		"whitespace fragments": {input: "  a  ,   ,\t, b", want: []string{"a", "b"}},
		"crlf input":           {input: "a\r\nb\r\nc", want: []string{"a", "b", "c"}},
		"double quoted":        {input: `"a","b"`, want: []string{"a", "b"}},
		"single quoted":        {input: "'a','b'", want: []string{"a", "b"}},
		"parenthesized":        {input: "(a),(b)", want: []string{"a", "b"}},
		"quote then space":     {input: `"  a  "`, want: []string{"a"}},
		"nested wrap once":     {input: `"'a'"`, want: []string{"'a'"}},
		"mismatched wrap":      {input: `(mismatched"`, want: []string{`(mismatched"`}},
		"lone quote":           {input: `"`, want: []string{`"`}},
		"empty quotes dropped": {input: `"" , a`, want: []string{"a"}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, delimit.Parse(tt.input))
		})
	}
}

func TestParsePreservesOrder(t *testing.T) {
	t.Parallel()
	got := delimit.Parse("z, a; m | b\nz")
	assert.Equal(t, []string{"z", "a", "m", "b", "z"}, got)
}

// --- Transform ---

func TestTransformStageOrder(t *testing.T) {
	t.Parallel()
	// Case conversion runs before dedupe, so "Foo" and "foo" collapse.
	opts := delimit.Options{
		Wrapper: delimit.WrapSingle,
		Case:    delimit.CaseLower,
		Dedupe:  true,
		Trim:    true,
	}
	got := delimit.Transform([]string{"Foo", "foo", "FOO"}, opts)
	assert.Equal(t, []string{"'foo'"}, got)
}

func TestTransformNoDedupePreservesAll(t *testing.T) {
	t.Parallel()
	values := []string{"a", "b", "a", "c", "b"}
	opts := delimit.Options{Wrapper: delimit.WrapNone, Case: delimit.CaseNone}
	got := delimit.Transform(values, opts)
	assert.Len(t, got, len(values))
	assert.Equal(t, values, got)
}

func TestTransformDoesNotMutateInput(t *testing.T) {
	t.Parallel()
	values := []string{" a ", "B"}
	_ = delimit.Transform(values, delimit.DefaultOptions())
	assert.Equal(t, []string{" a ", "B"}, values)
}

func TestTransformWrappers(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		wrapper delimit.Wrapper
		want    []string
	}{
		"single": {wrapper: delimit.WrapSingle, want: []string{"'a'", "'b'"}},
		"double": {wrapper: delimit.WrapDouble, want: []string{`"a"`, `"b"`}},
		"paren":  {wrapper: delimit.WrapParen, want: []string{"(a)", "(b)"}},
		"none":   {wrapper: delimit.WrapNone, want: []string{"a", "b"}},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := delimit.Transform([]string{"a", "b"}, delimit.Options{Wrapper: tt.wrapper})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransformCaseFoldASCIIOnly(t *testing.T) {
	t.Parallel()
	opts := delimit.Options{Wrapper: delimit.WrapNone, Case: delimit.CaseUpper}
	got := delimit.Transform([]string{"abc-123", "straße"}, opts)
	// Only ASCII letters fold; ß is untouched (no locale-dependent expansion).
	assert.Equal(t, []string{"ABC-123", "STRAßE"}, got)
}

func TestTransformNoEscapingOfWrapperChars(t *testing.T) {
	t.Parallel()
	opts := delimit.Options{Wrapper: delimit.WrapSingle}
	got := delimit.Transform([]string{"it's"}, opts)
	// Embedded wrapper characters pass through unescaped.
	assert.Equal(t, []string{"'it's'"}, got)
}

func TestTransformDedupeIdempotent(t *testing.T) {
	t.Parallel()
	opts := delimit.Options{Wrapper: delimit.WrapNone, Dedupe: true, Trim: true}
	once := delimit.Transform([]string{"a", "b", "a", "c"}, opts)
	twice := delimit.Transform(once, opts)
	assert.Equal(t, once, twice)
}

// --- Join ---

func TestJoin(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		values []string
		delim  delimit.Delimiter
		custom string
		want   string
	}{
		"comma":          {values: []string{"a", "b"}, delim: delimit.Comma, want: "a,b"},
		"semicolon":      {values: []string{"a", "b"}, delim: delimit.Semicolon, want: "a;b"},
		"newline":        {values: []string{"a", "b"}, delim: delimit.Newline, want: "a\nb"},
		"comma newline":  {values: []string{"a", "b"}, delim: delimit.CommaNewline, want: "a,\nb"},
		"pipe":           {values: []string{"a", "b"}, delim: delimit.Pipe, want: "a|b"},
		"custom":         {values: []string{"a", "b"}, delim: delimit.Custom, custom: " | ", want: "a | b"},
		"custom empty":   {values: []string{"a", "b"}, delim: delimit.Custom, custom: "", want: "ab"},
		"empty slice":    {values: []string{}, delim: delimit.Comma, want: ""},
		"single element": {values: []string{"a"}, delim: delimit.Comma, want: "a"},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, delimit.Join(tt.values, tt.delim, tt.custom))
		})
	}
}

// --- Format ---

func TestFormatDefaults(t *testing.T) {
	t.Parallel()
	got := delimit.Format("a, b, a\nc", delimit.DefaultOptions())
	assert.Equal(t, "'a','b','c'", got)
}

func TestFormatEmptyInput(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", delimit.Format("", delimit.DefaultOptions()))
	assert.Equal(t, "", delimit.Format(",,;;\n", delimit.DefaultOptions()))
}

func TestFormatStripThenRewrap(t *testing.T) {
	t.Parallel()
	opts := delimit.Options{
		Wrapper:   delimit.WrapSingle,
		Delimiter: delimit.Comma,
		Case:      delimit.CaseNone,
		Trim:      true,
	}
	got := delimit.Format(`"a", 'b', (c)`, opts)
	assert.Equal(t, "'a','b','c'", got)
}

func TestFormatDedupeCaseInteraction(t *testing.T) {
	t.Parallel()
	opts := delimit.Options{
		Wrapper:   delimit.WrapNone,
		Delimiter: delimit.Comma,
		Case:      delimit.CaseLower,
		Dedupe:    true,
		Trim:      true,
	}
	assert.Equal(t, "foo", delimit.Format("Foo, foo, FOO", opts))
}

func TestFormatCustomDelimiterVerbatim(t *testing.T) {
	t.Parallel()
	opts := delimit.Options{
		Wrapper:         delimit.WrapNone,
		Delimiter:       delimit.Custom,
		CustomDelimiter: " | ",
		Trim:            true,
	}
	assert.Equal(t, "a | b | c", delimit.Format("a,b,c", opts))
}

func TestFormatNoOpRoundTrip(t *testing.T) {
	t.Parallel()
	opts := delimit.Options{Wrapper: delimit.WrapNone, Delimiter: delimit.Comma}
	assert.Equal(t, "a,b,c", delimit.Format("a,b,c", opts))
}

func TestFormatReformatStable(t *testing.T) {
	t.Parallel()
	// Formatting the formatted output again yields the same string when the
	// wrapper survives a parse round trip.
	opts := delimit.Options{
		Wrapper:   delimit.WrapSingle,
		Delimiter: delimit.Comma,
		Dedupe:    true,
		Trim:      true,
	}
	once := delimit.Format("a, b, a", opts)
	assert.Equal(t, once, delimit.Format(once, opts))
}

func TestWrite(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := delimit.Write(&buf, "a,b", delimit.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "'a','b'", buf.String())
	// No trailing newline; sinks own that.
	assert.NotContains(t, buf.String(), "\n")
}

// --- Option parsing ---

func TestParseWrapper(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    delimit.Wrapper
		wantErr require.ErrorAssertionFunc
	}{
		"single":       {input: "single", want: delimit.WrapSingle, wantErr: require.NoError},
		"single alias": {input: "single-quote", want: delimit.WrapSingle, wantErr: require.NoError},
		"single char":  {input: "'", want: delimit.WrapSingle, wantErr: require.NoError},
		"double":       {input: "double", want: delimit.WrapDouble, wantErr: require.NoError},
		"paren":        {input: "parens", want: delimit.WrapParen, wantErr: require.NoError},
		"none":         {input: "none", want: delimit.WrapNone, wantErr: require.NoError},
		"blank":        {input: "", want: delimit.WrapNone, wantErr: require.NoError},
		"unknown":      {input: "backtick", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := delimit.ParseWrapper(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDelimiter(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    delimit.Delimiter
		wantErr require.ErrorAssertionFunc
	}{
		"comma":         {input: "comma", want: delimit.Comma, wantErr: require.NoError},
		"comma char":    {input: ",", want: delimit.Comma, wantErr: require.NoError},
		"semicolon":     {input: ";", want: delimit.Semicolon, wantErr: require.NoError},
		"newline":       {input: "nl", want: delimit.Newline, wantErr: require.NoError},
		"comma newline": {input: "comma-then-newline", want: delimit.CommaNewline, wantErr: require.NoError},
		"pipe":          {input: "|", want: delimit.Pipe, wantErr: require.NoError},
		"custom":        {input: "custom", want: delimit.Custom, wantErr: require.NoError},
		"unknown":       {input: "tab", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := delimit.ParseDelimiter(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCaseMode(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input   string
		want    delimit.CaseMode
		wantErr require.ErrorAssertionFunc
	}{
		"none":    {input: "none", want: delimit.CaseNone, wantErr: require.NoError},
		"blank":   {input: "", want: delimit.CaseNone, wantErr: require.NoError},
		"upper":   {input: "upper", want: delimit.CaseUpper, wantErr: require.NoError},
		"lower":   {input: "lowercase", want: delimit.CaseLower, wantErr: require.NoError},
		"unknown": {input: "title", want: "", wantErr: require.Error},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := delimit.ParseCaseMode(tt.input)
			tt.wantErr(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrorsAreSentinels(t *testing.T) {
	t.Parallel()
	_, err := delimit.ParseWrapper("nope")
	require.ErrorIs(t, err, delimit.ErrUnknownWrapper)
	_, err = delimit.ParseDelimiter("nope")
	require.ErrorIs(t, err, delimit.ErrUnknownDelimiter)
	_, err = delimit.ParseCaseMode("nope")
	require.ErrorIs(t, err, delimit.ErrUnknownCase)
}

func TestEnumListersReturnCopies(t *testing.T) {
	t.Parallel()
	got := delimit.Wrappers()
	require.NotEmpty(t, got)
	got[0] = "modified"
	assert.Equal(t, delimit.WrapSingle, delimit.Wrappers()[0])

	dl := delimit.Delimiters()
	dl[0] = "modified"
	assert.Equal(t, delimit.Comma, delimit.Delimiters()[0])

	cm := delimit.CaseModes()
	cm[0] = "modified"
	assert.Equal(t, delimit.CaseNone, delimit.CaseModes()[0])
}

func TestSeparator(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ",", delimit.Comma.Separator(""))
	assert.Equal(t, ",\n", delimit.CommaNewline.Separator(""))
	assert.Equal(t, "::", delimit.Custom.Separator("::"))
	// Custom separators may contain structural delimiters.
	assert.Equal(t, ",|;", delimit.Custom.Separator(",|;"))
}
