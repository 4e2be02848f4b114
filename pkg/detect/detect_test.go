package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formakit/formakit-mcp/pkg/value"
)

func TestDetectFormats(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		format Format
	}{
		{"json object", `{"a":1}`, FormatJSON},
		{"json array", `[1,2,3]`, FormatJSON},
		{"json with leading whitespace", "  \n {\"a\":1}", FormatJSON},
		{"xml", `<root><a>1</a></root>`, FormatXML},
		{"yaml mapping", "name: test\ncount: 3\n", FormatYAML},
		{"yaml sequence", "- name: a\n- name: b\n", FormatYAML},
		{"csv", "a,b\n1,2\n", FormatCSV},
		{"empty", "", FormatUnknown},
		{"prose", "just some words", FormatUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Detect(tt.input)
			assert.Equal(t, tt.format, res.Format)
		})
	}
}

func TestDetectJSONWinsOverYAML(t *testing.T) {
	// Valid JSON is also valid YAML; the sigil check must take priority.
	res := Detect("{\"a\": 1,\n\"b\": 2}")
	assert.Equal(t, FormatJSON, res.Format)
}

func TestDetectYAMLScalarRejected(t *testing.T) {
	// Prose with a colon parses as a YAML scalar; that must not count.
	res := Detect("note: this is prose\nwith a second line but no more colons to split on and no commas either so nothing matches")
	// The first line alone would be a mapping; a multi-line scalar result
	// falls through. Either YAML-mapping or unknown is structurally fine,
	// but a scalar classified as YAML is not.
	if res.Format == FormatYAML {
		require.NotNil(t, res.Data)
		assert.Contains(t, []value.Kind{value.KindObject, value.KindArray}, res.Data.Kind)
	}
}

func TestDetectCSVNeedsMultipleColumns(t *testing.T) {
	// Single-column text must not classify as CSV.
	res := Detect("header\nvalue1\nvalue2\n")
	assert.NotEqual(t, FormatCSV, res.Format)
}

func TestDetectCSVNeedsDataRow(t *testing.T) {
	res := Detect("a,b,c")
	assert.NotEqual(t, FormatCSV, res.Format)
}

func TestDetectUnknownDiagnostic(t *testing.T) {
	res := Detect("not anything structured")
	assert.Equal(t, FormatUnknown, res.Format)
	assert.Equal(t, ErrUndetectable, res.Err)
	assert.Nil(t, res.Data)
}

func TestDetectEmptyInput(t *testing.T) {
	res := Detect("   \n  ")
	assert.Equal(t, FormatUnknown, res.Format)
	assert.Empty(t, res.Err)
}

func TestDetectUnwrapsStringifiedJSON(t *testing.T) {
	res := Detect(`{"a":"{\"b\":2}"}`)
	require.Equal(t, FormatJSON, res.Format)

	a, ok := res.Data.Field("a")
	require.True(t, ok)
	require.Equal(t, value.KindObject, a.Kind)
	b, ok := a.Field("b")
	require.True(t, ok)
	assert.Equal(t, 2.0, b.Num)
}

func TestDetectQuotedDocument(t *testing.T) {
	// A whole document encoded as one JSON string.
	res := Detect(`"{\"x\":true}"`)
	require.Equal(t, FormatJSON, res.Format)
	x, ok := res.Data.Field("x")
	require.True(t, ok)
	assert.True(t, x.Bool)
}

func TestUnwrap(t *testing.T) {
	mustJSON := func(s string) *value.Value {
		v, err := value.DecodeJSON(s)
		require.NoError(t, err)
		return v
	}

	tests := []struct {
		name string
		in   *value.Value
		want *value.Value
	}{
		{
			name: "primitives are fixed points",
			in:   value.NewNumber(5),
			want: value.NewNumber(5),
		},
		{
			name: "non-json string is its own fixed point",
			in:   value.NewString("hello world"),
			want: value.NewString("hello world"),
		},
		{
			name: "stringified object",
			in:   mustJSON(`{"a":"{\"b\":2}"}`),
			want: mustJSON(`{"a":{"b":2}}`),
		},
		{
			name: "stringified primitive",
			in:   value.NewString("42"),
			want: value.NewNumber(42),
		},
		{
			name: "nested in arrays",
			in:   mustJSON(`["[1,2]","x"]`),
			want: mustJSON(`[[1,2],"x"]`),
		},
		{
			name: "double encoding",
			in:   value.NewString(`"{\"deep\":true}"`),
			want: mustJSON(`{"deep":true}`),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unwrap(tt.in)
			assert.True(t, value.Equal(tt.want, got),
				"want %s, got %s", value.EncodeJSON(tt.want), value.EncodeJSON(got))
		})
	}
}

func TestUnwrapIdempotent(t *testing.T) {
	v, err := value.DecodeJSON(`{"a":"{\"b\":\"[1,2,3]\"}"}`)
	require.NoError(t, err)

	once := Unwrap(v)
	twice := Unwrap(once)
	assert.True(t, value.Equal(once, twice))
}

func TestUnwrapDoesNotMutateInput(t *testing.T) {
	v, err := value.DecodeJSON(`{"a":"{\"b\":2}"}`)
	require.NoError(t, err)
	before := value.EncodeJSON(v)

	Unwrap(v)
	assert.Equal(t, before, value.EncodeJSON(v))
}

func TestUnwrapText(t *testing.T) {
	v, changed := UnwrapText(`{"a":1}`)
	assert.True(t, changed)
	assert.Equal(t, value.KindObject, v.Kind)

	v, changed = UnwrapText("plain text")
	assert.False(t, changed)
	assert.Equal(t, "plain text", v.Str)

	// Quoted bare string: parses once to the inner text, then stops.
	v, changed = UnwrapText(`"abc"`)
	assert.True(t, changed)
	assert.Equal(t, "abc", v.Str)
}
