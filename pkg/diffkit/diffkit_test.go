package diffkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formakit/formakit-mcp/pkg/value"
)

func mustParse(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.DecodeJSON(s)
	require.NoError(t, err)
	return v
}

func changedSegments(segments []Segment) []Segment {
	out := []Segment{}
	for _, s := range segments {
		if s.Added || s.Removed {
			out = append(out, s)
		}
	}
	return out
}

func TestDiffStructurallyEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{
		{"key order ignored", `{"a":1,"b":2}`, `{"b":2,"a":1}`},
		{"formatting ignored", `{"a":1}`, "{\n  \"a\": 1\n}"},
		{"json vs yaml same data", `{"name":"x","n":3}`, "name: x\nn: 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Diff(tt.a, tt.b)
			assert.Equal(t, ModeStructural, res.Mode)
			assert.Empty(t, changedSegments(res.Segments))
		})
	}
}

func TestDiffStructuralChange(t *testing.T) {
	res := Diff(`{"a":1,"b":2}`, `{"a":1,"b":3}`)
	require.Equal(t, ModeStructural, res.Mode)

	changed := changedSegments(res.Segments)
	require.Len(t, changed, 2)
	assert.True(t, changed[0].Removed)
	assert.Contains(t, changed[0].Content, "$.b = 2")
	assert.True(t, changed[1].Added)
	assert.Contains(t, changed[1].Content, "$.b = 3")
}

func TestDiffStructuralAddedKey(t *testing.T) {
	res := Diff(`{"a":1}`, `{"a":1,"z":true}`)
	require.Equal(t, ModeStructural, res.Mode)

	changed := changedSegments(res.Segments)
	require.Len(t, changed, 1)
	assert.True(t, changed[0].Added)
	assert.Contains(t, changed[0].Content, "$.z = true")
}

func TestDiffLineFallback(t *testing.T) {
	res := Diff("line one\nline two\n", "line one\nline 2\n")
	require.Equal(t, ModeLines, res.Mode)

	changed := changedSegments(res.Segments)
	require.Len(t, changed, 2)
	assert.Equal(t, "line two\n", changed[0].Content)
	assert.True(t, changed[0].Removed)
	assert.Equal(t, "line 2\n", changed[1].Content)
	assert.True(t, changed[1].Added)
}

func TestDiffLineFallbackWhenOneSideUnparseable(t *testing.T) {
	res := Diff(`{"a":1}`, "definitely not structured")
	assert.Equal(t, ModeLines, res.Mode)
}

func TestStructuralEmptyContainers(t *testing.T) {
	segments := Structural(mustParse(t, `{"a":[]}`), mustParse(t, `{"a":[1]}`))
	changed := changedSegments(segments)
	require.Len(t, changed, 2)
	assert.Contains(t, changed[0].Content, "$.a = []")
	assert.Contains(t, changed[1].Content, "$.a[0] = 1")
}

func TestLinesIdentical(t *testing.T) {
	segments := Lines("same\ntext\n", "same\ntext\n")
	assert.Empty(t, changedSegments(segments))
}
