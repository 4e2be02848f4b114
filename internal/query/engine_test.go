package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formakit/formakit-mcp/internal/cache"
	"github.com/formakit/formakit-mcp/pkg/value"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	qc, err := cache.NewQueryCache(16)
	require.NoError(t, err)
	return NewEngine(qc)
}

func mustJSON(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.DecodeJSON(s)
	require.NoError(t, err)
	return v
}

func TestRun(t *testing.T) {
	e := newTestEngine(t)

	tests := []struct {
		name       string
		input      string
		expression string
		want       []any
	}{
		{
			name:       "identity",
			input:      `{"a":1}`,
			expression: ".",
			want:       []any{map[string]any{"a": 1.0}},
		},
		{
			name:       "field access",
			input:      `{"user":{"name":"Ada"}}`,
			expression: ".user.name",
			want:       []any{"Ada"},
		},
		{
			name:       "array iteration",
			input:      `{"items":[{"id":1},{"id":2}]}`,
			expression: ".items[].id",
			want:       []any{1.0, 2.0},
		},
		{
			name:       "select filter",
			input:      `[1,5,10]`,
			expression: ".[] | select(. > 3)",
			want:       []any{5.0, 10.0},
		},
		{
			name:       "construction",
			input:      `{"a":1,"b":2}`,
			expression: "{sum: (.a + .b)}",
			want:       []any{map[string]any{"sum": 3.0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Run(mustJSON(t, tt.input), tt.expression, 0)
			require.NoError(t, err)
			assert.Empty(t, res.Errors)
			assert.Equal(t, tt.want, res.Values)
		})
	}
}

func TestRunMaxResults(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Run(mustJSON(t, `[1,2,3,4,5]`), ".[]", 2)
	require.NoError(t, err)
	assert.Len(t, res.Values, 2)
}

func TestRunRuntimeErrorsAreSoft(t *testing.T) {
	e := newTestEngine(t)
	res, err := e.Run(mustJSON(t, `{"a":null}`), ".a[]", 0)
	require.NoError(t, err)
	assert.Empty(t, res.Values)
	require.NotEmpty(t, res.Errors)
	assert.Contains(t, res.Errors[0], "null")
}

func TestRunCompileError(t *testing.T) {
	e := newTestEngine(t)
	_, err := e.Run(mustJSON(t, `{}`), ".a[", 0)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	e := newTestEngine(t)
	assert.NoError(t, e.Validate(".a.b[] | select(.x)"))
	assert.Error(t, e.Validate("| | |"))
}

func TestCompiledProgramsAreCached(t *testing.T) {
	qc, err := cache.NewQueryCache(16)
	require.NoError(t, err)
	e := NewEngine(qc)

	_, err = e.Run(mustJSON(t, `{"a":1}`), ".a", 0)
	require.NoError(t, err)

	_, ok := qc.Get(".a")
	assert.True(t, ok)
}

func TestDeduplicate(t *testing.T) {
	in := []any{"a", "a", 1.0, 1.0, true, nil, nil, map[string]any{"k": 1.0}, map[string]any{"k": 1.0}}
	out := Deduplicate(in)
	assert.Equal(t, []any{"a", 1.0, true, nil, map[string]any{"k": 1.0}}, out)
}
