package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONPreservesFieldOrder(t *testing.T) {
	v, err := DecodeJSON(`{"zeta":1,"alpha":2,"mid":3}`)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind)

	keys := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestDecodeJSONScalars(t *testing.T) {
	tests := []struct {
		name  string
		input string
		check func(t *testing.T, v *Value)
	}{
		{
			name:  "null",
			input: `null`,
			check: func(t *testing.T, v *Value) { assert.Equal(t, KindNull, v.Kind) },
		},
		{
			name:  "bool",
			input: `true`,
			check: func(t *testing.T, v *Value) {
				assert.Equal(t, KindBool, v.Kind)
				assert.True(t, v.Bool)
			},
		},
		{
			name:  "integer",
			input: `42`,
			check: func(t *testing.T, v *Value) {
				assert.Equal(t, KindNumber, v.Kind)
				assert.Equal(t, 42.0, v.Num)
				assert.True(t, v.IsInt())
			},
		},
		{
			name:  "float",
			input: `3.14`,
			check: func(t *testing.T, v *Value) {
				assert.Equal(t, KindNumber, v.Kind)
				assert.False(t, v.IsInt())
			},
		},
		{
			name:  "string",
			input: `"hello"`,
			check: func(t *testing.T, v *Value) {
				assert.Equal(t, KindString, v.Kind)
				assert.Equal(t, "hello", v.Str)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := DecodeJSON(tt.input)
			require.NoError(t, err)
			tt.check(t, v)
		})
	}
}

func TestDecodeJSONRejectsInvalid(t *testing.T) {
	for _, input := range []string{``, `{`, `{"a":}`, `[1,2`, `{"a":1} extra`} {
		_, err := DecodeJSON(input)
		assert.Error(t, err, "input %q should fail", input)
	}
}

func TestEncodeJSONRoundTripKeepsOrder(t *testing.T) {
	input := `{"z":1,"a":{"y":true,"b":null},"list":[1,"two",3.5]}`
	v, err := DecodeJSON(input)
	require.NoError(t, err)
	assert.Equal(t, input, EncodeJSON(v))
}

func TestEqual(t *testing.T) {
	tests := []struct {
		name  string
		a, b  string
		equal bool
	}{
		{"same object different key order", `{"a":1,"b":2}`, `{"b":2,"a":1}`, true},
		{"different value", `{"a":1}`, `{"a":2}`, false},
		{"missing key", `{"a":1,"b":2}`, `{"a":1}`, false},
		{"array order matters", `[1,2]`, `[2,1]`, false},
		{"nested equal", `{"a":{"b":[1,2]}}`, `{"a":{"b":[1,2]}}`, true},
		{"scalar", `42`, `42`, true},
		{"null vs false", `null`, `false`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := DecodeJSON(tt.a)
			require.NoError(t, err)
			b, err := DecodeJSON(tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.equal, Equal(a, b))
		})
	}
}

func TestToAnyFromAny(t *testing.T) {
	v, err := DecodeJSON(`{"a":1,"b":[true,null,"x"]}`)
	require.NoError(t, err)

	x := ToAny(v)
	m, ok := x.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 1.0, m["a"])
	assert.Equal(t, []any{true, nil, "x"}, m["b"])

	back := FromAny(x)
	assert.True(t, Equal(v, back))
}

func TestDecodeYAML(t *testing.T) {
	v, err := DecodeYAML("name: test\ncount: 3\nnested:\n  flag: true\nitems:\n  - 1\n  - two\n")
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind)

	name, ok := v.Field("name")
	require.True(t, ok)
	assert.Equal(t, "test", name.Str)

	count, ok := v.Field("count")
	require.True(t, ok)
	assert.Equal(t, 3.0, count.Num)

	nested, ok := v.Field("nested")
	require.True(t, ok)
	flag, ok := nested.Field("flag")
	require.True(t, ok)
	assert.True(t, flag.Bool)

	items, ok := v.Field("items")
	require.True(t, ok)
	require.Equal(t, KindArray, items.Kind)
	assert.Len(t, items.Items, 2)
}

func TestDecodeYAMLKeyOrder(t *testing.T) {
	v, err := DecodeYAML("zz: 1\naa: 2\nmm: 3\n")
	require.NoError(t, err)

	keys := make([]string, len(v.Fields))
	for i, f := range v.Fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{"zz", "aa", "mm"}, keys)
}

func TestDecodeXML(t *testing.T) {
	v, err := DecodeXML(`<user id="7"><name>Ada</name><active>true</active></user>`)
	require.NoError(t, err)
	require.Equal(t, KindObject, v.Kind)

	user, ok := v.Field("user")
	require.True(t, ok)

	id, ok := user.Field("@id")
	require.True(t, ok)
	assert.Equal(t, 7.0, id.Num)

	name, ok := user.Field("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", name.Str)

	active, ok := user.Field("active")
	require.True(t, ok)
	assert.Equal(t, KindBool, active.Kind)
	assert.True(t, active.Bool)
}

func TestDecodeXMLRepeatedSiblings(t *testing.T) {
	v, err := DecodeXML(`<list><item>1</item><item>2</item><item>3</item></list>`)
	require.NoError(t, err)

	list, ok := v.Field("list")
	require.True(t, ok)
	items, ok := list.Field("item")
	require.True(t, ok)
	require.Equal(t, KindArray, items.Kind)
	assert.Len(t, items.Items, 3)
}

func TestDecodeXMLErrors(t *testing.T) {
	_, err := DecodeXML(`not xml at all`)
	assert.Error(t, err)
}

func TestDecodeCSV(t *testing.T) {
	v, err := DecodeCSV("name,age,active\nAda,36,true\nGrace,45,false\n")
	require.NoError(t, err)
	require.Equal(t, KindArray, v.Kind)
	require.Len(t, v.Items, 2)

	first := v.Items[0]
	require.Equal(t, KindObject, first.Kind)

	name, ok := first.Field("name")
	require.True(t, ok)
	assert.Equal(t, "Ada", name.Str)

	age, ok := first.Field("age")
	require.True(t, ok)
	assert.Equal(t, 36.0, age.Num)

	active, ok := first.Field("active")
	require.True(t, ok)
	assert.True(t, active.Bool)
}

func TestDecodeCSVRequiresDataRow(t *testing.T) {
	_, err := DecodeCSV("name,age\n")
	assert.Error(t, err)
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{42, "42"},
		{-7, "-7"},
		{3.5, "3.5"},
		{0, "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatNumber(tt.in))
	}
}
