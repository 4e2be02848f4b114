package convert

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formakit/formakit-mcp/pkg/value"
)

func mustJSON(t *testing.T, s string) *value.Value {
	t.Helper()
	v, err := value.DecodeJSON(s)
	require.NoError(t, err)
	return v
}

func TestToJSON(t *testing.T) {
	v := mustJSON(t, `{"b":1,"a":2}`)
	out, err := To(v, TargetJSON)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"b\": 1,\n  \"a\": 2\n}\n", out)
}

func TestToYAMLPreservesOrder(t *testing.T) {
	v := mustJSON(t, `{"zeta":1,"alpha":"two","flag":true}`)
	out, err := To(v, TargetYAML)
	require.NoError(t, err)

	zeta := strings.Index(out, "zeta:")
	alpha := strings.Index(out, "alpha:")
	flag := strings.Index(out, "flag:")
	require.NotEqual(t, -1, zeta)
	require.NotEqual(t, -1, alpha)
	require.NotEqual(t, -1, flag)
	assert.Less(t, zeta, alpha)
	assert.Less(t, alpha, flag)
}

func TestToYAMLRoundTrip(t *testing.T) {
	v := mustJSON(t, `{"name":"x","items":[1,2],"nested":{"ok":true}}`)
	out, err := ToYAML(v)
	require.NoError(t, err)

	back, err := value.DecodeYAML(out)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, back))
}

func TestToCSV(t *testing.T) {
	v := mustJSON(t, `[{"name":"Ada","age":36},{"name":"Grace","age":45}]`)
	out, err := To(v, TargetCSV)
	require.NoError(t, err)
	assert.Equal(t, "name,age\nAda,36\nGrace,45\n", out)
}

func TestToCSVUnionHeaders(t *testing.T) {
	v := mustJSON(t, `[{"a":1},{"b":2}]`)
	out, err := ToCSV(v)
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,\n,2\n", out)
}

func TestToCSVQuoting(t *testing.T) {
	v := mustJSON(t, `[{"text":"hello, \"world\"","n":1}]`)
	out, err := ToCSV(v)
	require.NoError(t, err)
	assert.Contains(t, out, `"hello, ""world"""`)
}

func TestToCSVNestedCellsAsJSON(t *testing.T) {
	v := mustJSON(t, `[{"id":1,"meta":{"x":true}}]`)
	out, err := ToCSV(v)
	require.NoError(t, err)
	assert.Contains(t, out, `"{""x"":true}"`)
}

func TestToCSVRejectsNonArray(t *testing.T) {
	_, err := ToCSV(mustJSON(t, `{"a":1}`))
	assert.Error(t, err)

	_, err = ToCSV(mustJSON(t, `[1,2]`))
	assert.Error(t, err)
}

func TestToXML(t *testing.T) {
	v := mustJSON(t, `{"user":{"@id":7,"name":"Ada"}}`)
	out, err := To(v, TargetXML)
	require.NoError(t, err)

	assert.Contains(t, out, `<user id="7">`)
	assert.Contains(t, out, "<name>Ada</name>")
	assert.Contains(t, out, "</user>")
}

func TestToXMLRoundTrip(t *testing.T) {
	input := `<order id="9"><item>widget</item><qty>2</qty></order>`
	v, err := value.DecodeXML(input)
	require.NoError(t, err)

	out, err := ToXML(v)
	require.NoError(t, err)

	back, err := value.DecodeXML(out)
	require.NoError(t, err)
	assert.True(t, value.Equal(v, back))
}

func TestToXMLWrapsMultiKeyRoot(t *testing.T) {
	v := mustJSON(t, `{"a":1,"b":2}`)
	out, err := ToXML(v)
	require.NoError(t, err)
	assert.Contains(t, out, "<root>")
	assert.Contains(t, out, "<a>1</a>")
}

func TestToXMLEscapes(t *testing.T) {
	v := mustJSON(t, `{"msg":"a < b & c"}`)
	out, err := ToXML(v)
	require.NoError(t, err)
	assert.Contains(t, out, "a &lt; b &amp; c")
}

func TestToUnknownTarget(t *testing.T) {
	_, err := To(mustJSON(t, `{}`), Target("toml"))
	assert.Error(t, err)
}
