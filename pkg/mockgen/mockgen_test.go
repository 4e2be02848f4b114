package mockgen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formakit/formakit-mcp/pkg/value"
)

func TestPathsSortedAndStable(t *testing.T) {
	paths := New(1).Paths()
	require.NotEmpty(t, paths)
	assert.IsType(t, []string{}, paths)

	for i := 1; i < len(paths); i++ {
		assert.Less(t, paths[i-1], paths[i], "paths must be sorted")
	}

	assert.Contains(t, paths, "person.first")
	assert.Contains(t, paths, "internet.email")
	assert.Contains(t, paths, "string.uuid")
}

func TestFromPaths(t *testing.T) {
	g := New(7)
	out, errs := g.FromPaths([]string{"person.first", "internet.email", "number.int"})
	assert.Empty(t, errs)
	require.Len(t, out, 3)

	email, ok := out["internet.email"].(string)
	require.True(t, ok)
	assert.Contains(t, email, "@")

	n, ok := out["number.int"].(float64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, n, 0.0)
	assert.LessOrEqual(t, n, 1000.0)
}

func TestFromPathsNameAliases(t *testing.T) {
	g := New(7)
	out, errs := g.FromPaths([]string{"person.first_name", "person.last_name"})
	assert.Empty(t, errs)
	require.Len(t, out, 2)
	assert.IsType(t, "", out["person.first_name"])
	assert.IsType(t, "", out["person.last_name"])
}

func TestFromPathsUnknown(t *testing.T) {
	g := New(7)
	out, errs := g.FromPaths([]string{"person.first", "no.such.path"})
	assert.Len(t, out, 1)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "no.such.path")
}

func TestFromPathsCaseInsensitive(t *testing.T) {
	g := New(7)
	out, errs := g.FromPaths([]string{" Person.First "})
	assert.Empty(t, errs)
	assert.Len(t, out, 1)
}

func TestSeededDeterminism(t *testing.T) {
	a, _ := New(42).FromPaths([]string{"person.name", "internet.email", "string.uuid"})
	b, _ := New(42).FromPaths([]string{"person.name", "internet.email", "string.uuid"})
	assert.Equal(t, a, b)
}

func TestFromSampleShape(t *testing.T) {
	sample, err := value.DecodeJSON(`{"email":"a@b.c","age":30,"score":1.5,"ok":true,"tags":["x","y"],"address":{"city":"Paris"}}`)
	require.NoError(t, err)

	records := New(9).FromSample(sample, 3)
	require.Len(t, records, 3)

	for _, rec := range records {
		m, ok := rec.(map[string]any)
		require.True(t, ok)

		email, ok := m["email"].(string)
		require.True(t, ok)
		assert.Contains(t, email, "@", "email-named fields get email values")

		_, ok = m["age"].(float64)
		assert.True(t, ok)

		_, ok = m["ok"].(bool)
		assert.True(t, ok)

		tags, ok := m["tags"].([]any)
		require.True(t, ok)
		assert.Len(t, tags, 2)

		addr, ok := m["address"].(map[string]any)
		require.True(t, ok)
		city, ok := addr["city"].(string)
		require.True(t, ok)
		assert.NotEmpty(t, city)
	}
}

func TestFromSampleCountFloor(t *testing.T) {
	sample, err := value.DecodeJSON(`{"a":1}`)
	require.NoError(t, err)
	records := New(1).FromSample(sample, 0)
	assert.Len(t, records, 1)
}

func TestMockStringHeuristics(t *testing.T) {
	g := New(3)

	uuid := g.mockString("user_id")
	assert.Len(t, strings.Split(uuid, "-"), 5)

	url := g.mockString("profile_url")
	assert.True(t, strings.HasPrefix(url, "http"))
}
