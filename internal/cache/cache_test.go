package cache

import (
	"testing"

	"github.com/itchyny/gojq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formakit/formakit-mcp/pkg/detect"
)

func TestKeyIsStable(t *testing.T) {
	assert.Equal(t, Key("abc"), Key("abc"))
	assert.NotEqual(t, Key("abc"), Key("abd"))
	assert.Len(t, Key(""), 64)
}

func TestParseCache(t *testing.T) {
	c, err := NewParseCache(4)
	require.NoError(t, err)

	res := c.Detect(`{"a":1}`)
	assert.Equal(t, detect.FormatJSON, res.Format)
	assert.Equal(t, 1, c.Len())

	// Second call hits the cache; result must be identical.
	again := c.Detect(`{"a":1}`)
	assert.Equal(t, res.Format, again.Format)
	assert.Equal(t, 1, c.Len())

	c.Detect(`{"b":2}`)
	assert.Equal(t, 2, c.Len())
}

func TestParseCacheEviction(t *testing.T) {
	c, err := NewParseCache(2)
	require.NoError(t, err)

	c.Detect(`{"a":1}`)
	c.Detect(`{"b":2}`)
	c.Detect(`{"c":3}`)
	assert.Equal(t, 2, c.Len())
}

func TestQueryCache(t *testing.T) {
	c, err := NewQueryCache(4)
	require.NoError(t, err)

	_, ok := c.Get(".a")
	assert.False(t, ok)

	parsed, err := gojq.Parse(".a")
	require.NoError(t, err)
	code, err := gojq.Compile(parsed)
	require.NoError(t, err)

	c.Put(".a", code)
	got, ok := c.Get(".a")
	assert.True(t, ok)
	assert.Same(t, code, got)
}
