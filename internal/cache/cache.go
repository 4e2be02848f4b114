// Package cache provides LRU caches for parse results and compiled
// queries. Re-detecting the same buffer on every tool call is the common
// case (the client edits one document and runs several tools against it),
// so both caches are keyed by content hash.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/itchyny/gojq"

	"github.com/formakit/formakit-mcp/pkg/detect"
)

// Key returns the cache key for a raw input text.
func Key(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ParseCache is a thread-safe LRU of detection results keyed by input hash.
type ParseCache struct {
	cache *lru.Cache[string, detect.ParseResult]
}

// NewParseCache creates a ParseCache holding at most maxItems results.
func NewParseCache(maxItems int) (*ParseCache, error) {
	c, err := lru.New[string, detect.ParseResult](maxItems)
	if err != nil {
		return nil, err
	}
	return &ParseCache{cache: c}, nil
}

// Detect returns the cached detection result for text, running the
// detector on a miss.
func (c *ParseCache) Detect(text string) detect.ParseResult {
	key := Key(text)
	if r, ok := c.cache.Get(key); ok {
		return r
	}
	r := detect.Detect(text)
	c.cache.Add(key, r)
	return r
}

// Len returns the current number of cached results.
func (c *ParseCache) Len() int {
	return c.cache.Len()
}

// QueryCache is a thread-safe LRU of compiled jq programs keyed by
// expression text.
type QueryCache struct {
	cache *lru.Cache[string, *gojq.Code]
}

// NewQueryCache creates a QueryCache holding at most maxItems programs.
func NewQueryCache(maxItems int) (*QueryCache, error) {
	c, err := lru.New[string, *gojq.Code](maxItems)
	if err != nil {
		return nil, err
	}
	return &QueryCache{cache: c}, nil
}

// Get retrieves a compiled program, if present.
func (c *QueryCache) Get(expression string) (*gojq.Code, bool) {
	return c.cache.Get(expression)
}

// Put stores a compiled program.
func (c *QueryCache) Put(expression string, code *gojq.Code) {
	c.cache.Add(expression, code)
}
