// Package docindex builds an inverted index over the leaves of a parsed
// document so large payloads can be searched by keyword without rescanning
// the whole tree per query.
package docindex

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"unicode"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// tokenDelimiters defines characters that separate tokens.
const tokenDelimiters = "/?&=.-_:"

// Tokenize splits a string into searchable tokens.
// Splits on: / ? & = . - _ : and whitespace.
// Lowercases all tokens, drops tokens < 2 chars.
func Tokenize(s string) []string {
	s = strings.ToLower(s)

	tokens := strings.FieldsFunc(s, func(r rune) bool {
		return strings.ContainsRune(tokenDelimiters, r) || unicode.IsSpace(r)
	})

	result := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if len(t) >= 2 {
			result = append(result, t)
		}
	}

	return result
}

// Leaf is one indexed scalar within the document.
type Leaf struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Index maps tokens to the document leaves that contain them.
type Index struct {
	mu sync.RWMutex

	leaves   []Leaf
	idxToken map[string]*roaring.Bitmap
}

// Build walks the document and indexes every leaf by the tokens of its path
// and its rendered value.
func Build(v *value.Value) *Index {
	idx := &Index{
		leaves:   make([]Leaf, 0, 64),
		idxToken: make(map[string]*roaring.Bitmap),
	}
	idx.walk("$", v)
	return idx
}

func (idx *Index) walk(path string, v *value.Value) {
	if v == nil {
		idx.add(path, "null")
		return
	}
	switch v.Kind {
	case value.KindArray:
		if len(v.Items) == 0 {
			idx.add(path, "[]")
			return
		}
		for i, item := range v.Items {
			idx.walk(path+"["+strconv.Itoa(i)+"]", item)
		}
	case value.KindObject:
		if len(v.Fields) == 0 {
			idx.add(path, "{}")
			return
		}
		for _, f := range v.Fields {
			idx.walk(path+"."+f.Key, f.Val)
		}
	default:
		idx.add(path, renderScalar(v))
	}
}

func (idx *Index) add(path, rendered string) {
	docID := uint32(len(idx.leaves))
	idx.leaves = append(idx.leaves, Leaf{Path: path, Value: rendered})

	for _, token := range Tokenize(path) {
		idx.addToBitmap(token, docID)
	}
	for _, token := range Tokenize(rendered) {
		idx.addToBitmap(token, docID)
	}
}

func (idx *Index) addToBitmap(token string, docID uint32) {
	bm, exists := idx.idxToken[token]
	if !exists {
		bm = roaring.New()
		idx.idxToken[token] = bm
	}
	bm.Add(docID)
}

// LeafCount returns the number of indexed leaves.
func (idx *Index) LeafCount() int {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return len(idx.leaves)
}

// Match is one leaf hit for a search query.
type Match struct {
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Search returns leaves whose path or value contains every token of the
// query. Matches come back in document order, capped at limit when it is
// positive.
func (idx *Index) Search(query string, limit int) []Match {
	idx.mu.RLock()
	defer idx.mu.RUnlock()

	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return []Match{}
	}

	var acc *roaring.Bitmap
	for _, token := range tokens {
		bm := idx.lookupToken(token)
		if bm == nil {
			return []Match{}
		}
		if acc == nil {
			acc = bm.Clone()
		} else {
			acc.And(bm)
		}
		if acc.IsEmpty() {
			return []Match{}
		}
	}

	matches := make([]Match, 0, acc.GetCardinality())
	it := acc.Iterator()
	for it.HasNext() {
		docID := it.Next()
		leaf := idx.leaves[docID]
		matches = append(matches, Match{Path: leaf.Path, Value: leaf.Value})
		if limit > 0 && len(matches) >= limit {
			break
		}
	}
	return matches
}

// lookupToken returns the bitmap for a token, falling back to a prefix scan
// so a partial word like "user" still finds "username".
func (idx *Index) lookupToken(token string) *roaring.Bitmap {
	if bm, ok := idx.idxToken[token]; ok {
		return bm
	}

	keys := make([]string, 0, 4)
	for key := range idx.idxToken {
		if strings.HasPrefix(key, token) {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	sort.Strings(keys)

	result := roaring.New()
	for _, key := range keys {
		result.Or(idx.idxToken[key])
	}
	return result
}

func renderScalar(v *value.Value) string {
	switch v.Kind {
	case value.KindNull:
		return "null"
	case value.KindBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case value.KindNumber:
		return value.FormatNumber(v.Num)
	default:
		return v.Str
	}
}
