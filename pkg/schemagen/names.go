// Package schemagen derives target-language type and schema text from a
// sample value tree. All generators share one traversal policy: arrays are
// typed from their first element, arrays of objects synthesize a nested
// named type with an "Item" suffix, nested objects synthesize a type from
// the capitalized field name, and integral numbers are distinguished from
// fractional ones where the target cares. Generated definitions are
// emitted innermost-first so no definition references a type before it
// appears. Output is deterministic: identical input yields byte-identical
// text.
//
// Sibling fields whose names capitalize to the same identifier get a
// numeric suffix (Item, Item2, ...) so one pass never emits two
// definitions under one name.
package schemagen

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCaser = cases.Title(language.Und, cases.NoLower)

// typeName converts a raw field name into a capitalized identifier,
// dropping characters that cannot appear in one.
func typeName(field string) string {
	parts := strings.FieldsFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(parts) == 0 {
		return "Field"
	}
	var b strings.Builder
	for _, p := range parts {
		b.WriteString(titleCaser.String(p))
	}
	name := b.String()
	if unicode.IsDigit(rune(name[0])) {
		name = "Field" + name
	}
	return name
}

// namer hands out unique type names within a single inference pass.
type namer struct {
	used map[string]int
}

func newNamer() *namer {
	return &namer{used: map[string]int{}}
}

func (n *namer) unique(base string) string {
	n.used[base]++
	if c := n.used[base]; c > 1 {
		return base + strconv.Itoa(c)
	}
	return base
}

// isIdentifier reports whether a key can appear unquoted in TypeScript,
// Zod, and Mongoose source.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		if r == '_' || r == '$' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

// fieldKey quotes a key when it is not a plain identifier.
func fieldKey(s string) string {
	if isIdentifier(s) {
		return s
	}
	return strconv.Quote(s)
}

// snakeCase converts camelCase or mixed field names to snake_case column
// names; runs of non-alphanumeric characters become single underscores.
func snakeCase(s string) string {
	var b strings.Builder
	lastUnderscore := false
	for i, r := range s {
		switch {
		case unicode.IsUpper(r):
			if i > 0 && !lastUnderscore {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			lastUnderscore = false
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
			lastUnderscore = false
		default:
			if i > 0 && !lastUnderscore {
				b.WriteByte('_')
				lastUnderscore = true
			}
		}
	}
	return strings.Trim(b.String(), "_")
}
