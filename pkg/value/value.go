// Package value defines the in-memory tree produced by parsing any
// supported input format. A Value is a tagged variant over null, boolean,
// number, string, array, and object. Object fields keep their source
// order, which drives the field order of every generated schema.
package value

import (
	"math"
	"sort"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns the lowercase kind name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Value is one node of the inferred tree. Exactly the fields belonging to
// Kind are meaningful; the rest are zero. Values are never mutated after
// construction.
type Value struct {
	Kind   Kind
	Bool   bool
	Num    float64
	Str    string
	Items  []*Value
	Fields []Field
}

// Field is one ordered key/value pair of an object Value.
type Field struct {
	Key string
	Val *Value
}

var nullValue = &Value{Kind: KindNull}

// Null returns the null Value. It is shared; Values are immutable.
func Null() *Value { return nullValue }

// NewBool returns a boolean Value.
func NewBool(b bool) *Value { return &Value{Kind: KindBool, Bool: b} }

// NewNumber returns a numeric Value.
func NewNumber(n float64) *Value { return &Value{Kind: KindNumber, Num: n} }

// NewString returns a string Value.
func NewString(s string) *Value { return &Value{Kind: KindString, Str: s} }

// NewArray returns an array Value over the given items.
func NewArray(items ...*Value) *Value {
	if items == nil {
		items = []*Value{}
	}
	return &Value{Kind: KindArray, Items: items}
}

// NewObject returns an object Value with the given ordered fields.
func NewObject(fields ...Field) *Value {
	if fields == nil {
		fields = []Field{}
	}
	return &Value{Kind: KindObject, Fields: fields}
}

// IsInt reports whether a numeric Value holds an integral number.
// Always false for non-number kinds.
func (v *Value) IsInt() bool {
	if v.Kind != KindNumber {
		return false
	}
	return math.Trunc(v.Num) == v.Num && !math.IsInf(v.Num, 0) && !math.IsNaN(v.Num)
}

// Field returns the value for key and whether it exists.
func (v *Value) Field(key string) (*Value, bool) {
	if v.Kind != KindObject {
		return nil, false
	}
	for _, f := range v.Fields {
		if f.Key == key {
			return f.Val, true
		}
	}
	return nil, false
}

// Len returns the number of items or fields, zero for scalars.
func (v *Value) Len() int {
	switch v.Kind {
	case KindArray:
		return len(v.Items)
	case KindObject:
		return len(v.Fields)
	default:
		return 0
	}
}

// Equal reports structural equality. Object comparison is key-based and
// ignores field order; array comparison is positional.
func Equal(a, b *Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case KindNull:
		return true
	case KindBool:
		return a.Bool == b.Bool
	case KindNumber:
		return a.Num == b.Num
	case KindString:
		return a.Str == b.Str
	case KindArray:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.Fields) != len(b.Fields) {
			return false
		}
		for _, f := range a.Fields {
			other, ok := b.Field(f.Key)
			if !ok || !Equal(f.Val, other) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ToAny converts a Value to the plain Go representation used by
// collaborators that expect encoding/json shapes (gojq, JSON Schema
// inference, mock generation). Object field order is lost.
func ToAny(v *Value) any {
	if v == nil {
		return nil
	}
	switch v.Kind {
	case KindNull:
		return nil
	case KindBool:
		return v.Bool
	case KindNumber:
		return v.Num
	case KindString:
		return v.Str
	case KindArray:
		out := make([]any, len(v.Items))
		for i, item := range v.Items {
			out[i] = ToAny(item)
		}
		return out
	case KindObject:
		out := make(map[string]any, len(v.Fields))
		for _, f := range v.Fields {
			out[f.Key] = ToAny(f.Val)
		}
		return out
	default:
		return nil
	}
}

// FromAny converts a plain Go value into a Value. Map keys are sorted so
// the result is deterministic; use the format-specific decoders when
// source order matters.
func FromAny(x any) *Value {
	switch t := x.(type) {
	case nil:
		return Null()
	case bool:
		return NewBool(t)
	case float64:
		return NewNumber(t)
	case float32:
		return NewNumber(float64(t))
	case int:
		return NewNumber(float64(t))
	case int64:
		return NewNumber(float64(t))
	case uint64:
		return NewNumber(float64(t))
	case string:
		return NewString(t)
	case []any:
		items := make([]*Value, len(t))
		for i, item := range t {
			items[i] = FromAny(item)
		}
		return NewArray(items...)
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fields := make([]Field, 0, len(t))
		for _, k := range keys {
			fields = append(fields, Field{Key: k, Val: FromAny(t[k])})
		}
		return NewObject(fields...)
	default:
		return Null()
	}
}
