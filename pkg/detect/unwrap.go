package detect

import (
	"github.com/formakit/formakit-mcp/pkg/value"
)

// Unwrap repairs doubly-encoded JSON: every string in the tree (and the
// value itself) is replaced by its deepest successfully parseable JSON
// form. Non-string scalars are returned unchanged; arrays and objects
// recurse element- and field-wise with keys preserved. The input is never
// mutated and Unwrap never fails: an unparseable string is its own fixed
// point.
func Unwrap(v *value.Value) *value.Value {
	if v == nil {
		return value.Null()
	}

	switch v.Kind {
	case value.KindArray:
		items := make([]*value.Value, len(v.Items))
		for i, item := range v.Items {
			items[i] = Unwrap(item)
		}
		return value.NewArray(items...)

	case value.KindObject:
		fields := make([]value.Field, len(v.Fields))
		for i, f := range v.Fields {
			fields[i] = value.Field{Key: f.Key, Val: Unwrap(f.Val)}
		}
		return value.NewObject(fields...)

	case value.KindString:
		parsed, err := value.DecodeJSON(v.Str)
		if err != nil {
			return v
		}
		// Parsing a quoted primitive yields the same text; stop here or
		// the recursion would never make progress.
		if parsed.Kind == value.KindString && parsed.Str == v.Str {
			return parsed
		}
		switch parsed.Kind {
		case value.KindNull, value.KindBool, value.KindNumber:
			return parsed
		}
		return Unwrap(parsed)

	default:
		return v
	}
}

// UnwrapText treats raw text as a string value and unwraps it. The second
// return reports whether unwrapping revealed any structure; false means
// the text was not re-encodable JSON at all.
func UnwrapText(text string) (*value.Value, bool) {
	u := Unwrap(value.NewString(text))
	if u.Kind == value.KindString && u.Str == text {
		return u, false
	}
	return u, true
}
