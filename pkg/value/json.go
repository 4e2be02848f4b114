package value

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// DecodeJSON parses text as a single strict JSON value, preserving object
// key order. Trailing non-whitespace content (including BOM-prefixed or
// partial documents) is an error.
func DecodeJSON(text string) (*Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	v, err := decodeNext(dec)
	if err != nil {
		return nil, err
	}

	// A valid document is exactly one value.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after JSON value")
	}
	return v, nil
}

func decodeNext(dec *json.Decoder) (*Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	return decodeToken(dec, tok)
}

func decodeToken(dec *json.Decoder, tok json.Token) (*Value, error) {
	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case string:
		return NewString(t), nil
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return nil, err
		}
		return NewNumber(f), nil
	case bool:
		return NewBool(t), nil
	case nil:
		return Null(), nil
	default:
		return nil, fmt.Errorf("unexpected token %v", tok)
	}
}

func decodeObject(dec *json.Decoder) (*Value, error) {
	fields := []Field{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("object key is not a string: %v", keyTok)
		}
		val, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, Field{Key: key, Val: val})
	}
	if _, err := dec.Token(); err != nil { // consume '}'
		return nil, err
	}
	return NewObject(fields...), nil
}

func decodeArray(dec *json.Decoder) (*Value, error) {
	items := []*Value{}
	for dec.More() {
		item, err := decodeNext(dec)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if _, err := dec.Token(); err != nil { // consume ']'
		return nil, err
	}
	return NewArray(items...), nil
}

// EncodeJSON serializes a Value as compact JSON, preserving object field
// order. Output is deterministic for identical trees.
func EncodeJSON(v *Value) string {
	var sb strings.Builder
	writeJSON(&sb, v, "", "")
	return sb.String()
}

// EncodeJSONIndent serializes a Value as indented JSON.
func EncodeJSONIndent(v *Value, indent string) string {
	var sb strings.Builder
	writeJSON(&sb, v, "", indent)
	return sb.String()
}

func writeJSON(sb *strings.Builder, v *Value, prefix, indent string) {
	if v == nil {
		sb.WriteString("null")
		return
	}
	switch v.Kind {
	case KindNull:
		sb.WriteString("null")
	case KindBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case KindNumber:
		sb.WriteString(FormatNumber(v.Num))
	case KindString:
		sb.WriteString(quoteJSON(v.Str))
	case KindArray:
		if len(v.Items) == 0 {
			sb.WriteString("[]")
			return
		}
		sb.WriteByte('[')
		inner := prefix + indent
		for i, item := range v.Items {
			if i > 0 {
				sb.WriteByte(',')
			}
			if indent != "" {
				sb.WriteByte('\n')
				sb.WriteString(inner)
			}
			writeJSON(sb, item, inner, indent)
		}
		if indent != "" {
			sb.WriteByte('\n')
			sb.WriteString(prefix)
		}
		sb.WriteByte(']')
	case KindObject:
		if len(v.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteByte('{')
		inner := prefix + indent
		for i, f := range v.Fields {
			if i > 0 {
				sb.WriteByte(',')
			}
			if indent != "" {
				sb.WriteByte('\n')
				sb.WriteString(inner)
			}
			sb.WriteString(quoteJSON(f.Key))
			sb.WriteByte(':')
			if indent != "" {
				sb.WriteByte(' ')
			}
			writeJSON(sb, f.Val, inner, indent)
		}
		if indent != "" {
			sb.WriteByte('\n')
			sb.WriteString(prefix)
		}
		sb.WriteByte('}')
	}
}

// FormatNumber renders a float the way JSON serializers do: integral
// values without a fractional part, everything else in shortest form.
func FormatNumber(n float64) string {
	if math.Trunc(n) == n && !math.IsInf(n, 0) && math.Abs(n) < 1e15 {
		return strconv.FormatInt(int64(n), 10)
	}
	return strconv.FormatFloat(n, 'g', -1, 64)
}

func quoteJSON(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}
