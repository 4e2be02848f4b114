package value

import (
	"errors"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
)

// DecodeXML parses markup into a compact object form: the root element
// becomes a single-field object keyed by its tag name, attributes become
// "@name" fields, character data becomes a "#text" field (or the element's
// whole value when it has no attributes or children), repeated sibling
// elements collapse into an array, and scalar text is coerced to native
// types. Declarations, comments, and processing instructions are ignored.
func DecodeXML(text string) (*Value, error) {
	doc, err := xmlquery.Parse(strings.NewReader(text))
	if err != nil {
		return nil, err
	}

	var root *xmlquery.Node
	for n := doc.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == xmlquery.ElementNode {
			if root != nil {
				return nil, errors.New("multiple root elements")
			}
			root = n
		}
	}
	if root == nil {
		return nil, errors.New("no root element")
	}

	return NewObject(Field{Key: root.Data, Val: xmlElement(root)}), nil
}

func xmlElement(n *xmlquery.Node) *Value {
	fields := []Field{}
	for _, attr := range n.Attr {
		name := attr.Name.Local
		if attr.Name.Space != "" {
			name = attr.Name.Space + ":" + name
		}
		fields = append(fields, Field{Key: "@" + name, Val: coerceScalar(attr.Value)})
	}

	var text strings.Builder
	childOrder := []string{}
	children := map[string][]*Value{}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case xmlquery.ElementNode:
			if _, seen := children[c.Data]; !seen {
				childOrder = append(childOrder, c.Data)
			}
			children[c.Data] = append(children[c.Data], xmlElement(c))
		case xmlquery.TextNode, xmlquery.CharDataNode:
			text.WriteString(c.Data)
		}
	}

	trimmed := strings.TrimSpace(text.String())

	// Leaf element: its value is the coerced text itself.
	if len(fields) == 0 && len(childOrder) == 0 {
		if trimmed == "" {
			return Null()
		}
		return coerceScalar(trimmed)
	}

	if trimmed != "" {
		fields = append(fields, Field{Key: "#text", Val: coerceScalar(trimmed)})
	}
	for _, name := range childOrder {
		vals := children[name]
		if len(vals) == 1 {
			fields = append(fields, Field{Key: name, Val: vals[0]})
		} else {
			fields = append(fields, Field{Key: name, Val: NewArray(vals...)})
		}
	}
	return NewObject(fields...)
}

// coerceScalar maps textual scalars to native types the way compact
// XML-to-object converters do: numbers, booleans, and null keep their
// parsed form, everything else stays a string.
func coerceScalar(s string) *Value {
	switch s {
	case "true":
		return NewBool(true)
	case "false":
		return NewBool(false)
	case "null":
		return Null()
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return NewNumber(f)
	}
	return NewString(s)
}
