// Package convert re-serializes a value tree as JSON, YAML, CSV, or XML
// text. Conversions are pure; the only failure modes are target-specific
// shape requirements (CSV wants an array of flat objects).
package convert

import (
	"encoding/xml"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// Target is an output serialization format.
type Target string

const (
	TargetJSON Target = "json"
	TargetYAML Target = "yaml"
	TargetCSV  Target = "csv"
	TargetXML  Target = "xml"
)

// To serializes v as the given target.
func To(v *value.Value, target Target) (string, error) {
	switch target {
	case TargetJSON:
		return value.EncodeJSONIndent(v, "  ") + "\n", nil
	case TargetYAML:
		return ToYAML(v)
	case TargetCSV:
		return ToCSV(v)
	case TargetXML:
		return ToXML(v)
	default:
		return "", fmt.Errorf("unsupported conversion target %q", target)
	}
}

// ToYAML renders v as a YAML document, preserving object field order.
func ToYAML(v *value.Value) (string, error) {
	node := yamlNode(v)
	out, err := yaml.Marshal(node)
	if err != nil {
		return "", fmt.Errorf("encoding YAML: %w", err)
	}
	return string(out), nil
}

func yamlNode(v *value.Value) *yaml.Node {
	switch v.Kind {
	case value.KindNull:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	case value.KindBool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprintf("%t", v.Bool)}
	case value.KindNumber:
		tag := "!!float"
		if v.IsInt() {
			tag = "!!int"
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value.FormatNumber(v.Num)}
	case value.KindString:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: v.Str}
	case value.KindArray:
		n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v.Items {
			n.Content = append(n.Content, yamlNode(item))
		}
		return n
	case value.KindObject:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, f := range v.Fields {
			n.Content = append(n.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Key},
				yamlNode(f.Val))
		}
		return n
	default:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
}

// ToCSV renders an array of objects as delimited text with a header row
// built from the union of keys in first-seen order. Nested structures
// within a cell are serialized as compact JSON. Non-array roots (or rows
// that are not objects) are an error: there is no tabular rendering for
// them.
func ToCSV(v *value.Value) (string, error) {
	if v.Kind != value.KindArray {
		return "", fmt.Errorf("CSV conversion needs an array of objects, got %s", v.Kind)
	}

	var headers []string
	seen := map[string]bool{}
	for _, row := range v.Items {
		if row.Kind != value.KindObject {
			return "", fmt.Errorf("CSV conversion needs an array of objects, found a %s row", row.Kind)
		}
		for _, f := range row.Fields {
			if !seen[f.Key] {
				seen[f.Key] = true
				headers = append(headers, f.Key)
			}
		}
	}
	if len(headers) == 0 {
		return "", fmt.Errorf("CSV conversion needs at least one column")
	}

	var sb strings.Builder
	writeCSVRow(&sb, headers)
	for _, row := range v.Items {
		cells := make([]string, len(headers))
		for i, h := range headers {
			if cell, ok := row.Field(h); ok {
				cells[i] = csvCell(cell)
			}
		}
		writeCSVRow(&sb, cells)
	}
	return sb.String(), nil
}

func csvCell(v *value.Value) string {
	switch v.Kind {
	case value.KindNull:
		return ""
	case value.KindString:
		return v.Str
	default:
		return value.EncodeJSON(v)
	}
}

func writeCSVRow(sb *strings.Builder, cells []string) {
	for i, c := range cells {
		if i > 0 {
			sb.WriteByte(',')
		}
		if strings.ContainsAny(c, ",\"\n") {
			sb.WriteByte('"')
			sb.WriteString(strings.ReplaceAll(c, `"`, `""`))
			sb.WriteByte('"')
		} else {
			sb.WriteString(c)
		}
	}
	sb.WriteByte('\n')
}

// ToXML renders v as markup. A single-field object maps its key to the
// root element (the inverse of the XML decoder's compact form); anything
// else is wrapped in a <root> element. Array items repeat their parent
// element name.
func ToXML(v *value.Value) (string, error) {
	var sb strings.Builder
	sb.WriteString(xml.Header)
	if v.Kind == value.KindObject && len(v.Fields) == 1 && v.Fields[0].Val.Kind != value.KindArray {
		writeXMLElement(&sb, v.Fields[0].Key, v.Fields[0].Val, "")
	} else {
		writeXMLElement(&sb, "root", v, "")
	}
	return sb.String(), nil
}

func writeXMLElement(sb *strings.Builder, name string, v *value.Value, indent string) {
	name = xmlName(name)
	switch v.Kind {
	case value.KindArray:
		for _, item := range v.Items {
			writeXMLElement(sb, name, item, indent)
		}
	case value.KindObject:
		sb.WriteString(indent + "<" + name)
		var children []value.Field
		var text *value.Value
		for _, f := range v.Fields {
			switch {
			case strings.HasPrefix(f.Key, "@"):
				sb.WriteString(fmt.Sprintf(" %s=%q", xmlName(f.Key[1:]), scalarText(f.Val)))
			case f.Key == "#text":
				text = f.Val
			default:
				children = append(children, f)
			}
		}
		if len(children) == 0 && text == nil {
			sb.WriteString("/>\n")
			return
		}
		sb.WriteString(">")
		if text != nil {
			xml.EscapeText(sb, []byte(scalarText(text)))
		}
		if len(children) > 0 {
			sb.WriteByte('\n')
			for _, f := range children {
				writeXMLElement(sb, f.Key, f.Val, indent+"  ")
			}
			sb.WriteString(indent)
		}
		sb.WriteString("</" + name + ">\n")
	default:
		sb.WriteString(indent + "<" + name + ">")
		xml.EscapeText(sb, []byte(scalarText(v)))
		sb.WriteString("</" + name + ">\n")
	}
}

func scalarText(v *value.Value) string {
	switch v.Kind {
	case value.KindNull:
		return "null"
	case value.KindString:
		return v.Str
	default:
		return value.EncodeJSON(v)
	}
}

// xmlName strips characters that cannot appear in an element name.
func xmlName(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_', r == '-', r == '.':
			return r
		default:
			return '_'
		}
	}, s)
	if cleaned == "" || (cleaned[0] >= '0' && cleaned[0] <= '9') {
		cleaned = "field_" + cleaned
	}
	return cleaned
}
