package value

import (
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DecodeYAML parses text as a YAML document, preserving mapping key order.
// Scalar documents decode to scalar Values; callers deciding whether text
// "is" YAML should reject those (see the format detector).
func DecodeYAML(text string) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal([]byte(text), &root); err != nil {
		return nil, err
	}
	if root.Kind == 0 || len(root.Content) == 0 {
		return Null(), nil
	}
	return yamlNode(root.Content[0], 0)
}

const yamlMaxAliasDepth = 64

func yamlNode(n *yaml.Node, depth int) (*Value, error) {
	if depth > yamlMaxAliasDepth {
		return nil, fmt.Errorf("YAML alias nesting exceeds %d levels", yamlMaxAliasDepth)
	}

	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return Null(), nil
		}
		return yamlNode(n.Content[0], depth+1)

	case yaml.AliasNode:
		return yamlNode(n.Alias, depth+1)

	case yaml.MappingNode:
		fields := []Field{}
		for i := 0; i+1 < len(n.Content); i += 2 {
			val, err := yamlNode(n.Content[i+1], depth+1)
			if err != nil {
				return nil, err
			}
			fields = append(fields, Field{Key: n.Content[i].Value, Val: val})
		}
		return NewObject(fields...), nil

	case yaml.SequenceNode:
		items := []*Value{}
		for _, c := range n.Content {
			item, err := yamlNode(c, depth+1)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return NewArray(items...), nil

	case yaml.ScalarNode:
		return yamlScalar(n), nil

	default:
		return nil, fmt.Errorf("unsupported YAML node kind %d", n.Kind)
	}
}

func yamlScalar(n *yaml.Node) *Value {
	switch n.Tag {
	case "!!null":
		return Null()
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return NewString(n.Value)
		}
		return NewBool(b)
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return NewString(n.Value)
		}
		return NewNumber(float64(i))
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return NewString(n.Value)
		}
		return NewNumber(f)
	default:
		return NewString(n.Value)
	}
}
