package schemagen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/formakit/formakit-mcp/pkg/value"
)

type goDef struct {
	name  string
	lines []string
}

type goGen struct {
	names *namer
	defs  []*goDef
}

// GoStruct emits one struct per discovered object shape, nested shapes
// first. Every field carries a json tag with the original key so renamed
// or non-identifier keys still round-trip. Arrays of objects generate a
// nested named struct rather than a generic element type.
func GoStruct(v *value.Value, rootName string) string {
	if rootName == "" {
		rootName = "Root"
	}
	g := &goGen{names: newNamer()}

	var alias string
	if v.Kind == value.KindObject {
		g.defineStruct(g.names.unique(typeName(rootName)), v)
	} else {
		alias = fmt.Sprintf("type %s = %s\n", typeName(rootName), g.typeExpr(rootName, v))
	}

	var sb strings.Builder
	for i := len(g.defs) - 1; i >= 0; i-- {
		d := g.defs[i]
		sb.WriteString("type " + d.name + " struct {\n")
		for _, line := range d.lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteString("}\n")
		if i > 0 || alias != "" {
			sb.WriteByte('\n')
		}
	}
	sb.WriteString(alias)
	return sb.String()
}

func (g *goGen) defineStruct(name string, v *value.Value) {
	d := &goDef{name: name}
	g.defs = append(g.defs, d)
	fieldNames := newNamer()
	for _, f := range v.Fields {
		t := g.typeExpr(f.Key, f.Val)
		exported := fieldNames.unique(typeName(f.Key))
		d.lines = append(d.lines, fmt.Sprintf("\t%s %s `json:%s`", exported, t, strconv.Quote(f.Key)))
	}
}

func (g *goGen) typeExpr(name string, v *value.Value) string {
	switch v.Kind {
	case value.KindNull:
		return "any"
	case value.KindBool:
		return "bool"
	case value.KindNumber:
		if v.IsInt() {
			return "int64"
		}
		return "float64"
	case value.KindString:
		return "string"
	case value.KindArray:
		if len(v.Items) == 0 {
			return "[]any"
		}
		first := v.Items[0]
		if first.Kind == value.KindObject {
			n := g.names.unique(typeName(name) + "Item")
			g.defineStruct(n, first)
			return "[]" + n
		}
		return "[]" + g.typeExpr(name, first)
	case value.KindObject:
		n := g.names.unique(typeName(name))
		g.defineStruct(n, v)
		return n
	default:
		return "any"
	}
}
