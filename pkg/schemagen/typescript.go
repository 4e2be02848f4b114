package schemagen

import (
	"fmt"
	"strings"

	"github.com/formakit/formakit-mcp/pkg/value"
)

type tsDef struct {
	name  string
	lines []string
}

type tsGen struct {
	names *namer
	defs  []*tsDef
}

// TypeScript emits interface declarations for every object shape found in
// the sample, nested shapes first. Non-object roots become a type alias.
func TypeScript(v *value.Value, rootName string) string {
	if rootName == "" {
		rootName = "Root"
	}
	g := &tsGen{names: newNamer()}

	var alias string
	if v.Kind == value.KindObject {
		g.defineObject(g.names.unique(typeName(rootName)), v)
	} else {
		alias = fmt.Sprintf("type %s = %s;", typeName(rootName), g.typeExpr(rootName, v))
	}

	var sb strings.Builder
	for i := len(g.defs) - 1; i >= 0; i-- {
		d := g.defs[i]
		sb.WriteString("interface " + d.name + " {\n")
		for _, line := range d.lines {
			sb.WriteString(line)
			sb.WriteByte('\n')
		}
		sb.WriteString("}\n")
		if i > 0 || alias != "" {
			sb.WriteByte('\n')
		}
	}
	if alias != "" {
		sb.WriteString(alias)
		sb.WriteByte('\n')
	}
	return sb.String()
}

func (g *tsGen) defineObject(name string, v *value.Value) {
	d := &tsDef{name: name}
	g.defs = append(g.defs, d)
	for _, f := range v.Fields {
		t := g.typeExpr(f.Key, f.Val)
		d.lines = append(d.lines, fmt.Sprintf("  %s: %s;", fieldKey(f.Key), t))
	}
}

func (g *tsGen) typeExpr(name string, v *value.Value) string {
	switch v.Kind {
	case value.KindNull:
		return "any"
	case value.KindBool:
		return "boolean"
	case value.KindNumber:
		return "number"
	case value.KindString:
		return "string"
	case value.KindArray:
		if len(v.Items) == 0 {
			return "any[]"
		}
		first := v.Items[0]
		if first.Kind == value.KindObject {
			n := g.names.unique(typeName(name) + "Item")
			g.defineObject(n, first)
			return n + "[]"
		}
		return g.typeExpr(name, first) + "[]"
	case value.KindObject:
		n := g.names.unique(typeName(name))
		g.defineObject(n, v)
		return n
	default:
		return "any"
	}
}
