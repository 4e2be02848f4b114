package schemagen

import (
	"strings"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// Zod emits a single composed validator expression mirroring the sample's
// shape. There are no separate named blocks: nesting is expressed by
// nesting builder calls.
func Zod(v *value.Value, rootName string) string {
	if rootName == "" {
		rootName = "schema"
	}
	return "const " + rootName + " = " + zodExpr(v, "") + ";\n"
}

func zodExpr(v *value.Value, indent string) string {
	switch v.Kind {
	case value.KindNull:
		return "z.any()"
	case value.KindBool:
		return "z.boolean()"
	case value.KindNumber:
		return "z.number()"
	case value.KindString:
		return "z.string()"
	case value.KindArray:
		if len(v.Items) == 0 {
			return "z.array(z.any())"
		}
		return "z.array(" + zodExpr(v.Items[0], indent) + ")"
	case value.KindObject:
		if len(v.Fields) == 0 {
			return "z.object({})"
		}
		inner := indent + "  "
		var sb strings.Builder
		sb.WriteString("z.object({\n")
		for _, f := range v.Fields {
			sb.WriteString(inner)
			sb.WriteString(fieldKey(f.Key))
			sb.WriteString(": ")
			sb.WriteString(zodExpr(f.Val, inner))
			sb.WriteString(",\n")
		}
		sb.WriteString(indent)
		sb.WriteString("})")
		return sb.String()
	default:
		return "z.any()"
	}
}
