package schemagen

import (
	"strings"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// Mongoose emits a document-schema expression with the same traversal as
// the Zod generator but Mongoose's field-type vocabulary. Arrays are
// rendered as bracketed element schemas, unknown/null leaves as Mixed.
func Mongoose(v *value.Value, rootName string) string {
	if rootName == "" {
		rootName = "root"
	}
	return "const " + rootName + "Schema = new mongoose.Schema(" + mongooseExpr(v, "") + ");\n"
}

func mongooseExpr(v *value.Value, indent string) string {
	switch v.Kind {
	case value.KindNull:
		return "{ type: mongoose.Schema.Types.Mixed }"
	case value.KindBool:
		return "{ type: Boolean }"
	case value.KindNumber:
		return "{ type: Number }"
	case value.KindString:
		return "{ type: String }"
	case value.KindArray:
		if len(v.Items) == 0 {
			return "[{ type: mongoose.Schema.Types.Mixed }]"
		}
		return "[" + mongooseExpr(v.Items[0], indent) + "]"
	case value.KindObject:
		if len(v.Fields) == 0 {
			return "{}"
		}
		inner := indent + "  "
		var sb strings.Builder
		sb.WriteString("{\n")
		for _, f := range v.Fields {
			sb.WriteString(inner)
			sb.WriteString(fieldKey(f.Key))
			sb.WriteString(": ")
			sb.WriteString(mongooseExpr(f.Val, inner))
			sb.WriteString(",\n")
		}
		sb.WriteString(indent)
		sb.WriteString("}")
		return sb.String()
	default:
		return "{ type: mongoose.Schema.Types.Mixed }"
	}
}
