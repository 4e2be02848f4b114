package schemagen

import (
	"strings"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// SQL emits a CREATE TABLE statement for a flat object: one column per
// top-level key, camelCase keys converted to snake_case. Nested objects
// and arrays collapse to a JSONB column instead of recursing. Integral
// sample numbers become BIGINT, fractional ones DOUBLE PRECISION. A
// non-object root returns an explanatory comment rather than an error so
// callers can render it in place of output.
func SQL(v *value.Value, tableName string) string {
	if tableName == "" {
		tableName = "my_table"
	}
	if v == nil || v.Kind != value.KindObject {
		return "-- Cannot generate a table: input must be a flat JSON object with one column per key.\n"
	}

	var sb strings.Builder
	sb.WriteString("CREATE TABLE " + snakeCase(tableName) + " (\n")
	for i, f := range v.Fields {
		sb.WriteString("  " + snakeCase(f.Key) + " " + sqlColumnType(f.Val))
		if i < len(v.Fields)-1 {
			sb.WriteByte(',')
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(");\n")
	return sb.String()
}

func sqlColumnType(v *value.Value) string {
	switch v.Kind {
	case value.KindNull:
		return "TEXT"
	case value.KindBool:
		return "BOOLEAN"
	case value.KindNumber:
		if v.IsInt() {
			return "BIGINT"
		}
		return "DOUBLE PRECISION"
	case value.KindString:
		return "TEXT"
	default:
		// Nested structure: keep it in a semi-structured column.
		return "JSONB"
	}
}
