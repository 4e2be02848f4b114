package schemagen

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/invopop/jsonschema"
	checker "github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// JSONSchema emits a JSON Schema (Draft 2020-12) inferred from the
// sample. Unlike the source-text generators this target is structured
// output, so the emitted document is compiled once as a self-check; a
// compile failure is reported as an error instead of invalid schema text.
func JSONSchema(v *value.Value) (string, error) {
	schema := schemaFromValue(v)
	schema.Version = jsonschema.Version

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling schema: %w", err)
	}

	if err := compileCheck(data); err != nil {
		return "", fmt.Errorf("emitted schema failed to compile: %w", err)
	}

	return string(data) + "\n", nil
}

func schemaFromValue(v *value.Value) *jsonschema.Schema {
	if v == nil {
		return &jsonschema.Schema{Type: "null"}
	}
	switch v.Kind {
	case value.KindNull:
		return &jsonschema.Schema{Type: "null"}
	case value.KindBool:
		return &jsonschema.Schema{Type: "boolean"}
	case value.KindNumber:
		if v.IsInt() {
			return &jsonschema.Schema{Type: "integer"}
		}
		return &jsonschema.Schema{Type: "number"}
	case value.KindString:
		return &jsonschema.Schema{Type: "string"}
	case value.KindArray:
		schema := &jsonschema.Schema{Type: "array"}
		if len(v.Items) > 0 {
			schema.Items = schemaFromValue(v.Items[0])
		}
		return schema
	case value.KindObject:
		schema := &jsonschema.Schema{
			Type:       "object",
			Properties: jsonschema.NewProperties(),
		}
		for _, f := range v.Fields {
			schema.Properties.Set(f.Key, schemaFromValue(f.Val))
		}
		return schema
	default:
		return &jsonschema.Schema{}
	}
}

func compileCheck(data []byte) error {
	doc, err := checker.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	c := checker.NewCompiler()
	if err := c.AddResource("inferred.json", doc); err != nil {
		return err
	}
	_, err = c.Compile("inferred.json")
	return err
}
