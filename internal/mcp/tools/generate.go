package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/schemagen"
	"github.com/formakit/formakit-mcp/pkg/value"
)

// Generation targets accepted by formakit_generate.
const (
	TargetTypeScript = "typescript"
	TargetZod        = "zod"
	TargetGoStruct   = "gostruct"
	TargetSQL        = "sql"
	TargetMongoose   = "mongoose"
	TargetJSONSchema = "jsonschema"
)

// GenerateInput is the input for formakit_generate.
type GenerateInput struct {
	Text     string `json:"text" jsonschema:"document to infer a schema from (any supported format)"`
	Target   string `json:"target" jsonschema:"one of typescript, zod, gostruct, sql, mongoose, jsonschema"`
	RootName string `json:"root_name,omitempty" jsonschema:"name for the root type or table (default Root, or data for sql)"`
}

// GenerateOutput is the output for formakit_generate.
type GenerateOutput struct {
	Code   string `json:"code"`
	Target string `json:"target"`
	Format string `json:"format"`
}

// ToolGenerate infers a type definition from a document.
func ToolGenerate(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateInput) (*sdkmcp.CallToolResult, GenerateOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input GenerateInput) (*sdkmcp.CallToolResult, GenerateOutput, error) {
		data, format, err := d.ParseInput(input.Text)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		target := strings.ToLower(strings.TrimSpace(input.Target))
		code, err := generate(data, target, input.RootName)
		if err != nil {
			return nil, GenerateOutput{}, err
		}

		return nil, GenerateOutput{
			Code:   code,
			Target: target,
			Format: string(format),
		}, nil
	}
}

func generate(data *value.Value, target, rootName string) (string, error) {
	name := rootName
	if name == "" {
		name = "Root"
	}

	switch target {
	case TargetTypeScript:
		return schemagen.TypeScript(data, name), nil
	case TargetZod:
		return schemagen.Zod(data, name), nil
	case TargetGoStruct:
		return schemagen.GoStruct(data, name), nil
	case TargetSQL:
		if rootName == "" {
			name = "data"
		}
		return schemagen.SQL(data, name), nil
	case TargetMongoose:
		return schemagen.Mongoose(data, name), nil
	case TargetJSONSchema:
		code, err := schemagen.JSONSchema(data)
		if err != nil {
			return "", ErrInvalidInput("schema generation failed: " + err.Error())
		}
		return code, nil
	default:
		return "", ErrInvalidInput(fmt.Sprintf(
			"unknown target %q: expected typescript, zod, gostruct, sql, mongoose, or jsonschema", target))
	}
}
