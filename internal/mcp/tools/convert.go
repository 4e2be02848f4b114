package tools

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/convert"
)

// ConvertInput is the input for formakit_convert.
type ConvertInput struct {
	Text   string `json:"text" jsonschema:"document to convert (any supported format)"`
	Target string `json:"target" jsonschema:"one of json, yaml, csv, xml"`
}

// ConvertOutput is the output for formakit_convert.
type ConvertOutput struct {
	Output string `json:"output"`
	From   string `json:"from"`
	To     string `json:"to"`
}

// ToolConvert re-serializes a detected document in another format.
func ToolConvert(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input ConvertInput) (*sdkmcp.CallToolResult, ConvertOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input ConvertInput) (*sdkmcp.CallToolResult, ConvertOutput, error) {
		data, format, err := d.ParseInput(input.Text)
		if err != nil {
			return nil, ConvertOutput{}, err
		}

		target := convert.Target(strings.ToLower(strings.TrimSpace(input.Target)))
		switch target {
		case convert.TargetJSON, convert.TargetYAML, convert.TargetCSV, convert.TargetXML:
		default:
			return nil, ConvertOutput{}, ErrInvalidInput(fmt.Sprintf(
				"unknown target %q: expected json, yaml, csv, or xml", input.Target))
		}

		out, err := convert.To(data, target)
		if err != nil {
			return nil, ConvertOutput{}, ErrInvalidInput(err.Error())
		}

		return nil, ConvertOutput{
			Output: out,
			From:   string(format),
			To:     string(target),
		}, nil
	}
}
