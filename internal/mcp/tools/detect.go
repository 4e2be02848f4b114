package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// DetectInput is the input for formakit_detect.
type DetectInput struct {
	Text string `json:"text" jsonschema:"raw document text in any supported format"`
}

// DetectOutput is the output for formakit_detect.
type DetectOutput struct {
	Format string `json:"format"`
	Data   any    `json:"data,omitempty"`
	Pretty string `json:"pretty,omitempty"`
	Error  string `json:"error,omitempty"`
}

// ToolDetect classifies a document and returns its normalized value.
// An undetectable input is reported in the output rather than as a tool
// error so the caller can inspect the diagnostic.
func ToolDetect(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DetectInput) (*sdkmcp.CallToolResult, DetectOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DetectInput) (*sdkmcp.CallToolResult, DetectOutput, error) {
		if err := d.CheckSize(input.Text); err != nil {
			return nil, DetectOutput{}, err
		}

		res := d.Parse.Detect(input.Text)
		output := DetectOutput{
			Format: string(res.Format),
			Error:  res.Err,
		}
		if res.Data != nil {
			output.Data = value.ToAny(res.Data)
			output.Pretty = value.EncodeJSONIndent(res.Data, "  ")
		}

		return nil, output, nil
	}
}
