package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/detect"
	"github.com/formakit/formakit-mcp/pkg/value"
)

// UnwrapInput is the input for formakit_unwrap.
type UnwrapInput struct {
	Text string `json:"text" jsonschema:"JSON text, possibly containing stringified JSON fields"`
}

// UnwrapOutput is the output for formakit_unwrap.
type UnwrapOutput struct {
	Data    any    `json:"data"`
	Pretty  string `json:"pretty"`
	Changed bool   `json:"changed"`
}

// ToolUnwrap recursively parses stringified JSON embedded in a document.
// Non-JSON text that itself parses as JSON after one unwrap step (a bare
// quoted document) is accepted too.
func ToolUnwrap(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input UnwrapInput) (*sdkmcp.CallToolResult, UnwrapOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input UnwrapInput) (*sdkmcp.CallToolResult, UnwrapOutput, error) {
		if err := d.CheckSize(input.Text); err != nil {
			return nil, UnwrapOutput{}, err
		}

		parsed, err := value.DecodeJSON(input.Text)
		if err != nil {
			retried, ok := detect.UnwrapText(input.Text)
			if !ok {
				return nil, UnwrapOutput{}, ErrInvalidInput("input is not valid JSON: " + err.Error())
			}
			return nil, UnwrapOutput{
				Data:    value.ToAny(retried),
				Pretty:  value.EncodeJSONIndent(retried, "  "),
				Changed: true,
			}, nil
		}

		unwrapped := detect.Unwrap(parsed)
		output := UnwrapOutput{
			Data:    value.ToAny(unwrapped),
			Pretty:  value.EncodeJSONIndent(unwrapped, "  "),
			Changed: !value.Equal(parsed, unwrapped),
		}
		return nil, output, nil
	}
}
