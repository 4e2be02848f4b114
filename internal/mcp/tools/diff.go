package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/diffkit"
)

// DiffInput is the input for formakit_diff. Provide either both texts or
// both URLs.
type DiffInput struct {
	TextA string `json:"text_a,omitempty" jsonschema:"left-hand document"`
	TextB string `json:"text_b,omitempty" jsonschema:"right-hand document"`
	URLA  string `json:"url_a,omitempty" jsonschema:"fetch the left-hand document from this URL"`
	URLB  string `json:"url_b,omitempty" jsonschema:"fetch the right-hand document from this URL"`
}

// DiffOutput is the output for formakit_diff.
type DiffOutput struct {
	Mode     string            `json:"mode"`
	Segments []diffkit.Segment `json:"segments,omitzero"`
	Equal    bool              `json:"equal"`
}

// ToolDiff compares two documents, structurally when both parse and
// line-by-line otherwise.
func ToolDiff(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input DiffInput) (*sdkmcp.CallToolResult, DiffOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input DiffInput) (*sdkmcp.CallToolResult, DiffOutput, error) {
		textA, textB := input.TextA, input.TextB

		if input.URLA != "" || input.URLB != "" {
			if input.URLA == "" || input.URLB == "" {
				return nil, DiffOutput{}, ErrInvalidInput("url_a and url_b must be provided together")
			}
			resA, resB, err := d.Fetch.FetchPair(ctx, input.URLA, input.URLB)
			if err != nil {
				return nil, DiffOutput{}, WrapFetchError(err)
			}
			textA, textB = resA.Body, resB.Body
		}

		if err := d.CheckSize(textA); err != nil {
			return nil, DiffOutput{}, err
		}
		if err := d.CheckSize(textB); err != nil {
			return nil, DiffOutput{}, err
		}

		result := diffkit.Diff(textA, textB)

		changed := false
		for _, seg := range result.Segments {
			if seg.Added || seg.Removed {
				changed = true
				break
			}
		}

		return nil, DiffOutput{
			Mode:     string(result.Mode),
			Segments: result.Segments,
			Equal:    !changed,
		}, nil
	}
}
