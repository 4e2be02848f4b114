package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// FetchInput is the input for formakit_fetch.
type FetchInput struct {
	URL string `json:"url" jsonschema:"http or https URL to fetch"`
	Raw bool   `json:"raw,omitempty" jsonschema:"skip format detection and return only the raw body"`
}

// FetchOutput is the output for formakit_fetch.
type FetchOutput struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type,omitempty"`
	Body        string `json:"body"`
	Truncated   bool   `json:"truncated"`
	Format      string `json:"format,omitempty"`
	Data        any    `json:"data,omitempty"`
	DetectError string `json:"detect_error,omitempty"`
}

// ToolFetch retrieves a remote document and runs format detection on the
// body. Detection failures are reported in the output, not as tool errors,
// since the raw body is still useful.
func ToolFetch(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input FetchInput) (*sdkmcp.CallToolResult, FetchOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input FetchInput) (*sdkmcp.CallToolResult, FetchOutput, error) {
		if input.URL == "" {
			return nil, FetchOutput{}, ErrInvalidInput("url is required")
		}

		res, err := d.Fetch.Fetch(ctx, input.URL)
		if err != nil {
			return nil, FetchOutput{}, WrapFetchError(err)
		}

		output := FetchOutput{
			Status:      res.Status,
			ContentType: res.ContentType,
			Body:        res.Body,
			Truncated:   res.Truncated,
		}

		if !input.Raw {
			if err := d.CheckSize(res.Body); err == nil {
				parsed := d.Parse.Detect(res.Body)
				output.Format = string(parsed.Format)
				output.DetectError = parsed.Err
				if parsed.Data != nil {
					output.Data = value.ToAny(parsed.Data)
				}
			}
		}

		return nil, output, nil
	}
}
