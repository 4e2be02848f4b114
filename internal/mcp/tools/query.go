package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/internal/query"
)

// QueryInput is the input for formakit_query.
type QueryInput struct {
	Text        string `json:"text" jsonschema:"document to query (any supported format)"`
	Expression  string `json:"expression" jsonschema:"jq expression, e.g. '.items[] | .name'"`
	Deduplicate bool   `json:"deduplicate,omitempty" jsonschema:"remove duplicate values (default: false)"`
	MaxResults  int    `json:"max_results,omitempty" jsonschema:"cap on emitted values (default from server config)"`
}

// QueryOutput is the output for formakit_query.
type QueryOutput struct {
	Values []any    `json:"values,omitzero"`
	Errors []string `json:"errors,omitzero"`
	Format string   `json:"format"`
}

// ToolQuery evaluates a jq expression over a detected document.
func ToolQuery(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input QueryInput) (*sdkmcp.CallToolResult, QueryOutput, error) {
		if input.Expression == "" {
			return nil, QueryOutput{}, ErrInvalidInput("expression is required")
		}

		data, format, err := d.ParseInput(input.Text)
		if err != nil {
			return nil, QueryOutput{}, err
		}

		maxResults := input.MaxResults
		if maxResults <= 0 {
			maxResults = d.Config.DefaultMaxResults
		}

		result, err := d.Query.Run(data, input.Expression, maxResults)
		if err != nil {
			return nil, QueryOutput{}, ErrInvalidInput(err.Error())
		}

		if input.Deduplicate {
			result.Values = query.Deduplicate(result.Values)
		}

		return nil, QueryOutput{
			Values: result.Values,
			Errors: result.Errors,
			Format: string(format),
		}, nil
	}
}
