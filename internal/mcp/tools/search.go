package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/internal/docindex"
)

// SearchInput is the input for formakit_search.
type SearchInput struct {
	Text  string `json:"text" jsonschema:"document to search (any supported format)"`
	Query string `json:"query" jsonschema:"free-text query; tokens are ANDed and match key paths and values"`
	Limit int    `json:"limit,omitempty" jsonschema:"cap on returned matches (default from server config)"`
}

// SearchOutput is the output for formakit_search.
type SearchOutput struct {
	Matches []docindex.Match `json:"matches,omitzero"`
	Leaves  int              `json:"leaves"`
	Format  string           `json:"format"`
}

// ToolSearch finds leaves of a document whose path or value matches every
// query token.
func ToolSearch(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input SearchInput) (*sdkmcp.CallToolResult, SearchOutput, error) {
		if input.Query == "" {
			return nil, SearchOutput{}, ErrInvalidInput("query is required")
		}

		data, format, err := d.ParseInput(input.Text)
		if err != nil {
			return nil, SearchOutput{}, err
		}

		limit := input.Limit
		if limit <= 0 {
			limit = d.Config.SearchMaxMatches
		}

		idx := docindex.Build(data)
		matches := idx.Search(input.Query, limit)

		return nil, SearchOutput{
			Matches: matches,
			Leaves:  idx.LeafCount(),
			Format:  string(format),
		}, nil
	}
}
