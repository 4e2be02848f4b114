package tools

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/mockgen"
)

// MockInput is the input for formakit_mock. Provide either paths or a
// sample document; with neither, the tool lists the available paths.
type MockInput struct {
	Paths  []string `json:"paths,omitempty" jsonschema:"dotted generator paths, e.g. person.first_name"`
	Sample string   `json:"sample,omitempty" jsonschema:"sample document whose shape the mock data should follow"`
	Count  int      `json:"count,omitempty" jsonschema:"number of records to generate (default 1)"`
	Seed   uint64   `json:"seed,omitempty" jsonschema:"seed for reproducible output (0 means random)"`
}

// MockOutput is the output for formakit_mock.
type MockOutput struct {
	Records        []any    `json:"records,omitzero"`
	UnknownPaths   []string `json:"unknown_paths,omitzero"`
	AvailablePaths []string `json:"available_paths,omitzero"`
}

// ToolMock generates fake data from generator paths or a sample document.
func ToolMock(d *Deps) func(ctx context.Context, req *sdkmcp.CallToolRequest, input MockInput) (*sdkmcp.CallToolResult, MockOutput, error) {
	return func(ctx context.Context, req *sdkmcp.CallToolRequest, input MockInput) (*sdkmcp.CallToolResult, MockOutput, error) {
		gen := mockgen.New(input.Seed)

		if len(input.Paths) == 0 && input.Sample == "" {
			return nil, MockOutput{AvailablePaths: gen.Paths()}, nil
		}

		count := input.Count
		if count <= 0 {
			count = 1
		}
		if count > d.Config.MockMaxRecords {
			count = d.Config.MockMaxRecords
		}

		if input.Sample != "" {
			data, _, err := d.ParseInput(input.Sample)
			if err != nil {
				return nil, MockOutput{}, err
			}
			return nil, MockOutput{Records: gen.FromSample(data, count)}, nil
		}

		records := make([]any, 0, count)
		var unknown []string
		for i := 0; i < count; i++ {
			record, bad := gen.FromPaths(input.Paths)
			records = append(records, record)
			if i == 0 {
				unknown = bad
			}
		}

		return nil, MockOutput{
			Records:      records,
			UnknownPaths: unknown,
		}, nil
	}
}
