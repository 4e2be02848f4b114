package mcp

import (
	"context"

	json "github.com/goccy/go-json"
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/pkg/mockgen"
)

// Resource URI scheme: formakit://
// Supported URIs:
//   formakit://formats
//   formakit://mock/paths

const mimeJSON = "application/json"

// registerResources registers static resources and their handlers.
func (s *Server) registerResources() {
	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         "formakit://formats",
		Name:        "Supported Formats",
		Description: "The formats the detector recognizes and the targets available for generation and conversion.",
		MIMEType:    mimeJSON,
	}, s.handleResourceFormats)

	s.mcpServer.AddResource(&sdkmcp.Resource{
		URI:         "formakit://mock/paths",
		Name:        "Mock Generator Paths",
		Description: "All dotted generator paths accepted by formakit_mock.",
		MIMEType:    mimeJSON,
	}, s.handleResourceMockPaths)
}

func (s *Server) handleResourceFormats(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	content := map[string]any{
		"detect":   []string{"json", "yaml", "xml", "csv"},
		"generate": []string{"typescript", "zod", "gostruct", "sql", "mongoose", "jsonschema"},
		"convert":  []string{"json", "yaml", "csv", "xml"},
	}
	return toResourceResult(req.Params.URI, content)
}

func (s *Server) handleResourceMockPaths(ctx context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
	content := map[string]any{
		"paths": mockgen.New(0).Paths(),
	}
	return toResourceResult(req.Params.URI, content)
}

// toResourceResult serializes content to a ReadResourceResult.
func toResourceResult(uri string, content any) (*sdkmcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return nil, err
	}

	return &sdkmcp.ReadResourceResult{
		Contents: []*sdkmcp.ResourceContents{
			{
				URI:      uri,
				MIMEType: mimeJSON,
				Text:     string(data),
			},
		},
	}, nil
}
