package prompts

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all prompts with the MCP server.
func Register(srv *sdkmcp.Server, cfg *Config) {
	// Prompt 1: Explore an unfamiliar document
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "explore_document",
		Description: "RECOMMENDED: Systematically explore an unfamiliar data payload. Walks through detection, search, and targeted queries so you never have to read the raw document end to end.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "goal",
				Description: "What you are trying to find or extract (e.g. 'the user's email addresses')",
				Required:    false,
			},
		},
	}, HandleExploreDocument(cfg))

	// Prompt 2: Turn an API response into typed code
	srv.AddPrompt(&sdkmcp.Prompt{
		Name:        "api_to_types",
		Description: "RECOMMENDED: Generate type definitions from a live API response. Guides through fetching, shape inspection, and schema generation for the language you need.",
		Arguments: []*sdkmcp.PromptArgument{
			{
				Name:        "url",
				Description: "API endpoint to fetch",
				Required:    false,
			},
			{
				Name:        "language",
				Description: "Target: typescript, zod, gostruct, sql, mongoose, or jsonschema",
				Required:    false,
			},
		},
	}, HandleAPIToTypes(cfg))
}
