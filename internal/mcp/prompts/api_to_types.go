package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleAPIToTypes implements the fetch-and-generate workflow.
func HandleAPIToTypes(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		url := ""
		language := "typescript"
		if req.Params.Arguments != nil {
			if v, ok := req.Params.Arguments["url"]; ok {
				url = v
			}
			if v, ok := req.Params.Arguments["language"]; ok && v != "" {
				language = v
			}
		}

		var sb strings.Builder

		sb.WriteString("# Generate Types from an API Response\n\n")
		sb.WriteString("You are helping a developer produce type definitions that match a live API response. ")
		sb.WriteString("Work from real fetched data, not guesses about the payload shape.\n\n")

		sb.WriteString("## Workflow Steps\n\n")
		sb.WriteString("1. **Fetch** - Run `formakit_fetch` on the endpoint\n")
		if url != "" {
			fmt.Fprintf(&sb, "   - Target: `%s`\n", url)
		}
		sb.WriteString("   - Check the status and detected format before going further\n")
		sb.WriteString("   - A truncated body means the sample may be incomplete; prefer a smaller endpoint or page size\n\n")
		sb.WriteString("2. **Inspect** - Look at the normalized value in the fetch output\n")
		sb.WriteString("   - Identify the part that should become the root type (often the body of a wrapper like `data` or `results`)\n")
		sb.WriteString("   - Use `formakit_query` to extract that part when it is nested\n\n")
		fmt.Fprintf(&sb, "3. **Generate** - Run `formakit_generate` with target `%s`\n", language)
		sb.WriteString("   - Pass a meaningful root_name; it becomes the outermost type name\n")
		sb.WriteString("   - Optional vs required cannot be inferred from one sample; note assumptions for the developer\n\n")
		sb.WriteString("4. **Verify** - Sanity-check the generated code against the sample\n")
		sb.WriteString("   - Numbers that happen to be integral in the sample may still be fractional in general\n")
		sb.WriteString("   - Empty arrays produce untyped element types; fetch a richer sample if they matter\n")

		return &sdkmcp.GetPromptResult{
			Description: "API response to type definitions workflow",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
