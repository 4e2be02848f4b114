package prompts

import (
	"context"
	"fmt"
	"strings"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// HandleExploreDocument implements the document exploration workflow.
func HandleExploreDocument(cfg *Config) func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
	return func(ctx context.Context, req *sdkmcp.GetPromptRequest) (*sdkmcp.GetPromptResult, error) {
		goal := ""
		if req.Params.Arguments != nil {
			if v, ok := req.Params.Arguments["goal"]; ok {
				goal = v
			}
		}

		var sb strings.Builder

		sb.WriteString("# Explore a Data Payload\n\n")
		sb.WriteString("You are a data analysis assistant working with a document whose structure is not yet known. ")
		sb.WriteString("Your goal is to understand and extract from the payload without pasting the whole document into context.\n\n")

		if goal != "" {
			sb.WriteString("## Goal\n\n")
			sb.WriteString(goal)
			sb.WriteString("\n\n")
		}

		sb.WriteString("## Workflow Steps\n\n")
		sb.WriteString("1. **Detect** - Run `formakit_detect` on the raw text\n")
		sb.WriteString("   - Confirms the format (JSON, YAML, XML, CSV) and returns the normalized value\n")
		sb.WriteString("   - If the format comes back 'unknown', check the diagnostic; the input may be doubly-encoded, try `formakit_unwrap`\n\n")
		sb.WriteString("2. **Search** - Use `formakit_search` with keywords related to what you need\n")
		sb.WriteString("   - Returns matching key paths like `$.items[3].user.email`\n")
		sb.WriteString("   - Tokens are ANDed; use fewer, more specific words if nothing matches\n\n")
		sb.WriteString("3. **Query** - Convert the paths into `formakit_query` jq expressions\n")
		sb.WriteString("   - e.g. path `$.items[3].user.email` generalizes to `.items[].user.email`\n")
		sb.WriteString("   - Set max_results to keep large extractions bounded\n\n")
		sb.WriteString("4. **Summarize structure** - When the caller needs types, run `formakit_generate`\n")
		sb.WriteString("   - Pick the target language; nested objects become named definitions\n\n")

		sb.WriteString("## Notes\n\n")
		if cfg != nil && cfg.MaxInputBytes > 0 {
			fmt.Fprintf(&sb, "- Inputs larger than %d bytes are rejected; trim or split first\n", cfg.MaxInputBytes)
		}
		sb.WriteString("- `formakit_diff` compares two revisions of the same payload structurally\n")
		sb.WriteString("- Strings that look like JWTs decode with `formakit_decode_jwt`\n")

		return &sdkmcp.GetPromptResult{
			Description: "Document exploration workflow",
			Messages: []*sdkmcp.PromptMessage{
				{
					Role:    "user",
					Content: &sdkmcp.TextContent{Text: sb.String()},
				},
			},
		}, nil
	}
}
