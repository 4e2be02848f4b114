package tools

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Register registers all tools with the MCP server.
func Register(srv *sdkmcp.Server, d *Deps) {
	// Tool 1: formakit_detect
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_detect",
		Description: "Detect the format of a raw document (JSON, YAML, XML, or CSV) and return its normalized JSON value. Stringified JSON embedded in JSON inputs is unwrapped automatically. Undetectable inputs return format 'unknown' with a diagnostic in 'error'.",
	}, ToolDetect(d))

	// Tool 2: formakit_unwrap
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_unwrap",
		Description: "Recursively parse stringified JSON inside a JSON document. Every string field that contains valid JSON is replaced by its parsed form, at any nesting depth. Use this to repair doubly-encoded payloads like event bodies or log fields.",
	}, ToolUnwrap(d))

	// Tool 3: formakit_generate
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_generate",
		Description: "Infer a type definition from a document. Targets: typescript (interfaces), zod (schema), gostruct (Go structs with json tags), sql (CREATE TABLE, flat objects only), mongoose (schema), jsonschema (draft 2020-12, validated before returning). Nested objects become named definitions emitted innermost first.",
	}, ToolGenerate(d))

	// Tool 4: formakit_convert
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_convert",
		Description: "Convert a document between formats. Input format is auto-detected; target is json, yaml, csv, or xml. CSV output requires an array of objects. Field order is preserved.",
	}, ToolConvert(d))

	// Tool 5: formakit_diff
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_diff",
		Description: "Compare two documents. When both parse as a supported format the diff is structural (key-path based, key order ignored); otherwise it falls back to a line diff. Accepts inline texts (text_a/text_b) or URLs to fetch (url_a/url_b). 'equal' is true when no segment was added or removed.",
	}, ToolDiff(d))

	// Tool 6: formakit_query
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_query",
		Description: "Run a jq expression against a document of any supported format (the input is normalized to JSON first). Returns emitted values plus per-value runtime errors with hints. Set 'deduplicate' to collapse repeated values. Use formakit_search for free-text lookup when you don't know the structure.",
	}, ToolQuery(d))

	// Tool 7: formakit_search
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_search",
		Description: "Free-text search over the leaves of a document. Query tokens are ANDed and matched against key paths and scalar values (prefix matching included). Returns matching paths usable as jq expressions. Good first step for large unfamiliar payloads.",
	}, ToolSearch(d))

	// Tool 8: formakit_decode_jwt
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_decode_jwt",
		Description: "Decode a JWT without verifying its signature. Returns header, claims, whether a signature part is present, and RFC 3339 renderings of exp/iat when set.",
	}, ToolDecodeJWT(d))

	// Tool 9: formakit_mock
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_mock",
		Description: "Generate mock records. Pass 'paths' (dotted generator names like person.first_name, internet.email) or 'sample' (a document whose shape is reproduced with fake values). With neither, lists all available paths. Set 'seed' for reproducible output.",
	}, ToolMock(d))

	// Tool 10: formakit_fetch
	AddTool(srv, &sdkmcp.Tool{
		Name:        "formakit_fetch",
		Description: "Fetch a document over HTTP(S) and detect its format. Returns status, content type, the (possibly truncated) body, and the normalized value when detection succeeds. Set raw=true to skip detection.",
	}, ToolFetch(d))
}
