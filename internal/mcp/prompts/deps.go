// Package prompts contains MCP prompt implementations for formakit.
package prompts

// Config holds configuration needed by prompts.
type Config struct {
	MaxInputBytes int
}
