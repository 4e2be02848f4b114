// Package query evaluates jq expressions against detected values. The jq
// sublanguage is the workbench's projection/transform facility: expressive
// enough to reshape a document, but never arbitrary host code.
package query

import (
	"errors"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/formakit/formakit-mcp/internal/cache"
	"github.com/formakit/formakit-mcp/pkg/value"
)

// Engine executes jq expressions, reusing compiled programs.
type Engine struct {
	programs *cache.QueryCache
}

// NewEngine creates a query engine backed by the given program cache.
func NewEngine(programs *cache.QueryCache) *Engine {
	return &Engine{programs: programs}
}

// Result contains the outcome of one evaluation. Runtime errors (as
// opposed to compile errors) are collected per emitted value so a single
// bad step never aborts the whole evaluation.
type Result struct {
	Values []any    `json:"values"`
	Errors []string `json:"errors,omitempty"`
}

// Run evaluates expression against v and returns up to maxResults values.
// A malformed expression is returned as an error; runtime failures are
// reported inside the Result.
func (e *Engine) Run(v *value.Value, expression string, maxResults int) (*Result, error) {
	code, err := e.compile(expression)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Values: []any{},
		Errors: []string{},
	}

	iter := code.Run(value.ToAny(v))
	for {
		out, ok := iter.Next()
		if !ok {
			break
		}
		if runErr, isErr := out.(error); isErr {
			result.Errors = append(result.Errors, formatRunError(runErr))
			continue
		}
		result.Values = append(result.Values, out)
		if maxResults > 0 && len(result.Values) >= maxResults {
			break
		}
	}

	return result, nil
}

// Validate checks that an expression parses and compiles without running it.
func (e *Engine) Validate(expression string) error {
	_, err := e.compile(expression)
	return err
}

func (e *Engine) compile(expression string) (*gojq.Code, error) {
	if code, ok := e.programs.Get(expression); ok {
		return code, nil
	}

	parsed, err := gojq.Parse(expression)
	if err != nil {
		var parseErr *gojq.ParseError
		if errors.As(err, &parseErr) {
			return nil, fmt.Errorf("invalid jq expression at position %d: %w", parseErr.Offset, err)
		}
		return nil, fmt.Errorf("invalid jq expression: %w", err)
	}

	code, err := gojq.Compile(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to compile jq expression: %w", err)
	}

	e.programs.Put(expression, code)
	return code, nil
}

// formatRunError decorates common jq runtime errors with a hint. These are
// plain errors without typed wrappers in gojq, so string matching is used
// for display messages only, never for control flow.
func formatRunError(err error) string {
	var haltErr *gojq.HaltError
	if errors.As(err, &haltErr) {
		if haltErr.Value() == nil {
			return "query halted"
		}
		return fmt.Sprintf("query halted with: %v", haltErr.Value())
	}

	errStr := err.Error()

	var hint string
	switch {
	case strings.Contains(errStr, "cannot iterate over: null"):
		hint = " (the path may not exist in this document)"
	case strings.Contains(errStr, "cannot index") && strings.Contains(errStr, "with"):
		hint = " (field not found or wrong type)"
	case strings.Contains(errStr, "object") && strings.Contains(errStr, "cannot be iterated"):
		hint = " (expected array but got object, try removing '[]')"
	case strings.Contains(errStr, "array") && strings.Contains(errStr, "cannot be indexed"):
		hint = " (expected object but got array, try adding '[]')"
	}

	return errStr + hint
}

// valueKey builds a deduplication key for a query output value. Composite
// values round-trip through value.FromAny, which sorts object keys, so two
// objects with the same fields dedupe regardless of key order.
func valueKey(v any) string {
	switch val := v.(type) {
	case string:
		return "s:" + val
	case float64:
		return fmt.Sprintf("n:%v", val)
	case bool:
		return fmt.Sprintf("b:%v", val)
	case nil:
		return "null"
	default:
		return "j:" + value.EncodeJSON(value.FromAny(val))
	}
}

// Deduplicate removes repeated values, preserving first-seen order.
func Deduplicate(values []any) []any {
	seen := make(map[string]bool, len(values))
	out := make([]any, 0, len(values))
	for _, v := range values {
		k := valueKey(v)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, v)
	}
	return out
}
