// Package detect classifies raw text into a structural format and
// normalizes it into a value tree. Detection is best-effort: candidate
// formats are tried in a fixed priority order and the first structurally
// plausible match wins.
package detect

import (
	"strings"

	"github.com/formakit/formakit-mcp/pkg/value"
)

// Format is the detected structural family of an input.
type Format string

const (
	FormatJSON    Format = "json"
	FormatYAML    Format = "yaml"
	FormatXML     Format = "xml"
	FormatCSV     Format = "csv"
	FormatUnknown Format = "unknown"
)

// ErrUndetectable is the fixed diagnostic for inputs matching none of the
// candidate families.
const ErrUndetectable = "could not detect format: input is not valid JSON, XML, YAML, or CSV"

// ParseResult is the outcome of one detection pass. Data is nil when the
// format is unknown or the input was empty.
type ParseResult struct {
	Data   *value.Value
	Format Format
	Err    string
}

// Detect classifies raw text and returns its normalized value. It is a
// pure function of the input and never panics or errors: parse failures
// inside one candidate fall through to the next, and a fully undetectable
// input yields FormatUnknown with ErrUndetectable.
//
// Priority order (a policy, pinned by tests):
//  1. JSON when the text starts with '{', '[' or '"'; the parsed value is
//     recursively unwrapped to repair stringified-JSON fields.
//  2. XML when the text starts with '<'.
//  3. YAML, only when the text contains both a colon and a newline, and
//     only when the document is a mapping or sequence. The heuristic is
//     deliberately weak and therefore ranked after the sigil checks.
//  4. CSV with a header row, at least one data row, and more than one
//     distinct column; the CSV reader is maximally permissive, so it runs
//     last of the structured candidates.
//  5. A bare-string unwrap retry, covering inputs that are stringified
//     JSON without a leading sigil.
func Detect(text string) ParseResult {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ParseResult{Format: FormatUnknown}
	}

	switch trimmed[0] {
	case '{', '[', '"':
		if v, err := value.DecodeJSON(trimmed); err == nil {
			return ParseResult{Data: Unwrap(v), Format: FormatJSON}
		}
	}

	if trimmed[0] == '<' {
		if v, err := value.DecodeXML(trimmed); err == nil {
			return ParseResult{Data: v, Format: FormatXML}
		}
	}

	if strings.Contains(text, ":") && strings.Contains(text, "\n") {
		if v, err := value.DecodeYAML(text); err == nil {
			// Scalar YAML results are false positives: almost any prose
			// with a colon parses as a YAML scalar.
			if v.Kind == value.KindObject || v.Kind == value.KindArray {
				return ParseResult{Data: v, Format: FormatYAML}
			}
		}
	}

	if v, err := value.DecodeCSV(text); err == nil && csvPlausible(v) {
		return ParseResult{Data: v, Format: FormatCSV}
	}

	if v, changed := UnwrapText(trimmed); changed {
		return ParseResult{Data: v, Format: FormatJSON}
	}

	return ParseResult{Format: FormatUnknown, Err: ErrUndetectable}
}

// csvPlausible guards against classifying arbitrary single-column text as
// tabular data: the first row must carry more than one distinct column.
func csvPlausible(v *value.Value) bool {
	if v.Kind != value.KindArray || len(v.Items) == 0 {
		return false
	}
	first := v.Items[0]
	if first.Kind != value.KindObject {
		return false
	}
	distinct := map[string]struct{}{}
	for _, f := range first.Fields {
		distinct[f.Key] = struct{}{}
	}
	return len(distinct) > 1
}
