// Package diffkit compares two raw texts. When both sides parse into
// structured data the comparison is structural (key-aware); otherwise it
// degrades to a plain line diff over the raw texts, because structural
// diffing on unparseable input is undefined.
package diffkit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/formakit/formakit-mcp/pkg/detect"
	"github.com/formakit/formakit-mcp/pkg/value"
)

// Segment is one run of the diff output. Unchanged runs have both flags
// false; a replacement appears as a removed segment followed by an added
// one.
type Segment struct {
	Content string `json:"content"`
	Added   bool   `json:"added"`
	Removed bool   `json:"removed"`
}

// Mode names which comparison produced the segments.
type Mode string

const (
	ModeStructural Mode = "structural"
	ModeLines      Mode = "lines"
)

// Result carries the segments together with the mode that produced them.
type Result struct {
	Mode     Mode
	Segments []Segment
}

// Diff detects both texts and compares them: structurally when both parse,
// line-by-line otherwise. Structurally equal inputs produce zero added or
// removed segments regardless of their source formatting.
func Diff(textA, textB string) Result {
	ra := detect.Detect(textA)
	rb := detect.Detect(textB)
	if ra.Data != nil && rb.Data != nil {
		return Result{Mode: ModeStructural, Segments: Structural(ra.Data, rb.Data)}
	}
	return Result{Mode: ModeLines, Segments: Lines(textA, textB)}
}

// Structural compares two values at key level: each value is flattened
// into a canonical ordered list of path/leaf lines (object keys sorted, so
// key order never shows up as a difference) and the two lists are diffed.
func Structural(a, b *value.Value) []Segment {
	return segmentsFromOpcodes(flatten(a), flatten(b))
}

// Lines compares the raw texts line by line.
func Lines(textA, textB string) []Segment {
	return segmentsFromOpcodes(splitLines(textA), splitLines(textB))
}

func segmentsFromOpcodes(a, b []string) []Segment {
	matcher := difflib.NewMatcher(a, b)
	segments := []Segment{}
	for _, op := range matcher.GetOpCodes() {
		switch op.Tag {
		case 'e':
			segments = append(segments, Segment{Content: joinLines(a[op.I1:op.I2])})
		case 'd':
			segments = append(segments, Segment{Content: joinLines(a[op.I1:op.I2]), Removed: true})
		case 'i':
			segments = append(segments, Segment{Content: joinLines(b[op.J1:op.J2]), Added: true})
		case 'r':
			segments = append(segments,
				Segment{Content: joinLines(a[op.I1:op.I2]), Removed: true},
				Segment{Content: joinLines(b[op.J1:op.J2]), Added: true})
		}
	}
	return segments
}

// flatten serializes a value into one line per leaf, identified by its
// path. Empty containers become their own leaf so additions and removals
// of empty structures still show up.
func flatten(v *value.Value) []string {
	var lines []string
	flattenInto(&lines, "$", v)
	return lines
}

func flattenInto(lines *[]string, path string, v *value.Value) {
	switch v.Kind {
	case value.KindArray:
		if len(v.Items) == 0 {
			*lines = append(*lines, path+" = []")
			return
		}
		for i, item := range v.Items {
			flattenInto(lines, fmt.Sprintf("%s[%d]", path, i), item)
		}
	case value.KindObject:
		if len(v.Fields) == 0 {
			*lines = append(*lines, path+" = {}")
			return
		}
		keys := make([]string, len(v.Fields))
		byKey := make(map[string]*value.Value, len(v.Fields))
		for i, f := range v.Fields {
			keys[i] = f.Key
			byKey[f.Key] = f.Val
		}
		sort.Strings(keys)
		for _, k := range keys {
			flattenInto(lines, path+"."+k, byKey[k])
		}
	default:
		*lines = append(*lines, path+" = "+value.EncodeJSON(v))
	}
}

func splitLines(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
