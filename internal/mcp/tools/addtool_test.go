package tools

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckOutputSchema_panicsOnNilSlice(t *testing.T) {
	type BadOutput struct {
		Items []string `json:"items"` // no omitzero → nil → null → schema expects array
	}
	assert.Panics(t, func() {
		CheckOutputSchema[BadOutput]("test_bad_tool")
	})
}

func TestCheckOutputSchema_okWithOmitzero(t *testing.T) {
	type GoodOutput struct {
		Items []string `json:"items,omitzero"`
	}
	assert.NotPanics(t, func() {
		CheckOutputSchema[GoodOutput]("test_good_tool")
	})
}

func TestCheckOutputSchema_okWithNoSlices(t *testing.T) {
	type SimpleOutput struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	assert.NotPanics(t, func() {
		CheckOutputSchema[SimpleOutput]("test_simple_tool")
	})
}

func TestCheckOutputSchema_okWithAny(t *testing.T) {
	assert.NotPanics(t, func() {
		CheckOutputSchema[any]("test_any_tool")
	})
}

func TestCheckOutputSchema_panicsOnRawMessage(t *testing.T) {
	type RawOutput struct {
		Payload json.RawMessage `json:"payload"`
	}
	assert.Panics(t, func() {
		CheckOutputSchema[RawOutput]("test_raw_tool")
	})
}

func TestCheckOutputSchema_builtinToolOutputs(t *testing.T) {
	// Every builtin output type must register cleanly; this is the same
	// check Register runs at startup.
	assert.NotPanics(t, func() {
		CheckOutputSchema[DetectOutput]("formakit_detect")
		CheckOutputSchema[UnwrapOutput]("formakit_unwrap")
		CheckOutputSchema[GenerateOutput]("formakit_generate")
		CheckOutputSchema[ConvertOutput]("formakit_convert")
		CheckOutputSchema[DiffOutput]("formakit_diff")
		CheckOutputSchema[QueryOutput]("formakit_query")
		CheckOutputSchema[SearchOutput]("formakit_search")
		CheckOutputSchema[DecodeJWTOutput]("formakit_decode_jwt")
		CheckOutputSchema[MockOutput]("formakit_mock")
		CheckOutputSchema[FetchOutput]("formakit_fetch")
	})
}
