// Package tools contains the MCP tool implementations for formakit.
package tools

import (
	"github.com/formakit/formakit-mcp/internal/cache"
	"github.com/formakit/formakit-mcp/internal/config"
	"github.com/formakit/formakit-mcp/internal/fetch"
	"github.com/formakit/formakit-mcp/internal/query"
	"github.com/formakit/formakit-mcp/pkg/detect"
	"github.com/formakit/formakit-mcp/pkg/value"
)

// Deps contains all dependencies needed by tool handlers.
type Deps struct {
	Config *config.Config
	Parse  *cache.ParseCache
	Query  *query.Engine
	Fetch  *fetch.Client
}

// ParseInput validates input size and runs cached format detection.
// An undetectable input is returned as an INVALID_INPUT error carrying
// the detector's diagnostic.
func (d *Deps) ParseInput(text string) (*value.Value, detect.Format, error) {
	if err := d.CheckSize(text); err != nil {
		return nil, detect.FormatUnknown, err
	}
	res := d.Parse.Detect(text)
	if res.Err != "" {
		return nil, res.Format, ErrInvalidInput(res.Err)
	}
	return res.Data, res.Format, nil
}

// CheckSize enforces the configured input size cap.
func (d *Deps) CheckSize(text string) error {
	if d.Config.MaxInputBytes > 0 && len(text) > d.Config.MaxInputBytes {
		return ErrInputTooLarge(len(text), d.Config.MaxInputBytes)
	}
	return nil
}
