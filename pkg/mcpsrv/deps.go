package mcpsrv

import (
	"github.com/formakit/formakit-mcp/internal/cache"
	"github.com/formakit/formakit-mcp/internal/config"
	"github.com/formakit/formakit-mcp/internal/fetch"
	"github.com/formakit/formakit-mcp/internal/query"
)

// Deps contains all dependencies available to custom tools.
// This gives custom tools access to the same infrastructure as builtin tools.
type Deps struct {
	Config *config.Config
	Parse  *cache.ParseCache
	Query  *query.Engine
	Fetch  *fetch.Client
}
