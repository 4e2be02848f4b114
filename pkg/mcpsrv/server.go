package mcpsrv

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/formakit/formakit-mcp/internal/cache"
	"github.com/formakit/formakit-mcp/internal/config"
	"github.com/formakit/formakit-mcp/internal/fetch"
	"github.com/formakit/formakit-mcp/internal/logging"
	"github.com/formakit/formakit-mcp/internal/mcp"
	"github.com/formakit/formakit-mcp/internal/mcp/tools"
	"github.com/formakit/formakit-mcp/internal/query"
)

// Server is the formakit MCP server.
// It wraps the internal implementation and provides extension points.
type Server struct {
	internal   *mcp.Server
	deps       *Deps
	logCleanup func() error
}

// NewServer creates a new MCP server with builtin formakit tools.
//
// Use functional options to configure logging, add custom tools, etc.
func NewServer(opts ...Option) (*Server, error) {
	// Build configuration from options
	cfg := &serverConfig{
		config: config.Load(), // Load defaults from environment
	}
	for _, opt := range opts {
		opt(cfg)
	}

	// Setup logging
	if cfg.logLevel != "" {
		cfg.config.LogLevel = cfg.logLevel
	}
	if cfg.logFile != "" {
		cfg.config.LogFile = cfg.logFile
	}
	logCleanup, err := logging.Setup(cfg.config)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logging: %w", err)
	}

	// Create infrastructure
	parseCache, err := cache.NewParseCache(cfg.config.ParseCacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create parse cache: %w", err)
	}
	queryCache, err := cache.NewQueryCache(cfg.config.QueryCacheMaxItems)
	if err != nil {
		return nil, fmt.Errorf("failed to create query cache: %w", err)
	}

	queryEngine := query.NewEngine(queryCache)

	fetchOpts := []fetch.Option{
		fetch.WithTimeout(cfg.config.FetchTimeout),
		fetch.WithMaxBodyBytes(int64(cfg.config.FetchMaxBodyBytes)),
	}
	if cfg.httpClient != nil {
		fetchOpts = append(fetchOpts, fetch.WithHTTPClient(cfg.httpClient))
	}
	fetchClient := fetch.New(fetchOpts...)

	// Create deps for internal tools and custom tools
	toolDeps := &tools.Deps{
		Config: cfg.config,
		Parse:  parseCache,
		Query:  queryEngine,
		Fetch:  fetchClient,
	}

	// Create public deps (same values, different type for public API)
	deps := &Deps{
		Config: cfg.config,
		Parse:  parseCache,
		Query:  queryEngine,
		Fetch:  fetchClient,
	}

	// Build internal server options
	var internalOpts []mcp.ServerOption
	if !cfg.disableBuiltinTools {
		internalOpts = append(internalOpts, mcp.WithBuiltinTools())
	}
	if !cfg.disableBuiltinPrompts {
		internalOpts = append(internalOpts, mcp.WithBuiltinPrompts())
	}

	// Add custom extension registration callbacks
	for _, fn := range cfg.toolRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.promptRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}
	for _, fn := range cfg.resourceRegistrations {
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(fn))
	}

	// Add deferred tool registrations (tools that need Deps access)
	for _, fn := range cfg.deferredToolRegistrations {
		fn := fn // capture for closure
		internalOpts = append(internalOpts, mcp.WithCustomRegistration(func(srv *sdkmcp.Server) {
			fn(srv, deps)
		}))
	}

	// Create internal server
	internal, err := mcp.NewServer(toolDeps, internalOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create server: %w", err)
	}

	return &Server{
		internal:   internal,
		deps:       deps,
		logCleanup: logCleanup,
	}, nil
}

// Run starts the MCP server with stdio transport.
// The server runs until the context is cancelled.
func (s *Server) Run(ctx context.Context) error {
	return s.internal.Run(ctx)
}

// Close cleans up server resources.
func (s *Server) Close() error {
	if s.logCleanup != nil {
		return s.logCleanup()
	}
	return nil
}

// Deps returns the dependencies for building custom tools.
func (s *Server) Deps() *Deps {
	return s.deps
}
