// Package mcp exposes the dataset analysis tools over the Model Context
// Protocol with a stdio transport.
package mcp

import (
	"context"
	"fmt"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/timf34/TinderDataAdventures/internal/mcp/tools"
)

// Server wraps the MCP server around the preloaded dataset.
type Server struct {
	mcpServer *sdkmcp.Server
}

// NewServer creates an MCP server and registers the analysis tools.
func NewServer(deps *tools.Deps) (*Server, error) {
	if deps == nil {
		return nil, fmt.Errorf("deps is required")
	}
	if deps.Raw == nil {
		return nil, fmt.Errorf("dataset must be loaded before the server starts")
	}

	srv := sdkmcp.NewServer(
		&sdkmcp.Implementation{
			Name:    "tinderdata-mcp",
			Version: "1.0.0",
		},
		nil,
	)
	srv.AddReceivingMiddleware(LoggingMiddleware())
	tools.Register(srv, deps)

	return &Server{mcpServer: srv}, nil
}

// Run serves requests on stdin/stdout until ctx is cancelled or the client
// disconnects.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &sdkmcp.StdioTransport{})
}

// MCPServer returns the underlying MCP server for testing.
func (s *Server) MCPServer() *sdkmcp.Server {
	return s.mcpServer
}
