package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewETDAHMCPServer creates a new MCP server with the ETDAH-II scoring tools
// and instrument resources registered.
func NewETDAHMCPServer() *server.MCPServer {
	s := server.NewMCPServer(
		"etdah",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s)
	registerResources(s)

	return s
}
