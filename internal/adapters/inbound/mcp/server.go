package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewStylegateMCPServer creates a new MCP server with the stylegate tools and
// resources registered. The projectPath is the root directory of the project
// to check.
func NewStylegateMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"stylegate",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
