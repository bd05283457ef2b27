package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configloader "github.com/stylegate/stylegate/internal/adapters/outbound/config"
	"github.com/stylegate/stylegate/internal/adapters/outbound/gitinfo"
)

// registerResources registers all stylegate MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// 1. stylegate://config - effective check configuration
	s.AddResource(
		mcplib.NewResource(
			"stylegate://config",
			"Check Configuration",
			mcplib.WithResourceDescription("Effective check configuration: defaults merged with .stylegate.yaml"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 2. stylegate://changed - current change set
	s.AddResource(
		mcplib.NewResource(
			"stylegate://changed",
			"Change Set",
			mcplib.WithResourceDescription("Added and modified files of the project worktree"),
			mcplib.WithMIMEType("application/json"),
		),
		handleChangedResource(projectPath),
	)
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := configloader.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading configuration: %w", err)
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling configuration: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "stylegate://config",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}

func handleChangedResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		files, err := gitinfo.New().ChangedFiles(projectPath)
		if err != nil {
			return nil, fmt.Errorf("listing changed files: %w", err)
		}

		data, err := json.MarshalIndent(files, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("marshaling change set: %w", err)
		}

		return []mcplib.ResourceContents{
			mcplib.TextResourceContents{
				URI:      "stylegate://changed",
				MIMEType: "application/json",
				Text:     string(data),
			},
		}, nil
	}
}
