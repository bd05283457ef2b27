package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	configloader "github.com/stylegate/stylegate/internal/adapters/outbound/config"
	"github.com/stylegate/stylegate/internal/adapters/outbound/diff"
	"github.com/stylegate/stylegate/internal/adapters/outbound/formatter"
	"github.com/stylegate/stylegate/internal/adapters/outbound/gitinfo"
	"github.com/stylegate/stylegate/internal/adapters/outbound/report"
	"github.com/stylegate/stylegate/internal/adapters/outbound/scanner"
	"github.com/stylegate/stylegate/internal/application"
	"github.com/stylegate/stylegate/internal/domain"
)

// registerTools registers all stylegate MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. stylegate_check
	s.AddTool(
		mcplib.NewTool("stylegate_check",
			mcplib.WithDescription("Run the code style check over changed files and return the report as JSON"),
			mcplib.WithString("files",
				mcplib.Description("Comma-separated file paths relative to the project root; defaults to the git change set"),
			),
			mcplib.WithString("validator",
				mcplib.Description("Override the configured style validator binary"),
			),
			mcplib.WithString("format",
				mcplib.Description("Output format: md or json (default: json)"),
			),
			mcplib.WithBoolean("all",
				mcplib.Description("Check every matching file in the project instead of the change set"),
			),
		),
		handleCheck(projectPath),
	)

	// 2. stylegate_changed_files
	s.AddTool(
		mcplib.NewTool("stylegate_changed_files",
			mcplib.WithDescription("List the added and modified files stylegate would inspect"),
		),
		handleChangedFiles(projectPath),
	)
}

// newCheckService creates the standard set of outbound adapters and the
// check service on top of them.
func newCheckService() *application.CheckService {
	return application.NewCheckService(
		configloader.New(),
		gitinfo.New(),
		scanner.New(),
		formatter.New(),
		diff.New(),
	)
}

func handleCheck(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		files, _ := request.GetArguments()["files"].(string)
		validator, _ := request.GetArguments()["validator"].(string)
		format, _ := request.GetArguments()["format"].(string)
		all, _ := request.GetArguments()["all"].(bool)

		overrides := domain.CheckConfig{Validator: validator}

		var (
			rep *domain.Report
			err error
		)
		if all {
			rep, err = newCheckService().CheckAll(ctx, projectPath, overrides)
		} else {
			rep, err = newCheckService().Check(ctx, projectPath, overrides, splitPaths(files))
		}
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}

		if format == "md" {
			return textResult(report.Markdown(rep)), nil
		}
		return jsonResult(rep)
	}
}

func handleChangedFiles(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		files, err := gitinfo.New().ChangedFiles(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("listing changed files: %v", err)), nil
		}
		return jsonResult(files)
	}
}

// splitPaths splits a comma-separated path list, dropping blanks.
func splitPaths(s string) []string {
	if s == "" {
		return nil
	}
	var result []string
	for _, p := range strings.Split(s, ",") {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// textResult returns a plain text content result.
func textResult(text string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(text)},
	}
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
