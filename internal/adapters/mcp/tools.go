// Package mcp exposes dwim's dispatch operations as MCP tools.
package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dwim/internal/application/commands"
	"dwim/internal/domain"
	"dwim/internal/ports"
)

// RegisterTools adds the dispatch tools to the MCP server. history may
// be nil when recording is disabled.
func RegisterTools(s *server.MCPServer, editor ports.Editor, history ports.HistoryStore) {
	s.AddTool(extractTool(), extractHandler())
	s.AddTool(openTool(), openHandler(editor, history))
	if history != nil {
		s.AddTool(recentTool(), recentHandler(history))
	}
}

// --- extract_targets ---

func extractTool() mcp.Tool {
	return mcp.NewTool("extract_targets",
		mcp.WithDescription("Extract file:line references from terminal text (stack traces, compiler errors, grep output)."),
		mcp.WithString("text",
			mcp.Description("Terminal text to scan"),
			mcp.Required(),
		),
		mcp.WithString("base_dir",
			mcp.Description("Directory used to anchor relative paths. Omit to keep paths as found."),
		),
	)
}

func extractHandler() server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text := req.GetString("text", "")
		if text == "" {
			return toolError(fmt.Errorf("text is required"))
		}
		baseDir := req.GetString("base_dir", "")

		targets, err := commands.NewScanCommand(text, baseDir, false).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		var sb strings.Builder
		for _, t := range targets {
			sb.WriteString(t.Arg())
			sb.WriteByte('\n')
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- open_target ---

func openTool() mcp.Tool {
	return mcp.NewTool("open_target",
		mcp.WithDescription("Open a file at a line in the configured editor. Blocks until the editor process exits."),
		mcp.WithString("path",
			mcp.Description("File path to open"),
			mcp.Required(),
		),
		mcp.WithNumber("line",
			mcp.Description("1-based line number (default 1)"),
		),
	)
}

func openHandler(editor ports.Editor, history ports.HistoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		path := req.GetString("path", "")
		if path == "" {
			return toolError(fmt.Errorf("path is required"))
		}
		line := req.GetInt("line", 1)

		target := domain.Target{Path: path, Line: line}
		result, err := commands.NewOpenCommand(editor, history, target).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		return mcp.NewToolResultText(result.Message), nil
	}
}

// --- recent_opens ---

func recentTool() mcp.Tool {
	return mcp.NewTool("recent_opens",
		mcp.WithDescription("List recently opened targets, newest first."),
		mcp.WithNumber("limit",
			mcp.Description("Maximum number of entries (default 10)"),
		),
	)
}

func recentHandler(history ports.HistoryStore) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		limit := req.GetInt("limit", 10)

		visits, err := commands.NewRecentCommand(history, limit).Execute(ctx)
		if err != nil {
			return toolError(err)
		}
		if len(visits) == 0 {
			return mcp.NewToolResultText("No targets opened yet."), nil
		}

		var sb strings.Builder
		for _, v := range visits {
			fmt.Fprintf(&sb, "%s  %s  %s\n", v.OpenedAt.Format("2006-01-02 15:04"), v.Editor, v.Target.Arg())
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- helpers ---

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
