package main

import (
	"context"
	"flag"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dwim/internal/adapters/editor"
	"dwim/internal/adapters/history"
	"dwim/internal/adapters/logfile"
	mcpadapter "dwim/internal/adapters/mcp"
	"dwim/internal/config"
	"dwim/internal/ports"
)

func main() {
	configFlag := flag.String("config", "", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("dwim-mcp: %v", err)
	}

	logger, err := logfile.Open(cfg.LogFile)
	if err != nil {
		log.Fatalf("dwim-mcp: %v", err)
	}
	defer logger.Close()

	ed, err := editor.Select(cfg.Editor, cfg.Executable, cfg.Fallbacks, logger)
	if err != nil {
		log.Fatalf("dwim-mcp: %v", err)
	}

	var store ports.HistoryStore
	if cfg.History {
		s, err := history.Open("")
		if err != nil {
			log.Fatalf("dwim-mcp: %v", err)
		}
		defer s.Close()
		store = s
	}

	mcpServer := server.NewMCPServer(
		"dwim-mcp",
		"0.1.0",
		server.WithToolCapabilities(true),
	)

	mcpServer.AddTool(
		mcp.NewTool("ping",
			mcp.WithDescription("Health check — returns pong"),
		),
		func(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			return mcp.NewToolResultText("pong"), nil
		},
	)

	mcpadapter.RegisterTools(mcpServer, ed, store)

	if err := server.ServeStdio(mcpServer); err != nil {
		log.Fatalf("dwim-mcp: %v", err)
	}
}
