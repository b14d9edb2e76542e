package main

import (
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	mcpadapter "github.com/kirillkom/placement-predictor/internal/adapters/mcp"
	"github.com/kirillkom/placement-predictor/internal/bootstrap"
	"github.com/kirillkom/placement-predictor/internal/config"
	"github.com/kirillkom/placement-predictor/internal/observability/logging"
)

func main() {
	cfg := config.Load()
	// stdout carries the MCP protocol.
	slog.SetDefault(logging.NewJSONLoggerTo(os.Stderr, "placement-mcp", cfg.LogLevel))
	cfg.MetricsEnabled = false

	app, err := bootstrap.New(cfg)
	if err != nil {
		slog.Error("bootstrap_failed", "error", err)
		os.Exit(1)
	}

	srv := mcpadapter.NewServer(app.Evaluator, cfg.MaxUploadBytes).MCPServer()
	if err := server.ServeStdio(srv); err != nil {
		slog.Error("mcp_server_failed", "error", err)
		os.Exit(1)
	}
}
