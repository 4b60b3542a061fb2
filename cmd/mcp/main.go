package main

// Serve the diagnostic tools over MCP stdio:
//   go run ./cmd/mcp
// Without DATABASE_URL saved diagnostics live only for the process lifetime.

import (
	"context"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"diagnostic-backend/internal/bootstrap"
	"diagnostic-backend/internal/mcptools"
	"diagnostic-backend/internal/shared/config"
	"diagnostic-backend/internal/shared/telemetry"
)

func main() {
	// stdout carries the MCP protocol.
	telemetry.SetOutput(os.Stderr)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()
	app, err := bootstrap.Build(context.Background(), cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer app.Close()

	return server.ServeStdio(mcptools.New(app.DiagnosticService))
}
