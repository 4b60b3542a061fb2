// Package mcptools exposes the diagnostic engine as MCP tools so assistants can walk
// an owner through the questionnaire and read back the result.
package mcptools

import (
	"github.com/mark3labs/mcp-go/server"

	"diagnostic-backend/internal/diagnostics"
)

const (
	Name    = "diagnostic-mcp"
	Version = "0.1.0"
)

// New builds an MCP server with every diagnostic tool registered.
func New(svc *diagnostics.Service) *server.MCPServer {
	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	sectors := NewSectorsTool(svc)
	s.AddTool(sectors.Definition(), sectors.Handle)

	questions := NewQuestionsTool(svc)
	s.AddTool(questions.Definition(), questions.Handle)

	diagnose := NewDiagnoseTool(svc)
	s.AddTool(diagnose.Definition(), diagnose.Handle)

	recent := NewRecentTool(svc)
	s.AddTool(recent.Definition(), recent.Handle)

	return s
}

const instructions = `Diagnostic tools for small businesses.
Call list_sectors first, then list_questions for the chosen sector, ask the owner each
question and pass their answers to run_diagnostic as a JSON object keyed by question id.`
