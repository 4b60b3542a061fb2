package mcptools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"diagnostic-backend/internal/diagnostics"
	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/diagnostics/urgency"
)

// SectorsTool handles list_sectors.
type SectorsTool struct {
	svc *diagnostics.Service
}

func NewSectorsTool(svc *diagnostics.Service) *SectorsTool {
	return &SectorsTool{svc: svc}
}

func (t *SectorsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_sectors",
		mcp.WithDescription("List the business sectors the diagnostic supports."),
	)
}

func (t *SectorsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, info := range t.svc.Engine.Knowledge().Sectors() {
		fmt.Fprintf(&b, "- %s: %s\n", info.ID, info.Label)
	}
	return mcp.NewToolResultText(b.String()), nil
}

// QuestionsTool handles list_questions.
type QuestionsTool struct {
	svc *diagnostics.Service
}

func NewQuestionsTool(svc *diagnostics.Service) *QuestionsTool {
	return &QuestionsTool{svc: svc}
}

func (t *QuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_questions",
		mcp.WithDescription("List the questionnaire for a sector, with the accepted option values."),
		mcp.WithString("sector",
			mcp.Required(),
			mcp.Description("Sector id from list_sectors"),
		),
	)
}

func (t *QuestionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sector, err := knowledge.ParseSector(req.GetString("sector", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	qs, err := t.svc.Engine.Knowledge().QuestionsForSector(sector)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Questions for %s:\n", sector.Label())
	for _, q := range qs {
		fmt.Fprintf(&b, "\n%s (%s): %s\n", q.ID, q.Kind, q.Prompt)
		for _, o := range q.Options {
			fmt.Fprintf(&b, "  - %s: %s\n", o.Value, o.Label)
		}
	}
	return mcp.NewToolResultText(b.String()), nil
}

// DiagnoseTool handles run_diagnostic.
type DiagnoseTool struct {
	svc *diagnostics.Service
}

func NewDiagnoseTool(svc *diagnostics.Service) *DiagnoseTool {
	return &DiagnoseTool{svc: svc}
}

func (t *DiagnoseTool) Definition() mcp.Tool {
	return mcp.NewTool("run_diagnostic",
		mcp.WithDescription(
			"Run the diagnostic for a sector and return the full result as JSON. "+
				"Set save to keep the result so it shows up in the admin panel.",
		),
		mcp.WithString("sector",
			mcp.Required(),
			mcp.Description("Sector id from list_sectors"),
		),
		mcp.WithString("answers",
			mcp.Required(),
			mcp.Description(`JSON object keyed by question id, e.g. {"orderHandling":"paper"}`),
		),
		mcp.WithString("contact_email",
			mcp.Description("Owner email, stored only when save is true"),
		),
		mcp.WithBoolean("save",
			mcp.Description("Persist the diagnostic (default: false)"),
		),
	)
}

func (t *DiagnoseTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := answers.DecodeObject([]byte(req.GetString("answers", "")))
	if err != nil {
		return mcp.NewToolResultError("answers must be a JSON object keyed by question id"), nil
	}
	in := diagnostics.Request{
		Sector:       req.GetString("sector", ""),
		Answers:      raw,
		ContactEmail: req.GetString("contact_email", ""),
	}

	var payload any
	if boolArg(req, "save") {
		rec, err := t.svc.Submit(ctx, in)
		if err != nil {
			return toolError(err), nil
		}
		payload = map[string]any{"id": rec.ID, "result": rec.Result}
	} else {
		res, err := t.svc.Preview(ctx, in)
		if err != nil {
			return toolError(err), nil
		}
		payload = map[string]any{"result": res}
	}

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode result: %w", err)
	}
	return mcp.NewToolResultText(string(data)), nil
}

// RecentTool handles list_diagnostics.
type RecentTool struct {
	svc *diagnostics.Service
}

func NewRecentTool(svc *diagnostics.Service) *RecentTool {
	return &RecentTool{svc: svc}
}

func (t *RecentTool) Definition() mcp.Tool {
	return mcp.NewTool("list_diagnostics",
		mcp.WithDescription("List stored diagnostics, newest first."),
		mcp.WithString("urgency",
			mcp.Description("Only diagnostics with this urgency"),
			mcp.Enum(string(urgency.High), string(urgency.Medium), string(urgency.Low)),
		),
		mcp.WithNumber("limit",
			mcp.Description("Number of diagnostics to return (default: 10)"),
		),
	)
}

func (t *RecentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	filter := diagnostics.ListFilter{Limit: int(req.GetFloat("limit", 10))}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 10
	}
	if v := req.GetString("urgency", ""); v != "" {
		level, ok := urgency.ParseLevel(v)
		if !ok {
			return mcp.NewToolResultError("urgency must be high, medium or low"), nil
		}
		filter.Urgency = level
	}

	records, err := t.svc.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list diagnostics: %w", err)
	}
	if len(records) == 0 {
		return mcp.NewToolResultText("No diagnostics stored yet."), nil
	}
	var b strings.Builder
	for _, rec := range records {
		name := rec.CompanyName
		if name == "" {
			name = "(no company)"
		}
		fmt.Fprintf(&b, "%s  %s  %-6s  %s  %s\n",
			rec.CreatedAt.Format("2006-01-02 15:04"), rec.ID, rec.Urgency, rec.Sector, name)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func toolError(err error) *mcp.CallToolResult {
	switch {
	case errors.Is(err, knowledge.ErrInvalidSector):
		return mcp.NewToolResultError("unknown sector; call list_sectors for valid ids")
	case errors.Is(err, diagnostics.ErrInvalidContact):
		return mcp.NewToolResultError("contact_email is not a valid address")
	default:
		return mcp.NewToolResultError(err.Error())
	}
}

func boolArg(req mcp.CallToolRequest, key string) bool {
	v, _ := req.GetArguments()[key].(bool)
	return v
}
