package diagnostics

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/engine"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/reports"
	"diagnostic-backend/internal/shared/metrics"
	"diagnostic-backend/internal/shared/telemetry"
	"diagnostic-backend/internal/shared/util"
)

// Service runs the engine for HTTP callers and keeps the results.
type Service struct {
	Engine *engine.Engine
	Repo   Repo
	Now    func() time.Time
}

func NewService(e *engine.Engine, repo Repo) *Service {
	return &Service{Engine: e, Repo: repo}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Preview runs the diagnostic without storing it.
func (s *Service) Preview(ctx context.Context, req Request) (engine.Result, error) {
	if err := ctx.Err(); err != nil {
		return engine.Result{}, err
	}
	return s.run(req, "preview")
}

// Submit runs the diagnostic and persists the record.
func (s *Service) Submit(ctx context.Context, req Request) (Record, error) {
	email, err := contactEmail(req.ContactEmail)
	if err != nil {
		metrics.IncDiagnosticFailed()
		return Record{}, err
	}
	res, err := s.run(req, "submit")
	if err != nil {
		return Record{}, err
	}

	raw := req.Answers
	if raw == nil {
		raw = map[string]any{}
	}
	rec := Record{
		ID:           res.RunID,
		Sector:       res.Sector,
		Urgency:      res.Urgency,
		ContactEmail: email,
		ContactName:  textAnswer(raw, knowledge.QuestionContactName),
		CompanyName:  textAnswer(raw, knowledge.QuestionCompanyName),
		Answers:      raw,
		Result:       res,
		CreatedAt:    s.now(),
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
		rec.Result.RunID = rec.ID
	}
	if err := s.Repo.Create(ctx, rec); err != nil {
		metrics.IncDiagnosticFailed()
		telemetry.Error("diagnostic.store_failed", map[string]any{
			"diagnostic_id": rec.ID,
			"err":           err,
		})
		return Record{}, fmt.Errorf("store diagnostic: %w", err)
	}
	metrics.IncDiagnosticStored()
	fields := map[string]any{
		"diagnostic_id": rec.ID,
		"sector":        string(rec.Sector),
		"urgency":       string(rec.Urgency),
	}
	if rec.ContactEmail != "" {
		fields["contact_key"] = util.HashKey(rec.ContactEmail)[:16]
	}
	telemetry.Info("diagnostic.stored", fields)
	return rec, nil
}

// Get returns a stored record. Ids that are not UUIDs cannot exist.
func (s *Service) Get(ctx context.Context, id string) (Record, error) {
	if _, err := uuid.Parse(strings.TrimSpace(id)); err != nil {
		return Record{}, ErrNotFound
	}
	return s.Repo.GetByID(ctx, strings.TrimSpace(id))
}

func (s *Service) List(ctx context.Context, filter ListFilter) ([]Record, error) {
	return s.Repo.List(ctx, filter)
}

// Report renders the stored record as PDF.
func (s *Service) Report(ctx context.Context, id string) (Record, []byte, error) {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return Record{}, nil, err
	}
	data, err := reports.Render(rec.Result, reports.Meta{
		DiagnosticID:   rec.ID,
		CompanyName:    rec.CompanyName,
		ContactName:    rec.ContactName,
		CreatedAt:      rec.CreatedAt,
		CurrencySymbol: s.Engine.Config().CurrencySymbol,
	})
	if err != nil {
		return Record{}, nil, fmt.Errorf("render report: %w", err)
	}
	metrics.IncReportRendered()
	return rec, data, nil
}

func (s *Service) run(req Request, mode string) (engine.Result, error) {
	sector := strings.TrimSpace(req.Sector)
	if sector == "" {
		sector = answers.BusinessType(req.Answers)
	}

	start := time.Now()
	res, err := s.Engine.ProcessRaw(sector, req.Answers)
	if err != nil {
		metrics.IncDiagnosticFailed()
		fields := map[string]any{"mode": mode, "sector": sector, "err": err}
		if errors.Is(err, knowledge.ErrInvalidSector) {
			telemetry.Info("diagnostic.rejected", fields)
		} else {
			telemetry.Error("diagnostic.failed", fields)
		}
		return engine.Result{}, err
	}
	elapsed := metrics.SinceMillis(start)

	metrics.IncDiagnosticProcessed()
	metrics.IncUrgency(string(res.Urgency))
	metrics.ObserveDiagnosticDurationMs(elapsed)
	for _, w := range res.Warnings {
		telemetry.Warn("diagnostic.unrecognized_answer", map[string]any{
			"run_id":      res.RunID,
			"sector":      string(res.Sector),
			"question_id": w.QuestionID,
			"value_key":   util.HashKey(w.Value)[:16],
			"value_len":   len(w.Value),
			"reason":      w.Reason,
		})
	}
	telemetry.Info("diagnostic.processed", map[string]any{
		"run_id":      res.RunID,
		"mode":        mode,
		"sector":      string(res.Sector),
		"urgency":     string(res.Urgency),
		"primary":     res.Recommendation.Primary.ID,
		"insights":    len(res.Insights),
		"warnings":    len(res.Warnings),
		"duration_ms": elapsed,
	})
	return res, nil
}

func contactEmail(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	addr, err := mail.ParseAddress(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidContact, err)
	}
	return strings.ToLower(addr.Address), nil
}

func textAnswer(raw map[string]any, key string) string {
	v, _ := raw[key].(string)
	return strings.TrimSpace(v)
}
