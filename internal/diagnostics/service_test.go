package diagnostics

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"diagnostic-backend/internal/diagnostics/engine"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/shared/telemetry"
)

var fixedNow = time.Date(2026, time.March, 10, 9, 30, 0, 123456789, time.UTC)

func newTestService(repo Repo) *Service {
	svc := NewService(engine.New(knowledge.Default()), repo)
	svc.Now = func() time.Time { return fixedNow }
	return svc
}

type failingRepo struct {
	*MemoryRepo
}

func (failingRepo) Create(context.Context, Record) error {
	return errors.New("disk full")
}

func TestServiceSubmitStoresRecord(t *testing.T) {
	repo := NewMemoryRepo()
	svc := newTestService(repo)

	rec, err := svc.Submit(context.Background(), Request{
		Answers: map[string]any{
			"businessType":  "restaurant",
			"orderHandling": "paper",
			"contactName":   "  Ana ",
		},
		ContactEmail: "ana@example.com",
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if rec.ID == "" || rec.ID != rec.Result.RunID {
		t.Fatalf("expected record id to match run id, got %q / %q", rec.ID, rec.Result.RunID)
	}
	if rec.Sector != knowledge.SectorRestaurant || rec.ContactName != "Ana" || !rec.CreatedAt.Equal(fixedNow) {
		t.Fatalf("unexpected record %+v", rec)
	}

	got, err := svc.Get(context.Background(), rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Result.Recommendation.Primary.ID != knowledge.SolutionRestaurant {
		t.Fatalf("unexpected primary %q", got.Result.Recommendation.Primary.ID)
	}
}

func TestServiceSubmitRejectsBadInput(t *testing.T) {
	svc := newTestService(NewMemoryRepo())
	ctx := context.Background()

	if _, err := svc.Submit(ctx, Request{Sector: "retail", ContactEmail: "not an email"}); !errors.Is(err, ErrInvalidContact) {
		t.Fatalf("expected ErrInvalidContact, got %v", err)
	}
	if _, err := svc.Submit(ctx, Request{Sector: "bakery"}); !errors.Is(err, knowledge.ErrInvalidSector) {
		t.Fatalf("expected ErrInvalidSector, got %v", err)
	}
	if _, err := svc.Preview(ctx, Request{}); !errors.Is(err, knowledge.ErrInvalidSector) {
		t.Fatalf("expected ErrInvalidSector for missing sector, got %v", err)
	}
}

func TestServiceSubmitStoreFailure(t *testing.T) {
	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	svc := newTestService(failingRepo{NewMemoryRepo()})
	_, err := svc.Submit(context.Background(), Request{Sector: "factory"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected store error, got %v", err)
	}
	if !strings.Contains(buf.String(), "diagnostic.store_failed") {
		t.Fatalf("expected store failure log, got %q", buf.String())
	}
}

func TestServicePreviewLogsUnrecognizedAnswers(t *testing.T) {
	var buf bytes.Buffer
	restore := telemetry.SetOutput(&buf)
	defer restore()

	svc := newTestService(NewMemoryRepo())
	res, err := svc.Preview(context.Background(), Request{
		Sector:  "retail",
		Answers: map[string]any{"mysteryQuestion": "owner@example.com"},
	})
	if err != nil {
		t.Fatalf("Preview: %v", err)
	}
	if len(res.Warnings) != 1 {
		t.Fatalf("expected one warning, got %+v", res.Warnings)
	}
	logs := buf.String()
	if !strings.Contains(logs, "diagnostic.unrecognized_answer") || !strings.Contains(logs, "mysteryQuestion") {
		t.Fatalf("expected unrecognized answer log, got %q", logs)
	}
	if strings.Contains(logs, "owner@example.com") || !strings.Contains(logs, "value_key") {
		t.Fatalf("expected answer value to be hashed in logs, got %q", logs)
	}
	if !strings.Contains(logs, "diagnostic.processed") {
		t.Fatalf("expected processed log, got %q", logs)
	}
}

func TestServiceGetNonUUIDIsNotFound(t *testing.T) {
	svc := newTestService(NewMemoryRepo())
	if _, err := svc.Get(context.Background(), "../etc/passwd"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestServiceReport(t *testing.T) {
	svc := newTestService(NewMemoryRepo())
	ctx := context.Background()
	rec, err := svc.Submit(ctx, Request{
		Sector:  "workshop",
		Answers: map[string]any{"companyName": "Taller Sur"},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	got, data, err := svc.Report(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if got.ID != rec.ID || !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected pdf for %s, got %d bytes", rec.ID, len(data))
	}
}
