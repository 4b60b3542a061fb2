package reports

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/ledongthuc/pdf"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/engine"
	"diagnostic-backend/internal/diagnostics/knowledge"
)

func restaurantResult(t *testing.T) engine.Result {
	t.Helper()
	e := engine.New(knowledge.Default(), engine.WithIDFunc(func() string { return "run-1" }))
	res, err := e.Process(knowledge.SectorRestaurant, answers.Set{
		"orderHandling": answers.Single("paper"),
		"menuFormat":    answers.Single("printed-only"),
		"companyName":   answers.Text("La Esquina"),
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	return res
}

func plainText(t *testing.T, data []byte) (string, int) {
	t.Helper()
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("parse pdf: %v", err)
	}
	plain, err := r.GetPlainText()
	if err != nil {
		t.Fatalf("plain text: %v", err)
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, plain); err != nil {
		t.Fatalf("read text: %v", err)
	}
	return buf.String(), r.NumPage()
}

func TestRenderSinglePageReadable(t *testing.T) {
	res := restaurantResult(t)
	data, err := Render(res, Meta{
		DiagnosticID: "diag-123",
		CompanyName:  "La Esquina",
		CreatedAt:    time.Date(2026, time.May, 4, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-1.4")) {
		t.Fatalf("missing pdf header")
	}

	text, pages := plainText(t, data)
	if pages != 1 {
		t.Fatalf("expected 1 page, got %d", pages)
	}
	for _, want := range []string{"La Esquina", "Recommended solution", res.Recommendation.Primary.Title, "Reference diag-123"} {
		if !strings.Contains(text, want) {
			t.Fatalf("expected %q in report text %q", want, text)
		}
	}
}

func TestRenderRejectsEmptyResult(t *testing.T) {
	if _, err := Render(engine.Result{}, Meta{}); !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}

func TestPageTruncatesOverflow(t *testing.T) {
	p := &page{}
	for i := 0; i < 80; i++ {
		p.add(fontRegular, 11, "line of filler text", 0)
	}
	data := p.document("overflow")
	if !p.truncated {
		t.Fatalf("expected truncation")
	}
	text, pages := plainText(t, data)
	if pages != 1 || !strings.Contains(text, truncationNotice) {
		t.Fatalf("expected single page with notice, got %d pages and %q", pages, text)
	}
}

func TestEscapeWinAnsi(t *testing.T) {
	cases := map[string]string{
		"a (b) \\c": `a \(b\) \\c`,
		"€5":        `\2005`,
		"niño":      `ni\361o`,
		"✓":         "?",
	}
	for in, want := range cases {
		if got := escape(in); got != want {
			t.Fatalf("escape(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestWrapRespectsWidth(t *testing.T) {
	long := strings.Repeat("word ", 60)
	lines := wrap(long, 10)
	if len(lines) < 2 {
		t.Fatalf("expected wrapping, got %d lines", len(lines))
	}
	width := pageWidth - 2*margin
	limit := int(width / 5)
	for _, l := range lines {
		if len(l) > limit {
			t.Fatalf("line longer than %d: %q", limit, l)
		}
	}
}
