package urgency

import (
	"testing"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/knowledge"
)

func TestClassifyTable(t *testing.T) {
	cases := []struct {
		name string
		in   Input
		want Level
	}{
		{"no_tools_critical_pain", Input{Sector: knowledge.SectorRestaurant, Maturity: knowledge.MaturityNone, Pain: knowledge.PainLosingOrders}, High},
		{"no_tools_non_critical_pain", Input{Sector: knowledge.SectorRestaurant, Maturity: knowledge.MaturityNone, Pain: knowledge.PainStockOuts}, Low},
		{"no_tools_pain_critical_elsewhere", Input{Sector: knowledge.SectorFactory, Maturity: knowledge.MaturityNone, Pain: knowledge.PainLosingOrders}, Low},
		{"no_web_presence_selling_online", Input{Sector: knowledge.SectorOther, Maturity: knowledge.MaturityNone, Pain: knowledge.PainNoWebPresence, SellsOnline: true}, High},
		{"no_web_presence_not_selling", Input{Sector: knowledge.SectorOther, Maturity: knowledge.MaturityNone, Pain: knowledge.PainNoWebPresence}, Low},
		{"large_without_tools", Input{Sector: knowledge.SectorRetail, Maturity: knowledge.MaturityNone, Size: knowledge.SizeLarge}, High},
		{"basic_with_critical_pain", Input{Sector: knowledge.SectorRetail, Maturity: knowledge.MaturityBasic, Pain: knowledge.PainStockOuts}, Medium},
		{"partial", Input{Sector: knowledge.SectorWorkshop, Maturity: knowledge.MaturityPartial}, Medium},
		{"advanced", Input{Sector: knowledge.SectorFactory, Maturity: knowledge.MaturityAdvanced, Pain: knowledge.PainSlowQuotes, Size: knowledge.SizeLarge}, Low},
		{"nothing_known", Input{}, Low},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.in); got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestInputFromAnswersRestaurantPaper(t *testing.T) {
	kb := knowledge.Default()
	set := answers.Set{
		"orderHandling": answers.Single("paper"),
		"menuFormat":    answers.Single("printed-only"),
	}
	in := InputFromAnswers(kb, knowledge.SectorRestaurant, set)
	if in.Maturity != knowledge.MaturityNone || in.Pain != knowledge.PainLosingOrders {
		t.Fatalf("unexpected input %+v", in)
	}
	if got := Classify(in); got != High {
		t.Fatalf("expected high, got %q", got)
	}
}

func TestInputFromAnswersSellsOnline(t *testing.T) {
	kb := knowledge.Default()
	set := answers.Set{
		"digitalTools": answers.Single("none"),
		"webPresence":  answers.Single("none"),
		"objectives":   answers.Multi{"presence", "sales"},
	}
	in := InputFromAnswers(kb, knowledge.SectorOther, set)
	if !in.SellsOnline || in.Pain != knowledge.PainNoWebPresence {
		t.Fatalf("unexpected input %+v", in)
	}
	if got := Classify(in); got != High {
		t.Fatalf("expected high, got %q", got)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{"high": High, " Medium ": Medium, "LOW": Low}
	for raw, want := range cases {
		got, ok := ParseLevel(raw)
		if !ok || got != want {
			t.Fatalf("ParseLevel(%q) = %q, %v", raw, got, ok)
		}
	}
	if _, ok := ParseLevel("urgent"); ok {
		t.Fatalf("expected unknown level to be rejected")
	}
}
