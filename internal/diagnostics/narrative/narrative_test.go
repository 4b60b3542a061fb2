package narrative

import (
	"strings"
	"testing"

	"diagnostic-backend/internal/diagnostics/costs"
	"diagnostic-backend/internal/diagnostics/insights"
)

func summary(hours, money float64) costs.Summary {
	return costs.Summary{
		TotalCurrentCost:      costs.Totals{TimeHours: hours, MoneyCost: money},
		TotalPotentialSavings: costs.Totals{TimeHours: hours * 0.8, MoneyCost: money * 0.85},
		ROI:                   costs.ROI(money*0.85, 300),
	}
}

func insight(id, title string, hours, money, errRate float64) insights.Insight {
	return insights.Insight{
		QuestionID:       id,
		Title:            "Problem " + id,
		CurrentCost:      insights.Cost{TimeHours: hours, MoneyCost: money, ErrorRate: errRate},
		PotentialSavings: costs.Savings{TimeHours: hours * 0.8, MoneyCost: money * 0.85, ErrorReduction: errRate * 0.9},
		Opportunity:      insights.Detail{Title: title, Description: "desc " + id},
	}
}

func TestBuildProjectionsAndStates(t *testing.T) {
	in := Input{
		Summary: summary(10, 400),
		Insights: []insights.Insight{
			insight("orderHandling", "Digital order taking", 10, 400, 15),
		},
		CurrencySymbol:    "$",
		SystemMonthlyCost: 300,
	}
	n := Build(in)

	if n.FinancialProjection.MonthlySavings != 340 || n.FinancialProjection.YearlySavings != 4080 {
		t.Fatalf("unexpected projection %+v", n.FinancialProjection)
	}
	if n.FinancialProjection.YearlyHoursSaved != 416 {
		t.Fatalf("expected 416 yearly hours, got %v", n.FinancialProjection.YearlyHoursSaved)
	}
	if n.ImpactEquivalents.HoursSavedPerMonth != 34.64 || n.ImpactEquivalents.WorkDaysSavedPerYear != 52 || n.ImpactEquivalents.WorkWeeksSavedPerYear != 10.4 {
		t.Fatalf("unexpected equivalents %+v", n.ImpactEquivalents)
	}
	if n.BeforeState.ErrorRate != 15 || n.AfterState.ErrorRate != 1.5 {
		t.Fatalf("unexpected error states %+v -> %+v", n.BeforeState, n.AfterState)
	}
	if n.AfterState.HoursPerWeek != 2 || n.AfterState.MoneyPerMonth != 60 {
		t.Fatalf("unexpected after state %+v", n.AfterState)
	}
	if len(n.HoursBreakdown) != 1 || n.HoursBreakdown[0].ID != "orderHandling" {
		t.Fatalf("unexpected breakdown %+v", n.HoursBreakdown)
	}
	if !strings.Contains(n.ROIExplanation, "13.3%") {
		t.Fatalf("expected roi in explanation, got %q", n.ROIExplanation)
	}
}

func TestHoursBreakdownDedupAndFallback(t *testing.T) {
	in := Input{
		Summary: summary(18, 1400),
		Insights: []insights.Insight{
			insight("quoting", "Automate quotes and costing", 12, 600, 0),
			insight("costCalculation", "Automate Quotes, and costing!", 6, 800, 20),
		},
	}
	n := Build(in)
	if len(n.HoursBreakdown) != 1 || n.HoursBreakdown[0].ID != "quoting" {
		t.Fatalf("expected single deduped entry, got %+v", n.HoursBreakdown)
	}

	n = Build(Input{Summary: summary(2, 80)})
	if len(n.HoursBreakdown) != 1 || n.HoursBreakdown[0].ID != GeneralProcessesID {
		t.Fatalf("expected general processes fallback, got %+v", n.HoursBreakdown)
	}
	if n.HoursBreakdown[0].HoursSavedPerWeek != 1.6 {
		t.Fatalf("expected fallback to carry summary hours, got %v", n.HoursBreakdown[0].HoursSavedPerWeek)
	}
}

func TestRealLifeEquivalentThresholds(t *testing.T) {
	cases := []struct {
		hours    float64
		contains string
		absent   string
	}{
		{25, "half an employee", "full working day"},
		{10, "full working day", "half an employee"},
		{5, "hours a month", "full working day"},
	}
	for _, tc := range cases {
		n := Build(Input{Summary: summary(tc.hours, 0)})
		joined := strings.Join(n.RealLifeEquivalents, " ")
		if !strings.Contains(joined, tc.contains) {
			t.Fatalf("%v hours: expected %q in %q", tc.hours, tc.contains, joined)
		}
		if strings.Contains(joined, tc.absent) {
			t.Fatalf("%v hours: did not expect %q in %q", tc.hours, tc.absent, joined)
		}
	}
}

func TestPersonalizedSummaryDegradesGracefully(t *testing.T) {
	base := Input{Summary: summary(10, 400), CurrencySymbol: "$"}

	withBoth := base
	withBoth.ContactName = "Ana"
	withBoth.CompanyName = "La Esquina"
	if got := Build(withBoth).PersonalizedSummary; !strings.HasPrefix(got, "Ana, at La Esquina you could") {
		t.Fatalf("unexpected personalized paragraph %q", got)
	}

	if got := Build(base).PersonalizedSummary; !strings.HasPrefix(got, "This business could recover about 8 hours") {
		t.Fatalf("unexpected impersonal paragraph %q", got)
	}

	empty := Build(Input{})
	if !strings.Contains(empty.PersonalizedSummary, "well organized") {
		t.Fatalf("expected well organized paragraph, got %q", empty.PersonalizedSummary)
	}
	if empty.Hero.Headline != "Your operation is already in good shape" {
		t.Fatalf("unexpected hero %+v", empty.Hero)
	}
	if empty.RealLifeEquivalents == nil || empty.ProblemBreakdown == nil {
		t.Fatalf("expected non-nil lists")
	}
}
