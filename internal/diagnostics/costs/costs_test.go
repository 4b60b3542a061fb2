package costs

import (
	"math"
	"strings"
	"testing"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/knowledge"
)

func almost(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestAggregateRestaurantExample(t *testing.T) {
	kb := knowledge.Default()
	set := answers.Set{
		"orderHandling": answers.Single("paper"),
		"menuFormat":    answers.Single("printed-only"),
	}

	res, err := Aggregate(kb, knowledge.SectorRestaurant, set, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s := res.Summary
	if !almost(s.TotalCurrentCost.TimeHours, 12) {
		t.Fatalf("expected 12 hours, got %v", s.TotalCurrentCost.TimeHours)
	}
	if !almost(s.TotalCurrentCost.MoneyCost, 480) {
		t.Fatalf("expected 480 money, got %v", s.TotalCurrentCost.MoneyCost)
	}
	if !almost(s.TotalPotentialSavings.TimeHours, 9.6) {
		t.Fatalf("expected 9.6 hours saved, got %v", s.TotalPotentialSavings.TimeHours)
	}
	if !almost(s.TotalPotentialSavings.MoneyCost, 408) {
		t.Fatalf("expected 408 saved, got %v", s.TotalPotentialSavings.MoneyCost)
	}
	if s.ROI != 36 {
		t.Fatalf("expected roi 36, got %v", s.ROI)
	}
	if len(res.Contributions) != 2 || res.Contributions[0].QuestionID != "orderHandling" {
		t.Fatalf("expected contributions in question order, got %+v", res.Contributions)
	}
	if !strings.Contains(res.Explanations.CurrentCost, "12 hours") {
		t.Fatalf("expected explanation to reference totals, got %q", res.Explanations.CurrentCost)
	}
}

func TestAggregateSavingsPerAnswer(t *testing.T) {
	kb := knowledge.Default()
	set := answers.Set{
		"quoting":            answers.Single("manual"),
		"costCalculation":    answers.Single("estimate"),
		"productionPlanning": answers.Single("whiteboard"),
	}
	res, err := Aggregate(kb, knowledge.SectorFactory, set, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, c := range res.Contributions {
		if !almost(c.Savings.TimeHours, c.Cost.TimeHoursPerWeek*0.8) {
			t.Fatalf("%s: time savings %v not 80%% of %v", c.QuestionID, c.Savings.TimeHours, c.Cost.TimeHoursPerWeek)
		}
		if !almost(c.Savings.MoneyCost, c.Cost.MoneyCostPerMonth*0.85) {
			t.Fatalf("%s: money savings %v not 85%% of %v", c.QuestionID, c.Savings.MoneyCost, c.Cost.MoneyCostPerMonth)
		}
		if c.Savings.MoneyCost > c.Cost.MoneyCostPerMonth || c.Savings.TimeHours > c.Cost.TimeHoursPerWeek {
			t.Fatalf("%s: savings exceed cost", c.QuestionID)
		}
	}
}

func TestAggregateEmptyIsWellOrganized(t *testing.T) {
	kb := knowledge.Default()
	res, err := Aggregate(kb, knowledge.SectorRetail, answers.Set{}, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Summary != (Summary{}) {
		t.Fatalf("expected zero summary, got %+v", res.Summary)
	}
	if !strings.Contains(res.Explanations.CurrentCost, "well organized") {
		t.Fatalf("expected well organized branch, got %q", res.Explanations.CurrentCost)
	}
	if res.Contributions == nil || res.Unrecognized == nil {
		t.Fatalf("expected non-nil lists")
	}
}

func TestAggregateReportsUnrecognized(t *testing.T) {
	kb := knowledge.Default()
	set := answers.Set{
		"orderHandling": answers.Single("fax"),
		"zeta":          answers.Single("x"),
		"alpha":         answers.Numeric(3),
	}
	res, err := Aggregate(kb, knowledge.SectorRestaurant, set, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(res.Unrecognized) != 3 {
		t.Fatalf("expected 3 unrecognized answers, got %+v", res.Unrecognized)
	}
	if res.Unrecognized[0].Reason != ReasonUnknownOption || res.Unrecognized[0].QuestionID != "orderHandling" {
		t.Fatalf("expected unknown option first, got %+v", res.Unrecognized[0])
	}
	if res.Unrecognized[1].QuestionID != "alpha" || res.Unrecognized[2].QuestionID != "zeta" {
		t.Fatalf("expected unknown questions sorted, got %+v", res.Unrecognized[1:])
	}
	if res.Summary.TotalCurrentCost.TimeHours != 0 {
		t.Fatalf("expected unrecognized answers to contribute zero")
	}
}

func TestAggregateInvalidSector(t *testing.T) {
	if _, err := Aggregate(knowledge.Default(), "bakery", answers.Set{}, DefaultConfig()); err == nil {
		t.Fatalf("expected error for unknown sector")
	}
}

func TestROI(t *testing.T) {
	cases := []struct {
		savings, cost, want float64
	}{
		{0, 300, 0},
		{300, 300, 0},
		{408, 300, 36},
		{425, 300, 41.67},
		{1000, 0, 0},
	}
	for _, tc := range cases {
		if got := ROI(tc.savings, tc.cost); got != tc.want {
			t.Fatalf("ROI(%v, %v): expected %v, got %v", tc.savings, tc.cost, tc.want, got)
		}
	}
}

func TestAggregateRoundsSummaryTotals(t *testing.T) {
	set := answers.Set{"quoting": answers.Single("manual")}
	res, err := Aggregate(knowledge.Default(), knowledge.SectorFactory, set, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Summary.TotalPotentialSavings.TimeHours; got != 9.6 {
		t.Fatalf("expected 9.6 hours saved, got %v", got)
	}
	if got := res.Summary.TotalPotentialSavings.MoneyCost; got != 510 {
		t.Fatalf("expected 510 saved, got %v", got)
	}
	// contributions keep the unrounded product
	if !almost(res.Contributions[0].Savings.TimeHours, 12*DefaultTimeSavingsRatio) {
		t.Fatalf("unexpected contribution savings %+v", res.Contributions[0].Savings)
	}
}

func TestConfigBounded(t *testing.T) {
	cfg := Config{TimeSavingsRatio: 1.5, MoneySavingsRatio: -0.5, ErrorReductionRatio: 0.3, SystemMonthlyCost: -10}
	got := cfg.Bounded()
	want := Config{TimeSavingsRatio: 1, MoneySavingsRatio: 0, ErrorReductionRatio: 0.3, SystemMonthlyCost: 0}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}
