package insights

import (
	"math"
	"strings"
	"testing"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/costs"
	"diagnostic-backend/internal/diagnostics/knowledge"
)

func aggregate(t *testing.T, sector knowledge.Sector, set answers.Set) costs.Result {
	t.Helper()
	res, err := costs.Aggregate(knowledge.Default(), sector, set, costs.DefaultConfig())
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	return res
}

// worstAnswers picks the most expensive option of every choice question.
func worstAnswers(t *testing.T, kb *knowledge.Base, sector knowledge.Sector) answers.Set {
	t.Helper()
	qs, err := kb.QuestionsForSector(sector)
	if err != nil {
		t.Fatalf("questions: %v", err)
	}
	set := answers.Set{}
	for _, q := range qs {
		best := -1.0
		for _, o := range q.Options {
			if o.Cost == nil {
				continue
			}
			if weight := o.Cost.TimeHoursPerWeek*100 + o.Cost.MoneyCostPerMonth; weight > best {
				best = weight
				set[q.ID] = answers.Single(o.Value)
			}
		}
	}
	return set
}

func TestGenerateThresholdAndSavingsBound(t *testing.T) {
	res := aggregate(t, knowledge.SectorRestaurant, answers.Set{
		"orderHandling": answers.Single("paper"),
		"menuFormat":    answers.Single("printed-only"),
	})
	ins := Generate(res.Contributions, DefaultConfig())
	if len(ins) != 1 || ins[0].QuestionID != "orderHandling" {
		t.Fatalf("expected only orderHandling above threshold, got %+v", ins)
	}
	in := ins[0]
	if math.Abs(in.PotentialSavings.TimeHours-in.CurrentCost.TimeHours*0.8) > 1e-9 {
		t.Fatalf("time savings not 80%%: %v vs %v", in.PotentialSavings.TimeHours, in.CurrentCost.TimeHours)
	}
	if math.Abs(in.PotentialSavings.MoneyCost-in.CurrentCost.MoneyCost*0.85) > 1e-9 {
		t.Fatalf("money savings not 85%%: %v vs %v", in.PotentialSavings.MoneyCost, in.CurrentCost.MoneyCost)
	}
	if math.Abs(in.PotentialSavings.ErrorReduction-in.CurrentCost.ErrorRate*0.9) > 1e-9 {
		t.Fatalf("error reduction not 90%%: %v vs %v", in.PotentialSavings.ErrorReduction, in.CurrentCost.ErrorRate)
	}
	if !strings.Contains(in.CurrentSituation, "paper notepads") {
		t.Fatalf("expected situation to mention the answer, got %q", in.CurrentSituation)
	}
	if in.ImagePrompt == "" {
		t.Fatalf("expected image prompt")
	}
}

func TestGenerateMoneyOnlyQualifies(t *testing.T) {
	res := aggregate(t, knowledge.SectorRetail, answers.Set{"onlineSales": answers.Single("none")})
	ins := Generate(res.Contributions, DefaultConfig())
	if len(ins) != 1 {
		t.Fatalf("expected money-only answer above threshold, got %d", len(ins))
	}
	if !strings.Contains(ins[0].OperationalImpact, "$400 per month") || strings.Contains(ins[0].OperationalImpact, "hours") {
		t.Fatalf("unexpected impact text %q", ins[0].OperationalImpact)
	}
}

func TestGenericTemplateFallback(t *testing.T) {
	contribs := []costs.Contribution{{
		QuestionID: "somethingNew",
		Label:      "Clipboard",
		Cost:       knowledge.CostImpact{TimeHoursPerWeek: 6},
		Savings:    costs.Savings{TimeHours: 4.8},
	}}
	ins := Generate(contribs, DefaultConfig())
	if len(ins) != 1 || ins[0].Opportunity.Title != genericTemplate.opportunity {
		t.Fatalf("expected generic template, got %+v", ins)
	}
}

func TestOpportunitiesMergeDuplicateTitles(t *testing.T) {
	res := aggregate(t, knowledge.SectorFactory, answers.Set{
		"quoting":         answers.Single("manual"),
		"costCalculation": answers.Single("estimate"),
	})
	ins := Generate(res.Contributions, DefaultConfig())
	if len(ins) != 2 {
		t.Fatalf("expected 2 insights, got %d", len(ins))
	}
	ops := Opportunities(ins, res.Summary, DefaultConfig())
	if len(ops) != 1 {
		t.Fatalf("expected merged opportunity, got %+v", ops)
	}
	op := ops[0]
	if op.Description != "Generate quotes from real material and labor costs." {
		t.Fatalf("expected first description kept, got %q", op.Description)
	}
	if op.Impact.Time != "9.6 hours saved per week" {
		t.Fatalf("expected first time impact kept, got %q", op.Impact.Time)
	}
	if op.Impact.Quality != "18% fewer errors" {
		t.Fatalf("expected quality merged from duplicate, got %q", op.Impact.Quality)
	}
}

func TestOpportunitiesUniqueAcrossSectors(t *testing.T) {
	kb := knowledge.Default()
	for _, info := range kb.Sectors() {
		res := aggregate(t, info.ID, worstAnswers(t, kb, info.ID))
		ops := Opportunities(Generate(res.Contributions, DefaultConfig()), res.Summary, DefaultConfig())
		if len(ops) == 0 {
			t.Fatalf("%s: expected opportunities", info.ID)
		}
		seen := map[string]bool{}
		for _, op := range ops {
			key := NormalizeTitle(op.Title)
			if seen[key] {
				t.Fatalf("%s: duplicate normalized title %q", info.ID, key)
			}
			seen[key] = true
		}
	}
}

func TestOpportunitiesFallback(t *testing.T) {
	ops := Opportunities(nil, costs.Summary{}, DefaultConfig())
	if len(ops) != 1 || ops[0].Title != FallbackTitle {
		t.Fatalf("expected single fallback, got %+v", ops)
	}
	if ops[0].Impact.Time != "" || ops[0].Impact.Money != "" {
		t.Fatalf("expected no numeric impact without savings, got %+v", ops[0].Impact)
	}

	summary := costs.Summary{TotalPotentialSavings: costs.Totals{TimeHours: 1.6, MoneyCost: 68}}
	ops = Opportunities(nil, summary, DefaultConfig())
	if ops[0].Impact.Money != "$68 saved per month" {
		t.Fatalf("expected savings carried into fallback, got %+v", ops[0].Impact)
	}
}

func TestNormalizeTitle(t *testing.T) {
	cases := map[string]string{
		"Automate quotes & costing!": "automate quotes costing",
		"  Sell   ONLINE ":           "sell online",
		"Digital, menu.":             "digital menu",
		"":                           "",
	}
	for in, want := range cases {
		if got := NormalizeTitle(in); got != want {
			t.Fatalf("NormalizeTitle(%q): expected %q, got %q", in, want, got)
		}
	}
}
