package insights

import (
	"fmt"
	"strings"

	"diagnostic-backend/internal/diagnostics/costs"
	"diagnostic-backend/internal/diagnostics/format"
)

// FallbackTitle is the opportunity returned when no answer is significant on its own.
const FallbackTitle = "Optimize your processes"

type Impact struct {
	Time    string `json:"time"`
	Money   string `json:"money"`
	Quality string `json:"quality"`
}

type Opportunity struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Impact      Impact `json:"impact"`
}

// Opportunities projects insights into a list unique by normalized title. A later
// duplicate fills impact fields the kept entry lacks.
func Opportunities(ins []Insight, summary costs.Summary, cfg Config) []Opportunity {
	candidates := make([]Opportunity, 0, len(ins))
	for _, in := range ins {
		candidates = append(candidates, Opportunity{
			Title:       in.Opportunity.Title,
			Description: in.Opportunity.Description,
			Impact:      impactOf(in.PotentialSavings, cfg),
		})
	}
	out := dedupe(candidates)
	if len(out) == 0 {
		out = append(out, fallback(summary, cfg))
	}
	return out
}

func dedupe(items []Opportunity) []Opportunity {
	seen := make(map[string]Opportunity, len(items))
	order := make([]string, 0, len(items))
	for _, item := range items {
		key := NormalizeTitle(item.Title)
		if key == "" {
			continue
		}
		if existing, ok := seen[key]; ok {
			seen[key] = mergeOpportunity(existing, item)
			continue
		}
		seen[key] = item
		order = append(order, key)
	}
	out := make([]Opportunity, 0, len(order))
	for _, key := range order {
		out = append(out, seen[key])
	}
	return out
}

func mergeOpportunity(a, b Opportunity) Opportunity {
	if strings.TrimSpace(a.Description) == "" {
		a.Description = b.Description
	}
	if strings.TrimSpace(a.Impact.Time) == "" {
		a.Impact.Time = b.Impact.Time
	}
	if strings.TrimSpace(a.Impact.Money) == "" {
		a.Impact.Money = b.Impact.Money
	}
	if strings.TrimSpace(a.Impact.Quality) == "" {
		a.Impact.Quality = b.Impact.Quality
	}
	return a
}

func impactOf(s costs.Savings, cfg Config) Impact {
	var out Impact
	if s.TimeHours > 0 {
		out.Time = fmt.Sprintf("%s hours saved per week", format.Hours(s.TimeHours))
	}
	if s.MoneyCost > 0 {
		out.Money = fmt.Sprintf("%s saved per month", format.Money(cfg.CurrencySymbol, s.MoneyCost))
	}
	if s.ErrorReduction > 0 {
		out.Quality = fmt.Sprintf("%s fewer errors", format.Percent(s.ErrorReduction))
	}
	return out
}

func fallback(summary costs.Summary, cfg Config) Opportunity {
	op := Opportunity{
		Title:       FallbackTitle,
		Description: "Review your daily routines and automate the repetitive steps before they grow with the business.",
		Impact:      Impact{Quality: "Fewer errors and less rework"},
	}
	saved := summary.TotalPotentialSavings
	if saved.TimeHours > 0 {
		op.Impact.Time = fmt.Sprintf("%s hours saved per week", format.Hours(saved.TimeHours))
	}
	if saved.MoneyCost > 0 {
		op.Impact.Money = fmt.Sprintf("%s saved per month", format.Money(cfg.CurrencySymbol, saved.MoneyCost))
	}
	return op
}
