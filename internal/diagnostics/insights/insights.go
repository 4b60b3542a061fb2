package insights

import (
	"fmt"
	"strings"
	"unicode"

	"diagnostic-backend/internal/diagnostics/costs"
	"diagnostic-backend/internal/diagnostics/format"
)

const (
	DefaultMinHoursPerWeek  = 5
	DefaultMinMoneyPerMonth = 100
)

type Config struct {
	MinHoursPerWeek  float64
	MinMoneyPerMonth float64
	CurrencySymbol   string
}

func DefaultConfig() Config {
	return Config{
		MinHoursPerWeek:  DefaultMinHoursPerWeek,
		MinMoneyPerMonth: DefaultMinMoneyPerMonth,
		CurrencySymbol:   format.DefaultCurrency,
	}
}

type Cost struct {
	TimeHours float64 `json:"timeHours"`
	MoneyCost float64 `json:"moneyCost"`
	ErrorRate float64 `json:"errorRate"`
}

type Detail struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Improvements []string `json:"improvements"`
}

type Tool struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
}

// Insight explains one significant answer and what fixing it would save.
type Insight struct {
	QuestionID        string        `json:"questionId"`
	AnswerValue       string        `json:"answerValue"`
	Title             string        `json:"title"`
	CurrentSituation  string        `json:"currentSituation"`
	OperationalImpact string        `json:"operationalImpact"`
	CurrentCost       Cost          `json:"currentCost"`
	PotentialSavings  costs.Savings `json:"potentialSavings"`
	Opportunity       Detail        `json:"opportunity"`
	Recommendation    Tool          `json:"recommendation"`
	ImagePrompt       string        `json:"imagePrompt"`
}

// Generate builds an insight for every contribution above the significance threshold,
// in contribution order.
func Generate(contributions []costs.Contribution, cfg Config) []Insight {
	out := make([]Insight, 0, len(contributions))
	for _, c := range contributions {
		if !significant(c, cfg) {
			continue
		}
		tmpl := templateFor(c.QuestionID)
		out = append(out, Insight{
			QuestionID:        c.QuestionID,
			AnswerValue:       c.Value,
			Title:             tmpl.title,
			CurrentSituation:  fmt.Sprintf(tmpl.situation, strings.ToLower(c.Label)),
			OperationalImpact: operationalImpact(c, cfg),
			CurrentCost: Cost{
				TimeHours: c.Cost.TimeHoursPerWeek,
				MoneyCost: c.Cost.MoneyCostPerMonth,
				ErrorRate: c.Cost.ErrorRatePercent,
			},
			PotentialSavings: c.Savings,
			Opportunity: Detail{
				Title:        tmpl.opportunity,
				Description:  tmpl.description,
				Improvements: append([]string{}, tmpl.improvements...),
			},
			Recommendation: Tool{
				Name:        tmpl.tool,
				Description: tmpl.toolDesc,
				Benefits:    append([]string{}, tmpl.benefits...),
			},
			ImagePrompt: tmpl.image,
		})
	}
	return out
}

func significant(c costs.Contribution, cfg Config) bool {
	return c.Cost.TimeHoursPerWeek > cfg.MinHoursPerWeek || c.Cost.MoneyCostPerMonth > cfg.MinMoneyPerMonth
}

func operationalImpact(c costs.Contribution, cfg Config) string {
	var parts []string
	if c.Cost.TimeHoursPerWeek > 0 {
		parts = append(parts, fmt.Sprintf("about %s hours every week", format.Hours(c.Cost.TimeHoursPerWeek)))
	}
	if c.Cost.MoneyCostPerMonth > 0 {
		parts = append(parts, fmt.Sprintf("around %s per month", format.Money(cfg.CurrencySymbol, c.Cost.MoneyCostPerMonth)))
	}
	out := "Right now this costs you " + strings.Join(parts, " and ") + "."
	if c.Cost.ErrorRatePercent > 0 {
		out += fmt.Sprintf(" Roughly %s of this work ends in mistakes or rework.", format.Percent(c.Cost.ErrorRatePercent))
	}
	return out
}

// NormalizeTitle lowercases, strips punctuation and collapses whitespace.
func NormalizeTitle(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}
