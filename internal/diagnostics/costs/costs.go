package costs

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/format"
	"diagnostic-backend/internal/diagnostics/knowledge"
)

// Reference business assumptions. They are overridable through Config.
const (
	DefaultTimeSavingsRatio    = 0.80
	DefaultMoneySavingsRatio   = 0.85
	DefaultErrorReductionRatio = 0.90
	DefaultSystemMonthlyCost   = 300
)

type Config struct {
	TimeSavingsRatio    float64
	MoneySavingsRatio   float64
	ErrorReductionRatio float64
	SystemMonthlyCost   float64
	CurrencySymbol      string
}

func DefaultConfig() Config {
	return Config{
		TimeSavingsRatio:    DefaultTimeSavingsRatio,
		MoneySavingsRatio:   DefaultMoneySavingsRatio,
		ErrorReductionRatio: DefaultErrorReductionRatio,
		SystemMonthlyCost:   DefaultSystemMonthlyCost,
		CurrencySymbol:      format.DefaultCurrency,
	}
}

// Bounded keeps the ratios within [0,1] and the system cost non-negative.
func (c Config) Bounded() Config {
	c.TimeSavingsRatio = ratio(c.TimeSavingsRatio)
	c.MoneySavingsRatio = ratio(c.MoneySavingsRatio)
	c.ErrorReductionRatio = ratio(c.ErrorReductionRatio)
	c.SystemMonthlyCost = nonNegative(c.SystemMonthlyCost)
	return c
}

// Totals is a time and money pair.
type Totals struct {
	TimeHours float64 `json:"timeHours"`
	MoneyCost float64 `json:"moneyCost"`
}

type Summary struct {
	TotalCurrentCost      Totals  `json:"totalCurrentCost"`
	TotalPotentialSavings Totals  `json:"totalPotentialSavings"`
	ROI                   float64 `json:"roi"`
}

// Savings are the per-answer reductions; ErrorReduction is in percentage points.
type Savings struct {
	TimeHours      float64 `json:"timeHours"`
	MoneyCost      float64 `json:"moneyCost"`
	ErrorReduction float64 `json:"errorReduction"`
}

// Contribution is one answered option that carries a cost.
type Contribution struct {
	QuestionID string               `json:"questionId"`
	Value      string               `json:"value"`
	Label      string               `json:"label"`
	Cost       knowledge.CostImpact `json:"cost"`
	Savings    Savings              `json:"savings"`
}

// Unrecognized is an answer the knowledge base could not resolve.
type Unrecognized struct {
	QuestionID string `json:"questionId"`
	Value      string `json:"value"`
	Reason     string `json:"reason"`
}

const (
	ReasonUnknownQuestion = "unknown_question"
	ReasonUnknownOption   = "unknown_option"
)

type Explanations struct {
	CurrentCost string `json:"currentCost"`
	Savings     string `json:"savings"`
}

type Result struct {
	Summary       Summary
	Contributions []Contribution
	Explanations  Explanations
	Unrecognized  []Unrecognized
}

// Aggregate sums the cost of every answered option for the sector and derives savings
// per answer. Question order follows the knowledge base so sums are reproducible.
func Aggregate(kb *knowledge.Base, sector knowledge.Sector, set answers.Set, cfg Config) (Result, error) {
	cfg = cfg.Bounded()
	qs, err := kb.QuestionsForSector(sector)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Contributions: []Contribution{},
		Unrecognized:  []Unrecognized{},
	}
	known := make(map[string]bool, len(qs))
	for _, q := range qs {
		known[q.ID] = true
		if q.Kind != knowledge.KindSingle && q.Kind != knowledge.KindMulti {
			continue
		}
		for _, value := range set.Multi(q.ID) {
			opt, ok := kb.FindOption(q.ID, value)
			if !ok {
				res.Unrecognized = append(res.Unrecognized, Unrecognized{QuestionID: q.ID, Value: value, Reason: ReasonUnknownOption})
				continue
			}
			if opt.Cost == nil || opt.Cost.IsZero() {
				continue
			}
			c := clamp(*opt.Cost)
			res.Contributions = append(res.Contributions, Contribution{
				QuestionID: q.ID,
				Value:      opt.Value,
				Label:      opt.Label,
				Cost:       c,
				Savings:    savingsFor(c, cfg),
			})
		}
	}
	for _, key := range set.Keys() {
		if !known[key] {
			res.Unrecognized = append(res.Unrecognized, Unrecognized{QuestionID: key, Value: set[key].String(), Reason: ReasonUnknownQuestion})
		}
	}

	for _, c := range res.Contributions {
		res.Summary.TotalCurrentCost.TimeHours += c.Cost.TimeHoursPerWeek
		res.Summary.TotalCurrentCost.MoneyCost += c.Cost.MoneyCostPerMonth
		res.Summary.TotalPotentialSavings.TimeHours += c.Savings.TimeHours
		res.Summary.TotalPotentialSavings.MoneyCost += c.Savings.MoneyCost
	}
	res.Summary.TotalCurrentCost = roundTotals(res.Summary.TotalCurrentCost)
	res.Summary.TotalPotentialSavings = roundTotals(res.Summary.TotalPotentialSavings)
	res.Summary.ROI = ROI(res.Summary.TotalPotentialSavings.MoneyCost, cfg.SystemMonthlyCost)
	res.Explanations = explain(res, cfg)
	return res, nil
}

// ROI returns the monthly return over the system cost as a percentage, floored at zero
// and rounded to two decimals.
func ROI(monthlySavings, systemCost float64) float64 {
	if systemCost <= 0 || monthlySavings <= systemCost {
		return 0
	}
	savings := decimal.NewFromFloat(monthlySavings)
	base := decimal.NewFromFloat(systemCost)
	return savings.Sub(base).Div(base).Mul(decimal.NewFromInt(100)).Round(2).InexactFloat64()
}

func roundTotals(t Totals) Totals {
	return Totals{TimeHours: format.Round2(t.TimeHours), MoneyCost: format.Round2(t.MoneyCost)}
}

func savingsFor(c knowledge.CostImpact, cfg Config) Savings {
	return Savings{
		TimeHours:      c.TimeHoursPerWeek * cfg.TimeSavingsRatio,
		MoneyCost:      c.MoneyCostPerMonth * cfg.MoneySavingsRatio,
		ErrorReduction: c.ErrorRatePercent * cfg.ErrorReductionRatio,
	}
}

func clamp(c knowledge.CostImpact) knowledge.CostImpact {
	return knowledge.CostImpact{
		TimeHoursPerWeek:  nonNegative(c.TimeHoursPerWeek),
		MoneyCostPerMonth: nonNegative(c.MoneyCostPerMonth),
		ErrorRatePercent:  nonNegative(c.ErrorRatePercent),
	}
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func ratio(v float64) float64 {
	return math.Min(nonNegative(v), 1)
}

func explain(res Result, cfg Config) Explanations {
	if len(res.Contributions) == 0 {
		return Explanations{
			CurrentCost: "We did not detect relevant operational costs: your processes already look well organized.",
			Savings:     "Your business is already well organized, so there are no significant savings to estimate right now.",
		}
	}
	top := res.Contributions[0]
	for _, c := range res.Contributions[1:] {
		if c.Cost.MoneyCostPerMonth > top.Cost.MoneyCostPerMonth {
			top = c
		}
	}
	s := res.Summary
	areas := "area"
	if len(res.Contributions) > 1 {
		areas = "areas"
	}
	current := fmt.Sprintf(
		"Your current processes take about %s hours per week and cost around %s per month across %d %s. The largest share comes from %q.",
		format.Hours(s.TotalCurrentCost.TimeHours),
		format.Money(cfg.CurrencySymbol, s.TotalCurrentCost.MoneyCost),
		len(res.Contributions), areas,
		top.Label,
	)
	savings := fmt.Sprintf(
		"With the right tools you could recover about %s hours per week and %s per month.",
		format.Hours(s.TotalPotentialSavings.TimeHours),
		format.Money(cfg.CurrencySymbol, s.TotalPotentialSavings.MoneyCost),
	)
	if s.ROI > 0 {
		savings += fmt.Sprintf(" Against a system cost of %s per month that is a return of %s.",
			format.Money(cfg.CurrencySymbol, cfg.SystemMonthlyCost), format.Percent(s.ROI))
	} else {
		savings += fmt.Sprintf(" The savings alone do not yet cover a system cost of %s per month; the main gain is time and fewer errors.",
			format.Money(cfg.CurrencySymbol, cfg.SystemMonthlyCost))
	}
	return Explanations{CurrentCost: current, Savings: savings}
}
