package knowledge

// Kind is the input kind of a question.
type Kind string

const (
	KindSingle  Kind = "single"
	KindMulti   Kind = "multi"
	KindNumeric Kind = "numeric"
	KindText    Kind = "text"
)

// Maturity is the digital-maturity level implied by an answer.
type Maturity string

const (
	MaturityUnknown  Maturity = ""
	MaturityNone     Maturity = "none"
	MaturityBasic    Maturity = "basic"
	MaturityPartial  Maturity = "partial"
	MaturityAdvanced Maturity = "advanced"
)

// ParseMaturity maps an answer value to a maturity level.
func ParseMaturity(raw string) Maturity {
	switch Maturity(raw) {
	case MaturityNone, MaturityBasic, MaturityPartial, MaturityAdvanced:
		return Maturity(raw)
	default:
		return MaturityUnknown
	}
}

// Pain is a pain point class attached to an answer.
type Pain string

const (
	PainNone              Pain = ""
	PainLosingOrders      Pain = "losing-orders"
	PainSlowService       Pain = "slow-service"
	PainLostTickets       Pain = "lost-tickets"
	PainSlowQuotes        Pain = "slow-quotes"
	PainNoSalesVisibility Pain = "no-sales-visibility"
	PainNoWebPresence     Pain = "no-web-presence"
	PainStockOuts         Pain = "stock-outs"
	PainNoFollowUp        Pain = "no-follow-up"
	PainSlowBilling       Pain = "slow-billing"
	PainNoCostVisibility  Pain = "no-cost-visibility"
	PainProductionDelays  Pain = "production-delays"
	PainUnbilledHours     Pain = "unbilled-hours"
	PainOther             Pain = "other"
)

// CostImpact is the estimated weekly time, monthly money and error rate burden of an answer.
type CostImpact struct {
	TimeHoursPerWeek  float64 `json:"timeHoursPerWeek"`
	MoneyCostPerMonth float64 `json:"moneyCostPerMonth"`
	ErrorRatePercent  float64 `json:"errorRatePercent"`
}

// IsZero reports whether the impact carries no burden at all.
func (c CostImpact) IsZero() bool {
	return c.TimeHoursPerWeek == 0 && c.MoneyCostPerMonth == 0 && c.ErrorRatePercent == 0
}

// Option is a selectable answer value.
type Option struct {
	Value    string      `json:"value"`
	Label    string      `json:"label"`
	Cost     *CostImpact `json:"cost,omitempty"`
	Maturity Maturity    `json:"maturity,omitempty"`
	Pain     Pain        `json:"pain,omitempty"`
}

// Question is a survey question; Sector is empty for transversal questions.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Kind    Kind     `json:"kind"`
	Sector  Sector   `json:"sector,omitempty"`
	Options []Option `json:"options"`
}

// Transversal reports whether the question applies to every sector.
func (q Question) Transversal() bool {
	return q.Sector == ""
}

// Solution is a catalog entry that can be recommended.
type Solution struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	SystemType  string   `json:"systemType"`
	Modules     []string `json:"modules"`
}

func cost(hours, money, errRate float64) *CostImpact {
	return &CostImpact{TimeHoursPerWeek: hours, MoneyCostPerMonth: money, ErrorRatePercent: errRate}
}

func cloneOption(o Option) Option {
	if o.Cost != nil {
		c := *o.Cost
		o.Cost = &c
	}
	return o
}

func cloneQuestion(q Question) Question {
	opts := make([]Option, len(q.Options))
	for i, o := range q.Options {
		opts[i] = cloneOption(o)
	}
	q.Options = opts
	return q
}

func cloneSolution(s Solution) Solution {
	s.Modules = append([]string{}, s.Modules...)
	return s
}

// Size is a company size bracket.
type Size string

const (
	SizeUnknown Size = ""
	SizeMicro   Size = "micro"
	SizeSmall   Size = "small"
	SizeMedium  Size = "medium"
	SizeLarge   Size = "large"
)

// ParseSize maps an answer value to a size bracket.
func ParseSize(raw string) Size {
	switch Size(raw) {
	case SizeMicro, SizeSmall, SizeMedium, SizeLarge:
		return Size(raw)
	default:
		return SizeUnknown
	}
}

// SizeFromEmployees derives a bracket from a head count.
func SizeFromEmployees(n float64) Size {
	switch {
	case n <= 0:
		return SizeUnknown
	case n <= 5:
		return SizeMicro
	case n <= 20:
		return SizeSmall
	case n <= 50:
		return SizeMedium
	default:
		return SizeLarge
	}
}
