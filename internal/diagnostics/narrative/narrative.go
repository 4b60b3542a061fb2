package narrative

import (
	"fmt"
	"math"
	"strings"

	"diagnostic-backend/internal/diagnostics/costs"
	"diagnostic-backend/internal/diagnostics/format"
	"diagnostic-backend/internal/diagnostics/insights"
)

const (
	weeksPerMonth = 4.33
	weeksPerYear  = 52
	hoursPerDay   = 8
	hoursPerWeek  = 40

	halfEmployeeHours = 20
	fullDayHours      = 8
)

// GeneralProcessesID identifies the synthetic breakdown entry used when no insight saves time.
const GeneralProcessesID = "general-processes"

type Input struct {
	Summary           costs.Summary
	Insights          []insights.Insight
	PrimarySolution   string
	ContactName       string
	CompanyName       string
	CurrencySymbol    string
	SystemMonthlyCost float64
}

type HoursItem struct {
	ID                string  `json:"id"`
	Label             string  `json:"label"`
	HoursSavedPerWeek float64 `json:"hoursSavedPerWeek"`
	Description       string  `json:"description"`
}

type FinancialProjection struct {
	MonthlySavings   float64 `json:"monthlySavings"`
	YearlySavings    float64 `json:"yearlySavings"`
	YearlyHoursSaved float64 `json:"yearlyHoursSaved"`
}

type State struct {
	HoursPerWeek  float64 `json:"hoursPerWeek"`
	MoneyPerMonth float64 `json:"moneyPerMonth"`
	ErrorRate     float64 `json:"errorRate"`
}

type ImpactEquivalents struct {
	HoursSavedPerMonth    float64 `json:"hoursSavedPerMonth"`
	WorkDaysSavedPerYear  float64 `json:"workDaysSavedPerYear"`
	WorkWeeksSavedPerYear float64 `json:"workWeeksSavedPerYear"`
}

type Hero struct {
	Headline string `json:"headline"`
	Metric   string `json:"metric"`
	Subline  string `json:"subline"`
}

type Problem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type BeforeAfter struct {
	Before []string `json:"before"`
	After  []string `json:"after"`
}

type Narrative struct {
	HoursBreakdown      []HoursItem         `json:"hoursBreakdown"`
	FinancialProjection FinancialProjection `json:"financialProjection"`
	BeforeState         State               `json:"beforeState"`
	AfterState          State               `json:"afterState"`
	ImpactEquivalents   ImpactEquivalents   `json:"impactEquivalents"`
	PersonalizedSummary string              `json:"personalizedSummaryParagraph"`
	Hero                Hero                `json:"hero"`
	RealLifeEquivalents []string            `json:"realLifeEquivalents"`
	ProblemBreakdown    []Problem           `json:"problemBreakdown"`
	BeforeAfter         BeforeAfter         `json:"beforeAfter"`
	EmotionalClosing    string              `json:"emotionalClosing"`
	ROIExplanation      string              `json:"roiExplanation"`
	CurrentSituation    string              `json:"-"`
	OperationalImpact   string              `json:"-"`
	FutureVision        string              `json:"-"`
}

// Build projects the summary and insights into presentation sections.
func Build(in Input) Narrative {
	saved := in.Summary.TotalPotentialSavings
	current := in.Summary.TotalCurrentCost

	n := Narrative{
		HoursBreakdown: hoursBreakdown(in),
		FinancialProjection: FinancialProjection{
			MonthlySavings:   format.Round2(saved.MoneyCost),
			YearlySavings:    format.Round2(saved.MoneyCost * 12),
			YearlyHoursSaved: format.Round2(saved.TimeHours * weeksPerYear),
		},
		ImpactEquivalents: ImpactEquivalents{
			HoursSavedPerMonth:    format.Round2(saved.TimeHours * weeksPerMonth),
			WorkDaysSavedPerYear:  format.Round2(saved.TimeHours * weeksPerYear / hoursPerDay),
			WorkWeeksSavedPerYear: format.Round2(saved.TimeHours * weeksPerYear / hoursPerWeek),
		},
	}

	var errorRate, errorReduction float64
	for _, ins := range in.Insights {
		errorRate += ins.CurrentCost.ErrorRate
		errorReduction += ins.PotentialSavings.ErrorReduction
	}
	n.BeforeState = State{
		HoursPerWeek:  format.Round2(current.TimeHours),
		MoneyPerMonth: format.Round2(current.MoneyCost),
		ErrorRate:     format.Round2(errorRate),
	}
	n.AfterState = State{
		HoursPerWeek:  format.Round2(math.Max(0, current.TimeHours-saved.TimeHours)),
		MoneyPerMonth: format.Round2(math.Max(0, current.MoneyCost-saved.MoneyCost)),
		ErrorRate:     format.Round2(math.Max(0, errorRate-errorReduction)),
	}

	n.PersonalizedSummary = personalizedSummary(in)
	n.Hero = hero(in)
	n.RealLifeEquivalents = realLifeEquivalents(in, n.FinancialProjection)
	n.ProblemBreakdown = problemBreakdown(in.Insights)
	n.BeforeAfter = beforeAfter(in, n.BeforeState, n.AfterState)
	n.EmotionalClosing = emotionalClosing(in)
	n.ROIExplanation = roiExplanation(in)
	n.CurrentSituation = currentSituation(in)
	n.OperationalImpact = operationalImpact(in)
	n.FutureVision = futureVision(in)
	return n
}

func hoursBreakdown(in Input) []HoursItem {
	out := make([]HoursItem, 0, len(in.Insights))
	seen := make(map[string]bool, len(in.Insights))
	for _, ins := range in.Insights {
		if ins.PotentialSavings.TimeHours <= 0 {
			continue
		}
		key := insights.NormalizeTitle(ins.Opportunity.Title)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, HoursItem{
			ID:                ins.QuestionID,
			Label:             ins.Opportunity.Title,
			HoursSavedPerWeek: format.Round2(ins.PotentialSavings.TimeHours),
			Description:       ins.Opportunity.Description,
		})
	}
	if len(out) == 0 {
		out = append(out, HoursItem{
			ID:                GeneralProcessesID,
			Label:             "General processes",
			HoursSavedPerWeek: format.Round2(in.Summary.TotalPotentialSavings.TimeHours),
			Description:       "Small improvements spread across your daily routines.",
		})
	}
	return out
}

func subject(in Input) string {
	name := strings.TrimSpace(in.ContactName)
	company := strings.TrimSpace(in.CompanyName)
	switch {
	case name != "" && company != "":
		return fmt.Sprintf("%s, at %s you", name, company)
	case name != "":
		return fmt.Sprintf("%s, you", name)
	case company != "":
		return fmt.Sprintf("At %s you", company)
	default:
		return "This business"
	}
}

func personalizedSummary(in Input) string {
	saved := in.Summary.TotalPotentialSavings
	who := subject(in)
	if saved.TimeHours <= 0 && saved.MoneyCost <= 0 {
		return fmt.Sprintf("%s could keep growing on solid ground: your processes already look well organized, and the next step is to connect them so they scale with you.", who)
	}
	return fmt.Sprintf(
		"%s could recover about %s hours every week and %s every month by replacing manual steps with the right tools. Over a year that is %s hours and %s back in the business.",
		who,
		format.Hours(saved.TimeHours),
		format.Money(in.CurrencySymbol, saved.MoneyCost),
		format.Hours(saved.TimeHours*weeksPerYear),
		format.Money(in.CurrencySymbol, saved.MoneyCost*12),
	)
}

func hero(in Input) Hero {
	saved := in.Summary.TotalPotentialSavings
	switch {
	case saved.TimeHours > 0:
		h := Hero{
			Headline: fmt.Sprintf("You could recover %s hours every week", format.Hours(saved.TimeHours)),
			Metric:   format.Hours(saved.TimeHours) + " h/week",
		}
		if saved.MoneyCost > 0 {
			h.Subline = fmt.Sprintf("and save %s per month", format.Money(in.CurrencySymbol, saved.MoneyCost))
		}
		return h
	case saved.MoneyCost > 0:
		return Hero{
			Headline: fmt.Sprintf("You could save %s every month", format.Money(in.CurrencySymbol, saved.MoneyCost)),
			Metric:   format.Money(in.CurrencySymbol, saved.MoneyCost) + "/month",
		}
	default:
		return Hero{
			Headline: "Your operation is already in good shape",
			Metric:   "0 h/week",
			Subline:  "Now is the time to prepare it to grow",
		}
	}
}

func realLifeEquivalents(in Input, fp FinancialProjection) []string {
	hours := in.Summary.TotalPotentialSavings.TimeHours
	out := []string{}
	switch {
	case hours >= halfEmployeeHours:
		out = append(out, "That is like having half an employee working only on what matters.")
	case hours >= fullDayHours:
		out = append(out, "That is a full working day recovered every week.")
	}
	if hours > 0 {
		out = append(out, fmt.Sprintf("%s hours a month you can spend with customers instead of paperwork.", format.Hours(hours*weeksPerMonth)))
	}
	if fp.YearlySavings > 0 {
		out = append(out, fmt.Sprintf("%s a year that stays in the business.", format.Money(in.CurrencySymbol, fp.YearlySavings)))
	}
	return out
}

func problemBreakdown(ins []insights.Insight) []Problem {
	out := make([]Problem, 0, len(ins))
	for _, in := range ins {
		out = append(out, Problem{Title: in.Title, Detail: in.OperationalImpact})
	}
	return out
}

func beforeAfter(in Input, before, after State) BeforeAfter {
	sym := in.CurrencySymbol
	ba := BeforeAfter{
		Before: []string{
			fmt.Sprintf("%s hours per week on manual tasks", format.Hours(before.HoursPerWeek)),
			fmt.Sprintf("%s per month lost to inefficiency", format.Money(sym, before.MoneyPerMonth)),
		},
		After: []string{
			fmt.Sprintf("%s hours per week on manual tasks", format.Hours(after.HoursPerWeek)),
			fmt.Sprintf("%s per month lost to inefficiency", format.Money(sym, after.MoneyPerMonth)),
		},
	}
	if before.ErrorRate > 0 {
		ba.Before = append(ba.Before, fmt.Sprintf("%s of work with errors or rework", format.Percent(before.ErrorRate)))
		ba.After = append(ba.After, fmt.Sprintf("%s of work with errors or rework", format.Percent(after.ErrorRate)))
	}
	return ba
}

func emotionalClosing(in Input) string {
	hours := in.Summary.TotalPotentialSavings.TimeHours
	switch {
	case hours >= halfEmployeeHours:
		return "You built this business with effort. It is time the business starts working for you, not the other way around."
	case hours > 0 || in.Summary.TotalPotentialSavings.MoneyCost > 0:
		return "Every week that passes, these hours and this money are lost. Small changes today add up to a calmer, more profitable business."
	default:
		return "You have done the hard work of getting organized. The right tools will help you grow without losing that order."
	}
}

func roiExplanation(in Input) string {
	s := in.Summary
	cost := format.Money(in.CurrencySymbol, in.SystemMonthlyCost)
	if s.ROI > 0 {
		return fmt.Sprintf(
			"With a system cost of %s per month and estimated savings of %s per month, the return is %s: the system pays for itself and leaves money on top.",
			cost, format.Money(in.CurrencySymbol, s.TotalPotentialSavings.MoneyCost), format.Percent(s.ROI),
		)
	}
	if s.TotalPotentialSavings.MoneyCost > 0 {
		return fmt.Sprintf(
			"Estimated savings of %s per month do not yet cover a system cost of %s; the main return is time and fewer mistakes.",
			format.Money(in.CurrencySymbol, s.TotalPotentialSavings.MoneyCost), cost,
		)
	}
	return "We did not find direct monetary savings, so the value of a system would come from growth rather than cost reduction."
}

func currentSituation(in Input) string {
	c := in.Summary.TotalCurrentCost
	if c.TimeHours <= 0 && c.MoneyCost <= 0 {
		return "Your processes already look well organized; we did not find significant manual costs."
	}
	return fmt.Sprintf(
		"Today the business spends about %s hours per week and %s per month on tasks that could run on their own.",
		format.Hours(c.TimeHours), format.Money(in.CurrencySymbol, c.MoneyCost),
	)
}

func operationalImpact(in Input) string {
	if len(in.Insights) == 0 {
		return "No single area stands out as a major bottleneck."
	}
	titles := make([]string, 0, len(in.Insights))
	for _, ins := range in.Insights {
		titles = append(titles, strings.ToLower(ins.Title))
	}
	return "Where it hurts most: " + strings.Join(titles, "; ") + "."
}

func futureVision(in Input) string {
	tool := strings.TrimSpace(in.PrimarySolution)
	if tool == "" {
		tool = "the right tools"
	}
	hours := in.Summary.TotalPotentialSavings.TimeHours
	if hours <= 0 {
		return fmt.Sprintf("With %s the business keeps its order as it grows, with every number one click away.", tool)
	}
	return fmt.Sprintf(
		"With %s, the %s hours you lose every week go back to customers, sales and rest, and every number of the business is one click away.",
		tool, format.Hours(hours),
	)
}
