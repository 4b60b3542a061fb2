// Package reports renders a stored diagnostic as a printable one-page PDF.
package reports

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"diagnostic-backend/internal/diagnostics/engine"
	"diagnostic-backend/internal/diagnostics/format"
)

const maxOpportunities = 4

// Meta carries the record fields that are not part of the engine result.
type Meta struct {
	DiagnosticID   string
	CompanyName    string
	ContactName    string
	CreatedAt      time.Time
	CurrencySymbol string
}

var ErrEmptyResult = errors.New("report: result has no sector")

// Render lays out hero metric, summary, recommendation, urgency and opportunities.
func Render(res engine.Result, meta Meta) ([]byte, error) {
	if res.Sector == "" {
		return nil, ErrEmptyResult
	}
	cur := meta.CurrencySymbol
	if cur == "" {
		cur = format.DefaultCurrency
	}

	p := &page{}
	title := "Business diagnostic report"
	if name := strings.TrimSpace(meta.CompanyName); name != "" {
		title += " - " + name
	}
	p.add(fontBold, 18, title, 0)

	var sub []string
	sub = append(sub, res.BusinessType)
	if name := strings.TrimSpace(meta.ContactName); name != "" {
		sub = append(sub, "prepared for "+name)
	}
	if !meta.CreatedAt.IsZero() {
		sub = append(sub, meta.CreatedAt.UTC().Format("January 2, 2006"))
	}
	p.add(fontRegular, 10, strings.Join(sub, " | "), 4)

	hero := res.Narrative.Hero
	p.add(fontBold, 14, hero.Headline, 16)
	if hero.Metric != "" {
		p.add(fontBold, 22, hero.Metric, 4)
	}
	p.add(fontRegular, 11, hero.Subline, 2)

	s := res.Summary
	p.add(fontBold, 12, "Summary", 14)
	p.add(fontRegular, 11, fmt.Sprintf("Current cost: %s hours per week and %s per month.",
		format.Hours(s.TotalCurrentCost.TimeHours), format.Money(cur, s.TotalCurrentCost.MoneyCost)), 2)
	p.add(fontRegular, 11, fmt.Sprintf("Potential savings: %s hours per week and %s per month.",
		format.Hours(s.TotalPotentialSavings.TimeHours), format.Money(cur, s.TotalPotentialSavings.MoneyCost)), 0)
	p.add(fontRegular, 11, "Return on the system cost: "+format.Percent(s.ROI)+".", 0)
	p.add(fontRegular, 11, "Urgency: "+urgencyLabel(string(res.Urgency))+".", 0)

	rec := res.Recommendation
	p.add(fontBold, 12, "Recommended solution", 14)
	p.add(fontBold, 11, rec.Primary.Title, 2)
	p.add(fontRegular, 10, rec.Primary.Reason, 0)
	for _, c := range rec.Complementary {
		p.add(fontRegular, 10, "Also useful: "+c.Title+". "+c.Reason, 2)
	}

	if len(res.Opportunities) > 0 {
		p.add(fontBold, 12, "Opportunities", 14)
		for i, op := range res.Opportunities {
			if i == maxOpportunities {
				p.add(fontRegular, 10, fmt.Sprintf("And %d more in the online report.", len(res.Opportunities)-maxOpportunities), 2)
				break
			}
			p.add(fontBold, 11, "• "+op.Title, 4)
			p.add(fontRegular, 10, op.Description, 0)
			var impact []string
			for _, v := range []string{op.Impact.Time, op.Impact.Money, op.Impact.Quality} {
				if v != "" {
					impact = append(impact, v)
				}
			}
			if len(impact) > 0 {
				p.add(fontRegular, 10, strings.Join(impact, ", "), 0)
			}
		}
	}

	if closing := res.Narrative.EmotionalClosing; closing != "" {
		p.add(fontRegular, 11, closing, 14)
	}
	if meta.DiagnosticID != "" {
		p.add(fontRegular, 8, "Reference "+meta.DiagnosticID, 12)
	}
	return p.document(title), nil
}

func urgencyLabel(level string) string {
	switch level {
	case "high":
		return "high, act now"
	case "medium":
		return "medium, plan it this quarter"
	case "low":
		return "low, improve when ready"
	}
	return level
}
