package engine

import (
	"fmt"
	"strings"

	"diagnostic-backend/internal/diagnostics/costs"
	"diagnostic-backend/internal/diagnostics/insights"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/diagnostics/narrative"
	"diagnostic-backend/internal/diagnostics/scoring"
	"diagnostic-backend/internal/diagnostics/urgency"
)

type ResultProfile struct {
	SystemType         string   `json:"systemType"`
	RecommendedModules []string `json:"recommendedModules"`
}

type OpportunityProfile struct {
	PainPoints []string `json:"painPoints"`
	Benefits   []string `json:"benefits"`
}

// Result is the complete diagnostic envelope. Field names are read by the admin panel
// and the PDF report; lists are never nil.
type Result struct {
	RunID               string                 `json:"runId"`
	Sector              knowledge.Sector       `json:"sector"`
	BusinessType        string                 `json:"businessType"`
	ResultProfile       ResultProfile          `json:"resultProfile"`
	OpportunityProfile  OpportunityProfile     `json:"opportunityProfile"`
	Recommendation      scoring.Recommendation `json:"recommendation"`
	PersonalizedMessage string                 `json:"personalizedMessage"`
	Urgency             urgency.Level          `json:"urgency"`
	Summary             costs.Summary          `json:"summary"`
	Explanations        costs.Explanations     `json:"explanations"`
	Insights            []insights.Insight     `json:"insights"`
	CurrentSituation    string                 `json:"currentSituation"`
	Opportunities       []insights.Opportunity `json:"opportunities"`
	OperationalImpact   string                 `json:"operationalImpact"`
	FutureVision        string                 `json:"futureVision"`
	Narrative           narrative.Narrative    `json:"narrative"`
	Warnings            []costs.Unrecognized   `json:"warnings"`
}

func assemble(
	runID string,
	sector knowledge.Sector,
	rec scoring.Recommendation,
	agg costs.Result,
	ins []insights.Insight,
	ops []insights.Opportunity,
	level urgency.Level,
	story narrative.Narrative,
) Result {
	return Result{
		RunID:        runID,
		Sector:       sector,
		BusinessType: sector.Label(),
		ResultProfile: ResultProfile{
			SystemType:         rec.Primary.SystemType,
			RecommendedModules: recommendedModules(rec),
		},
		OpportunityProfile:  opportunityProfile(ins),
		Recommendation:      rec,
		PersonalizedMessage: personalizedMessage(rec, level),
		Urgency:             level,
		Summary:             agg.Summary,
		Explanations:        agg.Explanations,
		Insights:            ins,
		CurrentSituation:    story.CurrentSituation,
		Opportunities:       ops,
		OperationalImpact:   story.OperationalImpact,
		FutureVision:        story.FutureVision,
		Narrative:           story,
		Warnings:            agg.Unrecognized,
	}
}

func recommendedModules(rec scoring.Recommendation) []string {
	out := []string{}
	seen := map[string]bool{}
	add := func(modules []string) {
		for _, m := range modules {
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}
	add(rec.Primary.Modules)
	for _, c := range rec.Complementary {
		add(c.Modules)
	}
	return out
}

func opportunityProfile(ins []insights.Insight) OpportunityProfile {
	p := OpportunityProfile{PainPoints: []string{}, Benefits: []string{}}
	seen := map[string]bool{}
	for _, in := range ins {
		p.PainPoints = append(p.PainPoints, in.Title)
		for _, b := range in.Recommendation.Benefits {
			key := strings.ToLower(b)
			if seen[key] {
				continue
			}
			seen[key] = true
			p.Benefits = append(p.Benefits, b)
		}
	}
	return p
}

func personalizedMessage(rec scoring.Recommendation, level urgency.Level) string {
	title := rec.Primary.Title
	switch level {
	case urgency.High:
		return fmt.Sprintf("Your answers show problems that are costing you every day. %s addresses them first, and the sooner it is in place the sooner the losses stop.", title)
	case urgency.Medium:
		return fmt.Sprintf("You already took the first digital steps. %s connects what you have so the tools work together instead of side by side.", title)
	default:
		return fmt.Sprintf("Your business is in a good position to grow. %s is the natural next step when you are ready.", title)
	}
}
