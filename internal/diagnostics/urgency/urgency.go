package urgency

import (
	"strings"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/knowledge"
)

type Level string

const (
	High   Level = "high"
	Medium Level = "medium"
	Low    Level = "low"
)

// ParseLevel accepts the three level names, case-insensitively.
func ParseLevel(raw string) (Level, bool) {
	switch l := Level(strings.ToLower(strings.TrimSpace(raw))); l {
	case High, Medium, Low:
		return l, true
	}
	return "", false
}

// Input is what the decision table looks at.
type Input struct {
	Sector      knowledge.Sector
	Maturity    knowledge.Maturity
	Pain        knowledge.Pain
	Size        knowledge.Size
	SellsOnline bool
}

// criticalPains lists, per sector, the pain points that make a paper-based business urgent.
var criticalPains = map[knowledge.Sector][]knowledge.Pain{
	knowledge.SectorRestaurant:           {knowledge.PainLosingOrders, knowledge.PainSlowService},
	knowledge.SectorTechnicalService:     {knowledge.PainLostTickets, knowledge.PainSlowQuotes},
	knowledge.SectorWorkshop:             {knowledge.PainLostTickets, knowledge.PainSlowBilling},
	knowledge.SectorFactory:              {knowledge.PainSlowQuotes, knowledge.PainNoCostVisibility, knowledge.PainProductionDelays},
	knowledge.SectorRetail:               {knowledge.PainNoSalesVisibility, knowledge.PainStockOuts},
	knowledge.SectorProfessionalServices: {knowledge.PainNoFollowUp, knowledge.PainUnbilledHours},
	knowledge.SectorOther:                {},
}

// InputFromAnswers derives the classifier input from an answer set.
func InputFromAnswers(kb *knowledge.Base, sector knowledge.Sector, set answers.Set) Input {
	return Input{
		Sector:      sector,
		Maturity:    answers.DigitalMaturity(kb, sector, set),
		Pain:        answers.DominantPain(kb, sector, set),
		Size:        answers.CompanySize(set),
		SellsOnline: set.Contains(knowledge.QuestionObjectives, "sales"),
	}
}

// Classify evaluates the rules in priority order.
func Classify(in Input) Level {
	switch in.Maturity {
	case knowledge.MaturityNone:
		if Critical(in.Sector, in.Pain, in.SellsOnline) {
			return High
		}
		if in.Size == knowledge.SizeLarge {
			return High
		}
		return Low
	case knowledge.MaturityBasic, knowledge.MaturityPartial:
		return Medium
	case knowledge.MaturityAdvanced, knowledge.MaturityUnknown:
		return Low
	}
	return Low
}

// Critical reports whether pain is in the critical subset for sector. Missing web
// presence is critical for any sector once the business wants to sell online.
func Critical(sector knowledge.Sector, pain knowledge.Pain, sellsOnline bool) bool {
	if pain == knowledge.PainNoWebPresence && sellsOnline {
		return true
	}
	for _, p := range criticalPains[sector] {
		if p == pain {
			return true
		}
	}
	return false
}
