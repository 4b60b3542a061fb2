package scoring

import (
	"fmt"
	"strings"

	"diagnostic-backend/internal/diagnostics/knowledge"
)

type reasonRule struct {
	when func(Profile) bool
	text func(Profile) string
}

func always(Profile) bool { return true }

func static(s string) func(Profile) string {
	return func(Profile) string { return s }
}

func objective(o Objective) func(Profile) bool {
	return func(p Profile) bool { return p.hasObjective(o) }
}

func need(n Need) func(Profile) bool {
	return func(p Profile) bool { return p.hasNeed(n) }
}

func maturity(levels ...knowledge.Maturity) func(Profile) bool {
	return func(p Profile) bool {
		for _, m := range levels {
			if p.Maturity == m {
				return true
			}
		}
		return false
	}
}

var sectorNouns = map[knowledge.Sector]string{
	knowledge.SectorRestaurant:           "restaurant",
	knowledge.SectorTechnicalService:     "technical service",
	knowledge.SectorWorkshop:             "workshop",
	knowledge.SectorFactory:              "factory",
	knowledge.SectorRetail:               "store",
	knowledge.SectorProfessionalServices: "practice",
}

func sectorName(p Profile) string {
	if noun, ok := sectorNouns[p.Sector]; ok {
		return noun
	}
	return strings.ToLower(p.Sector.Label())
}

// sectorReasons apply to the solution built for the respondent's own sector.
var sectorReasons = []reasonRule{
	{maturity(knowledge.MaturityNone), func(p Profile) string {
		return fmt.Sprintf("Your %s still runs on paper and memory; this system digitizes the core of the operation.", sectorName(p))
	}},
	{objective(ObjectiveEfficiency), func(p Profile) string {
		return fmt.Sprintf("Built around the daily work of a %s, it removes the manual steps you repeat every week.", sectorName(p))
	}},
	{objective(ObjectiveControl), static("Every order, job and payment is recorded, so you always know where the business stands.")},
	{always, func(p Profile) string {
		return fmt.Sprintf("The solution designed specifically for businesses like your %s.", sectorName(p))
	}},
}

// reasonRules are evaluated in order; the first satisfied condition wins.
var reasonRules = map[string][]reasonRule{
	knowledge.SolutionWebPresence: {
		{objective(ObjectivePresence), static("You want customers to find you online; a professional website is the first step.")},
		{objective(ObjectiveSales), static("More visibility online turns into more contacts and more sales.")},
		{need(NeedOnlineCatalog), static("Publish your catalog so customers can browse before they call.")},
		{maturity(knowledge.MaturityBasic, knowledge.MaturityPartial), static("You already use some digital tools; a website connects them with your customers.")},
	},
	knowledge.SolutionOnlineStore: {
		{objective(ObjectiveSales), static("Selling online opens a channel that works around the clock.")},
		{need(NeedOnlineCatalog), static("Turn your online catalog into orders and payments.")},
	},
	knowledge.SolutionManagementDashboard: {
		{need(NeedMultiLocation), static("With more than one location you need a single view of the whole business.")},
		{objective(ObjectiveControl), static("You asked for control: the key numbers of the business on one screen.")},
		{need(NeedStaffManagement), static("Track staff performance and workload without spreadsheets.")},
		{maturity(knowledge.MaturityAdvanced), static("Your tools are already digital; a dashboard connects their data into decisions.")},
	},
	knowledge.SolutionInventoryControl: {
		{need(NeedStockControl), static("You need to control stock and stop running out of what sells.")},
		{objective(ObjectiveCosts), static("Knowing exactly what you hold reduces waste and cash tied up in stock.")},
	},
}

const genericReason = "Complements your main solution based on your answers."

func reasonFor(s knowledge.Solution, p Profile) string {
	rule, specific := ruleFor(p.Sector)
	rules := reasonRules[s.ID]
	switch {
	case specific && s.ID == rule.primary:
		rules = sectorReasons
	case specific && s.ID == rule.secondary && len(rules) == 0:
		rules = []reasonRule{{always, func(p Profile) string {
			return fmt.Sprintf("Shares much of its workflow with a %s, so it fits the way you already work.", sectorName(p))
		}}}
	}
	for _, r := range rules {
		if r.when(p) {
			return r.text(p)
		}
	}
	return genericReason
}
