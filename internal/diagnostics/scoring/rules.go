package scoring

import "diagnostic-backend/internal/diagnostics/knowledge"

type baseRule struct {
	primary        string
	primaryBonus   int
	secondary      string
	secondaryBonus int
}

// baseRules ties each sector to its own solution and, where workflows overlap, a related one.
var baseRules = map[knowledge.Sector]baseRule{
	knowledge.SectorRestaurant:           {primary: knowledge.SolutionRestaurant, primaryBonus: 50},
	knowledge.SectorTechnicalService:     {primary: knowledge.SolutionTechnicalService, primaryBonus: 50, secondary: knowledge.SolutionWorkshop, secondaryBonus: 30},
	knowledge.SectorWorkshop:             {primary: knowledge.SolutionWorkshop, primaryBonus: 50, secondary: knowledge.SolutionTechnicalService, secondaryBonus: 30},
	knowledge.SectorFactory:              {primary: knowledge.SolutionFactory, primaryBonus: 50, secondary: knowledge.SolutionInventoryControl, secondaryBonus: 30},
	knowledge.SectorRetail:               {primary: knowledge.SolutionRetail, primaryBonus: 50, secondary: knowledge.SolutionOnlineStore, secondaryBonus: 30},
	knowledge.SectorProfessionalServices: {primary: knowledge.SolutionProfessionalServices, primaryBonus: 50, secondary: knowledge.SolutionWebPresence, secondaryBonus: 30},
}

// genericRule is used for "other" and any sector without a row.
var genericRule = baseRule{
	primary:        knowledge.SolutionWebPresence,
	primaryBonus:   30,
	secondary:      knowledge.SolutionManagementDashboard,
	secondaryBonus: 10,
}

func ruleFor(sector knowledge.Sector) (baseRule, bool) {
	if r, ok := baseRules[sector]; ok {
		return r, true
	}
	return genericRule, false
}

type increment struct {
	solution string
	points   int
}

// leading is a placeholder resolved to the profile's leading solution.
const leading = "@leading"

// leadingIfSpecific only applies when the sector has its own solution.
const leadingIfSpecific = "@leading-specific"

var objectiveIncrements = map[Objective][]increment{
	ObjectiveSales:      {{knowledge.SolutionWebPresence, 25}, {knowledge.SolutionOnlineStore, 15}, {leadingIfSpecific, 10}},
	ObjectivePresence:   {{knowledge.SolutionWebPresence, 30}},
	ObjectiveEfficiency: {{leading, 20}, {knowledge.SolutionManagementDashboard, 10}},
	ObjectiveControl:    {{knowledge.SolutionManagementDashboard, 25}, {leading, 10}},
	ObjectiveCustomers:  {{leading, 15}, {knowledge.SolutionWebPresence, 10}},
	ObjectiveCosts:      {{leading, 15}, {knowledge.SolutionInventoryControl, 10}},
}

var needIncrements = map[Need][]increment{
	NeedStockControl:    {{knowledge.SolutionInventoryControl, 25}},
	NeedMultiLocation:   {{knowledge.SolutionManagementDashboard, 20}, {leading, 10}},
	NeedStaffManagement: {{leading, 15}, {knowledge.SolutionManagementDashboard, 10}},
	NeedOnlineCatalog:   {{knowledge.SolutionWebPresence, 20}, {knowledge.SolutionOnlineStore, 15}},
}

func maturityIncrements(m knowledge.Maturity) []increment {
	switch m {
	case knowledge.MaturityNone:
		return []increment{{leading, 20}}
	case knowledge.MaturityBasic, knowledge.MaturityPartial:
		return []increment{{knowledge.SolutionWebPresence, 15}}
	case knowledge.MaturityAdvanced:
		return []increment{{knowledge.SolutionManagementDashboard, 10}}
	case knowledge.MaturityUnknown:
		return nil
	}
	return nil
}

func sizeIncrements(s knowledge.Size) []increment {
	switch s {
	case knowledge.SizeMedium, knowledge.SizeLarge:
		return []increment{{leading, 10}}
	case knowledge.SizeUnknown, knowledge.SizeMicro, knowledge.SizeSmall:
		return nil
	}
	return nil
}
