package scoring

import (
	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/knowledge"
)

// Objective is a stated business goal.
type Objective string

const (
	ObjectiveSales      Objective = "sales"
	ObjectivePresence   Objective = "presence"
	ObjectiveEfficiency Objective = "efficiency"
	ObjectiveControl    Objective = "control"
	ObjectiveCustomers  Objective = "customers"
	ObjectiveCosts      Objective = "costs"
)

// Need is an auxiliary requirement flag.
type Need string

const (
	NeedStockControl    Need = "stock-control"
	NeedMultiLocation   Need = "multi-location"
	NeedStaffManagement Need = "staff-management"
	NeedOnlineCatalog   Need = "online-catalog"
)

// Profile is the scoring view of an answer set.
type Profile struct {
	Sector     knowledge.Sector
	Maturity   knowledge.Maturity
	Objectives []Objective
	Needs      []Need
	Size       knowledge.Size
}

// ProfileFromAnswers extracts the scoring inputs. Unknown objective and need values are ignored.
func ProfileFromAnswers(kb *knowledge.Base, sector knowledge.Sector, set answers.Set) Profile {
	p := Profile{
		Sector:   sector,
		Maturity: answers.DigitalMaturity(kb, sector, set),
		Size:     answers.CompanySize(set),
	}
	for _, v := range set.Multi(knowledge.QuestionObjectives) {
		switch o := Objective(v); o {
		case ObjectiveSales, ObjectivePresence, ObjectiveEfficiency, ObjectiveControl, ObjectiveCustomers, ObjectiveCosts:
			p.Objectives = append(p.Objectives, o)
		}
	}
	for _, v := range set.Multi(knowledge.QuestionAdditionalNeeds) {
		switch n := Need(v); n {
		case NeedStockControl, NeedMultiLocation, NeedStaffManagement, NeedOnlineCatalog:
			p.Needs = append(p.Needs, n)
		}
	}
	return p
}

func (p Profile) hasObjective(o Objective) bool {
	for _, v := range p.Objectives {
		if v == o {
			return true
		}
	}
	return false
}

func (p Profile) hasNeed(n Need) bool {
	for _, v := range p.Needs {
		if v == n {
			return true
		}
	}
	return false
}
