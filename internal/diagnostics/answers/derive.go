package answers

import "diagnostic-backend/internal/diagnostics/knowledge"

// DigitalMaturity returns the explicit digitalTools answer, or the maturity tag of the
// first answered sector question whose option carries one.
func DigitalMaturity(kb *knowledge.Base, sector knowledge.Sector, set Set) knowledge.Maturity {
	if v, ok := set.Single(knowledge.QuestionDigitalTools); ok {
		if m := knowledge.ParseMaturity(v); m != knowledge.MaturityUnknown {
			return m
		}
	}
	qs, err := kb.QuestionsForSector(sector)
	if err != nil {
		return knowledge.MaturityUnknown
	}
	for _, q := range qs {
		if q.Transversal() {
			break
		}
		v, ok := set.Single(q.ID)
		if !ok {
			continue
		}
		if opt, ok := kb.FindOption(q.ID, v); ok && opt.Maturity != knowledge.MaturityUnknown {
			return opt.Maturity
		}
	}
	return knowledge.MaturityUnknown
}

// DominantPain returns the explicit mainPainPoint answer, or the pain tag of the first
// answered option that carries one, in question order.
func DominantPain(kb *knowledge.Base, sector knowledge.Sector, set Set) knowledge.Pain {
	if v, ok := set.Single(knowledge.QuestionMainPainPoint); ok {
		if opt, ok := kb.FindOption(knowledge.QuestionMainPainPoint, v); ok {
			return opt.Pain
		}
	}
	qs, err := kb.QuestionsForSector(sector)
	if err != nil {
		return knowledge.PainNone
	}
	for _, q := range qs {
		if q.ID == knowledge.QuestionMainPainPoint {
			continue
		}
		for _, v := range set.Multi(q.ID) {
			if opt, ok := kb.FindOption(q.ID, v); ok && opt.Pain != knowledge.PainNone {
				return opt.Pain
			}
		}
	}
	return knowledge.PainNone
}

// CompanySize returns the declared size bracket, falling back to the employee count.
func CompanySize(set Set) knowledge.Size {
	if v, ok := set.Single(knowledge.QuestionCompanySize); ok {
		if size := knowledge.ParseSize(v); size != knowledge.SizeUnknown {
			return size
		}
	}
	if n, ok := set.Numeric(knowledge.QuestionEmployeeCount); ok {
		return knowledge.SizeFromEmployees(n)
	}
	return knowledge.SizeUnknown
}
