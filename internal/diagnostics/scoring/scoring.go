package scoring

import (
	"sort"

	"diagnostic-backend/internal/diagnostics/knowledge"
)

const (
	DefaultMinComplementaryScore = 10
	DefaultMaxComplementary      = 2
)

type Config struct {
	MinComplementaryScore int
	MaxComplementary      int
}

func DefaultConfig() Config {
	return Config{
		MinComplementaryScore: DefaultMinComplementaryScore,
		MaxComplementary:      DefaultMaxComplementary,
	}
}

// Match is a catalog solution with its score for one run.
type Match struct {
	knowledge.Solution
	MatchScore int    `json:"matchScore"`
	Reason     string `json:"reason"`
}

type Recommendation struct {
	Primary       Match   `json:"primarySolution"`
	Complementary []Match `json:"complementarySolutions"`
}

// Score computes the score of every solution in the profile.
func Score(catalog []knowledge.Solution, p Profile) map[string]int {
	scores := make(map[string]int, len(catalog))
	for _, s := range catalog {
		scores[s.ID] = 0
	}
	rule, specific := ruleFor(p.Sector)
	apply := func(incs []increment) {
		for _, inc := range incs {
			id := inc.solution
			switch id {
			case leading:
				id = rule.primary
			case leadingIfSpecific:
				if !specific {
					continue
				}
				id = rule.primary
			}
			if _, ok := scores[id]; ok {
				scores[id] += inc.points
			}
		}
	}

	apply([]increment{{rule.primary, rule.primaryBonus}})
	if rule.secondary != "" {
		apply([]increment{{rule.secondary, rule.secondaryBonus}})
	}
	apply(maturityIncrements(p.Maturity))
	for _, o := range p.Objectives {
		apply(objectiveIncrements[o])
	}
	for _, n := range p.Needs {
		apply(needIncrements[n])
	}
	apply(sizeIncrements(p.Size))
	return scores
}

// Rank picks the primary solution (first maximum in catalog order) and up to
// cfg.MaxComplementary others scoring above cfg.MinComplementaryScore.
func Rank(catalog []knowledge.Solution, p Profile, cfg Config) Recommendation {
	rec := Recommendation{Complementary: []Match{}}
	if len(catalog) == 0 {
		return rec
	}
	scores := Score(catalog, p)

	primary := 0
	for i, s := range catalog {
		if scores[s.ID] > scores[catalog[primary].ID] {
			primary = i
		}
	}
	rec.Primary = newMatch(catalog[primary], scores[catalog[primary].ID], p)

	rest := make([]knowledge.Solution, 0, len(catalog)-1)
	for i, s := range catalog {
		if i != primary && scores[s.ID] > cfg.MinComplementaryScore {
			rest = append(rest, s)
		}
	}
	sort.SliceStable(rest, func(i, j int) bool {
		return scores[rest[i].ID] > scores[rest[j].ID]
	})
	for _, s := range rest {
		if len(rec.Complementary) >= cfg.MaxComplementary {
			break
		}
		rec.Complementary = append(rec.Complementary, newMatch(s, scores[s.ID], p))
	}
	return rec
}

func newMatch(s knowledge.Solution, score int, p Profile) Match {
	return Match{
		Solution:   s,
		MatchScore: score,
		Reason:     reasonFor(s, p),
	}
}
