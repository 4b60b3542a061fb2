package knowledge

import (
	"fmt"
	"strings"
)

// Base is the read-only question and solution catalog. It is built once and
// shared between diagnostic runs; accessors hand out copies.
type Base struct {
	sectorQuestions   map[Sector][]Question
	transversal       []Question
	questionsByID     map[string]Question
	optionsByQuestion map[string]map[string]Option
	solutions         []Solution
}

// Default returns the authored knowledge base.
func Default() *Base {
	return New(map[Sector][]Question{
		SectorRestaurant:           restaurantQuestions(),
		SectorTechnicalService:     technicalServiceQuestions(),
		SectorWorkshop:             workshopQuestions(),
		SectorFactory:              factoryQuestions(),
		SectorRetail:               retailQuestions(),
		SectorProfessionalServices: professionalServicesQuestions(),
		SectorOther:                nil,
	}, transversalQuestions(), solutionCatalog())
}

// New indexes the given catalog. Question IDs must be unique across sectors;
// a later duplicate replaces the earlier index entry.
func New(sectorQuestions map[Sector][]Question, transversal []Question, solutions []Solution) *Base {
	b := &Base{
		sectorQuestions:   make(map[Sector][]Question, len(sectorQuestions)),
		questionsByID:     make(map[string]Question),
		optionsByQuestion: make(map[string]map[string]Option),
	}
	for sector, qs := range sectorQuestions {
		list := make([]Question, 0, len(qs))
		for _, q := range qs {
			q = cloneQuestion(q)
			q.Sector = sector
			list = append(list, q)
			b.index(q)
		}
		b.sectorQuestions[sector] = list
	}
	for _, q := range transversal {
		q = cloneQuestion(q)
		q.Sector = ""
		b.transversal = append(b.transversal, q)
		b.index(q)
	}
	for _, s := range solutions {
		b.solutions = append(b.solutions, cloneSolution(s))
	}
	return b
}

func (b *Base) index(q Question) {
	b.questionsByID[q.ID] = q
	opts := make(map[string]Option, len(q.Options))
	for _, o := range q.Options {
		opts[strings.ToLower(o.Value)] = o
	}
	b.optionsByQuestion[q.ID] = opts
}

// QuestionsForSector returns the sector questions followed by the transversal ones.
func (b *Base) QuestionsForSector(sector Sector) ([]Question, error) {
	qs, ok := b.sectorQuestions[sector]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSector, string(sector))
	}
	out := make([]Question, 0, len(qs)+len(b.transversal))
	for _, q := range qs {
		out = append(out, cloneQuestion(q))
	}
	for _, q := range b.transversal {
		out = append(out, cloneQuestion(q))
	}
	return out, nil
}

// HasSector reports whether the base carries a question set for sector.
func (b *Base) HasSector(sector Sector) bool {
	_, ok := b.sectorQuestions[sector]
	return ok
}

// Question looks up a question by id.
func (b *Base) Question(id string) (Question, bool) {
	q, ok := b.questionsByID[id]
	if !ok {
		return Question{}, false
	}
	return cloneQuestion(q), true
}

// FindOption resolves an answer value for a question. Values match case-insensitively.
func (b *Base) FindOption(questionID, value string) (Option, bool) {
	opts, ok := b.optionsByQuestion[questionID]
	if !ok {
		return Option{}, false
	}
	o, ok := opts[strings.ToLower(strings.TrimSpace(value))]
	if !ok {
		return Option{}, false
	}
	return cloneOption(o), true
}

// Sectors lists the sectors in display order.
func (b *Base) Sectors() []SectorInfo {
	out := make([]SectorInfo, 0, len(sectorOrder))
	for _, info := range sectorOrder {
		if b.HasSector(info.ID) {
			out = append(out, info)
		}
	}
	return out
}

// Solutions returns the catalog in declaration order.
func (b *Base) Solutions() []Solution {
	out := make([]Solution, len(b.solutions))
	for i, s := range b.solutions {
		out[i] = cloneSolution(s)
	}
	return out
}
