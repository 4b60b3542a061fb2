package engine

import (
	"fmt"

	"github.com/google/uuid"

	"diagnostic-backend/internal/diagnostics/answers"
	"diagnostic-backend/internal/diagnostics/costs"
	"diagnostic-backend/internal/diagnostics/format"
	"diagnostic-backend/internal/diagnostics/insights"
	"diagnostic-backend/internal/diagnostics/knowledge"
	"diagnostic-backend/internal/diagnostics/narrative"
	"diagnostic-backend/internal/diagnostics/scoring"
	"diagnostic-backend/internal/diagnostics/urgency"
)

// Config gathers the tunable business assumptions of a run.
type Config struct {
	TimeSavingsRatio      float64
	MoneySavingsRatio     float64
	ErrorReductionRatio   float64
	SystemMonthlyCost     float64
	MinHoursPerWeek       float64
	MinMoneyPerMonth      float64
	MinComplementaryScore int
	MaxComplementary      int
	CurrencySymbol        string
}

func DefaultConfig() Config {
	return Config{
		TimeSavingsRatio:      costs.DefaultTimeSavingsRatio,
		MoneySavingsRatio:     costs.DefaultMoneySavingsRatio,
		ErrorReductionRatio:   costs.DefaultErrorReductionRatio,
		SystemMonthlyCost:     costs.DefaultSystemMonthlyCost,
		MinHoursPerWeek:       insights.DefaultMinHoursPerWeek,
		MinMoneyPerMonth:      insights.DefaultMinMoneyPerMonth,
		MinComplementaryScore: scoring.DefaultMinComplementaryScore,
		MaxComplementary:      scoring.DefaultMaxComplementary,
		CurrencySymbol:        format.DefaultCurrency,
	}
}

func (c Config) costsConfig() costs.Config {
	return costs.Config{
		TimeSavingsRatio:    c.TimeSavingsRatio,
		MoneySavingsRatio:   c.MoneySavingsRatio,
		ErrorReductionRatio: c.ErrorReductionRatio,
		SystemMonthlyCost:   c.SystemMonthlyCost,
		CurrencySymbol:      c.CurrencySymbol,
	}
}

func (c Config) bounded() Config {
	b := c.costsConfig().Bounded()
	c.TimeSavingsRatio = b.TimeSavingsRatio
	c.MoneySavingsRatio = b.MoneySavingsRatio
	c.ErrorReductionRatio = b.ErrorReductionRatio
	c.SystemMonthlyCost = b.SystemMonthlyCost
	return c
}

func (c Config) insightsConfig() insights.Config {
	return insights.Config{
		MinHoursPerWeek:  c.MinHoursPerWeek,
		MinMoneyPerMonth: c.MinMoneyPerMonth,
		CurrencySymbol:   c.CurrencySymbol,
	}
}

func (c Config) scoringConfig() scoring.Config {
	return scoring.Config{
		MinComplementaryScore: c.MinComplementaryScore,
		MaxComplementary:      c.MaxComplementary,
	}
}

type Option func(*Engine)

// WithConfig replaces the defaults. Ratios are kept within [0,1] and the system cost
// is floored at zero.
func WithConfig(cfg Config) Option {
	return func(e *Engine) { e.cfg = cfg.bounded() }
}

// WithIDFunc replaces the run id generator.
func WithIDFunc(fn func() string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// Engine runs diagnostics against an immutable knowledge base. It holds no per-run
// state and is safe for concurrent use.
type Engine struct {
	kb    *knowledge.Base
	cfg   Config
	newID func() string
}

func New(kb *knowledge.Base, opts ...Option) *Engine {
	e := &Engine{kb: kb, cfg: DefaultConfig(), newID: uuid.NewString}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Knowledge returns the base the engine was built with.
func (e *Engine) Knowledge() *knowledge.Base {
	return e.kb
}

func (e *Engine) Config() Config {
	return e.cfg
}

// ProcessRaw normalizes a free-form payload and runs the diagnostic.
func (e *Engine) ProcessRaw(sector string, raw map[string]any) (Result, error) {
	s, err := knowledge.ParseSector(sector)
	if err != nil {
		return Result{}, err
	}
	return e.Process(s, answers.Normalize(e.kb, s, raw))
}

// Process runs every stage for one answer set. It returns either a complete result or an error.
func (e *Engine) Process(sector knowledge.Sector, set answers.Set) (Result, error) {
	if !e.kb.HasSector(sector) {
		return Result{}, fmt.Errorf("%w: %q", knowledge.ErrInvalidSector, string(sector))
	}
	if set == nil {
		set = answers.Set{}
	}

	agg, err := costs.Aggregate(e.kb, sector, set, e.cfg.costsConfig())
	if err != nil {
		return Result{}, fmt.Errorf("aggregate costs: %w", err)
	}
	profile := scoring.ProfileFromAnswers(e.kb, sector, set)
	rec := scoring.Rank(e.kb.Solutions(), profile, e.cfg.scoringConfig())
	ins := insights.Generate(agg.Contributions, e.cfg.insightsConfig())
	ops := insights.Opportunities(ins, agg.Summary, e.cfg.insightsConfig())
	level := urgency.Classify(urgency.InputFromAnswers(e.kb, sector, set))
	story := narrative.Build(narrative.Input{
		Summary:           agg.Summary,
		Insights:          ins,
		PrimarySolution:   rec.Primary.Title,
		ContactName:       set.Text(knowledge.QuestionContactName),
		CompanyName:       set.Text(knowledge.QuestionCompanyName),
		CurrencySymbol:    e.cfg.CurrencySymbol,
		SystemMonthlyCost: e.cfg.SystemMonthlyCost,
	})

	return assemble(e.newID(), sector, rec, agg, ins, ops, level, story), nil
}
