package service

import (
	"github.com/bradfeldman/exit-osx-sub006/core/config"
	"github.com/bradfeldman/exit-osx-sub006/internal/allocation"
	"github.com/bradfeldman/exit-osx-sub006/internal/dossier"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
	"github.com/bradfeldman/exit-osx-sub006/internal/valuation"
)

type Services struct {
	stores       *store.Stores
	txRunner     TxRunner
	valuationCfg config.ValuationConfig
	generator    generation.Generator
}

// NewServices wires the services. generator may be nil in processes that
// never generate; Generation then panics if called.
func NewServices(stores *store.Stores, txRunner TxRunner, valuationCfg config.ValuationConfig, generator generation.Generator) *Services {
	return &Services{
		stores:       stores,
		txRunner:     txRunner,
		valuationCfg: valuationCfg,
		generator:    generator,
	}
}

func (s *Services) Scoring() ScoringService {
	return NewScoringService(s.txRunner, valuation.Range{
		Low:  s.valuationCfg.DefaultMultipleLow,
		High: s.valuationCfg.DefaultMultipleHigh,
	})
}

func (s *Services) Weights() WeightService {
	return NewWeightService(s.stores.Companies(), s.stores.Weights())
}

func (s *Services) Valuations() ValuationService {
	return NewValuationService(s.stores.Valuations())
}

func (s *Services) Tasks() TaskService {
	return NewTaskService(s.stores.Tasks(), s.txRunner, allocation.DefaultTierSplit(), allocation.DefaultEffortDivisors())
}

func (s *Services) Dossiers() *dossier.Aggregator {
	return dossier.NewAggregator(
		s.stores.Companies(),
		s.stores.Assessments(),
		s.stores.Valuations(),
		s.stores.Tasks(),
		s.stores.Dossiers(),
	)
}

func (s *Services) Generation() GenerationService {
	if s.generator == nil {
		panic("service: Generation requires a generator")
	}
	return NewGenerationService(
		s.stores.Weights(),
		s.stores.Assessments(),
		s.stores.Valuations(),
		s.txRunner,
		s.Dossiers(),
		generation.NewRunner(s.generator, s.stores.GenerationLogs()),
		s.Tasks(),
	)
}

func (s *Services) GenerationLogs() GenerationLogService {
	return NewGenerationLogService(s.stores.GenerationLogs())
}

func (s *Services) Jobs(producer queue.Producer) JobService {
	return NewJobService(s.stores.Companies(), s.stores.Assessments(), producer, nil)
}
