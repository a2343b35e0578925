package store

import (
	"github.com/bradfeldman/exit-osx-sub006/core/db/sqlc"
)

type Stores struct {
	queries *sqlc.Queries
}

func NewStores(queries *sqlc.Queries) *Stores {
	return &Stores{queries: queries}
}

func (s *Stores) Companies() CompanyStore {
	return newCompanyStore(s.queries)
}

func (s *Stores) Weights() WeightStore {
	return newWeightStore(s.queries)
}

func (s *Stores) Questions() QuestionStore {
	return newQuestionStore(s.queries)
}

func (s *Stores) Assessments() AssessmentStore {
	return newAssessmentStore(s.queries)
}

func (s *Stores) Valuations() ValuationStore {
	return newValuationStore(s.queries)
}

func (s *Stores) Tasks() TaskStore {
	return newTaskStore(s.queries)
}

func (s *Stores) GenerationLogs() GenerationLogStore {
	return newGenerationLogStore(s.queries)
}

func (s *Stores) Dossiers() DossierStore {
	return newDossierStore(s.queries)
}
