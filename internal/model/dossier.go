package model

import "time"

// DossierVersion is bumped whenever the shape of Dossier changes.
const DossierVersion = 1

// Dossier is the read model of a company's state used as scoring and prompt
// input. Once built it is never modified; a later pass builds a new one.
type Dossier struct {
	SchemaVersion int       `json:"schema_version"`
	Version       int32     `json:"version"`
	CompanyID     int64     `json:"company_id"`
	GeneratedAt   time.Time `json:"generated_at"`

	Identity    DossierIdentity    `json:"identity"`
	Financials  DossierFinancials  `json:"financials"`
	Assessment  *DossierAssessment `json:"assessment,omitempty"`
	Valuation   *ValuationSnapshot `json:"valuation,omitempty"`
	Tasks       DossierTasks       `json:"tasks"`
	Evidence    DossierEvidence    `json:"evidence"`
	RiskSignals []RiskSignal       `json:"risk_signals"`
	Engagement  DossierEngagement  `json:"engagement"`
}

type DossierIdentity struct {
	Name   string `json:"name"`
	Sector string `json:"sector"`
}

type DossierFinancials struct {
	EBITDA        *float64   `json:"ebitda,omitempty"`
	AnnualRevenue *float64   `json:"annual_revenue,omitempty"`
	Benchmark     *Benchmark `json:"benchmark,omitempty"`
}

type DossierAssessment struct {
	AssessmentID  int64            `json:"assessment_id"`
	CompletedAt   *time.Time       `json:"completed_at,omitempty"`
	ResponseCount int              `json:"response_count"`
	Responses     []ScoredResponse `json:"responses"`
}

type DossierTasks struct {
	ByStatus       map[TaskStatus]int `json:"by_status"`
	CompletedValue float64            `json:"completed_value"`
}

type DossierEvidence struct {
	DocumentCount int64 `json:"document_count"`
}

type RiskSignal struct {
	ID        int64     `json:"id"`
	Category  Category  `json:"category"`
	Summary   string    `json:"summary"`
	Severity  string    `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
}

type DossierEngagement struct {
	EventCount     int64      `json:"event_count"`
	LastActivityAt *time.Time `json:"last_activity_at,omitempty"`
}
