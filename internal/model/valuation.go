package model

import "time"

type ValuationStatus string

const (
	// ValuationStatusComputed means every dollar figure is present.
	ValuationStatusComputed ValuationStatus = "computed"
	// ValuationStatusNoEBITDA means EBITDA is missing or not positive; dollar figures are absent.
	ValuationStatusNoEBITDA ValuationStatus = "no_ebitda"
	// ValuationStatusUnscored means no category had an answered question.
	ValuationStatusUnscored ValuationStatus = "unscored"
)

// ValuationSnapshot is one scoring pass. Rows are insert-only.
type ValuationSnapshot struct {
	ID             int64                `json:"id"`
	CompanyID      int64                `json:"company_id"`
	AssessmentID   int64                `json:"assessment_id"`
	CategoryScores map[Category]float64 `json:"category_scores"`
	Weights        map[Category]float64 `json:"weights"`
	OverallScore   *float64             `json:"overall_score,omitempty"`
	EBITDA         *float64             `json:"ebitda,omitempty"`
	MultipleLow    float64              `json:"multiple_low"`
	MultipleHigh   float64              `json:"multiple_high"`
	FinalMultiple  *float64             `json:"final_multiple,omitempty"`
	CurrentValue   *float64             `json:"current_value,omitempty"`
	PotentialValue *float64             `json:"potential_value,omitempty"`
	ValueGap       *float64             `json:"value_gap,omitempty"`
	Status         ValuationStatus      `json:"status"`
	Estimated      bool                 `json:"estimated"`
	CreatedAt      time.Time            `json:"created_at"`
}

// Benchmark is the industry multiple range for a sector.
type Benchmark struct {
	Sector       string    `json:"sector"`
	MultipleLow  float64   `json:"multiple_low"`
	MultipleHigh float64   `json:"multiple_high"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type Company struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Sector        string    `json:"sector"`
	EBITDA        *float64  `json:"ebitda,omitempty"`
	AnnualRevenue *float64  `json:"annual_revenue,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
