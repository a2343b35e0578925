package dto

import (
	"time"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type ValuationResponse struct {
	ID             int64              `json:"id,string"`
	CompanyID      int64              `json:"company_id,string"`
	AssessmentID   int64              `json:"assessment_id,string"`
	Status         string             `json:"status"`
	Estimated      bool               `json:"estimated"`
	CategoryScores map[string]float64 `json:"category_scores"`
	Weights        map[string]float64 `json:"weights"`
	OverallScore   *float64           `json:"overall_score,omitempty"`
	EBITDA         *float64           `json:"ebitda,omitempty"`
	MultipleLow    float64            `json:"multiple_low"`
	MultipleHigh   float64            `json:"multiple_high"`
	FinalMultiple  *float64           `json:"final_multiple,omitempty"`
	CurrentValue   *float64           `json:"current_value,omitempty"`
	PotentialValue *float64           `json:"potential_value,omitempty"`
	ValueGap       *float64           `json:"value_gap,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

func NewValuationResponse(s model.ValuationSnapshot) ValuationResponse {
	return ValuationResponse{
		ID:             s.ID,
		CompanyID:      s.CompanyID,
		AssessmentID:   s.AssessmentID,
		Status:         string(s.Status),
		Estimated:      s.Estimated,
		CategoryScores: categoryMap(s.CategoryScores),
		Weights:        categoryMap(s.Weights),
		OverallScore:   s.OverallScore,
		EBITDA:         s.EBITDA,
		MultipleLow:    s.MultipleLow,
		MultipleHigh:   s.MultipleHigh,
		FinalMultiple:  s.FinalMultiple,
		CurrentValue:   s.CurrentValue,
		PotentialValue: s.PotentialValue,
		ValueGap:       s.ValueGap,
		CreatedAt:      s.CreatedAt,
	}
}

func categoryMap(in map[model.Category]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for c, v := range in {
		out[string(c)] = v
	}
	return out
}
