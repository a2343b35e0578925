package model

import "time"

type AssessmentStatus string

const (
	AssessmentStatusInProgress AssessmentStatus = "in_progress"
	AssessmentStatusCompleted  AssessmentStatus = "completed"
)

type Assessment struct {
	ID          int64            `json:"id"`
	CompanyID   int64            `json:"company_id"`
	Status      AssessmentStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	CompletedAt *time.Time       `json:"completed_at,omitempty"`
}

type AssessmentResponse struct {
	ID                int64           `json:"id"`
	AssessmentID      int64           `json:"assessment_id"`
	QuestionID        int64           `json:"question_id"`
	SelectedOptionID  int64           `json:"selected_option_id"`
	EffectiveOptionID *int64          `json:"effective_option_id,omitempty"`
	ConfidenceLevel   ConfidenceLevel `json:"confidence_level"`
	CreatedAt         time.Time       `json:"created_at"`
}

// ScoredResponse is a response joined with its question and the option that
// counts for scoring (the effective override when present, else the selection).
type ScoredResponse struct {
	ResponseID      int64           `json:"response_id"`
	QuestionID      int64           `json:"question_id"`
	QuestionText    string          `json:"question_text"`
	Category        Category        `json:"category"`
	IssueTier       IssueTier       `json:"issue_tier"`
	MaxImpactPoints float64         `json:"max_impact_points"`
	QuestionActive  bool            `json:"question_active"`
	OptionID        int64           `json:"option_id"`
	OptionText      string          `json:"option_text"`
	ScoreValue      float64         `json:"score_value"`
	ConfidenceLevel ConfidenceLevel `json:"confidence_level"`
}
