package model

import "time"

type QuestionSource string

const (
	QuestionSourceTemplate  QuestionSource = "template"
	QuestionSourceGenerated QuestionSource = "generated"
)

// QuestionBatch groups the questions of one seed or generation pass. At most one
// batch per company is active at a time.
type QuestionBatch struct {
	ID        int64          `json:"id"`
	CompanyID *int64         `json:"company_id,omitempty"`
	Source    QuestionSource `json:"source"`
	IsActive  bool           `json:"is_active"`
	CreatedAt time.Time      `json:"created_at"`
	RetiredAt *time.Time     `json:"retired_at,omitempty"`
}

type Question struct {
	ID              int64     `json:"id"`
	BatchID         int64     `json:"batch_id"`
	CompanyID       *int64    `json:"company_id,omitempty"`
	Category        Category  `json:"category"`
	QuestionText    string    `json:"question_text"`
	HelpText        string    `json:"help_text,omitempty"`
	IssueTier       IssueTier `json:"issue_tier"`
	MaxImpactPoints float64   `json:"max_impact_points"`
	DisplayOrder    int32     `json:"display_order"`
	IsActive        bool      `json:"is_active"`
	Options         []Option  `json:"options"`
	CreatedAt       time.Time `json:"created_at"`
}

type Option struct {
	ID           int64   `json:"id"`
	QuestionID   int64   `json:"question_id"`
	OptionText   string  `json:"option_text"`
	ScoreValue   float64 `json:"score_value"`
	DisplayOrder int32   `json:"display_order"`
}

// OptionWithScore returns the option of q whose score matches exactly, if any.
func (q Question) OptionWithScore(score float64) (Option, bool) {
	for _, o := range q.Options {
		if SameScore(o.ScoreValue, score) {
			return o, true
		}
	}
	return Option{}, false
}
