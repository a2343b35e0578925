package dto

import (
	"time"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

type TransitionTaskRequest struct {
	Status string `json:"status" binding:"required"`
}

type TaskResponse struct {
	ID              int64      `json:"id,string"`
	CompanyID       int64      `json:"company_id,string"`
	QuestionID      int64      `json:"question_id,string"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category"`
	IssueTier       string     `json:"issue_tier"`
	EffortLevel     string     `json:"effort_level"`
	Complexity      string     `json:"complexity"`
	FromScore       float64    `json:"from_score"`
	ToScore         float64    `json:"to_score"`
	RawImpact       float64    `json:"raw_impact"`
	NormalizedValue float64    `json:"normalized_value"`
	PriorityRank    int32      `json:"priority_rank"`
	Status          string     `json:"status"`
	CompletedValue  *float64   `json:"completed_value,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

func NewTaskResponse(t model.Task) TaskResponse {
	return TaskResponse{
		ID:              t.ID,
		CompanyID:       t.CompanyID,
		QuestionID:      t.QuestionID,
		Title:           t.Title,
		Description:     t.Description,
		Category:        string(t.Category),
		IssueTier:       string(t.IssueTier),
		EffortLevel:     string(t.EffortLevel),
		Complexity:      string(t.Complexity),
		FromScore:       t.FromScore,
		ToScore:         t.ToScore,
		RawImpact:       t.RawImpact,
		NormalizedValue: t.NormalizedValue,
		PriorityRank:    t.PriorityRank,
		Status:          string(t.Status),
		CompletedValue:  t.CompletedValue,
		CompletedAt:     t.CompletedAt,
	}
}
