package dto

import (
	"time"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

// GenerationLogResponse omits the prompts and raw output; they stay in the
// audit table.
type GenerationLogResponse struct {
	ID            int64     `json:"id,string"`
	Kind          string    `json:"kind"`
	Outcome       string    `json:"outcome"`
	PromptVersion string    `json:"prompt_version"`
	Reason        string    `json:"reason,omitempty"`
	Model         string    `json:"model"`
	LatencyMs     *int      `json:"latency_ms,omitempty"`
	AcceptedCount int       `json:"accepted_count"`
	CreatedAt     time.Time `json:"created_at"`
}

func NewGenerationLogResponse(l model.GenerationLog) GenerationLogResponse {
	return GenerationLogResponse{
		ID:            l.ID,
		Kind:          string(l.Kind),
		Outcome:       string(l.Outcome),
		PromptVersion: l.PromptVersion,
		Reason:        l.Reason,
		Model:         l.Model,
		LatencyMs:     l.LatencyMs,
		AcceptedCount: l.AcceptedCount,
		CreatedAt:     l.CreatedAt,
	}
}
