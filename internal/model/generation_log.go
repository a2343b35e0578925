package model

import "time"

type GenerationKind string

const (
	GenerationKindQuestions GenerationKind = "questions"
	GenerationKindTasks     GenerationKind = "tasks"
)

type GenerationOutcome string

const (
	GenerationAccepted GenerationOutcome = "accepted"
	GenerationRejected GenerationOutcome = "rejected"
	GenerationFailed   GenerationOutcome = "failed"
)

// GenerationLog is the audit record of one generation attempt. Rows are never
// updated or deleted.
type GenerationLog struct {
	ID        int64             `json:"id"`
	CompanyID int64             `json:"company_id"`
	Kind      GenerationKind    `json:"kind"`
	Outcome   GenerationOutcome `json:"outcome"`

	PromptVersion string `json:"prompt_version"`
	SystemPrompt  string `json:"system_prompt"`
	UserPrompt    string `json:"user_prompt"`
	RawOutput     []byte `json:"raw_output,omitempty"`
	Reason        string `json:"reason,omitempty"`

	Model            string `json:"model"`
	LatencyMs        *int   `json:"latency_ms,omitempty"`
	PromptTokens     *int   `json:"prompt_tokens,omitempty"`
	CompletionTokens *int   `json:"completion_tokens,omitempty"`

	// AcceptedCount is the number of questions or tasks persisted from this attempt.
	AcceptedCount int `json:"accepted_count"`

	CreatedAt time.Time `json:"created_at"`
}
