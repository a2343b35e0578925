package logger

import "context"

type contextKey string

const logFieldsKey contextKey = "log_fields"

// LogFields contains structured fields automatically added to all logs within a context.
// Handlers and services enrich the context once and every downstream log line carries
// the company and pass identifiers.
type LogFields struct {
	CompanyID    *int64  // Company being scored or planned
	AssessmentID *int64  // Assessment whose responses feed the pass
	SnapshotID   *int64  // Valuation snapshot produced or consumed
	MessageID    *string // Redis stream message ID
	JobType      *string // Queue job type (e.g., "score_assessment")
	Component    string  // Component name (e.g., "exitosx.service.scoring")
}

// WithLogFields enriches context with structured log fields.
// Multiple calls merge fields, with newer non-nil/non-empty values taking precedence.
func WithLogFields(ctx context.Context, fields LogFields) context.Context {
	existing := GetLogFields(ctx)
	merged := mergeFields(existing, fields)
	return context.WithValue(ctx, logFieldsKey, merged)
}

// GetLogFields retrieves log fields from context.
// Returns empty LogFields if none are set.
func GetLogFields(ctx context.Context) LogFields {
	if fields, ok := ctx.Value(logFieldsKey).(LogFields); ok {
		return fields
	}
	return LogFields{}
}

func mergeFields(existing, next LogFields) LogFields {
	result := existing

	if next.CompanyID != nil {
		result.CompanyID = next.CompanyID
	}
	if next.AssessmentID != nil {
		result.AssessmentID = next.AssessmentID
	}
	if next.SnapshotID != nil {
		result.SnapshotID = next.SnapshotID
	}
	if next.MessageID != nil {
		result.MessageID = next.MessageID
	}
	if next.JobType != nil {
		result.JobType = next.JobType
	}
	if next.Component != "" {
		result.Component = next.Component
	}

	return result
}

// Ptr is a helper to create a pointer from a value.
// Useful for setting LogFields inline: logger.WithLogFields(ctx, logger.LogFields{CompanyID: logger.Ptr(id)})
func Ptr[T any](v T) *T {
	return &v
}

// Truncate truncates a string to maxLen characters, appending "..." if truncated.
// Used for raw generator output in log lines; the full text goes to generation_logs.
func Truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}
