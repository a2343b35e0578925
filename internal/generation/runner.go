package generation

import (
	"context"
	"errors"
	"log/slog"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

// Runner calls the generator, validates the output as a unit and writes one
// audit row per attempt whatever the outcome.
type Runner struct {
	generator Generator
	logs      store.GenerationLogStore
}

func NewRunner(generator Generator, logs store.GenerationLogStore) *Runner {
	return &Runner{generator: generator, logs: logs}
}

// Questions returns the validated batch, a *ContractError, or an error
// wrapping ErrGeneratorFailed. Nothing is persisted besides the audit row.
func (r *Runner) Questions(ctx context.Context, companyID int64, prompt Prompt) ([]QuestionDraft, error) {
	return run(ctx, r, companyID, prompt, DecodeQuestions)
}

// Tasks is Questions for task batches.
func (r *Runner) Tasks(ctx context.Context, companyID int64, prompt Prompt) ([]model.TaskDraft, error) {
	return run(ctx, r, companyID, prompt, DecodeTasks)
}

func run[T any](ctx context.Context, r *Runner, companyID int64, prompt Prompt, decode func([]byte) ([]T, error)) ([]T, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		CompanyID: logger.Ptr(companyID),
		Component: "exitosx.generation.runner",
	})

	out, genErr := r.generator.Generate(ctx, prompt)
	entry := model.GenerationLog{
		CompanyID:        companyID,
		Kind:             prompt.Kind,
		PromptVersion:    prompt.Version,
		SystemPrompt:     prompt.System,
		UserPrompt:       prompt.User,
		RawOutput:        out.Raw,
		Model:            out.Model,
		LatencyMs:        logger.Ptr(int(out.Latency.Milliseconds())),
		PromptTokens:     logger.Ptr(out.PromptTokens),
		CompletionTokens: logger.Ptr(out.CompletionTokens),
	}

	if genErr != nil {
		if !errors.Is(genErr, ErrGeneratorFailed) {
			genErr = errors.Join(ErrGeneratorFailed, genErr)
		}
		entry.Outcome = model.GenerationFailed
		entry.Reason = genErr.Error()
		slog.WarnContext(ctx, "generation failed",
			"kind", prompt.Kind,
			"error", genErr)
		r.audit(ctx, entry)
		return nil, genErr
	}

	items, err := decode(out.Raw)
	if err != nil {
		entry.Outcome = model.GenerationRejected
		entry.Reason = err.Error()
		slog.WarnContext(ctx, "generated batch rejected",
			"kind", prompt.Kind,
			"reason", err.Error(),
			"raw_output", logger.Truncate(string(out.Raw), 500))
		r.audit(ctx, entry)
		return nil, err
	}

	entry.Outcome = model.GenerationAccepted
	entry.AcceptedCount = len(items)
	if _, err := r.logs.Create(ctx, entry); err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "generated batch accepted",
		"kind", prompt.Kind,
		"count", len(items),
		"model", out.Model,
		"latency_ms", out.Latency.Milliseconds())
	return items, nil
}

// audit records a failed attempt. A write failure is logged but never replaces
// the generation error the caller must see.
func (r *Runner) audit(ctx context.Context, entry model.GenerationLog) {
	if _, err := r.logs.Create(ctx, entry); err != nil {
		slog.ErrorContext(ctx, "failed to write generation log",
			"kind", entry.Kind,
			"outcome", entry.Outcome,
			"error", err)
	}
}
