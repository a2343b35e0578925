// Package generationtest provides a canned Generator and well-formed batches
// for tests that must not reach a live model.
package generationtest

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/bradfeldman/exit-osx-sub006/common/logger"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

// Generator replays Responses in order; the last one repeats. Err, when set,
// is returned instead.
type Generator struct {
	Responses [][]byte
	Err       error
	Model     string

	mu      sync.Mutex
	prompts []generation.Prompt
}

func (g *Generator) Generate(ctx context.Context, prompt generation.Prompt) (generation.Output, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	n := len(g.prompts)
	g.prompts = append(g.prompts, prompt)

	out := generation.Output{Model: g.Model}
	if out.Model == "" {
		out.Model = "fixture"
	}
	if err := ctx.Err(); err != nil {
		return out, fmt.Errorf("%w: %w", generation.ErrGeneratorFailed, err)
	}
	if g.Err != nil {
		return out, g.Err
	}
	if len(g.Responses) == 0 {
		return out, fmt.Errorf("%w: no fixture response", generation.ErrGeneratorFailed)
	}
	if n >= len(g.Responses) {
		n = len(g.Responses) - 1
	}
	out.Raw = g.Responses[n]
	return out, nil
}

// Prompts returns every prompt the generator has received.
func (g *Generator) Prompts() []generation.Prompt {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]generation.Prompt(nil), g.prompts...)
}

// QuestionBatch returns a payload that satisfies the question contract.
func QuestionBatch() generation.QuestionBatchPayload {
	var payload generation.QuestionBatchPayload
	for _, c := range model.Categories {
		for i := 0; i < generation.QuestionTargets[c]; i++ {
			tier, impact := model.IssueTierSignificant, 10.0
			switch i {
			case 0:
				tier, impact = model.IssueTierCritical, 14
			case 1:
				tier, impact = model.IssueTierOptimization, 6
			}
			payload.Questions = append(payload.Questions, generation.QuestionPayload{
				Category:        string(c),
				QuestionText:    fmt.Sprintf("%s question %d?", c, i+1),
				HelpText:        "Answer for the business as it runs today.",
				IssueTier:       string(tier),
				MaxImpactPoints: logger.Ptr(impact),
				Options: []generation.OptionPayload{
					{Text: "Not at all", ScoreValue: logger.Ptr(0.0)},
					{Text: "Partially", ScoreValue: logger.Ptr(0.33)},
					{Text: "Mostly", ScoreValue: logger.Ptr(0.67)},
					{Text: "Fully", ScoreValue: logger.Ptr(1.0)},
				},
			})
		}
	}
	return payload
}

// Task returns a valid task upgrading questionID from one level to the next.
func Task(questionID int64, tier model.IssueTier, effort model.EffortLevel, from, to float64) generation.TaskPayload {
	return generation.TaskPayload{
		Title:       "Document the process",
		Description: "A written, reviewed procedure exists and is followed.",
		QuestionID:  strconv.FormatInt(questionID, 10),
		Category:    string(model.CategoryOperational),
		IssueTier:   string(tier),
		EffortLevel: string(effort),
		Complexity:  string(model.ComplexityModerate),
		FromScore:   logger.Ptr(from),
		ToScore:     logger.Ptr(to),
	}
}

// JSON marshals v, panicking on error since fixtures are static.
func JSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return b
}
