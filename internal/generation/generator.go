package generation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/invopop/jsonschema"

	"github.com/bradfeldman/exit-osx-sub006/common/llm"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

// ErrGeneratorFailed wraps transport failures and timeouts of the external
// generator. Like a contract violation it rejects the whole batch.
var ErrGeneratorFailed = errors.New("generator failed")

// Prompt is one generation request.
type Prompt struct {
	Kind       model.GenerationKind
	Version    string
	System     string
	User       string
	SchemaName string
	Schema     *jsonschema.Schema
}

// Output is the untrusted generator response. Raw is validated before use.
type Output struct {
	Raw              []byte
	Model            string
	Latency          time.Duration
	PromptTokens     int
	CompletionTokens int
}

// Generator turns a prompt into a JSON document. Implementations must honour
// ctx cancellation and return partial output only alongside an error.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (Output, error)
}

type LLMGeneratorConfig struct {
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	// MaxRetries covers transport errors that arrive before any output.
	MaxRetries   int
	RetryBackoff time.Duration
}

type llmGenerator struct {
	client llm.Client
	cfg    LLMGeneratorConfig
}

// NewLLMGenerator bounds every call to the client by cfg.Timeout.
func NewLLMGenerator(client llm.Client, cfg LLMGeneratorConfig) Generator {
	if cfg.RetryBackoff <= 0 {
		cfg.RetryBackoff = time.Second
	}
	return &llmGenerator{client: client, cfg: cfg}
}

func (g *llmGenerator) Generate(ctx context.Context, prompt Prompt) (Output, error) {
	if g.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.cfg.Timeout)
		defer cancel()
	}

	req := llm.Request{
		SystemPrompt: prompt.System,
		UserPrompt:   prompt.User,
		SchemaName:   prompt.SchemaName,
		Schema:       prompt.Schema,
		MaxTokens:    g.cfg.MaxTokens,
		Temperature:  llm.Temp(g.cfg.Temperature),
	}

	start := time.Now()
	var resp *llm.Response
	var err error
	for attempt := 0; ; attempt++ {
		resp, err = g.client.Complete(ctx, req)
		if err == nil || attempt >= g.cfg.MaxRetries || !llm.IsRetryable(ctx, err) {
			break
		}
		slog.WarnContext(ctx, "generator call retry",
			"kind", prompt.Kind,
			"attempt", attempt+1,
			"error", err)
		select {
		case <-ctx.Done():
			err = ctx.Err()
		case <-time.After(time.Duration(1<<attempt) * g.cfg.RetryBackoff):
			continue
		}
		break
	}
	out := Output{Model: g.client.Model(), Latency: time.Since(start)}
	if err != nil {
		return out, fmt.Errorf("%w: %w", ErrGeneratorFailed, err)
	}

	out.Raw = resp.Content
	out.PromptTokens = resp.PromptTokens
	out.CompletionTokens = resp.CompletionTokens
	if resp.FinishReason == "length" {
		return out, fmt.Errorf("%w: output truncated at max tokens", ErrGeneratorFailed)
	}
	return out, nil
}
