package generation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

const (
	QuestionBatchSize  = 30
	OptionsPerQuestion = 4
	MaxTaskBatchSize   = 60
)

// ErrContractViolation is matched by every *ContractError.
var ErrContractViolation = errors.New("generation contract violation")

var (
	ErrMalformedOutput      = errors.New("malformed output")
	ErrBatchSize            = errors.New("wrong batch size")
	ErrCategoryDistribution = errors.New("category distribution mismatch")
	ErrUnknownEnum          = errors.New("value outside closed set")
	ErrMissingText          = errors.New("missing text")
	ErrMissingField         = errors.New("missing required field")
	ErrImpactOutOfRange     = errors.New("max impact points outside tier range")
	ErrOptionCount          = errors.New("wrong option count")
	ErrOptionScores         = errors.New("option scores do not match levels")
	ErrInvalidReference     = errors.New("invalid question reference")
	ErrNotAdjacentUpgrade   = errors.New("not a single-level upgrade")
	ErrDuplicateUpgrade     = errors.New("duplicate upgrade path")
)

// QuestionTargets is the exact number of questions each category must receive.
var QuestionTargets = map[model.Category]int{
	model.CategoryFinancial:       7,
	model.CategoryTransferability: 6,
	model.CategoryOperational:     6,
	model.CategoryMarket:          5,
	model.CategoryLegalTax:        3,
	model.CategoryPersonal:        3,
}

// ImpactRange bounds max impact points for a tier, inclusive on both ends.
type ImpactRange struct {
	Min float64
	Max float64
}

func (r ImpactRange) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

var TierImpactRanges = map[model.IssueTier]ImpactRange{
	model.IssueTierCritical:     {Min: 12, Max: 15},
	model.IssueTierSignificant:  {Min: 8, Max: 12},
	model.IssueTierOptimization: {Min: 5, Max: 8},
}

// ContractError pinpoints the first violation in a generated batch. Index is
// the offending item, or -1 for batch-level violations.
type ContractError struct {
	Kind     model.GenerationKind
	Index    int
	Field    string
	Expected string
	Received string
	Cause    error
}

func (e *ContractError) Error() string {
	path := string(e.Kind)
	if e.Index >= 0 {
		path = fmt.Sprintf("%s[%d]", path, e.Index)
	}
	if e.Field != "" {
		path += "." + e.Field
	}
	return fmt.Sprintf("%s: %v: expected %s, received %s", path, e.Cause, e.Expected, e.Received)
}

func (e *ContractError) Unwrap() []error {
	return []error{ErrContractViolation, e.Cause}
}

func violation(kind model.GenerationKind, index int, field string, cause error, expected, received string) *ContractError {
	return &ContractError{
		Kind:     kind,
		Index:    index,
		Field:    field,
		Expected: expected,
		Received: received,
		Cause:    cause,
	}
}

// QuestionDraft is a validated generated question, options ordered worst to best.
type QuestionDraft struct {
	Category        model.Category
	QuestionText    string
	HelpText        string
	IssueTier       model.IssueTier
	MaxImpactPoints float64
	Options         []OptionDraft
}

type OptionDraft struct {
	Text       string
	ScoreValue float64
}

// DecodeQuestions parses and validates a raw question batch as a unit.
func DecodeQuestions(raw []byte) ([]QuestionDraft, error) {
	var payload QuestionBatchPayload
	if err := decodeStrict(raw, &payload); err != nil {
		return nil, violation(model.GenerationKindQuestions, -1, "", ErrMalformedOutput,
			`{"questions": [...]}`, err.Error())
	}
	return ValidateQuestions(payload)
}

// DecodeTasks parses and validates a raw task batch as a unit.
func DecodeTasks(raw []byte) ([]model.TaskDraft, error) {
	var payload TaskBatchPayload
	if err := decodeStrict(raw, &payload); err != nil {
		return nil, violation(model.GenerationKindTasks, -1, "", ErrMalformedOutput,
			`{"tasks": [...]}`, err.Error())
	}
	return ValidateTasks(payload)
}

func decodeStrict(raw []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("trailing data after JSON document")
	}
	return nil
}

// ValidateQuestions accepts the batch only if every question satisfies the
// contract and the category distribution matches QuestionTargets exactly.
func ValidateQuestions(payload QuestionBatchPayload) ([]QuestionDraft, error) {
	const kind = model.GenerationKindQuestions

	if len(payload.Questions) != QuestionBatchSize {
		return nil, violation(kind, -1, "questions", ErrBatchSize,
			strconv.Itoa(QuestionBatchSize), strconv.Itoa(len(payload.Questions)))
	}

	drafts := make([]QuestionDraft, 0, len(payload.Questions))
	counts := make(map[model.Category]int, len(QuestionTargets))
	for i, q := range payload.Questions {
		draft, err := validateQuestion(i, q)
		if err != nil {
			return nil, err
		}
		counts[draft.Category]++
		drafts = append(drafts, draft)
	}

	for _, c := range model.Categories {
		if counts[c] != QuestionTargets[c] {
			return nil, violation(kind, -1, "category", ErrCategoryDistribution,
				fmt.Sprintf("%d %s questions", QuestionTargets[c], c),
				strconv.Itoa(counts[c]))
		}
	}

	return drafts, nil
}

func validateQuestion(i int, q QuestionPayload) (QuestionDraft, error) {
	const kind = model.GenerationKindQuestions

	category := model.Category(q.Category)
	if !category.IsValid() {
		return QuestionDraft{}, violation(kind, i, "category", ErrUnknownEnum,
			"one of FINANCIAL, TRANSFERABILITY, OPERATIONAL, MARKET, LEGAL_TAX, PERSONAL", quote(q.Category))
	}
	text := strings.TrimSpace(q.QuestionText)
	if text == "" {
		return QuestionDraft{}, violation(kind, i, "question_text", ErrMissingText, "non-empty text", quote(q.QuestionText))
	}
	tier := model.IssueTier(q.IssueTier)
	if !tier.IsValid() {
		return QuestionDraft{}, violation(kind, i, "issue_tier", ErrUnknownEnum,
			"one of CRITICAL, SIGNIFICANT, OPTIMIZATION", quote(q.IssueTier))
	}
	r := TierImpactRanges[tier]
	if q.MaxImpactPoints == nil {
		return QuestionDraft{}, violation(kind, i, "max_impact_points", ErrMissingField,
			fmt.Sprintf("%s range %g-%g", tier, r.Min, r.Max), "nothing")
	}
	impact := *q.MaxImpactPoints
	if !isFinite(impact) || !r.Contains(impact) {
		return QuestionDraft{}, violation(kind, i, "max_impact_points", ErrImpactOutOfRange,
			fmt.Sprintf("%s range %g-%g", tier, r.Min, r.Max), formatScore(impact))
	}

	if len(q.Options) != OptionsPerQuestion {
		return QuestionDraft{}, violation(kind, i, "options", ErrOptionCount,
			strconv.Itoa(OptionsPerQuestion), strconv.Itoa(len(q.Options)))
	}
	options := make([]OptionDraft, OptionsPerQuestion)
	for j, o := range q.Options {
		field := fmt.Sprintf("options[%d]", j)
		if strings.TrimSpace(o.Text) == "" {
			return QuestionDraft{}, violation(kind, i, field+".text", ErrMissingText, "non-empty text", quote(o.Text))
		}
		// Options must be listed worst to best, which pins each position to one level.
		want := model.ScoreLevels[j]
		if o.ScoreValue == nil {
			return QuestionDraft{}, violation(kind, i, field+".score_value", ErrMissingField,
				formatScore(want), "nothing")
		}
		if !model.SameScore(*o.ScoreValue, want) {
			return QuestionDraft{}, violation(kind, i, field+".score_value", ErrOptionScores,
				formatScore(want), formatScore(*o.ScoreValue))
		}
		options[j] = OptionDraft{Text: strings.TrimSpace(o.Text), ScoreValue: want}
	}

	return QuestionDraft{
		Category:        category,
		QuestionText:    text,
		HelpText:        strings.TrimSpace(q.HelpText),
		IssueTier:       tier,
		MaxImpactPoints: impact,
		Options:         options,
	}, nil
}

// ValidateTasks accepts the batch only if every task declares closed-set
// metadata and a single-level upgrade on a well-formed question id.
func ValidateTasks(payload TaskBatchPayload) ([]model.TaskDraft, error) {
	const kind = model.GenerationKindTasks

	if n := len(payload.Tasks); n < 1 || n > MaxTaskBatchSize {
		return nil, violation(kind, -1, "tasks", ErrBatchSize,
			fmt.Sprintf("1-%d tasks", MaxTaskBatchSize), strconv.Itoa(n))
	}

	type upgradePath struct {
		questionID int64
		from       int
	}
	seen := make(map[upgradePath]int, len(payload.Tasks))

	drafts := make([]model.TaskDraft, 0, len(payload.Tasks))
	for i, t := range payload.Tasks {
		draft, err := validateTask(i, t)
		if err != nil {
			return nil, err
		}
		key := upgradePath{questionID: draft.QuestionID, from: model.ScoreLevelIndex(draft.FromScore)}
		if first, dup := seen[key]; dup {
			return nil, violation(kind, i, "question_id", ErrDuplicateUpgrade,
				fmt.Sprintf("upgrade path not already used by tasks[%d]", first), t.QuestionID)
		}
		seen[key] = i
		drafts = append(drafts, draft)
	}
	return drafts, nil
}

func validateTask(i int, t TaskPayload) (model.TaskDraft, error) {
	const kind = model.GenerationKindTasks

	title := strings.TrimSpace(t.Title)
	if title == "" {
		return model.TaskDraft{}, violation(kind, i, "title", ErrMissingText, "non-empty text", quote(t.Title))
	}
	description := strings.TrimSpace(t.Description)
	if description == "" {
		return model.TaskDraft{}, violation(kind, i, "description", ErrMissingText, "non-empty text", quote(t.Description))
	}
	questionID, err := strconv.ParseInt(strings.TrimSpace(t.QuestionID), 10, 64)
	if err != nil || questionID <= 0 {
		return model.TaskDraft{}, violation(kind, i, "question_id", ErrInvalidReference,
			"positive integer id", quote(t.QuestionID))
	}
	category := model.Category(t.Category)
	if !category.IsValid() {
		return model.TaskDraft{}, violation(kind, i, "category", ErrUnknownEnum,
			"one of FINANCIAL, TRANSFERABILITY, OPERATIONAL, MARKET, LEGAL_TAX, PERSONAL", quote(t.Category))
	}
	tier := model.IssueTier(t.IssueTier)
	if !tier.IsValid() {
		return model.TaskDraft{}, violation(kind, i, "issue_tier", ErrUnknownEnum,
			"one of CRITICAL, SIGNIFICANT, OPTIMIZATION", quote(t.IssueTier))
	}
	effort := model.EffortLevel(t.EffortLevel)
	if !effort.IsValid() {
		return model.TaskDraft{}, violation(kind, i, "effort_level", ErrUnknownEnum,
			"one of MINIMAL, LOW, MODERATE, HIGH, MAJOR", quote(t.EffortLevel))
	}
	complexity := model.Complexity(t.Complexity)
	if !complexity.IsValid() {
		return model.TaskDraft{}, violation(kind, i, "complexity", ErrUnknownEnum,
			"one of SIMPLE, MODERATE, COMPLEX, STRATEGIC", quote(t.Complexity))
	}

	if t.FromScore == nil {
		return model.TaskDraft{}, violation(kind, i, "from_score", ErrMissingField,
			"one of 0.00, 0.33, 0.67", "nothing")
	}
	from := model.ScoreLevelIndex(*t.FromScore)
	if from < 0 || from == len(model.ScoreLevels)-1 {
		return model.TaskDraft{}, violation(kind, i, "from_score", ErrNotAdjacentUpgrade,
			"one of 0.00, 0.33, 0.67", formatScore(*t.FromScore))
	}
	if t.ToScore == nil {
		return model.TaskDraft{}, violation(kind, i, "to_score", ErrMissingField,
			formatScore(model.ScoreLevels[from+1]), "nothing")
	}
	if !model.IsAdjacentUpgrade(*t.FromScore, *t.ToScore) {
		return model.TaskDraft{}, violation(kind, i, "to_score", ErrNotAdjacentUpgrade,
			formatScore(model.ScoreLevels[from+1]), formatScore(*t.ToScore))
	}

	return model.TaskDraft{
		Title:       title,
		Description: description,
		QuestionID:  questionID,
		Category:    category,
		IssueTier:   tier,
		EffortLevel: effort,
		Complexity:  complexity,
		FromScore:   model.ScoreLevels[from],
		ToScore:     model.ScoreLevels[from+1],
	}, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func quote(s string) string {
	return strconv.Quote(s)
}
