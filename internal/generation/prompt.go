package generation

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bradfeldman/exit-osx-sub006/common/llm"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
)

const (
	QuestionPromptVersion = "questions-v1"
	TaskPromptVersion     = "tasks-v1"
)

var (
	questionSchema = llm.GenerateSchema[QuestionBatchPayload]()
	taskSchema     = llm.GenerateSchema[TaskBatchPayload]()
)

const questionSystemPrompt = `You write buyer-readiness assessment questions for owners of small and mid-sized companies preparing for a sale.

Return exactly 30 questions. Category counts must be exact:
FINANCIAL 7, TRANSFERABILITY 6, OPERATIONAL 6, MARKET 5, LEGAL_TAX 3, PERSONAL 3.

Every question has exactly four options ordered from worst to best with score_value 0, 0.33, 0.67 and 1.
Assign issue_tier by how much a buyer would discount the business for a poor answer, and keep max_impact_points inside the tier range:
CRITICAL 12-15, SIGNIFICANT 8-12, OPTIMIZATION 5-8.

Write questions specific to the company described. Do not repeat a question.`

const taskSystemPrompt = `You write remediation tasks that move one assessment answer up by exactly one level.

Each task targets one of the listed upgrade candidates: copy its question_id verbatim and use its from_score and to_score.
Never skip a level and never propose a downgrade. Use each upgrade path at most once.
Keep the candidate's category and issue_tier. Estimate effort_level (MINIMAL, LOW, MODERATE, HIGH, MAJOR) and complexity (SIMPLE, MODERATE, COMPLEX, STRATEGIC) honestly.
Titles are short imperatives; descriptions say what done looks like. Return between 1 and 60 tasks.`

// QuestionContext is the input of a question generation pass.
type QuestionContext struct {
	Dossier           model.Dossier
	WeakestCategories []scoring.CategoryScore
}

func BuildQuestionPrompt(qc QuestionContext) Prompt {
	var b strings.Builder
	d := qc.Dossier

	fmt.Fprintf(&b, "Company: %s\n", d.Identity.Name)
	if d.Identity.Sector != "" {
		fmt.Fprintf(&b, "Sector: %s\n", d.Identity.Sector)
	}
	if d.Financials.AnnualRevenue != nil {
		fmt.Fprintf(&b, "Annual revenue: %s\n", money(*d.Financials.AnnualRevenue))
	}
	if d.Financials.EBITDA != nil {
		fmt.Fprintf(&b, "EBITDA: %s\n", money(*d.Financials.EBITDA))
	}

	if len(qc.WeakestCategories) > 0 {
		b.WriteString("\nWeakest categories from the last assessment:\n")
		for _, cs := range qc.WeakestCategories {
			fmt.Fprintf(&b, "- %s: %.2f over %d answers\n", cs.Category, cs.Score, cs.Answered)
		}
	} else {
		b.WriteString("\nNo completed assessment yet.\n")
	}

	if len(d.RiskSignals) > 0 {
		b.WriteString("\nOpen risk signals:\n")
		for _, rs := range d.RiskSignals {
			fmt.Fprintf(&b, "- [%s/%s] %s\n", rs.Category, rs.Severity, rs.Summary)
		}
	}

	return Prompt{
		Kind:       model.GenerationKindQuestions,
		Version:    QuestionPromptVersion,
		System:     questionSystemPrompt,
		User:       b.String(),
		SchemaName: "question_batch",
		Schema:     questionSchema,
	}
}

// TaskContext is the input of a task generation pass.
type TaskContext struct {
	Snapshot         model.ValuationSnapshot
	WeakestResponses []model.ScoredResponse
}

func BuildTaskPrompt(tc TaskContext) Prompt {
	var b strings.Builder
	snap := tc.Snapshot

	if snap.OverallScore != nil {
		fmt.Fprintf(&b, "Buyer readiness: %.2f\n", *snap.OverallScore)
	}
	if snap.ValueGap != nil {
		fmt.Fprintf(&b, "Value gap: %s\n", money(*snap.ValueGap))
	}
	for _, c := range model.Categories {
		if s, ok := snap.CategoryScores[c]; ok {
			fmt.Fprintf(&b, "%s: %.2f\n", c, s)
		}
	}

	b.WriteString("\nUpgrade candidates:\n")
	for _, r := range tc.WeakestResponses {
		idx := model.ScoreLevelIndex(r.ScoreValue)
		if idx < 0 || idx == len(model.ScoreLevels)-1 {
			continue
		}
		fmt.Fprintf(&b, "- question_id %q [%s, %s] %q answered %q: from_score %s to_score %s\n",
			strconv.FormatInt(r.QuestionID, 10), r.Category, r.IssueTier, r.QuestionText, r.OptionText,
			formatScore(model.ScoreLevels[idx]), formatScore(model.ScoreLevels[idx+1]))
	}

	return Prompt{
		Kind:       model.GenerationKindTasks,
		Version:    TaskPromptVersion,
		System:     taskSystemPrompt,
		User:       b.String(),
		SchemaName: "task_batch",
		Schema:     taskSchema,
	}
}

func money(v float64) string {
	return "$" + strconv.FormatFloat(v, 'f', 0, 64)
}
