package generation

// Wire types are what the generator is asked to return. They are decoded
// strictly and then validated into drafts; nothing downstream reads them.
// Numeric fields are pointers so an absent value is told apart from 0.

type QuestionBatchPayload struct {
	Questions []QuestionPayload `json:"questions" jsonschema:"description=Exactly 30 assessment questions"`
}

type QuestionPayload struct {
	Category        string          `json:"category" jsonschema:"enum=FINANCIAL,enum=TRANSFERABILITY,enum=OPERATIONAL,enum=MARKET,enum=LEGAL_TAX,enum=PERSONAL"`
	QuestionText    string          `json:"question_text"`
	HelpText        string          `json:"help_text"`
	IssueTier       string          `json:"issue_tier" jsonschema:"enum=CRITICAL,enum=SIGNIFICANT,enum=OPTIMIZATION"`
	MaxImpactPoints *float64        `json:"max_impact_points" jsonschema:"description=CRITICAL 12-15 / SIGNIFICANT 8-12 / OPTIMIZATION 5-8"`
	Options         []OptionPayload `json:"options" jsonschema:"description=Four options from worst to best"`
}

type OptionPayload struct {
	Text       string   `json:"text"`
	ScoreValue *float64 `json:"score_value" jsonschema:"enum=0,enum=0.33,enum=0.67,enum=1"`
}

type TaskBatchPayload struct {
	Tasks []TaskPayload `json:"tasks" jsonschema:"description=Between 1 and 60 remediation tasks"`
}

// TaskPayload.QuestionID is the decimal id of the question the task upgrades.
// Ids travel as strings because they exceed the float64 integer range.
type TaskPayload struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	QuestionID  string   `json:"question_id"`
	Category    string   `json:"category" jsonschema:"enum=FINANCIAL,enum=TRANSFERABILITY,enum=OPERATIONAL,enum=MARKET,enum=LEGAL_TAX,enum=PERSONAL"`
	IssueTier   string   `json:"issue_tier" jsonschema:"enum=CRITICAL,enum=SIGNIFICANT,enum=OPTIMIZATION"`
	EffortLevel string   `json:"effort_level" jsonschema:"enum=MINIMAL,enum=LOW,enum=MODERATE,enum=HIGH,enum=MAJOR"`
	Complexity  string   `json:"complexity" jsonschema:"enum=SIMPLE,enum=MODERATE,enum=COMPLEX,enum=STRATEGIC"`
	FromScore   *float64 `json:"from_score" jsonschema:"enum=0,enum=0.33,enum=0.67"`
	ToScore     *float64 `json:"to_score" jsonschema:"enum=0.33,enum=0.67,enum=1"`
}
