package queue

import (
	"errors"
	"fmt"
)

type JobType string

const (
	JobTypeScoreAssessment   JobType = "score_assessment"
	JobTypeGenerateQuestions JobType = "generate_questions"
	JobTypeGenerateTasks     JobType = "generate_tasks"
)

func (t JobType) IsValid() bool {
	switch t {
	case JobTypeScoreAssessment, JobTypeGenerateQuestions, JobTypeGenerateTasks:
		return true
	}
	return false
}

var ErrInvalidJob = errors.New("invalid job")

// Job is one unit of pipeline work for a company.
type Job struct {
	Type         JobType
	CompanyID    int64
	AssessmentID *int64
	TraceID      *string
	Attempt      int
}

func (j Job) Validate() error {
	if !j.Type.IsValid() {
		return fmt.Errorf("%w: unknown job_type %q", ErrInvalidJob, j.Type)
	}
	if j.CompanyID <= 0 {
		return fmt.Errorf("%w: missing company_id", ErrInvalidJob)
	}
	if j.Type == JobTypeScoreAssessment && (j.AssessmentID == nil || *j.AssessmentID <= 0) {
		return fmt.Errorf("%w: missing assessment_id", ErrInvalidJob)
	}
	return nil
}
