package dto

type EnqueueJobRequest struct {
	JobType      string `json:"job_type" binding:"required"`
	CompanyID    int64  `json:"company_id,string" binding:"required"`
	AssessmentID *int64 `json:"assessment_id,string,omitempty"`
}

type EnqueueJobResponse struct {
	JobType      string  `json:"job_type"`
	CompanyID    int64   `json:"company_id,string"`
	AssessmentID *int64  `json:"assessment_id,string,omitempty"`
	TraceID      *string `json:"trace_id,omitempty"`
}
