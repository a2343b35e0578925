package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/dto"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
)

type JobHandler struct {
	service     service.JobService
	traceHeader string
}

func NewJobHandler(service service.JobService, traceHeader string) *JobHandler {
	return &JobHandler{
		service:     service,
		traceHeader: traceHeader,
	}
}

func (h *JobHandler) Enqueue(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.EnqueueJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid enqueue request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	traceID := c.GetHeader(h.traceHeader)
	if traceID == "" {
		if spanCtx := trace.SpanContextFromContext(ctx); spanCtx.IsValid() {
			traceID = spanCtx.TraceID().String()
		}
	}
	params := service.EnqueueParams{
		JobType:      queue.JobType(req.JobType),
		CompanyID:    req.CompanyID,
		AssessmentID: req.AssessmentID,
	}
	if traceID != "" {
		params.TraceID = &traceID
	}

	job, err := h.service.Enqueue(ctx, params)
	if err != nil {
		respondError(c, err, "failed to enqueue job")
		return
	}

	c.JSON(http.StatusAccepted, dto.EnqueueJobResponse{
		JobType:      string(job.Type),
		CompanyID:    job.CompanyID,
		AssessmentID: job.AssessmentID,
		TraceID:      job.TraceID,
	})
}
