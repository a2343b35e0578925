package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/allocation"
	"github.com/bradfeldman/exit-osx-sub006/internal/generation"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

// respondError maps service errors onto status codes. Anything unrecognised is
// logged and reported as fallback.
func respondError(c *gin.Context, err error, fallback string) {
	ctx := c.Request.Context()

	var contractErr *generation.ContractError
	switch {
	case errors.As(err, &contractErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":    "generated batch rejected",
			"reason":   contractErr.Error(),
			"index":    contractErr.Index,
			"field":    contractErr.Field,
			"expected": contractErr.Expected,
			"received": contractErr.Received,
		})
	case errors.Is(err, model.ErrConfiguration),
		errors.Is(err, queue.ErrInvalidJob):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, service.ErrCompanyNotFound),
		errors.Is(err, service.ErrNoSnapshot):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, allocation.ErrInvalidTransition),
		errors.Is(err, service.ErrAssessmentNotCompleted),
		errors.Is(err, service.ErrAssessmentMismatch),
		errors.Is(err, service.ErrUnpricedSnapshot):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		slog.ErrorContext(ctx, fallback, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}

func parseLimit(c *gin.Context) (int32, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return 0, false
	}
	return int32(limit), true
}
