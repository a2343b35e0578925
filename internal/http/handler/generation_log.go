package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/dto"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
)

type GenerationLogHandler struct {
	service service.GenerationLogService
}

func NewGenerationLogHandler(service service.GenerationLogService) *GenerationLogHandler {
	return &GenerationLogHandler{service: service}
}

func (h *GenerationLogHandler) List(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	kind := model.GenerationKind(c.DefaultQuery("kind", string(model.GenerationKindQuestions)))
	if kind != model.GenerationKindQuestions && kind != model.GenerationKindTasks {
		c.JSON(http.StatusBadRequest, gin.H{"error": "kind must be questions or tasks"})
		return
	}

	logs, err := h.service.List(c.Request.Context(), companyID, kind, limit)
	if err != nil {
		respondError(c, err, "failed to list generation logs")
		return
	}

	resp := make([]dto.GenerationLogResponse, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.NewGenerationLogResponse(l))
	}
	c.JSON(http.StatusOK, resp)
}
