package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/dto"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
)

type TaskHandler struct {
	service service.TaskService
}

func NewTaskHandler(service service.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

func (h *TaskHandler) List(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}

	tasks, err := h.service.List(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "failed to list tasks")
		return
	}

	resp := make([]dto.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		resp = append(resp, dto.NewTaskResponse(t))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TaskHandler) Transition(c *gin.Context) {
	taskID, ok := parseIDParam(c, "task_id")
	if !ok {
		return
	}

	var req dto.TransitionTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	to := model.TaskStatus(req.Status)
	if !to.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status " + req.Status})
		return
	}

	task, err := h.service.Transition(c.Request.Context(), taskID, to)
	if err != nil {
		respondError(c, err, "failed to update task")
		return
	}
	c.JSON(http.StatusOK, dto.NewTaskResponse(task))
}
