package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/dto"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
)

type WeightHandler struct {
	service service.WeightService
}

func NewWeightHandler(service service.WeightService) *WeightHandler {
	return &WeightHandler{service: service}
}

func (h *WeightHandler) Get(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}

	weights, override, err := h.service.Get(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "failed to get weights")
		return
	}
	c.JSON(http.StatusOK, weightsResponse(companyID, weights, override))
}

func (h *WeightHandler) Set(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}

	var req dto.SetWeightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	weights := make(scoring.Weights, len(req.Weights))
	for category, w := range req.Weights {
		weights[model.Category(category)] = w
	}

	if err := h.service.Set(c.Request.Context(), companyID, weights); err != nil {
		respondError(c, err, "failed to set weights")
		return
	}
	c.JSON(http.StatusOK, weightsResponse(companyID, weights, true))
}

func (h *WeightHandler) Clear(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}

	if err := h.service.Clear(c.Request.Context(), companyID); err != nil {
		respondError(c, err, "failed to clear weights")
		return
	}
	c.Status(http.StatusNoContent)
}

func weightsResponse(companyID int64, weights scoring.Weights, override bool) dto.WeightsResponse {
	out := make(map[string]float64, len(weights))
	for c, w := range weights {
		out[string(c)] = w
	}
	return dto.WeightsResponse{CompanyID: companyID, Weights: out, Override: override}
}
