package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/dto"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
)

type ValuationHandler struct {
	service service.ValuationService
}

func NewValuationHandler(service service.ValuationService) *ValuationHandler {
	return &ValuationHandler{service: service}
}

func (h *ValuationHandler) History(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}
	limit, ok := parseLimit(c)
	if !ok {
		return
	}

	snaps, err := h.service.History(c.Request.Context(), companyID, limit)
	if err != nil {
		respondError(c, err, "failed to list valuations")
		return
	}

	resp := make([]dto.ValuationResponse, 0, len(snaps))
	for _, s := range snaps {
		resp = append(resp, dto.NewValuationResponse(s))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ValuationHandler) Latest(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}

	snap, err := h.service.Latest(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "failed to get valuation")
		return
	}
	c.JSON(http.StatusOK, dto.NewValuationResponse(snap))
}
