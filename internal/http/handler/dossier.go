package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/model"
)

// DossierBuilder is satisfied by *dossier.Aggregator.
type DossierBuilder interface {
	Build(ctx context.Context, companyID int64) (model.Dossier, error)
}

type DossierHandler struct {
	builder DossierBuilder
}

func NewDossierHandler(builder DossierBuilder) *DossierHandler {
	return &DossierHandler{builder: builder}
}

// Get builds the dossier live without persisting a new version.
func (h *DossierHandler) Get(c *gin.Context) {
	companyID, ok := parseIDParam(c, "company_id")
	if !ok {
		return
	}

	d, err := h.builder.Build(c.Request.Context(), companyID)
	if err != nil {
		respondError(c, err, "failed to build dossier")
		return
	}
	c.JSON(http.StatusOK, d)
}
