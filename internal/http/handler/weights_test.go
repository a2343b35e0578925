package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/handler"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/scoring"
)

var _ = Describe("WeightHandler", func() {
	var (
		router *gin.Engine
		svc    *mockWeightService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockWeightService{}
		h := handler.NewWeightHandler(svc)
		router.GET("/companies/:company_id/weights", h.Get)
		router.PUT("/companies/:company_id/weights", h.Set)
		router.DELETE("/companies/:company_id/weights", h.Clear)
	})

	do := func(method, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, "/companies/7/weights", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("reports defaults when no override exists", func() {
		w := do(http.MethodGet, "")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["override"]).To(BeFalse())
		Expect(resp["weights"]).To(HaveKeyWithValue("FINANCIAL", 0.25))
	})

	It("passes the override through", func() {
		var got scoring.Weights
		svc.setFn = func(_ context.Context, _ int64, weights scoring.Weights) error {
			got = weights
			return nil
		}
		w := do(http.MethodPut, `{"weights":{"FINANCIAL":0.3,"TRANSFERABILITY":0.2,"OPERATIONAL":0.2,"MARKET":0.1,"LEGAL_TAX":0.1,"PERSONAL":0.1}}`)
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got[model.CategoryFinancial]).To(Equal(0.3))
	})

	It("returns 422 for weights that fail validation", func() {
		svc.setFn = func(_ context.Context, _ int64, weights scoring.Weights) error {
			return weights.Validate()
		}
		w := do(http.MethodPut, `{"weights":{"FINANCIAL":1,"MARKET":0.5}}`)
		Expect(w.Code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("returns 204 on clear", func() {
		Expect(do(http.MethodDelete, "").Code).To(Equal(http.StatusNoContent))
	})

	It("returns 500 on store failure", func() {
		svc.clearFn = func(context.Context, int64) error { return fmt.Errorf("deleting weights: boom") }
		Expect(do(http.MethodDelete, "").Code).To(Equal(http.StatusInternalServerError))
	})
})
