package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/handler"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

var _ = Describe("ValuationHandler", func() {
	var (
		router *gin.Engine
		svc    *mockValuationService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockValuationService{}
		h := handler.NewValuationHandler(svc)
		router.GET("/companies/:company_id/valuations", h.History)
		router.GET("/companies/:company_id/valuations/latest", h.Latest)
	})

	get := func(path string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		return w
	}

	It("passes the limit through", func() {
		var got int32
		svc.historyFn = func(_ context.Context, _ int64, limit int32) ([]model.ValuationSnapshot, error) {
			got = limit
			return []model.ValuationSnapshot{{ID: 2}, {ID: 1}}, nil
		}
		w := get("/companies/7/valuations?limit=5")
		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(got).To(Equal(int32(5)))

		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
	})

	It("rejects a malformed limit", func() {
		Expect(get("/companies/7/valuations?limit=lots").Code).To(Equal(http.StatusBadRequest))
	})

	It("serializes the figures of the latest snapshot", func() {
		svc.latestFn = func(_ context.Context, companyID int64) (model.ValuationSnapshot, error) {
			score, multiple, gap := 0.4, 3.8, 2400000.0
			return model.ValuationSnapshot{
				ID:             21,
				CompanyID:      companyID,
				Status:         model.ValuationStatusComputed,
				CategoryScores: map[model.Category]float64{model.CategoryFinancial: 0.4},
				OverallScore:   &score,
				FinalMultiple:  &multiple,
				ValueGap:       &gap,
			}, nil
		}
		w := get("/companies/7/valuations/latest")
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["final_multiple"]).To(Equal(3.8))
		Expect(resp["value_gap"]).To(Equal(2400000.0))
		Expect(resp["category_scores"]).To(HaveKeyWithValue("FINANCIAL", 0.4))
	})

	It("returns 404 when the company was never scored", func() {
		svc.latestFn = func(context.Context, int64) (model.ValuationSnapshot, error) {
			return model.ValuationSnapshot{}, store.ErrNotFound
		}
		Expect(get("/companies/7/valuations/latest").Code).To(Equal(http.StatusNotFound))
	})
})
