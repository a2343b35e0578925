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

	"github.com/bradfeldman/exit-osx-sub006/internal/allocation"
	"github.com/bradfeldman/exit-osx-sub006/internal/http/handler"
	"github.com/bradfeldman/exit-osx-sub006/internal/model"
	"github.com/bradfeldman/exit-osx-sub006/internal/store"
)

var _ = Describe("TaskHandler", func() {
	var (
		router *gin.Engine
		svc    *mockTaskService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockTaskService{}
		h := handler.NewTaskHandler(svc)
		router.GET("/companies/:company_id/tasks", h.List)
		router.POST("/tasks/:task_id/transition", h.Transition)
	})

	transition := func(path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	It("returns the completed task with its frozen value", func() {
		svc.transitionFn = func(_ context.Context, id int64, to model.TaskStatus) (model.Task, error) {
			v := 61200.0
			return model.Task{ID: id, Status: to, NormalizedValue: v, CompletedValue: &v}, nil
		}

		w := transition("/tasks/5/transition", `{"status":"COMPLETED"}`)
		Expect(w.Code).To(Equal(http.StatusOK))

		var resp map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp["status"]).To(Equal("COMPLETED"))
		Expect(resp["completed_value"]).To(Equal(61200.0))
		Expect(resp["id"]).To(Equal("5"))
	})

	It("returns 409 for a disallowed move", func() {
		svc.transitionFn = func(context.Context, int64, model.TaskStatus) (model.Task, error) {
			return model.Task{}, fmt.Errorf("%w: COMPLETED -> PENDING", allocation.ErrInvalidTransition)
		}
		Expect(transition("/tasks/5/transition", `{"status":"PENDING"}`).Code).To(Equal(http.StatusConflict))
	})

	It("returns 404 for an unknown task", func() {
		svc.transitionFn = func(context.Context, int64, model.TaskStatus) (model.Task, error) {
			return model.Task{}, fmt.Errorf("getting task: %w", store.ErrNotFound)
		}
		Expect(transition("/tasks/5/transition", `{"status":"IN_PROGRESS"}`).Code).To(Equal(http.StatusNotFound))
	})

	It("returns 400 for an unknown status", func() {
		Expect(transition("/tasks/5/transition", `{"status":"DONE"}`).Code).To(Equal(http.StatusBadRequest))
	})

	It("returns 400 for a malformed id", func() {
		Expect(transition("/tasks/abc/transition", `{"status":"PENDING"}`).Code).To(Equal(http.StatusBadRequest))
	})

	It("lists tasks in stored order", func() {
		svc.listFn = func(_ context.Context, companyID int64) ([]model.Task, error) {
			return []model.Task{{ID: 1, CompanyID: companyID, PriorityRank: 1}, {ID: 2, CompanyID: companyID, PriorityRank: 2}}, nil
		}
		req := httptest.NewRequest(http.MethodGet, "/companies/7/tasks", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		Expect(w.Code).To(Equal(http.StatusOK))
		var resp []map[string]any
		Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp).To(HaveLen(2))
		Expect(resp[0]["priority_rank"]).To(Equal(1.0))
	})
})
