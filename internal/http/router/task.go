package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/handler"
)

// TaskRouter lists under the company and transitions by task id.
func TaskRouter(companyTasks *gin.RouterGroup, tasks *gin.RouterGroup, handler *handler.TaskHandler) {
	companyTasks.GET("", handler.List)
	tasks.POST("/:task_id/transition", handler.Transition)
}
