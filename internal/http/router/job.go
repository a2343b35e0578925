package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/handler"
)

func JobRouter(router *gin.RouterGroup, handler *handler.JobHandler) {
	router.POST("", handler.Enqueue)
}
