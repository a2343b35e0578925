package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/handler"
)

func WeightRouter(router *gin.RouterGroup, handler *handler.WeightHandler) {
	router.GET("", handler.Get)
	router.PUT("", handler.Set)
	router.DELETE("", handler.Clear)
}
