package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/handler"
)

func ValuationRouter(router *gin.RouterGroup, handler *handler.ValuationHandler) {
	router.GET("", handler.History)
	router.GET("/latest", handler.Latest)
}

func DossierRouter(router *gin.RouterGroup, handler *handler.DossierHandler) {
	router.GET("", handler.Get)
}

func GenerationLogRouter(router *gin.RouterGroup, handler *handler.GenerationLogHandler) {
	router.GET("", handler.List)
}
