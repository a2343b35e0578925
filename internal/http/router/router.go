package router

import (
	"github.com/gin-gonic/gin"

	"github.com/bradfeldman/exit-osx-sub006/internal/http/handler"
	"github.com/bradfeldman/exit-osx-sub006/internal/http/middleware"
	"github.com/bradfeldman/exit-osx-sub006/internal/queue"
	"github.com/bradfeldman/exit-osx-sub006/internal/service"
)

type RouterConfig struct {
	TraceHeaderName string
	AdminAPIKey     string
}

func SetupRoutes(router *gin.Engine, services *service.Services, producer queue.Producer, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAdminAPIKey(cfg.AdminAPIKey))
	{
		JobRouter(v1.Group("/jobs"), handler.NewJobHandler(services.Jobs(producer), cfg.TraceHeaderName))

		company := v1.Group("/companies/:company_id")
		ValuationRouter(company.Group("/valuations"), handler.NewValuationHandler(services.Valuations()))
		WeightRouter(company.Group("/weights"), handler.NewWeightHandler(services.Weights()))
		GenerationLogRouter(company.Group("/generation-logs"), handler.NewGenerationLogHandler(services.GenerationLogs()))
		DossierRouter(company.Group("/dossier"), handler.NewDossierHandler(services.Dossiers()))

		taskHandler := handler.NewTaskHandler(services.Tasks())
		TaskRouter(company.Group("/tasks"), v1.Group("/tasks"), taskHandler)
	}
}
