package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/app-research-agent/internal/agent"
	"github.com/prefeitura-rio/app-research-agent/internal/api/handlers"
	"github.com/prefeitura-rio/app-research-agent/internal/config"
	middlewares "github.com/prefeitura-rio/app-research-agent/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// SetupRouter wires middleware, the agent endpoints, health probes and swagger
func SetupRouter(cfg *config.Config, router *agent.Router, logger *zap.Logger) (*gin.Engine, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := handlers.RegisterValidators(); err != nil {
		return nil, err
	}

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middlewares.RequestID())
	r.Use(middlewares.RequestTracing())
	r.Use(middlewares.AccessLog(logger))
	r.Use(corsMiddleware())

	agentHandler := handlers.NewAgentHandler(router, logger, cfg.MaxPromptLength, cfg.MaxUploadBytes)
	healthHandler := handlers.NewHealthHandler(router.SearchProvider(), router.CompletionProvider())

	api := r.Group("/api")
	{
		api.POST("/web-search", agentHandler.WebSearch)
		api.POST("/future-analysis", agentHandler.FutureAnalysis)
		api.POST("/auto-agent", agentHandler.AutoAgent)
		api.POST("/db-query", agentHandler.DBQuery)
		api.POST("/qa", agentHandler.QA)
		api.POST("/agent/:mode", agentHandler.Agent)
		api.GET("/arxiv/:query", agentHandler.ArxivSearch)
	}

	r.GET("/liveness", healthHandler.Liveness)
	r.GET("/readiness", healthHandler.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r, nil
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With, X-Request-ID")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "X-Request-ID, X-Search-Query-Source, X-Search-Query")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
