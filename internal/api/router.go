package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/propertydesk/propertydesk/internal/api/handlers"
	"github.com/propertydesk/propertydesk/internal/api/middleware"
)

type Router struct {
	engine          *gin.Engine
	logger          *slog.Logger
	propertyHandler *handlers.PropertyHandler
	filterHandler   *handlers.FilterHandler
}

func NewRouter(
	logger *slog.Logger,
	propertyHandler *handlers.PropertyHandler,
	filterHandler *handlers.FilterHandler,
) *Router {
	return &Router{
		logger:          logger,
		propertyHandler: propertyHandler,
		filterHandler:   filterHandler,
	}
}

func (r *Router) Setup(mode string) *gin.Engine {
	gin.SetMode(mode)
	r.engine = gin.New()
	r.engine.Use(gin.Recovery())
	r.engine.Use(middleware.RequestLogger(r.logger))
	r.engine.Use(middleware.ErrorHandler(r.logger))

	r.setupRoutes()
	return r.engine
}

func (r *Router) setupRoutes() {
	api := r.engine.Group("/api")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api.GET("/status", r.propertyHandler.Status)

	properties := api.Group("/properties")
	{
		properties.GET("", r.propertyHandler.List)
		properties.GET("/view", r.propertyHandler.View)
		properties.POST("", r.propertyHandler.Create)
		properties.GET("/:id", r.propertyHandler.Get)
		properties.PUT("/:id", r.propertyHandler.Update)
		properties.DELETE("/:id", r.propertyHandler.Delete)
	}

	filters := api.Group("/filters")
	{
		filters.GET("", r.filterHandler.Get)
		filters.PATCH("", r.filterHandler.Set)
		filters.DELETE("", r.filterHandler.Clear)
	}
}
