package handler

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the page, the JSON API and the probes.
// api is usually r.Group("/api") with its own middleware.
func RegisterRoutes(r *gin.Engine, api *gin.RouterGroup) {
	// Health check endpoints
	r.GET("/health", HandleHealth)
	r.GET("/ready", HandleReadiness)

	r.GET("/", HandleIndex)
	r.POST("/search", HandleSearch)
	r.POST("/reset", HandleReset)

	api.POST("/search", HandleAPISearch)
	api.GET("/state", HandleAPIState)
	api.POST("/reset", HandleAPIReset)
}
