package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Analyzer  string `json:"analyzer"`
	Sessions  int    `json:"sessions"`
}

// HandleHealth returns the health status of the service.
// A missing analyzer degrades the service but does not fail liveness.
func HandleHealth(c *gin.Context) {
	analyzerStatus := "unavailable"
	if currentAnalyzer() != nil {
		analyzerStatus = "ready"
	}

	status := "healthy"
	if analyzerStatus == "unavailable" {
		status = "degraded"
	}

	store, _ := sessionStore()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    status,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Analyzer:  analyzerStatus,
		Sessions:  store.Len(),
	})
}

// HandleReadiness returns whether the service is ready to accept searches
func HandleReadiness(c *gin.Context) {
	if currentAnalyzer() == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "not_ready",
			"reason": "analyzer_not_initialized",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
