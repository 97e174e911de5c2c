package httpserver

import (
	"github.com/gin-gonic/gin"

	"hotel-concierge-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "Hotel Concierge Agent API"
	HealthVersion = "1.0.0"
	ServiceName   = "hotel-concierge-agent"
)

// healthCheck handles health check requests.
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck handles readiness check requests.
func (srv HTTPServer) readyCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "ready",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// liveCheck handles liveness check requests.
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	})
}
