package httpserver

import (
	"github.com/gin-gonic/gin"

	"hr-agent/pkg/response"
)

// Health response constants (single source for version and service identity).
const (
	HealthMessage = "HR Agent API"
	HealthVersion = "1.0.0"
	ServiceName   = "hr-agent"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, srv.status("healthy"))
}

// readyCheck reports ready once the Data Service backend answers.
// @Summary Readiness Check
// @Description Check if the API and its Data Service backend can serve traffic
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Failure 500 {object} response.Resp "Backend unavailable"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	if srv.ready != nil {
		if err := srv.ready(c.Request.Context()); err != nil {
			srv.l.Warnf(c.Request.Context(), "internal.httpserver.readyCheck: %v", err)
			response.InternalError(c, err)
			return
		}
	}
	response.OK(c, srv.status("ready"))
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, srv.status("alive"))
}

func (srv HTTPServer) status(s string) gin.H {
	return gin.H{
		"status":  s,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
		"routes":  len(srv.catalog.All()),
	}
}
