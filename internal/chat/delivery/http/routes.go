package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent/internal/middleware"
)

// RegisterRoutes maps the chat endpoints under rg. All of them are rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.POST("/hr_agent", mw.RateLimit(), h.Agent)
	rg.GET("/hr_suggestions", mw.RateLimit(), h.Suggestions)
	rg.GET("/hr_help", mw.RateLimit(), h.Help)
}
