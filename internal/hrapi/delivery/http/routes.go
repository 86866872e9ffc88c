package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent/internal/catalog"
	"hr-agent/internal/middleware"
)

// RegisterRoutes mounts one endpoint per catalog route. Route paths are
// absolute, so r is normally the engine itself.
func RegisterRoutes(r gin.IRoutes, h *handler, cat *catalog.Catalog, mw middleware.Middleware) {
	for _, route := range cat.All() {
		r.Handle(string(route.Method), route.GinPath(), mw.RateLimit(), h.Route(route))
	}
}
