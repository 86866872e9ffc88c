package http

import (
	"github.com/gin-gonic/gin"

	"hr-agent/internal/catalog"
	"hr-agent/pkg/response"
)

// Route returns the handler of one catalog route. Malformed input is a 400;
// a failed dispatch is reported with HTTP 200 and success=false.
func (h *handler) Route(route catalog.Route) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		args, err := h.processRequest(c, route)
		if err != nil {
			h.l.Warnf(ctx, "internal.hrapi.delivery.http.Route: %s: %v", route.ID, err)
			response.Error(c, err)
			return
		}

		res := h.uc.Dispatch(ctx, route, args)
		if !res.Success {
			response.Fail(c, res.Error)
			return
		}
		response.OK(c, res.Data)
	}
}
