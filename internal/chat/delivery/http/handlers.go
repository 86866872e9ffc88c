package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hr-agent/pkg/response"
)

// Agent godoc
// @Summary     Run a free-text HR request
// @Description Routes the message to one HR operation, runs it and returns the rendered reply.
// @Description Application failures are returned with HTTP 200 and success=false.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body agentReq true "Message"
// @Success     200 {object} agentResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /chat/hr_agent [POST]
func (h *handler) Agent(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAgentReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	out, err := h.uc.Handle(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Handle: %v", err)
		h.reportError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAgentResp(out))
}

// Suggestions godoc
// @Summary     Example messages
// @Tags        Chat
// @Produce     json
// @Success     200 {object} suggestionsResp
// @Router      /chat/hr_suggestions [GET]
func (h *handler) Suggestions(c *gin.Context) {
	s := h.uc.Suggestions(c.Request.Context())
	c.JSON(http.StatusOK, suggestionsResp{
		Success:     true,
		Suggestions: s,
		Count:       len(s),
	})
}

// Help godoc
// @Summary     Usage help
// @Tags        Chat
// @Produce     json
// @Success     200 {object} helpResp
// @Router      /chat/hr_help [GET]
func (h *handler) Help(c *gin.Context) {
	c.JSON(http.StatusOK, helpResp{
		Success: true,
		Help:    h.uc.Help(c.Request.Context()),
	})
}
