package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processAgentReq(c *gin.Context) (agentReq, error) {
	var req agentReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	if err := req.validate(); err != nil {
		return req, err
	}
	return req, nil
}
