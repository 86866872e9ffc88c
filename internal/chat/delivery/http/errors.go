package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hr-agent/internal/chat"
	"hr-agent/pkg/response"
)

// reportError maps use-case errors: a bad message is the client's fault,
// an unknown route is ours.
func (h *handler) reportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, chat.ErrEmptyMessage):
		response.Error(c, err)
	case errors.Is(err, chat.ErrUnknownRoute):
		response.InternalError(c, err)
	default:
		response.InternalError(c, nil)
	}
}
