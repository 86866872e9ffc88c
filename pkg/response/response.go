package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// NewOKResp returns a successful envelope.
func NewOKResp(data any) Resp {
	return Resp{
		Success: true,
		Data:    data,
	}
}

// OK sends 200 with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Fail sends an application failure. These are 200: only transport faults
// get an error status.
func Fail(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Resp{Error: message})
}

// Error sends 400 for a malformed request.
func Error(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{Error: err.Error()})
}

// InternalError sends 500. With a nil err the message is DefaultErrorMessage.
func InternalError(c *gin.Context, err error) {
	msg := DefaultErrorMessage
	if err != nil {
		msg = err.Error()
	}
	c.JSON(http.StatusInternalServerError, Resp{Error: msg})
}

// TooManyRequests sends 429.
func TooManyRequests(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, Resp{Error: "rate limit exceeded"})
}
