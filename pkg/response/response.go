package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 with the given body verbatim. Handlers that need a custom
// top-level shape (e.g. {"success":true,"tasks":[...]}) build it themselves.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// Success sends 200 with a success envelope and message.
func Success(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Resp{Success: true, Message: message})
}

// BadRequest sends 400 with a failure envelope.
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Resp{Success: false, Message: message})
}

// NotFound sends 404 with a failure envelope.
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Resp{Success: false, Message: message})
}

// InternalError sends 500 with a generic message. Detail belongs in the
// server log, never in the body.
func InternalError(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, Resp{Success: false, Message: DefaultErrorMessage})
}
