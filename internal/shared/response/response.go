package response

import (
	"github.com/gin-gonic/gin"
)

// Body is the envelope every non-record response uses: a human-readable
// message, plus field-level errors when validation failed.
type Body struct {
	Message string `json:"message"`
	Errors  any    `json:"errors,omitempty"`
}

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, Body{Message: message})
}

func Error(c *gin.Context, status int, message string, details any) {
	c.JSON(status, Body{Message: message, Errors: details})
}
