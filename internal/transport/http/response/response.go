package response

import "github.com/gin-gonic/gin"

// Body is the error/confirmation envelope: a single human-readable
// message, never internal detail.
type Body struct {
	Message string `json:"message"`
}

func Error(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Body{Message: message})
}

func Message(c *gin.Context, httpStatus int, message string) {
	c.JSON(httpStatus, Body{Message: message})
}
