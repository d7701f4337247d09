package response

import (
	"github.com/gin-gonic/gin"
)

// MsgServerError is the only message clients ever see for internal failures
const MsgServerError = "Server Error"

// ErrorItem is one entry of an error response
type ErrorItem struct {
	Field        string `json:"field,omitempty"`
	ErrorMessage string `json:"errorMessage"`
}

// ErrorBody is the uniform error envelope: {"errors": [...]}
type ErrorBody struct {
	Errors []ErrorItem `json:"errors"`
}

// Message builds an item that is not tied to a request field
func Message(msg string) ErrorItem {
	return ErrorItem{ErrorMessage: msg}
}

// Error writes the envelope with the given status
func Error(c *gin.Context, status int, items ...ErrorItem) {
	c.JSON(status, ErrorBody{Errors: items})
}

// Abort writes the envelope and stops the handler chain
func Abort(c *gin.Context, status int, items ...ErrorItem) {
	c.AbortWithStatusJSON(status, ErrorBody{Errors: items})
}
