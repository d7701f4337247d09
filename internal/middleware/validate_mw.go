package middleware

import (
	"errors"
	"io"
	"net/http"

	"storefront/internal/response"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

const MsgInvalidBody = "Invalid request body"

// Validate checks the JSON body against rules before the handler runs. The
// body is cached on the context, so handlers bind it again with
// c.ShouldBindBodyWith(&req, binding.JSON).
func Validate(v *validation.Validator, rules []validation.Rule) gin.HandlerFunc {
	return func(c *gin.Context) {
		var payload map[string]any
		if err := c.ShouldBindBodyWith(&payload, binding.JSON); err != nil && !errors.Is(err, io.EOF) {
			response.Abort(c, http.StatusBadRequest, response.Message(MsgInvalidBody))
			return
		}

		violations := v.Validate(payload, rules)
		if len(violations) > 0 {
			items := make([]response.ErrorItem, 0, len(violations))
			for _, violation := range violations {
				items = append(items, response.ErrorItem{Field: violation.Field, ErrorMessage: violation.Message})
			}
			response.Abort(c, http.StatusBadRequest, items...)
			return
		}

		c.Next()
	}
}
