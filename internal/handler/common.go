package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/response"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

// Client-facing messages
const (
	MsgUserExists         = "User already registered"
	MsgInvalidCredentials = "Invalid Credentials"
	MsgUserNotFound       = "User not found"
	MsgProductNotFound    = "Product not found"
)

// serverError logs err and answers with the generic 500 body
func serverError(c *gin.Context, log *zap.Logger, msg string, err error) {
	log.Error(msg,
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("route", c.FullPath()),
	)
	response.Error(c, http.StatusInternalServerError, response.Message(response.MsgServerError))
}

// bindBody binds the body cached by the validation middleware into req
func bindBody(c *gin.Context, req any) bool {
	if err := c.ShouldBindBodyWith(req, binding.JSON); err != nil {
		response.Error(c, http.StatusBadRequest, response.Message(middleware.MsgInvalidBody))
		return false
	}
	return true
}

// authUserID returns the caller's id; routes behind the JWT middleware always have one
func authUserID(c *gin.Context) (string, bool) {
	id, ok := middleware.AuthUserID(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.Message(middleware.MsgInvalidToken))
	}
	return id, ok
}
