package handler

import (
	"errors"
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/response"
	"storefront/internal/service"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles registration, login and profile requests
type UserHandler struct {
	auth      service.AuthService
	users     service.UserService
	validator *validation.Validator
	log       *zap.Logger
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(auth service.AuthService, users service.UserService, v *validation.Validator, log *zap.Logger) *UserHandler {
	return &UserHandler{auth: auth, users: users, validator: v, log: log}
}

func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if !bindBody(c, &req) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			response.Error(c, http.StatusBadRequest, response.Message(MsgUserExists))
			return
		}
		serverError(c, h.log, "register failed", err)
		return
	}

	h.log.Info("user registered", zap.String("user_id", user.ID))
	c.JSON(http.StatusOK, gin.H{
		"result": "success",
		"user":   user,
	})
}

func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if !bindBody(c, &req) {
		return
	}

	_, token, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, response.Message(MsgInvalidCredentials))
			return
		}
		serverError(c, h.log, "login failed", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": "Login Success",
		"token":  token,
	})
}

func (h *UserHandler) GetProfile(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	user, err := h.users.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, response.Message(MsgUserNotFound))
			return
		}
		serverError(c, h.log, "get profile failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *UserHandler) UpdateAddress(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var address model.Address
	if !bindBody(c, &address) {
		return
	}

	user, err := h.users.UpdateAddress(c.Request.Context(), userID, address)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, response.Message(MsgUserNotFound))
			return
		}
		serverError(c, h.log, "update address failed", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

// RegisterUserRoutes registers the /user routes
func (h *UserHandler) RegisterUserRoutes(r gin.IRouter, authMW gin.HandlerFunc) {
	userGroup := r.Group("/user")
	{
		userGroup.POST("/register", middleware.Validate(h.validator, validation.RegisterRules), h.Register)
		userGroup.POST("/login", middleware.Validate(h.validator, validation.LoginRules), h.Login)
		userGroup.GET("", authMW, h.GetProfile)
		userGroup.POST("/address", authMW, middleware.Validate(h.validator, validation.AddressRules), h.UpdateAddress)
	}
}
