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

// OrderHandler handles order requests
type OrderHandler struct {
	service   service.OrderService
	validator *validation.Validator
	log       *zap.Logger
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(s service.OrderService, v *validation.Validator, log *zap.Logger) *OrderHandler {
	return &OrderHandler{service: s, validator: v, log: log}
}

func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	var req model.PlaceOrderRequest
	if !bindBody(c, &req) {
		return
	}

	order, err := h.service.PlaceOrder(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.Error(c, http.StatusNotFound, response.Message(MsgUserNotFound))
			return
		}
		serverError(c, h.log, "place order failed", err)
		return
	}

	h.log.Info("order placed", zap.String("order_id", order.ID), zap.String("user_id", userID))
	c.JSON(http.StatusCreated, gin.H{
		"result": "success",
		"order":  order,
	})
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	userID, ok := authUserID(c)
	if !ok {
		return
	}

	orders, err := h.service.ListOrders(c.Request.Context(), userID)
	if err != nil {
		serverError(c, h.log, "list orders failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// RegisterOrderRoutes registers the /order routes; all of them require authentication
func (h *OrderHandler) RegisterOrderRoutes(r gin.IRouter, authMW gin.HandlerFunc) {
	orderGroup := r.Group("/order")
	orderGroup.Use(authMW)
	{
		orderGroup.POST("", middleware.Validate(h.validator, validation.OrderRules), h.PlaceOrder)
		orderGroup.GET("", h.ListOrders)
	}
}
