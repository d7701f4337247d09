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

// ProductHandler handles catalog requests
type ProductHandler struct {
	service   service.ProductService
	validator *validation.Validator
	log       *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(s service.ProductService, v *validation.Validator, log *zap.Logger) *ProductHandler {
	return &ProductHandler{service: s, validator: v, log: log}
}

func (h *ProductHandler) Upload(c *gin.Context) {
	var req model.CreateProductRequest
	if !bindBody(c, &req) {
		return
	}

	product, err := h.service.CreateProduct(c.Request.Context(), req)
	if err != nil {
		serverError(c, h.log, "product upload failed", err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"result":  "product created successfully",
		"product": product,
	})
}

// ListCategory serves a fixed collection such as /product/men
func (h *ProductHandler) ListCategory(category string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h.list(c, category)
	}
}

// ListByCategory serves /product/category/:category
func (h *ProductHandler) ListByCategory(c *gin.Context) {
	h.list(c, c.Param("category"))
}

func (h *ProductHandler) list(c *gin.Context, category string) {
	products, err := h.service.ListByCategory(c.Request.Context(), category)
	if err != nil {
		serverError(c, h.log, "list products failed", err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *ProductHandler) GetByID(c *gin.Context) {
	product, err := h.service.GetProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			response.Error(c, http.StatusNotFound, response.Message(MsgProductNotFound))
			return
		}
		serverError(c, h.log, "get product failed", err)
		return
	}
	c.JSON(http.StatusOK, product)
}

// RegisterProductRoutes registers the /product routes. Upload is public.
func (h *ProductHandler) RegisterProductRoutes(r gin.IRouter) {
	productGroup := r.Group("/product")
	{
		productGroup.POST("/upload", middleware.Validate(h.validator, validation.ProductRules), h.Upload)
		productGroup.GET("/men", h.ListCategory(model.CategoryMens))
		productGroup.GET("/women", h.ListCategory(model.CategoryWomen))
		productGroup.GET("/kids", h.ListCategory(model.CategoryKids))
		productGroup.GET("/category/:category", h.ListByCategory)
		productGroup.GET("/:id", h.GetByID)
	}
}
