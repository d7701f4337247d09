package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productBody(category string) gin.H {
	return gin.H{
		"name": "Slim Fit Shirt", "brand": "Acme", "price": 799.5, "qty": 12,
		"image": "https://cdn.example.com/shirt.png", "category": category,
		"description": "Cotton shirt", "usage": "Machine wash",
	}
}

func TestUploadProduct_RoundTrip(t *testing.T) {
	app := newTestApp()

	w := app.do(http.MethodPost, "/product/upload", productBody(model.CategoryMens), "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Result  string        `json:"result"`
		Product model.Product `json:"product"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "product created successfully", created.Result)

	w = app.do(http.MethodGet, "/product/"+created.Product.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	var fetched model.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))

	assert.Equal(t, created.Product.ID, fetched.ID)
	assert.Equal(t, "Slim Fit Shirt", fetched.Name)
	assert.Equal(t, "Acme", fetched.Brand)
	assert.Equal(t, 799.5, fetched.Price)
	assert.Equal(t, 12, fetched.Qty)
	assert.Equal(t, "https://cdn.example.com/shirt.png", fetched.Image)
	assert.Equal(t, model.CategoryMens, fetched.Category)
	assert.Equal(t, "Cotton shirt", fetched.Description)
	assert.Equal(t, "Machine wash", fetched.Usage)
}

func TestUploadProduct_ValidationFailure(t *testing.T) {
	app := newTestApp()
	body := productBody(model.CategoryKids)
	delete(body, "brand")
	body["usage"] = ""

	w := app.do(http.MethodPost, "/product/upload", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[
		{"field":"brand","errorMessage":"Product Brand is Required"},
		{"field":"usage","errorMessage":"Product Info is Required"}
	]}`, w.Body.String())
	assert.Empty(t, app.products.products)
}

func TestUploadProduct_WrongFieldType(t *testing.T) {
	app := newTestApp()
	body := productBody(model.CategoryKids)
	body["qty"] = "twelve"

	w := app.do(http.MethodPost, "/product/upload", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"field":"qty","errorMessage":"Product Quantity is Required"}]}`, w.Body.String())
}

func TestListCollections(t *testing.T) {
	app := newTestApp()
	for _, category := range []string{model.CategoryMens, model.CategoryMens, model.CategoryWomen} {
		require.Equal(t, http.StatusCreated, app.do(http.MethodPost, "/product/upload", productBody(category), "").Code)
	}

	tests := []struct {
		path string
		want int
	}{
		{"/product/men", 2},
		{"/product/women", 1},
		{"/product/kids", 0},
		{"/product/category/mens", 2},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := app.do(http.MethodGet, tt.path, nil, "")
			require.Equal(t, http.StatusOK, w.Code)
			var products []model.Product
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
			assert.Len(t, products, tt.want)
		})
	}
}

func TestGetProduct_NotFound(t *testing.T) {
	app := newTestApp()

	for _, id := range []string{"3f0e5c52-1b1c-4d8e-9a3a-5c9b2d1e0f00", "not-an-id"} {
		w := app.do(http.MethodGet, "/product/"+id, nil, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"errors":[{"errorMessage":"Product not found"}]}`, w.Body.String())
	}
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealth(t *testing.T) {
	for _, tt := range []struct {
		err  error
		code int
	}{{nil, http.StatusOK}, {errors.New("down"), http.StatusServiceUnavailable}} {
		router := gin.New()
		router.GET("/health", Health(pinger{tt.err}))

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

		assert.Equal(t, tt.code, w.Code)
	}
}

func TestUploadProduct_CategoryCaseDoesNotMatter(t *testing.T) {
	app := newTestApp()
	for _, category := range []string{"mens", "Accessories"} {
		require.Equal(t, http.StatusCreated, app.do(http.MethodPost, "/product/upload", productBody(category), "").Code)
	}

	for _, path := range []string{"/product/men", "/product/category/mens", "/product/category/Accessories", "/product/category/ACCESSORIES"} {
		w := app.do(http.MethodGet, path, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var products []model.Product
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
		assert.Len(t, products, 1, path)
	}
}

func TestUploadProduct_NumericStrings(t *testing.T) {
	app := newTestApp()
	body := productBody(model.CategoryKids)
	body["price"] = "999"
	body["qty"] = "3"

	w := app.do(http.MethodPost, "/product/upload", body, "")

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, app.products.products, 1)
	assert.Equal(t, 999.0, app.products.products[0].Price)
	assert.Equal(t, 3, app.products.products[0].Qty)
}

func TestUploadProduct_NonNumericNamesTheField(t *testing.T) {
	app := newTestApp()
	body := productBody(model.CategoryKids)
	body["price"] = "cheap"
	body["qty"] = 2.5

	w := app.do(http.MethodPost, "/product/upload", body, "")

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[
		{"field":"price","errorMessage":"Product Price is Required"},
		{"field":"qty","errorMessage":"Product Quantity is Required"}
	]}`, w.Body.String())
	assert.Empty(t, app.products.products)
}
