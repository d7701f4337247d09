package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"storefront/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderBody = gin.H{
	"items": []gin.H{{"name": "Slim Fit Shirt", "qty": 1, "price": 100}},
	"tax":   10,
	"total": 110,
}

func TestPlaceOrder_SnapshotsUser(t *testing.T) {
	app := newTestApp()
	id, token := app.registerAndLogin(t, "Asha", "asha@example.com")
	require.Equal(t, http.StatusOK, app.do(http.MethodPost, "/user/address", addressBody, token).Code)

	w := app.do(http.MethodPost, "/order", orderBody, token)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var body struct {
		Result string      `json:"result"`
		Order  model.Order `json:"order"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body.Result)
	assert.Equal(t, id, body.Order.UserID)
	assert.Equal(t, "Asha", body.Order.Name)
	assert.Equal(t, "asha@example.com", body.Order.Email)
	assert.Equal(t, "9999999999", body.Order.Mobile)
	assert.Equal(t, 10.0, body.Order.Tax)
	assert.Equal(t, 110.0, body.Order.Total)
	require.Len(t, body.Order.Items, 1)
	assert.Equal(t, "Slim Fit Shirt", body.Order.Items[0]["name"])

	changed := gin.H{}
	for k, v := range addressBody {
		changed[k] = v
	}
	changed["mobile"] = "1111111111"
	require.Equal(t, http.StatusOK, app.do(http.MethodPost, "/user/address", changed, token).Code)

	w = app.do(http.MethodGet, "/order", nil, token)
	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Orders []model.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "9999999999", list.Orders[0].Mobile)
}

func TestPlaceOrder_ValidationFailure(t *testing.T) {
	app := newTestApp()
	_, token := app.registerAndLogin(t, "Asha", "asha@example.com")

	w := app.do(http.MethodPost, "/order", gin.H{"items": []gin.H{}, "total": 110}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	errs := decodeErrors(t, w)
	require.Len(t, errs, 2)
	assert.Equal(t, "items", errs[0].Field)
	assert.Equal(t, "tax", errs[1].Field)
	assert.Empty(t, app.orders.orders)
}

func TestPlaceOrder_Unauthenticated(t *testing.T) {
	app := newTestApp()

	w := app.do(http.MethodPost, "/order", orderBody, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, app.orders.orders)
}

func TestListOrders_OnlyCallersOrders(t *testing.T) {
	app := newTestApp()
	_, asha := app.registerAndLogin(t, "Asha", "asha@example.com")
	_, ravi := app.registerAndLogin(t, "Ravi", "ravi@example.com")
	require.Equal(t, http.StatusCreated, app.do(http.MethodPost, "/order", orderBody, asha).Code)
	require.Equal(t, http.StatusCreated, app.do(http.MethodPost, "/order", orderBody, asha).Code)
	require.Equal(t, http.StatusCreated, app.do(http.MethodPost, "/order", orderBody, ravi).Code)

	w := app.do(http.MethodGet, "/order", nil, ravi)

	require.Equal(t, http.StatusOK, w.Code)
	var list struct {
		Orders []model.Order `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list.Orders, 1)
	assert.Equal(t, "Ravi", list.Orders[0].Name)
}

func TestListOrders_Unauthenticated(t *testing.T) {
	app := newTestApp()

	w := app.do(http.MethodGet, "/order", nil, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.JSONEq(t, `{"errors":[{"errorMessage":"No Token Provided, Access Denied"}]}`, w.Body.String())
}

func TestPlaceOrder_NumericStrings(t *testing.T) {
	app := newTestApp()
	_, token := app.registerAndLogin(t, "Asha", "asha@example.com")

	w := app.do(http.MethodPost, "/order", gin.H{"items": orderBody["items"], "tax": "10", "total": "110.50"}, token)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	require.Len(t, app.orders.orders, 1)
	assert.Equal(t, 10.0, app.orders.orders[0].Tax)
	assert.Equal(t, 110.5, app.orders.orders[0].Total)
}

func TestPlaceOrder_NonNumericTotalNamesTheField(t *testing.T) {
	app := newTestApp()
	_, token := app.registerAndLogin(t, "Asha", "asha@example.com")

	w := app.do(http.MethodPost, "/order", gin.H{"items": orderBody["items"], "tax": 10, "total": "lots"}, token)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"errors":[{"field":"total","errorMessage":"Please provide Total"}]}`, w.Body.String())
	assert.Empty(t, app.orders.orders)
}
