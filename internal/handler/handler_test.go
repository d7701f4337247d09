package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/middleware"
	"storefront/internal/response"
	"storefront/internal/service"
	"storefront/internal/utils"
	"storefront/internal/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testApp struct {
	router   *gin.Engine
	jwt      *utils.JWTUtil
	users    *memUserRepo
	products *memProductRepo
	orders   *memOrderRepo
}

func newTestApp() *testApp {
	app := &testApp{
		jwt:      utils.NewJWTUtil("test-secret", 1),
		users:    newMemUserRepo(),
		products: &memProductRepo{},
		orders:   &memOrderRepo{},
	}

	log := zap.NewNop()
	v := validation.New()
	authMW := middleware.JWTAuthMiddleware(app.jwt)

	router := gin.New()
	router.Use(middleware.Recovery(log))
	NewUserHandler(service.NewAuthService(app.users, app.jwt), service.NewUserService(app.users), v, log).
		RegisterUserRoutes(router, authMW)
	NewProductHandler(service.NewProductService(app.products), v, log).
		RegisterProductRoutes(router)
	NewOrderHandler(service.NewOrderService(app.orders, app.users), v, log).
		RegisterOrderRoutes(router, authMW)
	app.router = router
	return app
}

func (a *testApp) do(method, path string, body any, token string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

// registerAndLogin creates a user and returns its id and a token
func (a *testApp) registerAndLogin(t *testing.T, name, email string) (string, string) {
	t.Helper()
	w := a.do(http.MethodPost, "/user/register", gin.H{"name": name, "email": email, "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var reg struct {
		User struct {
			ID string `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))

	w = a.do(http.MethodPost, "/user/login", gin.H{"email": email, "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &login))
	return reg.User.ID, login.Token
}

func decodeErrors(t *testing.T, w *httptest.ResponseRecorder) []response.ErrorItem {
	t.Helper()
	var body response.ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Errors
}
