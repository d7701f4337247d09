package middleware

import (
	"net/http"
	"strings"

	"storefront/internal/response"
	"storefront/internal/utils"

	"github.com/gin-gonic/gin"
)

const (
	AuthUserKey = "authUser"

	// TokenHeader is the legacy header some clients send the raw token in
	TokenHeader = "x-auth-token"

	MsgNoToken      = "No Token Provided, Access Denied"
	MsgInvalidToken = "Token is not valid"
)

// JWTAuthMiddleware rejects requests without a valid token and stores the
// token's user id under AuthUserKey otherwise.
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := extractToken(c)
		if !ok {
			response.Abort(c, http.StatusUnauthorized, response.Message(MsgInvalidToken))
			return
		}
		if tokenString == "" {
			response.Abort(c, http.StatusUnauthorized, response.Message(MsgNoToken))
			return
		}

		claims, err := jwtUtil.ValidateToken(tokenString)
		if err != nil {
			response.Abort(c, http.StatusUnauthorized, response.Message(MsgInvalidToken))
			return
		}

		c.Set(AuthUserKey, claims.User.ID)
		c.Next()
	}
}

// AuthUserID returns the id stored by JWTAuthMiddleware
func AuthUserID(c *gin.Context) (string, bool) {
	id := c.GetString(AuthUserKey)
	return id, id != ""
}

// extractToken prefers "Authorization: Bearer <token>" and falls back to
// x-auth-token. ok is false when an Authorization header is present but malformed.
func extractToken(c *gin.Context) (token string, ok bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return strings.TrimSpace(c.GetHeader(TokenHeader)), true
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
