package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

// AdminAuthMiddleware requires a valid admin bearer token and the persisted admin flag.
// Logging out clears the flag, which invalidates every token issued before.
func AdminAuthMiddleware(tokens *utils.TokenIssuer, gate *services.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authorization header missing"))
			c.Abort()
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid authorization format"))
			c.Abort()
			return
		}

		if !authorize(c, tokens, gate, strings.TrimPrefix(authHeader, "Bearer ")) {
			return
		}
		c.Next()
	}
}

func authorize(c *gin.Context, tokens *utils.TokenIssuer, gate *services.AdminGate, tokenString string) bool {
	claims, err := tokens.ParseToken(tokenString)
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, err)
		c.Abort()
		return false
	}

	if claims.Role != utils.RoleAdmin || !gate.IsAdmin() {
		utils.RespondError(c, http.StatusForbidden, errors.New("admin access required"))
		c.Abort()
		return false
	}

	c.Set("role", claims.Role)
	return true
}
