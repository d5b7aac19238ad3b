package middlewares

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
)

// WebSocketAuthMiddleware reads the admin token from ?token= since browsers
// cannot set headers on websocket upgrades.
func WebSocketAuthMiddleware(tokens *utils.TokenIssuer, gate *services.AdminGate) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.Query("token")
		if token == "" {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("token missing"))
			c.Abort()
			return
		}

		if !authorize(c, tokens, gate, token) {
			return
		}
		c.Next()
	}
}
