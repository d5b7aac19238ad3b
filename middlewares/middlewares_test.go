package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fundraiser-shop/database"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
	"golang.org/x/crypto/bcrypt"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *utils.TokenIssuer, *services.AdminGate) {
	gin.SetMode(gin.TestMode)

	gate, err := services.NewAdminGate(database.NewMemoryStore(), "admin123", bcrypt.MinCost)
	require.NoError(t, err)
	tokens := utils.NewTokenIssuer("test-secret", time.Hour)

	r := gin.New()
	r.GET("/admin/orders", AdminAuthMiddleware(tokens, gate), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("role"))
	})
	r.GET("/admin/ws", WebSocketAuthMiddleware(tokens, gate), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, tokens, gate
}

func TestAdminAuthMiddleware(t *testing.T) {
	r, tokens, gate := setupAuthRouter(t)
	token, err := tokens.GenerateToken(utils.RoleAdmin)
	require.NoError(t, err)

	call := func(header string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	assert.Equal(t, http.StatusUnauthorized, call("").Code)
	assert.Equal(t, http.StatusUnauthorized, call(token).Code)
	assert.Equal(t, http.StatusUnauthorized, call("Bearer garbage").Code)

	// valid token, but nobody is logged in
	assert.Equal(t, http.StatusForbidden, call("Bearer "+token).Code)

	require.True(t, gate.Login("admin123"))
	w := call("Bearer " + token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, utils.RoleAdmin, w.Body.String())

	gate.Logout()
	assert.Equal(t, http.StatusForbidden, call("Bearer "+token).Code)
}

func TestAdminAuthMiddlewareRejectsOtherRoles(t *testing.T) {
	r, tokens, gate := setupAuthRouter(t)
	require.True(t, gate.Login("admin123"))
	token, err := tokens.GenerateToken("customer")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestWebSocketAuthMiddleware(t *testing.T) {
	r, tokens, gate := setupAuthRouter(t)
	require.True(t, gate.Login("admin123"))
	token, err := tokens.GenerateToken(utils.RoleAdmin)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ws", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/ws?token="+token, nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(NewRateLimiter(2, time.Minute).RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRateLimitForgetsIdleClients(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2024, 3, 6, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.now = func() time.Time { return now }

	r := gin.New()
	r.Use(rl.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	hit := func(ip string) int {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":1234"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		assert.Equal(t, http.StatusOK, hit(ip))
	}
	assert.Equal(t, 3, rl.tracked())

	// a window later only the caller that just arrived is remembered
	now = now.Add(2 * time.Minute)
	assert.Equal(t, http.StatusOK, hit("10.0.0.4"))
	assert.Equal(t, 1, rl.tracked())
}

func TestStrictRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/admin/login", NewStrictRateLimiter(), func(c *gin.Context) { c.Status(http.StatusOK) })

	var last int
	for i := 0; i < 6; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/admin/login", nil))
		last = w.Code
	}
	assert.Equal(t, http.StatusTooManyRequests, last)
}

func TestCORSPreflight(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddlewares("http://localhost:5173"), SecurityHeaders())
	r.GET("/products", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodOptions, "/products", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/products", nil))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
