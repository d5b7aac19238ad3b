package Controllers_test

import (
	"bytes"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/fundraiser-shop/database"
	"github.com/yeremiapane/fundraiser-shop/hub"
	"github.com/yeremiapane/fundraiser-shop/router"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
	"golang.org/x/crypto/bcrypt"
)

const testPassword = "admin123"

var testNow = time.Date(2024, 3, 6, 10, 0, 0, 123_000_000, time.UTC)

type testApp struct {
	router *gin.Engine
	store  *database.MemoryStore
	cart   *services.CartService
	orders *services.OrderService
}

func setupApp(t *testing.T) *testApp {
	gin.SetMode(gin.TestMode)

	store := database.NewMemoryStore()
	clock := func() time.Time { return testNow }

	gate, err := services.NewAdminGate(store, testPassword, bcrypt.MinCost)
	require.NoError(t, err)

	h := hub.New()
	cart := services.NewCartService(store, clock)
	orders := services.NewOrderService(store, cart,
		services.WithClock(clock),
		services.WithRand(rand.New(rand.NewSource(7))),
		services.WithEvents(h),
	)

	r := router.SetupRouter(router.Deps{
		Cart:           cart,
		Orders:         orders,
		Schedule:       services.NewScheduleService(clock, 8, time.Sunday),
		Gate:           gate,
		Tokens:         utils.NewTokenIssuer("test-secret", time.Hour),
		Hub:            h,
		CORSOrigin:     "http://localhost:5173",
		PickupLocation: "Fellowship Hall",
	})

	return &testApp{router: r, store: store, cart: cart, orders: orders}
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (a *testApp) do(t *testing.T, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, envelope) {
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)

	var env envelope
	if w.Header().Get("Content-Type") == "application/json; charset=utf-8" {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func (a *testApp) login(t *testing.T) string {
	w, env := a.do(t, http.MethodPost, "/admin/login", map[string]string{"password": testPassword}, "")
	require.Equal(t, http.StatusOK, w.Code)

	var data struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotEmpty(t, data.Token)
	return data.Token
}

func decode(t *testing.T, raw json.RawMessage, dst interface{}) {
	require.NoError(t, json.Unmarshal(raw, dst))
}
