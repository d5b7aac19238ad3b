package main

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/fundraiser-shop/config"
	"github.com/yeremiapane/fundraiser-shop/database"
	"github.com/yeremiapane/fundraiser-shop/hub"
	"github.com/yeremiapane/fundraiser-shop/middlewares"
	"github.com/yeremiapane/fundraiser-shop/router"
	"github.com/yeremiapane/fundraiser-shop/services"
	"github.com/yeremiapane/fundraiser-shop/utils"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg := config.Load()
	utils.SetLevel(cfg.LogLevel)

	// Set gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := openStore(cfg)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to open store: %v", err)
	}

	deps, err := buildDeps(cfg, store)
	if err != nil {
		utils.ErrorLogger.Fatalf("Failed to initialise services: %v", err)
	}

	// Setup rate limiter (50 requests per second per IP)
	deps.RateLimiter = middlewares.NewRateLimiter(50, time.Second)

	r := router.SetupRouter(deps)

	// Set trusted proxies
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		utils.ErrorLogger.Printf("Error setting trusted proxies: %v", err)
	}

	utils.InfoLogger.Printf("Listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

// openStore picks the persisted key-value backend from DB_DRIVER.
func openStore(cfg *config.Config) (database.Store, error) {
	if cfg.DBDriver == "memory" {
		utils.InfoLogger.Println("Using in-memory store, state is lost on restart")
		return database.NewMemoryStore(), nil
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(db); err != nil {
		return nil, err
	}
	return database.NewGormStore(db), nil
}

func buildDeps(cfg *config.Config, store database.Store) (router.Deps, error) {
	gate, err := services.NewAdminGate(store, cfg.AdminPassword, bcrypt.DefaultCost)
	if err != nil {
		return router.Deps{}, err
	}

	h := hub.New()
	cart := services.NewCartService(store, time.Now)
	orders := services.NewOrderService(store, cart, services.WithEvents(h))

	return router.Deps{
		Cart:           cart,
		Orders:         orders,
		Schedule:       services.NewScheduleService(time.Now, cfg.ScheduleWeeks, cfg.FulfillmentWeekday),
		Gate:           gate,
		Tokens:         utils.NewTokenIssuer(cfg.JWTSecret, cfg.AdminTokenTTL),
		Hub:            h,
		CORSOrigin:     cfg.CORSOrigin,
		PickupLocation: cfg.PickupLocation,
	}, nil
}
