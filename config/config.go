package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/yeremiapane/fundraiser-shop/utils"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Config struct {
	Port     string
	GinMode  string
	LogLevel string

	DBDriver string // sqlite, mysql or memory
	DBDSN    string

	AdminPassword string
	JWTSecret     string
	AdminTokenTTL time.Duration

	CORSOrigin string

	ScheduleWeeks      int
	FulfillmentWeekday time.Weekday
	PickupLocation     string
}

// Load reads .env (when present) and then the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		utils.InfoLogger.Println("Warning: .env file not found")
	}

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		GinMode:            getEnv("GIN_MODE", "debug"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		DBDriver:           strings.ToLower(getEnv("DB_DRIVER", "sqlite")),
		DBDSN:              getEnv("DB_DSN", "fundraiser.db"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AdminTokenTTL:      getDuration("ADMIN_TOKEN_TTL", 24*time.Hour),
		CORSOrigin:         getEnv("CORS_ORIGIN", "http://localhost:5173"),
		ScheduleWeeks:      getInt("SCHEDULE_WEEKS", 8),
		FulfillmentWeekday: getWeekday("FULFILLMENT_WEEKDAY", time.Sunday),
		PickupLocation:     getEnv("PICKUP_LOCATION", "La Sierra Tongan SDA Fellowship"),
	}

	if cfg.JWTSecret == "" {
		utils.InfoLogger.Println("Warning: JWT_SECRET not set, using development secret")
		cfg.JWTSecret = "LivingWaterDevSecret"
	}
	return cfg
}

// InitDB opens the gorm connection for the sqlite or mysql driver.
func InitDB(cfg *Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)}

	switch cfg.DBDriver {
	case "sqlite":
		return gorm.Open(sqlite.Open(cfg.DBDSN), gormCfg)
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DBDSN), gormCfg)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		utils.ErrorLogger.Printf("invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		utils.ErrorLogger.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return d
}

func getWeekday(key string, fallback time.Weekday) time.Weekday {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.EqualFold(d.String(), v) {
			return d
		}
	}
	utils.ErrorLogger.Printf("invalid %s=%q, using %s", key, v, fallback)
	return fallback
}
