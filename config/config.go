package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/GoodHedi/trackinglife/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

type Config struct {
	Port       string
	DBDriver   string // "postgres" or "sqlite"
	SQLitePath string
	JWTSecret  string
	TokenTTL   time.Duration
	AuthRPS    float64 // rate limit on /register and /login
	AuthBurst  int
}

var Envs Config

// Load reads .env (when present) and populates Envs. The JWT secret must be
// provided by the environment so that restarting the server does not
// invalidate outstanding sessions.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}

	Envs = Config{
		Port:       getenv("PORT", "8080"),
		DBDriver:   getenv("DB_DRIVER", "postgres"),
		SQLitePath: getenv("SQLITE_PATH", "trackinglife.db"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   time.Duration(getenvInt("TOKEN_TTL_HOURS", 72)) * time.Hour,
		AuthRPS:    getenvFloat("AUTH_RPS", 5),
		AuthBurst:  getenvInt("AUTH_BURST", 10),
	}

	if Envs.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is not set")
	}
}

func InitDB() {
	var (
		dialector gorm.Dialector
		err       error
	)

	switch Envs.DBDriver {
	case "sqlite":
		dialector = sqlite.Open(Envs.SQLitePath)
	case "postgres":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			os.Getenv("DB_HOST"),
			os.Getenv("DB_USER"),
			os.Getenv("DB_PASSWORD"),
			os.Getenv("DB_NAME"),
			os.Getenv("DB_PORT"),
		)
		dialector = postgres.Open(dsn)
	default:
		log.Fatalf("unknown DB_DRIVER %q", Envs.DBDriver)
	}

	DB, err = gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.DiaryEntry{},
		&models.Goal{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getenvFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
