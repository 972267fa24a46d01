package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/RoadToFit/roadtofit-be/models"
)

// Config carries the process-wide settings. It is read once at startup and
// handed to the services at construction so nothing reads the environment
// after boot.
type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int

	Port string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, reading configuration from environment")
	}

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		TokenTTL:   time.Hour,
		BcryptCost: bcrypt.DefaultCost,
		Port:       os.Getenv("PORT"),
	}

	if cfg.JWTSecret == "" {
		log.Fatalf("JWT_SECRET is not set")
	}
	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
			log.Fatalf("invalid BCRYPT_COST %q", v)
		}
		cfg.BcryptCost = cost
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	return cfg
}

func InitDB(cfg *Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBPort,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := Migrate(db); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

// Migrate creates the schema. Shared with the test setup, which runs it
// against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Food{},
		&models.Activity{},
		&models.UserFoodRecommendation{},
		&models.UserActivityRecommendation{},
		&models.History{},
	)
}
