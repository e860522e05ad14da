package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	DBDriver   string
	DSN        string
	SQLitePath string
	AppPort    string
	LogLevel   zerolog.Level
	LogFormat  string
	GinMode    string
	SeedDemo   bool
}

func Load() (Config, error) {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg(".env file not found, using system environment variables")
	} else {
		log.Info().Msg(".env file loaded")
	}

	cfg := Config{
		DBDriver:   getenv("DB_DRIVER", DriverMySQL),
		DSN:        os.Getenv("MYSQL_DSN"),
		SQLitePath: getenv("SQLITE_PATH", "company_crud.db"),
		AppPort:    getenv("APP_PORT", "8080"),
		LogFormat:  getenv("LOG_FORMAT", "json"),
		GinMode:    getenv("GIN_MODE", "release"),
	}

	switch cfg.DBDriver {
	case DriverMySQL:
		if cfg.DSN == "" {
			return Config{}, fmt.Errorf("MYSQL_DSN not set in environment")
		}
	case DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("unsupported GIN_MODE %q", cfg.GinMode)
	}

	level, err := zerolog.ParseLevel(getenv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("parse LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if v := os.Getenv("SEED_DEMO"); v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("parse SEED_DEMO: %w", err)
		}
		cfg.SeedDemo = seed
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
