package db

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"

	"company_crud/internal/config"
	"company_crud/internal/models"
)

func gormConfig() *gorm.Config {
	return &gorm.Config{
		// Children keep their parent id after the parent is deleted,
		// so no FK constraints are created.
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	}
}

// Connect opens the database selected by cfg and verifies it answers a ping.
func Connect(cfg config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverSQLite:
		dialector = sqlite.Dialector{DriverName: "sqlite", DSN: cfg.SQLitePath}
	default:
		dialector = mysql.Open(cfg.DSN)
	}

	gdb, err := gorm.Open(dialector, gormConfig())
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := Ping(context.Background(), gdb); err != nil {
		return nil, err
	}

	log.Info().Str("driver", cfg.DBDriver).Msg("Database connected")
	return gdb, nil
}

// OpenSQLite opens a sqlite database at path. Used by tests and local runs.
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Dialector{DriverName: "sqlite", DSN: path}, gormConfig())
}

func Ping(ctx context.Context, gdb *gorm.DB) error {
	sqlDB, err := gdb.DB()
	if err != nil {
		return fmt.Errorf("database handle: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func AutoMigrate(gdb *gorm.DB) error {
	if err := gdb.AutoMigrate(models.All()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	log.Info().Int("models", len(models.All())).Msg("Database migrations completed")
	return nil
}
