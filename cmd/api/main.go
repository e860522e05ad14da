package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"company_crud/internal/config"
	"company_crud/internal/db"
	httpserver "company_crud/internal/http"
	"company_crud/internal/seed"
)

var (
	version = "dev"
	cli     struct {
		Version kong.VersionFlag
		Serve   ServeCmd   `cmd:"" default:"1" help:"Run the HTTP API (default)."`
		Migrate MigrateCmd `cmd:"" help:"Create or update the database schema and exit."`
		Seed    SeedCmd    `cmd:"" help:"Insert the demo hierarchy and exit."`
	}
)

type ServeCmd struct{}

func (ServeCmd) Run(ctx context.Context, cfg config.Config, gdb *gorm.DB) error {
	if err := db.AutoMigrate(gdb); err != nil {
		return err
	}
	if cfg.SeedDemo {
		if err := seed.Demo(ctx, gdb); err != nil {
			return err
		}
	}

	gin.SetMode(cfg.GinMode)
	r := httpserver.NewRouter(gdb)
	addr := fmt.Sprintf(":%s", cfg.AppPort)
	srv := &http.Server{Addr: addr, Handler: r, ReadHeaderTimeout: 10 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info().Msg("Shutting down server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server shutdown failed")
		}
	}()

	log.Info().Str("addr", addr).Str("version", version).Msg("Server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

type MigrateCmd struct{}

func (MigrateCmd) Run(gdb *gorm.DB) error {
	return db.AutoMigrate(gdb)
}

type SeedCmd struct{}

func (SeedCmd) Run(ctx context.Context, gdb *gorm.DB) error {
	if err := db.AutoMigrate(gdb); err != nil {
		return err
	}
	return seed.Demo(ctx, gdb)
}

func setupLogging(cfg config.Config) {
	zerolog.SetGlobalLevel(cfg.LogLevel)
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&cli,
		kong.Description("Company hierarchy CRUD API."),
		kong.Vars{"version": version},
		kong.BindTo(ctx, (*context.Context)(nil)),
	)

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid configuration")
	}
	setupLogging(cfg)

	gdb, err := db.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}

	err = kctx.Run(cfg, gdb)
	kctx.FatalIfErrorf(err)
}
