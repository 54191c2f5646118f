package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"team-match/internal/config"
	"team-match/internal/database"
	"team-match/internal/database/migration"
	dbpostgres "team-match/internal/database/postgres"
	"team-match/internal/database/seeder"
	"team-match/internal/delivery/http/middleware"
	"team-match/internal/delivery/http/routes"
	"team-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	DB    database.DB
	Hub   *ws.Hub
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("connect database: %w", err)
	}

	if cfg.Database.RunMigrations {
		r := migration.Runner{Dir: cfg.Database.MigrationsDir}
		if err := r.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("run migrations: %w", err)
		}
	}

	if cfg.Database.RunSeeders {
		r := seeder.Runner{Seeders: seeder.Defaults()}
		if err := r.Run(ctx, db); err != nil {
			_ = db.Close()
			return nil, nil, fmt.Errorf("run seeders: %w", err)
		}
	}

	hub := ws.NewHub(logger)
	go hub.Run()

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())

	registry := routes.NewRegistry(cfg, db, hub, logger)
	registry.Register(f)

	app := &App{Fiber: f, DB: db, Hub: hub}
	cleanup := func() error {
		return db.Close()
	}
	return app, cleanup, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
