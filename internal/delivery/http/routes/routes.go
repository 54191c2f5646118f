package routes

import (
	"log"

	"team-match/internal/config"
	"team-match/internal/database"
	"team-match/internal/delivery/http/handler"
	v1 "team-match/internal/delivery/http/routes/v1"
	"team-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	cfg    config.Config
	db     database.DB
	hub    *ws.Hub
	logger *log.Logger

	health *handler.HealthHandler
}

func NewRegistry(cfg config.Config, db database.DB, hub *ws.Hub, logger *log.Logger) *Registry {
	return &Registry{
		cfg:    cfg,
		db:     db,
		hub:    hub,
		logger: logger,
		health: handler.NewHealthHandler(),
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)

	if r.hub != nil {
		wsHandler := ws.NewHandler(r.hub, r.logger)
		app.Get("/ws", wsHandler.HandleMatchingWS)
	}

	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.cfg, r.db, r.hub, r.logger)
}
