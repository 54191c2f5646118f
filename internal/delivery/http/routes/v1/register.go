package v1

import (
	"log"

	"team-match/internal/config"
	"team-match/internal/database"
	"team-match/internal/delivery/http/handler"
	"team-match/internal/delivery/http/middleware"
	"team-match/internal/infrastructure/cache"
	"team-match/internal/infrastructure/embedding"
	"team-match/internal/pkg/jwt"
	"team-match/internal/repository"
	"team-match/internal/usecase"
	"team-match/internal/ws"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, cfg config.Config, db database.DB, hub *ws.Hub, logger *log.Logger) {
	if r == nil {
		return
	}

	jwtSvc := jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)
	authMw := middleware.NewAuthMiddleware(jwtSvc)

	profileRepo := repository.NewPostgresUserProfileRepository(db)
	resultRepo := repository.NewPostgresMatchResultRepository(db)
	teamRepo := repository.NewPostgresTeamMemberRepository(db)

	var embedder usecase.EmbeddingProvider
	if client := embedding.NewClient(cfg.Embedding); client != nil {
		embedder = client
	}

	var embedCache usecase.EmbeddingCache
	if embedder != nil {
		embedCache = cache.NewRedis(cfg.Redis, cfg.Embedding.CacheTTL, logger)
	}

	var notifier usecase.RunNotifier
	if hub != nil {
		notifier = ws.NewNotifier(hub)
	}

	matchingUC := usecase.NewMatchingUsecase(
		profileRepo,
		resultRepo,
		teamRepo,
		embedder,
		embedCache,
		nil,
		notifier,
		usecase.MatchingPacing{
			BatchSize:  cfg.Matching.BatchSize,
			ItemDelay:  cfg.Matching.ItemDelay,
			BatchDelay: cfg.Matching.BatchDelay,
		},
		logger,
	)
	resultsUC := usecase.NewMatchResultsUsecase(resultRepo)

	matchHandler := handler.NewMatchHandler(matchingUC, resultsUC)

	protected := r.Group("", authMw.Middleware())
	matchHandler.RegisterRoutes(protected)
}
