package handler

import (
	"errors"

	"team-match/internal/delivery/http/dto"
	"team-match/internal/delivery/http/middleware"
	"team-match/internal/pkg/response"
	"team-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

type MatchHandler struct {
	matching usecase.MatchingUsecase
	results  usecase.MatchResultsUsecase
}

func NewMatchHandler(matching usecase.MatchingUsecase, results usecase.MatchResultsUsecase) *MatchHandler {
	return &MatchHandler{matching: matching, results: results}
}

func (h *MatchHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	grp := r.Group("/matching")
	grp.Post("/start", h.StartMatching)
	grp.Get("/results", h.GetResults)
}

func (h *MatchHandler) StartMatching(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	var req dto.MatchStartRequest
	if err := c.Bind().Body(&req); err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	}

	items, stats, err := h.matching.StartMatching(c.Context(), usecase.MatchStartParams{
		UserID:               userID,
		DesiredRole:          req.DesiredRole,
		UseVectorMatching:    req.VectorMatching(),
		ExcludePastTeammates: req.ExcludePastTeammates,
	})
	if err != nil {
		return mapMatchingError(err)
	}

	out := dto.MatchStartResponse{
		Results: make([]dto.MatchItemResponse, 0, len(items)),
		Stats: dto.MatchRunStatsResponse{
			Considered: stats.Considered,
			Matched:    stats.Matched,
			Succeeded:  stats.Succeeded,
			Failed:     stats.Failed,
		},
	}
	for _, it := range items {
		out.Results = append(out.Results, dto.MatchItemResponse{
			ID:             it.UserID,
			Name:           it.Name,
			ProfileSummary: it.ProfileSummary,
			ProductGenres:  it.ProductGenres,
			Timeslots:      it.Timeslots,
			MatchScore:     it.MatchScore,
			MatchReason:    it.MatchReason,
			Algorithm:      it.Algorithm,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func (h *MatchHandler) GetResults(c fiber.Ctx) error {
	userID, ok := c.Locals(middleware.CtxUserIDKey).(uuid.UUID)
	if !ok {
		return middleware.NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
	}

	items, err := h.results.ListResults(c.Context(), userID)
	if err != nil {
		return mapMatchingError(err)
	}

	out := dto.MatchResultsResponse{
		Results: make([]dto.MatchResultItemResponse, 0, len(items)),
		Count:   len(items),
	}
	for _, it := range items {
		out.Results = append(out.Results, dto.MatchResultItemResponse{
			ID:             it.UserID,
			Name:           it.Name,
			ProfileSummary: it.ProfileSummary,
			MatchScore:     it.MatchScore,
			MatchReason:    it.MatchReason,
			Algorithm:      it.Algorithm,
			UpdatedAt:      it.UpdatedAt,
		})
	}

	return response.Success(c, fiber.StatusOK, response.MessageOK, out)
}

func mapMatchingError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, usecase.ErrProfileNotFound):
		return middleware.NewAppError(fiber.StatusNotFound, "User profile not found", nil, err)
	case errors.Is(err, usecase.ErrInvalidInput):
		return middleware.NewAppError(fiber.StatusBadRequest, "Bad request", nil, err)
	default:
		return middleware.NewAppError(fiber.StatusInternalServerError, response.MessageInternalServerError, nil, err)
	}
}
