package usecase

import (
	"context"
	"math"
	"time"

	"team-match/internal/repository"

	"github.com/google/uuid"
)

type MatchResultItem struct {
	UserID         uuid.UUID
	Name           string
	ProfileSummary string
	MatchScore     int
	MatchReason    string
	Algorithm      string
	UpdatedAt      time.Time
}

// MatchResultsUsecase is the read path over previously computed results.
type MatchResultsUsecase interface {
	ListResults(ctx context.Context, userID uuid.UUID) ([]MatchResultItem, error)
}

type MatchResults struct {
	results repository.MatchResultRepository
}

func NewMatchResultsUsecase(results repository.MatchResultRepository) *MatchResults {
	return &MatchResults{results: results}
}

func (u *MatchResults) ListResults(ctx context.Context, userID uuid.UUID) ([]MatchResultItem, error) {
	if userID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	rows, err := u.results.ListByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]MatchResultItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, MatchResultItem{
			UserID:         r.MatchedUserID,
			Name:           r.Name,
			ProfileSummary: r.ProfileSummary,
			MatchScore:     int(math.Round(r.Score * 100)),
			MatchReason:    r.Reason,
			Algorithm:      r.Algorithm,
			UpdatedAt:      r.UpdatedAt,
		})
	}
	return out, nil
}
