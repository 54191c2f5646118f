package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"team-match/internal/repository"

	"github.com/google/uuid"
)

type mockResultReader struct {
	rows []repository.MatchResultRow
	err  error
}

func (m mockResultReader) Upsert(context.Context, repository.MatchResultUpsert) error { return nil }

func (m mockResultReader) ListByUserID(context.Context, uuid.UUID) ([]repository.MatchResultRow, error) {
	return m.rows, m.err
}

func TestListResults_InvalidInput(t *testing.T) {
	uc := NewMatchResultsUsecase(mockResultReader{})
	if _, err := uc.ListResults(context.Background(), uuid.Nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestListResults_RepositoryError(t *testing.T) {
	uc := NewMatchResultsUsecase(mockResultReader{err: errors.New("db down")})
	if _, err := uc.ListResults(context.Background(), uuid.New()); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestListResults_ScaleAndMapping(t *testing.T) {
	matched := uuid.New()
	now := time.Now().UTC()
	uc := NewMatchResultsUsecase(mockResultReader{rows: []repository.MatchResultRow{{
		MatchedUserID:  matched,
		Name:           "Hanako",
		ProfileSummary: "UXデザインが得意です。",
		Score:          0.765,
		Reason:         "reason",
		Algorithm:      "vector-matching",
		UpdatedAt:      now,
	}}})

	items, err := uc.ListResults(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	it := items[0]
	if it.UserID != matched || it.Name != "Hanako" {
		t.Fatalf("unexpected mapping: %+v", it)
	}
	if it.MatchScore != 77 {
		t.Fatalf("expected 0.765 to display as 77, got %d", it.MatchScore)
	}
}
