package repository

import (
	"context"
	"time"

	"team-match/internal/database"

	"github.com/google/uuid"
)

type MatchResultUpsert struct {
	UserID        uuid.UUID
	MatchedUserID uuid.UUID
	Score         float64
	Reason        string
	Algorithm     string
}

type MatchResultRow struct {
	MatchedUserID  uuid.UUID
	Name           string
	ProfileSummary string
	Score          float64
	Reason         string
	Algorithm      string
	UpdatedAt      time.Time
}

// MatchResultRepository is the idempotent result store: one row per
// ordered (user, matched user) pair, last write wins.
type MatchResultRepository interface {
	Upsert(ctx context.Context, m MatchResultUpsert) error
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]MatchResultRow, error)
}

type PostgresMatchResultRepository struct {
	db database.DB
}

func NewPostgresMatchResultRepository(db database.DB) *PostgresMatchResultRepository {
	return &PostgresMatchResultRepository{db: db}
}

func (r *PostgresMatchResultRepository) Upsert(ctx context.Context, m MatchResultUpsert) error {
	if m.UserID == uuid.Nil || m.MatchedUserID == uuid.Nil {
		return nil
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO match_results (id, user_id, matched_user_id, score, reason, algorithm, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7)
		 ON CONFLICT (user_id, matched_user_id) DO UPDATE SET
			score = EXCLUDED.score,
			reason = EXCLUDED.reason,
			algorithm = EXCLUDED.algorithm,
			updated_at = EXCLUDED.updated_at`,
		uuid.New(),
		m.UserID,
		m.MatchedUserID,
		m.Score,
		m.Reason,
		m.Algorithm,
		time.Now().UTC(),
	)
	return err
}

func (r *PostgresMatchResultRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]MatchResultRow, error) {
	rows, err := r.db.Query(ctx,
		`SELECT m.matched_user_id, u.name,
			COALESCE(p.self_introduction_comment, ''),
			m.score, m.reason, m.algorithm, m.updated_at
		 FROM match_results m
		 JOIN users u ON u.id = m.matched_user_id
		 LEFT JOIN user_profiles p ON p.user_id = m.matched_user_id
		 WHERE m.user_id = $1
		 ORDER BY m.score DESC, m.updated_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]MatchResultRow, 0)
	for rows.Next() {
		var row MatchResultRow
		if err := rows.Scan(&row.MatchedUserID, &row.Name, &row.ProfileSummary, &row.Score, &row.Reason, &row.Algorithm, &row.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
