package repository

import (
	"context"

	"team-match/internal/database"

	"github.com/google/uuid"
)

// TeamMemberRepository answers the past-teammate exclusion query: every
// user who ever shared a team with the given user.
type TeamMemberRepository interface {
	PastTeammateIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type PostgresTeamMemberRepository struct {
	db database.DB
}

func NewPostgresTeamMemberRepository(db database.DB) *PostgresTeamMemberRepository {
	return &PostgresTeamMemberRepository{db: db}
}

func (r *PostgresTeamMemberRepository) PastTeammateIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.Query(ctx,
		`SELECT DISTINCT other.user_id
		 FROM team_members own
		 JOIN team_members other ON other.team_id = own.team_id
		 WHERE own.user_id = $1 AND other.user_id <> $1`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]uuid.UUID, 0)
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
