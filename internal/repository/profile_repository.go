package repository

import (
	"context"
	"errors"

	"team-match/internal/database"
	"team-match/internal/domain/matching"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrNotFound = errors.New("not found")

// Candidate is one row from the candidate pool. Profile is nil when the
// user has not completed profile setup; the matching run counts those as
// per-candidate errors instead of failing outright.
type Candidate struct {
	UserID  uuid.UUID
	Name    string
	Profile *matching.Profile
}

// CandidateFilter narrows the candidate pool at the database level.
// Role, when set, retains candidates whose desired role equals the value
// or is the flexible sentinel: flexible users are eligible for every
// role search.
type CandidateFilter struct {
	ExcludeIDs []uuid.UUID
	Role       string
}

type UserProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (matching.Profile, error)
	ListCandidates(ctx context.Context, f CandidateFilter) ([]Candidate, error)
}

type PostgresUserProfileRepository struct {
	db database.DB
}

func NewPostgresUserProfileRepository(db database.DB) *PostgresUserProfileRepository {
	return &PostgresUserProfileRepository{db: db}
}

func (r *PostgresUserProfileRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (matching.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT u.id, u.name,
			COALESCE(p.personality_type, ''),
			COALESCE(p.idea_status, ''),
			COALESCE(p.desired_role_in_team, ''),
			COALESCE(p.self_introduction_comment, '')
		 FROM users u
		 JOIN user_profiles p ON p.user_id = u.id
		 WHERE u.id = $1`,
		userID,
	)

	var (
		p           matching.Profile
		personality string
		idea        string
		role        string
		intro       string
	)
	if err := row.Scan(&p.UserID, &p.DisplayName, &personality, &idea, &role, &intro); err != nil {
		if isNoRows(err) {
			return matching.Profile{}, ErrNotFound
		}
		return matching.Profile{}, err
	}
	p.PersonalityType = personality
	p.IdeaStatus = matching.PreferenceOf(idea)
	p.DesiredRole = matching.PreferenceOf(role)
	p.SelfIntroduction = intro

	attrs, err := r.loadAttributes(ctx, []uuid.UUID{p.UserID})
	if err != nil {
		return matching.Profile{}, err
	}
	applyAttributes(&p, attrs[p.UserID])

	return p, nil
}

// candidateQuery builds the candidate listing statement. An unset or
// NULL/empty role column is the flexible sentinel, so the role clause
// must retain those rows alongside exact-role matches; profileless users
// pass it too and are counted as per-candidate errors downstream.
func candidateQuery(f CandidateFilter) (string, []any) {
	exclude := f.ExcludeIDs
	if exclude == nil {
		exclude = []uuid.UUID{}
	}

	query := `SELECT u.id, u.name,
			p.user_id IS NOT NULL,
			COALESCE(p.personality_type, ''),
			COALESCE(p.idea_status, ''),
			COALESCE(p.desired_role_in_team, ''),
			COALESCE(p.self_introduction_comment, '')
		 FROM users u
		 LEFT JOIN user_profiles p ON p.user_id = u.id
		 WHERE NOT (u.id = ANY($1))`
	args := []any{exclude}

	if f.Role != "" && f.Role != matching.FlexibleValue {
		query += ` AND (p.desired_role_in_team = $2 OR p.desired_role_in_team = $3
			OR p.desired_role_in_team IS NULL OR p.desired_role_in_team = '')`
		args = append(args, f.Role, matching.FlexibleValue)
	}
	query += ` ORDER BY u.created_at ASC, u.id ASC`

	return query, args
}

func (r *PostgresUserProfileRepository) ListCandidates(ctx context.Context, f CandidateFilter) ([]Candidate, error) {
	query, args := candidateQuery(f)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Candidate, 0)
	withProfile := make([]uuid.UUID, 0)
	for rows.Next() {
		var (
			c           Candidate
			hasProfile  bool
			personality string
			idea        string
			role        string
			intro       string
		)
		if err := rows.Scan(&c.UserID, &c.Name, &hasProfile, &personality, &idea, &role, &intro); err != nil {
			return nil, err
		}
		if hasProfile {
			c.Profile = &matching.Profile{
				UserID:           c.UserID,
				DisplayName:      c.Name,
				PersonalityType:  personality,
				IdeaStatus:       matching.PreferenceOf(idea),
				DesiredRole:      matching.PreferenceOf(role),
				SelfIntroduction: intro,
			}
			withProfile = append(withProfile, c.UserID)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(withProfile) > 0 {
		attrs, err := r.loadAttributes(ctx, withProfile)
		if err != nil {
			return nil, err
		}
		for i := range out {
			if out[i].Profile != nil {
				applyAttributes(out[i].Profile, attrs[out[i].UserID])
			}
		}
	}

	return out, nil
}

type profileAttributes struct {
	genreIDs    []int64
	genreNames  []string
	slots       []matching.Slot
	priorityIDs []int64
}

func applyAttributes(p *matching.Profile, a profileAttributes) {
	p.Genres = matching.GenresOf(a.genreIDs)
	p.GenreNames = a.genreNames
	p.PriorityIDs = a.priorityIDs
	for _, s := range a.slots {
		if s.DayType == matching.DayTypeWeekday {
			p.WeekdaySlots = append(p.WeekdaySlots, s)
		} else {
			p.WeekendSlots = append(p.WeekendSlots, s)
		}
	}
}

func (r *PostgresUserProfileRepository) loadAttributes(ctx context.Context, userIDs []uuid.UUID) (map[uuid.UUID]profileAttributes, error) {
	out := make(map[uuid.UUID]profileAttributes, len(userIDs))

	rows, err := r.db.Query(ctx,
		`SELECT upg.user_id, g.id, g.name
		 FROM user_product_genres upg
		 JOIN product_genres g ON g.id = upg.product_genre_id
		 WHERE upg.user_id = ANY($1)
		 ORDER BY g.id ASC`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			uid  uuid.UUID
			id   int64
			name string
		)
		if err := rows.Scan(&uid, &id, &name); err != nil {
			rows.Close()
			return nil, err
		}
		a := out[uid]
		a.genreIDs = append(a.genreIDs, id)
		a.genreNames = append(a.genreNames, name)
		out[uid] = a
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = r.db.Query(ctx,
		`SELECT ut.user_id, t.id, t.description, t.day_type
		 FROM user_timeslots ut
		 JOIN availability_timeslots t ON t.id = ut.timeslot_id
		 WHERE ut.user_id = ANY($1)
		 ORDER BY t.day_type ASC, t.sort_order ASC`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			uid uuid.UUID
			s   matching.Slot
		)
		if err := rows.Scan(&uid, &s.ID, &s.Description, &s.DayType); err != nil {
			rows.Close()
			return nil, err
		}
		a := out[uid]
		a.slots = append(a.slots, s)
		out[uid] = a
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, err
	}
	rows.Close()

	rows, err = r.db.Query(ctx,
		`SELECT user_id, team_priority_id
		 FROM user_team_priorities
		 WHERE user_id = ANY($1)
		 ORDER BY team_priority_id ASC`,
		userIDs,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			uid uuid.UUID
			id  int64
		)
		if err := rows.Scan(&uid, &id); err != nil {
			return nil, err
		}
		a := out[uid]
		a.priorityIDs = append(a.priorityIDs, id)
		out[uid] = a
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
