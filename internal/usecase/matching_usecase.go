package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"team-match/internal/domain/matching"
	"team-match/internal/repository"

	"github.com/google/uuid"
)

// EmbeddingProvider turns profile text into a fixed-length vector. It is
// an external, rate-limited collaborator and may be absent entirely.
type EmbeddingProvider interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// EmbeddingCache is an optional read-through cache in front of the
// provider. Misses and cache errors fall through to the provider.
type EmbeddingCache interface {
	GetVector(ctx context.Context, text string) ([]float32, bool, error)
	SetVector(ctx context.Context, text string, vec []float32) error
}

// RunNotifier is told when a matching run finishes, so connected clients
// can refresh without polling.
type RunNotifier interface {
	NotifyMatchingCompleted(userID uuid.UUID, matched int)
}

type MatchStartParams struct {
	UserID               uuid.UUID
	DesiredRole          string
	UseVectorMatching    bool
	ExcludePastTeammates bool
}

type MatchItem struct {
	UserID         uuid.UUID
	Name           string
	ProfileSummary string
	ProductGenres  []string
	Timeslots      []string
	MatchScore     int
	MatchReason    string
	Algorithm      string
}

// MatchRunStats tallies one run: candidates considered after filtering,
// results returned, candidates scored, and per-candidate errors.
type MatchRunStats struct {
	Considered int
	Matched    int
	Succeeded  int
	Failed     int
}

type MatchingUsecase interface {
	StartMatching(ctx context.Context, params MatchStartParams) ([]MatchItem, MatchRunStats, error)
}

// MatchingPacing throttles the per-candidate embedding loop to respect
// the provider's rate limits. Zero values disable the delays.
type MatchingPacing struct {
	BatchSize  int
	ItemDelay  time.Duration
	BatchDelay time.Duration
}

type Matching struct {
	profiles repository.UserProfileRepository
	results  repository.MatchResultRepository
	teams    repository.TeamMemberRepository
	embedder EmbeddingProvider
	cache    EmbeddingCache
	scorer   *matching.FlexibleScorer
	notifier RunNotifier
	pacing   MatchingPacing
	logger   *log.Logger
}

func NewMatchingUsecase(
	profiles repository.UserProfileRepository,
	results repository.MatchResultRepository,
	teams repository.TeamMemberRepository,
	embedder EmbeddingProvider,
	cache EmbeddingCache,
	scorer *matching.FlexibleScorer,
	notifier RunNotifier,
	pacing MatchingPacing,
	logger *log.Logger,
) *Matching {
	if scorer == nil {
		scorer = matching.NewFlexibleScorer(nil)
	}
	if pacing.BatchSize <= 0 {
		pacing.BatchSize = 5
	}
	return &Matching{
		profiles: profiles,
		results:  results,
		teams:    teams,
		embedder: embedder,
		cache:    cache,
		scorer:   scorer,
		notifier: notifier,
		pacing:   pacing,
		logger:   logger,
	}
}

func (u *Matching) StartMatching(ctx context.Context, params MatchStartParams) ([]MatchItem, MatchRunStats, error) {
	if params.UserID == uuid.Nil {
		return nil, MatchRunStats{}, ErrInvalidInput
	}

	requester, err := u.profiles.GetByUserID(ctx, params.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, MatchRunStats{}, ErrProfileNotFound
		}
		return nil, MatchRunStats{}, ErrInternal
	}

	exclude := []uuid.UUID{params.UserID}
	if params.ExcludePastTeammates {
		teammates, err := u.teams.PastTeammateIDs(ctx, params.UserID)
		if err != nil {
			return nil, MatchRunStats{}, ErrInternal
		}
		exclude = append(exclude, teammates...)
	}

	role := strings.TrimSpace(params.DesiredRole)
	if role == matching.FlexibleValue {
		role = ""
	}

	candidates, err := u.profiles.ListCandidates(ctx, repository.CandidateFilter{
		ExcludeIDs: exclude,
		Role:       role,
	})
	if err != nil {
		return nil, MatchRunStats{}, ErrInternal
	}

	var (
		items []MatchItem
		stats MatchRunStats
	)
	if params.UseVectorMatching && u.embedder != nil {
		items, stats, err = u.runVector(ctx, requester, candidates)
		if err != nil {
			if !errors.Is(err, errEmbeddingUnavailable) {
				return nil, MatchRunStats{}, err
			}
			u.logf("Matching | mode=fallback user=%s reason=%v", params.UserID, err)
			items, stats = u.runFlexible(ctx, requester, candidates)
		}
	} else {
		items, stats = u.runFlexible(ctx, requester, candidates)
	}

	if u.notifier != nil {
		u.notifier.NotifyMatchingCompleted(params.UserID, stats.Matched)
	}

	return items, stats, nil
}

type scoredItem struct {
	item  MatchItem
	score float64
}

func (u *Matching) runVector(ctx context.Context, requester matching.Profile, candidates []repository.Candidate) ([]MatchItem, MatchRunStats, error) {
	stats := MatchRunStats{Considered: len(candidates)}

	sourceVec, err := u.embedText(ctx, matching.ProfileText(requester))
	if err != nil {
		return nil, stats, errEmbeddingUnavailable
	}

	requesterSlots := requester.SlotDescriptions()
	scored := make([]scoredItem, 0, len(candidates))

	for i, c := range candidates {
		u.pace(i)

		if c.Profile == nil {
			stats.Failed++
			continue
		}

		vec, err := u.embedText(ctx, matching.ProfileText(*c.Profile))
		if err != nil {
			u.logf("Matching | candidate_embed_failed user=%s error=%v", c.UserID, err)
			stats.Failed++
			continue
		}

		similarity := matching.CosineSimilarity(sourceVec, vec)
		if math.IsNaN(similarity) {
			stats.Failed++
			continue
		}

		overlap := matching.SlotOverlap(requesterSlots, c.Profile.SlotDescriptions())
		final := matching.VectorScore(similarity, overlap)
		if final < matching.VectorScoreThreshold {
			stats.Succeeded++
			continue
		}

		reason := matching.VectorReason(similarity, overlap, final)
		u.persist(ctx, repository.MatchResultUpsert{
			UserID:        requester.UserID,
			MatchedUserID: c.UserID,
			Score:         final,
			Reason:        reason,
			Algorithm:     matching.AlgorithmVector,
		})

		scored = append(scored, scoredItem{
			item:  newMatchItem(*c.Profile, int(math.Round(final*100)), reason, matching.AlgorithmVector),
			score: final,
		})
		stats.Succeeded++
	}

	items := rankDescending(scored)
	stats.Matched = len(items)
	return items, stats, nil
}

func (u *Matching) runFlexible(ctx context.Context, requester matching.Profile, candidates []repository.Candidate) ([]MatchItem, MatchRunStats) {
	stats := MatchRunStats{Considered: len(candidates)}

	pool := make([]matching.Profile, 0, len(candidates))
	for _, c := range candidates {
		if c.Profile == nil {
			stats.Failed++
			continue
		}
		pool = append(pool, *c.Profile)
	}

	survivors := matching.FilterBySearchCriteria(requester, pool)
	scored := make([]scoredItem, 0, len(survivors))

	for _, c := range survivors {
		score, reason := u.scorer.Score(requester, c)
		u.persist(ctx, repository.MatchResultUpsert{
			UserID:        requester.UserID,
			MatchedUserID: c.UserID,
			Score:         score / 100,
			Reason:        reason,
			Algorithm:     matching.AlgorithmFlexible,
		})

		scored = append(scored, scoredItem{
			item:  newMatchItem(c, int(math.Round(score)), reason, matching.AlgorithmFlexible),
			score: score,
		})
		stats.Succeeded++
	}

	items := rankDescending(scored)
	stats.Matched = len(items)
	return items, stats
}

// persist upserts one result. A failure is logged and the candidate is
// kept in the in-memory response; the run never aborts over persistence.
func (u *Matching) persist(ctx context.Context, m repository.MatchResultUpsert) {
	if err := u.results.Upsert(ctx, m); err != nil {
		u.logf("Matching | upsert_failed user=%s matched=%s error=%v", m.UserID, m.MatchedUserID, err)
	}
}

func (u *Matching) embedText(ctx context.Context, text string) ([]float32, error) {
	if u.cache != nil {
		if vec, ok, err := u.cache.GetVector(ctx, text); err == nil && ok {
			return vec, nil
		}
	}

	vec, err := u.embedder.Embed(ctx, text)
	if err != nil {
		return nil, err
	}
	if len(vec) == 0 {
		return nil, errors.New("empty embedding")
	}

	if u.cache != nil {
		if err := u.cache.SetVector(ctx, text, vec); err != nil {
			u.logf("Matching | embed_cache_set_failed error=%v", err)
		}
	}
	return vec, nil
}

// pace inserts the inter-item and inter-batch delays in front of
// candidate i. The first candidate is never delayed.
func (u *Matching) pace(i int) {
	if i == 0 {
		return
	}
	if u.pacing.ItemDelay > 0 {
		time.Sleep(u.pacing.ItemDelay)
	}
	if u.pacing.BatchDelay > 0 && i%u.pacing.BatchSize == 0 {
		time.Sleep(u.pacing.BatchDelay)
	}
}

func rankDescending(scored []scoredItem) []MatchItem {
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	items := make([]MatchItem, 0, len(scored))
	for _, s := range scored {
		items = append(items, s.item)
	}
	return items
}

func newMatchItem(p matching.Profile, score int, reason, algorithm string) MatchItem {
	return MatchItem{
		UserID:         p.UserID,
		Name:           p.DisplayName,
		ProfileSummary: p.SelfIntroduction,
		ProductGenres:  p.GenreNames,
		Timeslots:      p.SlotDescriptions(),
		MatchScore:     score,
		MatchReason:    reason,
		Algorithm:      algorithm,
	}
}

func (u *Matching) logf(format string, args ...any) {
	if u.logger != nil {
		u.logger.Printf(format, args...)
	}
}
