package matching

import (
	"strings"
	"testing"
)

func fixedBase(v float64) func() float64 {
	return func() float64 { return v }
}

func TestFlexibleScore_Bounds(t *testing.T) {
	requester := testProfile(RoleTech, IdeaHasSpecificIdea, 1, 2, 3)
	requester.WeekdaySlots = []Slot{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}
	candidate := testProfile(RoleTech, IdeaHasSpecificIdea, 1, 2, 3)
	candidate.WeekdaySlots = requester.WeekdaySlots

	// Max base plus every bonus must still be capped at 95.
	s := NewFlexibleScorer(fixedBase(89.999))
	score, _ := s.Score(requester, candidate)
	if score > 95 {
		t.Fatalf("score must never exceed 95, got %v", score)
	}

	// Min base with no bonuses stays at the base.
	lone := testProfile(RoleBiz, IdeaWantsToParticipate, 7)
	s = NewFlexibleScorer(fixedBase(60))
	score, _ = s.Score(testProfile(RoleTech, IdeaHasSpecificIdea, 1), lone)
	if score < 60 {
		t.Fatalf("score must never fall below the base, got %v", score)
	}
}

func TestFlexibleScore_DefaultBaseRange(t *testing.T) {
	s := NewFlexibleScorer(nil)
	requester := testProfile(RoleTech, IdeaHasSpecificIdea, 7)
	candidate := testProfile(RoleBiz, IdeaWantsToParticipate, 6)
	for i := 0; i < 200; i++ {
		score, _ := s.Score(requester, candidate)
		if score < 60 || score > 95 {
			t.Fatalf("score out of [60,95]: %v", score)
		}
	}
}

func TestFlexibleScore_FlexibleCandidateBonus(t *testing.T) {
	requester := testProfile(RoleTech, IdeaHasSpecificIdea, 1)
	flexCand := testProfile(FlexibleValue, FlexibleValue, 2)

	s := NewFlexibleScorer(fixedBase(70))
	score, reason := s.Score(requester, flexCand)
	if score != 80 {
		t.Fatalf("expected base+10 for a fully flexible candidate, got %v", score)
	}
	if !strings.Contains(reason, "柔軟") {
		t.Fatalf("reason should mention flexibility: %q", reason)
	}
}

func TestFlexibleScore_RoleBonuses(t *testing.T) {
	s := NewFlexibleScorer(fixedBase(60))
	requester := testProfile(RoleTech, IdeaHasSpecificIdea, 1)

	sameRole := testProfile(RoleTech, IdeaHasSpecificIdea, 2)
	score, _ := s.Score(requester, sameRole)
	// +15 role match, +10 idea match.
	if score != 85 {
		t.Fatalf("expected 85 for same role and idea, got %v", score)
	}

	otherRole := testProfile(RoleDesign, IdeaHasSpecificIdea, 2)
	score, _ = s.Score(requester, otherRole)
	// +12 complementary role, +10 idea match.
	if score != 82 {
		t.Fatalf("expected 82 for complementary role, got %v", score)
	}

	flexRole := testProfile(FlexibleValue, IdeaHasSpecificIdea, 2)
	score, _ = s.Score(requester, flexRole)
	// +10 flexible role, +10 idea match.
	if score != 80 {
		t.Fatalf("expected 80 for flexible-role candidate, got %v", score)
	}
}

func TestFlexibleScore_IdeaBonuses(t *testing.T) {
	s := NewFlexibleScorer(fixedBase(60))
	requester := testProfile(RoleTech, IdeaHasSpecificIdea, 1)

	flexIdea := testProfile(RoleTech, FlexibleValue, 2)
	score, _ := s.Score(requester, flexIdea)
	// +15 role match, +8 flexible idea.
	if score != 83 {
		t.Fatalf("expected 83 for flexible-idea candidate, got %v", score)
	}

	otherIdea := testProfile(RoleTech, IdeaWantsToBrainstorm, 2)
	score, _ = s.Score(requester, otherIdea)
	// +15 role match, +8 differing concrete ideas.
	if score != 83 {
		t.Fatalf("expected 83 for differing concrete ideas, got %v", score)
	}
}

func TestFlexibleScore_GenreBonuses(t *testing.T) {
	s := NewFlexibleScorer(fixedBase(60))
	requester := testProfile(RoleTech, IdeaHasSpecificIdea, 1, 2)

	shared := testProfile(RoleTech, IdeaHasSpecificIdea, 1, 2, 3)
	score, _ := s.Score(requester, shared)
	// +15 role, +10 idea, +5*2 shared genres.
	if score != 95 {
		t.Fatalf("expected 95 (capped) for two shared genres, got %v", score)
	}

	anySide := testProfile(RoleDesign, IdeaWantsToBrainstorm, AnyGenreID)
	score, _ = s.Score(requester, anySide)
	// +12 complementary role, +8 differing ideas, +8 any-genre.
	if score != 88 {
		t.Fatalf("expected 88 for any-genre candidate, got %v", score)
	}
}

func TestFlexibleScore_SharedSlotCap(t *testing.T) {
	s := NewFlexibleScorer(fixedBase(60))
	requester := testProfile(RoleBiz, IdeaWantsToParticipate, 1)
	candidate := testProfile(RoleBiz, IdeaWantsToParticipate, 7)
	for i := int64(1); i <= 8; i++ {
		requester.WeekdaySlots = append(requester.WeekdaySlots, Slot{ID: i})
		candidate.WeekdaySlots = append(candidate.WeekdaySlots, Slot{ID: i})
	}

	score, reason := s.Score(requester, candidate)
	// +15 role, +10 idea, slot bonus capped at +15 despite 8 shared slots.
	if score != 95 {
		t.Fatalf("expected capped 95, got %v", score)
	}
	if !strings.Contains(reason, "8個") {
		t.Fatalf("reason should report 8 shared slots: %q", reason)
	}
}

func TestFlexibleScore_ReasonClosingClause(t *testing.T) {
	s := NewFlexibleScorer(fixedBase(75))
	cases := []Profile{
		testProfile(FlexibleValue, FlexibleValue),
		testProfile(RoleTech, IdeaHasSpecificIdea, 1),
		testProfile(RoleDesign, FlexibleValue, AnyGenreID),
	}
	requester := testProfile(RoleTech, IdeaHasSpecificIdea, 1)
	for _, c := range cases {
		_, reason := s.Score(requester, c)
		if !strings.HasSuffix(reason, flexibleReasonClosing) {
			t.Fatalf("reason must end with the closing clause: %q", reason)
		}
	}
}
