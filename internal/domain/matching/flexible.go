package matching

import (
	"fmt"
	"math/rand"
	"strings"
	"time"
)

const (
	flexibleBaseMin  = 60.0
	flexibleBaseSpan = 30.0
	flexibleScoreCap = 95.0

	sharedSlotBonus    = 3.0
	sharedSlotBonusCap = 15.0
)

const flexibleReasonClosing = "一緒にチームを組んでみませんか？"

// FlexibleScorer assigns deterministic additive bonuses on top of a base
// score drawn from an injected source. The source must return values in
// [60,90); production uses a time-seeded generator, tests inject a
// constant.
type FlexibleScorer struct {
	base func() float64
}

func NewFlexibleScorer(base func() float64) *FlexibleScorer {
	if base == nil {
		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		base = func() float64 {
			return flexibleBaseMin + rng.Float64()*flexibleBaseSpan
		}
	}
	return &FlexibleScorer{base: base}
}

// Score rates one candidate against the requester on a 0-100 scale,
// capped at 95, and returns the assembled explanation.
func (s *FlexibleScorer) Score(requester, candidate Profile) (float64, string) {
	score := s.base()
	points := make([]string, 0, 4)

	if candidate.IsFlexible() {
		score += 10
		points = append(points, "役割やアイデアにこだわらず柔軟に協力できます")
	} else {
		switch {
		case candidate.DesiredRole.IsFlexible():
			score += 10
			points = append(points, "役割を柔軟に調整してもらえます")
		case requester.DesiredRole.Matches(candidate.DesiredRole):
			score += 15
			points = append(points, "希望する役割が一致しています")
		case !requester.DesiredRole.IsFlexible():
			score += 12
			points = append(points, "異なる役割どうしで補い合えます")
		}

		switch {
		case candidate.IdeaStatus.IsFlexible():
			score += 8
			points = append(points, "アイデアの方向性を柔軟に合わせられます")
		case requester.IdeaStatus.Matches(candidate.IdeaStatus):
			score += 10
			points = append(points, "アイデアの状況が一致しています")
		case !requester.IdeaStatus.IsFlexible():
			score += 8
			points = append(points, "違う視点のアイデアを持ち寄れます")
		}
	}

	if requester.Genres.Any() || candidate.Genres.Any() {
		score += 8
		points = append(points, "ジャンルを問わず幅広く取り組めます")
	} else if shared := requester.Genres.SharedConcrete(candidate.Genres); shared > 0 {
		score += 5 * float64(shared)
		points = append(points, fmt.Sprintf("興味のあるジャンルが%d個共通しています", shared))
	}

	if shared := sharedSlotCount(requester, candidate); shared > 0 {
		bonus := sharedSlotBonus * float64(shared)
		if bonus > sharedSlotBonusCap {
			bonus = sharedSlotBonusCap
		}
		score += bonus
		points = append(points, fmt.Sprintf("活動できる時間帯が%d個重なっています", shared))
	}

	if score > flexibleScoreCap {
		score = flexibleScoreCap
	}

	return score, flexibleReason(points)
}

func flexibleReason(points []string) string {
	if len(points) == 0 {
		return flexibleReasonClosing
	}
	return strings.Join(points, "。") + "。" + flexibleReasonClosing
}

func sharedSlotCount(a, b Profile) int {
	ids := make(map[int64]struct{})
	for _, id := range a.SlotIDs() {
		ids[id] = struct{}{}
	}
	n := 0
	seen := make(map[int64]struct{})
	for _, id := range b.SlotIDs() {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := ids[id]; ok {
			n++
		}
	}
	return n
}
