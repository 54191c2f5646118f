package matching

import (
	"fmt"
	"math"
)

const (
	AlgorithmVector   = "vector-matching"
	AlgorithmFlexible = "flexible-matching"
)

const (
	similarityWeight = 0.7
	overlapWeight    = 0.3

	// VectorScoreThreshold is the minimum combined score a candidate must
	// reach in vector mode to be persisted and returned.
	VectorScoreThreshold = 0.3
)

// VectorScore combines embedding similarity and availability overlap into
// the final 0-1 score used in vector mode.
func VectorScore(similarity, overlap float64) float64 {
	return similarityWeight*similarity + overlapWeight*overlap
}

// VectorReason renders the human-readable explanation attached to a
// vector-mode result, with every component rounded to whole percent.
func VectorReason(similarity, overlap, final float64) string {
	return fmt.Sprintf(
		"プロフィール類似度 %d%%、活動時間の重なり %d%%、総合マッチ度 %d%%",
		roundPercent(similarity),
		roundPercent(overlap),
		roundPercent(final),
	)
}

func roundPercent(v float64) int {
	return int(math.Round(v * 100))
}
