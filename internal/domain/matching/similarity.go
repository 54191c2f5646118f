package matching

import "math"

// CosineSimilarity returns dot(a,b) / (‖a‖·‖b‖) for two equal-length
// vectors. Empty, mismatched or zero-norm input yields NaN; callers must
// treat NaN as "cannot score".
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return math.NaN()
	}

	var dot, normA, normB float64
	for i := range a {
		x := float64(a[i])
		y := float64(b[i])
		dot += x * y
		normA += x * x
		normB += y * y
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
