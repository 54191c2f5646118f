package matching

import (
	"math"
	"testing"
)

func TestCosineSimilarity_Identical(t *testing.T) {
	v := []float32{0.3, -0.2, 0.9, 0.1}
	got := CosineSimilarity(v, v)
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected ~1, got %v", got)
	}
}

func TestCosineSimilarity_Parallel(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{2, 4, 6}
	got := CosineSimilarity(a, b)
	if math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected ~1 for parallel vectors, got %v", got)
	}
}

func TestCosineSimilarity_Range(t *testing.T) {
	pairs := [][2][]float32{
		{{1, 0}, {0, 1}},
		{{1, 0}, {-1, 0}},
		{{0.5, 0.5, 0.1}, {0.2, 0.9, 0.4}},
	}
	for _, p := range pairs {
		got := CosineSimilarity(p[0], p[1])
		if got < -1-1e-9 || got > 1+1e-9 {
			t.Fatalf("similarity out of range for %v vs %v: %v", p[0], p[1], got)
		}
	}
}

func TestCosineSimilarity_Opposite(t *testing.T) {
	got := CosineSimilarity([]float32{1, 0}, []float32{-1, 0})
	if math.Abs(got+1) > 1e-9 {
		t.Fatalf("expected ~-1, got %v", got)
	}
}

func TestCosineSimilarity_Invalid(t *testing.T) {
	if got := CosineSimilarity(nil, nil); !math.IsNaN(got) {
		t.Fatalf("expected NaN for empty input, got %v", got)
	}
	if got := CosineSimilarity([]float32{1, 2}, []float32{1}); !math.IsNaN(got) {
		t.Fatalf("expected NaN for mismatched lengths, got %v", got)
	}
	if got := CosineSimilarity([]float32{0, 0}, []float32{1, 1}); !math.IsNaN(got) {
		t.Fatalf("expected NaN for zero-norm input, got %v", got)
	}
}
