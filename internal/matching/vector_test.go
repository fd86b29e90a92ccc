package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCosineSimilarity_IdenticalVectors(t *testing.T) {
	a := []float64{0.3, 0.0, 1.2}

	assert.InDelta(t, 1.0, CosineSimilarity(a, a), 1e-12)
}

func TestCosineSimilarity_OrthogonalVectors(t *testing.T) {
	a := []float64{1.0, 0.0}
	b := []float64{0.0, 1.0}

	assert.Equal(t, 0.0, CosineSimilarity(a, b))
}

func TestCosineSimilarity_ZeroVector(t *testing.T) {
	zero := []float64{0, 0, 0}
	other := []float64{0.5, 0.1, 0.9}

	assert.Equal(t, 0.0, CosineSimilarity(zero, other))
	assert.Equal(t, 0.0, CosineSimilarity(zero, zero))
}

func TestCosineSimilarity_Symmetric(t *testing.T) {
	a := []float64{0.2, 0.8, 0.1}
	b := []float64{0.5, 0.0, 0.4}

	assert.Equal(t, CosineSimilarity(a, b), CosineSimilarity(b, a))
}

func TestCosineSimilarity_ScaleInvariant(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{2.0, 4.0, 6.0}

	assert.InDelta(t, 1.0, CosineSimilarity(a, b), 1e-12)
}
