package matching

import "math"

// CosineSimilarity returns the cosine of the angle between two equal-length
// vectors. When either vector has zero norm the similarity is 0 rather than
// NaN, so empty or entirely out-of-vocabulary documents compare as wholly
// dissimilar instead of poisoning the result set.
func CosineSimilarity(a, b []float64) float64 {
	n := min(len(a), len(b))

	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
