package embedding

import (
	"context"
	"math"
)

// Provider generates a vector representation of text. The embedding model is
// fixed at startup; every chunk and every query in the system goes through
// the same provider instance so vectors stay comparable.
type Provider interface {
	Generate(ctx context.Context, text string) ([]float32, error)
}

// normalizeVector scales a vector to unit length. Cosine distance in
// pgvector assumes normalized vectors.
func normalizeVector(vec []float32) []float32 {
	var magnitude float64
	for _, v := range vec {
		magnitude += float64(v) * float64(v)
	}
	magnitude = math.Sqrt(magnitude)

	if magnitude == 0 {
		return vec
	}

	normalized := make([]float32, len(vec))
	for i, v := range vec {
		normalized[i] = float32(float64(v) / magnitude)
	}
	return normalized
}
