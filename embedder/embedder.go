//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package embedder defines the optional embedding capability used by the
// metric suites. Absence of an embedder is a first-class state: every metric
// that can use one defines a lexical fallback.
package embedder

import (
	"context"
	"math"
)

// Embedder converts text into fixed-dimension vectors.
type Embedder interface {
	// Embed returns the embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float64, error)
	// EmbedBatch returns one embedding vector per input text, in order.
	EmbedBatch(ctx context.Context, texts []string) ([][]float64, error)
}

// CosineSimilarity computes the cosine similarity of two vectors.
// Mismatched or empty vectors yield 0.
func CosineSimilarity(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// MaxCosineSimilarity returns the highest cosine similarity between vec and
// any of the candidate vectors, or 0 when candidates is empty.
func MaxCosineSimilarity(vec []float64, candidates [][]float64) float64 {
	best := 0.0
	for _, c := range candidates {
		if sim := CosineSimilarity(vec, c); sim > best {
			best = sim
		}
	}
	return best
}
