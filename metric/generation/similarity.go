//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package generation

import (
	"context"

	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
)

// SimilarityResult reports similarity between generated and reference answers.
type SimilarityResult struct {
	// Score is the reported similarity; nil when no ground truth is available.
	Score *float64 `json:"score"`
	// TextOverlap is the Jaccard token-set baseline.
	TextOverlap float64 `json:"textOverlap"`
	// EmbeddingSimilarity is the embedding cosine similarity when computed.
	EmbeddingSimilarity *float64 `json:"embeddingSimilarity,omitempty"`
	// Method identifies which signal produced Score.
	Method string `json:"method"`
	// Reason explains a nil score.
	Reason string `json:"reason,omitempty"`
}

// SemanticSimilarity scores the generated answer against the ground-truth
// answer: Jaccard token similarity as the baseline, replaced by embedding
// cosine similarity when an embedder is injected. A missing ground truth
// yields a nil score with the missing_ground_truth reason.
func SemanticSimilarity(ctx context.Context, generated, groundTruth string, opt ...Option) *SimilarityResult {
	if groundTruth == "" || generated == "" {
		return &SimilarityResult{Method: MethodNotAvailable, Reason: ReasonMissingGroundTruth}
	}
	overlap := itext.Round4(itext.Jaccard(itext.TokenSet(generated), itext.TokenSet(groundTruth)))
	opts := newOptions(opt...)
	if opts.embedder != nil {
		if sim, ok := embedPairSimilarity(ctx, opts.embedder, generated, groundTruth); ok {
			rounded := itext.Round4(sim)
			return &SimilarityResult{
				Score:               &rounded,
				TextOverlap:         overlap,
				EmbeddingSimilarity: &rounded,
				Method:              MethodEmbedding,
			}
		}
	}
	score := overlap
	return &SimilarityResult{
		Score:       &score,
		TextOverlap: overlap,
		Method:      MethodTextOverlap,
	}
}
