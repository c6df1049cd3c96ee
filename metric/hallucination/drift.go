//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package hallucination

import (
	"context"

	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/embedder"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
	"github.com/KshitijBhardwaj18/evRAG/log"
)

// Drift method tags identifying how the similarity was measured.
const (
	DriftMethodEmbedding   = "embedding"
	DriftMethodTextOverlap = "text_overlap"
	DriftMethodMissingData = "missing_data"
	DriftMethodNoContext   = "no_context"
)

// DriftResult reports the semantic distance between answer and context.
type DriftResult struct {
	// DriftScore is 1 minus the mean similarity, in range [0, 1].
	DriftScore float64 `json:"driftScore"`
	// AvgSimilarity is the mean similarity across context texts.
	AvgSimilarity float64 `json:"avgSimilarity"`
	// MinSimilarity is the lowest similarity across context texts.
	MinSimilarity float64 `json:"minSimilarity"`
	// MaxSimilarity is the highest similarity across context texts.
	MaxSimilarity float64 `json:"maxSimilarity"`
	// Method identifies how similarity was measured.
	Method string `json:"method"`
}

// EmbeddingDrift measures how far the answer drifts from each context text:
// drift is 1 minus the mean similarity. With an embedder present similarity
// is cosine over embeddings; otherwise Jaccard token similarity serves as a
// proxy. A missing answer or missing context reports maximal drift with a
// method tag naming the reason, signaling "cannot verify, treat as risky".
func EmbeddingDrift(ctx context.Context, answer string, retrieved []document.Document, opt ...Option) *DriftResult {
	if answer == "" || len(retrieved) == 0 {
		return &DriftResult{DriftScore: 1.0, Method: DriftMethodMissingData}
	}
	contextTexts := document.Texts(retrieved)
	if len(contextTexts) == 0 {
		return &DriftResult{DriftScore: 1.0, Method: DriftMethodNoContext}
	}
	opts := newOptions(opt...)
	if opts.embedder != nil {
		if result := embeddingDrift(ctx, opts.embedder, answer, contextTexts); result != nil {
			return result
		}
	}
	return textDrift(answer, contextTexts)
}

// embeddingDrift computes drift from embedding cosine similarities, or nil
// when the provider fails.
func embeddingDrift(ctx context.Context, e embedder.Embedder, answer string, contextTexts []string) *DriftResult {
	answerVec, err := e.Embed(ctx, answer)
	if err != nil {
		log.Warnf("embedding drift: embed answer failed, using text overlap: %v", err)
		return nil
	}
	contextVecs, err := e.EmbedBatch(ctx, contextTexts)
	if err != nil {
		log.Warnf("embedding drift: embed context failed, using text overlap: %v", err)
		return nil
	}
	similarities := make([]float64, 0, len(contextVecs))
	for _, vec := range contextVecs {
		similarities = append(similarities, embedder.CosineSimilarity(answerVec, vec))
	}
	return driftFromSimilarities(similarities, DriftMethodEmbedding)
}

// textDrift computes drift from Jaccard token similarity per context text.
func textDrift(answer string, contextTexts []string) *DriftResult {
	answerTokens := itext.TokenSet(answer)
	similarities := make([]float64, 0, len(contextTexts))
	for _, text := range contextTexts {
		similarities = append(similarities, itext.Jaccard(answerTokens, itext.TokenSet(text)))
	}
	return driftFromSimilarities(similarities, DriftMethodTextOverlap)
}

// driftFromSimilarities folds per-context similarities into a drift result.
func driftFromSimilarities(similarities []float64, method string) *DriftResult {
	sum := 0.0
	minSim := similarities[0]
	maxSim := similarities[0]
	for _, sim := range similarities {
		sum += sim
		if sim < minSim {
			minSim = sim
		}
		if sim > maxSim {
			maxSim = sim
		}
	}
	avg := sum / float64(len(similarities))
	return &DriftResult{
		DriftScore:    itext.Round4(1.0 - avg),
		AvgSimilarity: itext.Round4(avg),
		MinSimilarity: itext.Round4(minSim),
		MaxSimilarity: itext.Round4(maxSim),
		Method:        method,
	}
}
