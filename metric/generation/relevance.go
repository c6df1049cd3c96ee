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

	"github.com/KshitijBhardwaj18/evRAG/embedder"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
	"github.com/KshitijBhardwaj18/evRAG/log"
)

// RelevanceResult reports whether the answer addresses the query.
type RelevanceResult struct {
	// Score is the reported relevance, semantic when an embedder is present.
	Score float64 `json:"score"`
	// KeywordOverlap is the stop-word-filtered keyword baseline.
	KeywordOverlap float64 `json:"keywordOverlap"`
	// SemanticSimilarity is the embedding cosine similarity when computed.
	SemanticSimilarity *float64 `json:"semanticSimilarity,omitempty"`
	// Method identifies which signal produced Score.
	Method string `json:"method"`
}

// AnswerRelevance scores how well the answer addresses the query. The
// baseline is keyword overlap after stop-word removal, capped at 1.0; when an
// embedder is injected its cosine similarity replaces the reported score and
// the keyword baseline is kept as auxiliary detail. Empty query or answer
// scores 0.
func AnswerRelevance(ctx context.Context, query, answer string, opt ...Option) *RelevanceResult {
	if query == "" || answer == "" {
		return &RelevanceResult{Score: 0.0, Method: MethodEmpty}
	}
	keyword := keywordRelevance(query, answer)
	opts := newOptions(opt...)
	if opts.embedder != nil {
		if sim, ok := embedPairSimilarity(ctx, opts.embedder, query, answer); ok {
			rounded := itext.Round4(sim)
			return &RelevanceResult{
				Score:              rounded,
				KeywordOverlap:     itext.Round4(keyword),
				SemanticSimilarity: &rounded,
				Method:             MethodSemantic,
			}
		}
	}
	return &RelevanceResult{
		Score:          itext.Round4(keyword),
		KeywordOverlap: itext.Round4(keyword),
		Method:         MethodKeyword,
	}
}

// keywordRelevance computes the fraction of meaningful query tokens present
// in the answer, capped at 1.0.
func keywordRelevance(query, answer string) float64 {
	queryTokens := itext.ContentTokenSet(query)
	if len(queryTokens) == 0 {
		return 0.0
	}
	answerTokens := itext.ContentTokenSet(answer)
	relevance := float64(itext.Overlap(queryTokens, answerTokens)) / float64(len(queryTokens))
	if relevance > 1.0 {
		relevance = 1.0
	}
	return relevance
}

// embedPairSimilarity embeds two texts and returns their cosine similarity.
// Provider failures are logged and reported as unavailable.
func embedPairSimilarity(ctx context.Context, e embedder.Embedder, a, b string) (float64, bool) {
	vecs, err := e.EmbedBatch(ctx, []string{a, b})
	if err != nil || len(vecs) != 2 {
		log.Warnf("embedding similarity unavailable, using lexical fallback: %v", err)
		return 0, false
	}
	return embedder.CosineSimilarity(vecs[0], vecs[1]), true
}
