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
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
)

// Detector fusion weights. They sum to 1 so the fused score stays in [0, 1].
const (
	weightLLMJudge       = 0.40
	weightCitationCheck  = 0.35
	weightEmbeddingDrift = 0.25
)

// Result is the fused hallucination verdict of the three detectors.
type Result struct {
	// HallucinationScore is the weighted fusion of the detector scores,
	// in [0, 1] with higher meaning more hallucinated.
	HallucinationScore float64 `json:"hallucinationScore"`
	// HallucinatedSpans lists the offending text spans: the judge's
	// unsupported claims followed by the uncited sentences, deduplicated
	// in first-seen order.
	HallucinatedSpans []string `json:"hallucinatedSpans"`
	// Severity classifies the fused score.
	Severity Severity `json:"severity"`
	// Breakdown preserves the per-detector evidence for audits.
	Breakdown Breakdown `json:"breakdown"`
}

// Breakdown records each detector's contribution to the fused score.
type Breakdown struct {
	LLMJudge       JudgeContribution    `json:"llmJudge"`
	CitationCheck  CitationContribution `json:"citationCheck"`
	EmbeddingDrift DriftContribution    `json:"embeddingDrift"`
}

// JudgeContribution is the judge detector's share of the fused score.
type JudgeContribution struct {
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Detected bool    `json:"detected"`
}

// CitationContribution is the citation detector's share of the fused score.
type CitationContribution struct {
	Score    float64 `json:"score"`
	Weight   float64 `json:"weight"`
	Coverage float64 `json:"coverage"`
}

// DriftContribution is the drift detector's share of the fused score.
type DriftContribution struct {
	Score         float64 `json:"score"`
	Weight        float64 `json:"weight"`
	AvgSimilarity float64 `json:"avgSimilarity"`
}

// Score runs the three hallucination detectors over the answer and fuses
// their verdicts into a single score. The judge contributes its confidence,
// the citation check contributes the uncited fraction, and the drift
// detector contributes its drift score.
func Score(ctx context.Context, answer string, retrieved []document.Document, opt ...Option) *Result {
	judge := JudgeHallucination(ctx, answer, retrieved, opt...)
	citations := CheckCitations(answer, retrieved, opt...)
	drift := EmbeddingDrift(ctx, answer, retrieved, opt...)
	return Fuse(judge, citations, drift)
}

// Fuse combines pre-computed detector results into the final verdict. It is
// split from Score so callers that already ran the detectors individually
// can fuse without re-running them.
func Fuse(judge *JudgeResult, citations *CitationResult, drift *DriftResult) *Result {
	score := weightLLMJudge*judge.Confidence +
		weightCitationCheck*(1.0-citations.CitationCoverage) +
		weightEmbeddingDrift*drift.DriftScore
	score = itext.Round4(score)

	spans := []string{}
	seen := make(map[string]struct{})
	appendSpan := func(s string) {
		if _, ok := seen[s]; ok {
			return
		}
		seen[s] = struct{}{}
		spans = append(spans, s)
	}
	if judge.HallucinationDetected {
		for _, claim := range judge.UnsupportedClaims {
			appendSpan(claim)
		}
	}
	for _, sentence := range citations.UncitedSentences {
		appendSpan(sentence)
	}

	return &Result{
		HallucinationScore: score,
		HallucinatedSpans:  spans,
		Severity:           classifySeverity(score),
		Breakdown: Breakdown{
			LLMJudge: JudgeContribution{
				Score:    itext.Round4(judge.Confidence),
				Weight:   weightLLMJudge,
				Detected: judge.HallucinationDetected,
			},
			CitationCheck: CitationContribution{
				Score:    itext.Round4(1.0 - citations.CitationCoverage),
				Weight:   weightCitationCheck,
				Coverage: citations.CitationCoverage,
			},
			EmbeddingDrift: DriftContribution{
				Score:         drift.DriftScore,
				Weight:        weightEmbeddingDrift,
				AvgSimilarity: drift.AvgSimilarity,
			},
		},
	}
}
