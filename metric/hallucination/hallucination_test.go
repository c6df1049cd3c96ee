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
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/judge"
)

// stubEmbedder returns canned vectors per text, or a fixed error.
type stubEmbedder struct {
	vecs map[string][]float64
	err  error
}

func (s *stubEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	v, ok := s.vecs[text]
	if !ok {
		return nil, fmt.Errorf("no vector for %q", text)
	}
	return v, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float64, error) {
	out := make([][]float64, 0, len(texts))
	for _, text := range texts {
		v, err := s.Embed(ctx, text)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func contextDocs(texts ...string) []document.Document {
	docs := make([]document.Document, 0, len(texts))
	for _, text := range texts {
		docs = append(docs, document.FromText(text))
	}
	return docs
}

func TestClassifySeverity(t *testing.T) {
	tests := []struct {
		score float64
		want  Severity
	}{
		{0.0, SeverityNone},
		{0.19, SeverityNone},
		{0.2, SeverityLow},
		{0.39, SeverityLow},
		{0.4, SeverityMedium},
		{0.59, SeverityMedium},
		{0.6, SeverityHigh},
		{0.79, SeverityHigh},
		{0.8, SeverityCritical},
		{1.0, SeverityCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, classifySeverity(tt.score), "score %v", tt.score)
	}
}

func TestCheckCitationsEmptyAnswer(t *testing.T) {
	r := CheckCitations("", contextDocs("context"))
	assert.Equal(t, 0.0, r.CitationCoverage)
	assert.Empty(t, r.UncitedSentences)
	assert.NotNil(t, r.UncitedSentences)
}

func TestCheckCitationsNoContext(t *testing.T) {
	r := CheckCitations("A statement without any context.", nil)
	assert.Equal(t, 0.0, r.CitationCoverage)
	assert.Equal(t, 1, r.TotalSentences)
	assert.Equal(t, []string{"A statement without any context"}, r.UncitedSentences)
}

func TestCheckCitationsNoSentences(t *testing.T) {
	// All fragments at or below the minimum length: nothing to check.
	r := CheckCitations("Yes. No. Ok.", contextDocs("context"))
	assert.Equal(t, 1.0, r.CitationCoverage)
	assert.Equal(t, 0, r.TotalSentences)
}

func TestCheckCitationsSubstringCited(t *testing.T) {
	r := CheckCitations("Paris is the capital of France.",
		contextDocs("Paris is the capital of France and its largest city."))
	assert.Equal(t, 1.0, r.CitationCoverage)
	assert.Equal(t, 1, r.CitedSentences)
	assert.Empty(t, r.UncitedSentences)
}

func TestCheckCitationsMixed(t *testing.T) {
	answer := "Paris is the capital of France. Quantum flux powers the city grid."
	r := CheckCitations(answer, contextDocs("Paris is the capital of France."))
	assert.Equal(t, 2, r.TotalSentences)
	assert.Equal(t, 1, r.CitedSentences)
	assert.Equal(t, 0.5, r.CitationCoverage)
	assert.Equal(t, []string{"Quantum flux powers the city grid"}, r.UncitedSentences)
}

func TestCheckCitationsThresholdOverride(t *testing.T) {
	// 2 of 5 sentence tokens overlap: ratio 0.4.
	answer := "alpha beta gamma delta epsilon."
	docsCtx := contextDocs("alpha beta zeta eta theta")
	assert.Equal(t, 0.0, CheckCitations(answer, docsCtx).CitationCoverage)
	assert.Equal(t, 1.0, CheckCitations(answer, docsCtx, WithCitationThreshold(0.3)).CitationCoverage)
}

func TestEmbeddingDriftMissingData(t *testing.T) {
	r := EmbeddingDrift(context.Background(), "", contextDocs("context"))
	assert.Equal(t, 1.0, r.DriftScore)
	assert.Equal(t, DriftMethodMissingData, r.Method)

	r = EmbeddingDrift(context.Background(), "answer", nil)
	assert.Equal(t, DriftMethodMissingData, r.Method)
}

func TestEmbeddingDriftNoContextText(t *testing.T) {
	r := EmbeddingDrift(context.Background(), "answer",
		[]document.Document{document.FromMap(map[string]any{"id": "d1"})})
	assert.Equal(t, 1.0, r.DriftScore)
	assert.Equal(t, DriftMethodNoContext, r.Method)
}

func TestEmbeddingDriftTextOverlapProxy(t *testing.T) {
	r := EmbeddingDrift(context.Background(), "a b c", contextDocs("a b c", "x y z"))
	assert.Equal(t, DriftMethodTextOverlap, r.Method)
	// Similarities 1.0 and 0.0.
	assert.Equal(t, 0.5, r.AvgSimilarity)
	assert.Equal(t, 0.5, r.DriftScore)
	assert.Equal(t, 0.0, r.MinSimilarity)
	assert.Equal(t, 1.0, r.MaxSimilarity)
}

func TestEmbeddingDriftWithEmbedder(t *testing.T) {
	e := &stubEmbedder{vecs: map[string][]float64{
		"the answer":  {1, 0},
		"context one": {1, 0},
		"context two": {0, 1},
	}}
	r := EmbeddingDrift(context.Background(), "the answer",
		contextDocs("context one", "context two"), WithEmbedder(e))
	assert.Equal(t, DriftMethodEmbedding, r.Method)
	assert.Equal(t, 0.5, r.AvgSimilarity)
	assert.Equal(t, 0.5, r.DriftScore)
}

func TestEmbeddingDriftProviderFailureFallsBack(t *testing.T) {
	e := &stubEmbedder{err: errors.New("provider down")}
	r := EmbeddingDrift(context.Background(), "a b c", contextDocs("a b c"), WithEmbedder(e))
	assert.Equal(t, DriftMethodTextOverlap, r.Method)
	assert.Equal(t, 0.0, r.DriftScore)
}

func TestJudgeEmptyAnswer(t *testing.T) {
	r := JudgeHallucination(context.Background(), "  ", contextDocs("context"))
	assert.False(t, r.HallucinationDetected)
	assert.Equal(t, 0.0, r.Confidence)
	assert.Equal(t, JudgeMethodEmptyAnswer, r.Method)
}

func TestJudgeNoContext(t *testing.T) {
	// Unverifiable: treated as hallucinated with full confidence even when
	// a judge model is configured.
	model := judge.ModelFunc(func(context.Context, string) (string, error) {
		t.Fatal("judge must not be called without context")
		return "", nil
	})
	r := JudgeHallucination(context.Background(), "An answer.", nil, WithJudgeModel(model))
	assert.True(t, r.HallucinationDetected)
	assert.Equal(t, 1.0, r.Confidence)
	assert.Equal(t, []string{"An answer."}, r.UnsupportedClaims)
	assert.Equal(t, JudgeMethodNoContext, r.Method)
}

func TestJudgeParsesModelResponse(t *testing.T) {
	var gotPrompt string
	model := judge.ModelFunc(func(_ context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "HALLUCINATION: YES\nCONFIDENCE: 0.85\nUNSUPPORTED_CLAIMS:\n- The sky is green", nil
	})
	r := JudgeHallucination(context.Background(), "The sky is green today.",
		contextDocs("The sky is blue."), WithJudgeModel(model))
	assert.True(t, r.HallucinationDetected)
	assert.Equal(t, 0.85, r.Confidence)
	assert.Equal(t, []string{"The sky is green"}, r.UnsupportedClaims)
	assert.Equal(t, JudgeMethodLLM, r.Method)
	assert.Contains(t, gotPrompt, "The sky is blue.")
	assert.Contains(t, gotPrompt, "The sky is green today.")
}

func TestJudgeParserDefaults(t *testing.T) {
	r := parseJudgeResponse("HALLUCINATION: NO\nCONFIDENCE: not a number\nsome stray line")
	assert.False(t, r.HallucinationDetected)
	assert.Equal(t, 0.5, r.Confidence)
	assert.Empty(t, r.UnsupportedClaims)
}

func TestJudgePromptCapsContextTexts(t *testing.T) {
	var gotPrompt string
	model := judge.ModelFunc(func(_ context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "HALLUCINATION: NO\nCONFIDENCE: 0.1", nil
	})
	JudgeHallucination(context.Background(), "An answer mentioning things.",
		contextDocs("text one", "text two", "text three", "text four"),
		WithJudgeModel(model))
	assert.Contains(t, gotPrompt, "text three")
	assert.NotContains(t, gotPrompt, "text four")
}

func TestJudgeModelErrorFallsBackToRules(t *testing.T) {
	model := judge.ModelFunc(func(context.Context, string) (string, error) {
		return "", errors.New("judge unavailable")
	})
	r := JudgeHallucination(context.Background(), "Paris is the capital of France.",
		contextDocs("Paris is the capital of France."), WithJudgeModel(model))
	assert.Equal(t, JudgeMethodRuleBased, r.Method)
	assert.False(t, r.HallucinationDetected)
	assert.Equal(t, 0.0, r.Confidence)
}

func TestJudgeRuleBasedDetection(t *testing.T) {
	// No judge model: the unsupported sentence trips the 0.3 ratio.
	r := JudgeHallucination(context.Background(),
		"Quantum flux powers every city grid.",
		contextDocs("Paris is the capital of France."))
	assert.Equal(t, JudgeMethodRuleBased, r.Method)
	assert.True(t, r.HallucinationDetected)
	assert.Equal(t, 1.0, r.Confidence)
	assert.Equal(t, []string{"Quantum flux powers every city grid"}, r.UnsupportedClaims)
}

func TestFuseWeights(t *testing.T) {
	judgeRes := &JudgeResult{HallucinationDetected: true, Confidence: 1.0, UnsupportedClaims: []string{"claim"}}
	citationRes := &CitationResult{CitationCoverage: 0.0, UncitedSentences: []string{"uncited"}}
	driftRes := &DriftResult{DriftScore: 1.0, AvgSimilarity: 0.0}
	r := Fuse(judgeRes, citationRes, driftRes)
	assert.Equal(t, 1.0, r.HallucinationScore)
	assert.Equal(t, SeverityCritical, r.Severity)
	assert.Equal(t, []string{"claim", "uncited"}, r.HallucinatedSpans)

	clean := Fuse(
		&JudgeResult{Confidence: 0.0},
		&CitationResult{CitationCoverage: 1.0},
		&DriftResult{DriftScore: 0.0},
	)
	assert.Equal(t, 0.0, clean.HallucinationScore)
	assert.Equal(t, SeverityNone, clean.Severity)
	assert.Empty(t, clean.HallucinatedSpans)
}

func TestFusePartialWeights(t *testing.T) {
	r := Fuse(
		&JudgeResult{Confidence: 0.5},
		&CitationResult{CitationCoverage: 0.5},
		&DriftResult{DriftScore: 0.5},
	)
	// 0.40*0.5 + 0.35*0.5 + 0.25*0.5 = 0.5.
	assert.Equal(t, 0.5, r.HallucinationScore)
	assert.Equal(t, SeverityMedium, r.Severity)
	assert.Equal(t, 0.40, r.Breakdown.LLMJudge.Weight)
	assert.Equal(t, 0.35, r.Breakdown.CitationCheck.Weight)
	assert.Equal(t, 0.25, r.Breakdown.EmbeddingDrift.Weight)
}

func TestFuseSpansDedupAndJudgeGating(t *testing.T) {
	// Claims from an undetected judge are excluded; duplicates collapse.
	r := Fuse(
		&JudgeResult{HallucinationDetected: false, Confidence: 0.2, UnsupportedClaims: []string{"ignored"}},
		&CitationResult{CitationCoverage: 0.5, UncitedSentences: []string{"span", "span"}},
		&DriftResult{DriftScore: 0.0},
	)
	assert.Equal(t, []string{"span"}, r.HallucinatedSpans)
}

func TestScoreEndToEndWithoutCapabilities(t *testing.T) {
	r := Score(context.Background(),
		"Paris is the capital of France.",
		contextDocs("Paris is the capital of France and a large city."))
	require.NotNil(t, r)
	assert.Equal(t, SeverityNone, r.Severity)
	assert.False(t, r.Breakdown.LLMJudge.Detected)
	assert.Equal(t, 1.0, r.Breakdown.CitationCheck.Coverage)
	assert.Empty(t, r.HallucinatedSpans)
}
