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
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
	"github.com/KshitijBhardwaj18/evRAG/log"
)

// Judge method tags identifying how the verdict was produced.
const (
	JudgeMethodLLM         = "llm_judge"
	JudgeMethodRuleBased   = "rule_based"
	JudgeMethodEmptyAnswer = "empty_answer"
	JudgeMethodNoContext   = "no_context"
)

// judgePromptTemplate is the wire format expected by existing graders and
// must not be reworded.
const judgePromptTemplate = `You are an AI evaluator. Your task is to determine if the ANSWER contains any hallucinations (unsupported or contradictory claims) when compared to the CONTEXT.

CONTEXT:
%s

ANSWER:
%s

Evaluate the answer and identify any claims that are:
1. Not supported by the context
2. Contradict the context
3. Add information not present in the context

Respond in this exact format:
HALLUCINATION: [YES/NO]
CONFIDENCE: [0.0-1.0]
UNSUPPORTED_CLAIMS:
- [claim 1 if any]
- [claim 2 if any]

Be strict in your evaluation.`

// floatRE extracts the first floating-point-looking substring of a line.
var floatRE = regexp.MustCompile(`[\d.]+`)

// JudgeResult reports the hallucination verdict of the judge detector.
type JudgeResult struct {
	// HallucinationDetected reports whether a hallucination was found.
	HallucinationDetected bool `json:"hallucinationDetected"`
	// Confidence is the judge's confidence in range [0, 1].
	Confidence float64 `json:"confidence"`
	// UnsupportedClaims lists the claims the judge found unsupported.
	UnsupportedClaims []string `json:"unsupportedClaims"`
	// Method identifies how the verdict was produced.
	Method string `json:"method"`
}

// JudgeHallucination evaluates the answer against the top context texts with
// the injected judge model. Without a judge model, or when the call or its
// response fails, detection degrades to the rule-based token-overlap check.
// No context at all means the answer is unverifiable and is reported as a
// hallucination with full confidence regardless of judge availability.
func JudgeHallucination(ctx context.Context, answer string, retrieved []document.Document, opt ...Option) *JudgeResult {
	if strings.TrimSpace(answer) == "" {
		return &JudgeResult{
			Confidence:        0.0,
			UnsupportedClaims: []string{},
			Method:            JudgeMethodEmptyAnswer,
		}
	}
	if len(retrieved) == 0 {
		return &JudgeResult{
			HallucinationDetected: true,
			Confidence:            1.0,
			UnsupportedClaims:     []string{answer},
			Method:                JudgeMethodNoContext,
		}
	}
	opts := newOptions(opt...)
	contextTexts := document.Texts(retrieved)
	if opts.judgeModel != nil {
		topTexts := contextTexts
		if len(topTexts) > judgeContextTexts {
			topTexts = topTexts[:judgeContextTexts]
		}
		prompt := fmt.Sprintf(judgePromptTemplate, strings.Join(topTexts, "\n\n"), answer)
		response, err := opts.judgeModel.Complete(ctx, prompt)
		if err != nil {
			log.Warnf("llm judge call failed, using rule-based detection: %v", err)
		} else {
			return parseJudgeResponse(response)
		}
	}
	return ruleBasedDetection(answer, contextTexts, opts.splitter)
}

// parseJudgeResponse parses the judge's structured textual response.
// Unrecognized lines are ignored; an unparsable confidence defaults to 0.5.
func parseJudgeResponse(response string) *JudgeResult {
	detected := false
	confidence := 0.5
	claims := []string{}
	for _, line := range strings.Split(strings.TrimSpace(response), "\n") {
		switch {
		case strings.HasPrefix(line, "HALLUCINATION:"):
			detected = strings.Contains(strings.ToUpper(line), "YES")
		case strings.HasPrefix(line, "CONFIDENCE:"):
			if match := floatRE.FindString(line); match != "" {
				if f, err := strconv.ParseFloat(match, 64); err == nil {
					confidence = f
				}
			}
		case strings.HasPrefix(line, "- "):
			if claim := strings.TrimSpace(line[2:]); claim != "" {
				claims = append(claims, claim)
			}
		}
	}
	return &JudgeResult{
		HallucinationDetected: detected,
		Confidence:            confidence,
		UnsupportedClaims:     claims,
		Method:                JudgeMethodLLM,
	}
}

// ruleBasedDetection marks each sentence unsupported when its token overlap
// with every context text falls below 60%, and flags a hallucination when
// more than 30% of sentences are unsupported.
func ruleBasedDetection(answer string, contextTexts []string, splitter itext.Splitter) *JudgeResult {
	sentences := splitter.Split(answer)
	unsupported := []string{}
	for _, sentence := range sentences {
		if !ruleHasSupport(sentence, contextTexts) {
			unsupported = append(unsupported, sentence)
		}
	}
	ratio := 0.0
	if len(sentences) > 0 {
		ratio = float64(len(unsupported)) / float64(len(sentences))
	}
	return &JudgeResult{
		HallucinationDetected: ratio > ruleDetectionRatio,
		Confidence:            ratio,
		UnsupportedClaims:     unsupported,
		Method:                JudgeMethodRuleBased,
	}
}

// ruleHasSupport reports whether the sentence appears in a context text or
// shares at least 60% of its tokens with one.
func ruleHasSupport(sentence string, contextTexts []string) bool {
	sentenceLower := strings.ToLower(sentence)
	sentenceTokens := itext.TokenSet(sentence)
	for _, text := range contextTexts {
		contextLower := strings.ToLower(text)
		if strings.Contains(contextLower, sentenceLower) {
			return true
		}
		overlap := itext.Overlap(sentenceTokens, itext.TokenSet(text))
		if float64(overlap) >= float64(len(sentenceTokens))*ruleSupportRatio {
			return true
		}
	}
	return false
}
