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
	"strings"

	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
)

// UtilizationResult reports what share of the answer draws on the context.
type UtilizationResult struct {
	// Score is the supported-sentence fraction in range [0, 1].
	Score float64 `json:"score"`
	// UtilizedSentences counts sentences with context support.
	UtilizedSentences int `json:"utilizedSentences"`
	// TotalSentences counts the sentences the answer was split into.
	TotalSentences int `json:"totalSentences"`
}

// ContextUtilization scores the fraction of answer sentences with support in
// the retrieved context, where support is a substring match or at least 50%
// token overlap with any context text.
func ContextUtilization(answer string, retrieved []document.Document, opt ...Option) *UtilizationResult {
	if strings.TrimSpace(answer) == "" {
		return &UtilizationResult{Score: 0.0, UtilizedSentences: 0, TotalSentences: 0}
	}
	if len(retrieved) == 0 {
		return &UtilizationResult{Score: 0.0, UtilizedSentences: 0, TotalSentences: 1}
	}
	contextTexts := document.Texts(retrieved)
	if len(contextTexts) == 0 {
		return &UtilizationResult{Score: 0.0, UtilizedSentences: 0, TotalSentences: 1}
	}
	opts := newOptions(opt...)
	sentences := opts.splitter.Split(answer)
	if len(sentences) == 0 {
		return &UtilizationResult{Score: 1.0, UtilizedSentences: 0, TotalSentences: 0}
	}
	utilized := 0
	for _, sentence := range sentences {
		if hasContextSupport(sentence, contextTexts) {
			utilized++
		}
	}
	return &UtilizationResult{
		Score:             itext.Round4(float64(utilized) / float64(len(sentences))),
		UtilizedSentences: utilized,
		TotalSentences:    len(sentences),
	}
}

// hasContextSupport reports whether the sentence appears in a context text or
// shares at least half of its tokens with one.
func hasContextSupport(sentence string, contextTexts []string) bool {
	sentenceLower := strings.ToLower(sentence)
	sentenceTokens := itext.TokenSet(sentence)
	for _, text := range contextTexts {
		contextLower := strings.ToLower(text)
		if strings.Contains(contextLower, sentenceLower) {
			return true
		}
		overlap := itext.Overlap(sentenceTokens, itext.TokenSet(text))
		if float64(overlap) >= float64(len(sentenceTokens))*0.5 {
			return true
		}
	}
	return false
}
