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
	"strings"

	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
)

// CitationResult reports per-sentence citation coverage of the answer.
type CitationResult struct {
	// CitationCoverage is the cited-sentence fraction in range [0, 1].
	CitationCoverage float64 `json:"citationCoverage"`
	// CitedSentences counts sentences with a citation in the context.
	CitedSentences int `json:"citedSentences"`
	// TotalSentences counts the sentences the answer was split into.
	TotalSentences int `json:"totalSentences"`
	// UncitedSentences lists sentences without a citation.
	UncitedSentences []string `json:"uncitedSentences"`
}

// CheckCitations tests whether each answer sentence can be mapped to a
// retrieved context text, by substring match or by token-overlap ratio at or
// above the citation threshold. With no context every sentence is uncited and
// coverage is 0.
func CheckCitations(answer string, retrieved []document.Document, opt ...Option) *CitationResult {
	opts := newOptions(opt...)
	if strings.TrimSpace(answer) == "" {
		return &CitationResult{CitationCoverage: 0.0, UncitedSentences: []string{}}
	}
	if len(retrieved) == 0 {
		sentences := opts.splitter.Split(answer)
		return &CitationResult{
			CitationCoverage: 0.0,
			TotalSentences:   len(sentences),
			UncitedSentences: sentences,
		}
	}
	contextTexts := document.Texts(retrieved)
	sentences := opts.splitter.Split(answer)
	if len(sentences) == 0 {
		return &CitationResult{CitationCoverage: 1.0, UncitedSentences: []string{}}
	}
	cited := 0
	uncited := make([]string, 0)
	for _, sentence := range sentences {
		if hasCitation(sentence, contextTexts, opts.citationThreshold) {
			cited++
		} else {
			uncited = append(uncited, sentence)
		}
	}
	return &CitationResult{
		CitationCoverage: itext.Round4(float64(cited) / float64(len(sentences))),
		CitedSentences:   cited,
		TotalSentences:   len(sentences),
		UncitedSentences: uncited,
	}
}

// hasCitation reports whether the sentence has supporting evidence in any
// context text: substring containment is a strong citation, token-overlap
// ratio over the sentence's tokens a weaker one.
func hasCitation(sentence string, contextTexts []string, threshold float64) bool {
	sentenceLower := strings.ToLower(sentence)
	sentenceTokens := itext.TokenSet(sentence)
	if len(sentenceTokens) == 0 {
		return false
	}
	for _, text := range contextTexts {
		contextLower := strings.ToLower(text)
		if strings.Contains(contextLower, sentenceLower) {
			return true
		}
		overlap := itext.Overlap(sentenceTokens, itext.TokenSet(text))
		if float64(overlap)/float64(len(sentenceTokens)) >= threshold {
			return true
		}
	}
	return false
}
