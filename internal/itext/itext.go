//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package itext provides shared text helpers for metric computation.
package itext

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

// MinSentenceLen is the minimum trimmed length in runes for a fragment to
// count as a claim. Shorter fragments are punctuation leftovers, not
// meaningful claims.
const MinSentenceLen = 10

// sentenceTerminalRE matches one or more sentence-terminal punctuation characters.
var sentenceTerminalRE = regexp.MustCompile(`[.!?]+`)

// Splitter splits text into sentence-like fragments.
type Splitter interface {
	// Split splits the input text into sentences.
	Split(text string) []string
}

// SplitSentences splits text on sentence-terminal punctuation, trims each
// fragment, and keeps only fragments longer than MinSentenceLen.
func SplitSentences(text string) []string {
	parts := sentenceTerminalRE.Split(text, -1)
	sentences := make([]string, 0, len(parts))
	for _, part := range parts {
		s := strings.TrimSpace(part)
		if utf8.RuneCountInString(s) > MinSentenceLen {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// RegexSplitter is the default Splitter backed by SplitSentences.
type RegexSplitter struct{}

// Split implements Splitter.
func (RegexSplitter) Split(text string) []string {
	return SplitSentences(text)
}

// Tokens lower-cases the text and splits it on whitespace.
func Tokens(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// TokenSet returns the deduplicated lower-case whitespace tokens of the text.
func TokenSet(text string) map[string]struct{} {
	tokens := Tokens(text)
	set := make(map[string]struct{}, len(tokens))
	for _, tok := range tokens {
		set[tok] = struct{}{}
	}
	return set
}

// Overlap counts the tokens present in both sets.
func Overlap(a, b map[string]struct{}) int {
	if len(b) < len(a) {
		a, b = b, a
	}
	n := 0
	for tok := range a {
		if _, ok := b[tok]; ok {
			n++
		}
	}
	return n
}

// Jaccard computes the Jaccard similarity of two token sets.
// Either set being empty yields 0.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := Overlap(a, b)
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

// StopWords is the fixed stop-word set used by keyword relevance.
var StopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "what": {}, "which": {}, "who": {}, "when": {},
	"where": {}, "why": {}, "how": {}, "do": {}, "does": {},
}

// ContentTokenSet returns the token set of the text with stop words removed.
func ContentTokenSet(text string) map[string]struct{} {
	set := TokenSet(text)
	for w := range StopWords {
		delete(set, w)
	}
	return set
}

// Round4 rounds a score to 4 decimal places.
// Rounding at the function boundary keeps aggregate output reproducible.
func Round4(f float64) float64 {
	return math.Round(f*10000) / 10000
}
