//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package rouge implements ROUGE-L scoring over token sequences.
package rouge

import "strings"

// Score holds ROUGE precision, recall and F-measure.
type Score struct {
	// Precision is the fraction of predicted tokens covered by the LCS in range [0, 1].
	Precision float64
	// Recall is the fraction of reference tokens covered by the LCS in range [0, 1].
	Recall float64
	// FMeasure is the harmonic mean of precision and recall in range [0, 1].
	FMeasure float64
}

// Tokenizer tokenizes text into a list of tokens.
type Tokenizer interface {
	// Tokenize splits input text into tokens.
	Tokenize(text string) []string
}

// WhitespaceTokenizer lower-cases text and splits it on whitespace.
type WhitespaceTokenizer struct{}

// Tokenize implements Tokenizer.
func (WhitespaceTokenizer) Tokenize(text string) []string {
	return strings.Fields(strings.ToLower(text))
}

// Compute returns the ROUGE-L score for a target (reference) and prediction,
// tokenized with the supplied tokenizer or WhitespaceTokenizer when nil.
func Compute(target, prediction string, tok Tokenizer) Score {
	if tok == nil {
		tok = WhitespaceTokenizer{}
	}
	return ScoreLCS(tok.Tokenize(target), tok.Tokenize(prediction))
}

// ScoreLCS computes ROUGE-L precision, recall, and F-measure using the LCS length.
func ScoreLCS(targetTokens, predTokens []string) Score {
	if len(targetTokens) == 0 || len(predTokens) == 0 {
		return Score{}
	}
	lcsLen := lcsLength(targetTokens, predTokens)
	precision := float64(lcsLen) / float64(len(predTokens))
	recall := float64(lcsLen) / float64(len(targetTokens))
	return Score{Precision: precision, Recall: recall, FMeasure: fMeasure(precision, recall)}
}

// lcsLength computes the length of the longest common subsequence with
// two-row dynamic programming.
func lcsLength(ref, can []string) int {
	if len(ref) == 0 || len(can) == 0 {
		return 0
	}
	prev := make([]int, len(can)+1)
	curr := make([]int, len(can)+1)
	for i := 1; i <= len(ref); i++ {
		curr[0] = 0
		for j := 1; j <= len(can); j++ {
			if ref[i-1] == can[j-1] {
				curr[j] = prev[j-1] + 1
				continue
			}
			if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(can)]
}

// fMeasure computes the harmonic mean of precision and recall.
func fMeasure(precision, recall float64) float64 {
	if precision+recall > 0 {
		return 2 * precision * recall / (precision + recall)
	}
	return 0
}
