//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package generation

import "github.com/KshitijBhardwaj18/evRAG/internal/itext"

// TokenF1 returns the token-set F1 of the generated answer against the
// ground-truth answer: precision over generated tokens, recall over
// ground-truth tokens (lower-cased, whitespace-split, deduplicated). A missing
// ground truth (or empty generated answer) yields nil; empty token sets
// yield 0.
func TokenF1(generated, groundTruth string) *float64 {
	if groundTruth == "" || generated == "" {
		return nil
	}
	genTokens := itext.TokenSet(generated)
	gtTokens := itext.TokenSet(groundTruth)
	zero := 0.0
	if len(genTokens) == 0 || len(gtTokens) == 0 {
		return &zero
	}
	tp := itext.Overlap(genTokens, gtTokens)
	precision := float64(tp) / float64(len(genTokens))
	recall := float64(tp) / float64(len(gtTokens))
	if precision+recall == 0 {
		return &zero
	}
	f1 := itext.Round4(2 * precision * recall / (precision + recall))
	return &f1
}
