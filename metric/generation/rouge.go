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
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
	"github.com/KshitijBhardwaj18/evRAG/internal/rouge"
)

// RougeL returns the ROUGE-L F-measure of the generated answer against the
// ground-truth answer: recall over ground-truth tokens and precision over
// generated tokens of a longest-common-subsequence alignment. A missing
// ground truth (or empty generated answer) yields nil.
func RougeL(generated, groundTruth string) *float64 {
	if groundTruth == "" || generated == "" {
		return nil
	}
	score := rouge.Compute(groundTruth, generated, nil)
	f := itext.Round4(score.FMeasure)
	return &f
}
