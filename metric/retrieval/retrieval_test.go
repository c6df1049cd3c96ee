//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package retrieval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KshitijBhardwaj18/evRAG/document"
)

func docs(ids ...string) []document.Document {
	out := make([]document.Document, 0, len(ids))
	for _, id := range ids {
		out = append(out, document.FromFields(id, "body of "+id))
	}
	return out
}

func TestRankedMetricsWorkedExample(t *testing.T) {
	retrieved := docs("d1", "d2", "d3")
	groundTruth := docs("d2", "d5")

	recall := RecallAtK(retrieved, groundTruth, []int{1, 3})
	assert.Equal(t, 0.0, recall[1])
	assert.Equal(t, 0.5, recall[3])

	precision := PrecisionAtK(retrieved, groundTruth, []int{3})
	assert.Equal(t, 0.3333, precision[3])

	assert.Equal(t, 0.5, MRR(retrieved, groundTruth))
	assert.Equal(t, 1.0, HitRate(retrieved, groundTruth))
	assert.Equal(t, 0.5, Coverage(retrieved, groundTruth))
	// One relevant doc at rank 2 out of |GT|=2: (1/2) / 2.
	assert.Equal(t, 0.25, MAP(retrieved, groundTruth))
}

func TestRecallAtKEmptyInputs(t *testing.T) {
	ks := []int{1, 3}
	for _, r := range []map[int]float64{
		RecallAtK(nil, docs("d1"), ks),
		RecallAtK(docs("d1"), nil, ks),
		RecallAtK(nil, nil, ks),
	} {
		assert.Equal(t, map[int]float64{1: 0.0, 3: 0.0}, r)
	}
}

func TestRecallAtKDefaultKs(t *testing.T) {
	r := RecallAtK(docs("d1"), docs("d1"), nil)
	assert.Len(t, r, len(DefaultKs))
	assert.Equal(t, 1.0, r[1])
	assert.Equal(t, 1.0, r[10])
}

func TestRecallAtKDuplicatesCountOnce(t *testing.T) {
	retrieved := docs("d1", "d1", "d1")
	groundTruth := docs("d1", "d2")
	r := RecallAtK(retrieved, groundTruth, []int{3})
	assert.Equal(t, 0.5, r[3])
}

func TestPrecisionAtKRawDenominator(t *testing.T) {
	// Duplicates count once in the numerator but keep their slots in the
	// denominator.
	retrieved := docs("d1", "d1", "d2")
	groundTruth := docs("d1")
	p := PrecisionAtK(retrieved, groundTruth, []int{3})
	assert.Equal(t, 0.3333, p[3])
}

func TestPrecisionAtKBeyondListLength(t *testing.T) {
	p := PrecisionAtK(docs("d1", "d2"), docs("d1"), []int{5})
	assert.Equal(t, 0.5, p[5])
}

func TestMRRFirstHitWins(t *testing.T) {
	assert.Equal(t, 1.0, MRR(docs("d1", "d2"), docs("d1", "d2")))
	assert.Equal(t, 0.3333, MRR(docs("x", "y", "d1"), docs("d1")))
	assert.Equal(t, 0.0, MRR(docs("x", "y"), docs("d1")))
	assert.Equal(t, 0.0, MRR(nil, docs("d1")))
}

func TestMAPPenalizesMissedRelevant(t *testing.T) {
	// Both relevant docs found at ranks 1 and 2: (1/1 + 2/2) / 2 = 1.0.
	assert.Equal(t, 1.0, MAP(docs("d1", "d2"), docs("d1", "d2")))
	// Only one of two found, at rank 1: (1/1) / 2 = 0.5.
	assert.Equal(t, 0.5, MAP(docs("d1", "x"), docs("d1", "d2")))
	assert.Equal(t, 0.0, MAP(docs("x", "y"), docs("d1")))
}

func TestHitRate(t *testing.T) {
	assert.Equal(t, 1.0, HitRate(docs("x", "d1"), docs("d1")))
	assert.Equal(t, 0.0, HitRate(docs("x", "y"), docs("d1")))
	assert.Equal(t, 0.0, HitRate(nil, nil))
}

func TestCoverageWholeList(t *testing.T) {
	// No K cutoff: a hit at rank 100 still counts.
	retrieved := make([]document.Document, 0, 101)
	for i := 0; i < 100; i++ {
		retrieved = append(retrieved, document.FromText("filler"))
	}
	retrieved = append(retrieved, document.FromFields("d1", "relevant"))
	assert.Equal(t, 1.0, Coverage(retrieved, docs("d1")))

	// With K equal to the whole list, recall and coverage agree.
	recall := RecallAtK(retrieved, docs("d1"), []int{len(retrieved)})
	assert.Equal(t, Coverage(retrieved, docs("d1")), recall[len(retrieved)])
}

func TestMetricsAcceptPlainTextDocs(t *testing.T) {
	retrieved := []document.Document{
		document.FromText("Paris is the capital of France"),
	}
	groundTruth := []document.Document{
		document.FromText("Paris is the capital of France"),
	}
	assert.Equal(t, 1.0, HitRate(retrieved, groundTruth))
	assert.Equal(t, 1.0, MRR(retrieved, groundTruth))
}
