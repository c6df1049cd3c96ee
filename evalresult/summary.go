//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package evalresult

import (
	"fmt"

	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
	"github.com/KshitijBhardwaj18/evRAG/metric"
)

// Aggregate averages per-item metrics across the completed items of a run.
// A nil field means no completed item carried that metric.
type Aggregate struct {
	// AvgRecallAtK maps each cutoff K to the mean recall@K.
	AvgRecallAtK map[int]float64 `json:"avgRecallAtK,omitempty"`
	// AvgPrecisionAtK maps each cutoff K to the mean precision@K.
	AvgPrecisionAtK map[int]float64 `json:"avgPrecisionAtK,omitempty"`
	// AvgMRR is the mean reciprocal rank averaged over items.
	AvgMRR *float64 `json:"avgMrr,omitempty"`
	// AvgMAP is the mean average precision averaged over items.
	AvgMAP *float64 `json:"avgMapScore,omitempty"`
	// AvgHitRate is the hit rate averaged over items.
	AvgHitRate *float64 `json:"avgHitRate,omitempty"`
	// AvgCoverage is the ground-truth coverage averaged over items.
	AvgCoverage *float64 `json:"avgCoverage,omitempty"`
	// AvgFaithfulness is the faithfulness score averaged over items.
	AvgFaithfulness *float64 `json:"avgFaithfulness,omitempty"`
	// AvgAnswerRelevance is the answer relevance averaged over items.
	AvgAnswerRelevance *float64 `json:"avgAnswerRelevance,omitempty"`
	// AvgContextUtilization is the context utilization averaged over items.
	AvgContextUtilization *float64 `json:"avgContextUtilization,omitempty"`
	// AvgSemanticSimilarity averages over the items where a ground-truth
	// answer made the comparison possible.
	AvgSemanticSimilarity *float64 `json:"avgSemanticSimilarity,omitempty"`
	// AvgRougeL is the ROUGE-L F-measure averaged over items with ground truth.
	AvgRougeL *float64 `json:"avgRougeL,omitempty"`
	// AvgTokenF1 is the token F1 averaged over items with ground truth.
	AvgTokenF1 *float64 `json:"avgF1Score,omitempty"`
	// AvgHallucinationScore is the fused hallucination score averaged over items.
	AvgHallucinationScore *float64 `json:"avgHallucinationScore,omitempty"`
	// AvgCitationCoverage is the citation coverage averaged over items.
	AvgCitationCoverage *float64 `json:"avgCitationCoverage,omitempty"`
	// NumItems is the number of completed items contributing to the averages.
	NumItems int `json:"numItems"`
}

// meanAcc accumulates values whose presence varies per item.
type meanAcc struct {
	sum float64
	n   int
}

func (a *meanAcc) add(v float64) {
	a.sum += v
	a.n++
}

func (a *meanAcc) mean() *float64 {
	if a.n == 0 {
		return nil
	}
	m := itext.Round4(a.sum / float64(a.n))
	return &m
}

// Summarize averages the metrics of the completed items. Faulted items are
// skipped entirely; metrics absent on an item are skipped for that item only.
// An empty or all-faulted input yields an Aggregate with every field nil.
func Summarize(results []*ItemResult) *Aggregate {
	agg := &Aggregate{}
	recallAcc := make(map[int]*meanAcc)
	precisionAcc := make(map[int]*meanAcc)
	var mrr, mapScore, hitRate, coverage meanAcc
	var faithfulness, relevance, utilization, similarity meanAcc
	var rougeL, tokenF1, hallucination, citation meanAcc

	for _, r := range results {
		if r == nil || r.Faulted() {
			continue
		}
		agg.NumItems++
		for k, v := range r.RecallAtK {
			accumulate(recallAcc, k, v)
		}
		for k, v := range r.PrecisionAtK {
			accumulate(precisionAcc, k, v)
		}
		mrr.add(r.MRR)
		mapScore.add(r.MAP)
		hitRate.add(r.HitRate)
		coverage.add(r.Coverage)
		if r.Faithfulness != nil {
			faithfulness.add(r.Faithfulness.Score)
		}
		if r.AnswerRelevance != nil {
			relevance.add(r.AnswerRelevance.Score)
		}
		if r.ContextUtilization != nil {
			utilization.add(r.ContextUtilization.Score)
		}
		if r.SemanticSimilarity != nil && r.SemanticSimilarity.Score != nil {
			similarity.add(*r.SemanticSimilarity.Score)
		}
		if r.RougeL != nil {
			rougeL.add(*r.RougeL)
		}
		if r.TokenF1 != nil {
			tokenF1.add(*r.TokenF1)
		}
		if r.Hallucination != nil {
			hallucination.add(r.Hallucination.HallucinationScore)
			citation.add(r.Hallucination.Breakdown.CitationCheck.Coverage)
		}
	}

	agg.AvgRecallAtK = meansByK(recallAcc)
	agg.AvgPrecisionAtK = meansByK(precisionAcc)
	agg.AvgMRR = mrr.mean()
	agg.AvgMAP = mapScore.mean()
	agg.AvgHitRate = hitRate.mean()
	agg.AvgCoverage = coverage.mean()
	agg.AvgFaithfulness = faithfulness.mean()
	agg.AvgAnswerRelevance = relevance.mean()
	agg.AvgContextUtilization = utilization.mean()
	agg.AvgSemanticSimilarity = similarity.mean()
	agg.AvgRougeL = rougeL.mean()
	agg.AvgTokenF1 = tokenF1.mean()
	agg.AvgHallucinationScore = hallucination.mean()
	agg.AvgCitationCoverage = citation.mean()
	return agg
}

func accumulate(accs map[int]*meanAcc, k int, v float64) {
	acc, ok := accs[k]
	if !ok {
		acc = &meanAcc{}
		accs[k] = acc
	}
	acc.add(v)
}

func meansByK(accs map[int]*meanAcc) map[int]float64 {
	if len(accs) == 0 {
		return nil
	}
	means := make(map[int]float64, len(accs))
	for k, acc := range accs {
		if m := acc.mean(); m != nil {
			means[k] = *m
		}
	}
	return means
}

// Metrics flattens the aggregate into a name-to-value map, keyed by the
// metric names. Ranked metrics use "recall@K" and "precision@K" keys.
// Nil fields are omitted.
func (a *Aggregate) Metrics() map[string]float64 {
	m := make(map[string]float64)
	for k, v := range a.AvgRecallAtK {
		m[fmt.Sprintf("recall@%d", k)] = v
	}
	for k, v := range a.AvgPrecisionAtK {
		m[fmt.Sprintf("precision@%d", k)] = v
	}
	put := func(name string, v *float64) {
		if v != nil {
			m[name] = *v
		}
	}
	put(metric.MetricMRR, a.AvgMRR)
	put(metric.MetricMAP, a.AvgMAP)
	put(metric.MetricHitRate, a.AvgHitRate)
	put(metric.MetricCoverage, a.AvgCoverage)
	put(metric.MetricFaithfulness, a.AvgFaithfulness)
	put(metric.MetricAnswerRelevance, a.AvgAnswerRelevance)
	put(metric.MetricContextUtilization, a.AvgContextUtilization)
	put(metric.MetricSemanticSimilarity, a.AvgSemanticSimilarity)
	put(metric.MetricRougeL, a.AvgRougeL)
	put(metric.MetricTokenF1, a.AvgTokenF1)
	put(metric.MetricHallucinationScore, a.AvgHallucinationScore)
	put(metric.MetricCitationCoverage, a.AvgCitationCoverage)
	return m
}
