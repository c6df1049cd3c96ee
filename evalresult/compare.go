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
	"math"

	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
)

// Comparison reports per-metric differences between two aggregates.
type Comparison struct {
	// MetricDeltas maps each shared metric to candidate minus baseline,
	// rounded to 4 decimals.
	MetricDeltas map[string]float64 `json:"metricDeltas"`
	// ImprovementPct maps each shared metric with a non-zero baseline to
	// the delta as a percentage of the baseline, rounded to 2 decimals.
	ImprovementPct map[string]float64 `json:"improvementPct"`
}

// CompareAggregates diffs two run aggregates metric by metric. Only metrics
// present in both aggregates are compared; a metric with a zero baseline gets
// a delta but no improvement percentage.
func CompareAggregates(baseline, candidate *Aggregate) *Comparison {
	cmp := &Comparison{
		MetricDeltas:   make(map[string]float64),
		ImprovementPct: make(map[string]float64),
	}
	if baseline == nil || candidate == nil {
		return cmp
	}
	baseMetrics := baseline.Metrics()
	candMetrics := candidate.Metrics()
	for name, base := range baseMetrics {
		cand, ok := candMetrics[name]
		if !ok {
			continue
		}
		delta := cand - base
		cmp.MetricDeltas[name] = itext.Round4(delta)
		if base != 0 {
			cmp.ImprovementPct[name] = math.Round(delta/math.Abs(base)*100*100) / 100
		}
	}
	return cmp
}
