//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package metric declares the canonical metric names produced by the engine.
package metric

// Canonical metric name constants shared by aggregation and run comparison.
const (
	MetricRecallAtK          = "recall_at_k"
	MetricPrecisionAtK       = "precision_at_k"
	MetricMRR                = "mrr"
	MetricMAP                = "map_score"
	MetricHitRate            = "hit_rate"
	MetricCoverage           = "coverage"
	MetricFaithfulness       = "faithfulness"
	MetricAnswerRelevance    = "answer_relevance"
	MetricContextUtilization = "context_utilization"
	MetricSemanticSimilarity = "semantic_similarity"
	MetricRougeL             = "rouge_l"
	MetricTokenF1            = "f1_score"
	MetricHallucinationScore = "hallucination_score"
	MetricCitationCoverage   = "citation_coverage"
)
