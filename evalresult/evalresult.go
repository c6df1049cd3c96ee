//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package evalresult provides per-item and per-run evaluation results.
package evalresult

import (
	"time"

	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/metric/generation"
	"github.com/KshitijBhardwaj18/evRAG/metric/hallucination"
	"github.com/KshitijBhardwaj18/evRAG/status"
)

// ItemResult holds every metric computed for a single evaluation item.
// Pointer fields are nil when the metric could not be computed, typically
// because the ground-truth answer was missing.
type ItemResult struct {
	// Query is the evaluated query.
	Query string `json:"query"`
	// RetrievedDocs are the documents the pipeline retrieved, in rank order.
	RetrievedDocs []document.Document `json:"retrievedDocs,omitempty"`
	// GeneratedAnswer is the answer produced by the pipeline.
	GeneratedAnswer string `json:"generatedAnswer"`

	// RecallAtK maps each requested cutoff K to recall@K.
	RecallAtK map[int]float64 `json:"recallAtK,omitempty"`
	// PrecisionAtK maps each requested cutoff K to precision@K.
	PrecisionAtK map[int]float64 `json:"precisionAtK,omitempty"`
	// MRR is the mean reciprocal rank of the first relevant document.
	MRR float64 `json:"mrr"`
	// MAP is the mean average precision over the ranking.
	MAP float64 `json:"mapScore"`
	// HitRate is 1 when any relevant document was retrieved.
	HitRate float64 `json:"hitRate"`
	// Coverage is the fraction of ground-truth documents retrieved.
	Coverage float64 `json:"coverage"`

	// Faithfulness scores how well the answer is grounded in the context.
	Faithfulness *generation.FaithfulnessResult `json:"faithfulness,omitempty"`
	// AnswerRelevance scores how well the answer addresses the query.
	AnswerRelevance *generation.RelevanceResult `json:"answerRelevance,omitempty"`
	// ContextUtilization scores how much of the context the answer used.
	ContextUtilization *generation.UtilizationResult `json:"contextUtilization,omitempty"`
	// SemanticSimilarity compares the answer to the ground-truth answer.
	SemanticSimilarity *generation.SimilarityResult `json:"semanticSimilarity,omitempty"`
	// RougeL is the ROUGE-L F-measure against the ground-truth answer.
	RougeL *float64 `json:"rougeL,omitempty"`
	// TokenF1 is the token-level F1 against the ground-truth answer.
	TokenF1 *float64 `json:"f1Score,omitempty"`

	// Hallucination is the fused hallucination verdict.
	Hallucination *hallucination.Result `json:"hallucination,omitempty"`

	// ErrorMessage is set when evaluating this item failed. A faulted item
	// carries no metric values and is excluded from aggregates.
	ErrorMessage string `json:"errorMessage,omitempty"`
}

// Faulted reports whether evaluating this item failed.
func (r *ItemResult) Faulted() bool {
	return r.ErrorMessage != ""
}

// RunResult is the outcome of evaluating a whole dataset.
type RunResult struct {
	// RunID uniquely identifies this run.
	RunID string `json:"runId"`
	// Status is the terminal lifecycle status of the run.
	Status status.RunStatus `json:"status"`
	// TotalItems is the number of items submitted.
	TotalItems int `json:"totalItems"`
	// CompletedItems is the number of items evaluated successfully.
	CompletedItems int `json:"completedItems"`
	// FailedItems is the number of items that faulted.
	FailedItems int `json:"failedItems"`
	// Results holds one entry per submitted item, in submission order.
	Results []*ItemResult `json:"results"`
	// Aggregate averages the metrics of the completed items.
	Aggregate *Aggregate `json:"aggregate,omitempty"`
	// ErrorMessage aggregates the fault messages of failed items.
	ErrorMessage string `json:"errorMessage,omitempty"`
	// ExecutionTime is the wall-clock duration of the run.
	ExecutionTime time.Duration `json:"executionTime"`
}
