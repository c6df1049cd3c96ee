//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package evrag orchestrates retrieval, generation, and hallucination
// evaluation over the outputs of a RAG pipeline and aggregates the results
// across runs.
package evrag

import (
	"context"
	"fmt"

	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/evalresult"
	"github.com/KshitijBhardwaj18/evRAG/evalset"
	"github.com/KshitijBhardwaj18/evRAG/log"
	"github.com/KshitijBhardwaj18/evRAG/metric/generation"
	"github.com/KshitijBhardwaj18/evRAG/metric/hallucination"
	"github.com/KshitijBhardwaj18/evRAG/metric/retrieval"
)

// Input is one evaluation item: what the pipeline was asked, what it
// produced, and what it should have produced. Ground-truth fields are
// optional; metrics that need them are skipped when they are absent.
type Input struct {
	// Query is the query put to the pipeline.
	Query string `json:"query"`
	// RetrievedDocs are the documents the pipeline retrieved, in rank order.
	RetrievedDocs []document.Document `json:"retrievedDocs,omitempty"`
	// GeneratedAnswer is the answer the pipeline produced.
	GeneratedAnswer string `json:"generatedAnswer"`
	// GroundTruthDocs are the documents that should have been retrieved.
	GroundTruthDocs []document.Document `json:"groundTruthDocs,omitempty"`
	// GroundTruthAnswer is the reference answer, empty when unknown.
	GroundTruthAnswer string `json:"groundTruthAnswer,omitempty"`
}

// InputFromItem pairs a dataset item with the pipeline output observed for
// its query.
func InputFromItem(item *evalset.Item, retrieved []document.Document, answer string) Input {
	return Input{
		Query:             item.Query,
		RetrievedDocs:     retrieved,
		GeneratedAnswer:   answer,
		GroundTruthDocs:   item.GroundTruthDocs,
		GroundTruthAnswer: item.GroundTruthAnswer,
	}
}

// Evaluator runs the three metric suites over pipeline outputs.
type Evaluator struct {
	opts *options
}

// New creates an Evaluator with the supplied options. Both capabilities are
// optional; without them every metric degrades to its lexical fallback.
func New(opt ...Option) *Evaluator {
	return &Evaluator{opts: newOptions(opt...)}
}

// EvaluateSingle computes every metric for one item and merges them into a
// flat record. Missing optional inputs yield nil or sentinel metric values,
// never an error. A panic inside a metric suite is recovered and recorded as
// a fault on the item alone.
func (e *Evaluator) EvaluateSingle(ctx context.Context, in Input) (result *evalresult.ItemResult) {
	result = &evalresult.ItemResult{
		Query:           in.Query,
		RetrievedDocs:   in.RetrievedDocs,
		GeneratedAnswer: in.GeneratedAnswer,
	}
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("evaluate item panicked: %v", r)
			result.ErrorMessage = fmt.Sprintf("evaluate item: %v", r)
		}
	}()

	result.RecallAtK = retrieval.RecallAtK(in.RetrievedDocs, in.GroundTruthDocs, e.opts.ks)
	result.PrecisionAtK = retrieval.PrecisionAtK(in.RetrievedDocs, in.GroundTruthDocs, e.opts.ks)
	result.MRR = retrieval.MRR(in.RetrievedDocs, in.GroundTruthDocs)
	result.MAP = retrieval.MAP(in.RetrievedDocs, in.GroundTruthDocs)
	result.HitRate = retrieval.HitRate(in.RetrievedDocs, in.GroundTruthDocs)
	result.Coverage = retrieval.Coverage(in.RetrievedDocs, in.GroundTruthDocs)

	genOpts := e.opts.generationOptions()
	result.Faithfulness = generation.Faithfulness(ctx, in.GeneratedAnswer, in.RetrievedDocs, genOpts...)
	result.AnswerRelevance = generation.AnswerRelevance(ctx, in.Query, in.GeneratedAnswer, genOpts...)
	result.ContextUtilization = generation.ContextUtilization(in.GeneratedAnswer, in.RetrievedDocs, genOpts...)
	result.SemanticSimilarity = generation.SemanticSimilarity(ctx, in.GeneratedAnswer, in.GroundTruthAnswer, genOpts...)
	result.RougeL = generation.RougeL(in.GeneratedAnswer, in.GroundTruthAnswer)
	result.TokenF1 = generation.TokenF1(in.GeneratedAnswer, in.GroundTruthAnswer)

	result.Hallucination = hallucination.Score(ctx, in.GeneratedAnswer, in.RetrievedDocs, e.opts.hallucinationOptions()...)
	return result
}

// Aggregate folds already-computed item results into per-metric means. The
// fold is pure: it can be recomputed from the same input any number of times
// with identical output.
func (e *Evaluator) Aggregate(results []*evalresult.ItemResult) *evalresult.Aggregate {
	return evalresult.Summarize(results)
}

// CompareAggregates diffs two run aggregates metric by metric.
func CompareAggregates(baseline, candidate *evalresult.Aggregate) *evalresult.Comparison {
	return evalresult.CompareAggregates(baseline, candidate)
}
