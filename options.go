//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package evrag

import (
	"github.com/KshitijBhardwaj18/evRAG/embedder"
	"github.com/KshitijBhardwaj18/evRAG/judge"
	"github.com/KshitijBhardwaj18/evRAG/metric/generation"
	"github.com/KshitijBhardwaj18/evRAG/metric/hallucination"
	"github.com/KshitijBhardwaj18/evRAG/metric/retrieval"
)

// defaultParallelism bounds concurrent item evaluation in a run.
const defaultParallelism = 4

type options struct {
	embedder              embedder.Embedder
	judgeModel            judge.Model
	ks                    []int
	faithfulnessThreshold float64
	citationThreshold     float64
	parallelism           int
	punktSplitter         bool
}

func newOptions(opt ...Option) *options {
	opts := &options{
		ks:                    retrieval.DefaultKs,
		faithfulnessThreshold: generation.DefaultSupportThreshold,
		citationThreshold:     hallucination.DefaultCitationThreshold,
		parallelism:           defaultParallelism,
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}

// Option configures an Evaluator.
type Option func(*options)

// WithEmbedder injects the embedding capability. Without it, semantic checks
// degrade to their lexical fallbacks.
func WithEmbedder(e embedder.Embedder) Option {
	return func(o *options) {
		o.embedder = e
	}
}

// WithJudgeModel injects the LLM judge capability. Without it, hallucination
// judging degrades to the rule-based detector.
func WithJudgeModel(m judge.Model) Option {
	return func(o *options) {
		o.judgeModel = m
	}
}

// WithKValues overrides the ranking cutoffs for recall@K and precision@K.
func WithKValues(ks []int) Option {
	return func(o *options) {
		if len(ks) > 0 {
			o.ks = ks
		}
	}
}

// WithFaithfulnessThreshold overrides the cosine similarity threshold for
// claim support.
func WithFaithfulnessThreshold(threshold float64) Option {
	return func(o *options) {
		o.faithfulnessThreshold = threshold
	}
}

// WithCitationThreshold overrides the token-overlap ratio above which an
// answer sentence counts as cited.
func WithCitationThreshold(threshold float64) Option {
	return func(o *options) {
		o.citationThreshold = threshold
	}
}

// WithParallelism bounds the number of items evaluated concurrently in a run.
func WithParallelism(parallelism int) Option {
	return func(o *options) {
		if parallelism > 0 {
			o.parallelism = parallelism
		}
	}
}

// WithPunktSplitter switches sentence splitting from the punctuation rule to
// the trained Punkt tokenizer.
func WithPunktSplitter() Option {
	return func(o *options) {
		o.punktSplitter = true
	}
}

// generationOptions projects the evaluator options onto the generation suite.
func (o *options) generationOptions() []generation.Option {
	var opts []generation.Option
	if o.embedder != nil {
		opts = append(opts, generation.WithEmbedder(o.embedder))
	}
	opts = append(opts, generation.WithSupportThreshold(o.faithfulnessThreshold))
	if o.punktSplitter {
		opts = append(opts, generation.WithPunktSplitter())
	}
	return opts
}

// hallucinationOptions projects the evaluator options onto the hallucination
// suite.
func (o *options) hallucinationOptions() []hallucination.Option {
	var opts []hallucination.Option
	if o.embedder != nil {
		opts = append(opts, hallucination.WithEmbedder(o.embedder))
	}
	if o.judgeModel != nil {
		opts = append(opts, hallucination.WithJudgeModel(o.judgeModel))
	}
	opts = append(opts, hallucination.WithCitationThreshold(o.citationThreshold))
	if o.punktSplitter {
		opts = append(opts, hallucination.WithPunktSplitter())
	}
	return opts
}
