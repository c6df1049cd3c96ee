//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package generation computes generation-quality metrics for an answer
// produced from retrieved context. Every metric that can use the optional
// embedding capability defines a lexical fallback, and missing optional
// input is encoded in the result, never raised as an error.
package generation

import (
	"github.com/KshitijBhardwaj18/evRAG/embedder"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
)

const (
	// DefaultSupportThreshold is the cosine similarity above which an
	// embedded claim counts as supported by a context text.
	DefaultSupportThreshold = 0.7
)

// Method tags reported by metrics that select between scoring strategies.
const (
	MethodEmpty        = "empty"
	MethodKeyword      = "keyword"
	MethodSemantic     = "semantic"
	MethodEmbedding    = "embedding"
	MethodTextOverlap  = "text_overlap"
	MethodNotAvailable = "not_available"
)

// ReasonMissingGroundTruth explains a nil semantic similarity score.
const ReasonMissingGroundTruth = "missing_ground_truth"

type options struct {
	embedder  embedder.Embedder
	threshold float64
	splitter  itext.Splitter
}

// Option configures the generation metric functions.
type Option func(*options)

// WithEmbedder injects the optional embedding capability.
func WithEmbedder(e embedder.Embedder) Option {
	return func(o *options) {
		o.embedder = e
	}
}

// WithSupportThreshold overrides the embedding similarity threshold for
// claim support.
func WithSupportThreshold(threshold float64) Option {
	return func(o *options) {
		o.threshold = threshold
	}
}

// WithPunktSplitter switches claim splitting from the punctuation rule to a
// Punkt sentence model.
func WithPunktSplitter() Option {
	return func(o *options) {
		o.splitter = itext.PunktSplitter{}
	}
}

func newOptions(opt ...Option) *options {
	opts := &options{
		threshold: DefaultSupportThreshold,
		splitter:  itext.RegexSplitter{},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
