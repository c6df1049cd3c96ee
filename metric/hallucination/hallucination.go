//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package hallucination detects unsupported content in a generated answer by
// combining three independent detectors: an LLM judge, a citation check, and
// embedding drift. Each detector is pure given its inputs; a weighted
// aggregator fuses them into one score with a severity label.
package hallucination

import (
	"github.com/KshitijBhardwaj18/evRAG/embedder"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
	"github.com/KshitijBhardwaj18/evRAG/judge"
)

const (
	// DefaultCitationThreshold is the minimum token-overlap ratio for a
	// sentence to count as cited.
	DefaultCitationThreshold = 0.5
	// ruleSupportRatio is the token-overlap share required for rule-based
	// judge support.
	ruleSupportRatio = 0.6
	// ruleDetectionRatio is the unsupported-sentence ratio above which the
	// rule-based judge flags a hallucination.
	ruleDetectionRatio = 0.3
	// judgeContextTexts caps how many context texts reach the judge prompt.
	judgeContextTexts = 3
)

// Severity is the discretized hallucination-score bucket.
type Severity string

// Severity levels ordered from benign to critical.
const (
	SeverityNone     Severity = "none"
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// classifySeverity maps a score to its half-open severity bin.
func classifySeverity(score float64) Severity {
	switch {
	case score < 0.2:
		return SeverityNone
	case score < 0.4:
		return SeverityLow
	case score < 0.6:
		return SeverityMedium
	case score < 0.8:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}

type options struct {
	embedder          embedder.Embedder
	judgeModel        judge.Model
	citationThreshold float64
	splitter          itext.Splitter
}

// Option configures the hallucination detectors.
type Option func(*options)

// WithEmbedder injects the optional embedding capability used by drift.
func WithEmbedder(e embedder.Embedder) Option {
	return func(o *options) {
		o.embedder = e
	}
}

// WithJudgeModel injects the optional LLM judge capability.
func WithJudgeModel(m judge.Model) Option {
	return func(o *options) {
		o.judgeModel = m
	}
}

// WithCitationThreshold overrides the citation token-overlap threshold.
func WithCitationThreshold(threshold float64) Option {
	return func(o *options) {
		o.citationThreshold = threshold
	}
}

// WithPunktSplitter switches sentence splitting from the punctuation rule to
// a Punkt sentence model.
func WithPunktSplitter() Option {
	return func(o *options) {
		o.splitter = itext.PunktSplitter{}
	}
}

func newOptions(opt ...Option) *options {
	opts := &options{
		citationThreshold: DefaultCitationThreshold,
		splitter:          itext.RegexSplitter{},
	}
	for _, o := range opt {
		o(opts)
	}
	return opts
}
