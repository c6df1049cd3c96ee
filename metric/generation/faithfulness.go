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
	"context"
	"strings"

	"github.com/KshitijBhardwaj18/evRAG/document"
	"github.com/KshitijBhardwaj18/evRAG/embedder"
	"github.com/KshitijBhardwaj18/evRAG/internal/itext"
	"github.com/KshitijBhardwaj18/evRAG/log"
)

// FaithfulnessResult reports how well the answer is grounded in context.
type FaithfulnessResult struct {
	// Score is the supported fraction of claims in range [0, 1].
	Score float64 `json:"score"`
	// SupportedClaims counts claims with support in the context.
	SupportedClaims int `json:"supportedClaims"`
	// TotalClaims counts the claims the answer was split into.
	TotalClaims int `json:"totalClaims"`
	// Details records the per-claim support decision.
	Details []ClaimSupport `json:"details,omitempty"`
}

// ClaimSupport is the support decision for one claim.
type ClaimSupport struct {
	// Claim is the claim text.
	Claim string `json:"claim"`
	// Supported reports whether the claim has support in the context.
	Supported bool `json:"supported"`
}

// Faithfulness splits the answer into claims and scores the fraction with
// support in the retrieved context. A claim is supported by a substring match
// in either direction, by token overlap of at least min(0.6·|claim tokens|, 5)
// tokens, or, when an embedder is injected, by cosine similarity at or above
// the support threshold. An empty answer or empty context scores 0; an answer
// that yields no claims is vacuously faithful.
func Faithfulness(ctx context.Context, answer string, retrieved []document.Document, opt ...Option) *FaithfulnessResult {
	if strings.TrimSpace(answer) == "" {
		return &FaithfulnessResult{Score: 0.0, SupportedClaims: 0, TotalClaims: 0}
	}
	if len(retrieved) == 0 {
		return &FaithfulnessResult{Score: 0.0, SupportedClaims: 0, TotalClaims: 1}
	}
	contextTexts := document.Texts(retrieved)
	if len(contextTexts) == 0 {
		return &FaithfulnessResult{Score: 0.0, SupportedClaims: 0, TotalClaims: 1}
	}
	opts := newOptions(opt...)
	claims := opts.splitter.Split(answer)
	if len(claims) == 0 {
		return &FaithfulnessResult{Score: 1.0, SupportedClaims: 0, TotalClaims: 0}
	}

	checker := newSupportChecker(ctx, contextTexts, opts)
	supported := 0
	details := make([]ClaimSupport, 0, len(claims))
	for _, claim := range claims {
		ok := checker.supports(claim)
		if ok {
			supported++
		}
		details = append(details, ClaimSupport{Claim: claim, Supported: ok})
	}
	return &FaithfulnessResult{
		Score:           itext.Round4(float64(supported) / float64(len(claims))),
		SupportedClaims: supported,
		TotalClaims:     len(claims),
		Details:         details,
	}
}

// supportChecker evaluates claim support against a fixed context, embedding
// the context texts at most once.
type supportChecker struct {
	ctx          context.Context
	contextTexts []string
	lowerTexts   []string
	tokenSets    []map[string]struct{}
	opts         *options

	contextVecs [][]float64
	embedFailed bool
}

func newSupportChecker(ctx context.Context, contextTexts []string, opts *options) *supportChecker {
	c := &supportChecker{ctx: ctx, contextTexts: contextTexts, opts: opts}
	c.lowerTexts = make([]string, len(contextTexts))
	c.tokenSets = make([]map[string]struct{}, len(contextTexts))
	for i, text := range contextTexts {
		c.lowerTexts[i] = strings.ToLower(text)
		c.tokenSets[i] = itext.TokenSet(text)
	}
	return c
}

// supports checks lexical support first and consults the embedder only when
// the lexical signals miss.
func (c *supportChecker) supports(claim string) bool {
	claimLower := strings.ToLower(claim)
	claimTokens := itext.TokenSet(claim)
	required := float64(len(claimTokens)) * 0.6
	if required > 5 {
		required = 5
	}
	for i, contextLower := range c.lowerTexts {
		if strings.Contains(contextLower, claimLower) || strings.Contains(claimLower, contextLower) {
			return true
		}
		if float64(itext.Overlap(claimTokens, c.tokenSets[i])) >= required {
			return true
		}
	}
	if c.opts.embedder == nil {
		return false
	}
	return c.embeddingSupports(claim)
}

// embeddingSupports compares the claim embedding against every context
// embedding. Provider failures degrade to the lexical verdict.
func (c *supportChecker) embeddingSupports(claim string) bool {
	if c.embedFailed {
		return false
	}
	if c.contextVecs == nil {
		vecs, err := c.opts.embedder.EmbedBatch(c.ctx, c.contextTexts)
		if err != nil {
			log.Warnf("faithfulness: embed context failed, falling back to lexical support: %v", err)
			c.embedFailed = true
			return false
		}
		c.contextVecs = vecs
	}
	claimVec, err := c.opts.embedder.Embed(c.ctx, claim)
	if err != nil {
		log.Warnf("faithfulness: embed claim failed, falling back to lexical support: %v", err)
		c.embedFailed = true
		return false
	}
	return embedder.MaxCosineSimilarity(claimVec, c.contextVecs) >= c.opts.threshold
}
