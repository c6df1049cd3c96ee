//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package judge defines the optional chat-completion capability backing the
// LLM hallucination judge. Any provider returning plain text for a prompt is
// pluggable; absence degrades to rule-based detection.
package judge

import "context"

// Model completes a prompt with a judge model.
type Model interface {
	// Complete returns the model's text response for the prompt.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelFunc adapts a function to the Model interface.
type ModelFunc func(ctx context.Context, prompt string) (string, error)

// Complete implements Model.
func (f ModelFunc) Complete(ctx context.Context, prompt string) (string, error) {
	return f(ctx, prompt)
}
