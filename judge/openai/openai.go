//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package openai provides an OpenAI-backed judge model implementation.
package openai

import (
	"context"
	"fmt"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"

	"github.com/KshitijBhardwaj18/evRAG/judge"
)

// Verify that Model implements the judge.Model interface.
var _ judge.Model = (*Model)(nil)

const (
	// DefaultModel is the default judge chat model.
	DefaultModel = "gpt-3.5-turbo"
	// DefaultMaxTokens bounds the judge response length.
	DefaultMaxTokens = 500
	// DefaultTimeout bounds a single judge request.
	DefaultTimeout = 30 * time.Second
)

// Model implements judge.Model using the OpenAI chat completions API.
// The judge runs at temperature 0 so verdicts are reproducible.
type Model struct {
	client    openai.Client
	model     string
	maxTokens int
	apiKey    string
	baseURL   string
	timeout   time.Duration
}

// Option represents a functional option for configuring the Model.
type Option func(*Model)

// WithModel sets the chat model to use.
func WithModel(model string) Option {
	return func(m *Model) {
		m.model = model
	}
}

// WithMaxTokens sets the maximum number of response tokens.
func WithMaxTokens(maxTokens int) Option {
	return func(m *Model) {
		m.maxTokens = maxTokens
	}
}

// WithAPIKey sets the OpenAI API key.
// If not provided, will use OPENAI_API_KEY environment variable.
func WithAPIKey(apiKey string) Option {
	return func(m *Model) {
		m.apiKey = apiKey
	}
}

// WithBaseURL sets the base URL for OpenAI API.
// Optional, for OpenAI-compatible APIs.
func WithBaseURL(baseURL string) Option {
	return func(m *Model) {
		m.baseURL = baseURL
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(m *Model) {
		m.timeout = timeout
	}
}

// New creates a new OpenAI judge model with the given options.
func New(opts ...Option) *Model {
	m := &Model{
		model:     DefaultModel,
		maxTokens: DefaultMaxTokens,
		timeout:   DefaultTimeout,
	}
	for _, opt := range opts {
		opt(m)
	}
	var clientOpts []option.RequestOption
	if m.apiKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(m.apiKey))
	}
	if m.baseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(m.baseURL))
	}
	m.client = openai.NewClient(clientOpts...)
	return m
}

// Complete implements the judge.Model interface.
func (m *Model) Complete(ctx context.Context, prompt string) (string, error) {
	if m.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.timeout)
		defer cancel()
	}
	completion, err := m.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: shared.ChatModel(m.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0),
		MaxCompletionTokens: openai.Int(int64(m.maxTokens)),
	})
	if err != nil {
		return "", fmt.Errorf("judge completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("judge completion returned no choices")
	}
	return completion.Choices[0].Message.Content, nil
}
