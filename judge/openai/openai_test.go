//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newChatServer(t *testing.T, capture *map[string]any, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			require.NoError(t, json.NewDecoder(r.Body).Decode(capture))
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":     "chatcmpl-test",
			"object": "chat.completion",
			"model":  DefaultModel,
			"choices": []map[string]any{
				{
					"index":         0,
					"finish_reason": "stop",
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
				},
			},
		})
	}))
}

func TestComplete(t *testing.T) {
	var got map[string]any
	server := newChatServer(t, &got, "HALLUCINATION: NO\nCONFIDENCE: 0.1")
	defer server.Close()

	m := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	response, err := m.Complete(context.Background(), "evaluate this answer")
	require.NoError(t, err)
	assert.Equal(t, "HALLUCINATION: NO\nCONFIDENCE: 0.1", response)

	assert.Equal(t, DefaultModel, got["model"])
	assert.Equal(t, float64(0), got["temperature"])
	assert.Equal(t, float64(DefaultMaxTokens), got["max_completion_tokens"])
	messages, ok := got["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 1)
	message := messages[0].(map[string]any)
	assert.Equal(t, "user", message["role"])
	assert.Equal(t, "evaluate this answer", message["content"])
}

func TestCompleteNoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"model":   DefaultModel,
			"choices": []any{},
		})
	}))
	defer server.Close()

	m := New(WithAPIKey("test-key"), WithBaseURL(server.URL))
	_, err := m.Complete(context.Background(), "prompt")
	assert.Error(t, err)
}

func TestCompleteModelOverride(t *testing.T) {
	var got map[string]any
	server := newChatServer(t, &got, "ok response")
	defer server.Close()

	m := New(WithAPIKey("test-key"), WithBaseURL(server.URL),
		WithModel("gpt-4o-mini"), WithMaxTokens(100))
	_, err := m.Complete(context.Background(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o-mini", got["model"])
	assert.Equal(t, float64(100), got["max_completion_tokens"])
}
