//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunStatusString(t *testing.T) {
	tests := map[RunStatus]string{
		RunStatusPending:   "pending",
		RunStatusRunning:   "running",
		RunStatusCompleted: "completed",
		RunStatusFailed:    "failed",
	}

	for input, expected := range tests {
		assert.Equal(t, expected, input.String())
	}
}

func TestRunStatusTerminal(t *testing.T) {
	assert.False(t, RunStatusPending.Terminal())
	assert.False(t, RunStatusRunning.Terminal())
	assert.True(t, RunStatusCompleted.Terminal())
	assert.True(t, RunStatusFailed.Terminal())
}
