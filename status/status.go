//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package status provides the lifecycle status of an evaluation run.
package status

// RunStatus represents the lifecycle status of an evaluation run.
type RunStatus string

const (
	// RunStatusPending represents a run accepted but not yet started.
	RunStatusPending RunStatus = "pending"
	// RunStatusRunning represents a run currently in progress.
	RunStatusRunning RunStatus = "running"
	// RunStatusCompleted represents a run that finished, possibly with
	// some failed items.
	RunStatusCompleted RunStatus = "completed"
	// RunStatusFailed represents a run that could not complete.
	RunStatusFailed RunStatus = "failed"
)

// String returns the string representation of the run status.
func (s RunStatus) String() string {
	return string(s)
}

// Terminal reports whether the run has reached a final state.
func (s RunStatus) Terminal() bool {
	return s == RunStatusCompleted || s == RunStatusFailed
}
