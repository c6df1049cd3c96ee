//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package evalset provides evaluation datasets for evaluation runs.
package evalset

import (
	"context"
	"time"

	"github.com/KshitijBhardwaj18/evRAG/document"
)

// Item is a single evaluation item: a query with its expected outcome.
type Item struct {
	// ItemID uniquely identifies this item within its set.
	ItemID string `json:"itemId"`
	// Query is the query to evaluate the pipeline on.
	Query string `json:"query"`
	// GroundTruthDocs lists the documents that should be retrieved.
	GroundTruthDocs []document.Document `json:"groundTruthDocs,omitempty"`
	// GroundTruthAnswer is the reference answer, empty when unknown.
	GroundTruthAnswer string `json:"groundTruthAnswer,omitempty"`
	// Metadata carries caller-defined annotations.
	Metadata map[string]string `json:"metadata,omitempty"`
	// CreationTimestamp when this item was added.
	CreationTimestamp time.Time `json:"creationTimestamp"`
}

// EvalSet represents a collection of evaluation items.
type EvalSet struct {
	// EvalSetID uniquely identifies this evaluation set.
	EvalSetID string `json:"evalSetId"`
	// Name of the evaluation set.
	Name string `json:"name,omitempty"`
	// Description of the evaluation set.
	Description string `json:"description,omitempty"`
	// Items contains all the evaluation items.
	Items []*Item `json:"items"`
	// CreationTimestamp when this eval set was created.
	CreationTimestamp time.Time `json:"creationTimestamp"`
}

// Manager defines the interface for managing evaluation sets.
type Manager interface {
	// Create creates and returns an empty EvalSet with the given name.
	Create(ctx context.Context, name string) (*EvalSet, error)
	// Get returns an EvalSet identified by evalSetID.
	Get(ctx context.Context, evalSetID string) (*EvalSet, error)
	// List returns all eval sets ordered by creation time.
	List(ctx context.Context) ([]*EvalSet, error)
	// AddItem adds the given item to an existing EvalSet identified by
	// evalSetID, assigning an item ID when the item carries none.
	AddItem(ctx context.Context, evalSetID string, item *Item) error
	// Delete deletes the EvalSet identified by evalSetID.
	Delete(ctx context.Context, evalSetID string) error
}
