//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

// Package inmemory provides an in-memory storage implementation for
// evaluation sets.
package inmemory

import (
	"context"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/KshitijBhardwaj18/evRAG/evalset"
	"github.com/KshitijBhardwaj18/evRAG/internal/clone"
)

// manager implements the evalset.Manager interface using in-memory storage.
//
// Each API returns deep-cloned objects to avoid accidental mutation by
// callers.
type manager struct {
	mu       sync.RWMutex
	evalSets map[string]*evalset.EvalSet
}

// New creates a new in-memory evaluation set manager.
func New() evalset.Manager {
	return &manager{
		evalSets: make(map[string]*evalset.EvalSet),
	}
}

// Create creates and returns an empty EvalSet with the given name.
func (m *manager) Create(ctx context.Context, name string) (*evalset.EvalSet, error) {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	es := &evalset.EvalSet{
		EvalSetID:         uuid.NewString(),
		Name:              name,
		Items:             []*evalset.Item{},
		CreationTimestamp: time.Now().UTC(),
	}
	m.evalSets[es.EvalSetID] = es
	return cloneEvalSet(es)
}

// Get returns an EvalSet identified by evalSetID. If the set does not exist,
// os.ErrNotExist is returned.
func (m *manager) Get(ctx context.Context, evalSetID string) (*evalset.EvalSet, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	es, ok := m.evalSets[evalSetID]
	if !ok {
		return nil, fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	return cloneEvalSet(es)
}

// List returns all eval sets ordered by creation time.
func (m *manager) List(ctx context.Context) ([]*evalset.EvalSet, error) {
	_ = ctx
	m.mu.RLock()
	defer m.mu.RUnlock()
	sets := make([]*evalset.EvalSet, 0, len(m.evalSets))
	for _, es := range m.evalSets {
		cloned, err := cloneEvalSet(es)
		if err != nil {
			return nil, err
		}
		sets = append(sets, cloned)
	}
	sort.Slice(sets, func(i, j int) bool {
		if sets[i].CreationTimestamp.Equal(sets[j].CreationTimestamp) {
			return sets[i].EvalSetID < sets[j].EvalSetID
		}
		return sets[i].CreationTimestamp.Before(sets[j].CreationTimestamp)
	})
	return sets, nil
}

// AddItem adds the given item to an existing EvalSet identified by evalSetID.
func (m *manager) AddItem(ctx context.Context, evalSetID string, item *evalset.Item) error {
	_ = ctx
	if item == nil {
		return fmt.Errorf("item is nil")
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	es, ok := m.evalSets[evalSetID]
	if !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	cloned, err := cloneItem(item)
	if err != nil {
		return err
	}
	if cloned.ItemID == "" {
		cloned.ItemID = uuid.NewString()
	}
	if cloned.CreationTimestamp.IsZero() {
		cloned.CreationTimestamp = time.Now().UTC()
	}
	for _, existing := range es.Items {
		if existing.ItemID == cloned.ItemID {
			return fmt.Errorf("item %s already exists in eval set %s", cloned.ItemID, evalSetID)
		}
	}
	es.Items = append(es.Items, cloned)
	return nil
}

// Delete deletes the EvalSet identified by evalSetID.
func (m *manager) Delete(ctx context.Context, evalSetID string) error {
	_ = ctx
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.evalSets[evalSetID]; !ok {
		return fmt.Errorf("%w: eval set %s", os.ErrNotExist, evalSetID)
	}
	delete(m.evalSets, evalSetID)
	return nil
}

func cloneEvalSet(es *evalset.EvalSet) (*evalset.EvalSet, error) {
	cloned, err := clone.Clone(es)
	if err != nil {
		return nil, fmt.Errorf("clone eval set %s: %w", es.EvalSetID, err)
	}
	return cloned, nil
}

func cloneItem(item *evalset.Item) (*evalset.Item, error) {
	cloned, err := clone.Clone(item)
	if err != nil {
		return nil, fmt.Errorf("clone item %s: %w", item.ItemID, err)
	}
	return cloned, nil
}
