//
// Tencent is pleased to support the open source community by making evRAG available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// evRAG is licensed under the Apache License Version 2.0.
//
//

package evrag

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/KshitijBhardwaj18/evRAG/evalresult"
)

type itemEvalParam struct {
	idx       int
	ctx       context.Context
	input     Input
	evaluator *Evaluator
	results   []*evalresult.ItemResult
	wg        *sync.WaitGroup
}

func (p *itemEvalParam) reset() {
	p.idx = 0
	p.ctx = nil
	p.input = Input{}
	p.evaluator = nil
	p.results = nil
	p.wg = nil
}

var itemEvalParamPool = &sync.Pool{
	New: func() any { return new(itemEvalParam) },
}

func createItemEvalPool(size int) (*ants.PoolWithFunc, error) {
	if size <= 0 {
		return nil, errors.New("pool size must be greater than 0")
	}
	pool, err := ants.NewPoolWithFunc(size, func(args any) {
		param, ok := args.(*itemEvalParam)
		if !ok {
			panic("item eval pool args type error")
		}
		wg := param.wg
		defer func() {
			wg.Done()
			param.reset()
			itemEvalParamPool.Put(param)
		}()
		param.results[param.idx] = param.evaluator.EvaluateSingle(param.ctx, param.input)
	})
	if err != nil {
		return nil, fmt.Errorf("create item eval pool: %w", err)
	}
	return pool, nil
}
