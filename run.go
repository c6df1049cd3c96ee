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
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/KshitijBhardwaj18/evRAG/evalresult"
	"github.com/KshitijBhardwaj18/evRAG/log"
	"github.com/KshitijBhardwaj18/evRAG/status"
)

// EvaluateRun evaluates a batch of items with bounded parallelism and folds
// the outcomes into a RunResult. Item faults are isolated: a failed item is
// recorded and the run continues. Cancelling the context stops scheduling of
// further items; in-flight items finish and completed results are retained.
// The returned error reports setup failure or cancellation, never item
// faults.
func (e *Evaluator) EvaluateRun(ctx context.Context, items []Input) (*evalresult.RunResult, error) {
	start := time.Now()
	run := &evalresult.RunResult{
		RunID:      uuid.NewString(),
		Status:     status.RunStatusPending,
		TotalItems: len(items),
		Results:    make([]*evalresult.ItemResult, len(items)),
	}
	if len(items) == 0 {
		run.Status = status.RunStatusCompleted
		run.Aggregate = evalresult.Summarize(nil)
		run.ExecutionTime = time.Since(start)
		return run, nil
	}

	pool, err := createItemEvalPool(e.opts.parallelism)
	if err != nil {
		run.Status = status.RunStatusFailed
		run.ErrorMessage = err.Error()
		run.ExecutionTime = time.Since(start)
		return run, err
	}
	defer pool.Release()

	run.Status = status.RunStatusRunning
	log.Infof("evaluation run %s started: %d items, parallelism %d",
		run.RunID, len(items), e.opts.parallelism)

	var wg sync.WaitGroup
	canceled := false
	for i := range items {
		if ctx.Err() != nil {
			canceled = true
			break
		}
		wg.Add(1)
		param := itemEvalParamPool.Get().(*itemEvalParam)
		param.idx = i
		param.ctx = ctx
		param.input = items[i]
		param.evaluator = e
		param.results = run.Results
		param.wg = &wg
		if err := pool.Invoke(param); err != nil {
			wg.Done()
			param.reset()
			itemEvalParamPool.Put(param)
			run.Results[i] = &evalresult.ItemResult{
				Query:           items[i].Query,
				GeneratedAnswer: items[i].GeneratedAnswer,
				ErrorMessage:    fmt.Sprintf("schedule item: %v", err),
			}
		}
	}
	wg.Wait()

	var merr *multierror.Error
	for i, r := range run.Results {
		if r == nil {
			run.Results[i] = &evalresult.ItemResult{
				Query:           items[i].Query,
				GeneratedAnswer: items[i].GeneratedAnswer,
				ErrorMessage:    fmt.Sprintf("not evaluated: %v", ctx.Err()),
			}
			r = run.Results[i]
		}
		if r.Faulted() {
			run.FailedItems++
			merr = multierror.Append(merr, fmt.Errorf("item %d: %s", i, r.ErrorMessage))
		} else {
			run.CompletedItems++
		}
	}
	if merr != nil {
		run.ErrorMessage = merr.Error()
	}

	run.Aggregate = evalresult.Summarize(run.Results)
	run.ExecutionTime = time.Since(start)
	if canceled && run.CompletedItems == 0 {
		run.Status = status.RunStatusFailed
	} else {
		run.Status = status.RunStatusCompleted
	}
	log.Infof("evaluation run %s %s: %d completed, %d failed, %s",
		run.RunID, run.Status, run.CompletedItems, run.FailedItems, run.ExecutionTime)
	if canceled {
		return run, ctx.Err()
	}
	return run, nil
}
