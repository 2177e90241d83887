// Copyright 2025 go-highway Authors. SPDX-License-Identifier: Apache-2.0

package workerpool

import (
	"sync"
	"sync/atomic"
)

// Group is a join point for a tree of tasks submitted to a Pool.
//
// Tasks are submitted with Go and may themselves call Go on the same Group.
// Wait blocks until every task submitted so far, and every task those tasks
// submitted, has returned. A task is counted before Go returns, and the
// submitting task is still running at that point, so the count cannot drop
// to zero while part of the tree is outstanding.
//
// Workers never block inside a Group, so a Group cannot deadlock a bounded
// pool no matter how deep the task tree grows.
type Group struct {
	pool    *Pool
	wg      sync.WaitGroup
	spawned atomic.Int64
	inlined atomic.Int64
}

// NewGroup returns an empty Group that submits to p. A nil pool is allowed:
// every task then runs inline.
func (p *Pool) NewGroup() *Group {
	return &Group{pool: p}
}

// Go submits fn to the pool without blocking. When the pool cannot take the
// task (queue full, pool closed or nil), fn runs inline on the calling
// goroutine before Go returns. Either way fn runs exactly once.
//
// Go must be called either before Wait or from within a task of the Group.
func (g *Group) Go(fn func()) {
	g.wg.Add(1)
	if g.pool.trySubmit(workItem{fn: fn, barrier: &g.wg}) {
		g.spawned.Add(1)
		return
	}
	g.inlined.Add(1)
	fn()
	g.wg.Done()
}

// Wait blocks until all tasks of the Group, direct and nested, have finished.
func (g *Group) Wait() {
	g.wg.Wait()
}

// Spawned returns how many tasks were handed to pool workers.
func (g *Group) Spawned() int64 {
	return g.spawned.Load()
}

// Inlined returns how many tasks ran on the submitting goroutine because the
// pool could not accept them.
func (g *Group) Inlined() int64 {
	return g.inlined.Load()
}
