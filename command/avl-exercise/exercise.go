// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2019 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// a set of distinct keys processed as one workload
type workload struct {
	name string
	keys []avl.Key
}

// Summary - totals accumulated over all rounds
type Summary struct {
	Rounds    uint64 `json:"rounds"`
	Workloads uint64 `json:"workloads"`
	Inserts   uint64 `json:"inserts"`
	Lookups   uint64 `json:"lookups"`
	Removes   uint64 `json:"removes"`
	MaxHeight int    `json:"max_height"`
}

// runs workloads against a tree built from a shared node pool
type exerciser struct {
	log    *logger.L
	trace  *logger.L // nil unless tree tracing is enabled
	pool   *avl.Pool
	out    io.Writer // tree print destination
	verify bool
	print  bool

	forcePrint bool // set from the command line, survives reloads

	rounds    counter.Counter
	workloads counter.Counter
	inserts   counter.Counter
	lookups   counter.Counter
	removes   counter.Counter
	maxHeight int
}

func newExerciser(log *logger.L, out io.Writer, c *Configuration) *exerciser {
	e := &exerciser{
		log:    log,
		pool:   avl.NewPool(c.Preallocate),
		out:    out,
		verify: c.Verify,
		print:  c.Print,
	}
	if c.Trace {
		e.trace = logger.New("avl")
	}
	return e
}

// deterministic for a given seed
func newRandom(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// makeWorkloads - the key sets for one round
//
// sequential keys are 1..n, random keys are distinct values drawn
// from [0, keyRange)
func makeWorkloads(order string, n int, keyRange uint64, r *rand.Rand) []workload {

	workloads := make([]workload, 0, 2)

	if orderSequential == order || orderBoth == order {
		keys := make([]avl.Key, n)
		for i := range keys {
			keys[i] = avl.Key(i + 1)
		}
		workloads = append(workloads, workload{name: orderSequential, keys: keys})
	}

	if orderRandom == order || orderBoth == order {
		keys := make([]avl.Key, 0, n)
		seen := make(map[avl.Key]struct{}, n)
		for len(keys) < n {
			k := avl.Key(uint64(r.Int63()) % keyRange)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			keys = append(keys, k)
		}
		workloads = append(workloads, workload{name: orderRandom, keys: keys})
	}

	return workloads
}

// round - run every workload through both passes
func (e *exerciser) round(workloads []workload) error {
	e.rounds.Increment()

	for _, w := range workloads {
		e.workloads.Increment()
		e.log.Debugf("workload: %s  keys: %d", w.name, len(w.keys))

		// first pass in key order, second pass reversed
		for _, reverse := range []bool{false, true} {
			if err := e.pass(w, reverse); nil != err {
				e.log.Errorf("workload: %s  reverse: %t  error: %s", w.name, reverse, err)
				return err
			}
		}
	}
	return nil
}

// pass - insert all keys, find all keys, then remove all keys
func (e *exerciser) pass(w workload, reverse bool) error {

	tree := avl.New()
	tree.SetLogger(e.trace)

	n := len(w.keys)
	index := func(i int) int {
		if reverse {
			return n - 1 - i
		}
		return i
	}

	for i := 0; i < n; i += 1 {
		key := w.keys[index(i)]
		e.printf("Insert node %d\n", key)

		node := e.pool.Get(key)
		if !tree.Insert(node) {
			e.pool.Put(node)
			return fault.ErrKeyExists
		}
		e.inserts.Increment()

		if err := e.step(tree); nil != err {
			return err
		}
	}

	if h := tree.Height(); h > e.maxHeight {
		e.maxHeight = h
	}
	e.log.Debugf("tree: %d nodes  height: %d", tree.Count(), tree.Height())

	for _, key := range w.keys {
		e.lookups.Increment()
		node := tree.Lookup(key)
		if nil == node {
			return fault.ErrKeyNotFound
		}
		if node.Key() != key {
			return fault.ErrWrongNodeFound
		}
	}

	for i := 0; i < n; i += 1 {
		key := w.keys[index(i)]
		e.printf("Removing node %d\n", key)

		node := tree.Remove(key)
		if nil == node {
			return fault.ErrKeyNotFound
		}
		if node.Key() != key {
			return fault.ErrWrongNodeRemoved
		}
		e.pool.Put(node)
		e.removes.Increment()

		if err := e.step(tree); nil != err {
			return err
		}
	}

	if !tree.IsEmpty() {
		return fault.ErrTreeNotEmpty
	}

	// without per step verification at least check the final state
	if !e.verify {
		return tree.Check()
	}
	return nil
}

// after each insert or remove
func (e *exerciser) step(tree *avl.Tree) error {
	if e.print {
		tree.Print(e.out)
	}
	if e.verify {
		return tree.Check()
	}
	return nil
}

func (e *exerciser) printf(format string, args ...interface{}) {
	if e.print {
		fmt.Fprintf(e.out, format, args...)
	}
}

// summary - snapshot of the totals
func (e *exerciser) summary() Summary {
	return Summary{
		Rounds:    e.rounds.Uint64(),
		Workloads: e.workloads.Uint64(),
		Inserts:   e.inserts.Uint64(),
		Lookups:   e.lookups.Uint64(),
		Removes:   e.removes.Uint64(),
		MaxHeight: e.maxHeight,
	}
}
