// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package simplify implements the simplification driver of §4.6: the
// priority queue of candidate edge collapses and the main loop that pops,
// validates, commits and re-queues them until the target vertex count is
// reached.
package simplify

import (
	"container/heap"

	"github.com/10395803/mesh-simplification/geometry"
)

// CollapseInfo is a candidate edge collapse (§3 "Collapse record"):
// endpoints with Id1<Id2, the chosen new-point coordinates, and its cost.
type CollapseInfo struct {
	Id1, Id2 int
	Point    geometry.Point
	Cost     float64
}

func pairKey(id1, id2 int) [2]int {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return [2]int{id1, id2}
}

type queueItem struct {
	info  CollapseInfo
	index int
}

type itemHeap []*queueItem

func (h itemHeap) Len() int { return len(h) }

func (h itemHeap) Less(i, j int) bool {
	a, b := h[i].info, h[j].info
	if a.Cost != b.Cost {
		return a.Cost < b.Cost
	}
	if a.Id1 != b.Id1 {
		return a.Id1 < b.Id1
	}
	return a.Id2 < b.Id2
}

func (h itemHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *itemHeap) Push(x interface{}) {
	it := x.(*queueItem)
	it.index = len(*h)
	*h = append(*h, it)
}

func (h *itemHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*h = old[:n-1]
	return it
}

// Queue is the min-heap of candidate collapses keyed by cost (§4.6
// "State"), with an endpoint-pair index for O(log n) removal/update.
type Queue struct {
	heap   itemHeap
	byPair map[[2]int]*queueItem
}

// NewQueue returns an empty queue.
func NewQueue() *Queue {
	return &Queue{byPair: make(map[[2]int]*queueItem)}
}

// Len returns the number of candidate collapses currently queued.
func (q *Queue) Len() int { return len(q.heap) }

// Upsert inserts info, replacing any existing record for the same
// endpoint pair.
func (q *Queue) Upsert(info CollapseInfo) {
	key := pairKey(info.Id1, info.Id2)
	if old, ok := q.byPair[key]; ok {
		old.info = info
		heap.Fix(&q.heap, old.index)
		return
	}
	it := &queueItem{info: info}
	heap.Push(&q.heap, it)
	q.byPair[key] = it
}

// Remove drops the record for (id1,id2), if any. Returns true if a record
// was removed.
func (q *Queue) Remove(id1, id2 int) bool {
	key := pairKey(id1, id2)
	it, ok := q.byPair[key]
	if !ok {
		return false
	}
	heap.Remove(&q.heap, it.index)
	delete(q.byPair, key)
	return true
}

// PopMin removes and returns the cheapest record. ok is false if the
// queue is empty.
func (q *Queue) PopMin() (CollapseInfo, bool) {
	if len(q.heap) == 0 {
		return CollapseInfo{}, false
	}
	it := heap.Pop(&q.heap).(*queueItem)
	delete(q.byPair, pairKey(it.info.Id1, it.info.Id2))
	return it.info, true
}
