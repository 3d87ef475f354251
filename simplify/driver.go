// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplify

import (
	"github.com/10395803/mesh-simplification/cost"
	"github.com/10395803/mesh-simplification/dataproj"
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/legality"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/10395803/mesh-simplification/spatial"
	"github.com/cpmech/gosl/chk"
)

// Options configures a Simplify run.
type Options struct {
	// Data enables DATA mode when non-empty: point coordinates that must
	// stay attached to the nearest surviving triangle (§4.7).
	Data []geometry.Point
}

// Simplify runs the algorithm of §4.6 against store in place, collapsing
// edges greedily by cost until the active vertex count reaches target or
// no further legal collapse exists. It returns store (mutated) and an
// error if target could not be reached.
//
// conn must be the SAME Connectivity instance model was built against
// (§5 "non-owning views ... notified of every mutation"): Simplify is the
// only thing that mutates conn, and a cost model reading a different,
// frozen Connectivity would score every collapse after the first against
// stale topology.
func Simplify(store *mesh.Store, conn *mesh.Connectivity, model cost.Model, target int, opts Options) (*mesh.Store, error) {
	if target < 0 {
		chk.Panic("simplify: target vertex count must be >= 0, got %d", target)
	}

	var projector *dataproj.Projector
	dataMode := len(opts.Data) > 0
	if dataMode {
		if !conn.DataMode() {
			chk.Panic("simplify: DATA mode requires conn.EnableDataMode to have been called")
		}
		projector = dataproj.NewProjector(store, conn, opts.Data)
		projector.ProjectInitial()
	}

	index := spatial.NewIndex(store)
	checker := legality.NewChecker(store, conn, index)
	queue := NewQueue()

	for v := 0; v < store.NodesLen(); v++ {
		if !store.IsNodeActive(v) {
			continue
		}
		for _, w := range conn.Node2Node(v).Connected() {
			if w <= v {
				continue
			}
			if info, ok := bestCandidate(model, checker, conn, v, w); ok {
				queue.Upsert(info)
			}
		}
	}

	for store.NumNodes() > target {
		info, ok := queue.PopMin()
		if !ok {
			return store, chk.Err("simplify: target vertex count %d unreachable, stopped at %d active vertices", target, store.NumNodes())
		}
		id1, id2 := info.Id1, info.Id2
		if !store.IsNodeActive(id1) || !store.IsNodeActive(id2) {
			continue
		}

		toRemove := conn.ElemsOnEdge(id1, id2)
		toKeep := conn.ElemsModifiedInCollapse(id1, id2)

		if checker.Check(id1, id2, info.Point, toRemove, toKeep) != legality.OK {
			if fresh, ok := bestCandidate(model, checker, conn, id1, id2); ok {
				queue.Upsert(fresh)
			}
			continue
		}

		oldNeighbors := mesh.UnionIds(conn.Node2Node(id1), conn.Node2Node(id2))

		commit(store, conn, index, model, projector, id1, id2, info.Point, toRemove, toKeep)

		for _, w := range oldNeighbors {
			queue.Remove(id1, w)
			queue.Remove(id2, w)
		}
		queue.Remove(id1, id2)

		// re-evaluates every edge incident to the merged vertex. Edges
		// between two of its neighbors whose Q changed in model.Update
		// keep their previous cost (an approximation of §4.6 step 4's
		// "every edge touched by connectivity changes").
		for _, w := range conn.Node2Node(id1).Connected() {
			a, b := id1, w
			if a > b {
				a, b = b, a
			}
			if fresh, ok := bestCandidate(model, checker, conn, a, b); ok {
				queue.Upsert(fresh)
			}
		}
	}

	return store, nil
}

// bestCandidate evaluates every candidate point for (id1,id2), keeping the
// cheapest one that passes the legality checks (§4.6 step 4, §4.4).
func bestCandidate(model cost.Model, checker *legality.Checker, conn *mesh.Connectivity, id1, id2 int) (CollapseInfo, bool) {
	points := model.CandidatePoints(id1, id2)
	if len(points) == 0 {
		return CollapseInfo{}, false
	}
	toRemove := conn.ElemsOnEdge(id1, id2)
	toKeep := conn.ElemsModifiedInCollapse(id1, id2)

	var best CollapseInfo
	found := false
	for _, p := range points {
		if checker.Check(id1, id2, p, toRemove, toKeep) != legality.OK {
			continue
		}
		c := model.Cost(id1, id2, p)
		if !found || c < best.Cost {
			best = CollapseInfo{Id1: id1, Id2: id2, Point: p, Cost: c}
			found = true
		}
	}
	return best, found
}

// commit performs the mutation sequence of §4.6 step 3: relocate id1 to
// p, deactivate id2, rewrite elemsToKeep, update connectivity, spatial
// index, cost state, and (in DATA mode) reproject the affected data.
func commit(store *mesh.Store, conn *mesh.Connectivity, index *spatial.Index, model cost.Model,
	projector *dataproj.Projector, id1, id2 int, p geometry.Point, toRemove, toKeep []int) {

	store.SetNode(id1, p)
	for _, e := range toKeep {
		store.ReplaceVertex(e, id2, id1)
	}

	var dataIds []int
	if projector != nil {
		all := append(append([]int{}, toRemove...), toKeep...)
		dataIds = conn.DataModifiedInCollapse(all)
	}

	conn.ApplyEdgeCollapsing(id2, id1, toRemove, toKeep)
	index.UpdateCollapse(toRemove, toKeep)
	model.Update(id1)

	if projector != nil && len(dataIds) > 0 {
		projector.Reproject(dataIds, toKeep)
	}
}
