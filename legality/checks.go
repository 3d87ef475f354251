// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package legality implements the ordered collapse-legality checks of
// §4.4: non-degeneracy, inversion, boundary preservation, manifoldness,
// and self-intersection.
package legality

import (
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/10395803/mesh-simplification/meshops"
	"github.com/10395803/mesh-simplification/spatial"
)

// Reason identifies which check rejected a collapse.
type Reason int

const (
	OK Reason = iota
	Degenerate
	Inversion
	BoundaryViolation
	NonManifold
	SelfIntersection
)

func (r Reason) String() string {
	switch r {
	case OK:
		return "ok"
	case Degenerate:
		return "degenerate"
	case Inversion:
		return "inversion"
	case BoundaryViolation:
		return "boundary-violation"
	case NonManifold:
		return "non-manifold"
	case SelfIntersection:
		return "self-intersection"
	default:
		return "unknown"
	}
}

// Checker runs the five checks of §4.4 against the current mesh state.
type Checker struct {
	store *mesh.Store
	conn  *mesh.Connectivity
	index *spatial.Index
}

// NewChecker ties the checks to a mesh, its connectivity, and its spatial
// index.
func NewChecker(store *mesh.Store, conn *mesh.Connectivity, index *spatial.Index) *Checker {
	return &Checker{store: store, conn: conn, index: index}
}

// Check runs the five ordered checks of §4.4 for collapsing (id1,id2) to
// p, given the elements that would be removed and kept. It returns the
// first failing reason, or OK if the collapse is legal.
func (c *Checker) Check(id1, id2 int, p geometry.Point, elemsToRemove, elemsToKeep []int) Reason {
	if r := c.checkDegeneracy(id1, id2, p); r != OK {
		return r
	}
	if r := c.checkInversion(id1, id2, p, elemsToKeep); r != OK {
		return r
	}
	if r := c.checkBoundary(id1, id2, p); r != OK {
		return r
	}
	if r := c.checkManifold(id1, id2, elemsToRemove, elemsToKeep); r != OK {
		return r
	}
	if r := c.checkSelfIntersection(id1, id2, p, elemsToKeep); r != OK {
		return r
	}
	return OK
}

// checkDegeneracy rejects p if it coincides with any active vertex other
// than id1, id2 (§4.4 step 1).
func (c *Checker) checkDegeneracy(id1, id2 int, p geometry.Point) Reason {
	for v := 0; v < c.store.NodesLen(); v++ {
		if v == id1 || v == id2 || !c.store.IsNodeActive(v) {
			continue
		}
		if geometry.Coincident(p, c.store.Node(v).Point, 1e-12) {
			return Degenerate
		}
	}
	return OK
}

// checkInversion rejects collapses that flip the orientation of any
// surviving triangle (§4.4 step 2).
func (c *Checker) checkInversion(id1, id2 int, p geometry.Point, elemsToKeep []int) Reason {
	removed := id2
	kept := id1
	for _, e := range elemsToKeep {
		elem := c.store.Elem(e)
		p0, p1, p2 := meshops.Triangle(c.store, elem)
		before := geometry.TriangleNormal(p0, p1, p2)

		replace := func(v geometry.Point, id int) geometry.Point {
			if id == removed || id == kept {
				return p
			}
			return v
		}
		np0 := replace(p0, elem.Vert[0])
		np1 := replace(p1, elem.Vert[1])
		np2 := replace(p2, elem.Vert[2])
		after := geometry.TriangleNormal(np0, np1, np2)

		if geometry.Dot(before, after) <= 0 {
			return Inversion
		}
	}
	return OK
}

// checkBoundary rejects a collapse whose new point is inconsistent with
// the endpoints' boundary flags (§4.4 step 3, policy of §4.3.1).
func (c *Checker) checkBoundary(id1, id2 int, p geometry.Point) Reason {
	bp := c.store.Node(id1).Boundary()
	bq := c.store.Node(id2).Boundary()

	if bp == geometry.Triple && bq == geometry.Triple {
		return BoundaryViolation
	}
	if bp == geometry.Triple {
		if !geometry.Coincident(p, c.store.Node(id1).Point, 1e-12) {
			return BoundaryViolation
		}
		return OK
	}
	if bq == geometry.Triple {
		if !geometry.Coincident(p, c.store.Node(id2).Point, 1e-12) {
			return BoundaryViolation
		}
		return OK
	}
	if (bp == geometry.Boundary) != (bq == geometry.Boundary) {
		// exactly one endpoint boundary: new point must sit at that endpoint
		anchor := c.store.Node(id1).Point
		if bq == geometry.Boundary {
			anchor = c.store.Node(id2).Point
		}
		if !geometry.Coincident(p, anchor, 1e-12) {
			return BoundaryViolation
		}
	}
	return OK
}

// checkManifold rejects collapses that would leave an edge shared by more
// than two triangles or produce duplicate vertex tuples (§4.4 step 4).
// The link of the new vertex is not examined: whether it forms a simple
// cycle or simple path plays no part in the verdict.
func (c *Checker) checkManifold(id1, id2 int, elemsToRemove, elemsToKeep []int) Reason {
	// simulate the post-collapse tuples of elemsToKeep
	tuples := make(map[[3]int]struct{})
	edgeCount := make(map[[2]int]int)

	remove := map[int]struct{}{}
	for _, e := range elemsToRemove {
		remove[e] = struct{}{}
	}

	for _, e := range c.conn.Node2Elem(id1).Connected() {
		if _, gone := remove[e]; gone {
			continue
		}
		if dup := recordTuple(c.store, e, id2, id1, tuples, edgeCount); dup {
			return NonManifold
		}
	}
	for _, e := range c.conn.Node2Elem(id2).Connected() {
		if _, gone := remove[e]; gone {
			continue
		}
		if c.conn.Node2Elem(id1).Find(e) {
			continue // already recorded above
		}
		if dup := recordTuple(c.store, e, id2, id1, tuples, edgeCount); dup {
			return NonManifold
		}
	}

	for _, n := range edgeCount {
		if n > 2 {
			return NonManifold
		}
	}
	return OK
}

// recordTuple records the post-collapse vertex tuple of element e (with
// oldId renamed to newId) and its three edges. It reports true if this
// tuple duplicates one already recorded — two triangles folding onto the
// same three vertices, which §4.4 step 4 rejects outright.
func recordTuple(store *mesh.Store, e, oldId, newId int, tuples map[[3]int]struct{}, edgeCount map[[2]int]int) (duplicate bool) {
	elem := store.Elem(e)
	var verts [3]int
	for i, v := range elem.Vert {
		if v == oldId {
			v = newId
		}
		verts[i] = v
	}
	key := verts
	sortTuple(&key)
	if _, dup := tuples[key]; dup {
		return true
	}
	tuples[key] = struct{}{}

	for i := 0; i < 3; i++ {
		a, b := verts[i], verts[(i+1)%3]
		if a > b {
			a, b = b, a
		}
		edgeCount[[2]int{a, b}]++
	}
	return false
}

func sortTuple(v *[3]int) {
	for i := 0; i < 3; i++ {
		for j := i + 1; j < 3; j++ {
			if v[j] < v[i] {
				v[i], v[j] = v[j], v[i]
			}
		}
	}
}

// checkSelfIntersection gathers, via the spatial index, the triangles
// whose bounding box overlaps any element of elemsToKeep and tests each
// pair for a proper intersection (§4.4 step 5).
func (c *Checker) checkSelfIntersection(id1, id2 int, p geometry.Point, elemsToKeep []int) Reason {
	for _, e := range elemsToKeep {
		elem := c.store.Elem(e)
		p0, p1, p2 := movedTriangle(c.store, elem, id1, id2, p)

		for _, other := range c.index.Neighbors(e) {
			if other == e || contains(elemsToKeep, other) {
				continue
			}
			if !c.store.IsElemActive(other) {
				continue
			}
			oe := c.store.Elem(other)
			q0, q1, q2 := meshops.Triangle(c.store, oe)
			if meshops.TrianglesIntersect(p0, p1, p2, q0, q1, q2) {
				return SelfIntersection
			}
		}
	}
	return OK
}

func movedTriangle(store *mesh.Store, e mesh.Element, id1, id2 int, p geometry.Point) (a, b, c geometry.Point) {
	pts := [3]geometry.Point{}
	for i, v := range e.Vert {
		if v == id1 || v == id2 {
			pts[i] = p
		} else {
			pts[i] = store.Node(v).Point
		}
	}
	return pts[0], pts[1], pts[2]
}

func contains(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
