// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package legality

import (
	"testing"

	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/10395803/mesh-simplification/spatial"
	"github.com/cpmech/gosl/chk"
	"github.com/stretchr/testify/assert"
)

func square() *mesh.Store {
	s := mesh.NewStore(4, 2)
	s.InsertNode(geometry.NewPoint(0, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 1, 0))
	s.InsertNode(geometry.NewPoint(0, 1, 0))
	s.InsertElem([3]int{0, 1, 2}, 0)
	s.InsertElem([3]int{0, 2, 3}, 0)
	return s
}

func Test_legality_collapse_diagonal_ok01(tst *testing.T) {

	chk.PrintTitle("legality_collapse_diagonal_ok01")

	s := square()
	c := mesh.NewConnectivity(s)
	idx := spatial.NewIndex(s)
	checker := NewChecker(s, c, idx)

	toRemove := c.ElemsOnEdge(0, 2)
	toKeep := c.ElemsModifiedInCollapse(0, 2)
	mid := geometry.Mid(s.Node(0).Point, s.Node(2).Point)

	reason := checker.Check(0, 2, mid, toRemove, toKeep)
	assert.Equal(tst, OK, reason, "expected the square's diagonal collapse to be legal")
}

func Test_legality_degenerate_rejected01(tst *testing.T) {

	chk.PrintTitle("legality_degenerate_rejected01")

	s := square()
	c := mesh.NewConnectivity(s)
	idx := spatial.NewIndex(s)
	checker := NewChecker(s, c, idx)

	toRemove := c.ElemsOnEdge(0, 1)
	toKeep := c.ElemsModifiedInCollapse(0, 1)

	// collapsing edge (0,1) onto vertex 3's location is degenerate: vertex
	// 3 is a neighbor of 0 and would coincide with the new point.
	reason := checker.Check(0, 1, s.Node(3).Point, toRemove, toKeep)
	assert.Equal(tst, Degenerate, reason)
}

func Test_legality_boundary_violation01(tst *testing.T) {

	chk.PrintTitle("legality_boundary_violation01")

	s := square()
	s.SetBoundary(1, geometry.Boundary) // only vertex 1 is boundary
	c := mesh.NewConnectivity(s)
	idx := spatial.NewIndex(s)
	checker := NewChecker(s, c, idx)

	toRemove := c.ElemsOnEdge(0, 1)
	toKeep := c.ElemsModifiedInCollapse(0, 1)

	// new point must sit at the boundary endpoint (vertex 1); the midpoint
	// must be rejected.
	mid := geometry.Mid(s.Node(0).Point, s.Node(1).Point)
	reason := checker.Check(0, 1, mid, toRemove, toKeep)
	assert.Equal(tst, BoundaryViolation, reason)
}

func Test_legality_tripleEndpointsRejected01(tst *testing.T) {

	chk.PrintTitle("legality_tripleEndpointsRejected01")

	s := square()
	s.SetBoundary(0, geometry.Triple)
	s.SetBoundary(1, geometry.Triple)
	c := mesh.NewConnectivity(s)
	idx := spatial.NewIndex(s)
	checker := NewChecker(s, c, idx)

	toRemove := c.ElemsOnEdge(0, 1)
	toKeep := c.ElemsModifiedInCollapse(0, 1)

	reason := checker.Check(0, 1, s.Node(0).Point, toRemove, toKeep)
	assert.Equal(tst, BoundaryViolation, reason, "two triple endpoints must reject the collapse")
}
