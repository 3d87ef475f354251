// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package simplify

import (
	"math"
	"testing"

	"github.com/10395803/mesh-simplification/cost"
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/cpmech/gosl/chk"
)

// tetrahedron builds a regular tetrahedron (§8 scenario S1/S2): 4
// vertices, 4 triangular faces, all interior (no boundary).
func tetrahedron() *mesh.Store {
	s := mesh.NewStore(4, 4)
	s.InsertNode(geometry.NewPoint(0, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 0, 0))
	s.InsertNode(geometry.NewPoint(0.5, 0.866, 0))
	s.InsertNode(geometry.NewPoint(0.5, 0.289, 0.816))
	s.InsertElem([3]int{0, 1, 2}, 0)
	s.InsertElem([3]int{0, 1, 3}, 0)
	s.InsertElem([3]int{1, 2, 3}, 0)
	s.InsertElem([3]int{2, 0, 3}, 0)
	return s
}

func square() *mesh.Store {
	s := mesh.NewStore(4, 2)
	s.InsertNode(geometry.NewPoint(0, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 1, 0))
	s.InsertNode(geometry.NewPoint(0, 1, 0))
	s.InsertElem([3]int{0, 1, 2}, 0)
	s.InsertElem([3]int{0, 2, 3}, 0)
	for _, id := range []int{0, 1, 2, 3} {
		s.SetBoundary(id, geometry.Boundary)
	}
	return s
}

func geomModel(s *mesh.Store) (cost.Model, *mesh.Connectivity) {
	c := mesh.NewConnectivity(s)
	return cost.NewGeometricModel(s, c), c
}

func Test_simplify_tetrahedron_noCollapse01(tst *testing.T) {

	chk.PrintTitle("simplify_tetrahedron_noCollapse01")

	s := tetrahedron()
	m, c := geomModel(s)

	out, err := Simplify(s, c, m, 4, Options{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumNodes(), 4)
	chk.IntAssert(out.NumElems(), 4)
}

func Test_simplify_tetrahedron_oneCollapse01(tst *testing.T) {

	chk.PrintTitle("simplify_tetrahedron_oneCollapse01")

	s := tetrahedron()
	m, c := geomModel(s)

	out, err := Simplify(s, c, m, 3, Options{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumNodes(), 3)
	chk.IntAssert(out.NumElems(), 2)
}

func Test_simplify_square_diagonalCollapse01(tst *testing.T) {

	chk.PrintTitle("simplify_square_diagonalCollapse01")

	s := mesh.NewStore(4, 2)
	s.InsertNode(geometry.NewPoint(0, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 1, 0))
	s.InsertNode(geometry.NewPoint(0, 1, 0))
	s.InsertElem([3]int{0, 1, 2}, 0)
	s.InsertElem([3]int{0, 2, 3}, 0)
	m, c := geomModel(s)

	out, err := Simplify(s, c, m, 3, Options{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumNodes(), 3)
	chk.IntAssert(out.NumElems(), 1)
}

func Test_simplify_unreachableTarget01(tst *testing.T) {

	chk.PrintTitle("simplify_unreachableTarget01")

	s := tetrahedron()
	m, c := geomModel(s)

	// a tetrahedron has no legal collapse down to 2 vertices without
	// degenerating a face, so target=2 must fail.
	_, err := Simplify(s, c, m, 2, Options{})
	if err == nil {
		tst.Fatal("expected an unreachable-target error")
	}
}

func Test_simplify_boundaryPreserved01(tst *testing.T) {

	chk.PrintTitle("simplify_boundaryPreserved01")

	s := square()
	m, c := geomModel(s)

	out, err := Simplify(s, c, m, 3, Options{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for id := 0; id < out.NodesLen(); id++ {
		if !out.IsNodeActive(id) {
			continue
		}
		if out.Node(id).Boundary() != geometry.Boundary {
			tst.Fatalf("vertex %d lost its boundary tag after simplification", id)
		}
	}
}

func Test_simplify_dataMode_wiring01(tst *testing.T) {

	chk.PrintTitle("simplify_dataMode_wiring01")

	// a 2x2 grid of triangles so there is an edge to collapse that is not
	// incident to every data point.
	s := mesh.NewStore(4, 2)
	s.InsertNode(geometry.NewPoint(0, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 0, 0))
	s.InsertNode(geometry.NewPoint(1, 1, 0))
	s.InsertNode(geometry.NewPoint(0, 1, 0))
	s.InsertElem([3]int{0, 1, 2}, 0)
	s.InsertElem([3]int{0, 2, 3}, 0)

	pts := []geometry.Point{
		geometry.NewPoint(0.3, 0.3, 0),
		geometry.NewPoint(0.7, 0.7, 0),
		geometry.NewPoint(0.2, 0.8, 0),
	}

	c := mesh.NewConnectivity(s)
	c.EnableDataMode(len(pts))
	m := cost.NewDataModel(s, c)

	out, err := Simplify(s, c, m, 3, Options{Data: pts})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	chk.IntAssert(out.NumNodes(), 3)

	// every datum must still be attached to exactly one active element
	// after the collapse: ProjectInitial and the reprojection wiring
	// inside Simplify must both have actually run against c.
	for d := 0; d < len(pts); d++ {
		linked := c.Data2Elem(d).Connected()
		if len(linked) != 1 {
			tst.Fatalf("datum %d: expected exactly one linked element, got %v", d, linked)
		}
		if !out.IsElemActive(linked[0]) {
			tst.Fatalf("datum %d is linked to inactive element %d", d, linked[0])
		}
	}

	// QuantityOfInformation must be nonzero somewhere: if ProjectInitial
	// never ran, every elem2data set would be empty and this would be 0
	// for every surviving triangle.
	total := 0.0
	for e := 0; e < out.ElemsLen(); e++ {
		if out.IsElemActive(e) {
			total += c.QuantityOfInformation(e)
		}
	}
	if total < 1e-9 {
		tst.Fatal("expected a nonzero total quantity of information after DATA-mode simplification")
	}
}

func Test_simplify_noDegenerateTriangles01(tst *testing.T) {

	chk.PrintTitle("simplify_noDegenerateTriangles01")

	s := tetrahedron()
	m, c := geomModel(s)

	out, err := Simplify(s, c, m, 3, Options{})
	if err != nil {
		tst.Fatalf("unexpected error: %v", err)
	}
	for _, e := range out.Elems() {
		if !e.Active {
			continue
		}
		p0 := out.Node(e.Vert[0]).Point
		p1 := out.Node(e.Vert[1]).Point
		p2 := out.Node(e.Vert[2]).Point
		area := geometry.TriangleArea(p0, p1, p2)
		if math.IsNaN(area) || area < 1e-14 {
			tst.Fatalf("element %d degenerated to zero area", e.Id)
		}
	}
}
