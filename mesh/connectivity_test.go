// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/10395803/mesh-simplification/geometry"
	"github.com/cpmech/gosl/chk"
)

func Test_connectivity_build01(tst *testing.T) {

	chk.PrintTitle("connectivity_build01")

	s := square()
	c := NewConnectivity(s)

	// a=0 is connected to b=1, c=2, d=3
	chk.Ints(tst, "node2node[0]", c.Node2Node(0).Connected(), []int{1, 2, 3})

	// b=1 only participates in element 0
	chk.Ints(tst, "node2elem[1]", c.Node2Elem(1).Connected(), []int{0})

	// elements 0 and 1 share the diagonal a-c => elem2elem symmetric
	chk.Ints(tst, "elem2elem[0]", c.Elem2Elem(0).Connected(), []int{1})
	chk.Ints(tst, "elem2elem[1]", c.Elem2Elem(1).Connected(), []int{0})
}

func Test_connectivity_symmetry01(tst *testing.T) {

	chk.PrintTitle("connectivity_symmetry01")

	s := square()
	c := NewConnectivity(s)

	for v := 0; v < s.NodesLen(); v++ {
		for _, w := range c.Node2Node(v).Connected() {
			if !c.Node2Node(w).Find(v) {
				tst.Fatalf("node2node symmetry broken: %d -> %d but not %d -> %d", v, w, w, v)
			}
		}
	}
}

func Test_connectivity_collapse_sets01(tst *testing.T) {

	chk.PrintTitle("connectivity_collapse_sets01")

	s := square()
	c := NewConnectivity(s)

	// collapsing edge (a=0, c=2): both elements share this edge (ElemsOnEdge),
	// and there is no element incident to exactly one endpoint left over
	// since this tiny mesh only has these two triangles.
	onEdge := c.ElemsOnEdge(0, 2)
	chk.Ints(tst, "elemsToRemove", onEdge, []int{0, 1})

	kept := c.ElemsModifiedInCollapse(0, 2)
	if len(kept) != 0 {
		tst.Fatalf("expected no elemsToKeep for the square's diagonal, got %v", kept)
	}
}

func Test_connectivity_applyEdgeCollapsing01(tst *testing.T) {

	chk.PrintTitle("connectivity_applyEdgeCollapsing01")

	// edge (0,1) is shared by T0=(0,1,2) and T1=(0,3,1); T2=(1,4,5) hangs
	// off vertex 1 alone, so it is incident to exactly one endpoint and
	// must be rewired (not removed) by the collapse.
	s := NewStore(6, 3)
	for i := 0; i < 6; i++ {
		s.InsertNode(geometry.NewPoint(0, 0, 0))
	}
	s.InsertElem([3]int{0, 1, 2}, 0) // 0
	s.InsertElem([3]int{0, 3, 1}, 0) // 1
	s.InsertElem([3]int{1, 4, 5}, 0) // 2

	c := NewConnectivity(s)

	toRemove := c.ElemsOnEdge(0, 1)
	chk.Ints(tst, "elemsToRemove", toRemove, []int{0, 1})

	toKeep := c.ElemsModifiedInCollapse(0, 1)
	chk.Ints(tst, "elemsToKeep", toKeep, []int{2})

	for _, e := range toKeep {
		s.ReplaceVertex(e, 1, 0)
	}
	c.ApplyEdgeCollapsing(1, 0, toRemove, toKeep)

	chk.IntAssert(s.NumNodes(), 5)
	chk.IntAssert(s.NumElems(), 1)
	if c.Node2Node(1).IsActive() {
		tst.Fatal("removed vertex's node2node row must be deactivated")
	}
	if c.Node2Node(0).Find(1) {
		tst.Fatal("kept vertex must not reference the removed vertex anymore")
	}
	kept := s.Elem(2)
	if !kept.HasVertex(0) || kept.HasVertex(1) {
		tst.Fatalf("element 2 should now reference vertex 0, not 1: %v", kept.Vert)
	}
}

