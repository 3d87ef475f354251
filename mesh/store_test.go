// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/10395803/mesh-simplification/geometry"
	"github.com/cpmech/gosl/chk"
)

// square builds the unit-square mesh of §8 scenario S3: two coplanar
// triangles a,b,c,d with the diagonal a-c.
func square() *Store {
	s := NewStore(4, 2)
	s.InsertNode(geometry.NewPoint(0, 0, 0)) // a = 0
	s.InsertNode(geometry.NewPoint(1, 0, 0)) // b = 1
	s.InsertNode(geometry.NewPoint(1, 1, 0)) // c = 2
	s.InsertNode(geometry.NewPoint(0, 1, 0)) // d = 3
	s.InsertElem([3]int{0, 1, 2}, 0)
	s.InsertElem([3]int{0, 2, 3}, 0)
	return s
}

func Test_store_insert01(tst *testing.T) {

	chk.PrintTitle("store_insert01")

	s := square()
	chk.IntAssert(s.NumNodes(), 4)
	chk.IntAssert(s.NumElems(), 2)
	chk.IntAssert(s.NodesLen(), 4)
}

func Test_store_replaceVertex01(tst *testing.T) {

	chk.PrintTitle("store_replaceVertex01")

	s := square()
	s.ReplaceVertex(1, 2, 0) // replace c with a in element 1
	e := s.Elem(1)
	chk.IntAssert(e.Vert[1], 0)
}

func Test_store_softErase_refresh01(tst *testing.T) {

	chk.PrintTitle("store_softErase_refresh01")

	s := square()
	s.SetNodeInactive(3)
	s.SetElemInactive(1)
	chk.IntAssert(s.NumNodes(), 3)
	chk.IntAssert(s.NumElems(), 1)
	chk.IntAssert(s.NodesLen(), 4) // not compacted yet

	old2new := s.Refresh()
	chk.IntAssert(s.NodesLen(), 3)
	chk.IntAssert(s.ElemsLen(), 1)
	if _, ok := old2new[3]; ok {
		tst.Fatal("refresh must drop the inactive node from the id map")
	}
	e := s.Elem(0)
	for _, v := range e.Vert {
		if v >= s.NodesLen() {
			tst.Fatalf("vertex id %d was not remapped by refresh", v)
		}
	}
}

func Test_store_clone01(tst *testing.T) {

	chk.PrintTitle("store_clone01")

	s := square()
	clone := s.Clone()
	clone.SetNode(0, geometry.NewPoint(9, 9, 9))

	if s.Node(0).Point.X == 9 {
		tst.Fatal("Clone must be an independent copy")
	}
	chk.IntAssert(clone.NumNodes(), s.NumNodes())
}
