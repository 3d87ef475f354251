// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/10395803/mesh-simplification/geometry"

// DetectBoundary derives every active vertex's boundary flag from the
// mesh topology (§2.1, §4.3.1): an edge shared by exactly one active
// triangle is a boundary edge. A vertex touched by exactly two boundary
// edges lies on a single boundary curve and is tagged Boundary; a vertex
// touched by any other nonzero count of boundary edges (an open curve
// endpoint, or three or more curves meeting) is a corner and is tagged
// Triple; a vertex touched by none is Interior.
//
// Call this once after loading a mesh and building its Connectivity
// (§6), before constructing any cost model — nothing else populates the
// tags the §4.3.1 candidate-point policy depends on.
func DetectBoundary(store *Store, conn *Connectivity) {
	n := store.NodesLen()
	count := make([]int, n)
	seen := make(map[[2]int]bool)

	for e := 0; e < store.ElemsLen(); e++ {
		if !store.IsElemActive(e) {
			continue
		}
		elem := store.Elem(e)
		for i := 0; i < NV; i++ {
			a := elem.Vert[i]
			b := elem.Vert[(i+1)%NV]
			key := edgeKey(a, b)
			if seen[key] {
				continue
			}
			seen[key] = true
			if len(conn.ElemsOnEdge(a, b)) == 1 {
				count[a]++
				count[b]++
			}
		}
	}

	for v := 0; v < n; v++ {
		if !store.IsNodeActive(v) {
			continue
		}
		switch count[v] {
		case 0:
			store.SetBoundary(v, geometry.Interior)
		case 2:
			store.SetBoundary(v, geometry.Boundary)
		default:
			store.SetBoundary(v, geometry.Triple)
		}
	}
}

func edgeKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}
