// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cost implements the pluggable edge-cost models of §2.6/§4.3:
// geometric (quadric error), data (point-distribution dispersion) and a
// weighted combination of the two.
package cost

import (
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
)

// Model is the contract every edge-cost strategy satisfies (§2.6).
type Model interface {
	// CandidatePoints returns the admissible new locations for collapsing
	// the edge (id1,id2), per the policy of §4.3.1.
	CandidatePoints(id1, id2 int) []geometry.Point
	// Cost returns the non-negative cost of collapsing (id1,id2) to p.
	Cost(id1, id2 int, p geometry.Point) float64
	// Update refreshes internal state after keptVertex absorbed its
	// collapse partner.
	Update(keptVertex int)
}

// candidatePoints implements the endpoint-boundary policy shared by every
// cost model (§4.3.1): it does not depend on the cost term, only on the
// boundary flags of the two endpoints and, optionally, a quadric optimum.
func candidatePoints(store *mesh.Store, id1, id2 int, optimum func() (geometry.Point, bool)) []geometry.Point {
	p := store.Node(id1).Point
	q := store.Node(id2).Point
	bp := store.Node(id1).Boundary()
	bq := store.Node(id2).Boundary()

	switch {
	case bp == geometry.Triple && bq == geometry.Triple:
		return nil
	case bp == geometry.Triple:
		return []geometry.Point{p}
	case bq == geometry.Triple:
		return []geometry.Point{q}
	case (bp == geometry.Boundary) != (bq == geometry.Boundary):
		if bp == geometry.Boundary {
			return []geometry.Point{p}
		}
		return []geometry.Point{q}
	default:
		// both interior, or both boundary (non-triple): offer all four
		out := []geometry.Point{p, q, geometry.Mid(p, q)}
		if optimum != nil {
			if opt, ok := optimum(); ok {
				out = append(out, opt)
			}
		}
		return out
	}
}
