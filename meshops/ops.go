// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshops implements the geometric predicates shared by the cost
// model and the legality checks (§2.5): normals, areas, orthogonal
// point-to-triangle projection, and triangle-triangle intersection.
package meshops

import (
	"math"

	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
)

// Triangle returns the three vertex points of element e.
func Triangle(store *mesh.Store, e mesh.Element) (p0, p1, p2 geometry.Point) {
	return store.Node(e.Vert[0]).Point, store.Node(e.Vert[1]).Point, store.Node(e.Vert[2]).Point
}

// Normal returns the unit outward normal of element e.
func Normal(store *mesh.Store, e mesh.Element) geometry.Point {
	p0, p1, p2 := Triangle(store, e)
	return geometry.TriangleNormal(p0, p1, p2).Unit()
}

// Area returns the area of element e.
func Area(store *mesh.Store, e mesh.Element) float64 {
	p0, p1, p2 := Triangle(store, e)
	return geometry.TriangleArea(p0, p1, p2)
}

// Projection is the result of projecting a point onto a triangle (§4.7).
type Projection struct {
	Point    geometry.Point
	Distance float64
	Inside   bool
}

// ProjectOntoTriangle implements the three-tier projection of §4.7:
// orthogonal onto the plane if the foot lands inside the triangle,
// otherwise the closest point on the triangle's edges/vertices.
func ProjectOntoTriangle(d, p0, p1, p2 geometry.Point) Projection {
	pl, ok := geometry.PlaneFromTriangle(p0, p1, p2)
	if !ok {
		return closestOnBoundary(d, p0, p1, p2)
	}
	sd := pl.SignedDistance(d)
	foot := d.Sub(pl.Normal.Scale(sd))

	u, v, w, ok := geometry.Barycentric(foot, p0, p1, p2)
	if ok && geometry.InsideTriangle(u, v, w, 1e-9) {
		return Projection{Point: foot, Distance: math.Abs(sd), Inside: true}
	}
	return closestOnBoundary(d, p0, p1, p2)
}

func closestOnBoundary(d, p0, p1, p2 geometry.Point) Projection {
	candidates := []geometry.Point{p0, p1, p2}
	best := closestOnSegment(d, p0, p1)
	candidates = append(candidates, best)
	for _, seg := range [][2]geometry.Point{{p1, p2}, {p2, p0}} {
		c := closestOnSegment(d, seg[0], seg[1])
		candidates = append(candidates, c)
	}
	bestPt := candidates[0]
	bestDist := geometry.Dist(d, bestPt)
	for _, c := range candidates[1:] {
		if dd := geometry.Dist(d, c); dd < bestDist {
			bestDist = dd
			bestPt = c
		}
	}
	return Projection{Point: bestPt, Distance: bestDist, Inside: false}
}

func closestOnSegment(d, a, b geometry.Point) geometry.Point {
	ab := b.Sub(a)
	denom := geometry.Dot(ab, ab)
	if denom < 1e-14 {
		return a
	}
	t := geometry.Dot(d.Sub(a), ab) / denom
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}

// TrianglesIntersect reports whether the two (non-degenerate) triangles
// have a proper overlap, combining a separating-plane test with an
// edge-against-triangle segment test in both directions. Used by the
// legality check's self-intersection test (§4.4 step 5).
func TrianglesIntersect(a0, a1, a2, b0, b1, b2 geometry.Point) bool {
	if geometry.IsDegenerate(a0, a1, a2) || geometry.IsDegenerate(b0, b1, b2) {
		return false
	}
	if separated(a0, a1, a2, b0, b1, b2) {
		return false
	}
	if separated(b0, b1, b2, a0, a1, a2) {
		return false
	}
	edgesA := [][2]geometry.Point{{a0, a1}, {a1, a2}, {a2, a0}}
	for _, e := range edgesA {
		if segmentHitsTriangle(e[0], e[1], b0, b1, b2) {
			return true
		}
	}
	edgesB := [][2]geometry.Point{{b0, b1}, {b1, b2}, {b2, b0}}
	for _, e := range edgesB {
		if segmentHitsTriangle(e[0], e[1], a0, a1, a2) {
			return true
		}
	}
	return false
}

// separated reports whether every vertex of (b0,b1,b2) lies strictly on
// the same side of the plane of (a0,a1,a2) — a quick rejection test.
func separated(a0, a1, a2, b0, b1, b2 geometry.Point) bool {
	pl, ok := geometry.PlaneFromTriangle(a0, a1, a2)
	if !ok {
		return false
	}
	d0 := pl.SignedDistance(b0)
	d1 := pl.SignedDistance(b1)
	d2 := pl.SignedDistance(b2)
	const eps = 1e-9
	if d0 > eps && d1 > eps && d2 > eps {
		return true
	}
	if d0 < -eps && d1 < -eps && d2 < -eps {
		return true
	}
	return false
}

func segmentHitsTriangle(s0, s1, p0, p1, p2 geometry.Point) bool {
	pl, ok := geometry.PlaneFromTriangle(p0, p1, p2)
	if !ok {
		return false
	}
	d0 := pl.SignedDistance(s0)
	d1 := pl.SignedDistance(s1)
	if (d0 > 1e-12 && d1 > 1e-12) || (d0 < -1e-12 && d1 < -1e-12) {
		return false
	}
	if math.Abs(d0-d1) < 1e-14 {
		return false
	}
	t := d0 / (d0 - d1)
	hit := s0.Add(s1.Sub(s0).Scale(t))
	u, v, w, ok := geometry.Barycentric(hit, p0, p1, p2)
	if !ok {
		return false
	}
	return geometry.InsideTriangle(u, v, w, 1e-9)
}
