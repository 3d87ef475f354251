// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import "math"

// Plane is the implicit plane a*x + b*y + c*z + d = 0 with (a,b,c) a unit
// normal, as used to build the quadric K matrix (§4.3.2).
type Plane struct {
	Normal Point
	D      float64
}

// PlaneFromTriangle builds the plane through p0,p1,p2 with outward normal
// (p1-p0) x (p2-p0), normalized. ok is false for a degenerate (near-zero
// area) triangle.
func PlaneFromTriangle(p0, p1, p2 Point) (pl Plane, ok bool) {
	e1 := p1.Sub(p0)
	e2 := p2.Sub(p0)
	n := Cross(e1, e2)
	length := n.Norm()
	if length < 1e-10 {
		return Plane{}, false
	}
	n = n.Scale(1 / length)
	return Plane{Normal: n, D: -Dot(n, p0)}, true
}

// SignedDistance returns the signed distance of p to the plane.
func (pl Plane) SignedDistance(p Point) float64 {
	return Dot(pl.Normal, p) + pl.D
}

// TriangleNormal returns the (non-unit) normal (p1-p0) x (p2-p0), used by
// the inversion check (§4.4.2) where only the sign of the dot product with
// the pre-collapse normal matters.
func TriangleNormal(p0, p1, p2 Point) Point {
	return Cross(p1.Sub(p0), p2.Sub(p0))
}

// TriangleArea returns the area of the triangle p0,p1,p2.
func TriangleArea(p0, p1, p2 Point) float64 {
	return 0.5 * TriangleNormal(p0, p1, p2).Norm()
}

// IsDegenerate reports whether the triangle p0,p1,p2 has near-zero area.
func IsDegenerate(p0, p1, p2 Point) bool {
	return TriangleArea(p0, p1, p2) < 1e-14
}

// Barycentric returns the barycentric coordinates (u,v,w) of p with respect
// to triangle p0,p1,p2, assuming p already lies on the triangle's plane.
// ok is false if the triangle is degenerate.
func Barycentric(p, p0, p1, p2 Point) (u, v, w float64, ok bool) {
	v0 := p1.Sub(p0)
	v1 := p2.Sub(p0)
	v2 := p.Sub(p0)
	d00 := Dot(v0, v0)
	d01 := Dot(v0, v1)
	d11 := Dot(v1, v1)
	d20 := Dot(v2, v0)
	d21 := Dot(v2, v1)
	denom := d00*d11 - d01*d01
	if math.Abs(denom) < 1e-14 {
		return 0, 0, 0, false
	}
	v = (d11*d20 - d01*d21) / denom
	w = (d00*d21 - d01*d20) / denom
	u = 1 - v - w
	return u, v, w, true
}

// InsideTriangle reports whether barycentric coordinates lie in [0,1]
// (within tol), i.e. the point's projection falls inside the triangle.
func InsideTriangle(u, v, w, tol float64) bool {
	return u >= -tol && v >= -tol && w >= -tol
}
