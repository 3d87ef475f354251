// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import (
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/internal/numla"
)

// Quad is the symmetric 4x4 quadric error matrix of §4.3.2, stored as its
// upper triangle: [nx², nxny, nxnz, nxd, ny², nynz, nyd, nz², nzd, d²].
type Quad [10]float64

// PlaneQuad builds the fundamental quadric of a plane with unit normal n
// and offset d (signed distance of the origin to the plane).
func PlaneQuad(n geometry.Point, d float64) Quad {
	return Quad{
		n.X * n.X, n.X * n.Y, n.X * n.Z, n.X * d,
		n.Y * n.Y, n.Y * n.Z, n.Y * d,
		n.Z * n.Z, n.Z * d,
		d * d,
	}
}

// Add returns the elementwise sum of two quadrics.
func (q Quad) Add(o Quad) Quad {
	var r Quad
	for i := range q {
		r[i] = q[i] + o[i]
	}
	return r
}

// Scale returns q scaled by s.
func (q Quad) Scale(s float64) Quad {
	var r Quad
	for i := range q {
		r[i] = q[i] * s
	}
	return r
}

// Eval computes pᵀQp with the homogeneous coordinate fixed to 1 (§4.3.2).
func (q Quad) Eval(p geometry.Point) float64 {
	return q[0]*p.X*p.X + q[4]*p.Y*p.Y + q[7]*p.Z*p.Z +
		2*(q[1]*p.X*p.Y+q[2]*p.X*p.Z+q[5]*p.Y*p.Z) +
		2*(q[3]*p.X+q[6]*p.Y+q[8]*p.Z) + q[9]
}

// System returns the 3x3 symmetric linear system (A, b) whose solution
// minimizes Eval (§4.3.2): A is the upper-left 3x3 block of q, and
// b = -[Q3,Q6,Q8].
func (q Quad) System() (a [3][3]float64, b [3]float64) {
	a = [3][3]float64{
		{q[0], q[1], q[2]},
		{q[1], q[4], q[5]},
		{q[2], q[5], q[7]},
	}
	b = [3]float64{-q[3], -q[6], -q[8]}
	return
}

// Optimum solves for the point minimizing q, returning ok=false if the
// 3x3 solve is rejected (§4.3.2).
func (q Quad) Optimum() (geometry.Point, bool) {
	a, b := q.System()
	x, ok := numla.Solve3x3(a, b, numla.TOLL)
	if !ok {
		return geometry.Point{}, false
	}
	return geometry.NewPoint(x[0], x[1], x[2]), true
}
