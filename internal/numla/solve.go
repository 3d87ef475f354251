// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package numla provides the small dense-linear-algebra primitive the cost
// model needs and that the example ecosystem's numeric libraries do not
// expose directly: a column-pivoted QR solve of a 3x3 symmetric system
// (§4.3.2). See DESIGN.md for why this one piece is hand-rolled instead of
// imported.
package numla

import "math"

// TOLL is the default relative-residual tolerance used to decide whether a
// solution of Solve3x3 is acceptable (§4.3.2).
const TOLL = 1e-10

// Solve3x3 solves the symmetric system A x = b, A the upper-left 3x3 block
// of a quadric edge matrix, via Gram-Schmidt QR with column pivoting. It
// returns ok=false when the pivoted diagonal collapses (A is singular or
// near-singular) or when the residual ‖Ax-b‖/‖b‖ exceeds tol.
func Solve3x3(a [3][3]float64, b [3]float64, tol float64) (x [3]float64, ok bool) {
	// work on a column-major copy so pivoting is a column swap
	var cols [3][3]float64
	for j := 0; j < 3; j++ {
		for i := 0; i < 3; i++ {
			cols[j][i] = a[i][j]
		}
	}
	perm := [3]int{0, 1, 2}

	colNorm := func(c [3]float64) float64 {
		return math.Sqrt(c[0]*c[0] + c[1]*c[1] + c[2]*c[2])
	}

	var qCols [3][3]float64 // orthonormal basis built so far
	rhs := b

	for k := 0; k < 3; k++ {
		// pivot: bring the column (among k..2) with the largest remaining
		// norm, after removing the projection onto qCols[0..k-1], to slot k
		best, bestNorm := k, -1.0
		residual := make([][3]float64, 3)
		for j := k; j < 3; j++ {
			v := cols[j]
			for t := 0; t < k; t++ {
				d := dot3(qCols[t], v)
				v = sub3(v, scale3(qCols[t], d))
			}
			residual[j] = v
			n := colNorm(v)
			if n > bestNorm {
				bestNorm = n
				best = j
			}
		}
		if bestNorm < 1e-14 {
			return x, false
		}
		if best != k {
			cols[k], cols[best] = cols[best], cols[k]
			perm[k], perm[best] = perm[best], perm[k]
			residual[k], residual[best] = residual[best], residual[k]
		}
		qCols[k] = scale3(residual[k], 1/bestNorm)
	}

	// solve R y = Q^T b by back substitution, with R upper-triangular in
	// the pivoted column order; then undo the permutation.
	var qtb [3]float64
	for k := 0; k < 3; k++ {
		qtb[k] = dot3(qCols[k], rhs)
	}
	var r [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = dot3(qCols[i], cols[j])
		}
	}
	var y [3]float64
	for i := 2; i >= 0; i-- {
		if math.Abs(r[i][i]) < 1e-14 {
			return x, false
		}
		s := qtb[i]
		for j := i + 1; j < 3; j++ {
			s -= r[i][j] * y[j]
		}
		y[i] = s / r[i][i]
	}
	for k := 0; k < 3; k++ {
		x[perm[k]] = y[k]
	}

	// residual check against the ORIGINAL (unpivoted) system
	var ax [3]float64
	for i := 0; i < 3; i++ {
		ax[i] = a[i][0]*x[0] + a[i][1]*x[1] + a[i][2]*x[2]
	}
	var res [3]float64
	for i := 0; i < 3; i++ {
		res[i] = ax[i] - b[i]
	}
	bn := colNorm(b)
	if bn < 1e-14 {
		return x, colNorm(res) < tol
	}
	return x, colNorm(res)/bn < tol
}

func dot3(a, b [3]float64) float64 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }
func sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}
func scale3(a [3]float64, s float64) [3]float64 {
	return [3]float64{a[0] * s, a[1] * s, a[2] * s}
}
