// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geometry

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_point_arith01(tst *testing.T) {

	chk.PrintTitle("point_arith01")

	p := NewPoint(1, 2, 3)
	q := NewPoint(4, 5, 6)

	sum := p.Add(q)
	chk.Scalar(tst, "sum.X", 1e-15, sum.X, 5)
	chk.Scalar(tst, "sum.Y", 1e-15, sum.Y, 7)
	chk.Scalar(tst, "sum.Z", 1e-15, sum.Z, 9)

	mid := Mid(p, q)
	chk.Scalar(tst, "mid.X", 1e-15, mid.X, 2.5)
	chk.Scalar(tst, "mid.Boundary", 1e-15, float64(mid.Boundary), Interior)
}

func Test_point_dot_cross01(tst *testing.T) {

	chk.PrintTitle("point_dot_cross01")

	ex := NewPoint(1, 0, 0)
	ey := NewPoint(0, 1, 0)
	ez := NewPoint(0, 0, 1)

	chk.Scalar(tst, "ex.ey", 1e-15, Dot(ex, ey), 0)
	c := Cross(ex, ey)
	chk.Scalar(tst, "ex x ey . X", 1e-15, c.X, ez.X)
	chk.Scalar(tst, "ex x ey . Y", 1e-15, c.Y, ez.Y)
	chk.Scalar(tst, "ex x ey . Z", 1e-15, c.Z, ez.Z)
}

func Test_plane_unit_square01(tst *testing.T) {

	chk.PrintTitle("plane_unit_square01")

	a := NewPoint(0, 0, 0)
	b := NewPoint(1, 0, 0)
	c := NewPoint(1, 1, 0)

	pl, ok := PlaneFromTriangle(a, b, c)
	if !ok {
		tst.Fatal("unexpected degenerate triangle")
	}
	chk.Scalar(tst, "|normal|", 1e-14, pl.Normal.Norm(), 1)
	chk.Scalar(tst, "normal.Z", 1e-14, pl.Normal.Z, 1)
	chk.Scalar(tst, "dist(origin)", 1e-14, pl.SignedDistance(NewPoint(0, 0, 5)), 5)
}

func Test_degenerate_triangle01(tst *testing.T) {

	chk.PrintTitle("degenerate_triangle01")

	a := NewPoint(0, 0, 0)
	b := NewPoint(1, 0, 0)
	c := NewPoint(2, 0, 0)

	if !IsDegenerate(a, b, c) {
		tst.Fatal("collinear triangle should be degenerate")
	}
	_, ok := PlaneFromTriangle(a, b, c)
	if ok {
		tst.Fatal("plane should not be constructible from a degenerate triangle")
	}
}

func Test_barycentric01(tst *testing.T) {

	chk.PrintTitle("barycentric01")

	a := NewPoint(0, 0, 0)
	b := NewPoint(1, 0, 0)
	c := NewPoint(0, 1, 0)
	centroid := NewPoint(1.0/3.0, 1.0/3.0, 0)

	u, v, w, ok := Barycentric(centroid, a, b, c)
	if !ok {
		tst.Fatal("unexpected degenerate triangle")
	}
	chk.Scalar(tst, "u", 1e-14, u, 1.0/3.0)
	chk.Scalar(tst, "v", 1e-14, v, 1.0/3.0)
	chk.Scalar(tst, "w", 1e-14, w, 1.0/3.0)
	if !InsideTriangle(u, v, w, 1e-12) {
		tst.Fatal("centroid must be inside the triangle")
	}
}
