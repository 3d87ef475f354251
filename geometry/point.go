// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geometry implements the 3D point, vector arithmetic and the
// plane/triangle predicates used throughout the simplification engine.
package geometry

import (
	"fmt"
	"math"
)

// Boundary tags for a node, following the original classification:
// interior points may move freely, boundary points may only move along
// the boundary they belong to, and triple (corner) points never move.
const (
	Interior = 0
	Boundary = 1
	Triple   = 2
)

// Point is a 3D coordinate carrying the boundary tag used to constrain
// edge-collapse candidates (§3, §4.3.1).
type Point struct {
	X, Y, Z  float64
	Boundary int
}

// NewPoint builds an interior point from its coordinates.
func NewPoint(x, y, z float64) Point {
	return Point{X: x, Y: y, Z: z}
}

// IsTriple reports whether p is a triple/corner point.
func (p Point) IsTriple() bool { return p.Boundary == Triple }

// IsBoundary reports whether p lies on a boundary curve (including triple points).
func (p Point) IsBoundary() bool { return p.Boundary != Interior }

// Add returns p+q (coordinates only; the boundary tag of p is kept).
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y, p.Z + q.Z, p.Boundary}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y, p.Z - q.Z, p.Boundary}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s, p.Z * s, p.Boundary}
}

// Mid returns the midpoint of p and q.
func Mid(p, q Point) Point {
	return Point{0.5 * (p.X + q.X), 0.5 * (p.Y + q.Y), 0.5 * (p.Z + q.Z), Interior}
}

// Dot returns the Euclidean dot product of p and q as vectors.
func Dot(p, q Point) float64 {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Cross returns the cross product p x q.
func Cross(p, q Point) Point {
	return Point{
		X: p.Y*q.Z - p.Z*q.Y,
		Y: p.Z*q.X - p.X*q.Z,
		Z: p.X*q.Y - p.Y*q.X,
	}
}

// Norm returns the Euclidean length of p treated as a vector.
func (p Point) Norm() float64 {
	return math.Sqrt(Dot(p, p))
}

// Dist returns the Euclidean distance between p and q.
func Dist(p, q Point) float64 {
	return p.Sub(q).Norm()
}

// Coincident reports whether p and q are the same point up to tol.
func Coincident(p, q Point, tol float64) bool {
	return Dist(p, q) <= tol
}

// Unit returns p normalized to unit length; the zero vector is returned
// unchanged if its norm is below 1e-14 (degenerate triangle guard).
func (p Point) Unit() Point {
	n := p.Norm()
	if n < 1e-14 {
		return p
	}
	return p.Scale(1 / n)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g) [bound=%d]", p.X, p.Y, p.Z, p.Boundary)
}
