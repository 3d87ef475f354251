// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package spatial implements the uniform-grid / bounding-box index of §4.5,
// used by the legality checks to find candidate self-intersection partners
// without an O(elements^2) scan.
package spatial

import (
	"github.com/10395803/mesh-simplification/geometry"
)

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min, Max geometry.Point
}

// NewBBoxFromTriangle returns the axis-aligned box enclosing p0,p1,p2.
func NewBBoxFromTriangle(p0, p1, p2 geometry.Point) BBox {
	b := BBox{Min: p0, Max: p0}
	b = b.include(p1)
	b = b.include(p2)
	return b
}

func (b BBox) include(p geometry.Point) BBox {
	if p.X < b.Min.X {
		b.Min.X = p.X
	}
	if p.Y < b.Min.Y {
		b.Min.Y = p.Y
	}
	if p.Z < b.Min.Z {
		b.Min.Z = p.Z
	}
	if p.X > b.Max.X {
		b.Max.X = p.X
	}
	if p.Y > b.Max.Y {
		b.Max.Y = p.Y
	}
	if p.Z > b.Max.Z {
		b.Max.Z = p.Z
	}
	return b
}

// Overlaps reports whether b and other share at least one point, using the
// standard separating-axis test for axis-aligned boxes.
func (b BBox) Overlaps(other BBox) bool {
	return b.Min.X <= other.Max.X && b.Max.X >= other.Min.X &&
		b.Min.Y <= other.Max.Y && b.Max.Y >= other.Min.Y &&
		b.Min.Z <= other.Max.Z && b.Max.Z >= other.Min.Z
}

// cellOf returns the integer cell index of p under the grid with the given
// origin and cell size (one component per axis).
func cellOf(p geometry.Point, origin geometry.Point, size [3]float64) [3]int {
	return [3]int{
		cellIndex(p.X, origin.X, size[0]),
		cellIndex(p.Y, origin.Y, size[1]),
		cellIndex(p.Z, origin.Z, size[2]),
	}
}

func cellIndex(x, origin, size float64) int {
	if size <= 0 {
		return 0
	}
	d := (x - origin) / size
	i := int(d)
	if d < 0 && float64(i) != d {
		i--
	}
	return i
}
