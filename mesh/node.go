// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh implements the mesh store and the connectivity graphs that
// drive edge-collapse simplification (§2.2, §2.3, §4.1, §4.2).
package mesh

import "github.com/10395803/mesh-simplification/geometry"

// Node is a mesh vertex: a point plus the invariant that its Id always
// equals its index in the owning Store's node slice (§3 "Node").
type Node struct {
	Id     int
	Point  geometry.Point
	Active bool
}

// NewNode builds an active node.
func NewNode(id int, p geometry.Point) Node {
	return Node{Id: id, Point: p, Active: true}
}

// Boundary returns the node's boundary tag.
func (n Node) Boundary() int { return n.Point.Boundary }
