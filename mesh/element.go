// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// NV is the number of vertices per element. The core only targets
// triangular surface meshes (§1), so NV is fixed at 3.
const NV = 3

// Element is a triangular face: three vertex ids, a geometric region id,
// and the active flag (§3 "Triangle element").
type Element struct {
	Id     int
	Vert   [NV]int
	GeoId  int
	Active bool
}

// NewElement builds an active element.
func NewElement(id int, vert [NV]int, geoId int) Element {
	return Element{Id: id, Vert: vert, GeoId: geoId, Active: true}
}

// HasVertex reports whether v is one of the element's vertices.
func (e Element) HasVertex(v int) bool {
	return e.Vert[0] == v || e.Vert[1] == v || e.Vert[2] == v
}

// SharedVertexCount returns how many vertices e and other have in common.
func (e Element) SharedVertexCount(other Element) int {
	n := 0
	for _, v := range e.Vert {
		if other.HasVertex(v) {
			n++
		}
	}
	return n
}

// Replace rewrites oldId with newId among the element's vertices. ok is
// false if oldId was not a vertex of the element (§4.1 replaceVertex).
func (e *Element) Replace(oldId, newId int) (ok bool) {
	for i, v := range e.Vert {
		if v == oldId {
			e.Vert[i] = newId
			return true
		}
	}
	return false
}

// IsDegenerateIds reports whether the element repeats a vertex id.
func (e Element) IsDegenerateIds() bool {
	return e.Vert[0] == e.Vert[1] || e.Vert[1] == e.Vert[2] || e.Vert[0] == e.Vert[2]
}
