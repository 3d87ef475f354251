// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import (
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/10395803/mesh-simplification/meshops"
)

// GeometricModel implements the quadric-error cost of §4.3.2. It owns the
// per-vertex Q matrices and refreshes them incrementally after a collapse.
type GeometricModel struct {
	store *mesh.Store
	conn  *mesh.Connectivity
	q     []Quad // len == store.NodesLen(), indexed by vertex id
}

// NewGeometricModel builds Q matrices for every active vertex of store by
// summing the fundamental quadric of each incident triangle's plane
// (§4.3.2, built once at start — §3 "Q matrix").
func NewGeometricModel(store *mesh.Store, conn *mesh.Connectivity) *GeometricModel {
	m := &GeometricModel{store: store, conn: conn}
	m.q = make([]Quad, store.NodesLen())
	for v := 0; v < store.NodesLen(); v++ {
		if store.IsNodeActive(v) {
			m.q[v] = m.buildVertexQuad(v)
		}
	}
	return m
}

func (m *GeometricModel) buildVertexQuad(v int) Quad {
	var q Quad
	for _, e := range m.conn.Node2Elem(v).Connected() {
		elem := m.store.Elem(e)
		p0, p1, p2 := meshops.Triangle(m.store, elem)
		n := geometry.TriangleNormal(p0, p1, p2).Unit()
		d := -geometry.Dot(n, p0)
		q = q.Add(PlaneQuad(n, d))
	}
	return q
}

// EdgeQuad returns Q_e = (Q[id1]+Q[id2])/2 (§4.3.2).
func (m *GeometricModel) EdgeQuad(id1, id2 int) Quad {
	return m.q[id1].Add(m.q[id2]).Scale(0.5)
}

// CandidatePoints implements §4.3.1, offering the quadric optimum as the
// fourth candidate when both endpoints are interior or both are boundary.
func (m *GeometricModel) CandidatePoints(id1, id2 int) []geometry.Point {
	qe := m.EdgeQuad(id1, id2)
	return candidatePoints(m.store, id1, id2, qe.Optimum)
}

// Cost returns Q_eᵀ(p) — the quadric error of placing the merged vertex
// at p (§4.3.2).
func (m *GeometricModel) Cost(id1, id2 int, p geometry.Point) float64 {
	return m.EdgeQuad(id1, id2).Eval(p)
}

// Update rebuilds the Q matrix of keptVertex and of every vertex still
// adjacent to it, since their incident triangle planes may have changed.
func (m *GeometricModel) Update(keptVertex int) {
	m.q[keptVertex] = m.buildVertexQuad(keptVertex)
	for _, w := range m.conn.Node2Node(keptVertex).Connected() {
		m.q[w] = m.buildVertexQuad(w)
	}
}
