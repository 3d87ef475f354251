// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import (
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/cpmech/gosl/chk"
)

// CombinedModel is the weighted sum of the geometric and data costs
// (§4.3.4). Each term is normalized by a running maximum observed so far,
// so the weights stay dimensionless across mesh scales.
type CombinedModel struct {
	geom *GeometricModel
	data *DataModel

	wGeom, wDisp, wEqui float64

	maxGeom, maxDisp, maxEqui float64
}

// NewCombinedModel builds a combined cost from wGeom, wDisp, wEqui, which
// must sum to 1 (§4.3.4).
func NewCombinedModel(geom *GeometricModel, data *DataModel, wGeom, wDisp, wEqui float64) *CombinedModel {
	sum := wGeom + wDisp + wEqui
	if sum < 1-1e-6 || sum > 1+1e-6 {
		chk.Panic("cost: weights must sum to 1, got %g+%g+%g=%g", wGeom, wDisp, wEqui, sum)
	}
	return &CombinedModel{geom: geom, data: data, wGeom: wGeom, wDisp: wDisp, wEqui: wEqui}
}

// CandidatePoints delegates to the geometric model, which is the only term
// contributing an extra (optimum) candidate.
func (m *CombinedModel) CandidatePoints(id1, id2 int) []geometry.Point {
	return m.geom.CandidatePoints(id1, id2)
}

// Cost returns the weighted, normalized sum of the geometric and data
// terms (§4.3.4).
func (m *CombinedModel) Cost(id1, id2 int, p geometry.Point) float64 {
	g := m.geom.Cost(id1, id2, p)
	disp := m.data.Dispersion(id1, id2)
	equi := m.data.Equi(id1, id2)

	if g > m.maxGeom {
		m.maxGeom = g
	}
	if disp > m.maxDisp {
		m.maxDisp = disp
	}
	if equi > m.maxEqui {
		m.maxEqui = equi
	}

	return m.wGeom*normalize(g, m.maxGeom) +
		m.wDisp*normalize(disp, m.maxDisp) +
		m.wEqui*normalize(equi, m.maxEqui)
}

func normalize(v, max float64) float64 {
	if max < 1e-14 {
		return 0
	}
	return v / max
}

// Update refreshes both component models.
func (m *CombinedModel) Update(keptVertex int) {
	m.geom.Update(keptVertex)
	m.data.Update(keptVertex)
}
