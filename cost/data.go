// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cost

import (
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
)

// DataModel implements the data (point-distribution) cost of §4.3.3: it
// penalizes collapses that would leave the surviving triangles with an
// uneven share of the projected data points.
//
// The specification leaves the exact dispersion functional open ("sum of
// squared deviations from the mean or an equivalent measure"); this
// implementation computes both the sum of squared deviations (Dispersion)
// and a scale-free coefficient-of-variation-squared term (Equi), so that
// CombinedModel can weight them independently via (w_disp, w_equi) — see
// DESIGN.md for the rationale.
type DataModel struct {
	store *mesh.Store
	conn  *mesh.Connectivity
}

// NewDataModel requires conn to already be in DATA mode (§4.6 step 1:
// data points projected before the driver starts).
func NewDataModel(store *mesh.Store, conn *mesh.Connectivity) *DataModel {
	return &DataModel{store: store, conn: conn}
}

// CandidatePoints reuses the shared endpoint-boundary policy of §4.3.1;
// the data cost does not contribute an "optimum" point.
func (m *DataModel) CandidatePoints(id1, id2 int) []geometry.Point {
	return candidatePoints(m.store, id1, id2, nil)
}

func (m *DataModel) affectedQuantities(id1, id2 int) []float64 {
	elems := m.conn.ElemsModifiedInCollapse(id1, id2)
	nts := make([]float64, 0, len(elems))
	for _, e := range elems {
		nts = append(nts, m.conn.QuantityOfInformation(e))
	}
	return nts
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Dispersion returns Σ(N_t - mean)² over the triangles surviving the
// collapse (§4.3.3).
func (m *DataModel) Dispersion(id1, id2 int) float64 {
	nts := m.affectedQuantities(id1, id2)
	mu := mean(nts)
	var sum float64
	for _, n := range nts {
		d := n - mu
		sum += d * d
	}
	return sum
}

// Equi returns the coefficient-of-variation-squared of the affected N_t
// values — a scale-free companion to Dispersion used by the combined
// model's w_equi term.
func (m *DataModel) Equi(id1, id2 int) float64 {
	nts := m.affectedQuantities(id1, id2)
	mu := mean(nts)
	if mu*mu < 1e-14 {
		return 0
	}
	var sum float64
	for _, n := range nts {
		d := n - mu
		sum += d * d
	}
	return (sum / float64(len(nts))) / (mu * mu)
}

// Cost returns the dispersion term alone, for standalone DATA-mode use.
func (m *DataModel) Cost(id1, id2 int, p geometry.Point) float64 {
	return m.Dispersion(id1, id2)
}

// Update is a no-op: the quantities this model reads come from the
// connectivity's elem2data/data2elem graphs, which the driver's data
// re-projection step (§4.7) keeps current.
func (m *DataModel) Update(keptVertex int) {}
