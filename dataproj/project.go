// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dataproj implements the data re-projection of §4.7: after a
// collapse, every datum attached to the affected patch is reprojected
// onto the nearest surviving triangle. Speculative projections (used by
// the cost model to probe a candidate collapse without committing to it)
// can be rolled back with Undo.
package dataproj

import (
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/10395803/mesh-simplification/meshops"
	"github.com/cpmech/gosl/chk"
)

// Link records where a datum was attached before a speculative
// reprojection, so Undo can restore it.
type Link struct {
	Data    int
	OldElem int // -1 if the datum was not linked to any element
}

// Projector reprojects data points onto the surviving triangles of a
// collapse (§4.7).
type Projector struct {
	store *mesh.Store
	conn  *mesh.Connectivity
	data  []geometry.Point // the fixed point-data coordinates, indexed by datum id
}

// NewProjector ties the projector to store/conn and the fixed set of data
// point coordinates. conn must already be in DATA mode.
func NewProjector(store *mesh.Store, conn *mesh.Connectivity, data []geometry.Point) *Projector {
	if !conn.DataMode() {
		chk.Panic("dataproj: connectivity is not in DATA mode")
	}
	return &Projector{store: store, conn: conn, data: data}
}

// ProjectInitial projects every datum onto its nearest triangle across the
// whole (initial) mesh — §4.6 step 1.
func (pr *Projector) ProjectInitial() {
	elems := pr.store.Elems()
	for d := range pr.data {
		best, bestDist := -1, 0.0
		for _, e := range elems {
			if !e.Active {
				continue
			}
			p0, p1, p2 := meshops.Triangle(pr.store, e)
			proj := meshops.ProjectOntoTriangle(pr.data[d], p0, p1, p2)
			if best == -1 || proj.Distance < bestDist {
				best, bestDist = e.Id, proj.Distance
			}
		}
		if best >= 0 {
			pr.conn.LinkData(d, best)
		}
	}
}

// Reproject re-attaches every datum involved in a collapse's affected
// patch to the nearest triangle among candidateElems (normally
// elemsToKeep, §4.7). It returns the previous links so the caller can
// Undo a speculative run.
func (pr *Projector) Reproject(dataIds, candidateElems []int) []Link {
	links := make([]Link, 0, len(dataIds))
	for _, d := range dataIds {
		oldElem := -1
		if cur := pr.conn.Data2Elem(d).Connected(); len(cur) > 0 {
			oldElem = cur[0]
		}
		links = append(links, Link{Data: d, OldElem: oldElem})

		best, bestDist := -1, 0.0
		for _, e := range candidateElems {
			if !pr.store.IsElemActive(e) {
				continue
			}
			elem := pr.store.Elem(e)
			p0, p1, p2 := meshops.Triangle(pr.store, elem)
			proj := meshops.ProjectOntoTriangle(pr.data[d], p0, p1, p2)
			if best == -1 || proj.Distance < bestDist {
				best, bestDist = e, proj.Distance
			}
		}
		if best >= 0 {
			pr.conn.RelinkData(d, oldElem, best)
		}
	}
	return links
}

// Undo restores the links recorded by a prior Reproject call, rolling
// back a speculative projection (used by cost evaluation that probes a
// candidate point without committing to it).
func (pr *Projector) Undo(links []Link) {
	for _, l := range links {
		cur := pr.conn.Data2Elem(l.Data).Connected()
		curElem := -1
		if len(cur) > 0 {
			curElem = cur[0]
		}
		if curElem == l.OldElem {
			continue
		}
		if curElem >= 0 {
			pr.conn.UnlinkData(l.Data, curElem)
		}
		if l.OldElem >= 0 {
			pr.conn.LinkData(l.Data, l.OldElem)
		}
	}
}
