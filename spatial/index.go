// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package spatial

import (
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
)

// Index is the uniform-grid / bounding-box multiset of §4.5: every active
// element's bounding box is stored keyed by element id, and bucketed into
// the cells of a uniform grid derived from the mesh's extents. Unlike the
// static grid parameters hinted at by the original implementation, NE/SW
// and cell size live on the Index instance, so that several meshes (or
// several independent simplification runs) can be indexed concurrently
// without sharing state.
type Index struct {
	store *mesh.Store

	sw, ne   geometry.Point
	cellSize [3]float64

	boxes  map[int]BBox
	grid   map[[3]int][]int // cell -> element ids
	cellOf map[int][][3]int // element id -> cells it occupies
}

// NewIndex builds the grid from the current (active) elements of store.
// Cell size is derived from the mesh's average edge length, per §4.5.
func NewIndex(store *mesh.Store) *Index {
	idx := &Index{
		store:  store,
		boxes:  make(map[int]BBox),
		grid:   make(map[[3]int][]int),
		cellOf: make(map[int][][3]int),
	}
	idx.sw, idx.ne = meshExtents(store)
	idx.cellSize = deriveCellSize(store, idx.sw, idx.ne)
	for _, e := range store.Elems() {
		if e.Active {
			idx.insert(e.Id)
		}
	}
	return idx
}

func meshExtents(store *mesh.Store) (sw, ne geometry.Point) {
	first := true
	for _, n := range store.Nodes() {
		if !n.Active {
			continue
		}
		if first {
			sw, ne = n.Point, n.Point
			first = false
			continue
		}
		if n.Point.X < sw.X {
			sw.X = n.Point.X
		}
		if n.Point.Y < sw.Y {
			sw.Y = n.Point.Y
		}
		if n.Point.Z < sw.Z {
			sw.Z = n.Point.Z
		}
		if n.Point.X > ne.X {
			ne.X = n.Point.X
		}
		if n.Point.Y > ne.Y {
			ne.Y = n.Point.Y
		}
		if n.Point.Z > ne.Z {
			ne.Z = n.Point.Z
		}
	}
	return
}

// deriveCellSize uses the mesh's average edge length as the (isotropic)
// cell size on every axis, falling back to 1/10th of the bounding diagonal
// if the mesh has no edges (degenerate input).
func deriveCellSize(store *mesh.Store, sw, ne geometry.Point) [3]float64 {
	var sum float64
	var count int
	for _, e := range store.Elems() {
		if !e.Active {
			continue
		}
		p0 := store.Node(e.Vert[0]).Point
		p1 := store.Node(e.Vert[1]).Point
		p2 := store.Node(e.Vert[2]).Point
		sum += geometry.Dist(p0, p1) + geometry.Dist(p1, p2) + geometry.Dist(p2, p0)
		count += 3
	}
	var avg float64
	if count > 0 {
		avg = sum / float64(count)
	}
	if avg <= 1e-12 {
		diag := geometry.Dist(sw, ne)
		if diag <= 1e-12 {
			diag = 1
		}
		avg = diag / 10
	}
	return [3]float64{avg, avg, avg}
}

func (idx *Index) box(e mesh.Element) BBox {
	p0 := idx.store.Node(e.Vert[0]).Point
	p1 := idx.store.Node(e.Vert[1]).Point
	p2 := idx.store.Node(e.Vert[2]).Point
	return NewBBoxFromTriangle(p0, p1, p2)
}

func (idx *Index) cellsOf(b BBox) [][3]int {
	minC := cellOf(b.Min, idx.sw, idx.cellSize)
	maxC := cellOf(b.Max, idx.sw, idx.cellSize)
	var cells [][3]int
	for i := minC[0]; i <= maxC[0]; i++ {
		for j := minC[1]; j <= maxC[1]; j++ {
			for k := minC[2]; k <= maxC[2]; k++ {
				cells = append(cells, [3]int{i, j, k})
			}
		}
	}
	return cells
}

func (idx *Index) insert(id int) {
	b := idx.box(idx.store.Elem(id))
	idx.boxes[id] = b
	cells := idx.cellsOf(b)
	idx.cellOf[id] = cells
	for _, c := range cells {
		idx.grid[c] = append(idx.grid[c], id)
	}
}

func (idx *Index) remove(id int) {
	cells, ok := idx.cellOf[id]
	if !ok {
		return
	}
	for _, c := range cells {
		bucket := idx.grid[c]
		for i, v := range bucket {
			if v == id {
				bucket[i] = bucket[len(bucket)-1]
				bucket = bucket[:len(bucket)-1]
				break
			}
		}
		if len(bucket) == 0 {
			delete(idx.grid, c)
		} else {
			idx.grid[c] = bucket
		}
	}
	delete(idx.cellOf, id)
	delete(idx.boxes, id)
}

// BoundingBox returns the bounding box stored for element id.
func (idx *Index) BoundingBox(id int) (BBox, bool) {
	b, ok := idx.boxes[id]
	return b, ok
}

// Neighbors returns, for element id, the ids (other than id itself) of
// elements whose bounding box overlaps its own.
func (idx *Index) Neighbors(id int) []int {
	b, ok := idx.boxes[id]
	if !ok {
		return nil
	}
	seen := map[int]struct{}{id: {}}
	var out []int
	for _, c := range idx.cellsOf(b) {
		for _, other := range idx.grid[c] {
			if _, dup := seen[other]; dup {
				continue
			}
			seen[other] = struct{}{}
			if idx.boxes[other].Overlaps(b) {
				out = append(out, other)
			}
		}
	}
	return out
}

// Erase removes elements from the index (§4.6 step 3c, after a collapse
// deactivates elemsToRemove).
func (idx *Index) Erase(ids []int) {
	for _, id := range ids {
		idx.remove(id)
	}
}

// Update recomputes the bounding box of each element in ids from the
// store's current geometry and re-buckets it.
func (idx *Index) Update(ids []int) {
	for _, id := range ids {
		idx.remove(id)
		if idx.store.IsElemActive(id) {
			idx.insert(id)
		}
	}
}

// UpdateCollapse erases toRemove and re-indexes toKeep in one call,
// mirroring the collapse's two-part element split (§4.5, §4.6 step 3c).
func (idx *Index) UpdateCollapse(toRemove, toKeep []int) {
	idx.Erase(toRemove)
	idx.Update(toKeep)
}
