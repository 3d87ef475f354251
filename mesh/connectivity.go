// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// Connectivity maintains the node<->node, node<->element, element<->element
// and (DATA mode) element<->data graphs described in §3/§4.2. It holds a
// non-owning reference to the Store it was built from.
type Connectivity struct {
	store *Store

	node2node []*GraphItem // len == NodesLen()
	node2elem []*GraphItem // len == NodesLen()
	elem2elem []*GraphItem // len == ElemsLen(), >=1 shared vertex

	dataMode bool
	elem2data []*GraphItem // len == ElemsLen(), DATA mode only
	data2elem []*GraphItem // len == number of data points, DATA mode only
}

// NewConnectivity builds node2elem, node2node and elem2elem from the
// current state of store, scanning elements once (§4.2).
func NewConnectivity(store *Store) *Connectivity {
	c := &Connectivity{store: store}
	c.rebuildFromScratch()
	return c
}

func (c *Connectivity) rebuildFromScratch() {
	n := c.store.NodesLen()
	e := c.store.ElemsLen()

	c.node2node = make([]*GraphItem, n)
	c.node2elem = make([]*GraphItem, n)
	for i := 0; i < n; i++ {
		c.node2node[i] = NewGraphItem(i)
		c.node2elem[i] = NewGraphItem(i)
		if !c.store.nodes[i].Active {
			c.node2node[i].SetActive(false)
			c.node2elem[i].SetActive(false)
		}
	}

	c.elem2elem = make([]*GraphItem, e)
	for i := 0; i < e; i++ {
		c.elem2elem[i] = NewGraphItem(i)
		if !c.store.elems[i].Active {
			c.elem2elem[i].SetActive(false)
		}
	}

	// node2elem: O(E)
	for _, elem := range c.store.elems {
		if !elem.Active {
			continue
		}
		for _, v := range elem.Vert {
			c.node2elem[v].Insert(elem.Id)
		}
	}

	// node2node: O(E*NV^2)
	for _, elem := range c.store.elems {
		if !elem.Active {
			continue
		}
		for i := 0; i < NV; i++ {
			for j := 0; j < NV; j++ {
				if i == j {
					continue
				}
				c.node2node[elem.Vert[i]].Insert(elem.Vert[j])
			}
		}
	}

	// elem2elem: two elements sharing at least one vertex
	for v := 0; v < n; v++ {
		if !c.store.nodes[v].Active {
			continue
		}
		incident := c.node2elem[v].Connected()
		for i := range incident {
			for j := range incident {
				if i == j {
					continue
				}
				c.elem2elem[incident[i]].Insert(incident[j])
			}
		}
	}
}

// EnableDataMode initializes the elem2data/data2elem graphs for numData
// data points, all initially unlinked. Call once, before any data is
// projected (§2.3, §4.6 step 1).
func (c *Connectivity) EnableDataMode(numData int) {
	c.dataMode = true
	c.elem2data = make([]*GraphItem, c.store.ElemsLen())
	for i := range c.elem2data {
		c.elem2data[i] = NewGraphItem(i)
	}
	c.data2elem = make([]*GraphItem, numData)
	for i := range c.data2elem {
		c.data2elem[i] = NewGraphItem(i)
	}
}

// DataMode reports whether the element<->data graphs are active.
func (c *Connectivity) DataMode() bool { return c.dataMode }

// Node2Node returns the neighbor set of vertex v.
func (c *Connectivity) Node2Node(v int) *GraphItem { return c.node2node[v] }

// Node2Elem returns the elements incident to vertex v.
func (c *Connectivity) Node2Elem(v int) *GraphItem { return c.node2elem[v] }

// Elem2Elem returns the elements sharing >=1 vertex with element e.
func (c *Connectivity) Elem2Elem(e int) *GraphItem { return c.elem2elem[e] }

// Elem2Data returns the data ids attached to element e (DATA mode only).
func (c *Connectivity) Elem2Data(e int) *GraphItem { return c.elem2data[e] }

// Data2Elem returns the (singleton, once projected) element a datum is
// attached to (DATA mode only).
func (c *Connectivity) Data2Elem(d int) *GraphItem { return c.data2elem[d] }

// NumData returns the number of data points tracked (0 outside DATA mode).
func (c *Connectivity) NumData() int { return len(c.data2elem) }

// LinkData attaches datum d to element e in both directions.
func (c *Connectivity) LinkData(d, e int) {
	c.elem2data[e].Insert(d)
	c.data2elem[d].Insert(e)
}

// UnlinkData detaches datum d from element e in both directions.
func (c *Connectivity) UnlinkData(d, e int) {
	c.elem2data[e].Erase(d)
	c.data2elem[d].Erase(e)
}

// RelinkData moves datum d from element oldE to newE.
func (c *Connectivity) RelinkData(d, oldE, newE int) {
	if oldE >= 0 {
		c.UnlinkData(d, oldE)
	}
	c.LinkData(d, newE)
}

// ElemsOnEdge returns the elements incident to BOTH id1 and id2 — the
// "elemsToRemove" set of §4.6 step 3b (normally the (up to) two triangles
// sharing the collapsing edge).
func (c *Connectivity) ElemsOnEdge(id1, id2 int) []int {
	e1 := c.node2elem[id1]
	e2 := c.node2elem[id2]
	var out []int
	for _, e := range e1.Connected() {
		if e2.Find(e) {
			out = append(out, e)
		}
	}
	return out
}

// ElemsInvolvedInCollapse returns the elements incident to id1 or id2
// (the union of their stars).
func (c *Connectivity) ElemsInvolvedInCollapse(id1, id2 int) []int {
	return UnionIds(c.node2elem[id1], c.node2elem[id2])
}

// ElemsModifiedInCollapse returns the elements incident to exactly one of
// id1, id2 — the "elemsToKeep" set of §4.6 step 3b.
func (c *Connectivity) ElemsModifiedInCollapse(id1, id2 int) []int {
	e1 := c.node2elem[id1]
	e2 := c.node2elem[id2]
	var out []int
	for _, e := range e1.Connected() {
		if !e2.Find(e) {
			out = append(out, e)
		}
	}
	for _, e := range e2.Connected() {
		if !e1.Find(e) {
			out = append(out, e)
		}
	}
	return out
}

// DataInvolvedInCollapse returns the union of elem2data over invElems —
// the data "belonging" to any element touched by the collapse
// (imp_meshInfo.hpp getDataInvolvedInEdgeCollapsing).
func (c *Connectivity) DataInvolvedInCollapse(invElems []int) []int {
	if len(invElems) == 0 {
		chk.Panic("DataInvolvedInCollapse: empty element list")
	}
	items := make([]*GraphItem, len(invElems))
	for i, e := range invElems {
		items[i] = c.elem2data[e]
	}
	return UnionIds(items...)
}

// DataModifiedInCollapse keeps, among the data involved in the collapse,
// only those data points whose entire data2elem set lies inside invElems
// — i.e. it drops data lying on the border of the affected patch, which
// is not fully subsumed by the collapse (imp_meshInfo.hpp
// getDataModifiedInEdgeCollapsing).
func (c *Connectivity) DataModifiedInCollapse(invElems []int) []int {
	invData := c.DataInvolvedInCollapse(invElems)
	inSet := make(map[int]struct{}, len(invElems))
	for _, e := range invElems {
		inSet[e] = struct{}{}
	}
	var kept []int
	for _, d := range invData {
		allInside := true
		for _, e := range c.data2elem[d].Connected() {
			if _, ok := inSet[e]; !ok {
				allInside = false
				break
			}
		}
		if allInside {
			kept = append(kept, d)
		}
	}
	return kept
}

// QuantityOfInformation returns N_t = sum_{d in elem2data[t]} 1/|data2elem[d]|,
// the expected number of data points "belonging" to triangle t (§4.3.3,
// imp_meshInfo.hpp getQuantityOfInformation).
func (c *Connectivity) QuantityOfInformation(t int) float64 {
	var nt float64
	for _, d := range c.elem2data[t].Connected() {
		patch := c.data2elem[d].Size()
		if patch == 0 {
			continue
		}
		nt += 1.0 / float64(patch)
	}
	return nt
}

// ApplyEdgeCollapsing performs the connectivity-side bookkeeping of an
// edge collapse (§4.2):
//
//  1. deactivate each element in elemsToRemove and drop it from node2elem;
//  2. in each element of elemsToKeep, replace removedVertex with
//     keptVertex (store-side rewrite is the caller's responsibility,
//     performed via store.ReplaceVertex before this call) and update
//     node2elem accordingly;
//  3. rebuild the node2node row of keptVertex and of every vertex still
//     adjacent to an element of elemsToKeep/elemsToRemove;
//  4. deactivate removedVertex (its id is preserved).
func (c *Connectivity) ApplyEdgeCollapsing(removedVertex, keptVertex int, elemsToRemove, elemsToKeep []int) {

	touched := map[int]struct{}{keptVertex: {}}

	for _, e := range elemsToRemove {
		elem := c.store.Elem(e)
		for _, v := range elem.Vert {
			c.node2elem[v].Erase(e)
			touched[v] = struct{}{}
		}
		c.elem2elem[e].SetActive(false)
		c.store.SetElemInactive(e)
	}

	for _, e := range elemsToKeep {
		c.node2elem[removedVertex].Erase(e)
		c.node2elem[keptVertex].Insert(e)
		elem := c.store.Elem(e) // already rewritten by the caller
		for _, v := range elem.Vert {
			touched[v] = struct{}{}
		}
	}

	// rebuild elem2elem for the touched neighborhood
	for v := range touched {
		incident := c.node2elem[v].Connected()
		for _, e := range incident {
			c.elem2elem[e].Clear()
		}
	}
	for v := range touched {
		incident := c.node2elem[v].Connected()
		for i := range incident {
			for j := range incident {
				if i == j {
					continue
				}
				c.elem2elem[incident[i]].Insert(incident[j])
			}
		}
	}

	// rebuild node2node rows for the touched vertices from their
	// (still active) incident elements
	for v := range touched {
		c.node2node[v].Clear()
		for _, e := range c.node2elem[v].Connected() {
			elem := c.store.Elem(e)
			for _, w := range elem.Vert {
				if w != v {
					c.node2node[v].Insert(w)
				}
			}
		}
	}
	// the removed vertex is no longer adjacent to anything
	c.node2node[removedVertex].Clear()
	c.node2elem[removedVertex].Clear()

	// keep neighbors' node2node rows symmetric: any vertex that used to
	// be connected to removedVertex but was not otherwise touched must
	// drop that stale reference
	for _, w := range c.node2node[keptVertex].Connected() {
		c.node2node[w].Erase(removedVertex)
	}

	c.node2node[removedVertex].SetActive(false)
	c.node2elem[removedVertex].SetActive(false)
	c.store.SetNodeInactive(removedVertex)
}
