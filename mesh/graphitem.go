// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "sort"

// GraphItem is one vertex of a connectivity graph: an id plus the sorted
// set of ids it connects to (§3 "Graph item"). The connections are kept
// as a set, so inserting the same id twice records it once.
type GraphItem struct {
	id     int
	conn   map[int]struct{}
	active bool
}

// NewGraphItem builds an active, empty graph item with the given id.
func NewGraphItem(id int) *GraphItem {
	return &GraphItem{id: id, conn: make(map[int]struct{}), active: true}
}

// Id returns the item's id.
func (g *GraphItem) Id() int { return g.id }

// Size returns the number of connected ids.
func (g *GraphItem) Size() int { return len(g.conn) }

// IsActive reports whether the item is active.
func (g *GraphItem) IsActive() bool { return g.active }

// SetActive sets the active flag.
func (g *GraphItem) SetActive(flag bool) { g.active = flag }

// Find reports whether val is connected to this item.
func (g *GraphItem) Find(val int) bool {
	_, ok := g.conn[val]
	return ok
}

// Insert adds val to the connection set.
func (g *GraphItem) Insert(val int) {
	g.conn[val] = struct{}{}
}

// Erase removes val from the connection set.
func (g *GraphItem) Erase(val int) {
	delete(g.conn, val)
}

// Clear empties the connection set.
func (g *GraphItem) Clear() {
	g.conn = make(map[int]struct{})
}

// Connected returns the connected ids in ascending order.
func (g *GraphItem) Connected() []int {
	out := make([]int, 0, len(g.conn))
	for id := range g.conn {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// UnionIds returns the sorted union of ids of all the given graph items.
func UnionIds(items ...*GraphItem) []int {
	set := make(map[int]struct{})
	for _, it := range items {
		for id := range it.conn {
			set[id] = struct{}{}
		}
	}
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}
