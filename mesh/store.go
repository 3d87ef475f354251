// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"bytes"
	"fmt"

	"github.com/10395803/mesh-simplification/geometry"
	"github.com/cpmech/gosl/chk"
)

// Store holds the arrays of nodes and elements that make up a mesh
// (§2.2, §4.1). Ids are stable array indices; erasure is soft (the active
// flag is cleared) until Refresh compacts the arrays.
//
// Store is exclusively owned by the simplification driver while a
// simplification is running (§5); other components hold non-owning
// references to it.
type Store struct {
	nodes      []Node
	elems      []Element
	liveNodes  int
	liveElems  int
}

// NewStore builds an empty store, reserving space for the expected counts.
func NewStore(numNodes, numElems int) *Store {
	return &Store{
		nodes: make([]Node, 0, numNodes),
		elems: make([]Element, 0, numElems),
	}
}

// NumNodes returns the number of active nodes.
func (s *Store) NumNodes() int { return s.liveNodes }

// NumElems returns the number of active elements.
func (s *Store) NumElems() int { return s.liveElems }

// NodesLen returns the length of the underlying node slice, including
// inactive entries (differs from NumNodes until Refresh is called).
func (s *Store) NodesLen() int { return len(s.nodes) }

// ElemsLen returns the length of the underlying element slice, including
// inactive entries.
func (s *Store) ElemsLen() int { return len(s.elems) }

// Node returns a copy of the node with the given id.
func (s *Store) Node(id int) Node { return s.nodes[id] }

// Elem returns a copy of the element with the given id.
func (s *Store) Elem(id int) Element { return s.elems[id] }

// Nodes returns a copy of the full node slice (active and inactive).
func (s *Store) Nodes() []Node {
	out := make([]Node, len(s.nodes))
	copy(out, s.nodes)
	return out
}

// Elems returns a copy of the full element slice (active and inactive).
func (s *Store) Elems() []Element {
	out := make([]Element, len(s.elems))
	copy(out, s.elems)
	return out
}

// SetNode overwrites the point of the node with the given id; the id
// itself never changes.
func (s *Store) SetNode(id int, p geometry.Point) {
	s.nodes[id].Point = p
}

// SetBoundary sets the boundary tag of a node.
func (s *Store) SetBoundary(id, bound int) {
	s.nodes[id].Point.Boundary = bound
}

// InsertNode appends a new active node, returning its id.
func (s *Store) InsertNode(p geometry.Point) int {
	id := len(s.nodes)
	s.nodes = append(s.nodes, NewNode(id, p))
	s.liveNodes++
	return id
}

// InsertElem appends a new active element, returning its id.
func (s *Store) InsertElem(vert [NV]int, geoId int) int {
	id := len(s.elems)
	s.elems = append(s.elems, NewElement(id, vert, geoId))
	s.liveElems++
	return id
}

// ReplaceVertex rewrites oldId with newId in element elemId's vertex
// tuple. It panics (InvariantViolation) if oldId is not a vertex of the
// element — this is a programming error, never a recoverable condition.
func (s *Store) ReplaceVertex(elemId, oldId, newId int) {
	if !s.elems[elemId].Replace(oldId, newId) {
		chk.Panic("ReplaceVertex: id %d is not a vertex of element %d", oldId, elemId)
	}
}

// SetNodeActive marks a node active, if it was not already.
func (s *Store) SetNodeActive(id int) {
	if !s.nodes[id].Active {
		s.nodes[id].Active = true
		s.liveNodes++
	}
}

// SetNodeInactive marks a node inactive (soft erase), if it was active.
// The node's id is preserved so other components' references stay valid
// (§4.2 step 4).
func (s *Store) SetNodeInactive(id int) {
	if s.nodes[id].Active {
		s.nodes[id].Active = false
		s.liveNodes--
	}
}

// SetElemActive marks an element active, if it was not already.
func (s *Store) SetElemActive(id int) {
	if !s.elems[id].Active {
		s.elems[id].Active = true
		s.liveElems++
	}
}

// SetElemInactive marks an element inactive (soft erase).
func (s *Store) SetElemInactive(id int) {
	if s.elems[id].Active {
		s.elems[id].Active = false
		s.liveElems--
	}
}

// IsNodeActive reports whether the node is active.
func (s *Store) IsNodeActive(id int) bool { return s.nodes[id].Active }

// IsElemActive reports whether the element is active.
func (s *Store) IsElemActive(id int) bool { return s.elems[id].Active }

// Refresh compacts the node and element arrays, dropping inactive entries
// and remapping ids to a contiguous 0..N-1 range (§3 "Refresh", §4.1).
// It returns the old-node-id -> new-node-id map so callers (e.g. data
// projection bookkeeping) can follow along.
func (s *Store) Refresh() map[int]int {
	old2new := make(map[int]int, s.liveNodes)

	newNodes := make([]Node, 0, s.liveNodes)
	for _, n := range s.nodes {
		if n.Active {
			old2new[n.Id] = len(newNodes)
			n.Id = len(newNodes)
			newNodes = append(newNodes, n)
		}
	}

	newElems := make([]Element, 0, s.liveElems)
	for _, e := range s.elems {
		if !e.Active {
			continue
		}
		var vert [NV]int
		for i, v := range e.Vert {
			vert[i] = old2new[v]
		}
		e.Vert = vert
		e.Id = len(newElems)
		newElems = append(newElems, e)
	}

	s.nodes = newNodes
	s.elems = newElems
	s.liveNodes = len(newNodes)
	s.liveElems = len(newElems)
	return old2new
}

// Clone makes a deep, independent copy of the store.
//
// The original C++'s copy-assignment operator called std::copy into a
// zero-size destination vector (a documented bug, §9 Open Questions); this
// implementation allocates the destination slices to the right length
// before copying, which is what "nodes = bm.nodes" should have done.
func (s *Store) Clone() *Store {
	out := &Store{
		nodes:     make([]Node, len(s.nodes)),
		elems:     make([]Element, len(s.elems)),
		liveNodes: s.liveNodes,
		liveElems: s.liveElems,
	}
	copy(out.nodes, s.nodes)
	copy(out.elems, s.elems)
	return out
}

// String renders the full node and element lists, active and inactive.
func (s *Store) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "List of %d nodes:\n", s.liveNodes)
	for _, n := range s.nodes {
		fmt.Fprintf(&buf, "  %d: %v active=%v\n", n.Id, n.Point, n.Active)
	}
	fmt.Fprintf(&buf, "List of %d elements:\n", s.liveElems)
	for _, e := range s.elems {
		fmt.Fprintf(&buf, "  %d: %v geoId=%d active=%v\n", e.Id, e.Vert, e.GeoId, e.Active)
	}
	return buf.String()
}
