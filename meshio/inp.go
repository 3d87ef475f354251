// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package meshio implements the out-of-core mesh I/O described in §6 of
// the specification: the INP text format and the VTK legacy ASCII format.
// These are the only two supported extensions; anything else is an
// UnknownFormat error.
package meshio

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/cpmech/gosl/chk"
)

// Read loads a mesh from filename, dispatching on its extension
// (.inp or .vtk). Any other extension yields an UnknownFormat error.
func Read(filename string) (*mesh.Store, error) {
	switch ext(filename) {
	case "inp":
		return ReadINP(filename)
	case "vtk":
		return ReadVTK(filename)
	default:
		return nil, chk.Err("meshio: unknown format %q (from %q)", ext(filename), filename)
	}
}

// Write saves store to filename, dispatching on its extension. Inactive
// nodes and elements are compacted first (§6 "mirror of input"); the
// store is mutated in place by this compaction.
func Write(store *mesh.Store, filename string) error {
	switch ext(filename) {
	case "inp":
		return WriteINP(store, filename)
	case "vtk":
		return WriteVTK(store, filename)
	default:
		return chk.Err("meshio: unknown format %q (from %q)", ext(filename), filename)
	}
}

func ext(filename string) string {
	e := filepath.Ext(filename)
	return strings.TrimPrefix(strings.ToLower(e), ".")
}

func compactIfNeeded(store *mesh.Store) {
	if store.NumNodes() < store.NodesLen() || store.NumElems() < store.ElemsLen() {
		store.Refresh()
	}
}

// ReadINP parses the INP text format (§6):
//
//	<numNodes> <numElems> 0 0 0
//	<nodeId> <x> <y> <z>                   (repeated numNodes times, 1-based)
//	<elemId> <geoId> tri <v1> <v2> <v3>     (1-based, decremented to 0-based)
//
// The file-supplied node/element ids are ignored (the header counts size
// the store); the in-memory id of each node/element is its order of
// appearance in the file.
func ReadINP(filename string) (*mesh.Store, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, chk.Err("meshio: cannot open %q: %v", filename, err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return nil, chk.Err("meshio: %q is empty", filename)
	}
	fields := strings.Fields(sc.Text())
	if len(fields) < 2 {
		return nil, chk.Err("meshio: malformed header in %q", filename)
	}
	numNodes, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, chk.Err("meshio: malformed node count in %q: %v", filename, err)
	}
	numElems, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, chk.Err("meshio: malformed element count in %q: %v", filename, err)
	}

	store := mesh.NewStore(numNodes, numElems)

	for n := 0; n < numNodes; n++ {
		if !sc.Scan() {
			return nil, chk.Err("meshio: %q ends before %d nodes were read", filename, numNodes)
		}
		f := strings.Fields(sc.Text())
		if len(f) < 4 {
			return nil, chk.Err("meshio: malformed node line %q in %q", sc.Text(), filename)
		}
		x, errx := strconv.ParseFloat(f[1], 64)
		y, erry := strconv.ParseFloat(f[2], 64)
		z, errz := strconv.ParseFloat(f[3], 64)
		if errx != nil || erry != nil || errz != nil {
			return nil, chk.Err("meshio: malformed coordinates %q in %q", sc.Text(), filename)
		}
		store.InsertNode(geometry.NewPoint(x, y, z))
	}

	for n := 0; n < numElems; n++ {
		if !sc.Scan() {
			return nil, chk.Err("meshio: %q ends before %d elements were read", filename, numElems)
		}
		f := strings.Fields(sc.Text())
		if len(f) < 6 {
			return nil, chk.Err("meshio: malformed element line %q in %q", sc.Text(), filename)
		}
		geoId, errg := strconv.Atoi(f[1])
		if errg != nil {
			return nil, chk.Err("meshio: malformed geoId %q in %q", sc.Text(), filename)
		}
		var vert [mesh.NV]int
		for i := 0; i < mesh.NV; i++ {
			v, errv := strconv.Atoi(f[3+i])
			if errv != nil {
				return nil, chk.Err("meshio: malformed vertex id %q in %q", sc.Text(), filename)
			}
			vert[i] = v - 1 // 1-based -> 0-based
		}
		store.InsertElem(vert, geoId)
	}

	if err := sc.Err(); err != nil {
		return nil, chk.Err("meshio: error reading %q: %v", filename, err)
	}
	return store, nil
}

// WriteINP writes store in the INP text format (§6), compacting inactive
// entries first.
func WriteINP(store *mesh.Store, filename string) error {
	compactIfNeeded(store)

	f, err := os.Create(filename)
	if err != nil {
		return chk.Err("meshio: cannot create %q: %v", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintf(w, "%d %d 0 0 0\n", store.NumNodes(), store.NumElems())
	for _, n := range store.Nodes() {
		fmt.Fprintf(w, "%d %.15g %.15g %.15g\n", n.Id+1, n.Point.X, n.Point.Y, n.Point.Z)
	}
	for _, e := range store.Elems() {
		fmt.Fprintf(w, "%d %d tri %d %d %d\n", e.Id+1, e.GeoId, e.Vert[0]+1, e.Vert[1]+1, e.Vert[2]+1)
	}
	return w.Flush()
}
