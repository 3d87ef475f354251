// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/cpmech/gosl/chk"
)

// ReadVTK parses the legacy ASCII VTK format used by this project (§6):
// four header lines, then "POINTS n float" followed by n points (possibly
// several per line), then "CELLS m ..." followed by m lines of the form
// "<geoId> <v1> <v2> <v3>" (already 0-based).
//
// Unlike the original C++ reader, which assumed the file had no blank
// lines, this implementation strips them before parsing.
func ReadVTK(filename string) (*mesh.Store, error) {
	raw, err := os.Open(filename)
	if err != nil {
		return nil, chk.Err("meshio: cannot open %q: %v", filename, err)
	}
	defer raw.Close()

	lines, err := nonBlankLines(raw)
	if err != nil {
		return nil, chk.Err("meshio: error reading %q: %v", filename, err)
	}
	if len(lines) < 4 {
		return nil, chk.Err("meshio: %q is too short to be a VTK file", filename)
	}
	lines = lines[4:] // skip the four header lines

	if len(lines) == 0 {
		return nil, chk.Err("meshio: %q has no POINTS section", filename)
	}
	hdr := strings.Fields(lines[0])
	if len(hdr) < 2 || !strings.EqualFold(hdr[0], "POINTS") {
		return nil, chk.Err("meshio: expected POINTS header, got %q", lines[0])
	}
	numNodes, err := strconv.Atoi(hdr[1])
	if err != nil {
		return nil, chk.Err("meshio: malformed POINTS count in %q: %v", lines[0], err)
	}
	lines = lines[1:]

	store := mesh.NewStore(numNodes, 0)

	coords := make([]float64, 0, numNodes*3)
	for len(coords) < numNodes*3 {
		if len(lines) == 0 {
			return nil, chk.Err("meshio: %q ends before %d points were read", filename, numNodes)
		}
		for _, tok := range strings.Fields(lines[0]) {
			v, errv := strconv.ParseFloat(tok, 64)
			if errv != nil {
				return nil, chk.Err("meshio: malformed coordinate %q in %q", tok, filename)
			}
			coords = append(coords, v)
		}
		lines = lines[1:]
	}
	for i := 0; i < numNodes; i++ {
		store.InsertNode(geometry.NewPoint(coords[3*i], coords[3*i+1], coords[3*i+2]))
	}

	if len(lines) == 0 {
		return nil, chk.Err("meshio: %q has no CELLS section", filename)
	}
	chdr := strings.Fields(lines[0])
	if len(chdr) < 2 || !strings.EqualFold(chdr[0], "CELLS") {
		return nil, chk.Err("meshio: expected CELLS header, got %q", lines[0])
	}
	numElems, err := strconv.Atoi(chdr[1])
	if err != nil {
		return nil, chk.Err("meshio: malformed CELLS count in %q: %v", lines[0], err)
	}
	lines = lines[1:]

	for n := 0; n < numElems; n++ {
		if len(lines) == 0 {
			return nil, chk.Err("meshio: %q ends before %d cells were read", filename, numElems)
		}
		f := strings.Fields(lines[0])
		lines = lines[1:]
		if len(f) < 4 {
			return nil, chk.Err("meshio: malformed cell line %q in %q", f, filename)
		}
		geoId, errg := strconv.Atoi(f[0])
		if errg != nil {
			return nil, chk.Err("meshio: malformed geoId %q in %q", f[0], filename)
		}
		var vert [mesh.NV]int
		for i := 0; i < mesh.NV; i++ {
			v, errv := strconv.Atoi(f[1+i])
			if errv != nil {
				return nil, chk.Err("meshio: malformed vertex id %q in %q", f[1+i], filename)
			}
			vert[i] = v
		}
		store.InsertElem(vert, geoId)
	}

	return store, nil
}

// nonBlankLines returns the non-empty (after trimming) lines of r.
func nonBlankLines(r *os.File) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	var out []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			out = append(out, line)
		}
	}
	return out, sc.Err()
}

// WriteVTK writes store in the legacy ASCII VTK format (§6), compacting
// inactive entries first.
func WriteVTK(store *mesh.Store, filename string) error {
	compactIfNeeded(store)

	f, err := os.Create(filename)
	if err != nil {
		return chk.Err("meshio: cannot create %q: %v", filename, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# vtk DataFile Version 3.0")
	fmt.Fprintln(w, "mesh-simplification output")
	fmt.Fprintln(w, "ASCII")
	fmt.Fprintln(w, "DATASET UNSTRUCTURED_GRID")

	fmt.Fprintf(w, "POINTS %d float\n", store.NumNodes())
	for _, n := range store.Nodes() {
		fmt.Fprintf(w, "%.15g %.15g %.15g\n", n.Point.X, n.Point.Y, n.Point.Z)
	}

	fmt.Fprintf(w, "CELLS %d %d\n", store.NumElems(), store.NumElems()*4)
	for _, e := range store.Elems() {
		fmt.Fprintf(w, "%d %d %d %d\n", e.GeoId, e.Vert[0], e.Vert[1], e.Vert[2])
	}
	return w.Flush()
}
