// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package meshio

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

const squareINP = `4 2 0 0 0
1 0 0 0
2 1 0 0
3 1 1 0
4 0 1 0
1 0 tri 1 2 3
2 0 tri 1 3 4
`

const squareVTK = `# vtk DataFile Version 3.0
mesh-simplification output
ASCII
DATASET UNSTRUCTURED_GRID
POINTS 4 float
0 0 0
1 0 0

1 1 0 0 1 0
CELLS 2 8
0 0 1 2
0 0 2 3
`

func writeTemp(tst *testing.T, name, content string) string {
	dir := tst.TempDir()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		tst.Fatalf("cannot write fixture: %v", err)
	}
	return path
}

func Test_meshio_readINP01(tst *testing.T) {

	chk.PrintTitle("meshio_readINP01")

	path := writeTemp(tst, "square.inp", squareINP)
	store, err := Read(path)
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}
	chk.IntAssert(store.NumNodes(), 4)
	chk.IntAssert(store.NumElems(), 2)

	e := store.Elem(0)
	chk.IntAssert(e.Vert[0], 0)
	chk.IntAssert(e.Vert[1], 1)
	chk.IntAssert(e.Vert[2], 2)
}

func Test_meshio_readVTK01(tst *testing.T) {

	chk.PrintTitle("meshio_readVTK01")

	// deliberately includes a blank line inside the POINTS block to
	// exercise the blank-line-stripping behavior.
	path := writeTemp(tst, "square.vtk", squareVTK)
	store, err := Read(path)
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}
	chk.IntAssert(store.NumNodes(), 4)
	chk.IntAssert(store.NumElems(), 2)
	chk.Scalar(tst, "node 2 x", 1e-15, store.Node(2).Point.X, 1)
}

func Test_meshio_roundtripINP01(tst *testing.T) {

	chk.PrintTitle("meshio_roundtripINP01")

	in := writeTemp(tst, "in.inp", squareINP)
	store, err := Read(in)
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}

	out := filepath.Join(tst.TempDir(), "out.inp")
	if err := Write(store, out); err != nil {
		tst.Fatalf("Write failed: %v", err)
	}

	back, err := Read(out)
	if err != nil {
		tst.Fatalf("re-Read failed: %v", err)
	}
	chk.IntAssert(back.NumNodes(), store.NumNodes())
	chk.IntAssert(back.NumElems(), store.NumElems())
}

func Test_meshio_roundtripVTK01(tst *testing.T) {

	chk.PrintTitle("meshio_roundtripVTK01")

	in := writeTemp(tst, "in.inp", squareINP)
	store, err := Read(in)
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}

	out := filepath.Join(tst.TempDir(), "out.vtk")
	if err := Write(store, out); err != nil {
		tst.Fatalf("Write failed: %v", err)
	}

	back, err := Read(out)
	if err != nil {
		tst.Fatalf("re-Read failed: %v", err)
	}
	chk.IntAssert(back.NumNodes(), store.NumNodes())
	chk.IntAssert(back.NumElems(), store.NumElems())
}

func Test_meshio_unknownFormat01(tst *testing.T) {

	chk.PrintTitle("meshio_unknownFormat01")

	path := writeTemp(tst, "mesh.xyz", "irrelevant")
	if _, err := Read(path); err == nil {
		tst.Fatal("expected an UnknownFormat error")
	}
}
