// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// meshsimplify is the command-line front-end of the simplification engine
// (§6): it loads a mesh, a job configuration, runs the driver, and writes
// the result back out.
package main

import (
	"bufio"
	"bytes"
	"os"
	"strconv"
	"strings"

	"github.com/10395803/mesh-simplification/config"
	"github.com/10395803/mesh-simplification/cost"
	"github.com/10395803/mesh-simplification/geometry"
	"github.com/10395803/mesh-simplification/mesh"
	"github.com/10395803/mesh-simplification/meshio"
	"github.com/10395803/mesh-simplification/simplify"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Exit codes (§6).
const (
	exitSuccess           = 0
	exitIOError           = 1
	exitMalformedFile     = 2
	exitTargetUnreachable = 3
)

var (
	inFile     string
	outFile    string
	configFile string
	dataFile   string
)

func main() {
	os.Exit(run())
}

func run() (code int) {
	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 6; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.Pfred("ERROR: %v\n", err)
			code = exitIOError
		}
	}()

	root := &cobra.Command{
		Use:   "meshsimplify",
		Short: "Edge-collapse mesh simplification",
		RunE: func(cmd *cobra.Command, args []string) error {
			return execute()
		},
	}
	root.Flags().StringVar(&inFile, "in", "", "input mesh file (.inp or .vtk)")
	root.Flags().StringVar(&outFile, "out", "", "output mesh file (.inp or .vtk)")
	root.Flags().StringVar(&configFile, "config", "", "job configuration (JSON)")
	root.Flags().StringVar(&dataFile, "data", "", "optional data-point file for DATA mode, one 'x y z' per line")
	root.MarkFlagRequired("in")
	root.MarkFlagRequired("out")
	root.MarkFlagRequired("config")

	if err := root.Execute(); err != nil {
		io.Pfred("ERROR: %v\n", err)
		if exitCode == exitSuccess {
			exitCode = exitIOError
		}
		return exitCode
	}
	return exitCode
}

// exitCode is set by execute() so run()'s deferred recover path (which
// only fires on panic) does not shadow a clean non-zero exit.
var exitCode = exitSuccess

func execute() error {
	io.Pfwhite("meshsimplify -- edge-collapse mesh simplification\n")

	job, err := config.Load(configFile)
	if err != nil {
		exitCode = exitIOError
		return err
	}

	store, err := meshio.Read(inFile)
	if err != nil {
		exitCode = exitMalformedFile
		return err
	}

	// one Connectivity for the whole run: the cost model reads it and the
	// driver mutates it, so both must see every collapse (§5).
	conn := mesh.NewConnectivity(store)
	mesh.DetectBoundary(store, conn)

	model, dataPoints, err := buildModel(store, conn, job)
	if err != nil {
		exitCode = exitIOError
		return err
	}

	opts := simplify.Options{}
	if job.Mode != config.Geometric {
		opts.Data = dataPoints
	}

	io.Pf("simplifying %q -> target %d active vertices (mode=%s)\n", inFile, job.Target, job.Mode)
	result, err := simplify.Simplify(store, conn, model, job.Target, opts)
	if err != nil {
		exitCode = exitTargetUnreachable
		io.Pfyel("WARNING: %v\n", err)
		if writeErr := meshio.Write(result, outFile); writeErr != nil {
			return writeErr
		}
		return nil
	}

	if err := meshio.Write(result, outFile); err != nil {
		exitCode = exitIOError
		return err
	}

	io.Pfgreen("done: %d active vertices, %d active elements\n", result.NumNodes(), result.NumElems())
	return nil
}

func buildModel(store *mesh.Store, conn *mesh.Connectivity, job *config.Job) (cost.Model, []geometry.Point, error) {
	switch job.Mode {
	case config.Geometric:
		return cost.NewGeometricModel(store, conn), nil, nil

	case config.Data:
		pts, err := readDataPoints(dataFile)
		if err != nil {
			return nil, nil, err
		}
		conn.EnableDataMode(len(pts))
		return cost.NewDataModel(store, conn), pts, nil

	case config.Combined:
		pts, err := readDataPoints(dataFile)
		if err != nil {
			return nil, nil, err
		}
		conn.EnableDataMode(len(pts))
		geom := cost.NewGeometricModel(store, conn)
		data := cost.NewDataModel(store, conn)
		return cost.NewCombinedModel(geom, data, job.Weights.Geom, job.Weights.Disp, job.Weights.Equi), pts, nil

	default:
		return nil, nil, chk.Err("meshsimplify: unknown mode %q", job.Mode)
	}
}

func readDataPoints(filename string) ([]geometry.Point, error) {
	if filename == "" {
		return nil, chk.Err("meshsimplify: DATA/COMBINED mode requires --data")
	}
	b, err := io.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("meshsimplify: cannot read %q: %v", filename, err)
	}

	var pts []geometry.Point
	sc := bufio.NewScanner(bytes.NewReader(b))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		f := strings.Fields(line)
		if len(f) < 3 {
			return nil, chk.Err("meshsimplify: malformed data line %q in %q", line, filename)
		}
		x, errx := strconv.ParseFloat(f[0], 64)
		y, erry := strconv.ParseFloat(f[1], 64)
		z, errz := strconv.ParseFloat(f[2], 64)
		if errx != nil || erry != nil || errz != nil {
			return nil, chk.Err("meshsimplify: malformed data line %q in %q", line, filename)
		}
		pts = append(pts, geometry.NewPoint(x, y, z))
	}
	if err := sc.Err(); err != nil {
		return nil, chk.Err("meshsimplify: error reading %q: %v", filename, err)
	}
	return pts, nil
}
