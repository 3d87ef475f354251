// Copyright 2016 The Mesh Simplification Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config implements the job configuration read from a JSON file
// (§6): cost-model selection, combined-model weights, data-projection
// toggle, target vertex count, and numerical tolerance.
package config

import (
	"encoding/json"
	"os"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Mode selects the cost model (§6 "Cost-model selection").
type Mode string

const (
	Geometric Mode = "geometric"
	Data      Mode = "data"
	Combined  Mode = "combined"
)

// DefaultTolerance is used when neither the config file nor MESH_TOL sets
// a tolerance explicitly.
const DefaultTolerance = 1e-10

// Weights holds the combined-model term weights, which must sum to 1
// (§4.3.4).
type Weights struct {
	Geom float64 `json:"geom"`
	Disp float64 `json:"disp"`
	Equi float64 `json:"equi"`
}

// Job is the simplification job configuration loaded from JSON.
type Job struct {
	Mode       Mode    `json:"mode"`
	Weights    Weights `json:"weights"`
	Projection bool    `json:"projection"` // parsed but not read by cmd/meshsimplify, which projects data in every DATA or COMBINED run
	Target     int     `json:"target"`     // target active-vertex count
	Tolerance  float64 `json:"tolerance"`  // overridden by MESH_TOL if set
}

// SetDefault fills in the fields a bare JSON object may omit.
func (j *Job) SetDefault() {
	if j.Mode == "" {
		j.Mode = Geometric
	}
	if j.Tolerance == 0 {
		j.Tolerance = DefaultTolerance
	}
}

// Load reads and validates a job configuration from filename, applying
// the MESH_TOL environment override if present (§6).
func Load(filename string) (*Job, error) {
	b, err := io.ReadFile(filename)
	if err != nil {
		return nil, chk.Err("config: cannot read %q: %v", filename, err)
	}

	var job Job
	job.SetDefault()
	if err := json.Unmarshal(b, &job); err != nil {
		return nil, chk.Err("config: cannot parse %q: %v", filename, err)
	}

	if raw := os.Getenv("MESH_TOL"); raw != "" {
		tol, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, chk.Err("config: MESH_TOL=%q is not a valid number: %v", raw, err)
		}
		job.Tolerance = tol
	}

	if err := job.Validate(); err != nil {
		return nil, err
	}
	return &job, nil
}

// Validate checks internal consistency (§6, §4.3.4).
func (j *Job) Validate() error {
	switch j.Mode {
	case Geometric, Data, Combined:
	default:
		return chk.Err("config: unknown mode %q (want geometric, data or combined)", j.Mode)
	}
	if j.Target < 0 {
		return chk.Err("config: target must be >= 0, got %d", j.Target)
	}
	if j.Mode == Combined {
		sum := j.Weights.Geom + j.Weights.Disp + j.Weights.Equi
		if sum < 1-1e-6 || sum > 1+1e-6 {
			return chk.Err("config: combined weights must sum to 1, got %g", sum)
		}
	}
	return nil
}
