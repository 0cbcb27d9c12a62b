// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/chmerdon/StrainedBandstructures/mdl/crystal"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. nanowire.sim")

	sim, err := ReadSim("data/nanowire.sim")
	if err != nil {
		tst.Errorf("cannot read sim file: %v\n", err)
		return
	}
	io.Pforan("sim = %+v\n", sim)

	chk.String(tst, sim.Regions[0].MatA, "GaAs")
	chk.String(tst, sim.Regions[1].MatB, "InAs")
	chk.Float64(tst, "x1", 1e-17, sim.Regions[0].X, 0)
	chk.Float64(tst, "x2", 1e-17, sim.Regions[1].X, 0.5)
	if sim.Sym != crystal.ZincBlende001 {
		tst.Errorf("wrong parsed symmetry: %v\n", sim.Sym)
	}
	chk.Int(tst, "ndim", sim.Geo.Ndim, 2)
	chk.Array(tst, "scale", 1e-17, sim.Geo.Scale, []float64{50, 2000})
	chk.Float64(tst, "mb", 1e-17, sim.Geo.Mb, 0.25)
	chk.Float64(tst, "h1", 1e-15, sim.Geo.H1(), 12.5)
	chk.Float64(tst, "h2", 1e-15, sim.Geo.H2(), 37.5)
	A1, A2 := sim.Geo.Weights()
	chk.Float64(tst, "A1", 1e-11, A1, 12.5*2000)
	chk.Float64(tst, "A2", 1e-11, A2, 37.5*2000)
	chk.Int(tst, "avgc", sim.Avgc, 2)
	chk.String(tst, sim.Solver.Type, "emb")
	chk.String(tst, sim.Solver.Model, "bilayer")
	chk.Int(tst, "nsteps", sim.Solver.Nsteps, 4)
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. missing file")

	if _, err := ReadSim("data/doesnotexist.sim"); err == nil {
		tst.Errorf("missing file must fail\n")
	}
}

// validSim returns a simulation that passes Validate; the failure tests below
// break one field at a time
func validSim() *Simulation {
	return &Simulation{
		Regions: [2]MaterialData{
			{MatA: "GaAs", MatB: "InAs", X: 0},
			{MatA: "GaAs", MatB: "InAs", X: 0.5},
		},
		Symmetry: "zb001",
		Geo:      GeometryData{Scale: []float64{50, 2000}, Mb: 0.25, Ndim: 2},
		Avgc:     2,
		Solver:   SolverData{Nsteps: 4, FbTol: 1e-8, NmaxIt: 50, Order: 2},
	}
}

func Test_validate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("validate01. valid input passes and defaults are set")

	sim := validSim()
	if err := sim.Validate(); err != nil {
		tst.Errorf("valid input rejected: %v\n", err)
		return
	}
	chk.String(tst, sim.Solver.Type, "emb")
	chk.String(tst, sim.Solver.Model, "bilayer")
}

func Test_validate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("validate02. degenerate single-material geometries are rejected")

	for _, mb := range []float64{0, 1, -0.1, 1.1} {
		sim := validSim()
		sim.Geo.Mb = mb
		if err := sim.Validate(); err == nil {
			tst.Errorf("mb=%g must fail\n", mb)
		} else {
			io.Pfyel("mb=%g: %v\n", mb, err)
		}
	}
}

func Test_validate03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("validate03. configuration errors are rejected before any solve")

	cases := []struct {
		msg   string
		apply func(s *Simulation)
	}{
		{"x out of range", func(s *Simulation) { s.Regions[1].X = 1.5 }},
		{"missing end member", func(s *Simulation) { s.Regions[0].MatB = "" }},
		{"unknown symmetry", func(s *Simulation) { s.Symmetry = "hexagonal" }},
		{"bad avgc", func(s *Simulation) { s.Avgc = 7 }},
		{"bad ndim", func(s *Simulation) { s.Geo.Ndim = 4 }},
		{"scale/ndim mismatch", func(s *Simulation) { s.Geo.Ndim = 3 }},
		{"nonpositive scale", func(s *Simulation) { s.Geo.Scale[0] = -50 }},
		{"nsteps < 1", func(s *Simulation) { s.Solver.Nsteps = 0 }},
		{"fbtol <= 0", func(s *Simulation) { s.Solver.FbTol = 0 }},
		{"nmaxit < 1", func(s *Simulation) { s.Solver.NmaxIt = 0 }},
		{"negative nrefine", func(s *Simulation) { s.Solver.Nrefine = -1 }},
		{"nrefine too large", func(s *Simulation) { s.Solver.Nrefine = 99 }},
		{"mixed material routes", func(s *Simulation) {
			s.Regions[1] = MaterialData{E: 1e-6, Nu: 0.15, Lc: 1}
		}},
	}
	for _, c := range cases {
		sim := validSim()
		c.apply(sim)
		if err := sim.Validate(); err == nil {
			tst.Errorf("%s must fail\n", c.msg)
		} else {
			io.Pfyel("%-24s: %v\n", c.msg, err)
		}
	}
}

func Test_validate04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("validate04. high order only in 2D")

	sim := validSim()
	sim.Solver.Order = 3
	if err := sim.Validate(); err != nil {
		tst.Errorf("order=3 in 2D must pass: %v\n", err)
	}

	sim = validSim()
	sim.Geo.Ndim = 3
	sim.Geo.Scale = []float64{50, 100, 2000}
	sim.Solver.Order = 3
	if err := sim.Validate(); err == nil {
		tst.Errorf("order=3 in 3D must fail\n")
	}
}

func Test_validate05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("validate05. isotropic route")

	sim := validSim()
	sim.Regions[0] = MaterialData{E: 1e-6, Nu: 0.15, Lc: 1.0}
	sim.Regions[1] = MaterialData{E: 1e-6, Nu: 0.15, Lc: 1.02}
	sim.Symmetry = "" // no crystal structure on the isotropic route
	if err := sim.Validate(); err != nil {
		tst.Errorf("isotropic input rejected: %v\n", err)
		return
	}

	sim.Regions[1].Lc = 0
	if err := sim.Validate(); err == nil {
		tst.Errorf("lc=0 must fail\n")
	}
}
