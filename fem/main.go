// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/chmerdon/StrainedBandstructures/ana"
	"github.com/chmerdon/StrainedBandstructures/inp"
	"github.com/chmerdon/StrainedBandstructures/mdl/alloy"
	"github.com/chmerdon/StrainedBandstructures/mdl/crystal"
	"github.com/chmerdon/StrainedBandstructures/mdl/misfit"
	"github.com/chmerdon/StrainedBandstructures/msh"
	"github.com/chmerdon/StrainedBandstructures/out"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
)

// Main holds all data for one bimetal bending simulation
type Main struct {
	Sim    *inp.Simulation     // simulation input data
	Mats   [2]*alloy.Constants // resolved per-region material constants
	Lc     [2][]float64        // per-region lattice constant vectors
	Mis    *misfit.Strain      // per-region mismatch and eigenstrain
	Msh    *msh.Mesh           // discretized domain
	Op     *Operator           // assembled nonlinear problem
	Solver Solver              // continuation or damping driver
	Nl     NonlinSolver        // external nonlinear solve primitive
}

// NewMain resolves materials, builds tensors and eigenstrains, meshes the
// geometry, and assembles the nonlinear problem. All configuration and
// geometry errors surface here, before any solve.
func NewMain(sim *inp.Simulation) (o *Main, err error) {
	o = &Main{Sim: sim}
	op := &Operator{Emb: 1, Nonlin: sim.Solver.Nonlin}

	// resolve materials and build per-region tensors
	for i, r := range sim.Regions {
		var m *alloy.Constants
		sym := sim.Sym
		if r.Alloy() {
			m, err = alloy.Resolve(r.MatA, r.MatB, r.X)
		} else {
			m, err = alloy.Isotropic(r.E, r.Nu, r.Lc)
			sym = crystal.ZincBlende001
			if sim.Geo.Ndim == 2 {
				sym = crystal.ZincBlende2D
			}
		}
		if err != nil {
			return nil, err
		}
		o.Mats[i] = m
		if op.Elast[i], err = crystal.Elasticity(m, sym); err != nil {
			return nil, err
		}
		if op.Piezo[i], err = crystal.Piezoelectricity(m, sym); err != nil {
			return nil, err
		}
		if o.Lc[i], err = crystal.LatticeVector(m, sym); err != nil {
			return nil, err
		}
		op.Young[i] = m.Young()
	}

	// eigenstrains from the in-plane lattice constants
	A1, A2 := sim.Geo.Weights()
	o.Mis, err = misfit.Compute(sim.Avgc, A1, A2, o.Lc[0][0], o.Lc[1][0])
	if err != nil {
		return nil, err
	}
	op.Alpha = o.Mis.Alpha
	op.Eps0 = o.Mis.Eps0

	// mesh
	o.Msh, err = msh.NewGrid().Mesh(sim.Geo.Scale, sim.Geo.Mb, sim.Geo.Ndim, sim.Solver.Order, sim.Solver.Nrefine)
	if err != nil {
		return nil, err
	}
	op.Msh = o.Msh
	o.Op = op
	if err = op.Check(); err != nil {
		return nil, err
	}

	// solver driver and nonlinear primitive
	if o.Solver, err = NewSolver(&sim.Solver); err != nil {
		return nil, err
	}
	if o.Nl, err = NewNonlinSolver(sim.Solver.Model); err != nil {
		return nil, err
	}
	return
}

// Run drives the solve and extracts the bending statistics
func (o *Main) Run() (stats *out.BendingStats, err error) {

	verbose := o.Sim.Data.Verbose
	if verbose > 0 {
		io.Pf("> %s\n", o.Sim.Data.Desc)
		io.Pf("> region 1: %-24s α =%13.6e  ε0 =%13.6e\n", o.Mats[0].Name, o.Mis.Alpha[0], o.Mis.Eps0[0])
		io.Pf("> region 2: %-24s α =%13.6e  ε0 =%13.6e\n", o.Mats[1].Name, o.Mis.Alpha[1], o.Mis.Eps0[1])
	}

	// solve
	u, err := o.Solver.Run(o.Op, o.Nl, verbose)
	if err != nil {
		return nil, err
	}

	// extract statistics and attach the analytic reference
	stats, err = out.ExtractBending(o.Msh, u)
	if err != nil {
		return nil, err
	}
	stats.AnaCurvature, err = o.Op.AnaCurvature()
	if err != nil {
		return nil, err
	}
	if verbose > 0 {
		io.Pf("> curvature =%13.6e  analytic =%13.6e  angle =%10.4f°  side =%+d\n",
			stats.Curvature, stats.AnaCurvature, stats.Angle, stats.Side)
	}
	return
}

// AnaBilayer returns the analytic reference solution of this configuration
func (o *Main) AnaBilayer() (sol *ana.BilayerBending, err error) {
	sol = new(ana.BilayerBending)
	err = sol.Init(utl.Params{
		&utl.P{N: "E1", V: o.Op.Young[0]},
		&utl.P{N: "E2", V: o.Op.Young[1]},
		&utl.P{N: "h1", V: o.Sim.Geo.H1()},
		&utl.P{N: "h2", V: o.Sim.Geo.H2()},
		&utl.P{N: "alp1", V: o.Mis.Alpha[0]},
		&utl.P{N: "alp2", V: o.Mis.Alpha[1]},
	})
	return
}
