// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/chmerdon/StrainedBandstructures/inp"
	"github.com/cpmech/gosl/io"
)

// Damping solves the fully-embedded (t=1) nonlinear system directly using an
// energy-functional-guided damped iteration. The residual functional
// Φ = ½·r² guides the damping: a growing residual halves the damping factor,
// a shrinking one lets it recover towards 1. Shares the convergence/failure
// contract of the embedding driver.
type Damping struct {
	sd     *inp.SolverData
	status Status

	// damping control
	DampMin float64 // minimum damping factor before the solve is abandoned
}

// add solver to factory
func init() {
	allocators["dmp"] = func(sd *inp.SolverData) Solver {
		return &Damping{sd: sd, DampMin: 1e-3}
	}
}

// Status returns the driver state
func (o *Damping) Status() Status { return o.status }

// Run drives the damped iteration at full embedding
func (o *Damping) Run(op *Operator, nl NonlinSolver, verbose int) (u Solution, err error) {

	o.status = Assembling
	opk := op.Embed(1)
	u = make(Solution, len(op.Msh.Verts)*op.Msh.Ndim)

	o.status = Iterating
	damp := 1.0
	phiPrev := math.Inf(1)
	var resid float64
	for it := 0; it < o.sd.NmaxIt; it++ {

		// one sweep of the external solver
		var v Solution
		v, resid, err = nl.Sweep(opk, u)
		if err != nil {
			o.status = Failed
			return nil, err
		}
		if verbose > 1 {
			io.Pf("%8d%23.15e  damp =%10.6f\n", it, resid, damp)
		}
		if resid < o.sd.FbTol {
			o.status = Converged
			return v, nil
		}

		// energy functional guidance
		phi := 0.5 * resid * resid
		if phi > phiPrev {
			damp *= 0.5
			if damp < o.DampMin {
				o.status = Failed
				return nil, &NonConvError{Step: 0, It: it, Resid: resid}
			}
		} else if damp < 1 {
			damp = math.Min(1, 2.0*damp)
		}
		phiPrev = phi

		// damped update
		for i := range u {
			u[i] += damp * (v[i] - u[i])
		}
	}
	o.status = Failed
	return nil, &NonConvError{Step: 0, It: o.sd.NmaxIt, Resid: resid}
}
