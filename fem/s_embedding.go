// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/chmerdon/StrainedBandstructures/inp"
	"github.com/cpmech/gosl/io"
)

// Embedding solves the nonlinear problem by parameter continuation: the
// embedding value t grows from 0 to 1 over a fixed number of steps, each step
// solving the full nonlinear system at the current t with the previous step's
// solution as initial guess. Exceeding the iteration budget at any step is a
// hard failure for the whole solve; there is no automatic step bisection.
type Embedding struct {
	sd     *inp.SolverData
	Sched  Schedule
	status Status
}

// add solver to factory
func init() {
	allocators["emb"] = func(sd *inp.SolverData) Solver {
		return &Embedding{sd: sd, Sched: NewSchedule(sd.Nsteps)}
	}
}

// Status returns the driver state
func (o *Embedding) Status() Status { return o.status }

// Run drives the continuation sequence
func (o *Embedding) Run(op *Operator, nl NonlinSolver, verbose int) (u Solution, err error) {
	if err = o.Sched.Check(); err != nil {
		return nil, err
	}
	for k, t := range o.Sched {

		// assemble the step operator at the current embedding value
		o.status = Assembling
		opk := op.Embed(t)

		// iterate from the previous step's solution
		o.status = Iterating
		if verbose > 0 {
			io.Pf("embedding step %2d/%d: t =%10.6f\n", k+1, len(o.Sched), t)
		}
		var resids []float64
		u, resids, err = nl.Solve(opk, u, o.sd.FbTol, o.sd.NmaxIt, verbose)
		if err != nil {
			o.status = Failed
			if e, ok := err.(*NonConvError); ok {
				e.Step = k
			}
			return nil, err // no partial result retained
		}
		o.status = Converged
		if verbose > 0 {
			io.Pf("  converged after %d iterations: resid =%23.15e\n", len(resids), resids[len(resids)-1])
		}
	}
	return
}
