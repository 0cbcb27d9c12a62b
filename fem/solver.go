// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/chmerdon/StrainedBandstructures/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Status tracks the per-step state of a solver driver
type Status int

const (
	Idle Status = iota
	Assembling
	Iterating
	Converged
	Failed
)

// Solver drives the external nonlinear solve primitive to full embedding
type Solver interface {
	Run(op *Operator, nl NonlinSolver, verbose int) (u Solution, err error)
	Status() Status
}

// allocators holds all available solver drivers
var allocators = map[string]func(sd *inp.SolverData) Solver{}

// NewSolver returns a new solver driver
func NewSolver(sd *inp.SolverData) (solver Solver, err error) {
	allocator, ok := allocators[sd.Type]
	if !ok {
		return nil, chk.Err("solver type %q is not available; options are \"emb\" and \"dmp\"", sd.Type)
	}
	return allocator(sd), nil
}

// NonConvError reports that a continuation step or damped iteration exceeded
// its iteration budget without meeting the residual target. It carries the
// step index and the last residual for diagnosis; the whole solve terminates
// with no partial result.
type NonConvError struct {
	Step  int     // embedding step index (0 for the damping driver)
	It    int     // iterations spent
	Resid float64 // last residual
}

// Error implements the error interface
func (e *NonConvError) Error() string {
	return io.Sf("solver did not converge: step %d, %d iterations, last residual %g", e.Step, e.It, e.Resid)
}

// Schedule is the ordered sequence of embedding parameter values, monotonically
// increasing and ending at 1
type Schedule []float64

// NewSchedule returns the uniform schedule t_k = (k+1)/n
func NewSchedule(n int) (s Schedule) {
	s = make(Schedule, n)
	for k := 0; k < n; k++ {
		s[k] = float64(k+1) / float64(n)
	}
	return
}

// Check verifies the schedule invariants
func (o Schedule) Check() (err error) {
	if len(o) == 0 {
		return chk.Err("embedding schedule is empty")
	}
	prev := 0.0
	for k, t := range o {
		if t <= prev {
			return chk.Err("embedding schedule is not monotonically increasing at step %d (t=%g)", k, t)
		}
		prev = t
	}
	if o[len(o)-1] != 1 {
		return chk.Err("embedding schedule must end at 1; got %g", o[len(o)-1])
	}
	return
}
