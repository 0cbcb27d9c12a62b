// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/chmerdon/StrainedBandstructures/msh"
	"github.com/chmerdon/StrainedBandstructures/out"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// NonlinSolver is the external nonlinear PDE solve primitive. Given an
// operator description it returns a displacement field and its residual
// history, or fails with a non-convergence error.
type NonlinSolver interface {

	// Solve iterates from the initial guess u0 until the residual drops below
	// fbtol, or fails with *NonConvError after nmaxit iterations
	Solve(op *Operator, u0 Solution, fbtol float64, nmaxit, verbose int) (u Solution, resids []float64, err error)

	// Sweep performs a single iteration, returning the improved iterate and
	// its residual; used by the damped-iteration driver
	Sweep(op *Operator, u Solution) (unew Solution, resid float64, err error)
}

// nlAllocators holds all available nonlinear solve primitives
var nlAllocators = map[string]func() NonlinSolver{}

// NewNonlinSolver returns a new nonlinear solve primitive
func NewNonlinSolver(name string) (nl NonlinSolver, err error) {
	allocator, ok := nlAllocators[name]
	if !ok {
		return nil, chk.Err("nonlinear solver %q is not available in 'fem' database", name)
	}
	return allocator(), nil
}

// Bilayer is the built-in reference implementation of the solve primitive. It
// performs a relaxed fixed-point iteration on the bilayer curvature with a
// geometric-stiffening correction of strength op.Nonlin and maps the mesh
// through the resulting circular arc.
type Bilayer struct {
	Relax float64 // relaxation factor of the fixed-point iteration
}

// add solver to factory
func init() {
	nlAllocators["bilayer"] = func() NonlinSolver { return &Bilayer{Relax: 0.7} }
}

// Solve implements the NonlinSolver contract
func (o *Bilayer) Solve(op *Operator, u0 Solution, fbtol float64, nmaxit, verbose int) (u Solution, resids []float64, err error) {
	u = u0
	if u == nil {
		u = make(Solution, len(op.Msh.Verts)*op.Msh.Ndim)
	}
	var resid float64
	for it := 0; it < nmaxit; it++ {
		u, resid, err = o.Sweep(op, u)
		if err != nil {
			return nil, nil, err
		}
		resids = append(resids, resid)
		if verbose > 1 {
			io.Pf("%8d%23.15e\n", it, resid)
		}
		if resid < fbtol {
			return u, resids, nil
		}
	}
	return nil, resids, &NonConvError{It: nmaxit, Resid: resid}
}

// Sweep performs one relaxed fixed-point iteration on the signed curvature
func (o *Bilayer) Sweep(op *Operator, u Solution) (unew Solution, resid float64, err error) {
	if err = op.Check(); err != nil {
		return
	}

	// current signed curvature from the deformed edge
	kcur, err := signedCurvature(op, u)
	if err != nil {
		return
	}

	// nonlinear target: linear bilayer curvature softened by geometric stiffening
	klin, err := op.AnaCurvature()
	if err != nil {
		return
	}
	dir := bendDirection(op)
	h1, h2 := op.Thickness()
	hh := (h1 + h2) * kcur
	ktarget := dir * klin / (1.0 + op.Nonlin*hh*hh)

	// relaxed update
	knext := kcur + o.Relax*(ktarget-kcur)
	resid = math.Abs(ktarget-kcur) / math.Max(klin, 1e-300)
	if klin == 0 {
		resid = math.Abs(ktarget - kcur)
	}
	unew = arcMap(op.Msh, knext)
	return
}

// bendDirection returns the deflection sign along the first axis: the region
// with larger eigenstrain expands and ends on the convex side
func bendDirection(op *Operator) float64 {
	switch {
	case op.Alpha[1] > op.Alpha[0]:
		return -1 // region 2 (above the border) expands: bend towards region 1
	case op.Alpha[1] < op.Alpha[0]:
		return 1
	}
	return 0
}

// signedCurvature estimates the signed curvature of the deformed edge;
// positive = deflection towards the positive first axis
func signedCurvature(op *Operator, u Solution) (kappa float64, err error) {
	if u == nil {
		return 0, nil
	}
	stats, err := out.ExtractBending(op.Msh, u)
	if err != nil {
		return
	}
	kappa = float64(stats.Side) * stats.Curvature
	return
}

// arcMap maps the mesh vertices through pure bending with signed curvature ks
// about the second (long) axis; the third coordinate is unchanged in 3D
//
//	θ = ks·x1,  r = 1/ks - x0
//	y0 = 1/ks - r·cos θ,  y1 = r·sin θ
func arcMap(m *msh.Mesh, ks float64) (u Solution) {
	nv := len(m.Verts)
	u = make(Solution, nv*m.Ndim)
	if math.Abs(ks) < 1e-30 {
		return
	}
	for v, x := range m.Verts {
		th := ks * x[1]
		r := 1.0/ks - x[0]
		y0 := 1.0/ks - r*math.Cos(th)
		y1 := r * math.Sin(th)
		u[v*m.Ndim] = y0 - x[0]
		u[v*m.Ndim+1] = y1 - x[1]
	}
	return
}
