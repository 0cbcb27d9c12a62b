// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem drives external nonlinear elasticity solves to convergence via
// parameter continuation (embedding) or energy-guided damped iteration
package fem

import (
	"github.com/chmerdon/StrainedBandstructures/ana"
	"github.com/chmerdon/StrainedBandstructures/msh"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Solution is the displacement field over the mesh vertices, flattened as
// ndim components per vertex
type Solution []float64

// Operator describes the nonlinear elasticity problem handed to the external
// solver: per-region tensors, eigenstrains, and the embedding state
type Operator struct {
	Msh    *msh.Mesh      // discretized domain with region tags {1,2}
	Elast  [2][][]float64 // per-region elasticity tensors [N/nm²]
	Piezo  [2][][]float64 // per-region piezoelectric tensors
	Young  [2]float64     // per-region effective Young's moduli (for the analytic reference)
	Alpha  [2]float64     // per-region lattice mismatch at full embedding
	Eps0   [2]float64     // per-region eigenstrain at full embedding
	Nonlin float64        // nonlinearity strength at full embedding
	Emb    float64        // current embedding value ∈ [0,1]
}

// Embed returns a copy of the operator with the eigenstrain and the nonlinear
// strength scaled by the embedding value t (the current value, not the target)
func (o *Operator) Embed(t float64) (op *Operator) {
	cp := *o
	op = &cp
	op.Emb = t
	op.Nonlin = t * o.Nonlin
	for i := 0; i < 2; i++ {
		a := t * o.Alpha[i]
		op.Alpha[i] = a
		op.Eps0[i] = a * (1.0 + a/2.0)
	}
	return
}

// Thickness returns the layer thicknesses implied by the mesh geometry
func (o *Operator) Thickness() (h1, h2 float64) {
	return o.Msh.Mb * o.Msh.Scale[0], (1.0 - o.Msh.Mb) * o.Msh.Scale[0]
}

// AnaCurvature computes the analytic bilayer curvature of this operator at its
// current embedding state
func (o *Operator) AnaCurvature() (kappa float64, err error) {
	h1, h2 := o.Thickness()
	sol := new(ana.BilayerBending)
	err = sol.Init(utl.Params{
		&utl.P{N: "E1", V: o.Young[0]},
		&utl.P{N: "E2", V: o.Young[1]},
		&utl.P{N: "h1", V: h1},
		&utl.P{N: "h2", V: h2},
		&utl.P{N: "alp1", V: o.Alpha[0]},
		&utl.P{N: "alp2", V: o.Alpha[1]},
	})
	if err != nil {
		return 0, err
	}
	return sol.Kappa, nil
}

// Check verifies the operator invariants before a solve
func (o *Operator) Check() (err error) {
	if o.Msh == nil {
		return chk.Err("operator has no mesh")
	}
	for i := 0; i < 2; i++ {
		D := o.Elast[i]
		if D == nil {
			return chk.Err("region %d has no elasticity tensor", i+1)
		}
		for r := 0; r < len(D); r++ {
			if D[r][r] <= 0 {
				return chk.Err("region %d elasticity tensor has non-positive diagonal entry D[%d][%d]=%g", i+1, r, r, D[r][r])
			}
		}
		if o.Young[i] <= 0 {
			return chk.Err("region %d effective Young's modulus %g must be positive", i+1, o.Young[i])
		}
	}
	return
}
