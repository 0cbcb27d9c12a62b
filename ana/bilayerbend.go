// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form reference solutions used to validate
// numerical results
package ana

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// BilayerBending computes the analytic (Timoshenko-type) curvature of a
// two-layer strip under uniform eigenstrain mismatch
//
//	        m = h1/h2         n = E1/E2
//
//	        factor = ½·(α2-α1)·(2+α1+α2)
//
//	                       6·factor·(1+m)²
//	        κ = | ─────────────────────────────────────────── |
//	             (h1+h2)·(3·(1+m)² + (1+m·n)·(m² + 1/(m·n)))
//
// This is the acceptance reference for the numeric bending result; a pure
// function of the scalar inputs, no iteration.
type BilayerBending struct {

	// input
	E1, E2     float64 // Young's moduli of layers 1 and 2
	H1, H2     float64 // thicknesses of layers 1 and 2
	Alp1, Alp2 float64 // lattice mismatch of layers 1 and 2

	// derived
	M      float64 // thickness ratio h1/h2
	N      float64 // moduli ratio E1/E2
	Factor float64 // eigenstrain-difference factor
	Kappa  float64 // analytic curvature [1/length]
}

// Init initialises the structure and computes the derived quantities
//
//	prms: "E1", "E2", "h1", "h2", "alp1", "alp2" (all required)
func (o *BilayerBending) Init(prms utl.Params) (err error) {
	for _, q := range []struct {
		name string
		dst  *float64
	}{
		{"E1", &o.E1},
		{"E2", &o.E2},
		{"h1", &o.H1},
		{"h2", &o.H2},
		{"alp1", &o.Alp1},
		{"alp2", &o.Alp2},
	} {
		p := prms.Find(q.name)
		if p == nil {
			return chk.Err("parameter %q is missing in BilayerBending", q.name)
		}
		*q.dst = p.V
	}
	if o.E1 <= 0 || o.E2 <= 0 {
		return chk.Err("Young's moduli E1=%g E2=%g must be positive", o.E1, o.E2)
	}
	if o.H1 <= 0 || o.H2 <= 0 {
		return chk.Err("thicknesses h1=%g h2=%g must be positive", o.H1, o.H2)
	}
	o.M = o.H1 / o.H2
	o.N = o.E1 / o.E2
	o.Factor = efactor(o.Alp1, o.Alp2)
	o.Kappa = o.Curvature(o.Alp1, o.Alp2)
	return
}

// Curvature computes the analytic curvature for a mismatch pair, keeping the
// moduli and thicknesses fixed
func (o *BilayerBending) Curvature(alp1, alp2 float64) float64 {
	m, n := o.M, o.N
	factor := efactor(alp1, alp2)
	num := 6.0 * factor * (1.0 + m) * (1.0 + m)
	den := (o.H1 + o.H2) * (3.0*(1.0+m)*(1.0+m) + (1.0+m*n)*(m*m+1.0/(m*n)))
	return math.Abs(num / den)
}

// efactor returns the eigenstrain-difference factor ½·(α2-α1)·(2+α1+α2)
func efactor(alp1, alp2 float64) float64 {
	return 0.5 * (alp2 - alp1) * (2.0 + alp1 + alp2)
}
