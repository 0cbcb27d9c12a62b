// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package alloy implements a database of semiconductor compound constants and
// linear interpolation between two end members for arbitrary compositions
package alloy

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Constants holds the resolved constants of one compound or alloy
//
//	Elastic constants are the cubic (zinc-blende phase) values even for the
//	nitrides; hexagonal tensors are always derived from these by the crystal
//	package. Piezoelectric constants may be given natively in wurtzite form
//	(E31,E33,E15) or in zinc-blende form (E14).
type Constants struct {
	Name   string  // compound or alloy name; e.g. "GaAs" or "Al(0.3)Ga(0.7)As"
	C11    float64 // elastic constant [GPa]
	C12    float64 // elastic constant [GPa]
	C44    float64 // elastic constant [GPa]
	E14    float64 // zinc-blende piezoelectric constant [C/m²]
	E31    float64 // wurtzite piezoelectric constant [C/m²]; 0 if not native
	E33    float64 // wurtzite piezoelectric constant [C/m²]; 0 if not native
	E15    float64 // wurtzite piezoelectric constant [C/m²]; 0 if not native
	A      float64 // cubic lattice constant [Å]
	C      float64 // hexagonal lattice constant (c-axis) [Å]; 0 if not native
	Kappar float64 // relative dielectric constant

	// flags
	WzNative bool // piezoelectric and lattice constants given natively in wurtzite form
}

// compounds holds end-member data
//
//	Elastic constants and cubic lattice constants after Vurgaftman et al. (2001);
//	piezoelectric and dielectric constants from the same compilation.
var compounds = map[string]*Constants{
	"GaAs": {Name: "GaAs", C11: 122.1, C12: 56.6, C44: 60.0, E14: -0.160, A: 5.6532, Kappar: 12.9},
	"AlAs": {Name: "AlAs", C11: 125.0, C12: 53.4, C44: 54.2, E14: -0.225, A: 5.6611, Kappar: 10.06},
	"InAs": {Name: "InAs", C11: 83.29, C12: 45.26, C44: 39.59, E14: -0.045, A: 6.0583, Kappar: 15.15},
	"GaP":  {Name: "GaP", C11: 140.5, C12: 62.0, C44: 70.3, E14: -0.100, A: 5.4505, Kappar: 11.1},
	"InP":  {Name: "InP", C11: 101.1, C12: 56.1, C44: 45.6, E14: 0.035, A: 5.8697, Kappar: 12.5},
	"GaN":  {Name: "GaN", C11: 293.0, C12: 159.0, C44: 155.0, E14: 0.375, E31: -0.49, E33: 0.73, E15: -0.40, A: 4.50, C: 5.185, Kappar: 9.7, WzNative: true},
	"AlN":  {Name: "AlN", C11: 304.0, C12: 160.0, C44: 193.0, E14: 0.559, E31: -0.60, E33: 1.46, E15: -0.48, A: 4.38, C: 4.982, Kappar: 9.14, WzNative: true},
	"InN":  {Name: "InN", C11: 187.0, C12: 125.0, C44: 86.0, E14: 0.373, E31: -0.57, E33: 0.97, E15: -0.49, A: 4.98, C: 5.703, Kappar: 15.3, WzNative: true},
}

// Get returns a copy of the constants of a pure compound
func Get(name string) (m *Constants, err error) {
	c, ok := compounds[name]
	if !ok {
		return nil, chk.Err("compound %q is not available in 'alloy' database", name)
	}
	cc := *c
	return &cc, nil
}

// Names returns the names of all available compounds
func Names() (names []string) {
	for name := range compounds {
		names = append(names, name)
	}
	return
}

// Resolve mixes two end members by composition fraction x of compound B
//
//	value(x) = x·value(B) + (1-x)·value(A)
//
// Every scalar field is interpolated linearly (Vegard's rule). Native wurtzite
// data is only kept when both end members provide it.
func Resolve(nameA, nameB string, x float64) (m *Constants, err error) {
	if x < 0 || x > 1 {
		return nil, chk.Err("composition fraction x=%g is outside [0,1]", x)
	}
	a, err := Get(nameA)
	if err != nil {
		return nil, err
	}
	b, err := Get(nameB)
	if err != nil {
		return nil, err
	}
	mix := func(va, vb float64) float64 { return x*vb + (1.0-x)*va }
	m = &Constants{
		Name:     nameA,
		C11:      mix(a.C11, b.C11),
		C12:      mix(a.C12, b.C12),
		C44:      mix(a.C44, b.C44),
		E14:      mix(a.E14, b.E14),
		A:        mix(a.A, b.A),
		Kappar:   mix(a.Kappar, b.Kappar),
		WzNative: a.WzNative && b.WzNative,
	}
	if m.WzNative {
		m.E31 = mix(a.E31, b.E31)
		m.E33 = mix(a.E33, b.E33)
		m.E15 = mix(a.E15, b.E15)
		m.C = mix(a.C, b.C)
	}
	switch {
	case x == 1:
		m.Name = nameB
	case x > 0:
		m.Name = io.Sf("%s(%g)%s(%g)", nameB, x, nameA, 1.0-x)
	}
	return
}

// Isotropic returns constants equivalent to an isotropic material with Young's
// modulus E and Poisson's ratio ν. The piezoelectric constants are zero and
// the lattice constant is given directly (any unit; only ratios matter for
// the misfit computation).
func Isotropic(E, nu, latconst float64) (m *Constants, err error) {
	if E <= 0 {
		return nil, chk.Err("Young's modulus E=%g must be positive", E)
	}
	if nu <= -1 || nu >= 0.5 {
		return nil, chk.Err("Poisson's ratio ν=%g is outside (-1,0.5)", nu)
	}
	lam := E * nu / ((1.0 + nu) * (1.0 - 2.0*nu))
	mu := E / (2.0 * (1.0 + nu))
	return &Constants{
		Name: "isotropic",
		C11:  lam + 2.0*mu,
		C12:  lam,
		C44:  mu,
		A:    latconst,
	}, nil
}

// Young returns the effective Young's modulus along a cube axis
//
//	E = (C11-C12)·(C11+2·C12)/(C11+C12)
func (o *Constants) Young() float64 {
	return (o.C11 - o.C12) * (o.C11 + 2.0*o.C12) / (o.C11 + o.C12)
}
