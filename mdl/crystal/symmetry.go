// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package crystal implements crystal symmetry classes and builds elasticity and
// piezoelectric tensors in engineering (Voigt) layout for arbitrary alloys
package crystal

import (
	"math"

	"github.com/chmerdon/StrainedBandstructures/mdl/alloy"
	"github.com/cpmech/gosl/chk"
)

// Symmetry is the closed set of supported crystal symmetry classes
type Symmetry int

const (
	ZincBlende001 Symmetry = iota // cubic, [001] growth direction
	ZincBlende2D                  // cubic reduced to plane problems
	ZincBlende111C14              // cubic rotated to [111]; C14 coupling only
	ZincBlende111C15              // cubic rotated to [111]; C15 coupling only
	ZincBlende111C14C15           // cubic rotated to [111]; both couplings
	Wurtzite0001                  // hexagonal, [0001] growth direction
)

// symmetryTags maps .sim file tags to symmetry values
var symmetryTags = map[string]Symmetry{
	"zb001":       ZincBlende001,
	"zb2d":        ZincBlende2D,
	"zb111c14":    ZincBlende111C14,
	"zb111c15":    ZincBlende111C15,
	"zb111c14c15": ZincBlende111C14C15,
	"wz0001":      Wurtzite0001,
}

// ParseSymmetry converts a .sim file tag into a Symmetry value
func ParseSymmetry(tag string) (sym Symmetry, err error) {
	sym, ok := symmetryTags[tag]
	if !ok {
		return 0, chk.Err("crystal symmetry %q is not available; options are \"zb001\", \"zb2d\", \"zb111c14\", \"zb111c15\", \"zb111c14c15\", and \"wz0001\"", tag)
	}
	return
}

// String returns the .sim file tag of a symmetry value
func (o Symmetry) String() string {
	for tag, sym := range symmetryTags {
		if sym == o {
			return tag
		}
	}
	return "invalid"
}

// Ncomp returns the number of strain components of the Voigt layout
func (o Symmetry) Ncomp() int {
	if o == ZincBlende2D {
		return 3
	}
	return 6
}

// LatticeVector selects the lattice constant vector [Å] appropriate to the
// symmetry class
//
//	zb001:   (a, a, a)
//	zb2d:    (a, a)
//	zb111*:  (a/√2, a/√2, a·√(3/4))   in-plane and growth-axis periods
//	wz0001:  (a, a, c) when native; derived from the cubic constant otherwise
func LatticeVector(m *alloy.Constants, sym Symmetry) (lc []float64, err error) {
	s2 := math.Sqrt(2.0)
	s34 := math.Sqrt(3.0 / 4.0)
	switch sym {
	case ZincBlende001:
		lc = []float64{m.A, m.A, m.A}
	case ZincBlende2D:
		lc = []float64{m.A, m.A}
	case ZincBlende111C14, ZincBlende111C15, ZincBlende111C14C15:
		lc = []float64{m.A / s2, m.A / s2, m.A * s34}
	case Wurtzite0001:
		if m.WzNative {
			lc = []float64{m.A / s2, m.A / s2, m.C}
		} else {
			lc = []float64{m.A / s2, m.A / s2, m.A * s34}
		}
	default:
		return nil, chk.Err("crystal symmetry %d is not available", sym)
	}
	return
}
