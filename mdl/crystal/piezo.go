// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package crystal

import (
	"math"

	"github.com/chmerdon/StrainedBandstructures/mdl/alloy"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Piezoelectricity builds the piezoelectric tensor [C/nm² scale convention] in
// Voigt layout. A zero matrix is a valid result (isotropic and other
// non-piezoelectric materials).
//
//	zb001    3×6 with E14 on the shear columns
//	zb2d     3×3 plane reduction; only the out-of-plane row couples to the
//	         in-plane engineering shear
//	zb111*   3×6 rotated with the same fixed [111] basis as the elasticity
//	wz0001   3×6 hexagonal pattern with native E31, E33, E15 when the alloy
//	         model provides them, or derived from E14 by the fixed relations
//	         E31 = -E14/√3,  E33 = 2·E14/√3,  E15 = -E14/√3
func Piezoelectricity(m *alloy.Constants, sym Symmetry) (P [][]float64, err error) {
	e14 := m.E14 * GPa2Nnm2
	switch sym {

	case ZincBlende001:
		return cubicPiezo(e14), nil

	case ZincBlende2D:
		P = utl.Alloc(3, 3)
		P[2][2] = e14
		return P, nil

	case ZincBlende111C14, ZincBlende111C15, ZincBlende111C14C15:
		a := rotation111(sym)
		return TransformPiezo(cubicPiezo(e14), a), nil

	case Wurtzite0001:
		s3 := math.Sqrt(3.0)
		e31 := -e14 / s3
		e33 := 2.0 * e14 / s3
		e15 := -e14 / s3
		if m.WzNative {
			e31 = m.E31 * GPa2Nnm2
			e33 = m.E33 * GPa2Nnm2
			e15 = m.E15 * GPa2Nnm2
		}
		P = utl.Alloc(3, 6)
		P[0][4] = e15
		P[1][3] = e15
		P[2][0] = e31
		P[2][1] = e31
		P[2][2] = e33
		return P, nil
	}
	return nil, chk.Err("crystal symmetry %d is not available", sym)
}

// cubicPiezo returns the standard 3×6 zinc-blende pattern
func cubicPiezo(e14 float64) (P [][]float64) {
	P = utl.Alloc(3, 6)
	P[0][3] = e14
	P[1][4] = e14
	P[2][5] = e14
	return
}

// TransformPiezo rotates a 3×6 Voigt piezoelectric matrix by the orthonormal
// basis a, going through the full 3rd-order tensor
//
//	e'pqr = a[p][i]·a[q][j]·a[r][k]·eijk
func TransformPiezo(P [][]float64, a [][]float64) (Pr [][]float64) {

	// Voigt index maps
	vi := [6]int{0, 1, 2, 1, 0, 0}
	vj := [6]int{0, 1, 2, 2, 2, 1}
	v := [3][3]int{{0, 5, 4}, {5, 1, 3}, {4, 3, 2}}

	// full tensor
	var E [3][3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				E[i][j][k] = P[i][v[j][k]]
			}
		}
	}

	// rotate
	var Er [3][3][3]float64
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			for r := 0; r < 3; r++ {
				sum := 0.0
				for i := 0; i < 3; i++ {
					for j := 0; j < 3; j++ {
						for k := 0; k < 3; k++ {
							sum += a[p][i] * a[q][j] * a[r][k] * E[i][j][k]
						}
					}
				}
				Er[p][q][r] = sum
			}
		}
	}

	// back to Voigt
	Pr = utl.Alloc(3, 6)
	for i := 0; i < 3; i++ {
		for J := 0; J < 6; J++ {
			Pr[i][J] = Er[i][vi[J]][vj[J]]
		}
	}
	return
}
