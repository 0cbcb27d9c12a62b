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

// GPa2Nnm2 converts GPa to N/nm²
const GPa2Nnm2 = 1e-9

// Elasticity builds the elasticity tensor [N/nm²] in Voigt layout
//
//	zb001         6×6 cubic pattern from C11, C12, C44
//	zb2d          3×3 plane reduction of the cubic pattern
//	zb111*        6×6 rotated via the fixed [111] basis; the in-plane
//	              orientation selects C14-type, C15-type, or both couplings
//	wz0001        6×6 hexagonal pattern from the fixed combinations of the
//	              cubic constants (Martin's transformation)
//
// The result is symmetric with positive diagonal for any physical input.
func Elasticity(m *alloy.Constants, sym Symmetry) (D [][]float64, err error) {
	c11 := m.C11 * GPa2Nnm2
	c12 := m.C12 * GPa2Nnm2
	c44 := m.C44 * GPa2Nnm2
	switch sym {

	case ZincBlende001:
		return cubicVoigt(c11, c12, c44), nil

	case ZincBlende2D:
		D = utl.Alloc(3, 3)
		D[0][0], D[0][1] = c11, c12
		D[1][0], D[1][1] = c12, c11
		D[2][2] = c44
		return D, nil

	case ZincBlende111C14, ZincBlende111C15, ZincBlende111C14C15:
		a := rotation111(sym)
		return TransformVoigt(cubicVoigt(c11, c12, c44), a), nil

	case Wurtzite0001:
		// fixed combinations of the cubic constants
		c11wz := (c11 + c12 + 2.0*c44) / 2.0
		c12wz := (c11 + 5.0*c12 - 2.0*c44) / 6.0
		c13wz := (c11 + 2.0*c12 - 2.0*c44) / 3.0
		c33wz := (c11 + 2.0*c12 + 4.0*c44) / 3.0
		c44wz := (c11 - c12 + c44) / 3.0
		c66wz := (c11wz - c12wz) / 2.0
		D = utl.Alloc(6, 6)
		D[0][0], D[0][1], D[0][2] = c11wz, c12wz, c13wz
		D[1][0], D[1][1], D[1][2] = c12wz, c11wz, c13wz
		D[2][0], D[2][1], D[2][2] = c13wz, c13wz, c33wz
		D[3][3] = c44wz
		D[4][4] = c44wz
		D[5][5] = c66wz
		return D, nil
	}
	return nil, chk.Err("crystal symmetry %d is not available", sym)
}

// cubicVoigt returns the standard 6×6 cubic pattern
func cubicVoigt(c11, c12, c44 float64) (D [][]float64) {
	D = utl.Alloc(6, 6)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			D[i][j] = c12
		}
		D[i][i] = c11
		D[3+i][3+i] = c44
	}
	return
}

// rotation111 returns the orthonormal basis rotating the cube axes so that the
// third axis points along [111]. The in-plane orientation angle θ selects the
// off-diagonal coupling pattern of the rotated tensor:
//
//	θ = 0     C14 coupling only
//	θ = π/6   C15 coupling only
//	θ = π/12  both C14 and C15
func rotation111(sym Symmetry) (a [][]float64) {
	s2 := math.Sqrt(2.0)
	s3 := math.Sqrt(3.0)
	s6 := math.Sqrt(6.0)
	a = [][]float64{
		{1.0 / s2, -1.0 / s2, 0},
		{1.0 / s6, 1.0 / s6, -2.0 / s6},
		{1.0 / s3, 1.0 / s3, 1.0 / s3},
	}
	var th float64
	switch sym {
	case ZincBlende111C15:
		th = math.Pi / 6.0
	case ZincBlende111C14C15:
		th = math.Pi / 12.0
	}
	if th == 0 {
		return
	}
	co, si := math.Cos(th), math.Sin(th)
	b := utl.Alloc(3, 3)
	for j := 0; j < 3; j++ {
		b[0][j] = co*a[0][j] + si*a[1][j]
		b[1][j] = -si*a[0][j] + co*a[1][j]
		b[2][j] = a[2][j]
	}
	return b
}

// TransformVoigt rotates a 6×6 Voigt elasticity matrix by the orthonormal
// basis a (rows = new axes in old coordinates)
//
//	D'pqrs = a[p][i]·a[q][j]·a[r][k]·a[s][l]·Dijkl
//
// The transformation goes through the full 4th-order tensor, hence the
// identity basis reproduces the input exactly.
func TransformVoigt(D [][]float64, a [][]float64) (Dr [][]float64) {

	// Voigt index maps
	vi := [6]int{0, 1, 2, 1, 0, 0}
	vj := [6]int{0, 1, 2, 2, 2, 1}
	v := [3][3]int{{0, 5, 4}, {5, 1, 3}, {4, 3, 2}}

	// full tensor
	var C [3][3][3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				for l := 0; l < 3; l++ {
					C[i][j][k][l] = D[v[i][j]][v[k][l]]
				}
			}
		}
	}

	// rotate
	var Cr [3][3][3][3]float64
	for p := 0; p < 3; p++ {
		for q := 0; q < 3; q++ {
			for r := 0; r < 3; r++ {
				for s := 0; s < 3; s++ {
					sum := 0.0
					for i := 0; i < 3; i++ {
						for j := 0; j < 3; j++ {
							for k := 0; k < 3; k++ {
								for l := 0; l < 3; l++ {
									sum += a[p][i] * a[q][j] * a[r][k] * a[s][l] * C[i][j][k][l]
								}
							}
						}
					}
					Cr[p][q][r][s] = sum
				}
			}
		}
	}

	// back to Voigt
	Dr = utl.Alloc(6, 6)
	for I := 0; I < 6; I++ {
		for J := 0; J < 6; J++ {
			Dr[I][J] = Cr[vi[I]][vj[I]][vi[J]][vj[J]]
		}
	}
	return
}

// Rotated111Constants returns the closed-form rotated constants of a cubic
// crystal in the [111] basis (θ=0 orientation)
//
//	C11p = (C11 + C12 + 2·C44)/2
//	C12p = (C11 + 5·C12 - 2·C44)/6
//	C13p = (C11 + 2·C12 - 2·C44)/3
//	C14p = (C11 - C12 - 2·C44)/(3·√2)
//	C33p = (C11 + 2·C12 + 4·C44)/3
//	C44p = (C11 - C12 + C44)/3
//	C66p = (C11 - C12 + 4·C44)/6
//
// These are the combinations that populate the tensor returned by Elasticity
// for the zb111 variants; they are kept here for reference and checking.
func Rotated111Constants(c11, c12, c44 float64) (c11p, c12p, c13p, c14p, c33p, c44p, c66p float64) {
	c11p = (c11 + c12 + 2.0*c44) / 2.0
	c12p = (c11 + 5.0*c12 - 2.0*c44) / 6.0
	c13p = (c11 + 2.0*c12 - 2.0*c44) / 3.0
	c14p = (c11 - c12 - 2.0*c44) / (3.0 * math.Sqrt(2.0))
	c33p = (c11 + 2.0*c12 + 4.0*c44) / 3.0
	c44p = (c11 - c12 + c44) / 3.0
	c66p = (c11 - c12 + 4.0*c44) / 6.0
	return
}
