// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package misfit converts the lattice constants of the two regions of a
// bimetal structure into per-region eigenstrains
package misfit

import (
	"github.com/cpmech/gosl/chk"
)

// Strain holds the lattice mismatch and eigenstrain of both regions
type Strain struct {
	Avgc  int        // averaging convention used
	Alpha [2]float64 // dimensionless lattice mismatch of regions 1 and 2
	Eps0  [2]float64 // eigenstrain ε0 = α·(1+α/2) of regions 1 and 2
}

// Compute derives the mismatch and eigenstrain pairs under the selected
// averaging convention
//
//	avgc=1   reference is region 1's own lattice constant
//	avgc=2   reference is the area-weighted average; mismatch of region i is
//	         normalized by lc_i
//	avgc=3   same average reference, normalized by the average itself
//
//	Input:
//	 avgc     -- averaging convention ∈ {1,2,3}
//	 A1, A2   -- area (or width) weights of regions 1 and 2
//	 lc1, lc2 -- lattice constants of regions 1 and 2
func Compute(avgc int, A1, A2, lc1, lc2 float64) (s *Strain, err error) {
	s = &Strain{Avgc: avgc}
	switch avgc {
	case 1:
		s.Alpha[0] = 0
		s.Alpha[1] = (lc2 - lc1) / lc1
	case 2:
		lcavg := (lc1*A1 + lc2*A2) / (A1 + A2)
		s.Alpha[0] = (lc1 - lcavg) / lc1
		s.Alpha[1] = (lc2 - lcavg) / lc2
	case 3:
		lcavg := (lc1*A1 + lc2*A2) / (A1 + A2)
		s.Alpha[0] = (lc1 - lcavg) / lcavg
		s.Alpha[1] = (lc2 - lcavg) / lcavg
	default:
		return nil, chk.Err("averaging convention avgc=%d is not available; options are 1, 2, and 3", avgc)
	}
	for i := 0; i < 2; i++ {
		// second-order correction, not the raw linear mismatch
		s.Eps0[i] = s.Alpha[i] * (1.0 + s.Alpha[i]/2.0)
	}
	return
}
