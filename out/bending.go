// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of displacement fields
package out

import (
	"math"

	"github.com/chmerdon/StrainedBandstructures/msh"
	"github.com/cpmech/gosl/chk"
)

// BendingStats holds the bending statistics extracted from a deformed geometry
type BendingStats struct {
	Angle     float64 // bending angle [degrees]
	Curvature float64 // discrete curvature estimate [1/length]
	BendDist  float64 // distance between the deformed boundary end points
	Side      int     // farthest-point side flag ∈ {+1,-1}

	// reference
	AnaCurvature float64 // analytic bilayer curvature; filled by the caller
}

// ExtractBending post-processes a displacement field into curvature and angle
//
//	The deformed boundary samples along the long axis determine: the farthest
//	point from the reference axis (bend direction sign), a three-point
//	circumcircle curvature estimate, and the bend distance (deformed chord).
//	The angle follows from
//
//	        angle = asin(bend_distance/2 · curvature)    [degrees]
//
//	with a 180°-complement correction when the farthest point lies on the
//	negative side, since the bend direction reverses the geometric
//	interpretation of the chord-angle formula. In 3D the samples are projected
//	onto the (thickness, length) plane; this is the stated approximation.
func ExtractBending(m *msh.Mesh, u []float64) (stats *BendingStats, err error) {

	// deformed edge samples (projected in 3D)
	nv := len(m.Verts)
	if len(u) != nv*m.Ndim {
		return nil, chk.Err("displacement field has %d entries but the mesh needs %d", len(u), nv*m.Ndim)
	}
	if len(m.Edge) < 3 {
		return nil, chk.Err("mesh has %d edge samples; at least 3 are needed", len(m.Edge))
	}
	np := len(m.Edge)
	px := make([]float64, np)
	py := make([]float64, np)
	for k, vid := range m.Edge {
		px[k] = m.Verts[vid][0] + u[vid*m.Ndim]
		py[k] = m.Verts[vid][1] + u[vid*m.Ndim+1]
	}

	// farthest point from the reference (undeformed) axis
	stats = &BendingStats{Side: 1}
	farthest := 0.0
	for k, vid := range m.Edge {
		d := px[k] - m.Verts[vid][0]
		if math.Abs(d) > math.Abs(farthest) {
			farthest = d
		}
	}
	if farthest < 0 {
		stats.Side = -1
	}

	// three-point circumcircle curvature
	mid := np / 2
	stats.Curvature = circumCurvature(
		px[0], py[0],
		px[mid], py[mid],
		px[np-1], py[np-1],
	)

	// bend distance: deformed chord
	dx := px[np-1] - px[0]
	dy := py[np-1] - py[0]
	stats.BendDist = math.Sqrt(dx*dx + dy*dy)

	// chord-angle formula
	s := stats.BendDist / 2.0 * stats.Curvature
	if s > 1 {
		s = 1 // guard against roundoff above the half-turn chord
	}
	stats.Angle = math.Asin(s) * 180.0 / math.Pi
	if farthest < 0 {
		stats.Angle = 180.0 - stats.Angle
	}
	return
}

// circumCurvature returns the inverse circumradius of three points, or zero
// for (near) collinear points
func circumCurvature(x1, y1, x2, y2, x3, y3 float64) float64 {
	a := math.Hypot(x2-x1, y2-y1)
	b := math.Hypot(x3-x2, y3-y2)
	c := math.Hypot(x3-x1, y3-y1)
	area2 := math.Abs((x2-x1)*(y3-y1) - (x3-x1)*(y2-y1)) // twice the triangle area
	den := a * b * c
	if den == 0 {
		return 0
	}
	return 2.0 * area2 / den
}
