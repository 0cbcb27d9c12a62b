// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package msh implements the two-region bimetal mesh descriptor and a default
// structured-grid mesher. Region tags follow the {1,2} indexing used by the
// material, misfit, and solver components: region 1 occupies the first mb
// fraction of the first scale axis.
package msh

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// Mesh holds a discretized bimetal domain with labeled regions
type Mesh struct {

	// geometry parameters
	Ndim  int       // space dimension: 2 or 3
	Scale []float64 // physical lengths
	Mb    float64   // material border fraction
	Order int       // discretization order

	// discretization
	Verts       [][]float64 // vertex coordinates
	Cells       [][]int     // cell connectivity (quad or hex)
	CellRegions []int       // region tag ∈ {1,2} per cell

	// boundary samples: ordered vertex ids along the long (second) axis at the
	// region-1 face (first axis = 0), used by the bending extractor
	Edge []int
}

// Mesher produces a discretized domain from the bimetal shape parameters.
// External mesh services implement this interface; Grid is the built-in one.
type Mesher interface {
	Mesh(scale []float64, mb float64, ndim, order, nrefine int) (*Mesh, error)
}

// MaxNrefine caps the refinement count; each level doubles the subdivisions,
// so larger counts exhaust memory long before the shift overflows
const MaxNrefine = 10

// Grid is the built-in structured-grid mesher
type Grid struct {
	Nthick int // base cell count across each region's thickness
	Nlong  int // base cell count along the long axis
}

// NewGrid returns a structured-grid mesher with default base resolution
func NewGrid() *Grid {
	return &Grid{Nthick: 2, Nlong: 16}
}

// Mesh generates the structured grid. The refinement count doubles the
// subdivisions; a grid line falls exactly on the material border.
func (o *Grid) Mesh(scale []float64, mb float64, ndim, order, nrefine int) (m *Mesh, err error) {

	// geometry checks mirror inp.Validate; the mesher can be called directly
	if ndim != 2 && ndim != 3 {
		return nil, chk.Err("dimensionality ndim=%d is invalid; options are 2 and 3", ndim)
	}
	if len(scale) != ndim {
		return nil, chk.Err("scale has %d entries but ndim=%d", len(scale), ndim)
	}
	if mb <= 0 || mb >= 1 {
		return nil, chk.Err("material border mb=%g must lie strictly within (0,1)", mb)
	}
	if order > 2 && ndim != 2 {
		return nil, chk.Err("discretization order %d above 2 is only permitted in the 2D case", order)
	}
	if nrefine < 0 || nrefine > MaxNrefine {
		return nil, chk.Err("refinement count nrefine=%d must lie within [0,%d]", nrefine, MaxNrefine)
	}

	// resolution
	nt := o.Nthick << uint(nrefine) // cells across each region
	nl := o.Nlong << uint(nrefine)  // cells along the long axis

	// grid lines across the thickness: region 1 in [0, mb·s0], region 2 above
	s0 := scale[0]
	x0 := make([]float64, 0, 2*nt+1)
	x0 = append(x0, utl.LinSpace(0, mb*s0, nt+1)...)
	x0 = append(x0, utl.LinSpace(mb*s0, s0, nt+1)[1:]...)
	x1 := utl.LinSpace(0, scale[1], nl+1)

	m = &Mesh{Ndim: ndim, Scale: scale, Mb: mb, Order: order}
	switch ndim {
	case 2:
		o.grid2d(m, x0, x1, nt)
	case 3:
		nw := o.Nthick << uint(nrefine)
		x2 := utl.LinSpace(0, scale[2], nw+1)
		o.grid3d(m, x0, x1, x2, nt)
	}
	return
}

func (o *Grid) grid2d(m *Mesh, x0, x1 []float64, nt int) {
	n0 := len(x0)
	for j := 0; j < len(x1); j++ {
		for i := 0; i < n0; i++ {
			m.Verts = append(m.Verts, []float64{x0[i], x1[j]})
			if i == 0 {
				m.Edge = append(m.Edge, j*n0)
			}
		}
	}
	for j := 0; j < len(x1)-1; j++ {
		for i := 0; i < n0-1; i++ {
			a := j*n0 + i
			m.Cells = append(m.Cells, []int{a, a + 1, a + 1 + n0, a + n0})
			m.CellRegions = append(m.CellRegions, regionOf(i, nt))
		}
	}
}

func (o *Grid) grid3d(m *Mesh, x0, x1, x2 []float64, nt int) {
	n0, n1 := len(x0), len(x1)
	idx := func(i, j, k int) int { return k*n0*n1 + j*n0 + i }
	for k := 0; k < len(x2); k++ {
		for j := 0; j < n1; j++ {
			for i := 0; i < n0; i++ {
				m.Verts = append(m.Verts, []float64{x0[i], x1[j], x2[k]})
				if i == 0 && k == 0 {
					m.Edge = append(m.Edge, idx(0, j, 0))
				}
			}
		}
	}
	for k := 0; k < len(x2)-1; k++ {
		for j := 0; j < n1-1; j++ {
			for i := 0; i < n0-1; i++ {
				m.Cells = append(m.Cells, []int{
					idx(i, j, k), idx(i+1, j, k), idx(i+1, j+1, k), idx(i, j+1, k),
					idx(i, j, k+1), idx(i+1, j, k+1), idx(i+1, j+1, k+1), idx(i, j+1, k+1),
				})
				m.CellRegions = append(m.CellRegions, regionOf(i, nt))
			}
		}
	}
}

// regionOf maps a thickness cell index to its region tag
func regionOf(i, nt int) int {
	if i < nt {
		return 1
	}
	return 2
}
