// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package msh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func init() {
	io.Verbose = false
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_grid01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid01. 2D grid: counts, border line, region tags")

	g := NewGrid()
	m, err := g.Mesh([]float64{50, 2000}, 0.25, 2, 2, 0)
	if err != nil {
		tst.Errorf("Mesh failed: %v\n", err)
		return
	}
	io.Pforan("nverts=%d  ncells=%d  nedge=%d\n", len(m.Verts), len(m.Cells), len(m.Edge))

	// 2·Nthick cells across, Nlong along
	n0 := 2*g.Nthick + 1
	n1 := g.Nlong + 1
	chk.Int(tst, "nverts", len(m.Verts), n0*n1)
	chk.Int(tst, "ncells", len(m.Cells), (n0-1)*(n1-1))
	chk.Int(tst, "nedge", len(m.Edge), n1)

	// a grid line falls exactly on the material border
	found := false
	for _, v := range m.Verts {
		if v[0] == 0.25*50 {
			found = true
			break
		}
	}
	if !found {
		tst.Errorf("no grid line on the material border\n")
	}

	// region tags: first Nthick thickness rows are region 1
	for c, cell := range m.Cells {
		x0 := m.Verts[cell[0]][0]
		want := 1
		if x0 >= 0.25*50 {
			want = 2
		}
		if m.CellRegions[c] != want {
			tst.Errorf("cell %d at x0=%g: region %d, want %d\n", c, x0, m.CellRegions[c], want)
			return
		}
	}

	// edge vertices sit on the region-1 face, ordered along the long axis
	for k, id := range m.Edge {
		chk.Float64(tst, io.Sf("edge[%d] x0", k), 1e-17, m.Verts[id][0], 0)
		if k > 0 {
			if m.Verts[id][1] <= m.Verts[m.Edge[k-1]][1] {
				tst.Errorf("edge vertices out of order at %d\n", k)
				return
			}
		}
	}
}

func Test_grid02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid02. refinement doubles the subdivisions")

	g := NewGrid()
	m0, err := g.Mesh([]float64{50, 2000}, 0.25, 2, 1, 0)
	if err != nil {
		tst.Errorf("Mesh failed: %v\n", err)
		return
	}
	m1, err := g.Mesh([]float64{50, 2000}, 0.25, 2, 1, 1)
	if err != nil {
		tst.Errorf("Mesh failed: %v\n", err)
		return
	}
	chk.Int(tst, "ncells ratio", len(m1.Cells), 4*len(m0.Cells))
	chk.Int(tst, "nedge", len(m1.Edge), 2*g.Nlong+1)
}

func Test_grid03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("grid03. 3D grid")

	g := NewGrid()
	m, err := g.Mesh([]float64{50, 2000, 100}, 0.25, 3, 1, 0)
	if err != nil {
		tst.Errorf("Mesh failed: %v\n", err)
		return
	}
	n0 := 2*g.Nthick + 1
	n1 := g.Nlong + 1
	n2 := g.Nthick + 1
	chk.Int(tst, "nverts", len(m.Verts), n0*n1*n2)
	chk.Int(tst, "ncells", len(m.Cells), (n0-1)*(n1-1)*(n2-1))
	chk.Int(tst, "cell nodes", len(m.Cells[0]), 8)
	chk.Int(tst, "nedge", len(m.Edge), n1)
	for _, id := range m.Edge {
		chk.Float64(tst, "edge x0", 1e-17, m.Verts[id][0], 0)
		chk.Float64(tst, "edge x2", 1e-17, m.Verts[id][2], 0)
	}
}

func Test_griderr01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("griderr01. geometry errors")

	g := NewGrid()
	if _, err := g.Mesh([]float64{50, 2000}, 0, 2, 1, 0); err == nil {
		tst.Errorf("mb=0 must fail\n")
	}
	if _, err := g.Mesh([]float64{50, 2000}, 1, 2, 1, 0); err == nil {
		tst.Errorf("mb=1 must fail\n")
	}
	if _, err := g.Mesh([]float64{50, 2000}, 0.25, 4, 1, 0); err == nil {
		tst.Errorf("ndim=4 must fail\n")
	}
	if _, err := g.Mesh([]float64{50, 2000, 100}, 0.25, 2, 1, 0); err == nil {
		tst.Errorf("scale/ndim mismatch must fail\n")
	}
	if _, err := g.Mesh([]float64{50, 2000, 100}, 0.25, 3, 3, 0); err == nil {
		tst.Errorf("order=3 in 3D must fail\n")
	}
	if _, err := g.Mesh([]float64{50, 2000}, 0.25, 2, 1, -1); err == nil {
		tst.Errorf("nrefine=-1 must fail\n")
	}
	if _, err := g.Mesh([]float64{50, 2000}, 0.25, 2, 1, MaxNrefine+1); err == nil {
		tst.Errorf("nrefine beyond the cap must fail\n")
	}
}
