// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON file
package inp

import (
	"encoding/json"
	"os"

	"github.com/chmerdon/StrainedBandstructures/mdl/crystal"
	"github.com/chmerdon/StrainedBandstructures/msh"
	"github.com/cpmech/gosl/chk"
)

// Data holds global data for simulations
type Data struct {
	Desc    string `json:"desc"`    // description of simulation
	Verbose int    `json:"verbose"` // verbosity level: 0=quiet, 1=steps, 2=iterations
}

// MaterialData holds the material description of one region. Either the alloy
// route (MatA/MatB/X) or the isotropic route (E/Nu/Lc) must be given.
type MaterialData struct {

	// alloy route
	MatA string  `json:"mata"` // end member at x=0; e.g. "GaAs"
	MatB string  `json:"matb"` // end member at x=1; e.g. "InAs"
	X    float64 `json:"x"`    // composition fraction of MatB ∈ [0,1]

	// isotropic route
	E  float64 `json:"E"`  // Young's modulus (non-piezoelectric material)
	Nu float64 `json:"nu"` // Poisson's ratio
	Lc float64 `json:"lc"` // lattice constant
}

// Alloy tells whether this region uses the alloy route
func (o *MaterialData) Alloy() bool { return o.MatA != "" }

// GeometryData holds the two-region bimetal shape parameters
//
//	Region 1 occupies the first Mb fraction of the first scale axis; region 2
//	the remainder, across the full extent of the remaining dimension(s).
type GeometryData struct {
	Scale []float64 `json:"scale"` // physical lengths; pair (2D) or triple (3D)
	Mb    float64   `json:"mb"`    // material border fraction ∈ (0,1) strictly
	Ndim  int       `json:"ndim"`  // dimensionality: 2 or 3
}

// H1 returns the thickness of region 1
func (o *GeometryData) H1() float64 { return o.Mb * o.Scale[0] }

// H2 returns the thickness of region 2
func (o *GeometryData) H2() float64 { return (1.0 - o.Mb) * o.Scale[0] }

// Weights returns the area (2D) or volume (3D) weights of both regions
func (o *GeometryData) Weights() (A1, A2 float64) {
	rest := 1.0
	for _, s := range o.Scale[1:] {
		rest *= s
	}
	return o.H1() * rest, o.H2() * rest
}

// SolverData holds data for the continuation solver driver
type SolverData struct {
	Type    string  `json:"type"`    // solver driver: "emb" (embedding) or "dmp" (damping)
	Model   string  `json:"model"`   // nonlinear solve primitive; e.g. "bilayer"
	Nsteps  int     `json:"nsteps"`  // number of embedding steps
	FbTol   float64 `json:"fbtol"`   // target residual per step
	NmaxIt  int     `json:"nmaxit"`  // max iterations per step
	Nonlin  float64 `json:"nonlin"`  // nonlinearity strength
	Order   int     `json:"order"`   // discretization order
	Nrefine int     `json:"nrefine"` // mesh refinement count
}

// Simulation holds all simulation input data
type Simulation struct {
	Data     Data            `json:"data"`
	Regions  [2]MaterialData `json:"regions"`  // region 1 and region 2 materials
	Symmetry string          `json:"symmetry"` // crystal symmetry tag; e.g. "zb001"
	Geo      GeometryData    `json:"geo"`
	Avgc     int             `json:"avgc"` // misfit averaging convention ∈ {1,2,3}
	Solver   SolverData      `json:"solver"`

	// derived
	Sym crystal.Symmetry // parsed symmetry
}

// ReadSim reads and validates a simulation (.sim) JSON file. A missing or
// unreadable file is returned as an error, never a panic.
func ReadSim(simfilepath string) (o *Simulation, err error) {
	b, err := os.ReadFile(simfilepath)
	if err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	o = new(Simulation)
	err = json.Unmarshal(b, o)
	if err != nil {
		return nil, chk.Err("cannot parse simulation file %q:\n%v", simfilepath, err)
	}
	err = o.Validate()
	if err != nil {
		return nil, err
	}
	return
}

// Validate checks all configuration and geometry invariants. Violations are
// rejected here, before any solve is attempted.
func (o *Simulation) Validate() (err error) {

	// materials
	for i, r := range o.Regions {
		if r.Alloy() {
			if r.MatB == "" {
				return chk.Err("region %d: end member B is missing", i+1)
			}
			if r.X < 0 || r.X > 1 {
				return chk.Err("region %d: composition fraction x=%g is outside [0,1]", i+1, r.X)
			}
		} else {
			if r.E <= 0 {
				return chk.Err("region %d: either an alloy (mata/matb/x) or an isotropic material (E/nu/lc) must be given", i+1)
			}
			if r.Lc <= 0 {
				return chk.Err("region %d: lattice constant lc=%g must be positive", i+1, r.Lc)
			}
		}
	}
	if o.Regions[0].Alloy() != o.Regions[1].Alloy() {
		return chk.Err("regions must both use the alloy route or both the isotropic route")
	}

	// symmetry (alloy route only; the isotropic route has no crystal structure)
	if o.Regions[0].Alloy() {
		o.Sym, err = crystal.ParseSymmetry(o.Symmetry)
		if err != nil {
			return
		}
	}

	// averaging convention
	if o.Avgc < 1 || o.Avgc > 3 {
		return chk.Err("averaging convention avgc=%d is not available; options are 1, 2, and 3", o.Avgc)
	}

	// geometry
	g := &o.Geo
	if g.Ndim != 2 && g.Ndim != 3 {
		return chk.Err("dimensionality ndim=%d is invalid; options are 2 and 3", g.Ndim)
	}
	if len(g.Scale) != g.Ndim {
		return chk.Err("scale has %d entries but ndim=%d", len(g.Scale), g.Ndim)
	}
	for i, s := range g.Scale {
		if s <= 0 {
			return chk.Err("scale[%d]=%g must be positive", i, s)
		}
	}
	if g.Mb <= 0 || g.Mb >= 1 {
		return chk.Err("material border mb=%g must lie strictly within (0,1); the degenerate single-material geometry is excluded", g.Mb)
	}
	A1, A2 := g.Weights()
	if A1 <= 0 || A2 <= 0 {
		return chk.Err("region weights A1=%g A2=%g must be positive", A1, A2)
	}

	// solver
	s := &o.Solver
	if s.Type == "" {
		s.Type = "emb"
	}
	if s.Model == "" {
		s.Model = "bilayer"
	}
	if s.Nsteps < 1 {
		return chk.Err("number of embedding steps nsteps=%d must be at least 1", s.Nsteps)
	}
	if s.FbTol <= 0 {
		return chk.Err("residual tolerance fbtol=%g must be positive", s.FbTol)
	}
	if s.NmaxIt < 1 {
		return chk.Err("max number of iterations nmaxit=%d must be at least 1", s.NmaxIt)
	}
	if s.Order < 1 {
		s.Order = 1
	}
	if s.Order > 2 && g.Ndim != 2 {
		return chk.Err("discretization order %d above 2 is only permitted in the 2D case", s.Order)
	}
	if s.Nrefine < 0 || s.Nrefine > msh.MaxNrefine {
		return chk.Err("refinement count nrefine=%d must lie within [0,%d]", s.Nrefine, msh.MaxNrefine)
	}
	return
}
