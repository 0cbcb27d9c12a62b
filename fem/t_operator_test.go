// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/chmerdon/StrainedBandstructures/inp"
	"github.com/chmerdon/StrainedBandstructures/msh"
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

// testOperator returns an operator over the isotropic 12.5/37.5 nm strip with
// a 2% lattice factor under the weighted-average convention
func testOperator(tst *testing.T, nonlin float64) *Operator {
	m, err := msh.NewGrid().Mesh([]float64{50, 2000}, 0.25, 2, 1, 0)
	if err != nil {
		tst.Errorf("Mesh failed: %v\n", err)
		return nil
	}
	op := &Operator{
		Msh:    m,
		Young:  [2]float64{1e-6, 1e-6},
		Alpha:  [2]float64{-0.015, 0.005 / 1.02},
		Nonlin: nonlin,
		Emb:    1,
	}
	op.Elast[0] = [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	op.Elast[1] = [][]float64{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
	for i := 0; i < 2; i++ {
		a := op.Alpha[i]
		op.Eps0[i] = a * (1.0 + a/2.0)
	}
	return op
}

func Test_embed01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("embed01. embedding scales mismatch and nonlinearity")

	op := testOperator(tst, 0.5)
	if op == nil {
		return
	}
	half := op.Embed(0.5)
	chk.Float64(tst, "emb", 1e-17, half.Emb, 0.5)
	chk.Float64(tst, "nonlin", 1e-17, half.Nonlin, 0.25)
	for i := 0; i < 2; i++ {
		a := 0.5 * op.Alpha[i]
		chk.Float64(tst, io.Sf("α%d", i+1), 1e-17, half.Alpha[i], a)
		chk.Float64(tst, io.Sf("ε0_%d", i+1), 1e-17, half.Eps0[i], a*(1.0+a/2.0))
	}

	// the full embedding reproduces the operator itself
	full := op.Embed(1)
	chk.Float64(tst, "full α1", 1e-17, full.Alpha[0], op.Alpha[0])
	chk.Float64(tst, "full ε0_1", 1e-17, full.Eps0[0], op.Eps0[0])

	// embedding does not mutate the source operator
	chk.Float64(tst, "src α1", 1e-17, op.Alpha[0], -0.015)
	chk.Float64(tst, "src nonlin", 1e-17, op.Nonlin, 0.5)
}

func Test_anacurv01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("anacurv01. operator thickness and analytic curvature")

	op := testOperator(tst, 0)
	if op == nil {
		return
	}
	h1, h2 := op.Thickness()
	chk.Float64(tst, "h1", 1e-15, h1, 12.5)
	chk.Float64(tst, "h2", 1e-15, h2, 37.5)

	kappa, err := op.AnaCurvature()
	if err != nil {
		tst.Errorf("AnaCurvature failed: %v\n", err)
		return
	}
	chk.Float64(tst, "kappa", 1e-15, kappa, 0.000445533196366782)
}

func Test_opcheck01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("opcheck01. operator invariants")

	op := testOperator(tst, 0)
	if op == nil {
		return
	}
	if err := op.Check(); err != nil {
		tst.Errorf("valid operator rejected: %v\n", err)
	}

	bad := *op
	bad.Msh = nil
	if err := bad.Check(); err == nil {
		tst.Errorf("missing mesh must fail\n")
	}

	bad = *op
	bad.Elast[0] = [][]float64{{0, 0}, {0, 1}}
	if err := bad.Check(); err == nil {
		tst.Errorf("non-positive diagonal must fail\n")
	}

	bad = *op
	bad.Young[1] = 0
	if err := bad.Check(); err == nil {
		tst.Errorf("non-positive Young's modulus must fail\n")
	}
}

func Test_schedule01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("schedule01. uniform schedule and invariants")

	s := NewSchedule(4)
	chk.Array(tst, "schedule", 1e-17, s, []float64{0.25, 0.5, 0.75, 1})
	if err := s.Check(); err != nil {
		tst.Errorf("uniform schedule rejected: %v\n", err)
	}
	if err := NewSchedule(1).Check(); err != nil {
		tst.Errorf("single-step schedule rejected: %v\n", err)
	}

	if err := (Schedule{}).Check(); err == nil {
		tst.Errorf("empty schedule must fail\n")
	}
	if err := (Schedule{0.5, 0.4, 1}).Check(); err == nil {
		tst.Errorf("non-monotone schedule must fail\n")
	}
	if err := (Schedule{0.5, 0.9}).Check(); err == nil {
		tst.Errorf("schedule not ending at 1 must fail\n")
	}
}

func Test_factories01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("factories01. solver registries")

	sd := &inp.SolverData{Type: "emb", Nsteps: 4, FbTol: 1e-8, NmaxIt: 50}
	if _, err := NewSolver(sd); err != nil {
		tst.Errorf("emb driver missing: %v\n", err)
	}
	sd.Type = "dmp"
	if _, err := NewSolver(sd); err != nil {
		tst.Errorf("dmp driver missing: %v\n", err)
	}
	sd.Type = "newton"
	if _, err := NewSolver(sd); err == nil {
		tst.Errorf("unknown driver must fail\n")
	}

	if _, err := NewNonlinSolver("bilayer"); err != nil {
		tst.Errorf("bilayer primitive missing: %v\n", err)
	}
	if _, err := NewNonlinSolver("spectral"); err == nil {
		tst.Errorf("unknown primitive must fail\n")
	}
}
