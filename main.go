// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/chmerdon/StrainedBandstructures/fem"
	"github.com/chmerdon/StrainedBandstructures/inp"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// cliVerbose resolves the effective verbosity: a non-negative command-line
// argument overrides the .sim file's value
func cliVerbose(arg, fromSim int) int {
	if arg >= 0 {
		return arg
	}
	return fromSim
}

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "inp/data/nanowire", ".sim", true)
	verbose := io.ArgToInt(1, -1) // negative: keep the .sim file's verbosity

	// message
	if verbose != 0 {
		io.PfWhite("\nStrainedBandstructures -- bimetal bending simulation\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"verbosity level", "verbose", verbose,
		))
	}

	// read and validate simulation input
	sim, err := inp.ReadSim(fnamepath)
	if err != nil {
		chk.Panic("cannot read simulation input:\n%v", err)
	}
	sim.Data.Verbose = cliVerbose(verbose, sim.Data.Verbose)

	// assemble problem
	analysis, err := fem.NewMain(sim)
	if err != nil {
		chk.Panic("cannot assemble simulation:\n%v", err)
	}

	// run simulation
	stats, err := analysis.Run()
	if err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	io.Pf("\n%v\n", io.ArgsTable("BENDING STATISTICS",
		"bending angle [deg]", "angle", io.Sf("%.6f", stats.Angle),
		"curvature [1/nm]", "curvature", io.Sf("%.6e", stats.Curvature),
		"analytic curvature [1/nm]", "analytic", io.Sf("%.6e", stats.AnaCurvature),
		"bend distance [nm]", "benddist", io.Sf("%.6f", stats.BendDist),
		"farthest-point side", "side", io.Sf("%+d", stats.Side),
	))
}
