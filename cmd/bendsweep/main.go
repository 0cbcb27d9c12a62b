// Copyright 2025 The StrainedBandstructures Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// bendsweep runs a batch of bimetal bending simulations over a swept
// parameter. Configurations are independent: each one owns its mesh, tensors,
// and continuation state, so they are dispatched whole-instance in parallel.
// A non-converging configuration is reported and skipped; there is no retry.
package main

import (
	"fmt"
	"os"
	"sync"

	"github.com/chmerdon/StrainedBandstructures/fem"
	"github.com/chmerdon/StrainedBandstructures/inp"
	"github.com/chmerdon/StrainedBandstructures/out"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Sweep defines a batch of simulations sharing one base .sim file while one
// parameter varies
type Sweep struct {
	Simfile  string    `yaml:"simfile"`  // base .sim file
	Variable string    `yaml:"variable"` // swept parameter: "x2" (region-2 composition), "mb", or "nonlin"
	Values   []float64 `yaml:"values"`   // swept values
	Graph    bool      `yaml:"graph"`    // render curvature curve in the terminal
}

// result holds the outcome of one configuration
type result struct {
	value float64
	stats *out.BendingStats
	err   error
}

var sweepFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "bendsweep",
		Short: "sweep bimetal bending simulations over a parameter",
		RunE:  runSweep,
	}
	rootCmd.Flags().StringVar(&sweepFile, "sweep", "sweep.yaml", "sweep definition file")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSweep(cmd *cobra.Command, args []string) error {

	// sweep definition
	b, err := os.ReadFile(sweepFile)
	if err != nil {
		return err
	}
	var sw Sweep
	if err := yaml.Unmarshal(b, &sw); err != nil {
		return err
	}
	if len(sw.Values) == 0 {
		return fmt.Errorf("sweep %q has no values", sweepFile)
	}

	// base configuration
	base, err := inp.ReadSim(sw.Simfile)
	if err != nil {
		return err
	}
	base.Data.Verbose = 0

	// whole-instance parallel dispatch; no shared mutable state
	results := make([]result, len(sw.Values))
	var wg sync.WaitGroup
	for i, v := range sw.Values {
		wg.Add(1)
		go func(idx int, val float64) {
			defer wg.Done()
			results[idx] = runOne(base, sw.Variable, val)
		}(i, v)
	}
	wg.Wait()

	// report
	fmt.Printf("%14s%16s%16s%12s%8s\n", sw.Variable, "curvature", "analytic", "angle", "side")
	var series []float64
	for _, r := range results {
		if r.err != nil {
			fmt.Printf("%14g  %v\n", r.value, r.err)
			continue
		}
		fmt.Printf("%14g%16.6e%16.6e%12.4f%8d\n", r.value, r.stats.Curvature, r.stats.AnaCurvature, r.stats.Angle, r.stats.Side)
		series = append(series, r.stats.Curvature)
	}
	if sw.Graph && len(series) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(series, asciigraph.Height(12), asciigraph.Caption("curvature over "+sw.Variable)))
	}
	return nil
}

// runOne applies the swept value to a copy of the base configuration and runs
// it. Solver non-convergence is returned, not retried.
func runOne(base *inp.Simulation, variable string, val float64) result {
	sim := *base
	sim.Geo.Scale = append([]float64(nil), base.Geo.Scale...)
	switch variable {
	case "x2":
		sim.Regions[1].X = val
	case "mb":
		sim.Geo.Mb = val
	case "nonlin":
		sim.Solver.Nonlin = val
	default:
		return result{value: val, err: fmt.Errorf("sweep variable %q is not available; options are \"x2\", \"mb\", and \"nonlin\"", variable)}
	}
	if err := sim.Validate(); err != nil {
		return result{value: val, err: err}
	}
	m, err := fem.NewMain(&sim)
	if err != nil {
		return result{value: val, err: err}
	}
	stats, err := m.Run()
	return result{value: val, stats: stats, err: err}
}
