// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"os"

	"github.com/aria-systems-group/stochbarrier/barrier"
	"github.com/aria-systems-group/stochbarrier/config"
	"github.com/aria-systems-group/stochbarrier/dataset"
	"github.com/aria-systems-group/stochbarrier/dynsys"
	"github.com/aria-systems-group/stochbarrier/geom"
	"github.com/aria-systems-group/stochbarrier/region"
	"github.com/aria-systems-group/stochbarrier/transprob"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/gonum/mat"
)

func main() {
	exitCode := 0

	defer func() {
		if err := recover(); err != nil {
			chk.Verbose = true
			for i := 8; i > 3; i-- {
				chk.CallerInfo(i)
			}
			io.PfRed("ERROR: %v\n", err)
			exitCode = 1
		}
		os.Exit(exitCode)
	}()

	partitionsFile := flag.String("partitions", "", "path to partitions JSON dataset")
	systemFile := flag.String("system", "", "path to linear-system JSON dataset")
	obstacle := flag.Int("obstacle", -1, "obstacle region index (-1 for none)")
	initial := flag.Int("initial", 0, "initial region index")
	algorithm := flag.String("algorithm", "constant", "barrier algorithm: constant, dual_constant, iterative, frank_wolfe, gradient_descent, sos")
	upperBound := flag.String("upper-bound", string(config.GlobalSolver), "upper-bound method: BoxApproximation, GlobalSolver, FrankWolfe")
	fwNumIter := flag.Int("frank-wolfe-iters", 0, "Frank-Wolfe iteration cap (0 keeps the config default)")
	fwTermEps := flag.Float64("frank-wolfe-eps", 0, "Frank-Wolfe dual-gap termination tolerance (0 keeps the config default)")
	sparsityEps := flag.Float64("sparsity-eps", 0, "sparsity pre-filter tail mass (0 keeps the config default)")
	outBarrier := flag.String("out", "barrier.txt", "output path for the barrier vector (plain text)")
	flag.Parse()

	io.PfWhite("\nstochbarrier -- stochastic barrier certificate synthesis\n\n")

	if *partitionsFile == "" || *systemFile == "" {
		chk.Panic("please provide -partitions <file.json> and -system <file.json>")
	}

	var parts dataset.Partitions
	if err := dataset.ReadJSON(*partitionsFile, &parts); err != nil {
		chk.Panic("%v", err)
	}
	boxes, err := parts.ToHyperrectangles()
	if err != nil {
		chk.Panic("%v", err)
	}
	regions := make([]*region.Region, len(boxes))
	for i, b := range boxes {
		regions[i] = region.NewRegion(b)
	}

	var sysData dataset.LinearSystemData
	if err := dataset.ReadJSON(*systemFile, &sysData); err != nil {
		chk.Panic("%v", err)
	}
	m := len(sysData.B)
	aFlat := make([]float64, 0, m*m)
	for _, row := range sysData.Rows() {
		aFlat = append(aFlat, row...)
	}
	aMat := mat.NewDense(m, m, aFlat)
	safeBox, err := geom.NewHyperrectangle(sysData.Safe[0], sysData.Safe[1])
	if err != nil {
		chk.Panic("%v", err)
	}
	safe := geom.HyperrectToVPolytope(safeBox)
	sys, err := dynsys.NewLinearGaussian(aMat, sysData.B, sysData.Sigma, safe)
	if err != nil {
		chk.Panic("%v", err)
	}

	cfg := config.NewDefault()
	cfg.BarrierAlgorithm = *algorithm
	cfg.UpperBoundMethod = config.UpperBoundMethodKind(*upperBound)
	if *fwNumIter > 0 {
		cfg.FrankWolfeNumIter = *fwNumIter
	}
	if *fwTermEps > 0 {
		cfg.FrankWolfeTermEps = *fwTermEps
	}
	if *sparsityEps > 0 {
		cfg.SparsityEps = *sparsityEps
	}

	if cfg.LowerBoundMethod != config.VertexEnumeration {
		chk.Panic("unsupported lower-bound method %q: only vertex enumeration is implemented", cfg.LowerBoundMethod)
	}

	opts := transprob.DefaultOptions()
	opts.Progress = true
	opts.SparsityEps = cfg.SparsityEps
	switch cfg.UpperBoundMethod {
	case config.BoxApproximation:
		opts.UpperBound = transprob.BoxApproximationMethod{}
	case config.GlobalSolver:
		opts.UpperBound = transprob.GlobalSolverMethod{}
	case config.FrankWolfe:
		opts.UpperBound = transprob.FrankWolfeMethod{NumIter: cfg.FrankWolfeNumIter, TermEps: cfg.FrankWolfeTermEps}
	default:
		chk.Panic("unknown upper-bound method %q", cfg.UpperBoundMethod)
	}

	result, err := transprob.TransitionProbabilities(sys, regions, opts)
	if err != nil {
		chk.Panic("%v", err)
	}

	n := len(regions)
	lower := make([][]float64, n+1)
	upper := make([][]float64, n+1)
	for i := 0; i <= n; i++ {
		lower[i] = make([]float64, n)
		upper[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			lower[i][j] = result.Lower.Get(i, j)
			upper[i][j] = result.Upper.Get(i, j)
		}
	}

	prob := barrier.Problem{
		NumRegions:   n,
		Lower:        lower,
		Upper:        upper,
		Obstacle:     *obstacle,
		InitialCells: []int{*initial},
		TimeHorizon:  cfg.TimeHorizon,
		Eps:          cfg.Eps,
	}

	synth, err := barrier.New(cfg.BarrierAlgorithm)
	if err != nil {
		chk.Panic("%v", err)
	}
	sol, err := synth.Synthesize(prob)
	if err != nil {
		chk.Panic("%v", err)
	}

	if err := dataset.WriteBarrierPlainText(*outBarrier, sol.B); err != nil {
		chk.Panic("%v", err)
	}
	io.Pfgreen("eta=%g beta=%g objective=%g\n", sol.Eta, sol.Beta, sol.Objective)
}
