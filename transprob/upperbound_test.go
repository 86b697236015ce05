// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package transprob

import (
	"testing"

	"github.com/aria-systems-group/stochbarrier/geom"
	"github.com/cpmech/gosl/chk"
)

func Test_upperbound01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("upperbound01. box, global-solver and Frank-Wolfe agree on a simple column")

	box, _ := geom.NewHyperrectangle([]float64{0, 0}, []float64{1, 1})
	y := geom.HyperrectToVPolytope(box)
	low := []float64{-0.5, -0.5}
	high := []float64{0.5, 0.5}
	sigma := []float64{1, 1}

	bu, err := BoxApproximationMethod{}.MaxOverPolytope(y, low, high, sigma)
	if err != nil {
		tst.Errorf("BoxApproximationMethod failed: %v\n", err)
		return
	}
	gu, err := GlobalSolverMethod{}.MaxOverPolytope(y, low, high, sigma)
	if err != nil {
		tst.Errorf("GlobalSolverMethod failed: %v\n", err)
		return
	}
	fu, err := FrankWolfeMethod{}.MaxOverPolytope(y, low, high, sigma)
	if err != nil {
		tst.Errorf("FrankWolfeMethod failed: %v\n", err)
		return
	}

	if bu <= 0 || bu > 1 {
		tst.Errorf("box upper bound %g should be in (0,1]\n", bu)
	}
	// the global solver searches the full polytope, so it must be at least
	// as tight (no smaller) as the loose box-clamp heuristic.
	if gu < bu-1e-6 {
		tst.Errorf("global solver bound %g should be >= box bound %g\n", gu, bu)
	}
	if fu < bu-1e-6 {
		tst.Errorf("Frank-Wolfe bound %g should be >= box bound %g\n", fu, bu)
	}
}
