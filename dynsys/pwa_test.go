// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dynsys

import (
	"testing"

	"github.com/aria-systems-group/stochbarrier/geom"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

func Test_pwa01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pwa01. UncertainPWA validates region/piece counts")

	safeBox, _ := geom.NewHyperrectangle([]float64{0, 0}, []float64{2, 2})
	safe := geom.HyperrectToVPolytope(safeBox)
	regions := []*geom.Hyperrectangle{safeBox}

	if _, err := NewUncertainPWA(regions, [][]AffinePiece{}, []float64{1}, safe); err == nil {
		tst.Errorf("expected an error for region/piece count mismatch\n")
	}
	if _, err := NewUncertainPWA(regions, [][]AffinePiece{{}}, []float64{1}, safe); err == nil {
		tst.Errorf("expected an error for a region with no dynamics pieces\n")
	}
}

func Test_pwa02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pwa02. Post hulls the union of uncertain affine vertices")

	safeBox, _ := geom.NewHyperrectangle([]float64{0, 0}, []float64{2, 2})
	safe := geom.HyperrectToVPolytope(safeBox)
	regions := []*geom.Hyperrectangle{safeBox}

	identity := mat.NewDense(2, 2, []float64{1, 0, 0, 1})
	pieces := [][]AffinePiece{{
		{A: identity, B: []float64{0, 0}},
		{A: identity, B: []float64{1, 1}},
	}}
	sys, err := NewUncertainPWA(regions, pieces, []float64{0.1, 0.1}, safe)
	if err != nil {
		tst.Errorf("NewUncertainPWA failed: %v\n", err)
		return
	}

	xBox, _ := geom.NewHyperrectangle([]float64{0, 0}, []float64{1, 1})
	x := geom.HyperrectToVPolytope(xBox)
	_, box, err := sys.Post(0, x)
	if err != nil {
		tst.Errorf("Post failed: %v\n", err)
		return
	}
	// the union of X and X+(1,1) hulls to the box [0,2]x[0,2]
	chk.Scalar(tst, "box.Low.x", 1e-12, box.Low[0], 0)
	chk.Scalar(tst, "box.High.x", 1e-12, box.High[0], 2)
	chk.Scalar(tst, "box.Low.y", 1e-12, box.Low[1], 0)
	chk.Scalar(tst, "box.High.y", 1e-12, box.High[1], 2)

	if _, _, err := sys.Post(5, x); err == nil {
		tst.Errorf("expected an error for an out-of-range region index\n")
	}
}
