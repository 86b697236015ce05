// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_hyperrect01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyperrect01. basic box operations")

	h, err := NewHyperrectangle([]float64{0, 0}, []float64{2, 4})
	if err != nil {
		tst.Errorf("NewHyperrectangle failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "dim", 1e-15, float64(h.Dim()), 2)

	c := h.Center()
	chk.Scalar(tst, "center.x", 1e-15, c[0], 1)
	chk.Scalar(tst, "center.y", 1e-15, c[1], 2)

	if !h.Contains([]float64{1, 1}) {
		tst.Errorf("Contains should be true for an interior point\n")
	}
	if h.Contains([]float64{3, 1}) {
		tst.Errorf("Contains should be false for a point outside on x\n")
	}

	verts := h.Vertices()
	chk.Scalar(tst, "num vertices", 1e-15, float64(len(verts)), 4)
}

func Test_hyperrect02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyperrect02. Minkowski sum, projection, disjointness")

	h, _ := NewHyperrectangle([]float64{0, 0}, []float64{1, 1})
	grown := h.MinkowskiSumBox([]float64{0.5, 0.25})
	chk.Scalar(tst, "grown.Low.x", 1e-15, grown.Low[0], -0.5)
	chk.Scalar(tst, "grown.High.x", 1e-15, grown.High[0], 1.5)
	chk.Scalar(tst, "grown.Low.y", 1e-15, grown.Low[1], -0.25)
	chk.Scalar(tst, "grown.High.y", 1e-15, grown.High[1], 1.25)

	p := ProjectOntoHyperrect(h, []float64{-1, 2})
	chk.Scalar(tst, "proj.x", 1e-15, p[0], 0)
	chk.Scalar(tst, "proj.y", 1e-15, p[1], 1)

	a, _ := NewHyperrectangle([]float64{0, 0}, []float64{1, 1})
	b, _ := NewHyperrectangle([]float64{2, 0}, []float64{3, 1})
	if !IsDisjointBoxes(a, b) {
		tst.Errorf("boxes separated on x should be disjoint\n")
	}
	c, _ := NewHyperrectangle([]float64{0.5, 0.5}, []float64{1.5, 1.5})
	if IsDisjointBoxes(a, c) {
		tst.Errorf("overlapping boxes should not be disjoint\n")
	}
}

func Test_hyperrect03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("hyperrect03. invalid bounds rejected")

	_, err := NewHyperrectangle([]float64{1, 0}, []float64{0, 1})
	if err == nil {
		tst.Errorf("expected an error for low[0] > high[0]\n")
	}
}
