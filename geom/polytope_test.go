// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package geom

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

func Test_polytope01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polytope01. V-polytope box approximation")

	box, _ := NewHyperrectangle([]float64{0, 0}, []float64{1, 2})
	p := HyperrectToVPolytope(box)
	chk.Scalar(tst, "dim", 1e-15, float64(p.Dim()), 2)
	if !p.HasV() {
		tst.Errorf("expected V-representation to already be set\n")
	}

	approx := BoxApproximation(p)
	chk.Scalar(tst, "approx.Low.x", 1e-15, approx.Low[0], 0)
	chk.Scalar(tst, "approx.High.x", 1e-15, approx.High[0], 1)
	chk.Scalar(tst, "approx.Low.y", 1e-15, approx.Low[1], 0)
	chk.Scalar(tst, "approx.High.y", 1e-15, approx.High[1], 2)
}

func Test_polytope02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polytope02. affine map of a V-polytope")

	box, _ := NewHyperrectangle([]float64{0, 0}, []float64{1, 1})
	p := HyperrectToVPolytope(box)

	a := mat.NewDense(2, 2, []float64{2, 0, 0, 3})
	b := []float64{1, 1}
	img, err := AffineMap(a, p, b)
	if err != nil {
		tst.Errorf("AffineMap failed: %v\n", err)
		return
	}
	box2 := BoxApproximation(img)
	chk.Scalar(tst, "img.Low.x", 1e-15, box2.Low[0], 1)
	chk.Scalar(tst, "img.High.x", 1e-15, box2.High[0], 3)
	chk.Scalar(tst, "img.Low.y", 1e-15, box2.Low[1], 1)
	chk.Scalar(tst, "img.High.y", 1e-15, box2.High[1], 4)
}

func Test_polytope03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polytope03. H-polytope vertex enumeration recovers a square")

	// unit square as A x <= b: x<=1, -x<=0, y<=1, -y<=0
	a := [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	b := []float64{1, 0, 1, 0}
	poly, err := NewHPolytope(a, b)
	if err != nil {
		tst.Errorf("NewHPolytope failed: %v\n", err)
		return
	}
	verts := poly.Vertices()
	chk.Scalar(tst, "num vertices", 1e-15, float64(len(verts)), 4)
	box := BoxApproximation(poly)
	chk.Scalar(tst, "box.Low.x", 1e-12, box.Low[0], 0)
	chk.Scalar(tst, "box.High.x", 1e-12, box.High[0], 1)
}

func Test_polytope04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("polytope04. disjointness pruning and closest point")

	box, _ := NewHyperrectangle([]float64{0, 0}, []float64{1, 1})
	far, _ := NewHyperrectangle([]float64{10, 10}, []float64{11, 11})
	p := HyperrectToVPolytope(far)
	if !IsDisjoint(box, p) {
		tst.Errorf("a far-away box and polytope should be reported disjoint\n")
	}

	a := [][]float64{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	b := []float64{1, 0, 1, 0}
	hp, _ := NewHPolytope(a, b)
	cp := L2ClosestPoint(hp, []float64{2, 0.5})
	chk.Scalar(tst, "closest.x", 1e-6, cp[0], 1)
	chk.Scalar(tst, "closest.y", 1e-6, cp[1], 0.5)
}
