// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_dataset01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset01. Partitions converts to hyperrectangles")

	p := Partitions{Regions: [][2][]float64{
		{{0, 0}, {1, 1}},
		{{1, 0}, {2, 1}},
	}}
	boxes, err := p.ToHyperrectangles()
	if err != nil {
		tst.Errorf("ToHyperrectangles failed: %v\n", err)
		return
	}
	chk.Scalar(tst, "num boxes", 1e-15, float64(len(boxes)), 2)
	chk.Array(tst, "box0 low", 1e-15, boxes[0].Low, []float64{0, 0})
	chk.Array(tst, "box1 high", 1e-15, boxes[1].High, []float64{2, 1})
}

func Test_dataset02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset02. DenseMatrices augments with the unsafe tail row")

	d := DenseMatrices{
		Lower:       [][]float64{{0.5}, {0.2}},
		Upper:       [][]float64{{0.6}, {0.3}},
		UnsafeLower: []float64{0.1},
		UnsafeUpper: []float64{0.2},
	}
	lower, upper := d.ToAugmented()
	chk.Scalar(tst, "num rows", 1e-15, float64(len(lower)), 3)
	chk.Array(tst, "tail lower row", 1e-15, lower[2], []float64{0.1})
	chk.Array(tst, "tail upper row", 1e-15, upper[2], []float64{0.2})
}

func Test_dataset03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset03. JSON round trip through ReadJSON/WriteJSON")

	dir := tst.TempDir()
	path := filepath.Join(dir, "partitions.json")

	original := Partitions{Regions: [][2][]float64{{{-1, -1}, {1, 1}}}}
	if err := WriteJSON(path, &original); err != nil {
		tst.Errorf("WriteJSON failed: %v\n", err)
		return
	}

	var loaded Partitions
	if err := ReadJSON(path, &loaded); err != nil {
		tst.Errorf("ReadJSON failed: %v\n", err)
		return
	}
	chk.Array(tst, "loaded low", 1e-15, loaded.Regions[0][0], original.Regions[0][0])
	chk.Array(tst, "loaded high", 1e-15, loaded.Regions[0][1], original.Regions[0][1])
}

func Test_dataset04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset04. WriteBarrierPlainText writes one value per line")

	dir := tst.TempDir()
	path := filepath.Join(dir, "barrier.txt")
	if err := WriteBarrierPlainText(path, []float64{0.1, 0.2, 0.3}); err != nil {
		tst.Errorf("WriteBarrierPlainText failed: %v\n", err)
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		tst.Errorf("could not read back %q: %v\n", path, err)
		return
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	chk.Scalar(tst, "num lines", 1e-15, float64(len(lines)), 3)
	if lines[1] != "0.2" {
		tst.Errorf("expected line 2 to be %q, got %q\n", "0.2", lines[1])
	}
}

func Test_dataset06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset06. SparseMatrices scatters into the same augmented shape as DenseMatrices")

	s := SparseMatrices{
		Lower: []SparseColumn{
			{Indices: []int{1}, Values: []float64{0.5}, UnsafeValue: 0.1},
			{Indices: []int{}, Values: []float64{}, UnsafeValue: 1.0},
		},
		Upper: []SparseColumn{
			{Indices: []int{1}, Values: []float64{0.6}, UnsafeValue: 0.2},
			{Indices: []int{}, Values: []float64{}, UnsafeValue: 1.0},
		},
	}
	lower, upper := s.ToAugmented()
	chk.Scalar(tst, "num rows", 1e-15, float64(len(lower)), 3)
	chk.Scalar(tst, "lower[1][0]", 1e-15, lower[1][0], 0.5)
	chk.Scalar(tst, "lower[0][0] (absent index)", 1e-15, lower[0][0], 0)
	chk.Scalar(tst, "upper[1][0]", 1e-15, upper[1][0], 0.6)
	chk.Scalar(tst, "lower tail col1", 1e-15, lower[2][1], 1.0)
}

func Test_dataset05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("dataset05. LinearSystemData exposes row-major A")

	l := LinearSystemData{
		A:     [][]float64{{1, 0}, {0, 1}},
		B:     []float64{0, 0},
		Sigma: []float64{1, 1},
		Safe:  [2][]float64{{-1, -1}, {1, 1}},
	}
	rows := l.Rows()
	chk.Scalar(tst, "num rows", 1e-15, float64(len(rows)), 2)
	chk.Array(tst, "row0", 1e-15, rows[0], []float64{1, 0})
}
