// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package region

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sparse01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sparse01. SparseBuilder round-trips three columns")

	n := 3
	b := NewSparseBuilder(n, n+1)
	b.PutColumn(0, []int{1, 2}, []float64{0.1, 0.2}, []float64{0.3, 0.4}, 0.0, 0.1)
	b.PutColumn(1, []int{0}, []float64{0.5}, []float64{0.6}, 0.2, 0.3)
	b.PutColumn(2, []int{}, nil, nil, 1.0, 1.0)

	lower, upper := b.Build()

	lowerDense := lower.ToDense()
	upperDense := upper.ToDense()

	chk.Scalar(tst, "lower[1][0]", 1e-15, lowerDense.Get(1, 0), 0.1)
	chk.Scalar(tst, "upper[2][0]", 1e-15, upperDense.Get(2, 0), 0.4)
	chk.Scalar(tst, "lower tail col0", 1e-15, lowerDense.Get(3, 0), 0.0)
	chk.Scalar(tst, "upper tail col0", 1e-15, upperDense.Get(3, 0), 0.1)
	chk.Scalar(tst, "lower[0][1]", 1e-15, lowerDense.Get(0, 1), 0.5)
	chk.Scalar(tst, "upper tail col2", 1e-15, upperDense.Get(3, 2), 1.0)
}
