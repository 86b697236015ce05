// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package plot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_plot01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("plot01. EChartsPlotter renders a non-empty HTML file")

	dir := tst.TempDir()
	out := filepath.Join(dir, "regions.html")
	p := EChartsPlotter{OutPath: out}

	points := [][2]float64{{0, 0}, {1, 1}, {0.5, -0.5}}
	if err := p.PlotRegionImages("region images", points); err != nil {
		tst.Errorf("PlotRegionImages failed: %v\n", err)
		return
	}

	info, err := os.Stat(out)
	if err != nil {
		tst.Errorf("expected %q to exist: %v\n", out, err)
		return
	}
	if info.Size() == 0 {
		tst.Errorf("expected a non-empty HTML file\n")
	}
}
