// Copyright 2026 The Stochbarrier Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package geom implements the geometry kit: axis-aligned hyperrectangles and
// convex polytopes, plus the affine, sparsity and closest-point operations
// the transition-probability engine needs over them.
package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// Hyperrectangle is an axis-aligned box [Low, High] in R^m.
type Hyperrectangle struct {
	Low  []float64
	High []float64
}

// NewHyperrectangle builds a hyperrectangle, checking Low <= High componentwise.
func NewHyperrectangle(low, high []float64) (*Hyperrectangle, error) {
	if len(low) != len(high) {
		return nil, chk.Err("hyperrectangle: low and high must have the same length, got %d and %d", len(low), len(high))
	}
	for i := range low {
		if low[i] > high[i] {
			return nil, chk.Err("hyperrectangle: low[%d]=%g > high[%d]=%g", i, low[i], i, high[i])
		}
	}
	return &Hyperrectangle{Low: append([]float64{}, low...), High: append([]float64{}, high...)}, nil
}

// Dim returns the ambient dimension m.
func (h *Hyperrectangle) Dim() int { return len(h.Low) }

// Center returns the centroid of the hyperrectangle.
func (h *Hyperrectangle) Center() []float64 {
	c := make([]float64, h.Dim())
	for i := range c {
		c[i] = 0.5 * (h.Low[i] + h.High[i])
	}
	return c
}

// Contains reports whether p lies inside the closed hyperrectangle.
func (h *Hyperrectangle) Contains(p []float64) bool {
	for i, v := range p {
		if v < h.Low[i] || v > h.High[i] {
			return false
		}
	}
	return true
}

// Vertices enumerates all 2^m corners of the hyperrectangle.
func (h *Hyperrectangle) Vertices() [][]float64 {
	m := h.Dim()
	n := 1 << uint(m)
	out := make([][]float64, n)
	for k := 0; k < n; k++ {
		v := make([]float64, m)
		for i := 0; i < m; i++ {
			if (k>>uint(i))&1 == 1 {
				v[i] = h.High[i]
			} else {
				v[i] = h.Low[i]
			}
		}
		out[k] = v
	}
	return out
}

// MinkowskiSumBox returns H expanded on every side by the given per-axis
// half-widths, i.e. H ⊕ [-r, r].
func (h *Hyperrectangle) MinkowskiSumBox(r []float64) *Hyperrectangle {
	low := make([]float64, h.Dim())
	high := make([]float64, h.Dim())
	for i := range low {
		low[i] = h.Low[i] - r[i]
		high[i] = h.High[i] + r[i]
	}
	return &Hyperrectangle{Low: low, High: high}
}

// ProjectOntoHyperrect clamps p componentwise into [Low, High].
func ProjectOntoHyperrect(h *Hyperrectangle, p []float64) []float64 {
	out := make([]float64, len(p))
	for i, v := range p {
		out[i] = math.Min(h.High[i], math.Max(h.Low[i], v))
	}
	return out
}

// IsDisjointBoxes does an interval check per axis: the two hyperrectangles
// are disjoint iff they fail to overlap on at least one axis.
func IsDisjointBoxes(a, b *Hyperrectangle) bool {
	for i := range a.Low {
		if a.High[i] < b.Low[i] || b.High[i] < a.Low[i] {
			return true
		}
	}
	return false
}
