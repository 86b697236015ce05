// Package region implements the region model: a hyperrectangle-backed
// partition cell, optionally paired with its (lower, upper) transition
// probability vectors, and the sparse CSC assembly those vectors feed into
// (spec §3 "Region-with-probabilities", §9 "Sparse probability matrices").
package region

import (
	"github.com/aria-systems-group/stochbarrier/geom"
	"github.com/cpmech/gosl/chk"
)

// Region is one axis-aligned partition cell of the state space.
type Region struct {
	Box *geom.Hyperrectangle
}

// NewRegion wraps a hyperrectangle as a region.
func NewRegion(box *geom.Hyperrectangle) *Region { return &Region{Box: box} }

// RegionWithProbabilities pairs a Region with its interval-valued transition
// probability vectors to every target (N regions plus the unsafe tail at
// index N). It is immutable: UpdateRegions builds new instances rather than
// mutating in place (spec §3 lifecycle note).
type RegionWithProbabilities struct {
	Region *Region
	Lower  []float64 // length N+1
	Upper  []float64 // length N+1
}

// NewRegionWithProbabilities validates 0 <= lower_i <= upper_i <= 1 and
// wraps the region and its probability vectors (spec §3 invariants; the
// column-sum invariants are checked once per full column by the caller in
// transprob, since they are a property of the whole vector, not of a single
// pair).
func NewRegionWithProbabilities(reg *Region, lower, upper []float64) (*RegionWithProbabilities, error) {
	if len(lower) != len(upper) {
		return nil, chk.Err("region: lower and upper length mismatch (%d vs %d)", len(lower), len(upper))
	}
	for i := range lower {
		if lower[i] < 0 || upper[i] > 1 || lower[i] > upper[i]+1e-9 {
			return nil, chk.Err("region: invalid probability bounds at index %d: lower=%g upper=%g", i, lower[i], upper[i])
		}
	}
	return &RegionWithProbabilities{Region: reg, Lower: lower, Upper: upper}, nil
}

// UpdateRegions rebuilds the slice of RegionWithProbabilities with sharpened
// (narrower) probability intervals, e.g. after a synthesis backend tightens
// bounds in place of the original box/global-solver estimate. It never
// mutates the inputs — each entry is reconstructed fresh (spec §3).
func UpdateRegions(original []*RegionWithProbabilities, newLower, newUpper [][]float64) ([]*RegionWithProbabilities, error) {
	if len(newLower) != len(original) || len(newUpper) != len(original) {
		return nil, chk.Err("region: UpdateRegions length mismatch")
	}
	out := make([]*RegionWithProbabilities, len(original))
	for j, r := range original {
		updated, err := NewRegionWithProbabilities(r.Region, newLower[j], newUpper[j])
		if err != nil {
			return nil, err
		}
		out[j] = updated
	}
	return out, nil
}

// Neighbors returns the indices i for which Upper[i] > 0, recovered from the
// sparse probability column rather than any separately stored adjacency
// (spec §9: "no cyclic references... neighbors are recovered from the
// sparse probability columns").
func (r *RegionWithProbabilities) Neighbors() []int {
	var out []int
	for i, u := range r.Upper {
		if u > 0 {
			out = append(out, i)
		}
	}
	return out
}
