package dynsys

import (
	"github.com/aria-systems-group/stochbarrier/geom"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// AffinePiece is one vertex of an uncertain affine map x' = A x + b.
type AffinePiece struct {
	A *mat.Dense
	B []float64
}

// UncertainPWA is the piecewise-affine system: a partition of the safe set
// into regions, each carrying a (possibly uncertain, multi-vertex) affine
// map, with shared additive Gaussian noise (spec §3 "Uncertain PWA system").
type UncertainPWA struct {
	Regions []*geom.Hyperrectangle
	Pieces  [][]AffinePiece // per-region list of (A,b) vertex dynamics
	Sigma   []float64
	Safe    *geom.Polytope
	dim     int
}

// NewUncertainPWA validates and constructs an UncertainPWA system. It checks
// the region/piece counts, that every region has at least one piece, and
// that sigma is positive. It does not check that the regions cover Safe or
// that their interiors are pairwise disjoint, and neither does the region
// package.
func NewUncertainPWA(regions []*geom.Hyperrectangle, pieces [][]AffinePiece, sigma []float64, safe *geom.Polytope) (*UncertainPWA, error) {
	if len(regions) != len(pieces) {
		return nil, chk.Err("uncertain PWA: got %d regions but %d piece lists", len(regions), len(pieces))
	}
	if len(regions) == 0 {
		return nil, chk.Err("uncertain PWA: no regions supplied")
	}
	dim := regions[0].Dim()
	for i, p := range pieces {
		if len(p) == 0 {
			return nil, chk.Err("uncertain PWA: region %d has no dynamics pieces", i)
		}
	}
	for i, s := range sigma {
		if s <= 0 {
			return nil, chk.Err("uncertain PWA: sigma[%d]=%g must be positive", i, s)
		}
	}
	return &UncertainPWA{Regions: regions, Pieces: pieces, Sigma: sigma, Safe: safe, dim: dim}, nil
}

func (s *UncertainPWA) Dimensionality() int     { return s.dim }
func (s *UncertainPWA) NoiseSigma() []float64   { return s.Sigma }
func (s *UncertainPWA) SafeSet() *geom.Polytope { return s.Safe }

// Post computes the union of the images of X under every uncertain affine
// piece registered for source region regionIdx, returned as the V-polytope
// of the combined (convex-hull) vertex set. Taking the hull of the union is
// a deliberate, documented over-approximation: the vertex-minimum lower
// bound and H-form upper bound computed over it remain valid bounds for the
// true (possibly non-convex) union image, just not necessarily the tightest
// ones a full per-piece decomposition would give.
func (s *UncertainPWA) Post(regionIdx int, x *geom.Polytope) (*geom.Polytope, *geom.Hyperrectangle, error) {
	if regionIdx < 0 || regionIdx >= len(s.Pieces) {
		return nil, nil, chk.Err("uncertain PWA: region index %d out of range", regionIdx)
	}
	var allVerts [][]float64
	for _, piece := range s.Pieces[regionIdx] {
		img, err := geom.AffineMap(piece.A, x, piece.B)
		if err != nil {
			return nil, nil, err
		}
		allVerts = append(allVerts, img.Vertices()...)
	}
	v, err := geom.NewVPolytope(allVerts)
	if err != nil {
		return nil, nil, err
	}
	return v, geom.BoxApproximation(v), nil
}
