package dynsys

import (
	"github.com/aria-systems-group/stochbarrier/geom"
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// LinearGaussian is the single-(A,b) linear system with additive Gaussian
// noise: x' = A x + b + w, w ~ N(0, diag(sigma^2)) (spec §3 "Linear system").
type LinearGaussian struct {
	A       *mat.Dense
	B       []float64
	Sigma   []float64
	Safe    *geom.Polytope
	dim     int
}

// NewLinearGaussian validates and constructs a LinearGaussian system.
func NewLinearGaussian(a *mat.Dense, b, sigma []float64, safe *geom.Polytope) (*LinearGaussian, error) {
	ar, ac := a.Dims()
	if ar != ac {
		return nil, chk.Err("linear system: A must be square, got %dx%d", ar, ac)
	}
	if len(b) != ar || len(sigma) != ar {
		return nil, chk.Err("linear system: b and sigma must have length %d", ar)
	}
	for i, s := range sigma {
		if s <= 0 {
			return nil, chk.Err("linear system: sigma[%d]=%g must be positive", i, s)
		}
	}
	return &LinearGaussian{A: a, B: b, Sigma: sigma, Safe: safe, dim: ar}, nil
}

func (s *LinearGaussian) Dimensionality() int    { return s.dim }
func (s *LinearGaussian) NoiseSigma() []float64  { return s.Sigma }
func (s *LinearGaussian) SafeSet() *geom.Polytope { return s.Safe }

// Post computes Y = A X + b, the same map for every source region.
func (s *LinearGaussian) Post(regionIdx int, x *geom.Polytope) (*geom.Polytope, *geom.Hyperrectangle, error) {
	v, err := geom.AffineMap(s.A, x, s.B)
	if err != nil {
		return nil, nil, err
	}
	return v, geom.BoxApproximation(v), nil
}
