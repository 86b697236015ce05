// Package dynsys implements the system model: a tagged variant over linear
// Gaussian and uncertain piecewise-affine Gaussian dynamics (spec §3, §9
// "Dynamic dispatch on system kind"), grounded on gofem's Model-interface
// + registry idiom (mconduct.Model / mconduct.New).
package dynsys

import "github.com/aria-systems-group/stochbarrier/geom"

// System is the dynamics interface both system kinds satisfy. Post returns
// the post-image of region Xj under the dynamics map(s) registered for
// source region index j, in V- and box form together; the H form is derived
// on demand through geom.Polytope.HalfSpaces.
type System interface {
	Dimensionality() int
	NoiseSigma() []float64
	// Post returns the image of X under the dynamics associated with
	// source region regionIdx (the affine map for linear systems is the
	// same for every region; for PWA systems it is the per-region set of
	// uncertain affine pieces, unioned).
	Post(regionIdx int, x *geom.Polytope) (v *geom.Polytope, box *geom.Hyperrectangle, err error)
	// SafeSet returns the overall safe set X_s used for the unsafe tail
	// column (spec §4.3 step 4).
	SafeSet() *geom.Polytope
}
