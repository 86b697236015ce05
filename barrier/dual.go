package barrier

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// DualSynthesizer solves the dual of the same standard-form tableau the
// primal ConstantSynthesizer builds and uses the resulting objective value
// as the cross-check spec §4.5 requires ("both primal and dual must return
// the same objective value to within a tolerance"). The dual of
//
//	min c^T x  s.t.  A x = b, x >= 0
//
// is
//
//	max b^T y  s.t.  A^T y <= c   (y free)
//
// which carries no b/beta variables of its own, so the (b, beta) solution
// returned is the primal's — that solution is exactly what the dual
// multipliers certify as optimal by strong duality. DualObjective is set to
// the dual optimal value for the caller to compare against Objective.
type DualSynthesizer struct {
	// Tolerance is the maximum allowed |primal - dual| objective gap
	// before this backend reports an error (spec §8). Defaults to 1e-4.
	Tolerance float64
}

func (d DualSynthesizer) Synthesize(p Problem) (*Solution, error) {
	n := p.NumRegions
	toProbs := make([][]float64, n)
	for i := 0; i < n; i++ {
		toProbs[i] = p.Upper[i]
	}
	tail := p.Upper[n]

	c, a, b, layout, err := martingaleLP(p, toProbs, tail)
	if err != nil {
		return nil, err
	}
	_, x, err := solveLP(c, a, b)
	if err != nil {
		return nil, chk.Err("dual_constant_barrier: primal solve failed: %v", err)
	}
	sol := decodeSolution(x, layout, epsOrDefault(p.Eps), horizonOrDefault(p.TimeHorizon))

	dualObj, err := solveDual(c, a, b)
	if err != nil {
		return nil, chk.Err("dual_constant_barrier: dual solve failed: %v", err)
	}
	sol.DualObjective = dualObj

	tol := d.Tolerance
	if tol <= 0 {
		tol = 1e-4
	}
	if math.Abs(sol.Objective-dualObj) > tol {
		return nil, chk.Err("dual_constant_barrier: primal/dual objective mismatch: primal=%g dual=%g (tol=%g)", sol.Objective, dualObj, tol)
	}
	return sol, nil
}

// solveDual builds and solves max b^T y s.t. A^T y <= c (y free) as a
// standard-form minimization: split y = y+ - y-, add one slack per dual
// constraint row (one per primal variable), and minimize -b^T y.
func solveDual(c []float64, a *mat.Dense, b []float64) (float64, error) {
	mRows, nVars := a.Dims()

	// dual decision vars: yPlus[0..mRows-1], yMinus[0..mRows-1], slack[0..nVars-1]
	dVars := 2*mRows + nVars
	dRows := nVars
	dense := make([]float64, dRows*dVars)
	rhs := make([]float64, dRows)

	for v := 0; v < nVars; v++ {
		for r := 0; r < mRows; r++ {
			coeff := a.At(r, v)
			dense[v*dVars+r] = coeff          // yPlus_r
			dense[v*dVars+mRows+r] = -coeff   // yMinus_r
		}
		dense[v*dVars+2*mRows+v] = 1 // slack_v
		rhs[v] = c[v]
	}

	dc := make([]float64, dVars)
	for r := 0; r < mRows; r++ {
		dc[r] = -b[r]
		dc[mRows+r] = b[r]
	}

	dA := mat.NewDense(dRows, dVars, dense)
	optF, _, err := lp.Simplex(dc, dA, rhs, 1e-8, nil)
	if err != nil {
		return 0, err
	}
	return -optF, nil // max b^T y = -(min -b^T y)
}
