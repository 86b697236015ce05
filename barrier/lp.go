package barrier

import (
	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// martingaleLP assembles the primal martingale LP of spec §4.4 into the
// standard equality form (min c^T x, A x = b, x >= 0) gonum's lp.Simplex
// solves, using shift-to-nonnegative variables (s_i = b_i - eps >= 0,
// e_j = beta^(j) - eps >= 0) and one slack variable per inequality.
//
// Variable layout:
//
//	s[0..N-1]            b_i - eps
//	e[0..N-1]            beta^(j) - eps
//	beta                 the global slack
//	eta                  aux variable for max_{i in InitialCells} b_i, shifted by eps
//	t[0..N-1]            martingale-constraint slacks
//	u[0..N-1]            beta^(j) <= beta slacks
//	w[0..N-1]            beta^(j) <= 1-eps slacks
//	v[0..k-1]            eta >= b_i (i in InitialCells) slacks
//
// toProbs is the "to" probability row used on the left of the martingale
// inequality (P̅ for the primal backend, a fixed interior choice p^(j) for
// the iterative backend's outer LP step); tailProbs is the corresponding
// unsafe-tail value per source column.
func martingaleLP(p Problem, toProbs [][]float64, tailProbs []float64) (c []float64, a *mat.Dense, bvec []float64, layout lpLayout, err error) {
	n := p.NumRegions
	if n == 0 {
		return nil, nil, nil, lpLayout{}, chk.Err("barrier: no regions")
	}
	eps := p.Eps
	if eps <= 0 {
		eps = 1e-6
	}
	k := len(p.InitialCells)

	l := lpLayout{n: n, k: k}
	l.sOff = 0
	l.eOff = n
	l.betaIdx = 2 * n
	l.etaIdx = 2*n + 1
	nVars := 2*n + 2
	l.tOff = nVars
	nVars += n
	l.uOff = nVars
	nVars += n
	l.wOff = nVars
	nVars += n
	l.vOff = nVars
	nVars += k

	hasObstacle := p.Obstacle >= 0 && p.Obstacle < n
	obstacleRows := 0
	if hasObstacle {
		obstacleRows = 1
	}
	nRows := obstacleRows + n + n + n + k
	dense := make([]float64, nRows*nVars)
	bvec = make([]float64, nRows)
	row := 0
	set := func(r, col int, val float64) { dense[r*nVars+col] = val }

	// obstacle pin: s[obstacle] = 1 - eps, so b_obstacle = s_obstacle + eps
	// comes out to exactly 1; skipped entirely when no obstacle is
	// configured (spec §8 scenario 1, which sets obstacle = the empty set).
	if hasObstacle {
		set(row, l.sOff+p.Obstacle, 1)
		bvec[row] = 1 - eps
		row++
	}

	// martingale constraints: sum_i toProbs[i][j] s_i - s_j - e_j + t_j = rhs_j
	for j := 0; j < n; j++ {
		sumP := 0.0
		for i := 0; i < n; i++ {
			set(row, l.sOff+i, dense[row*nVars+l.sOff+i]+toProbs[i][j])
			sumP += toProbs[i][j]
		}
		set(row, l.sOff+j, dense[row*nVars+l.sOff+j]-1)
		set(row, l.eOff+j, -1)
		set(row, l.tOff+j, 1)
		bvec[row] = -tailProbs[j] - eps*(sumP-2)
		row++
	}

	// beta^(j) <= beta: e_j - beta + u_j = -eps
	for j := 0; j < n; j++ {
		set(row, l.eOff+j, 1)
		set(row, l.betaIdx, -1)
		set(row, l.uOff+j, 1)
		bvec[row] = -eps
		row++
	}

	// beta^(j) <= 1-eps: e_j + w_j = 1-2*eps
	for j := 0; j < n; j++ {
		set(row, l.eOff+j, 1)
		set(row, l.wOff+j, 1)
		bvec[row] = 1 - 2*eps
		row++
	}

	// eta >= b_i for i in InitialCells: s_i - eta + v_idx = 0
	for idx, i := range p.InitialCells {
		set(row, l.sOff+i, 1)
		set(row, l.etaIdx, -1)
		set(row, l.vOff+idx, 1)
		bvec[row] = 0
		row++
	}

	c = make([]float64, nVars)
	c[l.etaIdx] = 1
	c[l.betaIdx] = float64(horizonOrDefault(p.TimeHorizon))

	a = mat.NewDense(nRows, nVars, dense)
	return c, a, bvec, l, nil
}

// lpLayout records where each named block of variables lives in the
// standard-form vector so decodeSolution can read the result back out.
type lpLayout struct {
	n, k                          int
	sOff, eOff, betaIdx, etaIdx   int
	tOff, uOff, wOff, vOff        int
}

func decodeSolution(x []float64, l lpLayout, eps float64, horizon int) *Solution {
	n := l.n
	b := make([]float64, n)
	betaPerJ := make([]float64, n)
	for i := 0; i < n; i++ {
		b[i] = x[l.sOff+i] + eps
		betaPerJ[i] = x[l.eOff+i] + eps
	}
	beta := x[l.betaIdx]
	eta := x[l.etaIdx] + eps
	return &Solution{
		B:         b,
		Beta:      beta,
		BetaPerJ:  betaPerJ,
		Eta:       eta,
		Objective: eta + float64(horizon)*beta,
	}
}

// solveLP is the single call point wrapping gonum/optimize/convex/lp.Simplex
// used by every barrier backend (spec §9's "single dispatch point" idiom
// applied to LP solving, grounded the same way as transprob's
// UpperBoundMethod.MaxOverPolytope).
func solveLP(c []float64, a *mat.Dense, b []float64) (float64, []float64, error) {
	optF, optX, err := lp.Simplex(c, a, b, 1e-8, nil)
	if err != nil {
		return 0, nil, chk.Err("barrier: LP solve failed: %v", err)
	}
	return optF, optX, nil
}
