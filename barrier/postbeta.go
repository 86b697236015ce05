package barrier

import (
	"math"
	"sync"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// PostBetaRefine re-optimizes beta per region given a fixed barrier b, by
// letting each source region's transition probabilities slide within their
// interval bounds (spec §4.7). It is embarrassingly parallel across source
// regions, mirroring transprob's goroutine-per-column sweep (spec §5).
func PostBetaRefine(p Problem, b []float64) ([]float64, float64, error) {
	n := p.NumRegions
	if len(b) != n {
		return nil, 0, chk.Err("post_compute_beta: barrier vector has length %d, expected %d", len(b), n)
	}
	eps := epsOrDefault(p.Eps)

	betas := make([]float64, n)
	errs := make([]error, n)
	var wg sync.WaitGroup
	for j := 0; j < n; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			betas[j], errs[j] = postBetaColumn(p, b, j, eps)
		}(j)
	}
	wg.Wait()
	for _, e := range errs {
		if e != nil {
			return nil, 0, e
		}
	}

	updated := betas[0]
	for _, beta := range betas {
		if beta > updated {
			updated = beta
		}
	}
	return betas, updated, nil
}

func postBetaColumn(p Problem, b []float64, j int, eps float64) (float64, error) {
	n := p.NumRegions

	lowerI := make([]float64, n)
	upperI := make([]float64, n)
	sumLowerI := 0.0
	sumLowerB := 0.0
	for i := 0; i < n; i++ {
		lowerI[i] = p.Lower[i][j]
		upperI[i] = p.Upper[i][j]
		sumLowerI += lowerI[i]
		sumLowerB += b[i] * lowerI[i]
	}
	lowerTail := p.Lower[n][j]
	upperTail := p.Upper[n][j]
	if upperTail < lowerTail {
		// accuracy-threshold fix-up for an interval inverted by numerical
		// noise (spec §4.7)
		if lowerTail-upperTail < 1e-6 {
			upperTail = lowerTail
		} else {
			return 0, chk.Err("post_compute_beta: unsafe-tail interval inverted for column %d: [%g, %g]", j, lowerTail, upperTail)
		}
	}

	nVars := 3*n + 3
	pOff, puIdx, betaIdx := 0, n, n+1
	s1Off := n + 2
	s2Idx := 2*n + 2

	nRows := n + 3
	dense := make([]float64, nRows*nVars)
	rhs := make([]float64, nRows)
	set := func(r, col int, v float64) { dense[r*nVars+col] = v }
	row := 0

	for i := 0; i < n; i++ {
		set(row, pOff+i, 1)
		set(row, s1Off+i, 1)
		rhs[row] = upperI[i] - lowerI[i]
		row++
	}

	set(row, puIdx, 1)
	set(row, s2Idx, 1)
	rhs[row] = math.Max(0, upperTail-lowerTail)
	row++

	for i := 0; i < n; i++ {
		set(row, pOff+i, 1)
	}
	set(row, puIdx, 1)
	rhs[row] = 1 - sumLowerI - lowerTail
	row++

	for i := 0; i < n; i++ {
		set(row, pOff+i, b[i])
	}
	set(row, puIdx, 1)
	set(row, betaIdx, -1)
	rhs[row] = b[j] - sumLowerB - lowerTail
	row++

	c := make([]float64, nVars)
	c[betaIdx] = -1 // maximize beta == minimize -beta

	a := mat.NewDense(nRows, nVars, dense)
	_, x, err := solveLP(c, a, rhs)
	if err != nil {
		return 0, chk.Err("post_compute_beta: column %d: %v", j, err)
	}
	beta := x[betaIdx]
	if beta < eps {
		beta = eps
	}
	if beta > 1-eps {
		beta = 1 - eps
	}
	return beta, nil
}
