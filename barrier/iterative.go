package barrier

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
)

// IterativeSynthesizer alternates an outer LP solve (fixing a feasible
// interior probability choice p^(j) per source region) with an inner
// "worst-case p" step that greedily re-chooses p^(j) to maximize the
// martingale violation against the current barrier (spec §4.6). GradientOnly
// selects the gradient_descent configuration alias (spec §6 enumerates it
// separately from iterative/frank_wolfe): the inner step still uses the
// same ivi_prob! greedy knapsack, but its result is blended into the current
// probability choice with weight StepDamping instead of replacing it
// outright; the LP solution itself is replaced on every outer iteration.
type IterativeSynthesizer struct {
	MaxOuterIters int
	GradientOnly  bool
	StepDamping   float64 // used only when GradientOnly, default 0.5
}

func (it IterativeSynthesizer) Synthesize(p Problem) (*Solution, error) {
	n := p.NumRegions
	maxIters := it.MaxOuterIters
	if maxIters <= 0 {
		maxIters = 50
	}
	damping := it.StepDamping
	if damping <= 0 {
		damping = 0.5
	}

	// initial feasible p: lower bound plus the remaining mass, filled
	// greedily into the slots' upper-bound headroom by iviProb with all
	// values equal (the fill order among slots is not defined).
	toProbs := make([][]float64, n)
	for i := 0; i < n; i++ {
		toProbs[i] = make([]float64, n)
	}
	tail := make([]float64, n)
	for j := 0; j < n; j++ {
		lowerCol := make([]float64, n+1)
		upperCol := make([]float64, n+1)
		for i := 0; i < n; i++ {
			lowerCol[i] = p.Lower[i][j]
			upperCol[i] = p.Upper[i][j]
		}
		lowerCol[n] = p.Lower[n][j]
		upperCol[n] = p.Upper[n][j]
		values := make([]float64, n+1) // flat initial preference: no slot is favoured
		pCol, err := iviProb(values, lowerCol, upperCol)
		if err != nil {
			return nil, chk.Err("iterative_barrier: initial feasible point failed for column %d: %v", j, err)
		}
		for i := 0; i < n; i++ {
			toProbs[i][j] = pCol[i]
		}
		tail[j] = pCol[n]
	}

	var best *Solution
	bestBeta := math.Inf(1)

	for iter := 0; iter < maxIters; iter++ {
		c, a, b, layout, err := martingaleLP(p, toProbs, tail)
		if err != nil {
			return nil, err
		}
		_, x, err := solveLP(c, a, b)
		if err != nil {
			return nil, chk.Err("iterative_barrier: outer LP failed at iteration %d: %v", iter, err)
		}
		sol := decodeSolution(x, layout, epsOrDefault(p.Eps), horizonOrDefault(p.TimeHorizon))

		if sol.Beta >= bestBeta-1e-12 && iter > 0 {
			break
		}
		bestBeta = sol.Beta
		best = sol

		// inner step: worst-case p per source region, given the current b.
		values := make([]float64, n+1)
		copy(values, sol.B)
		values[n] = 1 // the unsafe tail behaves like an obstacle with b=1
		for j := 0; j < n; j++ {
			lowerCol := make([]float64, n+1)
			upperCol := make([]float64, n+1)
			for i := 0; i < n; i++ {
				lowerCol[i] = p.Lower[i][j]
				upperCol[i] = p.Upper[i][j]
			}
			lowerCol[n] = p.Lower[n][j]
			upperCol[n] = p.Upper[n][j]
			pCol, err := iviProb(values, lowerCol, upperCol)
			if err != nil {
				return nil, chk.Err("iterative_barrier: ivi_prob failed for column %d: %v", j, err)
			}
			if it.GradientOnly {
				for i := 0; i < n; i++ {
					toProbs[i][j] = (1-damping)*toProbs[i][j] + damping*pCol[i]
				}
				tail[j] = (1-damping)*tail[j] + damping*pCol[n]
			} else {
				for i := 0; i < n; i++ {
					toProbs[i][j] = pCol[i]
				}
				tail[j] = pCol[n]
			}
		}
	}
	if best == nil {
		return nil, chk.Err("iterative_barrier: no feasible solution found")
	}
	return best, nil
}

// iviProb is the ivi_prob! knapsack-like routine of spec §4.6: choose
// p_i in [lower_i, upper_i] maximizing sum p_i*values_i subject to
// sum p_i = 1, by greedily filling the highest-value slots up to their
// upper bound first.
func iviProb(values, lower, upper []float64) ([]float64, error) {
	n := len(values)
	p := make([]float64, n)
	copy(p, lower)
	sumLower := 0.0
	for _, l := range lower {
		sumLower += l
	}
	remaining := 1 - sumLower
	if remaining < -1e-9 {
		return nil, chk.Err("ivi_prob: lower bounds already sum to %g > 1", sumLower)
	}
	if remaining < 0 {
		remaining = 0
	}

	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool { return values[order[a]] > values[order[b]] })

	for _, i := range order {
		headroom := upper[i] - lower[i]
		if headroom <= 0 {
			continue
		}
		take := math.Min(headroom, remaining)
		p[i] += take
		remaining -= take
		if remaining <= 1e-12 {
			break
		}
	}
	if remaining > 1e-6 {
		return nil, chk.Err("ivi_prob: upper bounds too tight to reach sum=1 (missing %g)", remaining)
	}
	return p, nil
}
