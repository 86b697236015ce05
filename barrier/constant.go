package barrier

import "github.com/cpmech/gosl/chk"

// ConstantSynthesizer is the primal LP backend (spec §4.4): fixes the
// per-source transition probabilities at their upper bound P̅ and solves
// one LP for (b, beta).
type ConstantSynthesizer struct{}

func (ConstantSynthesizer) Synthesize(p Problem) (*Solution, error) {
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
		return nil, chk.Err("constant_barrier: %v", err)
	}
	sol := decodeSolution(x, layout, epsOrDefault(p.Eps), horizonOrDefault(p.TimeHorizon))
	return sol, nil
}

func epsOrDefault(eps float64) float64 {
	if eps <= 0 {
		return 1e-6
	}
	return eps
}

func horizonOrDefault(n int) int {
	if n <= 0 {
		return 1
	}
	return n
}
