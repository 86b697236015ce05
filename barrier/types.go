// Package barrier implements piecewise-constant stochastic barrier
// synthesis: the primal LP (constant), the dual LP (dual_constant), the
// Frank-Wolfe/gradient iterative algorithm, and post-beta refinement (spec
// §4.4-§4.7), behind one pluggable Synthesizer registry grounded on gofem's
// ele/factory.go allocator-map idiom.
package barrier

// Problem bundles everything a synthesis backend needs: the transition
// probability bounds (to x from, shape (N+1) x N, with row N the unsafe
// tail), the obstacle and initial region indices, the time horizon, and the
// epsilon floor for decision variables (spec §4.4, §6 configuration).
type Problem struct {
	NumRegions   int
	Lower        [][]float64 // (N+1) x N: Lower[i][j]
	Upper        [][]float64 // (N+1) x N: Upper[i][j]
	Obstacle     int
	InitialCells []int // region indices contained in the initial set (spec §4.4)
	TimeHorizon  int   // N in eta + N*beta (default 1, spec §6)
	Eps          float64
}

// Solution is the output every backend produces: the barrier vector, the
// global slack beta, the per-region slacks, and the objective value
// eta + TimeHorizon*beta (spec §4.4 contract).
type Solution struct {
	B         []float64 // length NumRegions
	Beta      float64
	BetaPerJ  []float64 // length NumRegions
	Eta       float64
	Objective float64

	// DualObjective is populated only by DualSynthesizer, as the
	// cross-check value spec §4.5 requires primal and dual to agree on.
	// Zero (and meaningless) for every other backend.
	DualObjective float64
}

// Synthesizer is the common contract every barrier-algorithm backend
// satisfies (spec §4.4-§4.6, §9 "SOS backend... same trait").
type Synthesizer interface {
	Synthesize(p Problem) (*Solution, error)
}
