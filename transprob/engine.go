package transprob

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/aria-systems-group/stochbarrier/dynsys"
	"github.com/aria-systems-group/stochbarrier/gaussker"
	"github.com/aria-systems-group/stochbarrier/geom"
	"github.com/aria-systems-group/stochbarrier/region"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Options configures the transition-probability engine (spec §6
// "Configuration").
type Options struct {
	UpperBound  UpperBoundMethod
	SparsityEps float64
	Progress    bool // emit an io.Pf progress line as columns complete
}

// DefaultOptions matches the spec §6 default configuration.
func DefaultOptions() Options {
	return Options{
		UpperBound:  GlobalSolverMethod{},
		SparsityEps: 1e-12,
	}
}

// Result holds the lower and upper probability matrices, each of shape
// (N+1) x N with the unsafe tail as row N.
type Result struct {
	Lower *SparseCC
	Upper *SparseCC
}

// SparseCC wraps the dense view of an la.CCMatrix column-assembly result,
// so callers only need Get without reaching into the gosl type directly.
type SparseCC struct {
	NRows, NCols int
	dense        *la.Matrix
}

func newSparseCC(nRows, nCols int, cc *la.CCMatrix) *SparseCC {
	return &SparseCC{NRows: nRows, NCols: nCols, dense: cc.ToDense()}
}

func (s *SparseCC) Get(i, j int) float64 { return s.dense.Get(i, j) }

// columnResult is one source region's worth of output: the sparsity
// pre-filter's surviving target indices plus their bound values, so the
// goroutine computing it never touches shared builder state (la.Triplet.Put
// is not safe for concurrent use, the same constraint fem/domain.go works
// under when it assembles Kb one element at a time on a single goroutine).
type columnResult struct {
	targets              []int
	lowerVals, upperVals []float64
	tailLower, tailUpper float64
}

// TransitionProbabilities computes, for every ordered pair of regions, the
// interval-valued transition-probability bounds, plus the unsafe-tail row
// (spec §4.3). The sweep over source regions j runs in parallel, one
// goroutine per column, matching the teacher's goroutine-per-unit-of-work
// test idiom (spec §5); the sparse CSC assembly itself happens serially
// afterward via region.SparseBuilder, the same Triplet/Put/ToMatrix idiom
// fem/domain.go uses for Jacobian assembly.
func TransitionProbabilities(sys dynsys.System, regions []*region.Region, opts Options) (*Result, error) {
	n := len(regions)
	if n == 0 {
		return nil, chk.Err("transprob: no regions supplied")
	}

	cols := make([]*columnResult, n)

	var progressCount int64
	var wg sync.WaitGroup
	errCh := make(chan error, n)

	for j := 0; j < n; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			col, err := computeColumn(sys, regions, j, opts)
			if err != nil {
				errCh <- err
				return
			}
			cols[j] = col
			if opts.Progress {
				c := atomic.AddInt64(&progressCount, 1)
				io.Pf("transprob: column %d/%d done\n", c, n)
			}
		}(j)
	}
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			return nil, err
		}
	}

	builder := region.NewSparseBuilder(n, n+1)
	for j, col := range cols {
		builder.PutColumn(j, col.targets, col.lowerVals, col.upperVals, col.tailLower, col.tailUpper)
	}
	lowerCC, upperCC := builder.Build()

	return &Result{
		Lower: newSparseCC(n+1, n, lowerCC),
		Upper: newSparseCC(n+1, n, upperCC),
	}, nil
}

func computeColumn(sys dynsys.System, regions []*region.Region, j int, opts Options) (*columnResult, error) {
	n := len(regions)
	sigma := sys.NoiseSigma()

	xj := geom.HyperrectToVPolytope(regions[j].Box)
	yV, yBox, err := sys.Post(j, xj)
	if err != nil {
		return nil, chk.Err("transprob: post-image of region %d failed: %v", j, err)
	}

	// sparsity pre-filter (spec §4.3 step 2)
	nSigma := sparsityRadius(opts.SparsityEps)
	radius := make([]float64, len(sigma))
	for i, s := range sigma {
		radius[i] = s * nSigma
	}
	searchBox := yBox.MinkowskiSumBox(radius)

	var candidates []int
	for i := 0; i < n; i++ {
		if !geom.IsDisjointBoxes(searchBox, regions[i].Box) {
			candidates = append(candidates, i)
		}
	}

	lowerVals := make([]float64, len(candidates))
	upperVals := make([]float64, len(candidates))
	sumLower := 0.0
	for k, i := range candidates {
		lo, hi := regions[i].Box.Low, regions[i].Box.High
		lb, err := lowerBound(yV, lo, hi, sigma)
		if err != nil {
			return nil, err
		}
		ub, err := upperBound(yV, regions[i].Box, lo, hi, sigma, opts.UpperBound)
		if err != nil {
			return nil, err
		}
		if ub < lb {
			ub = lb
		}
		lowerVals[k] = lb
		upperVals[k] = ub
		sumLower += lb
	}

	// tail column (spec §4.3 step 4)
	safe := sys.SafeSet()
	safeBox := geom.BoxApproximation(safe)
	safeLB, err := lowerBound(yV, safeBox.Low, safeBox.High, sigma)
	if err != nil {
		return nil, err
	}
	safeUB, err := upperBound(yV, safeBox, safeBox.Low, safeBox.High, sigma, opts.UpperBound)
	if err != nil {
		return nil, err
	}
	if safeUB < safeLB {
		safeUB = safeLB
	}
	nPruned := n - len(candidates)
	tailLower := clip01(1 - safeUB)
	tailUpper := clip01(1 - safeLB + float64(nPruned)*opts.SparsityEps)

	// consistency enforcement (spec §4.3 step 5): upper_ij := min(upper_ij, (1-sum(lower_.j)) + lower_ij)
	sumLowerAll := sumLower + tailLower
	for k := range candidates {
		bound := (1 - sumLowerAll) + lowerVals[k]
		if upperVals[k] > bound {
			upperVals[k] = bound
		}
	}
	if bound := (1 - sumLowerAll) + tailLower; tailUpper > bound {
		tailUpper = bound
	}

	if tailUpper > 1+1e-6 {
		return nil, chk.Err("transprob: unsafe-tail upper bound %g exceeds 1+1e-6 for source region %d (invariant violation, spec §7)", tailUpper, j)
	}

	return &columnResult{
		targets:   candidates,
		lowerVals: lowerVals,
		upperVals: upperVals,
		tailLower: tailLower,
		tailUpper: tailUpper,
	}, nil
}

// lowerBound enumerates the vertices of the V-form image and returns the
// minimum of T there: correct because T is log-concave and attains its
// minimum over a polytope at a vertex (spec §4.3 step 3, §4.2).
func lowerBound(y *geom.Polytope, low, high, sigma []float64) (float64, error) {
	verts := y.Vertices()
	if len(verts) == 0 {
		return 0, chk.Err("transprob: image polytope has no vertices")
	}
	best := math.Inf(1)
	for _, v := range verts {
		t := gaussker.T(v, low, high, sigma)
		if t < best {
			best = t
		}
	}
	return best, nil
}

// upperBound returns T(center) directly when center(target) lies in Y,
// otherwise dispatches to the configured UpperBoundMethod (spec §4.3 step 3).
func upperBound(y *geom.Polytope, targetBox *geom.Hyperrectangle, low, high, sigma []float64, method UpperBoundMethod) (float64, error) {
	center := targetBox.Center()
	if polytopeContains(y, center) {
		return gaussker.T(center, low, high, sigma), nil
	}
	return method.MaxOverPolytope(y, low, high, sigma)
}

// polytopeContains checks p against the H-form of y (computed on demand from
// its bounding box if no explicit facets were supplied).
func polytopeContains(y *geom.Polytope, p []float64) bool {
	a, b := y.HalfSpaces()
	const tol = 1e-9
	for r := range a {
		dot := 0.0
		for c := range a[r] {
			dot += a[r][c] * p[c]
		}
		if dot > b[r]+tol {
			return false
		}
	}
	return true
}

func clip01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// sparsityRadius returns n_sigma = -Phi^-1(sparsityEps) (spec §4.3 step 2).
func sparsityRadius(sparsityEps float64) float64 {
	if sparsityEps <= 0 || sparsityEps >= 1 {
		return 0
	}
	// Phi^-1(p) = sqrt(2) * erfinv(2p - 1)
	phiInv := math.Sqrt2 * math.Erfinv(2*sparsityEps-1)
	return -phiInv
}
