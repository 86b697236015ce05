package geom

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"gonum.org/v1/gonum/mat"
)

// Polytope is a bounded convex set in R^m, carried in whichever
// representation it was produced in. A polytope built from an affine image
// of vertices has only V; one parsed from a dataset's (A, b) pair has only
// H. Vertices / HalfSpaces convert on demand and cache the result.
type Polytope struct {
	dim int

	v [][]float64 // vertex (V) representation, one vertex per row

	a [][]float64 // H-representation: A x <= b
	b []float64
}

// NewVPolytope builds a polytope from an explicit vertex list.
func NewVPolytope(vertices [][]float64) (*Polytope, error) {
	if len(vertices) == 0 {
		return nil, chk.Err("polytope: empty vertex list")
	}
	dim := len(vertices[0])
	for _, v := range vertices {
		if len(v) != dim {
			return nil, chk.Err("polytope: inconsistent vertex dimension")
		}
	}
	return &Polytope{dim: dim, v: vertices}, nil
}

// NewHPolytope builds a polytope from a half-space system A x <= b.
func NewHPolytope(a [][]float64, b []float64) (*Polytope, error) {
	if len(a) != len(b) {
		return nil, chk.Err("polytope: A has %d rows but b has %d entries", len(a), len(b))
	}
	if len(a) == 0 {
		return nil, chk.Err("polytope: empty half-space system")
	}
	return &Polytope{dim: len(a[0]), a: a, b: b}, nil
}

// Dim returns the ambient dimension.
func (p *Polytope) Dim() int { return p.dim }

// HasV reports whether the V-representation is already available.
func (p *Polytope) HasV() bool { return p.v != nil }

// HasH reports whether the H-representation is already available.
func (p *Polytope) HasH() bool { return p.a != nil }

// Vertices returns the V-representation, computing it from H via
// VerticesList if necessary.
func (p *Polytope) Vertices() [][]float64 {
	if p.v == nil {
		p.v = VerticesList(p.a, p.b)
	}
	return p.v
}

// HalfSpaces returns the (A, b) H-representation. When only the
// V-representation is present it returns the 2m facets of
// BoxApproximation(p): exact when P is an axis-aligned box, otherwise a
// box containing P. No facet enumeration of a non-box V polytope is done;
// callers needing an exact H-form construct it directly with NewHPolytope.
func (p *Polytope) HalfSpaces() ([][]float64, []float64) {
	if p.a == nil {
		box := BoxApproximation(p)
		m := box.Dim()
		a := make([][]float64, 0, 2*m)
		b := make([]float64, 0, 2*m)
		for i := 0; i < m; i++ {
			row := make([]float64, m)
			row[i] = 1
			a = append(a, row)
			b = append(b, box.High[i])
			row2 := make([]float64, m)
			row2[i] = -1
			a = append(a, row2)
			b = append(b, -box.Low[i])
		}
		p.a, p.b = a, b
	}
	return p.a, p.b
}

// BoxApproximation returns the smallest axis-aligned hyperrectangle
// containing P, exact for V-polytopes via per-coordinate min/max over
// vertices (spec §4.1).
func BoxApproximation(p *Polytope) *Hyperrectangle {
	verts := p.Vertices()
	dim := p.Dim()
	low := make([]float64, dim)
	high := make([]float64, dim)
	for i := 0; i < dim; i++ {
		low[i] = math.Inf(1)
		high[i] = math.Inf(-1)
	}
	for _, v := range verts {
		for i := 0; i < dim; i++ {
			low[i] = math.Min(low[i], v[i])
			high[i] = math.Max(high[i], v[i])
		}
	}
	return &Hyperrectangle{Low: low, High: high}
}

// AffineMap computes A·x + b for every vertex of a V-polytope X, returning
// the image as a new V-polytope. If A is singular the output dimension is
// preserved but the image may collapse onto a lower-dimensional affine
// subspace — callers must not require the result to be full-dimensional.
func AffineMap(a *mat.Dense, x *Polytope, b []float64) (*Polytope, error) {
	ar, ac := a.Dims()
	if ac != x.Dim() {
		return nil, chk.Err("affine map: A has %d columns but X has dimension %d", ac, x.Dim())
	}
	if len(b) != ar {
		return nil, chk.Err("affine map: A has %d rows but b has %d entries", ar, len(b))
	}
	verts := x.Vertices()
	out := make([][]float64, len(verts))
	xv := mat.NewVecDense(ac, nil)
	yv := mat.NewVecDense(ar, nil)
	for k, v := range verts {
		for i := 0; i < ac; i++ {
			xv.SetVec(i, v[i])
		}
		yv.MulVec(a, xv)
		img := make([]float64, ar)
		for i := 0; i < ar; i++ {
			img[i] = yv.AtVec(i) + b[i]
		}
		out[k] = img
	}
	return NewVPolytope(out)
}

// HyperrectToVPolytope converts a hyperrectangle to its vertex polytope.
func HyperrectToVPolytope(h *Hyperrectangle) *Polytope {
	return &Polytope{dim: h.Dim(), v: h.Vertices()}
}

// IsDisjoint reports whether a hyperrectangle and a polytope cannot
// possibly intersect. This is a sufficient separating-axis test only: it
// may answer "false" (may intersect) when they are in fact disjoint, but it
// never answers "true" when they do intersect. That one-sidedness is
// correct for its only use, pruning candidate regions in transprob (spec
// §4.1).
func IsDisjoint(h *Hyperrectangle, p *Polytope) bool {
	pbox := BoxApproximation(p)
	return IsDisjointBoxes(h, pbox)
}

// VerticesList enumerates the vertices of the H-polytope A x <= b by
// intersecting every combination of m tight constraints and keeping the
// feasible, non-duplicate points (a double-description-style enumeration).
// Correctness is prioritized over numerical robustness per spec §4.1: for
// the small region counts and dimensions this system targets (single- and
// low-digit-dimensional hyperrectangular partitions and their affine
// images), combinatorial enumeration is fast enough and simple to verify.
func VerticesList(a [][]float64, b []float64) [][]float64 {
	m := len(a[0])
	n := len(a)
	if n < m {
		return nil
	}
	const tol = 1e-9
	var verts [][]float64
	idx := make([]int, m)
	var combinations func(start, depth int)
	combinations = func(start, depth int) {
		if depth == m {
			rows := make([]float64, m*m)
			rhs := make([]float64, m)
			for r := 0; r < m; r++ {
				copy(rows[r*m:r*m+m], a[idx[r]])
				rhs[r] = b[idx[r]]
			}
			am := mat.NewDense(m, m, rows)
			var lu mat.LU
			lu.Factorize(am)
			if lu.Cond() > 1e12 {
				return
			}
			var xv mat.VecDense
			bv := mat.NewVecDense(m, rhs)
			err := lu.SolveVecTo(&xv, false, bv)
			if err != nil {
				return
			}
			x := make([]float64, m)
			for i := 0; i < m; i++ {
				x[i] = xv.AtVec(i)
			}
			// feasibility: all constraints satisfied within tolerance
			for r := 0; r < n; r++ {
				dot := 0.0
				for c := 0; c < m; c++ {
					dot += a[r][c] * x[c]
				}
				if dot > b[r]+tol {
					return
				}
			}
			// de-duplicate
			for _, v := range verts {
				same := true
				for c := 0; c < m; c++ {
					if math.Abs(v[c]-x[c]) > tol {
						same = false
						break
					}
				}
				if same {
					return
				}
			}
			verts = append(verts, x)
			return
		}
		for i := start; i < n; i++ {
			idx[depth] = i
			combinations(i+1, depth+1)
		}
	}
	combinations(0, 0)
	return verts
}

// L2ClosestPoint solves min ||x - p||^2 s.t. A x <= b via a simple
// active-set projection: start from p itself, then iteratively project
// onto the most-violated half-space and repeat,
// which converges for the box-like polytopes this system produces (spec
// §4.1). Each projection step is the standard row-onto-hyperplane least-
// squares correction x -= ((a·x - b) / (a·a)) a, carried out with
// gonum/mat vectors the same way AffineMap uses mat for its per-vertex
// linear algebra. Returns the best point found.
func L2ClosestPoint(poly *Polytope, p []float64) []float64 {
	a, b := poly.HalfSpaces()
	m := len(p)
	xv := mat.NewVecDense(m, append([]float64{}, p...))
	rows := make([]*mat.VecDense, len(a))
	for r := range a {
		rows[r] = mat.NewVecDense(m, a[r])
	}
	for iter := 0; iter < 200; iter++ {
		worst := -1
		worstViol := 1e-9
		for r, row := range rows {
			viol := mat.Dot(row, xv) - b[r]
			if viol > worstViol {
				worstViol = viol
				worst = r
			}
		}
		if worst < 0 {
			break
		}
		row := rows[worst]
		nrm := mat.Dot(row, row)
		if nrm < 1e-15 {
			break
		}
		lambda := (mat.Dot(row, xv) - b[worst]) / nrm
		var correction mat.VecDense
		correction.ScaleVec(lambda, row)
		xv.SubVec(xv, &correction)
	}
	x := make([]float64, m)
	for c := 0; c < m; c++ {
		x[c] = xv.AtVec(c)
	}
	return x
}
