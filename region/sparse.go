package region

import (
	"github.com/cpmech/gosl/la"
)

// SparseBuilder assembles the (N+1) x N sparse probability matrices P̲, P̅
// column-by-column, one column per source region, exactly the way
// fem/domain.go assembles its Jacobian: an la.Triplet sized up-front with a
// generous nonzero budget, filled with Put, then compressed once with
// ToMatrix (spec §9 "Sparse probability matrices... column-major CSC with
// per-column build").
type SparseBuilder struct {
	nTargetsPlusTail int
	nSources         int
	lower            la.Triplet
	upper            la.Triplet
}

// NewSparseBuilder allocates a builder for an (n+1) x n pair of matrices,
// budgeting maxNnzPerCol nonzeros per column (the sparsity pre-filter keeps
// this small in practice).
func NewSparseBuilder(n, maxNnzPerCol int) *SparseBuilder {
	b := &SparseBuilder{nTargetsPlusTail: n + 1, nSources: n}
	b.lower.Init(n+1, n, maxNnzPerCol*n)
	b.upper.Init(n+1, n, maxNnzPerCol*n)
	return b
}

// PutColumn writes the (target index, value) pairs for lower and upper
// bounds of source column j, plus the unsafe-tail row at index n.
func (b *SparseBuilder) PutColumn(j int, targets []int, lower, upper []float64, tailLower, tailUpper float64) {
	for k, i := range targets {
		b.lower.Put(i, j, lower[k])
		b.upper.Put(i, j, upper[k])
	}
	b.lower.Put(b.nTargetsPlusTail-1, j, tailLower)
	b.upper.Put(b.nTargetsPlusTail-1, j, tailUpper)
}

// Build compresses both triplets into CSC matrices.
func (b *SparseBuilder) Build() (lower, upper *la.CCMatrix) {
	return b.lower.ToMatrix(nil), b.upper.ToMatrix(nil)
}
