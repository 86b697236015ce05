// Package dataset implements the tabular/array dataset I/O of spec §6:
// partitions, dense transition-probability matrices, a sparse
// (indices, values)-per-column alternative, and barrier output (plain text
// or dataset-format array). Grounded on gofem's inp (JSON simulation files,
// io.ReadFile/io.WriteFile) and out (result writing) package split — no
// NetCDF/MATLAB I/O, named only by interface per spec §1/§6.
package dataset

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/aria-systems-group/stochbarrier/geom"
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Partitions is the `partitions` input variable: shape (N, 2, m), each
// region's per-coordinate (low, high) (spec §6).
type Partitions struct {
	Regions [][2][]float64 `json:"regions"`
}

// ToHyperrectangles converts the dataset representation to geom types.
func (p Partitions) ToHyperrectangles() ([]*geom.Hyperrectangle, error) {
	out := make([]*geom.Hyperrectangle, len(p.Regions))
	for i, r := range p.Regions {
		h, err := geom.NewHyperrectangle(r[0], r[1])
		if err != nil {
			return nil, chk.Err("dataset: region %d: %v", i, err)
		}
		out[i] = h
	}
	return out, nil
}

// DenseMatrices is the `matrix_prob_lower`/`matrix_prob_upper` and
// `matrix_prob_unsafe_lower`/`matrix_prob_unsafe_upper` input variables,
// shape (N,N) indexed [to, from], plus the length-N unsafe vectors.
type DenseMatrices struct {
	Lower       [][]float64 `json:"matrix_prob_lower"`
	Upper       [][]float64 `json:"matrix_prob_upper"`
	UnsafeLower []float64   `json:"matrix_prob_unsafe_lower"`
	UnsafeUpper []float64   `json:"matrix_prob_unsafe_upper"`
}

// ToAugmented returns the (N+1) x N augmented form transprob/barrier expect,
// with the unsafe tail appended as row N.
func (d DenseMatrices) ToAugmented() (lower, upper [][]float64) {
	n := len(d.Lower)
	lower = make([][]float64, n+1)
	upper = make([][]float64, n+1)
	for i := 0; i < n; i++ {
		lower[i] = d.Lower[i]
		upper[i] = d.Upper[i]
	}
	lower[n] = d.UnsafeLower
	upper[n] = d.UnsafeUpper
	return lower, upper
}

// LinearSystemData is the on-disk description of a linear Gaussian system
// (spec §3, §6 "PWA dynamics: for each region, a list of (A, b) vertex
// dynamics" — this is the single-map counterpart): A is row-major, Safe is
// the safe set's bounding box (low, high).
type LinearSystemData struct {
	A     [][]float64 `json:"a"`
	B     []float64   `json:"b"`
	Sigma []float64   `json:"sigma"`
	Safe  [2][]float64 `json:"safe"`
}

// Rows returns the row-major A as plain [][]float64; the caller builds the
// *mat.Dense for the dynsys constructor, so dataset has no gonum/mat import
// of its own.
func (l LinearSystemData) Rows() [][]float64 { return l.A }

// SparseColumn is one column of the alternative sparse dataset format:
// explicit (index, value) pairs plus the (n+1)-th "unsafe" slot value
// (spec §6 "Alternative: sparse probability datasets").
type SparseColumn struct {
	Indices     []int     `json:"indices"`
	Values      []float64 `json:"values"`
	UnsafeValue float64   `json:"unsafe_value"`
}

// SparseMatrices is the sparse counterpart to DenseMatrices: one
// SparseColumn per source region for each of the lower and upper bound
// matrices, read straight off disk as `matrix_prob_lower`/
// `matrix_prob_upper`'s (indices, values) alternative (spec §6).
type SparseMatrices struct {
	Lower []SparseColumn `json:"matrix_prob_lower_sparse"`
	Upper []SparseColumn `json:"matrix_prob_upper_sparse"`
}

// ToAugmented scatters every column's (indices, values) pairs into the same
// (N+1) x N dense shape DenseMatrices.ToAugmented produces, with the
// unsafe-tail row appended at index N, so transprob/barrier callers never
// need to know which on-disk format a dataset used.
func (s SparseMatrices) ToAugmented() (lower, upper [][]float64) {
	n := len(s.Lower)
	lower = toAugmentedDense(s.Lower, n)
	upper = toAugmentedDense(s.Upper, n)
	return lower, upper
}

func toAugmentedDense(cols []SparseColumn, n int) [][]float64 {
	out := make([][]float64, n+1)
	for i := range out {
		out[i] = make([]float64, n)
	}
	for j, col := range cols {
		for k, i := range col.Indices {
			out[i][j] = col.Values[k]
		}
		out[n][j] = col.UnsafeValue
	}
	return out
}

// ReadJSON decodes any of the above dataset shapes from the JSON file at
// path; callers pass a pointer to the concrete type they expect.
func ReadJSON(path string, out interface{}) error {
	buf, err := io.ReadFile(path)
	if err != nil {
		return chk.Err("dataset: cannot read %q: %v", path, err)
	}
	if err := json.Unmarshal(buf, out); err != nil {
		return chk.Err("dataset: cannot parse %q: %v", path, err)
	}
	return nil
}

// WriteJSON encodes v as indented JSON to path.
func WriteJSON(path string, v interface{}) error {
	buf, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return chk.Err("dataset: cannot encode: %v", err)
	}
	io.WriteFileSD(dirOf(path), fileOf(path), string(buf))
	return nil
}

// WriteBarrierPlainText writes one barrier value per line, the plain-text
// format spec §6 names alongside the dataset array format.
func WriteBarrierPlainText(path string, b []float64) error {
	var sb strings.Builder
	for _, v := range b {
		sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		sb.WriteString("\n")
	}
	io.WriteFileSD(dirOf(path), fileOf(path), sb.String())
	return nil
}

func dirOf(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[:i]
	}
	return "."
}

func fileOf(path string) string {
	if i := strings.LastIndex(path, "/"); i >= 0 {
		return path[i+1:]
	}
	return path
}
