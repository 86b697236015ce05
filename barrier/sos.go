package barrier

import "github.com/cpmech/gosl/chk"

// SOSSynthesizer is the named plug-in point for a sum-of-squares polynomial
// barrier backend. It is explicitly out of scope of this module (spec §1:
// "SOS synthesis is treated as an alternative backend with the same outer
// contract") — the hard engineering work lives in the probability-bounding
// and piecewise-constant LP/dual/Frank-Wolfe code above, not here. A real
// implementation would carry polynomial decision variables and a
// semidefinite solver behind this same Synthesizer interface (spec §9) and
// could be wired in at runtime with Register.
type SOSSynthesizer struct{}

func (SOSSynthesizer) Synthesize(p Problem) (*Solution, error) {
	return nil, chk.Err("sos_barrier: not implemented — out of scope per spec, register a real backend with barrier.Register")
}
