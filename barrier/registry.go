package barrier

import "github.com/cpmech/gosl/chk"

// AllocatorType constructs a Synthesizer by name, mirroring gofem's
// ele/factory.go AllocatorType/allocators idiom.
type AllocatorType func() Synthesizer

var allocators = map[string]AllocatorType{
	"constant":          func() Synthesizer { return ConstantSynthesizer{} },
	"dual_constant":     func() Synthesizer { return DualSynthesizer{} },
	"iterative":         func() Synthesizer { return IterativeSynthesizer{} },
	"frank_wolfe":       func() Synthesizer { return IterativeSynthesizer{} },
	"gradient_descent":  func() Synthesizer { return IterativeSynthesizer{GradientOnly: true} },
	"sos":               func() Synthesizer { return SOSSynthesizer{} },
}

// New returns a new Synthesizer from the registry (spec §6
// barrier_algorithm enum).
func New(name string) (Synthesizer, error) {
	allocator, ok := allocators[name]
	if !ok {
		return nil, chk.Err("barrier: algorithm %q is not available", name)
	}
	return allocator(), nil
}

// Register adds a new backend constructor to the registry, e.g. for a
// SOS implementation supplied out-of-tree (spec §9 "alternative
// implementation of synthesize_barrier with... a different internal
// pipeline... behind the same trait").
func Register(name string, fcn AllocatorType) {
	if _, ok := allocators[name]; ok {
		chk.Panic("barrier: cannot register algorithm %q, it already exists", name)
	}
	allocators[name] = fcn
}
