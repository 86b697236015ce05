// Package gaussker implements the Gaussian transition kernel used to bound
// P(f(x) in q_i | x in q_j): a product of per-coordinate erf differences,
// and its log form via a numerically stable log(erf(a) - erf(b)) primitive
// (spec §4.2).
package gaussker

import "math"

// T evaluates the Gaussian box kernel at y for a target hyperrectangle with
// bounds (low, high) and per-coordinate noise sigma:
//
//	T(y) = (1/2^m) * prod_i [erf((y_i-low_i)/(sigma_i*sqrt2)) - erf((y_i-high_i)/(sigma_i*sqrt2))]
func T(y, low, high, sigma []float64) float64 {
	return math.Exp(LogT(y, low, high, sigma))
}

// LogT is the numerically stable log of T, computed coordinate-by-coordinate
// through LogErfDiff to avoid catastrophic cancellation in the tails.
func LogT(y, low, high, sigma []float64) float64 {
	m := len(y)
	sum := -float64(m) * math.Ln2
	for i := 0; i < m; i++ {
		s2 := sigma[i] * math.Sqrt2
		a := (y[i] - low[i]) / s2
		b := (y[i] - high[i]) / s2
		sum += LogErfDiff(a, b)
	}
	return sum
}

// LogErfDiff computes log(erf(a) - erf(b)) for a >= b without catastrophic
// cancellation when erf(a) and erf(b) are both close to +-1 (spec §4.2,
// §7 "Numerical" row). It dispatches on sign to route the subtraction
// through erfc, which carries the precision that erf alone loses in the
// tails, and works with log(erfc) so the result stays finite where erfc
// itself underflows.
func LogErfDiff(a, b float64) float64 {
	if a < b {
		a, b = b, a
	}
	// logErfc is log(erfc(x)); from x = 26 on it uses the asymptotic
	// expansion erfc(x) ~ exp(-x^2)/(x*sqrt(pi)) * (1 - 1/(2x^2) + 3/(4x^4)).
	logErfc := func(x float64) float64 {
		if x < 26 {
			return math.Log(math.Erfc(x))
		}
		x2 := x * x
		return -x2 - math.Log(x*math.SqrtPi) + math.Log1p(-1/(2*x2)+3/(4*x2*x2))
	}
	switch {
	case b >= 0:
		// both erf(a), erf(b) close to 1: erf(a)-erf(b) = erfc(b)-erfc(a)
		lb, la := logErfc(b), logErfc(a)
		if la >= lb {
			return math.Inf(-1)
		}
		return lb + math.Log1p(-math.Exp(la-lb))
	case a <= 0:
		// both erf(a), erf(b) close to -1: erf(a)-erf(b) = erfc(-a)-erfc(-b)
		la, lb := logErfc(-a), logErfc(-b)
		if lb >= la {
			return math.Inf(-1)
		}
		return la + math.Log1p(-math.Exp(lb-la))
	default:
		// a > 0 > b: no cancellation, erf(a) and -erf(b) are both positive
		diff := math.Erf(a) - math.Erf(b)
		if diff <= 0 {
			return math.Inf(-1)
		}
		return math.Log(diff)
	}
}

// Gradient returns the gradient of LogT at y, used by the Frank-Wolfe
// upper-bound strategy (spec §4.3). It differentiates the per-coordinate
// log(erf(a)-erf(b)) term analytically:
//
//	d/dy_i log(erf(a_i)-erf(b_i)) = (2/sqrt(pi)) * (exp(-a_i^2) - exp(-b_i^2)) / (sigma_i*sqrt2*(erf(a_i)-erf(b_i)))
func Gradient(y, low, high, sigma []float64) []float64 {
	m := len(y)
	g := make([]float64, m)
	const invSqrtPi2 = 1.1283791670955126 // 2/sqrt(pi)
	for i := 0; i < m; i++ {
		s2 := sigma[i] * math.Sqrt2
		a := (y[i] - low[i]) / s2
		b := (y[i] - high[i]) / s2
		num := math.Exp(-a*a) - math.Exp(-b*b)
		den := math.Exp(LogErfDiff(a, b))
		if den == 0 {
			g[i] = 0
			continue
		}
		g[i] = invSqrtPi2 * num / (s2 * den)
	}
	return g
}
