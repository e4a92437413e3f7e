package taylor

import (
	"math"

	"github.com/drakos74/go-descent/buffer"
	"github.com/drakos74/go-descent/descent"
	gomath "github.com/drakos74/go-descent/internal/math"
	"github.com/drakos74/go-ex-machina/xmath"
)

// Expand computes the Taylor expansion of the function around the given point.
func Expand(f Function, around float64, degree int) Polynomial {
	coeff := make([]float64, degree+1)
	for k := 0; k <= degree; k++ {
		coeff[k] = f.Derivative(k)(around) / factorial(k)
	}
	return Polynomial{Center: around, Coeff: coeff}
}

// Approximation is an expansion together with its absolute error profile
// over a sampling window around the center.
type Approximation struct {
	Poly Polynomial
	Err  buffer.Stats
}

// Approximate expands the function to the given degree and samples
// the absolute error on [around-window, around+window].
func Approximate(f Function, around float64, degree int, window float64, samples int) Approximation {
	p := Expand(f, around, degree)
	stats := buffer.NewStats()
	for _, x := range gomath.Range(around-window, around+window, samples) {
		stats.Push(math.Abs(f.F(x) - p.At(x)))
	}
	return Approximation{
		Poly: p,
		Err:  *stats,
	}
}

// Minimize finds a local minimum of the polynomial with steepest descent, starting at x0.
func Minimize(p Polynomial, x0 float64, cfg descent.SteepestConfig) (float64, descent.Status) {
	d := p.Derivative()
	f := func(x xmath.Vector) float64 {
		return p.At(x[0])
	}
	g := func(x xmath.Vector) xmath.Vector {
		return xmath.Vec(1).With(d.At(x[0]))
	}
	x, status := descent.Steepest(f, g, xmath.Vec(1).With(x0), cfg)
	return x[0], status
}
