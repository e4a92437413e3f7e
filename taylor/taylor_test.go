package taylor

import (
	"math"
	"testing"

	"github.com/drakos74/go-descent/descent"
	gomath "github.com/drakos74/go-descent/internal/math"
	"github.com/stretchr/testify/assert"
)

func TestRegistry(t *testing.T) {
	names := Names()
	assert.Equal(t, []string{"cos", "exp", "log1p", "sin", "sqrt1p"}, names)

	for _, name := range names {
		f, err := Lookup(name)
		assert.NoError(t, err)
		assert.Equal(t, name, f.Name)
	}

	_, err := Lookup("tan")
	assert.Error(t, err)
}

func TestRegister_Duplicate(t *testing.T) {
	assert.Panics(t, func() {
		Register(Function{Name: "sin"})
	})
}

func TestExpand(t *testing.T) {

	type test struct {
		fn     string
		around float64
		degree int
		at     []float64
		delta  float64
	}

	tests := map[string]test{
		"sin-at-zero": {
			fn:     "sin",
			around: 0,
			degree: 7,
			at:     []float64{-0.5, -0.1, 0, 0.1, 0.5},
			delta:  1e-6,
		},
		"cos-at-zero": {
			fn:     "cos",
			around: 0,
			degree: 8,
			at:     []float64{-0.5, 0, 0.5},
			delta:  1e-6,
		},
		"exp-at-one": {
			fn:     "exp",
			around: 1,
			degree: 10,
			at:     []float64{0.5, 1, 1.5},
			delta:  1e-6,
		},
		"log1p-near-zero": {
			fn:     "log1p",
			around: 0,
			degree: 12,
			at:     []float64{-0.2, 0, 0.2},
			delta:  1e-6,
		},
		"sqrt1p-near-zero": {
			fn:     "sqrt1p",
			around: 0,
			degree: 10,
			at:     []float64{-0.1, 0, 0.1},
			delta:  1e-6,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := Lookup(tt.fn)
			assert.NoError(t, err)

			p := Expand(f, tt.around, tt.degree)
			assert.Equal(t, tt.degree, p.Degree())

			for _, x := range tt.at {
				assert.InDelta(t, f.F(x), p.At(x), tt.delta)
			}
		})
	}

}

func TestPolynomial_Derivative(t *testing.T) {
	// p(x) = 1 + 2x + 3x^2 -> p'(x) = 2 + 6x
	p := Polynomial{Coeff: []float64{1, 2, 3}}
	d := p.Derivative()

	assert.Equal(t, 1, d.Degree())
	assert.InDelta(t, 2.0, d.At(0), 1e-12)
	assert.InDelta(t, 8.0, d.At(1), 1e-12)

	// constant derives to zero
	zero := Polynomial{Coeff: []float64{5}}.Derivative()
	assert.InDelta(t, 0.0, zero.At(3), 1e-12)
}

func TestExpand_MatchesPolynomialFit(t *testing.T) {

	type test struct {
		fn     string
		degree int
	}

	tests := map[string]test{
		"sin": {
			fn:     "sin",
			degree: 9,
		},
		"exp": {
			fn:     "exp",
			degree: 9,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			f, err := Lookup(tt.fn)
			assert.NoError(t, err)

			// around zero the expansion is a plain polynomial in x,
			// so the least-squares fit of the sampled window must agree with it
			p := Expand(f, 0, tt.degree)

			xx := gomath.Range(-1, 1, 100)
			yy := make([]float64, len(xx))
			for i, x := range xx {
				yy[i] = f.F(x)
			}

			cc, err := gomath.Fit(xx, yy, tt.degree)
			assert.NoError(t, err)

			for _, x := range xx {
				assert.InDelta(t, gomath.Eval(cc, x), p.At(x), 1e-6)
			}
		})
	}

}

func TestApproximate(t *testing.T) {
	f, err := Lookup("sin")
	assert.NoError(t, err)

	a := Approximate(f, 0, 9, 1, 100)
	assert.LessOrEqual(t, a.Err.Max(), 1e-6)
	assert.LessOrEqual(t, a.Err.Avg(), a.Err.Max())
}

func TestMinimize(t *testing.T) {
	// p(x) = (x-3)^2 = 9 - 6x + x^2
	p := Polynomial{Coeff: []float64{9, -6, 1}}

	cfg := descent.NewSteepestConfig()
	cfg.Rate = 0.1
	cfg.MaxIterations = 1000
	cfg.PrintEvery = 0

	x, status := Minimize(p, 10, cfg)
	assert.Equal(t, descent.Converged, status)
	assert.InDelta(t, 3.0, x, 1e-2)

	assert.InDelta(t, 0.0, p.At(x), 1e-3)
	assert.LessOrEqual(t, math.Abs(p.Derivative().At(x)), cfg.Tolerance)
}
