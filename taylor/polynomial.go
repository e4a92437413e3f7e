package taylor

// Polynomial is a polynomial in powers of (x - center).
type Polynomial struct {
	Center float64
	Coeff  []float64
}

// Degree returns the degree of the polynomial.
func (p Polynomial) Degree() int {
	return len(p.Coeff) - 1
}

// At evaluates the polynomial at x.
func (p Polynomial) At(x float64) float64 {
	var y float64
	for i, f := 0, 1.; i < len(p.Coeff); i, f = i+1, f*(x-p.Center) {
		y += p.Coeff[i] * f
	}
	return y
}

// Derivative returns the derivative polynomial around the same center.
func (p Polynomial) Derivative() Polynomial {
	if len(p.Coeff) <= 1 {
		return Polynomial{Center: p.Center, Coeff: []float64{0}}
	}
	coeff := make([]float64, len(p.Coeff)-1)
	for i := 1; i < len(p.Coeff); i++ {
		coeff[i-1] = float64(i) * p.Coeff[i]
	}
	return Polynomial{Center: p.Center, Coeff: coeff}
}
