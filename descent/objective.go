package descent

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Loss computes the least-squares loss for the given parameters
// loss = (n/2) * e^T * e , with e = y - x*theta
// NOTE : the scaling by n instead of 1/n is kept on purpose,
// see the related design notes on the loss scaling.
func Loss(theta []float64, x mat.Matrix, y []float64) (float64, error) {
	e, err := residual(theta, x, y)
	if err != nil {
		return 0, fmt.Errorf("could not compute loss: %w", err)
	}
	n, _ := x.Dims()
	return float64(n) * floats.Dot(e, e) / 2, nil
}

// Gradient computes the closed-form gradient of the least-squares loss
// grad = (-1/n) * x^T * e , with e = y - x*theta
// It leaves all inputs untouched.
func Gradient(theta []float64, x mat.Matrix, y []float64) ([]float64, error) {
	e, err := residual(theta, x, y)
	if err != nil {
		return nil, fmt.Errorf("could not compute gradient: %w", err)
	}

	n, d := x.Dims()
	g := mat.NewVecDense(d, nil)
	g.MulVec(x.T(), mat.NewVecDense(n, e))

	grad := make([]float64, d)
	for i := 0; i < d; i++ {
		grad[i] = -1 * g.AtVec(i) / float64(n)
	}
	return grad, nil
}

// residual computes e = y - x*theta , checking the shapes first.
func residual(theta []float64, x mat.Matrix, y []float64) ([]float64, error) {
	n, d := x.Dims()
	if d != len(theta) {
		return nil, fmt.Errorf("%w: features %d vs parameters %d", ErrDimension, d, len(theta))
	}
	if n != len(y) {
		return nil, fmt.Errorf("%w: samples %d vs targets %d", ErrDimension, n, len(y))
	}

	p := mat.NewVecDense(n, nil)
	p.MulVec(x, mat.NewVecDense(d, append([]float64{}, theta...)))

	e := make([]float64, n)
	for i := 0; i < n; i++ {
		e[i] = y[i] - p.AtVec(i)
	}
	return e, nil
}
