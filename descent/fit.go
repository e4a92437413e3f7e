package descent

import (
	"fmt"
	"reflect"

	"github.com/drakos74/go-descent/internal/metrics"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Step performs one update step for the given strategy.
// The partitions are consumed strictly in order, the parameters produced by one
// partition feed the gradient of the next.
// The input vector is left untouched, the updated parameters are returned as a fresh vector.
func Step(theta []float64, s Strategy, x mat.Matrix, y []float64) ([]float64, error) {
	parts, err := s.Partition(x, y)
	if err != nil {
		return nil, fmt.Errorf("could not partition the training set: %w", err)
	}

	next := append([]float64{}, theta...)
	for _, p := range parts {
		g, err := Gradient(next, p.X, p.Y)
		if err != nil {
			return nil, err
		}
		floats.AddScaled(next, -1*s.Rate(), g)
	}
	return next, nil
}

// Config carries the parameters of the training loop.
type Config struct {
	// Strategy is the update strategy, stochastic with the default rate if left empty.
	Strategy Strategy
	// Init is the starting parameter vector, a zero vector if left empty.
	Init []float64
	// MaxIterations is the fixed iteration budget.
	MaxIterations int
	// Tolerance is the gradient norm below which the parameters count as converged.
	// The least-squares loop runs on the fixed budget alone and does not consult it.
	Tolerance float64
}

// NewConfig creates a config with the default parameters.
func NewConfig() Config {
	s, _ := NewStochastic(0.01, false)
	return Config{
		Strategy:      s,
		MaxIterations: 100,
		Tolerance:     0.001,
	}
}

// Fit runs the training loop on the given set for exactly the configured number of iterations.
// It returns the final parameter vector.
func Fit(x mat.Matrix, y []float64, cfg Config) ([]float64, error) {
	strategy := cfg.Strategy
	if strategy == nil {
		strategy, _ = NewStochastic(0.01, false)
	}

	_, d := x.Dims()
	theta := make([]float64, d)
	if cfg.Init != nil {
		if len(cfg.Init) != d {
			return nil, fmt.Errorf("%w: features %d vs parameters %d", ErrDimension, d, len(cfg.Init))
		}
		copy(theta, cfg.Init)
	}

	var err error
	for i := 0; i < cfg.MaxIterations; i++ {
		theta, err = Step(theta, strategy, x, y)
		if err != nil {
			return nil, fmt.Errorf("could not fit at iteration %d: %w", i, err)
		}
	}

	metrics.Observer.IncrementFit(strategyType(strategy))
	log.Debug().
		Int("iterations", cfg.MaxIterations).
		Str("strategy", strategyType(strategy)).
		Msg("fit finished")
	return theta, nil
}

// Score returns the coefficient of determination of the parameters on the given set.
func Score(theta []float64, x mat.Matrix, y []float64) (float64, error) {
	e, err := residual(theta, x, y)
	if err != nil {
		return 0, fmt.Errorf("could not score: %w", err)
	}
	estimate := make([]float64, len(y))
	for i := range y {
		estimate[i] = y[i] - e[i]
	}
	return stat.RSquaredFrom(estimate, y, nil), nil
}

func strategyType(s Strategy) string {
	t := reflect.TypeOf(s)
	// strategies may implement the interface on a value receiver
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.String()
}
