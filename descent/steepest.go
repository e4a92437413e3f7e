package descent

import (
	"github.com/drakos74/go-descent/internal/metrics"
	"github.com/drakos74/go-ex-machina/xmath"
	"github.com/rs/zerolog/log"
)

// Status is the terminal state of an optimization loop.
type Status int

const (
	// Running means the loop is still iterating.
	Running Status = iota
	// Converged means the gradient norm dropped below the tolerance.
	Converged
	// BudgetExhausted means the iteration budget ran out first.
	BudgetExhausted
)

func (s Status) String() string {
	switch s {
	case Converged:
		return "converged"
	case BudgetExhausted:
		return "budget-exhausted"
	}
	return "running"
}

// SteepestConfig carries the parameters of the generic steepest descent loop.
type SteepestConfig struct {
	MaxIterations int
	Rate          float64
	Tolerance     float64
	// PrintEvery is the iteration cadence of the progress line, 0 disables it.
	PrintEvery int
}

// NewSteepestConfig creates a config with the default parameters.
func NewSteepestConfig() SteepestConfig {
	return SteepestConfig{
		MaxIterations: 100,
		Rate:          0.01,
		Tolerance:     0.001,
		PrintEvery:    50,
	}
}

// Steepest minimizes an arbitrary objective f with gradient g,
// moving along the negative gradient direction at each step.
// It stops as soon as the gradient norm drops to the tolerance,
// or when the iteration budget runs out.
func Steepest(f func(xmath.Vector) float64, g func(xmath.Vector) xmath.Vector, x0 xmath.Vector, cfg SteepestConfig) (xmath.Vector, Status) {
	x := x0.Copy()
	grad := g(x)

	status := Running
	for i := 0; status == Running; i++ {
		if grad.Norm() <= cfg.Tolerance {
			status = Converged
			break
		}
		if i > cfg.MaxIterations {
			status = BudgetExhausted
			break
		}
		if cfg.PrintEvery > 0 && i%cfg.PrintEvery == 0 {
			log.Info().
				Int("iteration", i).
				Float64("loss", f(x)).
				Msg("steepest descent")
		}
		x = x.Diff(grad.Mult(cfg.Rate))
		grad = g(x)
	}

	metrics.Observer.IncrementSteepest(status.String())
	return x, status
}
