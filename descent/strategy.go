package descent

import (
	"fmt"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/mat"
)

// Part is one partition of the training set,
// a sub-matrix with its aligned sub-targets.
type Part struct {
	X mat.Matrix
	Y []float64
}

// Strategy drives the update step by splitting the training set into partitions.
// Each variant carries its own hyperparameters.
// Partition must cover every sample exactly once per call,
// keeping the row to target correspondence intact.
type Strategy interface {
	// Rate returns the learning rate of the strategy.
	Rate() float64
	// Partition splits the given training set into the parts consumed by one update step.
	Partition(x mat.Matrix, y []float64) ([]Part, error)
}

// Batch evaluates the gradient once per iteration over the full training set.
type Batch struct {
	alpha float64
}

// NewBatch creates a new full-batch strategy with the given learning rate.
func NewBatch(alpha float64) (*Batch, error) {
	if err := checkRate(alpha); err != nil {
		return nil, err
	}
	return &Batch{alpha: alpha}, nil
}

func (b *Batch) Rate() float64 {
	return b.alpha
}

// Partition returns a single part with the full training set.
func (b *Batch) Partition(x mat.Matrix, y []float64) ([]Part, error) {
	n, _ := x.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("%w: samples %d vs targets %d", ErrDimension, n, len(y))
	}
	return []Part{{X: x, Y: y}}, nil
}

// Stochastic evaluates the gradient once per sample,
// optionally visiting the samples in a fresh random order on every call.
type Stochastic struct {
	alpha   float64
	shuffle bool
	rnd     *rand.Rand
}

// NewStochastic creates a new stochastic strategy with the given learning rate.
func NewStochastic(alpha float64, shuffle bool) (*Stochastic, error) {
	if err := checkRate(alpha); err != nil {
		return nil, err
	}
	return &Stochastic{
		alpha:   alpha,
		shuffle: shuffle,
		rnd:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}, nil
}

// Seed fixes the shuffle source, to allow for reproducible runs.
func (s *Stochastic) Seed(seed int64) *Stochastic {
	s.rnd = rand.New(rand.NewSource(seed))
	return s
}

func (s *Stochastic) Rate() float64 {
	return s.alpha
}

// Partition returns one singleton part per sample.
// With shuffling enabled the order is a fresh uniform permutation on every call.
func (s *Stochastic) Partition(x mat.Matrix, y []float64) ([]Part, error) {
	n, _ := x.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("%w: samples %d vs targets %d", ErrDimension, n, len(y))
	}

	index := make([]int, n)
	for i := 0; i < n; i++ {
		index[i] = i
	}
	if s.shuffle {
		s.rnd.Shuffle(n, func(i, j int) {
			index[i], index[j] = index[j], index[i]
		})
	}

	parts := make([]Part, n)
	for i, idx := range index {
		parts[i] = Part{
			X: rows(x, []int{idx}),
			Y: []float64{y[idx]},
		}
	}
	return parts, nil
}

// MiniBatch evaluates the gradient on contiguous blocks of the given size.
// The last block may be shorter, no sample is ever dropped or duplicated.
type MiniBatch struct {
	alpha float64
	size  int
}

// NewMiniBatch creates a new mini-batch strategy with the given learning rate and batch size.
func NewMiniBatch(alpha float64, size int) (*MiniBatch, error) {
	if err := checkRate(alpha); err != nil {
		return nil, err
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: batch size must be positive: %d", ErrConfig, size)
	}
	return &MiniBatch{alpha: alpha, size: size}, nil
}

func (m *MiniBatch) Rate() float64 {
	return m.alpha
}

// Partition splits the samples into contiguous blocks of the configured size.
func (m *MiniBatch) Partition(x mat.Matrix, y []float64) ([]Part, error) {
	n, _ := x.Dims()
	if n != len(y) {
		return nil, fmt.Errorf("%w: samples %d vs targets %d", ErrDimension, n, len(y))
	}
	if m.size > n {
		return nil, fmt.Errorf("%w: batch size %d exceeds sample count %d", ErrConfig, m.size, n)
	}

	parts := make([]Part, 0, (n+m.size-1)/m.size)
	for from := 0; from < n; from += m.size {
		to := from + m.size
		if to > n {
			to = n
		}
		index := make([]int, 0, to-from)
		for i := from; i < to; i++ {
			index = append(index, i)
		}
		parts = append(parts, Part{
			X: rows(x, index),
			Y: y[from:to],
		})
	}
	return parts, nil
}

func checkRate(alpha float64) error {
	if alpha <= 0 {
		return fmt.Errorf("%w: learning rate must be positive: %f", ErrConfig, alpha)
	}
	return nil
}

// rows copies the given rows of the matrix into a new one, in the given order.
func rows(x mat.Matrix, index []int) *mat.Dense {
	_, d := x.Dims()
	sub := mat.NewDense(len(index), d, nil)
	for i, idx := range index {
		for j := 0; j < d; j++ {
			sub.Set(i, j, x.At(idx, j))
		}
	}
	return sub
}
