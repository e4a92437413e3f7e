package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/drakos74/go-descent/buffer"
	"github.com/drakos74/go-descent/descent"
	"github.com/drakos74/go-descent/infra/config"
	gomath "github.com/drakos74/go-descent/internal/math"
	"github.com/drakos74/go-descent/internal/metrics"
	"github.com/google/uuid"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/gonum/mat"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Run carries the training run settings loaded from the config file.
type Run struct {
	Iterations int        `json:"iterations"`
	Window     int        `json:"window"`
	Strategies []Strategy `json:"strategies"`
}

// Strategy is the config file shape of one update strategy.
type Strategy struct {
	Type    string  `json:"type"`
	Rate    float64 `json:"rate"`
	Size    int     `json:"size"`
	Shuffle bool    `json:"shuffle"`
}

// validate rejects run settings that would produce a degenerate run.
func (r Run) validate() error {
	if r.Iterations < 1 {
		return fmt.Errorf("iterations must be positive: %d", r.Iterations)
	}
	if r.Window < 1 {
		return fmt.Errorf("window must be positive: %d", r.Window)
	}
	if len(r.Strategies) == 0 {
		return fmt.Errorf("no strategies configured")
	}
	for _, s := range r.Strategies {
		if _, err := build(s); err != nil {
			return err
		}
	}
	return nil
}

func main() {

	csvFile := flag.String("csv", "", "csv file with one sample per row, target in the last column")
	samples := flag.Int("samples", 100, "number of generated samples when no csv file is given")
	serve := flag.Int("serve", 0, "port for the metrics endpoint, 0 disables it")
	flag.Parse()

	run := Run{}
	config.MustLoad("fit", &run)
	if err := run.validate(); err != nil {
		panic(fmt.Sprintf("invalid run config: %+v", err))
	}

	x, y, err := load(*csvFile, *samples)
	if err != nil {
		panic(fmt.Sprintf("could not load the training set: %+v", err))
	}

	id := uuid.New().String()
	n, d := x.Dims()
	log.Info().Str("run", id).Int("samples", n).Int("features", d).Msg("starting fit")

	for _, s := range run.Strategies {
		strategy, err := build(s)
		if err != nil {
			panic(fmt.Sprintf("could not build strategy %s: %+v", s.Type, err))
		}
		fit(strategy, s.Type, x, y, run)
	}

	if *serve > 0 {
		if err := metrics.Serve(*serve); err != nil {
			log.Error().Err(err).Msg("could not serve metrics")
		}
	}

}

func build(s Strategy) (descent.Strategy, error) {
	switch s.Type {
	case "batch":
		return descent.NewBatch(s.Rate)
	case "mini-batch":
		return descent.NewMiniBatch(s.Rate, s.Size)
	case "stochastic":
		return descent.NewStochastic(s.Rate, s.Shuffle)
	}
	return nil, fmt.Errorf("unknown strategy type: %s", s.Type)
}

// fit drives the update steps one by one to track the loss trajectory.
func fit(strategy descent.Strategy, name string, x mat.Matrix, y []float64, run Run) {

	_, d := x.Dims()
	theta := make([]float64, d)

	trace := buffer.NewRing(run.Iterations)
	window := buffer.NewWindow(run.Window)

	var err error
	for i := 0; i < run.Iterations; i++ {
		theta, err = descent.Step(theta, strategy, x, y)
		if err != nil {
			panic(fmt.Sprintf("could not fit with %s: %+v", name, err))
		}

		loss, err := descent.Loss(theta, x, y)
		if err != nil {
			panic(fmt.Sprintf("could not track the loss: %+v", err))
		}
		trace.Push(loss)
		if bucket, ok := window.Push(loss); ok {
			log.Debug().
				Int("iteration", i).
				Str("avg", gomath.Format(bucket.Avg())).
				Str("stdev", gomath.Format(bucket.StDev())).
				Msg("loss window")
		}
	}

	score, err := descent.Score(theta, x, y)
	if err != nil {
		panic(fmt.Sprintf("could not score the fit: %+v", err))
	}

	fmt.Println(asciigraph.Plot(trace.Get(),
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("%s loss over %d iterations", name, run.Iterations))))

	log.Info().
		Str("strategy", name).
		Floats64("theta", theta).
		Str("score", gomath.Format(score)).
		Msg("fit finished")
}

// load reads the training set from the csv file,
// or generates a noise-free linear set when no file is given.
func load(path string, samples int) (mat.Matrix, []float64, error) {
	if path == "" {
		xx := gomath.Series(0.1, samples)
		x := mat.NewDense(samples, 2, nil)
		y := make([]float64, samples)
		for i, v := range xx {
			x.Set(i, 0, 1)
			x.Set(i, 1, v)
			y[i] = 2 + 0.5*v
		}
		return x, y, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("could not open %s: %w", path, err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("could not read %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil, fmt.Errorf("empty training set in %s", path)
	}

	d := len(records[0]) - 1
	x := mat.NewDense(len(records), d, nil)
	y := make([]float64, len(records))
	for i, record := range records {
		if len(record) != d+1 {
			return nil, nil, fmt.Errorf("inconsistent row %d: %d vs %d columns", i, len(record), d+1)
		}
		for j, s := range record {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("could not parse row %d: %w", i, err)
			}
			if j == d {
				y[i] = v
			} else {
				x.Set(i, j, v)
			}
		}
	}
	return x, y, nil
}
