package main

import (
	"flag"
	"fmt"
	"strings"

	"github.com/drakos74/go-descent/descent"
	gomath "github.com/drakos74/go-descent/internal/math"
	"github.com/drakos74/go-descent/taylor"
	"github.com/guptarohit/asciigraph"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

func main() {

	fn := flag.String("fn", "sin", fmt.Sprintf("function to expand, one of: %s", strings.Join(taylor.Names(), ",")))
	around := flag.Float64("around", 0, "expansion center")
	degree := flag.Int("degree", 5, "expansion degree")
	window := flag.Float64("window", 1, "sampling window around the center")
	x0 := flag.Float64("x0", 1, "starting point for the minimization")
	flag.Parse()

	f, err := taylor.Lookup(*fn)
	if err != nil {
		panic(fmt.Sprintf("could not find function: %+v", err))
	}

	samples := 100
	approximation := taylor.Approximate(f, *around, *degree, *window, samples)
	p := approximation.Poly

	log.Info().
		Str("fn", f.Name).
		Int("degree", *degree).
		Str("max-err", gomath.Format(approximation.Err.Max())).
		Str("avg-err", gomath.Format(approximation.Err.Avg())).
		Msg("expansion")

	xx := gomath.Range(*around-*window, *around+*window, samples)
	source := make([]float64, len(xx))
	expansion := make([]float64, len(xx))
	for i, x := range xx {
		source[i] = f.F(x)
		expansion[i] = p.At(x)
	}

	fmt.Println(asciigraph.Plot(source,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("%s on [%.2f,%.2f]", f.Name, *around-*window, *around+*window))))
	fmt.Println(asciigraph.Plot(expansion,
		asciigraph.Height(10),
		asciigraph.Caption(fmt.Sprintf("%s expansion of degree %d", f.Name, *degree))))

	x, status := taylor.Minimize(p, *x0, descent.NewSteepestConfig())
	log.Info().
		Str("x", gomath.Format(x)).
		Str("value", gomath.Format(p.At(x))).
		Str("status", status.String()).
		Msg("minimization")

}
