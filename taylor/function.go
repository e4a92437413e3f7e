package taylor

import (
	"fmt"
	"math"
	"sort"
)

// Derivative produces the n-th derivative of a function in closed form.
// Order 0 is the function itself.
type Derivative func(order int) func(x float64) float64

// Function is a scalar function together with its closed-form derivatives.
type Function struct {
	Name       string
	F          func(x float64) float64
	Derivative Derivative
}

var registry = map[string]Function{}

// Register adds a function to the registry.
// It panics on duplicate registration.
func Register(f Function) {
	if _, ok := registry[f.Name]; ok {
		panic(fmt.Sprintf("function already registered: %s", f.Name))
	}
	registry[f.Name] = f
}

// Lookup returns the registered function for the given name.
func Lookup(name string) (Function, error) {
	f, ok := registry[name]
	if !ok {
		return Function{}, fmt.Errorf("unknown function: %s", name)
	}
	return f, nil
}

// Names returns the registered function names in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func init() {
	Register(Function{
		Name: "sin",
		F:    math.Sin,
		Derivative: func(order int) func(x float64) float64 {
			return func(x float64) float64 {
				return math.Sin(x + float64(order)*math.Pi/2)
			}
		},
	})
	Register(Function{
		Name: "cos",
		F:    math.Cos,
		Derivative: func(order int) func(x float64) float64 {
			return func(x float64) float64 {
				return math.Cos(x + float64(order)*math.Pi/2)
			}
		},
	})
	Register(Function{
		Name: "exp",
		F:    math.Exp,
		Derivative: func(order int) func(x float64) float64 {
			return math.Exp
		},
	})
	Register(Function{
		Name: "log1p",
		F:    math.Log1p,
		Derivative: func(order int) func(x float64) float64 {
			if order == 0 {
				return math.Log1p
			}
			// d^n/dx^n log(1+x) = (-1)^(n-1) * (n-1)! / (1+x)^n
			sign := 1.0
			if order%2 == 0 {
				sign = -1.0
			}
			coeff := sign * factorial(order-1)
			return func(x float64) float64 {
				return coeff / math.Pow(1+x, float64(order))
			}
		},
	})
	Register(Function{
		Name: "sqrt1p",
		F: func(x float64) float64 {
			return math.Sqrt(1 + x)
		},
		Derivative: func(order int) func(x float64) float64 {
			// d^n/dx^n (1+x)^(1/2) = (1/2)(1/2-1)...(1/2-n+1) * (1+x)^(1/2-n)
			coeff := 1.0
			for k := 0; k < order; k++ {
				coeff *= 0.5 - float64(k)
			}
			return func(x float64) float64 {
				return coeff * math.Pow(1+x, 0.5-float64(order))
			}
		},
	})
}

func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}
