package accuracy

import (
	"fmt"
	"log/slog"
	"math"

	approx "github.com/meko-christian/algo-approx"

	"github.com/cwbudde/algo-enginemath/scalar"
)

// Function describes one kernel routine and how to judge it.
type Function struct {
	Name      string
	Kernel    func(float64) float64
	Reference func(float64) float64

	// Fast is a third-party fast approximation of the same function, or nil.
	Fast func(float64) float64

	// Lo and Hi bound the interval the function is swept over.
	Lo, Hi float64
}

// Row is the evaluation of one Function.
type Row struct {
	Name    string
	Kernel  Report
	Fast    Report
	HasFast bool
}

// Functions returns every kernel routine in a fixed order.
func Functions() []Function {
	return []Function{
		{
			Name: "sqrt", Kernel: scalar.Sqrt, Reference: math.Sqrt,
			Fast: func(x float64) float64 { return approx.FastSqrt(x) },
			Lo:   0.01, Hi: 1000,
		},
		{
			Name: "exp", Kernel: scalar.Exp, Reference: math.Exp,
			Fast: func(x float64) float64 { return approx.FastExp(x) },
			Lo:   -5, Hi: 5,
		},
		{
			Name: "ln", Kernel: scalar.Ln, Reference: math.Log,
			Fast: func(x float64) float64 { return approx.FastLog(x) },
			Lo:   0.05, Hi: 100,
		},
		{
			Name: "log10", Kernel: scalar.Log10, Reference: math.Log10,
			Fast: func(x float64) float64 { return approx.FastLog(x) / math.Ln10 },
			Lo:   0.05, Hi: 100,
		},
		{Name: "sin", Kernel: scalar.Sin, Reference: math.Sin, Lo: -2 * math.Pi, Hi: 2 * math.Pi},
		{Name: "cos", Kernel: scalar.Cos, Reference: math.Cos, Lo: -2 * math.Pi, Hi: 2 * math.Pi},
		{Name: "tan", Kernel: scalar.Tan, Reference: math.Tan, Lo: -1.4, Hi: 1.4},
		{Name: "asin", Kernel: scalar.Asin, Reference: math.Asin, Lo: -0.99, Hi: 0.99},
		{Name: "acos", Kernel: scalar.Acos, Reference: math.Acos, Lo: -0.99, Hi: 0.99},
		{Name: "atan", Kernel: scalar.Atan, Reference: math.Atan, Lo: -10, Hi: 10},
		{Name: "sinh", Kernel: scalar.Sinh, Reference: math.Sinh, Lo: -5, Hi: 5},
		{Name: "cosh", Kernel: scalar.Cosh, Reference: math.Cosh, Lo: -5, Hi: 5},
		{Name: "tanh", Kernel: scalar.Tanh, Reference: math.Tanh, Lo: -5, Hi: 5},
	}
}

// Lookup returns the Function with the given name.
func Lookup(name string) (Function, error) {
	for _, f := range Functions() {
		if f.Name == name {
			return f, nil
		}
	}
	return Function{}, fmt.Errorf("%w: %q", ErrUnknownFunction, name)
}

// Evaluate sweeps the kernel and, when available, the fast approximation of
// f against its reference.
func Evaluate(f Function, opts ...Option) (Row, error) {
	row := Row{Name: f.Name}

	rep, err := Sweep(f.Kernel, f.Reference, f.Lo, f.Hi, opts...)
	if err != nil {
		return Row{}, fmt.Errorf("accuracy: %s kernel: %w", f.Name, err)
	}
	row.Kernel = rep

	if f.Fast != nil {
		rep, err = Sweep(f.Fast, f.Reference, f.Lo, f.Hi, opts...)
		if err != nil {
			return Row{}, fmt.Errorf("accuracy: %s fast: %w", f.Name, err)
		}
		row.Fast = rep
		row.HasFast = true
	}

	Logger().Debug("accuracy: evaluated",
		slog.String("function", f.Name),
		slog.Float64("kernel_max_abs", row.Kernel.MaxAbs),
		slog.Bool("has_fast", row.HasFast))

	return row, nil
}
