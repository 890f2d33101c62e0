package accuracy

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

var (
	// ErrInvalidSamples is returned when fewer than two sweep points are requested.
	ErrInvalidSamples = errors.New("accuracy: at least 2 samples are required")

	// ErrEmptyRange is returned when hi <= lo.
	ErrEmptyRange = errors.New("accuracy: upper bound must exceed lower bound")

	// ErrUnknownFunction is returned by Lookup for names not in Functions.
	ErrUnknownFunction = errors.New("accuracy: unknown function")
)

// Report summarizes the error of a function against a reference.
type Report struct {
	Samples   int
	MaxAbs    float64 // largest |fn(x) - ref(x)|
	MaxAbsAt  float64 // x where MaxAbs occurs
	RMS       float64
	MaxRel    float64 // largest |fn(x) - ref(x)| / max(|ref(x)|, RelativeFloor)
	NonFinite int     // points where fn or ref was NaN or Inf; excluded from the stats
}

// ErrorCurve evaluates fn - ref at n evenly spaced points in [lo, hi].
// Points where either side is not finite yield NaN.
func ErrorCurve(fn, ref func(float64) float64, lo, hi float64, n int) (xs, errs []float64, err error) {
	if n < 2 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrInvalidSamples, n)
	}
	if !(hi > lo) {
		return nil, nil, fmt.Errorf("%w: [%g, %g]", ErrEmptyRange, lo, hi)
	}

	xs = make([]float64, n)
	errs = make([]float64, n)
	step := (hi - lo) / float64(n-1)
	for i := range xs {
		x := lo + step*float64(i)
		if i == n-1 {
			x = hi
		}
		xs[i] = x

		got, want := fn(x), ref(x)
		if !finite(got) || !finite(want) {
			errs[i] = math.NaN()
			continue
		}
		errs[i] = got - want
	}
	return xs, errs, nil
}

// Sweep compares fn against ref on the closed interval [lo, hi].
func Sweep(fn, ref func(float64) float64, lo, hi float64, opts ...Option) (Report, error) {
	cfg := ApplyOptions(opts...)

	xs, errs, err := ErrorCurve(fn, ref, lo, hi, cfg.Samples)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Samples: len(xs)}
	diff := make([]float64, 0, len(errs))
	for i, e := range errs {
		if math.IsNaN(e) {
			rep.NonFinite++
			continue
		}
		diff = append(diff, e)

		abs := math.Abs(e)
		if abs > rep.MaxAbs {
			rep.MaxAbs = abs
			rep.MaxAbsAt = xs[i]
		}
		denom := math.Max(math.Abs(ref(xs[i])), cfg.RelativeFloor)
		if rel := abs / denom; rel > rep.MaxRel {
			rep.MaxRel = rel
		}
	}

	if len(diff) > 0 {
		sq := make([]float64, len(diff))
		vecmath.MulBlock(sq, diff, diff)
		sum := 0.0
		for _, v := range sq {
			sum += v
		}
		rep.RMS = math.Sqrt(sum / float64(len(sq)))
	}

	if rep.NonFinite > 0 {
		Logger().Warn("accuracy: non-finite values in sweep",
			slog.Int("count", rep.NonFinite),
			slog.Float64("lo", lo),
			slog.Float64("hi", hi))
	}
	Logger().Debug("accuracy: sweep",
		slog.Int("samples", rep.Samples),
		slog.Float64("max_abs", rep.MaxAbs),
		slog.Float64("max_abs_at", rep.MaxAbsAt),
		slog.Float64("rms", rep.RMS))

	return rep, nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
