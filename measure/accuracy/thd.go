package accuracy

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-dsp/dsp/window"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-enginemath/scalar"
)

var (
	// ErrInvalidSize rejects signal lengths that are not a power of two >= 16.
	ErrInvalidSize = errors.New("accuracy: size must be a power of two >= 16")

	// ErrInvalidCycles rejects cycle counts whose harmonics cannot be resolved.
	ErrInvalidCycles = errors.New("accuracy: cycles must be >= 2 and leave room below Nyquist")
)

// THDResult holds the harmonic distortion of a periodic signal.
//
//nolint:revive
type THDResult struct {
	FundamentalBin int
	THD            float64 // sqrt(Σ harmonic power) / fundamental, linear
	THD_dB         float64
	THDN           float64 // everything except DC and the fundamental, linear
	Harmonics      int     // number of harmonics summed
}

// SineTHD generates size samples of scalar.Sin spanning exactly cycles
// periods and analyzes them with AnalyzeTHD.
func SineTHD(size, cycles int, opts ...Option) (THDResult, error) {
	if err := validateTHD(size, cycles); err != nil {
		return THDResult{}, err
	}

	signal := make([]float64, size)
	step := 2 * scalar.Pi * float64(cycles) / float64(size)
	for i := range signal {
		signal[i] = scalar.Sin(step * float64(i))
	}
	return AnalyzeTHD(signal, cycles, opts...)
}

// AnalyzeTHD measures the harmonic distortion of signal, which must contain an
// integer number of periods (cycles) of its fundamental.
//
// A periodic Hann window is applied; with coherent sampling it spreads every
// tone over exactly three bins, which are summed per harmonic.
func AnalyzeTHD(signal []float64, cycles int, opts ...Option) (THDResult, error) {
	size := len(signal)
	if err := validateTHD(size, cycles); err != nil {
		return THDResult{}, err
	}
	cfg := ApplyOptions(opts...)

	hann := window.Generate(window.TypeHann, size, window.WithPeriodic())
	windowed := make([]float64, size)
	vecmath.MulBlock(windowed, signal, hann)

	in := make([]complex128, size)
	for i, v := range windowed {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return THDResult{}, fmt.Errorf("accuracy: fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return THDResult{}, fmt.Errorf("accuracy: fft: %w", err)
	}

	half := size/2 + 1
	re := make([]float64, half)
	im := make([]float64, half)
	for i := range re {
		re[i] = real(out[i])
		im[i] = imag(out[i])
	}
	power := make([]float64, half)
	vecmath.Power(power, re, im)

	tone := func(bin int) float64 {
		sum := 0.0
		for b := bin - 1; b <= bin+1; b++ {
			if b > 0 && b < half {
				sum += power[b]
			}
		}
		return sum
	}

	fundamental := tone(cycles)
	res := THDResult{FundamentalBin: cycles}
	if fundamental == 0 {
		res.THD = math.Inf(1)
		res.THD_dB = math.Inf(1)
		res.THDN = math.Inf(1)
		return res, nil
	}

	harmonicPower := 0.0
	for h := 2; h <= cfg.Harmonics; h++ {
		bin := h * cycles
		if bin+1 >= half {
			break
		}
		harmonicPower += tone(bin)
		res.Harmonics++
	}

	total := 0.0
	for b := 1; b < half; b++ {
		total += power[b]
	}
	rest := math.Max(total-fundamental, 0)

	res.THD = math.Sqrt(harmonicPower / fundamental)
	res.THD_dB = ratioTodB(res.THD)
	res.THDN = math.Sqrt(rest / fundamental)

	Logger().Debug("accuracy: thd",
		slog.Int("size", size),
		slog.Int("cycles", cycles),
		slog.Float64("thd", res.THD),
		slog.Float64("thdn", res.THDN))

	return res, nil
}

func validateTHD(size, cycles int) error {
	if size < 16 || size&(size-1) != 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	if cycles < 2 || 2*cycles+1 >= size/2 {
		return fmt.Errorf("%w: %d cycles in %d samples", ErrInvalidCycles, cycles, size)
	}
	return nil
}

// ratioTodB converts a linear amplitude ratio to decibels. Zero maps to -Inf.
func ratioTodB(value float64) float64 {
	if value == 0 {
		return math.Inf(-1)
	}
	return 20 * math.Log10(value)
}
