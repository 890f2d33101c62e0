package plot

import (
	"image/color"

	"github.com/cwbudde/algo-enginemath/measure/accuracy"
)

var palette = []color.NRGBA{
	{R: 31, G: 119, B: 180, A: 255},
	{R: 214, G: 39, B: 40, A: 255},
	{R: 44, G: 160, B: 44, A: 255},
	{R: 255, G: 127, B: 14, A: 255},
	{R: 148, G: 103, B: 189, A: 255},
}

// Color returns the i-th palette color, cycling in both directions.
func Color(i int) color.NRGBA {
	n := len(palette)
	return palette[((i%n)+n)%n]
}

// ErrorSeries samples kernel minus reference error of f over its interval.
func ErrorSeries(f accuracy.Function, samples int) (Series, error) {
	xs, errs, err := accuracy.ErrorCurve(f.Kernel, f.Reference, f.Lo, f.Hi, samples)
	if err != nil {
		return Series{}, err
	}
	return Series{Name: f.Name, Color: Color(0), X: xs, Y: errs}, nil
}

// FastErrorSeries is ErrorSeries for the fast approximation of f. ok is false
// when f has none.
func FastErrorSeries(f accuracy.Function, samples int) (s Series, ok bool, err error) {
	if f.Fast == nil {
		return Series{}, false, nil
	}
	xs, errs, err := accuracy.ErrorCurve(f.Fast, f.Reference, f.Lo, f.Hi, samples)
	if err != nil {
		return Series{}, false, err
	}
	return Series{Name: f.Name + " (fast)", Color: Color(1), X: xs, Y: errs}, true, nil
}
